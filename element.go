package arbor

// Element is a node in the UI tree. Every operation receives a Context
// describing where the element sits; elements themselves hold no
// position.
//
// Limits must return Min <= Max on both axes and must not change the
// element. Layout is called whenever bounds change and before the first
// Draw. HitTest returns the innermost element under p, or nil. The input
// operations return true when the event was consumed.
type Element interface {
	Limits(ctx *Context) Limits
	Span() float64
	Layout(ctx *Context)
	Draw(ctx *Context)
	HitTest(ctx *Context, p Vec2) Element
	Refresh(ctx *Context, target Element)

	WantsControl() bool
	Click(ctx *Context, ev MouseEvent) bool
	Drag(ctx *Context, ev MouseEvent)
	Key(ctx *Context, k KeyInfo) bool
	Text(ctx *Context, t TextInfo) bool
	Cursor(ctx *Context, p Vec2, status CursorTracking) bool
	Scroll(ctx *Context, dir, p Vec2) bool

	WantsFocus() bool
	BeginFocus(req FocusRequest)
	EndFocus()
	// Focus returns the focused child of a composite, or nil for leaves and
	// composites without focus.
	Focus() Element
}

// Receiver is implemented by elements that hold an editable value.
type Receiver[T any] interface {
	Value() T
	SetValue(v T)
}

// BaseElement supplies the default Element behavior. Embed it in leaf
// elements and override what differs.
type BaseElement struct{}

func (BaseElement) Limits(*Context) Limits { return FullLimits }
func (BaseElement) Span() float64 { return 1 }
func (BaseElement) Layout(*Context) {}
func (BaseElement) Draw(*Context) {}

// HitTest returns the element being called when p lies within its bounds.
func (BaseElement) HitTest(ctx *Context, p Vec2) Element {
	if ctx.Bounds.Includes(p) {
		return ctx.Element
	}
	return nil
}

// Refresh redraws the element's bounds when it is the target.
func (BaseElement) Refresh(ctx *Context, target Element) {
	if target == ctx.Element {
		ctx.Refresh()
	}
}

func (BaseElement) WantsControl() bool { return false }
func (BaseElement) Click(*Context, MouseEvent) bool { return false }
func (BaseElement) Drag(*Context, MouseEvent) {}
func (BaseElement) Key(*Context, KeyInfo) bool { return false }
func (BaseElement) Text(*Context, TextInfo) bool { return false }
func (BaseElement) Cursor(*Context, Vec2, CursorTracking) bool { return false }
func (BaseElement) Scroll(*Context, Vec2, Vec2) bool { return false }
func (BaseElement) WantsFocus() bool { return false }
func (BaseElement) BeginFocus(FocusRequest) {}
func (BaseElement) EndFocus() {}
func (BaseElement) Focus() Element { return nil }

// Empty is an element that draws nothing and accepts any size.
type Empty struct{ BaseElement }

// HitTest never hits.
func (Empty) HitTest(*Context, Vec2) Element { return nil }

// Box fills its bounds with a color, optionally with rounded corners.
type Box struct {
	BaseElement
	Color  Color
	Radius float64
}

// NewBox creates a Box of the given color.
func NewBox(c Color) *Box { return &Box{Color: c} }

func (b *Box) Draw(ctx *Context) {
	if b.Radius > 0 {
		ctx.Canvas.FillRoundRect(ctx.Bounds, b.Radius, b.Color)
		return
	}
	ctx.Canvas.FillRect(ctx.Bounds, b.Color)
}

// Value returns the fill color.
func (b *Box) Value() Color { return b.Color }

// SetValue replaces the fill color.
func (b *Box) SetValue(c Color) { b.Color = c }

// Find walks down the focus chain from e and returns the first element
// that satisfies T.
func Find[T any](e Element) (T, bool) {
	for e != nil {
		if t, ok := e.(T); ok {
			return t, true
		}
		e = e.Focus()
	}
	var zero T
	return zero, false
}
