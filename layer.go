package arbor

import "math"

// Layer stacks its children on top of each other, all sharing the layer's
// bounds. Later children are drawn above earlier ones and are hit first.
type Layer struct {
	CompositeBase
	ElementList
}

// NewLayer creates a layer; the last element is topmost.
func NewLayer(elems ...Element) *Layer {
	l := &Layer{}
	l.initLayer(l, elems)
	return l
}

func (l *Layer) initLayer(owner compositeOwner, elems []Element) {
	l.initComposite(owner)
	l.topmostFirst = true
	l.initList(owner.(Element), l.CompositeBase.Reset, elems)
}

// Limits: the layer needs the largest child minimum and allows the largest
// child maximum.
func (l *Layer) Limits(ctx *Context) Limits {
	var lim Limits
	for _, e := range l.elems {
		cctx := ctx.Sub(e, ctx.Bounds)
		el := e.Limits(&cctx)
		lim.Min.X = math.Max(lim.Min.X, el.Min.X)
		lim.Min.Y = math.Max(lim.Min.Y, el.Min.Y)
		lim.Max.X = math.Max(lim.Max.X, el.Max.X)
		lim.Max.Y = math.Max(lim.Max.Y, el.Max.Y)
	}
	if len(l.elems) == 0 {
		return FullLimits
	}
	return lim
}

func (l *Layer) Layout(ctx *Context) {
	for i, e := range l.elems {
		cctx := ctx.Sub(e, l.BoundsOf(ctx, i))
		e.Layout(&cctx)
	}
}

// BoundsOf places child i at the layer's origin, sized to the layer's
// bounds clamped to the child's limits.
func (l *Layer) BoundsOf(ctx *Context, i int) Rect {
	e := l.elems[i]
	cctx := ctx.Sub(e, ctx.Bounds)
	size := e.Limits(&cctx).Clamp(ctx.Bounds.Size())
	return Rect{X: ctx.Bounds.X, Y: ctx.Bounds.Y, Width: size.X, Height: size.Y}
}

func (l *Layer) hitElement(ctx *Context, p Vec2, control bool) hitInfo {
	return l.hitDescending(ctx, p, control)
}

// Deck is a Layer in which only the selected child is drawn, hit, focused
// and refreshed.
type Deck struct {
	Layer
	selected int
}

// NewDeck creates a deck showing the first element.
func NewDeck(elems ...Element) *Deck {
	d := &Deck{}
	d.initLayer(d, elems)
	return d
}

// Selected returns the index of the visible child.
func (d *Deck) Selected() int { return d.selected }

// Select shows child i, clamped to the valid range.
func (d *Deck) Select(i int) {
	if n := d.Len(); i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	if i == d.selected {
		return
	}
	if d.focus >= 0 {
		dropFocus(nil, d.At(d.focus))
		d.focus = -1
	}
	d.selected = i
	d.savedFocus = -1
}

func (d *Deck) valid() bool { return d.selected >= 0 && d.selected < d.Len() }

func (d *Deck) Draw(ctx *Context) {
	if !d.valid() {
		return
	}
	e, cctx := d.childContext(ctx, d.selected)
	e.Draw(&cctx)
}

func (d *Deck) hitElement(ctx *Context, p Vec2, control bool) hitInfo {
	if !d.valid() {
		return noHit
	}
	if info, ok := d.tryHit(ctx, p, control, d.selected); ok {
		return info
	}
	return noHit
}

func (d *Deck) Refresh(ctx *Context, target Element) {
	if target == ctx.Element {
		ctx.Refresh()
		return
	}
	if d.valid() {
		e, cctx := d.childContext(ctx, d.selected)
		e.Refresh(&cctx, target)
	}
}

func (d *Deck) WantsControl() bool { return d.valid() && d.At(d.selected).WantsControl() }

func (d *Deck) WantsFocus() bool { return d.valid() && d.At(d.selected).WantsFocus() }

// BeginFocus focuses the selected child.
func (d *Deck) BeginFocus(req FocusRequest) {
	if !d.valid() || !d.At(d.selected).WantsFocus() {
		return
	}
	d.focus = d.selected
	d.At(d.selected).BeginFocus(req)
}

// Key never moves focus off the selected child.
func (d *Deck) Key(ctx *Context, k KeyInfo) bool {
	if !d.valid() || d.focus != d.selected {
		return false
	}
	e, cctx := d.childContext(ctx, d.selected)
	return e.Key(&cctx, k)
}
