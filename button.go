package arbor

// Button is a push button. A momentary button reports each activation; a
// toggle button flips its state on each activation. Buttons activate on a
// release inside their bounds and on Enter or Space.
type Button struct {
	BaseElement
	text    string
	toggle  bool
	on      bool
	pressed bool
	hover   bool

	// OnClick is called on activation with the new state. Momentary
	// buttons always report false.
	OnClick func(on bool)

	clicked func(ctx *Context, on bool)
}

// NewButton creates a momentary button.
func NewButton(text string) *Button {
	b := &Button{text: text}
	b.clicked = b.notifyClick
	return b
}

// NewToggleButton creates a toggle button in the given state.
func NewToggleButton(text string, on bool) *Button {
	b := NewButton(text)
	b.toggle = true
	b.on = on
	return b
}

func (b *Button) notifyClick(ctx *Context, on bool) {
	if b.OnClick != nil {
		b.OnClick(on)
	}
	ctx.emit(ChangeEvent{Type: ChangeClick, On: on})
}

// Text returns the caption.
func (b *Button) Text() string { return b.text }

// Value returns the toggle state.
func (b *Button) Value() bool { return b.on }

// SetValue sets the toggle state without notifying OnClick.
func (b *Button) SetValue(on bool) { b.on = on && b.toggle }

// Pressed reports whether the pointer is held down on the button.
func (b *Button) Pressed() bool { return b.pressed }

const buttonPadX, buttonPadY = 12, 6

func (b *Button) Limits(ctx *Context) Limits {
	m := ctx.MeasureText(b.text, ctx.Theme().FontSize)
	min := Vec2{m.X + 2*buttonPadX, m.Y + 2*buttonPadY}
	return Limits{Min: min, Max: Vec2{FullExtent, min.Y}}
}

func (b *Button) Draw(ctx *Context) {
	th := ctx.Theme()
	bg := th.ControlColor
	switch {
	case (b.pressed && b.hover) || b.on:
		bg = th.IndicatorColor
	case b.hover:
		bg = bg.Level(1.2)
	}
	ctx.Canvas.FillRoundRect(ctx.Bounds, th.FrameRadius, bg)
	ctx.Canvas.StrokeRect(ctx.Bounds, 1, th.FrameColor)
	m := ctx.MeasureText(b.text, th.FontSize)
	c := ctx.Bounds.Center()
	ctx.Canvas.FillText(Vec2{c.X - m.X/2, c.Y - m.Y/2}, b.text, th.FontSize, th.TextColor)
}

func (b *Button) WantsControl() bool { return true }
func (b *Button) WantsFocus() bool { return true }

func (b *Button) activate(ctx *Context) {
	if b.toggle {
		b.on = !b.on
	}
	ctx.Refresh()
	b.clicked(ctx, b.on)
}

func (b *Button) Click(ctx *Context, ev MouseEvent) bool {
	if ev.Button != MouseButtonLeft {
		return false
	}
	if ev.Down {
		b.pressed = true
		b.hover = true
		ctx.Refresh()
		return true
	}
	if !b.pressed {
		return false
	}
	b.pressed = false
	ctx.Refresh()
	if ctx.Bounds.Includes(ev.Pos) {
		b.activate(ctx)
	}
	return true
}

// Drag keeps the pressed look only while the pointer is over the button.
func (b *Button) Drag(ctx *Context, ev MouseEvent) {
	if in := ctx.Bounds.Includes(ev.Pos); in != b.hover {
		b.hover = in
		ctx.Refresh()
	}
}

func (b *Button) Cursor(ctx *Context, p Vec2, status CursorTracking) bool {
	hover := status != CursorLeaving
	if hover != b.hover {
		b.hover = hover
		ctx.Refresh()
	}
	return true
}

func (b *Button) Key(ctx *Context, k KeyInfo) bool {
	if k.Action != KeyPress || (k.Key != KeyEnter && k.Key != KeySpace) {
		return false
	}
	b.activate(ctx)
	return true
}

func (b *Button) EndFocus() {
	b.pressed = false
}
