package arbor

type tipStatus uint8

const (
	tipHidden tipStatus = iota
	tipDelayed
	tipVisible
)

// Tooltip shows a tip element above its subject after the pointer has
// hovered over the subject for Theme.TooltipDelay. The tip closes when the
// pointer leaves, on a click and on Escape.
type Tooltip struct {
	Proxy
	tip    Element
	status tipStatus
	gen    uint64
	view   *View

	// OnHover is called when the tip opens (true) and closes (false).
	OnHover func(visible bool)
}

// NewTooltip attaches tip to subject.
func NewTooltip(subject, tip Element) *Tooltip {
	t := &Tooltip{tip: tip}
	t.subject = subject
	return t
}

// NewTextTooltip attaches a text tip to subject.
func NewTextTooltip(subject Element, text string) *Tooltip {
	return NewTooltip(subject, NewTipBox(text))
}

// Visible reports whether the tip is open.
func (t *Tooltip) Visible() bool { return t.status == tipVisible }

// tipBounds places the tip at its minimum size above the subject, left
// aligned with it.
func (t *Tooltip) tipBounds(ctx *Context) Rect {
	tctx := ctx.Sub(t.tip, ctx.Bounds)
	m := t.tip.Limits(&tctx).Min
	return Rect{X: ctx.Bounds.X, Y: ctx.Bounds.Y - m.Y, Width: m.X, Height: m.Y}
}

func (t *Tooltip) Cursor(ctx *Context, p Vec2, status CursorTracking) bool {
	if status != CursorLeaving {
		if t.status == tipHidden && ctx.View != nil {
			t.status = tipDelayed
			t.gen++
			gen, v, bounds := t.gen, ctx.View, t.tipBounds(ctx)
			v.Post(ctx.Theme().TooltipDelay, func() {
				if t.gen != gen || t.status != tipDelayed {
					return
				}
				t.status = tipVisible
				t.view = v
				v.OpenOverlay(t.tip, bounds)
				if t.OnHover != nil {
					t.OnHover(true)
				}
			})
		}
	} else {
		t.closeTip()
	}
	return t.Proxy.Cursor(ctx, p, status)
}

func (t *Tooltip) closeTip() {
	t.gen++
	if t.status == tipVisible {
		t.view.CloseOverlay(t.tip)
		if t.OnHover != nil {
			t.OnHover(false)
		}
	}
	t.status = tipHidden
}

func (t *Tooltip) Click(ctx *Context, ev MouseEvent) bool {
	if ev.Down {
		t.closeTip()
	}
	return t.Proxy.Click(ctx, ev)
}

func (t *Tooltip) Key(ctx *Context, k KeyInfo) bool {
	r := t.Proxy.Key(ctx, k)
	if !r && k.Key == KeyEscape && t.status != tipHidden {
		t.closeTip()
		return true
	}
	return r
}

// TipBox is the default tooltip: text on a rounded panel.
type TipBox struct {
	Label
}

// NewTipBox creates a tip showing text.
func NewTipBox(text string) *TipBox {
	return &TipBox{Label: Label{text: text}}
}

const tipPad = 4

func (b *TipBox) Limits(ctx *Context) Limits {
	m := ctx.MeasureText(b.text, b.size(ctx))
	m = Vec2{m.X + 2*tipPad, m.Y + 2*tipPad}
	return Limits{Min: m, Max: m}
}

func (b *TipBox) Draw(ctx *Context) {
	th := ctx.Theme()
	ctx.Canvas.FillRoundRect(ctx.Bounds, th.FrameRadius, th.TooltipColor)
	inner := ctx.Sub(&b.Label, ctx.Bounds.Inset(tipPad, tipPad, tipPad, tipPad))
	b.Label.Draw(&inner)
}
