package arbor

import "math"

// Label draws a single line of text.
type Label struct {
	BaseElement
	text string

	// Size is the font size; zero uses the theme's FontSize.
	Size float64
	// Color is the text color; the zero value uses the theme's TextColor.
	Color Color
	// Align places the text horizontally: 0 left, 0.5 centre, 1 right.
	Align float64
}

// NewLabel creates a label showing text.
func NewLabel(text string) *Label { return &Label{text: text} }

// Value returns the text.
func (l *Label) Value() string { return l.text }

// SetValue replaces the text. The caller refreshes the label.
func (l *Label) SetValue(s string) { l.text = s }

func (l *Label) size(ctx *Context) float64 {
	if l.Size > 0 {
		return l.Size
	}
	return ctx.Theme().FontSize
}

// Limits: the label needs its measured text size and can stretch
// horizontally.
func (l *Label) Limits(ctx *Context) Limits {
	m := ctx.MeasureText(l.text, l.size(ctx))
	return Limits{Min: m, Max: Vec2{FullExtent, m.Y}}
}

// HitTest never hits; labels are decoration.
func (l *Label) HitTest(*Context, Vec2) Element { return nil }

func (l *Label) Draw(ctx *Context) {
	size := l.size(ctx)
	col := l.Color
	if col == (Color{}) {
		col = ctx.Theme().TextColor
	}
	m := ctx.MeasureText(l.text, size)
	b := ctx.Bounds
	x := b.X + math.Max(b.Width-m.X, 0)*l.Align
	y := b.Y + math.Max(b.Height-m.Y, 0)/2
	ctx.Canvas.FillText(Vec2{x, y}, l.text, size, col)
}
