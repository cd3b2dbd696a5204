package arbor

import "math"

const inputPad = 4

// InputBox is a single-line text field. A press focuses it and puts the
// caret under the pointer. Typed text is inserted at the caret; Backspace,
// Delete, Left, Right, Home and End edit and move it, and Enter commits.
// Text longer than the box scrolls so the caret stays visible.
type InputBox struct {
	BaseElement
	text    []rune
	caret   int
	scroll  float64
	focused bool

	// Placeholder is shown in the label color while the box is empty and
	// unfocused.
	Placeholder string
	// OnText sees every edit and returns the text to keep, so it can
	// filter or reject input.
	OnText func(text string) string
	// OnEnter is called with the text when Enter is pressed.
	OnEnter func(text string)
}

// NewInputBox creates an empty input box.
func NewInputBox(placeholder string) *InputBox {
	return &InputBox{Placeholder: placeholder}
}

// Value returns the text.
func (b *InputBox) Value() string { return string(b.text) }

// SetValue replaces the text without notifying OnText and moves the caret
// to the end.
func (b *InputBox) SetValue(s string) {
	b.text = []rune(s)
	b.caret = len(b.text)
}

// Caret returns the caret position in runes.
func (b *InputBox) Caret() int { return b.caret }

// Focused reports whether the box has keyboard focus.
func (b *InputBox) Focused() bool { return b.focused }

func (b *InputBox) Limits(ctx *Context) Limits {
	size := ctx.Theme().FontSize
	h := ctx.MeasureText("M", size).Y + 2*inputPad
	w := math.Max(ctx.MeasureText(b.Placeholder, size).X, 4*size) + 2*inputPad
	return Limits{Min: Vec2{w, h}, Max: Vec2{FullExtent, h}}
}

func (b *InputBox) inner(ctx *Context) Rect {
	return ctx.Bounds.Inset(inputPad, inputPad, inputPad, inputPad)
}

// advance returns the width of the first n runes.
func (b *InputBox) advance(ctx *Context, n int) float64 {
	return ctx.MeasureText(string(b.text[:n]), ctx.Theme().FontSize).X
}

func (b *InputBox) scrollIntoView(ctx *Context) {
	x := b.advance(ctx, b.caret)
	w := b.inner(ctx).Width
	switch {
	case x-b.scroll > w:
		b.scroll = x - w
	case x < b.scroll:
		b.scroll = x
	}
}

func (b *InputBox) Draw(ctx *Context) {
	th := ctx.Theme()
	frame := th.FrameColor
	if b.focused {
		frame = th.IndicatorColor
	}
	ctx.Canvas.FillRoundRect(ctx.Bounds, th.FrameRadius, th.ControlColor.Level(0.6))
	ctx.Canvas.StrokeRect(ctx.Bounds, 1, frame)

	in := b.inner(ctx)
	defer ctx.Canvas.Save().Restore()
	ctx.Canvas.Clip(in)
	if len(b.text) == 0 && !b.focused {
		if b.Placeholder != "" {
			ctx.Canvas.FillText(Vec2{in.X, in.Y}, b.Placeholder, th.FontSize, th.LabelColor)
		}
		return
	}
	x := in.X - b.scroll
	if len(b.text) > 0 {
		ctx.Canvas.FillText(Vec2{x, in.Y}, string(b.text), th.FontSize, th.TextColor)
	}
	if b.focused {
		cx := x + b.advance(ctx, b.caret)
		ctx.Canvas.Line(Vec2{cx, in.Y}, Vec2{cx, in.Bottom()}, 1, th.IndicatorColor)
	}
}

func (b *InputBox) WantsControl() bool { return true }
func (b *InputBox) WantsFocus() bool { return true }
func (b *InputBox) BeginFocus(FocusRequest) { b.focused = true }
func (b *InputBox) EndFocus() { b.focused = false }

// caretAt returns the rune boundary nearest to view x.
func (b *InputBox) caretAt(ctx *Context, x float64) int {
	x -= b.inner(ctx).X - b.scroll
	prev := 0.0
	for i := 1; i <= len(b.text); i++ {
		next := b.advance(ctx, i)
		if x < (prev+next)/2 {
			return i - 1
		}
		prev = next
	}
	return len(b.text)
}

func (b *InputBox) Click(ctx *Context, ev MouseEvent) bool {
	if ev.Button != MouseButtonLeft {
		return false
	}
	if ev.Down {
		b.focused = true
		b.caret = b.caretAt(ctx, ev.Pos.X)
		ctx.Refresh()
	}
	return true
}

func (b *InputBox) Drag(ctx *Context, ev MouseEvent) {
	if c := b.caretAt(ctx, ev.Pos.X); c != b.caret {
		b.caret = c
		b.scrollIntoView(ctx)
		ctx.Refresh()
	}
}

// edit replaces the text, runs OnText and reports the result.
func (b *InputBox) edit(ctx *Context, text []rune, caret int) {
	s := string(text)
	if b.OnText != nil {
		if kept := b.OnText(s); kept != s {
			s = kept
			text = []rune(kept)
			caret = min(caret, len(text))
		}
	}
	b.text, b.caret = text, caret
	b.scrollIntoView(ctx)
	ctx.Refresh()
	ctx.emit(ChangeEvent{Type: ChangeText, Text: s})
}

func (b *InputBox) moveCaret(ctx *Context, c int) {
	c = max(0, min(c, len(b.text)))
	if c != b.caret {
		b.caret = c
		b.scrollIntoView(ctx)
		ctx.Refresh()
	}
}

func (b *InputBox) Key(ctx *Context, k KeyInfo) bool {
	if k.Action == KeyRelease || !b.focused {
		return false
	}
	switch k.Key {
	case KeyBackspace:
		if b.caret > 0 {
			text := append(append([]rune{}, b.text[:b.caret-1]...), b.text[b.caret:]...)
			b.edit(ctx, text, b.caret-1)
		}
	case KeyDelete:
		if b.caret < len(b.text) {
			text := append(append([]rune{}, b.text[:b.caret]...), b.text[b.caret+1:]...)
			b.edit(ctx, text, b.caret)
		}
	case KeyLeft:
		b.moveCaret(ctx, b.caret-1)
	case KeyRight:
		b.moveCaret(ctx, b.caret+1)
	case KeyHome:
		b.moveCaret(ctx, 0)
	case KeyEnd:
		b.moveCaret(ctx, len(b.text))
	case KeyEnter:
		if k.Action != KeyPress {
			return true
		}
		s := string(b.text)
		if b.OnEnter != nil {
			b.OnEnter(s)
		}
		ctx.emit(ChangeEvent{Type: ChangeText, Text: s, On: true})
	default:
		return false
	}
	return true
}

// Text inserts a printable character at the caret. Characters typed with
// Ctrl or Meta held are left to shortcuts.
func (b *InputBox) Text(ctx *Context, t TextInfo) bool {
	if !b.focused || t.Codepoint < 0x20 || t.Codepoint == 0x7f || t.Modifiers&(ModCtrl|ModMeta) != 0 {
		return false
	}
	text := make([]rune, 0, len(b.text)+1)
	text = append(text, b.text[:b.caret]...)
	text = append(text, t.Codepoint)
	text = append(text, b.text[b.caret:]...)
	b.edit(ctx, text, b.caret+1)
	return true
}
