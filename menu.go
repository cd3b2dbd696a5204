package arbor

import "math"

const (
	menuPad      = 4
	menuItemPadX = 10
	menuItemPadY = 4
)

// Menu is a vertical list of items on a panel.
type Menu struct {
	Proxy
	items *Tile
}

// NewMenu creates a menu holding items, typically MenuItems and
// MenuSpacers.
func NewMenu(items ...Element) *Menu {
	m := &Menu{items: NewVTile(items...)}
	m.subject = NewUniformMargin(menuPad, m.items)
	return m
}

// Add appends items to the menu.
func (m *Menu) Add(items ...Element) { m.items.Add(items...) }

// Len returns the number of items.
func (m *Menu) Len() int { return m.items.Len() }

// At returns item i.
func (m *Menu) At(i int) Element { return m.items.At(i) }

func (m *Menu) Draw(ctx *Context) {
	th := ctx.Theme()
	ctx.Canvas.FillRoundRect(ctx.Bounds, th.FrameRadius, th.PanelColor.Level(1.3))
	ctx.Canvas.StrokeRect(ctx.Bounds, 1, th.FrameColor)
	m.Proxy.Draw(ctx)
}

// MenuItem is a menu entry. Releasing the pointer over it runs OnClick
// and closes the enclosing popup.
type MenuItem struct {
	BaseElement
	text    string
	hover   bool
	pressed bool

	// OnClick is called when the item is chosen.
	OnClick func()
}

// NewMenuItem creates an item showing text.
func NewMenuItem(text string, onClick func()) *MenuItem {
	return &MenuItem{text: text, OnClick: onClick}
}

// Text returns the caption.
func (mi *MenuItem) Text() string { return mi.text }

// Hover reports whether the pointer is over the item.
func (mi *MenuItem) Hover() bool { return mi.hover }

func (mi *MenuItem) Limits(ctx *Context) Limits {
	m := ctx.MeasureText(mi.text, ctx.Theme().FontSize)
	min := Vec2{m.X + 2*menuItemPadX, m.Y + 2*menuItemPadY}
	return Limits{Min: min, Max: Vec2{FullExtent, min.Y}}
}

func (mi *MenuItem) Draw(ctx *Context) {
	th := ctx.Theme()
	if mi.hover {
		ctx.Canvas.FillRoundRect(ctx.Bounds, 2, th.IndicatorColor.Opacity(0.6))
	}
	m := ctx.MeasureText(mi.text, th.FontSize)
	y := ctx.Bounds.Y + (ctx.Bounds.Height-m.Y)/2
	ctx.Canvas.FillText(Vec2{ctx.Bounds.X + menuItemPadX, y}, mi.text, th.FontSize, th.TextColor)
}

func (mi *MenuItem) WantsControl() bool { return true }

func (mi *MenuItem) choose(ctx *Context) {
	if mi.OnClick != nil {
		mi.OnClick()
	}
	ctx.emit(ChangeEvent{Type: ChangeClick})
	ClosePopup(ctx)
}

func (mi *MenuItem) Click(ctx *Context, ev MouseEvent) bool {
	if ev.Button != MouseButtonLeft {
		return false
	}
	if ev.Down {
		mi.pressed = true
		return true
	}
	if !mi.pressed {
		return false
	}
	mi.pressed = false
	if ctx.Bounds.Includes(ev.Pos) {
		mi.choose(ctx)
	}
	return true
}

func (mi *MenuItem) Drag(ctx *Context, ev MouseEvent) {
	if in := ctx.Bounds.Includes(ev.Pos); in != mi.hover {
		mi.hover = in
		ctx.Refresh()
	}
}

func (mi *MenuItem) Cursor(ctx *Context, p Vec2, status CursorTracking) bool {
	hover := status != CursorLeaving && ctx.Bounds.Includes(p)
	if hover != mi.hover {
		mi.hover = hover
		ctx.Refresh()
	}
	return hover
}

// MenuSpacer is a divider line between groups of menu items.
type MenuSpacer struct{ BaseElement }

func (MenuSpacer) Limits(ctx *Context) Limits {
	h := ctx.Theme().LabelFontSize
	return Limits{Max: Vec2{FullExtent, h}, Min: Vec2{0, h}}
}

func (MenuSpacer) HitTest(*Context, Vec2) Element { return nil }

func (MenuSpacer) Draw(ctx *Context) {
	y := ctx.Bounds.Y + ctx.Bounds.Height/2
	ctx.Canvas.Line(Vec2{ctx.Bounds.X, y}, Vec2{ctx.Bounds.Right(), y}, 1, ctx.Theme().FrameColor.Opacity(0.15))
}

// PopupButton opens a menu below itself when pressed, or above it when the
// menu does not fit below. The menu is held through a shared Ref, so the
// same menu can be edited, or placed elsewhere, while the button holds it.
type PopupButton struct {
	Button
	menu  *Ref[*Menu]
	popup *Popup
	view  *View
}

// NewPopupButton creates a button labelled text that opens menu.
func NewPopupButton(text string, menu *Ref[*Menu]) *PopupButton {
	b := &PopupButton{menu: menu}
	b.text = text
	b.clicked = b.notifyClick
	b.popup = NewPopup(menu)
	b.popup.OnClose = b.closed
	return b
}

// Menu returns the shared menu.
func (b *PopupButton) Menu() *Ref[*Menu] { return b.menu }

// Popup returns the popup the menu opens in.
func (b *PopupButton) Popup() *Popup { return b.popup }

// menuPlace puts the menu at its minimum size under the button, at least
// as wide as the button. It flips above when there is no room below.
func (b *PopupButton) menuPlace(ctx *Context) Rect {
	mctx := ctx.Sub(b.menu, ctx.Bounds)
	m := b.menu.Limits(&mctx).Min
	r := Rect{X: ctx.Bounds.X, Y: ctx.Bounds.Bottom(), Width: math.Max(m.X, ctx.Bounds.Width), Height: m.Y}
	if ctx.View != nil {
		vb := ctx.View.Bounds()
		if r.Bottom() > vb.Bottom() && ctx.Bounds.Y-m.Y >= vb.Y {
			r.Y = ctx.Bounds.Y - m.Y
		}
	}
	return r
}

func (b *PopupButton) open(ctx *Context) {
	if ctx.View == nil || b.popup.IsOpen() {
		return
	}
	b.view = ctx.View
	b.on = true
	ctx.Refresh()
	b.popup.Open(ctx.View, b.menuPlace(ctx))
}

func (b *PopupButton) closed() {
	b.on = false
	if b.view != nil {
		b.view.RefreshElement(b)
	}
}

func (b *PopupButton) Click(ctx *Context, ev MouseEvent) bool {
	if ev.Button != MouseButtonLeft {
		return false
	}
	if ev.Down {
		b.open(ctx)
	}
	return true
}

// Drag is ignored; the menu takes the pointer once open.
func (b *PopupButton) Drag(*Context, MouseEvent) {}

func (b *PopupButton) Key(ctx *Context, k KeyInfo) bool {
	if k.Action != KeyPress {
		return false
	}
	switch k.Key {
	case KeyEscape:
		if b.popup.IsOpen() {
			b.popup.Close()
			return true
		}
	case KeyEnter, KeySpace, KeyDown:
		if !b.popup.IsOpen() {
			b.open(ctx)
			return true
		}
	}
	return false
}
