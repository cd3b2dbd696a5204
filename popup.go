package arbor

// Popup floats a body element above the view as an overlay. While open
// it covers the whole view: a press outside the body closes it and input
// never reaches the elements beneath. Elements inside the body close it
// with ClosePopup.
type Popup struct {
	Proxy
	place Rect
	view  *View

	// OnClose is called after the popup closes.
	OnClose func()
}

// NewPopup creates a closed popup showing body.
func NewPopup(body Element) *Popup {
	p := &Popup{}
	p.subject = body
	p.SetAdjuster(p)
	return p
}

// PrepareSubject moves the body to its placement.
func (p *Popup) PrepareSubject(ctx *Context) { ctx.Bounds = p.place }

func (p *Popup) RestoreSubject(*Context) {}

// IsOpen reports whether the popup is shown.
func (p *Popup) IsOpen() bool { return p.view != nil }

// Place returns where the body was last opened.
func (p *Popup) Place() Rect { return p.place }

// Open shows the popup on v with the body at place. Opening an open popup
// does nothing.
func (p *Popup) Open(v *View, place Rect) {
	if p.view != nil {
		return
	}
	p.view = v
	p.place = place
	v.OpenOverlay(p, v.Bounds())
}

// Close removes the popup from its view.
func (p *Popup) Close() {
	v := p.view
	if v == nil {
		return
	}
	p.view = nil
	v.CloseOverlay(p)
	if p.OnClose != nil {
		p.OnClose()
	}
}

// ClosePopup closes the innermost popup enclosing ctx and reports whether
// there was one.
func ClosePopup(ctx *Context) bool {
	for c := ctx; c != nil; c = c.Parent {
		if p, ok := c.Element.(*Popup); ok {
			p.Close()
			return true
		}
	}
	return false
}

// HitTest claims the whole view so presses outside the body can dismiss
// the popup.
func (p *Popup) HitTest(ctx *Context, pt Vec2) Element {
	if e := p.Proxy.HitTest(ctx, pt); e != nil {
		return e
	}
	return p
}

func (p *Popup) WantsControl() bool { return true }

func (p *Popup) Click(ctx *Context, ev MouseEvent) bool {
	if ev.Down && !p.place.Includes(ev.Pos) {
		p.Close()
		return true
	}
	p.Proxy.Click(ctx, ev)
	return true
}

func (p *Popup) Cursor(ctx *Context, pt Vec2, status CursorTracking) bool {
	p.Proxy.Cursor(ctx, pt, status)
	return true
}

func (p *Popup) Scroll(ctx *Context, dir, pt Vec2) bool {
	p.Proxy.Scroll(ctx, dir, pt)
	return true
}

func (p *Popup) Key(ctx *Context, k KeyInfo) bool {
	if p.Proxy.Key(ctx, k) {
		return true
	}
	if k.Key == KeyEscape && k.Action == KeyPress && p.IsOpen() {
		p.Close()
		return true
	}
	return false
}
