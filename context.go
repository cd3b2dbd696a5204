package arbor

import "time"

// Context is the per-call environment passed to every Element operation:
// the owning View, the Canvas, the element being called, its bounds and
// the chain of parent contexts.
//
// Contexts are values built on the stack for the duration of one call
// and must not be retained.
type Context struct {
	View    *View
	Canvas  Canvas
	Element Element
	Parent  *Context
	Bounds  Rect

	port *Context
}

// NewContext builds a root context for e.
func NewContext(v *View, c Canvas, e Element, bounds Rect) Context {
	return Context{View: v, Canvas: c, Element: e, Bounds: bounds}
}

// Sub derives the context for a child element.
func (c *Context) Sub(e Element, bounds Rect) Context {
	return Context{
		View:    c.View,
		Canvas:  c.Canvas,
		Element: e,
		Parent:  c,
		Bounds:  bounds,
		port:    c.port,
	}
}

// Theme returns the View's theme, or the default theme for a detached
// context.
func (c *Context) Theme() *Theme {
	if c.View != nil {
		return c.View.Theme()
	}
	return fallbackTheme
}

var fallbackTheme = DefaultTheme()

// Port returns the context of the nearest enclosing Port, or nil.
func (c *Context) Port() *Context { return c.port }

// VisibleBounds returns the part of Bounds not clipped away by enclosing
// ports.
func (c *Context) VisibleBounds() Rect {
	r := c.Bounds
	for p := c.port; p != nil; p = p.port {
		r = r.Intersect(p.Bounds)
	}
	return r
}

// Refresh marks this context's bounds for redraw.
func (c *Context) Refresh() {
	if c.View != nil {
		c.View.Refresh(c.Bounds)
	}
}

// Post schedules fn on the View's deferred queue. Without a View the call
// is dropped.
func (c *Context) Post(delay time.Duration, fn func()) {
	if c.View != nil {
		c.View.Post(delay, fn)
	}
}

// MeasureText measures s with the context's canvas. Without a canvas it
// falls back to a fixed-advance estimate so limits can be computed before
// the first frame.
func (c *Context) MeasureText(s string, size float64) Vec2 {
	if c.Canvas != nil {
		return c.Canvas.MeasureText(s, size)
	}
	if c.View != nil && c.View.measure != nil {
		return c.View.measure(s, size)
	}
	return Vec2{float64(len([]rune(s))) * size * 0.55, size * 1.2}
}

func (c *Context) emit(ev ChangeEvent) {
	if c.View != nil {
		ev.Source = c.Element
		c.View.emit(ev)
	}
}

// Ancestor returns the nearest context, starting with c itself, whose
// element is e, or nil.
func (c *Context) Ancestor(e Element) *Context {
	for p := c; p != nil; p = p.Parent {
		if p.Element == e {
			return p
		}
	}
	return nil
}
