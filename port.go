package arbor

import (
	"math"

	"github.com/tanema/gween/ease"
)

// minPortSize is the smallest extent a port asks for on a scrolling axis.
const minPortSize = 32

type portAxes uint8

const (
	scrollX portAxes = 1 << iota
	scrollY
)

// Port shows a window onto a subject that may be larger than the port.
// On each scrolling axis the subject is laid out at its minimum size and
// offset by the alignment: 0 shows the start, 1 the end. Drawing is
// clipped to the port's bounds.
type Port struct {
	Proxy
	axes           portAxes
	halign, valign float64
}

// NewPort creates a port scrolling on both axes.
func NewPort(subject Element) *Port { return newPort(subject, scrollX|scrollY) }

// NewVPort creates a port scrolling vertically.
func NewVPort(subject Element) *Port { return newPort(subject, scrollY) }

// NewHPort creates a port scrolling horizontally.
func NewHPort(subject Element) *Port { return newPort(subject, scrollX) }

func newPort(subject Element, axes portAxes) *Port {
	p := &Port{}
	p.initPort(subject, axes)
	return p
}

func (p *Port) initPort(subject Element, axes portAxes) {
	p.subject = subject
	p.axes = axes
	p.SetAdjuster(p)
}

// HAlign returns the horizontal scroll position in [0, 1].
func (p *Port) HAlign() float64 { return p.halign }

// VAlign returns the vertical scroll position in [0, 1].
func (p *Port) VAlign() float64 { return p.valign }

// SetHAlign sets the horizontal scroll position, clamped to [0, 1].
func (p *Port) SetHAlign(v float64) { p.halign = clamp01(v) }

// SetVAlign sets the vertical scroll position, clamped to [0, 1].
func (p *Port) SetVAlign(v float64) { p.valign = clamp01(v) }

// Value returns both scroll positions.
func (p *Port) Value() Vec2 { return Vec2{p.halign, p.valign} }

// SetValue sets both scroll positions.
func (p *Port) SetValue(v Vec2) {
	p.SetHAlign(v.X)
	p.SetVAlign(v.Y)
}

func (p *Port) subjectLimits(ctx *Context) Limits {
	sctx := p.SubjectContext(ctx)
	return p.subject.Limits(&sctx)
}

// overflow returns how far the subject's minimum size exceeds the port on
// each scrolling axis. Non-scrolling axes report zero.
func (p *Port) overflow(ctx *Context) Vec2 {
	l := p.subjectLimits(ctx)
	var o Vec2
	if p.axes&scrollX != 0 {
		o.X = math.Max(l.Min.X-ctx.Bounds.Width, 0)
	}
	if p.axes&scrollY != 0 {
		o.Y = math.Max(l.Min.Y-ctx.Bounds.Height, 0)
	}
	return o
}

// Limits lets a scrolling axis shrink to minPortSize and grow without
// bound. A non-scrolling axis follows the subject.
func (p *Port) Limits(ctx *Context) Limits {
	l := p.subjectLimits(ctx)
	if p.axes&scrollX != 0 {
		l.Min.X = math.Min(l.Min.X, minPortSize)
		l.Max.X = FullExtent
	}
	if p.axes&scrollY != 0 {
		l.Min.Y = math.Min(l.Min.Y, minPortSize)
		l.Max.Y = FullExtent
	}
	return l
}

// PrepareSubject sizes the subject to its minimum on each scrolling axis
// and places it by the alignment, then records this port in the subject's
// context. A subject larger than the port scrolls; a smaller one is
// positioned inside it.
func (p *Port) PrepareSubject(ctx *Context) {
	ctx.port = ctx.Parent
	l := p.subject.Limits(ctx)
	view := ctx.Parent.Bounds
	if p.axes&scrollX != 0 {
		ctx.Bounds.X -= (l.Min.X - view.Width) * p.halign
		ctx.Bounds.Width = l.Min.X
	}
	if p.axes&scrollY != 0 {
		ctx.Bounds.Y -= (l.Min.Y - view.Height) * p.valign
		ctx.Bounds.Height = l.Min.Y
	}
}

func (p *Port) RestoreSubject(*Context) {}

func (p *Port) Draw(ctx *Context) {
	defer ctx.Canvas.Save().Restore()
	ctx.Canvas.Clip(ctx.Bounds)
	p.Proxy.Draw(ctx)
}

// HitTest ignores points outside the port's visible window.
func (p *Port) HitTest(ctx *Context, pt Vec2) Element {
	if !ctx.Bounds.Includes(pt) {
		return nil
	}
	return p.Proxy.HitTest(ctx, pt)
}

// ScrollTo animates the scroll position to to over duration seconds.
// Use ease.Linear or any other gween easing function.
func (p *Port) ScrollTo(v *View, to Vec2, duration float32, fn ease.TweenFunc) {
	if v == nil || duration <= 0 {
		p.SetValue(to)
		if v != nil {
			v.RefreshElement(p)
		}
		return
	}
	v.Animate(NewTween(p.halign, clamp01(to.X), duration, fn, p.SetHAlign))
	v.Animate(NewTween(p.valign, clamp01(to.Y), duration, fn, func(y float64) {
		p.SetVAlign(y)
		v.RefreshElement(p)
	}))
}

// Scroller is a Port with wheel scrolling, keyboard paging and draggable
// scrollbars.
type Scroller struct {
	Port
	bar      Tracker
	barAxis  Axis
	dragging bool

	// NoScrollbars hides the scrollbars. Wheel and keyboard scrolling still
	// work.
	NoScrollbars bool
}

// NewScroller creates a scroller on both axes.
func NewScroller(subject Element) *Scroller { return newScroller(subject, scrollX|scrollY) }

// NewVScroller creates a vertical scroller.
func NewVScroller(subject Element) *Scroller { return newScroller(subject, scrollY) }

// NewHScroller creates a horizontal scroller.
func NewHScroller(subject Element) *Scroller { return newScroller(subject, scrollX) }

func newScroller(subject Element, axes portAxes) *Scroller {
	s := &Scroller{}
	s.initPort(subject, axes)
	s.bar.initTracker(s)
	return s
}

// scrollbar returns the track and thumb rectangles for axis, or ok=false
// when the subject fits on that axis.
func (s *Scroller) scrollbar(ctx *Context, axis Axis) (track, thumb Rect, ok bool) {
	if s.NoScrollbars {
		return Rect{}, Rect{}, false
	}
	over := s.overflow(ctx)
	if axis.of(over) <= 0 {
		return Rect{}, Rect{}, false
	}
	w := ctx.Theme().ScrollbarWidth
	b := ctx.Bounds
	if axis == Vertical {
		h := b.Height
		if over.X > 0 {
			h -= w
		}
		track = Rect{X: b.Right() - w, Y: b.Y, Width: w, Height: h}
		length := math.Max(h*b.Height/(b.Height+over.Y), w)
		thumb = Rect{X: track.X, Y: track.Y + (h-length)*s.valign, Width: w, Height: length}
		return track, thumb, true
	}
	wd := b.Width
	if over.Y > 0 {
		wd -= w
	}
	track = Rect{X: b.X, Y: b.Bottom() - w, Width: wd, Height: w}
	length := math.Max(wd*b.Width/(b.Width+over.X), w)
	thumb = Rect{X: track.X + (wd-length)*s.halign, Y: track.Y, Width: length, Height: w}
	return track, thumb, true
}

func (s *Scroller) Draw(ctx *Context) {
	s.Port.Draw(ctx)
	th := ctx.Theme()
	for _, axis := range []Axis{Vertical, Horizontal} {
		if _, thumb, ok := s.scrollbar(ctx, axis); ok {
			ctx.Canvas.FillRoundRect(thumb.Inset(2, 2, 2, 2), th.ScrollbarWidth/2-2, th.ScrollbarColor)
		}
	}
}

func (s *Scroller) WantsControl() bool { return true }

// WantsFocus is true so the scroller can page with the keyboard.
func (s *Scroller) WantsFocus() bool { return true }

func (s *Scroller) Click(ctx *Context, ev MouseEvent) bool {
	if ev.Down {
		for _, axis := range []Axis{Vertical, Horizontal} {
			if track, _, ok := s.scrollbar(ctx, axis); ok && track.Includes(ev.Pos) {
				s.barAxis = axis
				s.dragging = true
				return s.bar.Click(ctx, ev)
			}
		}
		return s.Port.Click(ctx, ev)
	}
	if s.dragging {
		s.dragging = false
		return s.bar.Click(ctx, ev)
	}
	return s.Port.Click(ctx, ev)
}

func (s *Scroller) Drag(ctx *Context, ev MouseEvent) {
	if s.dragging {
		s.bar.Drag(ctx, ev)
		return
	}
	s.Port.Drag(ctx, ev)
}

// CancelTracking abandons a scrollbar drag.
func (s *Scroller) CancelTracking(ctx *Context) {
	s.dragging = false
	s.bar.CancelTracking(ctx)
}

// BeginTracking grabs the thumb where it was pressed, or centres the thumb
// on the press point when the track outside the thumb was hit.
func (s *Scroller) BeginTracking(ctx *Context, info *TrackerInfo) {
	_, thumb, _ := s.scrollbar(ctx, s.barAxis)
	if thumb.Includes(info.Start) {
		info.Offset = info.Start.Sub(thumb.Center())
		return
	}
	s.alignToPoint(ctx, info.Start)
}

func (s *Scroller) KeepTracking(ctx *Context, info *TrackerInfo) {
	s.alignToPoint(ctx, info.Current)
}

func (s *Scroller) EndTracking(*Context, *TrackerInfo) {}

// alignToPoint scrolls so the thumb centre sits at p.
func (s *Scroller) alignToPoint(ctx *Context, p Vec2) {
	track, thumb, ok := s.scrollbar(ctx, s.barAxis)
	if !ok {
		return
	}
	if s.barAxis == Vertical {
		if travel := track.Height - thumb.Height; travel > 0 {
			s.SetVAlign((p.Y - track.Y - thumb.Height/2) / travel)
		}
	} else {
		if travel := track.Width - thumb.Width; travel > 0 {
			s.SetHAlign((p.X - track.X - thumb.Width/2) / travel)
		}
	}
	ctx.Refresh()
}

// Scroll gives the subject the first chance to consume the wheel, then
// scrolls by the wheel distance in pixels.
func (s *Scroller) Scroll(ctx *Context, dir, p Vec2) bool {
	if s.Port.Scroll(ctx, dir, p) {
		return true
	}
	sd := ctx.Theme().ScrollDirection
	over := s.overflow(ctx)
	moved := false
	if over.X > 0 {
		if h := clamp01(s.halign - dir.X*sd.X/over.X); h != s.halign {
			s.halign = h
			moved = true
		}
	}
	if over.Y > 0 {
		if v := clamp01(s.valign - dir.Y*sd.Y/over.Y); v != s.valign {
			s.valign = v
			moved = true
		}
	}
	if moved {
		ctx.Refresh()
	}
	return moved
}

// Key pages with Page Up/Down and jumps with Home/End when the subject
// does not consume the key.
func (s *Scroller) Key(ctx *Context, k KeyInfo) bool {
	if s.Port.Key(ctx, k) {
		return true
	}
	if k.Action == KeyRelease {
		return false
	}
	over := s.overflow(ctx)
	if over.Y <= 0 {
		return false
	}
	page := ctx.Bounds.Height / over.Y
	v := s.valign
	switch k.Key {
	case KeyPageUp:
		v -= page
	case KeyPageDown:
		v += page
	case KeyHome:
		v = 0
	case KeyEnd:
		v = 1
	default:
		return false
	}
	s.SetVAlign(v)
	ctx.Refresh()
	return true
}

func (s *Scroller) EndFocus() {
	s.dragging = false
	s.bar.EndFocus()
	s.Port.EndFocus()
}
