package arbor

import "math"

// Margin insets its subject by fixed amounts on each edge.
type Margin struct {
	Proxy
	Left, Top, Right, Bottom float64
}

// NewMargin wraps subject with the given edge insets.
func NewMargin(left, top, right, bottom float64, subject Element) *Margin {
	m := &Margin{Left: left, Top: top, Right: right, Bottom: bottom}
	m.subject = subject
	m.SetAdjuster(m)
	return m
}

// NewUniformMargin wraps subject with the same inset on all edges.
func NewUniformMargin(inset float64, subject Element) *Margin {
	return NewMargin(inset, inset, inset, inset, subject)
}

// Limits grows the subject's limits by the insets, keeping max within
// FullExtent.
func (m *Margin) Limits(ctx *Context) Limits {
	l := m.Proxy.Limits(ctx)
	h, v := m.Left+m.Right, m.Top+m.Bottom
	l.Min.X += h
	l.Min.Y += v
	l.Max.X = math.Min(l.Max.X+h, FullExtent)
	l.Max.Y = math.Min(l.Max.Y+v, FullExtent)
	l.Min.X = math.Min(l.Min.X, l.Max.X)
	l.Min.Y = math.Min(l.Min.Y, l.Max.Y)
	return l
}

func (m *Margin) PrepareSubject(ctx *Context) {
	ctx.Bounds = ctx.Bounds.Inset(m.Left, m.Top, m.Right, m.Bottom)
}

func (m *Margin) RestoreSubject(*Context) {}

// Align positions a subject at its minimum size inside larger bounds.
// X and Y are fractions: 0 aligns left/top, 0.5 centres, 1 aligns
// right/bottom. An axis that is not aligned passes bounds through.
type Align struct {
	Proxy
	X, Y           float64
	alignX, alignY bool
}

// NewAlign aligns subject on both axes.
func NewAlign(x, y float64, subject Element) *Align {
	return newAlign(x, y, true, true, subject)
}

// NewHAlign aligns subject horizontally only.
func NewHAlign(x float64, subject Element) *Align {
	return newAlign(x, 0, true, false, subject)
}

// NewVAlign aligns subject vertically only.
func NewVAlign(y float64, subject Element) *Align {
	return newAlign(0, y, false, true, subject)
}

func newAlign(x, y float64, ax, ay bool, subject Element) *Align {
	a := &Align{X: x, Y: y, alignX: ax, alignY: ay}
	a.subject = subject
	a.SetAdjuster(a)
	return a
}

func (a *Align) Limits(ctx *Context) Limits {
	l := a.Proxy.Limits(ctx)
	if a.alignX {
		l.Max.X = FullExtent
	}
	if a.alignY {
		l.Max.Y = FullExtent
	}
	return l
}

func (a *Align) PrepareSubject(ctx *Context) {
	l := a.subject.Limits(ctx)
	if a.alignX && ctx.Bounds.Width > l.Min.X {
		ctx.Bounds.X += (ctx.Bounds.Width - l.Min.X) * a.X
		ctx.Bounds.Width = l.Min.X
	}
	if a.alignY && ctx.Bounds.Height > l.Min.Y {
		ctx.Bounds.Y += (ctx.Bounds.Height - l.Min.Y) * a.Y
		ctx.Bounds.Height = l.Min.Y
	}
}

func (a *Align) RestoreSubject(*Context) {}

// Limit constrains the subject's limits to a range. FixedSize, MinSize,
// HSize and VSize are Limits with common ranges.
type Limit struct {
	Proxy
	Range Limits
}

// NewLimit constrains subject to r.
func NewLimit(r Limits, subject Element) *Limit {
	l := &Limit{Range: r}
	l.subject = subject
	return l
}

// FixedSize pins subject to w x h.
func FixedSize(w, h float64, subject Element) *Limit {
	return NewLimit(FixedLimits(w, h), subject)
}

// MinSize raises subject's minimum to at least w x h.
func MinSize(w, h float64, subject Element) *Limit {
	return NewLimit(Limits{Min: Vec2{w, h}, Max: Vec2{FullExtent, FullExtent}}, subject)
}

// MaxSize lowers subject's maximum to at most w x h.
func MaxSize(w, h float64, subject Element) *Limit {
	return NewLimit(Limits{Max: Vec2{w, h}}, subject)
}

// HSize pins subject's width.
func HSize(w float64, subject Element) *Limit {
	return NewLimit(Limits{Min: Vec2{w, 0}, Max: Vec2{w, FullExtent}}, subject)
}

// VSize pins subject's height.
func VSize(h float64, subject Element) *Limit {
	return NewLimit(Limits{Min: Vec2{0, h}, Max: Vec2{FullExtent, h}}, subject)
}

func (l *Limit) Limits(ctx *Context) Limits {
	sl := l.Proxy.Limits(ctx)
	r := l.Range
	return Limits{
		Min: Vec2{clamp(sl.Min.X, r.Min.X, r.Max.X), clamp(sl.Min.Y, r.Min.Y, r.Max.Y)},
		Max: Vec2{clamp(sl.Max.X, r.Min.X, r.Max.X), clamp(sl.Max.Y, r.Min.Y, r.Max.Y)},
	}
}

// Spanned overrides its subject's flex weight.
type Spanned struct {
	Proxy
	Weight float64
}

// NewSpanned sets the flex weight of subject inside a Tile.
func NewSpanned(weight float64, subject Element) *Spanned {
	s := &Spanned{Weight: weight}
	s.subject = subject
	return s
}

func (s *Spanned) Span() float64 { return s.Weight }

// Hidable toggles the visibility of its subject. A hidden subject keeps its
// limits but is neither drawn nor hit.
type Hidable struct {
	Proxy
	Hidden bool
}

// NewHidable wraps subject, initially visible.
func NewHidable(subject Element) *Hidable {
	h := &Hidable{}
	h.subject = subject
	return h
}

func (h *Hidable) Draw(ctx *Context) {
	if !h.Hidden {
		h.Proxy.Draw(ctx)
	}
}

func (h *Hidable) HitTest(ctx *Context, p Vec2) Element {
	if h.Hidden {
		return nil
	}
	return h.Proxy.HitTest(ctx, p)
}

func (h *Hidable) WantsControl() bool { return !h.Hidden && h.Proxy.WantsControl() }
func (h *Hidable) WantsFocus() bool { return !h.Hidden && h.Proxy.WantsFocus() }

// Ref is a typed shared handle. Several containers may hold the same Ref;
// a mutation through Get is visible to every holder.
type Ref[T Element] struct {
	Proxy
	target T
}

// Share wraps e so it can be placed in several containers.
func Share[T Element](e T) *Ref[T] {
	r := &Ref[T]{target: e}
	r.subject = e
	return r
}

// Get returns the shared element.
func (r *Ref[T]) Get() T { return r.target }
