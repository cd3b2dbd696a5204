package arbor

import (
	"math"
	"sort"
)

// CellComposer supplies the rows of a DynamicList on demand.
type CellComposer interface {
	// Len returns the number of rows.
	Len() int
	// Compose creates the element for row i.
	Compose(i int) Element
	// MainAxisSize returns the extent of row i along the list axis.
	MainAxisSize(ctx *Context, i int) float64
	// CrossAxisLimits returns the min and max extent of every row across
	// the list axis.
	CrossAxisLimits(ctx *Context) (min, max float64)
}

// FixedCellComposer composes rows of a uniform size with a function.
type FixedCellComposer struct {
	Count    int
	Size     float64
	CrossMin float64
	CrossMax float64
	Func     func(i int) Element
}

func (c *FixedCellComposer) Len() int { return c.Count }
func (c *FixedCellComposer) Compose(i int) Element { return c.Func(i) }
func (c *FixedCellComposer) MainAxisSize(*Context, int) float64 { return c.Size }
func (c *FixedCellComposer) CrossAxisLimits(*Context) (float64, float64) {
	max := c.CrossMax
	if max <= 0 {
		max = FullExtent
	}
	return c.CrossMin, math.Max(max, c.CrossMin)
}

// Resize changes the row count.
func (c *FixedCellComposer) Resize(n int) { c.Count = n }

type listCell struct {
	pos, size float64
	elem      Element
	layoutID  int
}

// ListStats reports what the last Draw of a DynamicList did.
type ListStats struct {
	Drawn    int // rows drawn
	Realized int // rows currently holding an element
}

// DynamicList is a virtualized list. Row extents are cached up front, but
// row elements are only composed when they become visible and are
// released when they scroll out of view, so drawing cost depends on the
// visible area rather than the row count.
type DynamicList struct {
	CompositeBase
	axis     Axis
	composer CellComposer

	cells         []listCell
	fullSize      float64
	layoutID      int
	updateRequest bool
	prevSize      Vec2
	windowStart   int
	windowEnd     int
	drawn         int

	// live holds the index of every row with a composed element.
	live map[int]struct{}
}

// NewDynamicList creates a vertical list.
func NewDynamicList(c CellComposer) *DynamicList { return newDynamicList(Vertical, c) }

// NewHDynamicList creates a horizontal list.
func NewHDynamicList(c CellComposer) *DynamicList { return newDynamicList(Horizontal, c) }

func newDynamicList(axis Axis, c CellComposer) *DynamicList {
	l := &DynamicList{axis: axis, composer: c, updateRequest: true, live: make(map[int]struct{})}
	l.initComposite(l)
	return l
}

// Update discards all cached rows; they are rebuilt from the composer on
// next use.
func (l *DynamicList) Update() {
	l.cells = nil
	l.fullSize = 0
	l.updateRequest = true
	l.windowStart, l.windowEnd = 0, 0
	clear(l.live)
	l.CompositeBase.Reset()
}

// Resize changes the row count of a composer that supports it and
// rebuilds the list.
func (l *DynamicList) Resize(n int) {
	if r, ok := l.composer.(interface{ Resize(int) }); ok {
		r.Resize(n)
	}
	l.Update()
}

func (l *DynamicList) sync(ctx *Context) {
	if !l.updateRequest {
		return
	}
	n := l.composer.Len()
	l.cells = make([]listCell, n)
	var pos float64
	for i := 0; i < n; i++ {
		size := l.composer.MainAxisSize(ctx, i)
		l.cells[i] = listCell{pos: pos, size: size, layoutID: -1}
		pos += size
	}
	l.fullSize = pos
	l.layoutID++
	l.updateRequest = false
}

// Len returns the number of cached rows.
func (l *DynamicList) Len() int { return len(l.cells) }

// At returns row i, composing it if needed.
func (l *DynamicList) At(i int) Element {
	c := &l.cells[i]
	if c.elem == nil {
		c.elem = l.composer.Compose(i)
		if c.elem == nil {
			c.elem = Empty{}
		}
		c.layoutID = -1
		l.live[i] = struct{}{}
	}
	return c.elem
}

// Stats reports rows drawn by the last Draw and rows currently realized.
func (l *DynamicList) Stats() ListStats {
	return ListStats{Drawn: l.drawn, Realized: len(l.live)}
}

func (l *DynamicList) Limits(ctx *Context) Limits {
	l.sync(ctx)
	if len(l.cells) == 0 {
		return Limits{}
	}
	cmin, cmax := l.composer.CrossAxisLimits(ctx)
	main := math.Min(l.fullSize, FullExtent)
	var lim Limits
	l.axis.set(&lim.Min, main)
	l.axis.set(&lim.Max, main)
	l.axis.other().set(&lim.Min, cmin)
	l.axis.other().set(&lim.Max, cmax)
	return lim
}

// Layout only invalidates row layouts when the list's size changes; rows
// are laid out lazily as they are drawn.
func (l *DynamicList) Layout(ctx *Context) {
	l.sync(ctx)
	if size := ctx.Bounds.Size(); size != l.prevSize {
		l.prevSize = size
		l.layoutID++
	}
}

func (l *DynamicList) mainStart(r Rect) float64 { return l.axis.of(Vec2{r.X, r.Y}) }

func (l *DynamicList) mainEnd(r Rect) float64 { return l.axis.of(Vec2{r.Right(), r.Bottom()}) }

func (l *DynamicList) cellBounds(ctx *Context, i int) Rect {
	r := ctx.Bounds
	c := l.cells[i]
	if l.axis == Vertical {
		r.Y += c.pos
		r.Height = c.size
	} else {
		r.X += c.pos
		r.Width = c.size
	}
	return r
}

func (l *DynamicList) BoundsOf(ctx *Context, i int) Rect {
	l.sync(ctx)
	return l.cellBounds(ctx, i)
}

// firstEndingAfter returns the first row whose end lies at or beyond pos,
// measured from the list origin.
func (l *DynamicList) firstEndingAfter(pos float64) int {
	return sort.Search(len(l.cells), func(i int) bool {
		return l.cells[i].pos+l.cells[i].size >= pos
	})
}

func overlaps(a, b Rect) bool {
	return a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom()
}

func (l *DynamicList) Draw(ctx *Context) {
	l.sync(ctx)
	l.drawn = 0
	if ctx.Bounds.Size() != l.prevSize {
		l.Layout(ctx)
	}
	clip := ctx.Canvas.ClipExtent()
	if !overlaps(clip, ctx.Bounds) {
		l.release(0, 0)
		return
	}

	start := l.mainStart(ctx.Bounds)
	clipEnd := l.mainEnd(clip)
	first := l.firstEndingAfter(l.mainStart(clip) - start)
	i := first
	for ; i < len(l.cells); i++ {
		b := l.cellBounds(ctx, i)
		if overlaps(clip, b) {
			e := l.At(i)
			c := &l.cells[i]
			cctx := ctx.Sub(e, b)
			if c.layoutID != l.layoutID {
				e.Layout(&cctx)
				c.layoutID = l.layoutID
			}
			e.Draw(&cctx)
			l.drawn++
		}
		if l.mainStart(b) >= clipEnd {
			break
		}
	}
	l.release(first, i)
}

// release drops the element of every realized row outside [start, end).
// Rows composed for hit testing or focus count as realized too. The
// focused row and the row tracking a drag are kept.
func (l *DynamicList) release(start, end int) {
	for i := range l.live {
		if i >= start && i < end || i == l.focus || i == l.dragTracking {
			continue
		}
		if i < len(l.cells) {
			l.cells[i].elem = nil
			l.cells[i].layoutID = -1
		}
		delete(l.live, i)
	}
	l.windowStart, l.windowEnd = start, end
}

func (l *DynamicList) hitElement(ctx *Context, p Vec2, control bool) hitInfo {
	l.sync(ctx)
	if len(l.cells) == 0 {
		return noHit
	}
	i := l.firstEndingAfter(l.axis.of(p) - l.mainStart(ctx.Bounds))
	if i >= len(l.cells) {
		return noHit
	}
	if info, ok := l.tryHit(ctx, p, control, i); ok {
		return info
	}
	return noHit
}

// WantsControl assumes rows may be interactive; checking every row would
// compose all of them.
func (l *DynamicList) WantsControl() bool { return l.composer.Len() > 0 }

// WantsFocus reports whether any realized row wants focus.
func (l *DynamicList) WantsFocus() bool {
	for i := range l.cells {
		if e := l.cells[i].elem; e != nil && e.WantsFocus() {
			return true
		}
	}
	return false
}

// BeginFocus restores the previously focused row, or focuses the first
// visible row that wants it.
func (l *DynamicList) BeginFocus(req FocusRequest) {
	if l.focus < 0 && l.savedFocus >= 0 && l.savedFocus < len(l.cells) {
		l.focus = l.savedFocus
	}
	if l.focus < 0 {
		for i := l.windowStart; i < l.windowEnd && i < len(l.cells); i++ {
			if e := l.cells[i].elem; e != nil && e.WantsFocus() {
				l.focus = i
				break
			}
		}
	}
	l.savedFocus = -1
	if l.focus >= 0 {
		l.At(l.focus).BeginFocus(req)
	}
}

// Key goes to the focused row only.
func (l *DynamicList) Key(ctx *Context, k KeyInfo) bool {
	if l.focus < 0 || l.focus >= len(l.cells) {
		return false
	}
	e, cctx := l.childContext(ctx, l.focus)
	return e.Key(&cctx, k)
}

// Refresh searches realized rows only.
func (l *DynamicList) Refresh(ctx *Context, target Element) {
	if target == ctx.Element {
		ctx.Refresh()
		return
	}
	for i := range l.cells {
		if e := l.cells[i].elem; e != nil {
			cctx := ctx.Sub(e, l.cellBounds(ctx, i))
			e.Refresh(&cctx, target)
		}
	}
}
