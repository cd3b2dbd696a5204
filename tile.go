package arbor

import (
	"math"
	"sort"
)

// Tile arranges its children along one axis, dividing the available
// extent with Distribute. On the other axis every child gets the full
// extent of the tile, clamped to the child's own limits.
type Tile struct {
	CompositeBase
	ElementList

	axis       Axis
	offsets    []float64 // main-axis start of each child, plus the end
	crossRange []Vec2    // per child: X is the cross-axis min, Y the max
	layoutSize Vec2
	valid      bool
}

// NewVTile stacks elems top to bottom.
func NewVTile(elems ...Element) *Tile { return newTile(Vertical, elems) }

// NewHTile places elems left to right.
func NewHTile(elems ...Element) *Tile { return newTile(Horizontal, elems) }

func newTile(axis Axis, elems []Element) *Tile {
	t := &Tile{axis: axis}
	t.initComposite(t)
	t.initList(t, t.invalidate, elems)
	return t
}

func (t *Tile) invalidate() {
	t.CompositeBase.Reset()
	t.valid = false
}

// Axis reports the main axis.
func (t *Tile) Axis() Axis { return t.axis }

// Limits sums the children's limits along the main axis. Across it the
// tile needs the largest child minimum and allows the smallest child
// maximum.
func (t *Tile) Limits(ctx *Context) Limits {
	main, cross := t.axis, t.axis.other()
	var mainMin, mainMax, crossMin float64
	crossMax := FullExtent
	for _, e := range t.elems {
		cctx := ctx.Sub(e, ctx.Bounds)
		l := e.Limits(&cctx)
		mainMin += main.of(l.Min)
		mainMax += main.of(l.Max)
		crossMin = math.Max(crossMin, cross.of(l.Min))
		crossMax = math.Min(crossMax, cross.of(l.Max))
	}
	mainMax = math.Min(mainMax, FullExtent)
	mainMin = math.Min(mainMin, FullExtent)
	crossMax = math.Max(crossMax, crossMin)
	if len(t.elems) == 0 {
		crossMax = FullExtent
	}
	var l Limits
	main.set(&l.Min, mainMin)
	main.set(&l.Max, mainMax)
	cross.set(&l.Min, crossMin)
	cross.set(&l.Max, crossMax)
	return l
}

func (t *Tile) Layout(ctx *Context) {
	main, cross := t.axis, t.axis.other()
	n := len(t.elems)
	items := make([]FlexItem, n)
	t.crossRange = make([]Vec2, n)
	for i, e := range t.elems {
		cctx := ctx.Sub(e, ctx.Bounds)
		l := e.Limits(&cctx)
		if globalDebug {
			debugCheckLimits(e, l)
		}
		items[i] = FlexItem{Min: main.of(l.Min), Max: main.of(l.Max), Span: e.Span()}
		t.crossRange[i] = Vec2{cross.of(l.Min), cross.of(l.Max)}
	}
	alloc := Distribute(main.of(ctx.Bounds.Size()), items)
	t.offsets = make([]float64, n+1)
	for i, a := range alloc {
		t.offsets[i+1] = t.offsets[i] + a
	}
	t.layoutSize = ctx.Bounds.Size()
	t.valid = true

	for i, e := range t.elems {
		cctx := ctx.Sub(e, t.BoundsOf(ctx, i))
		e.Layout(&cctx)
	}
}

func (t *Tile) ensureLayout(ctx *Context) {
	if !t.valid || t.layoutSize != ctx.Bounds.Size() || len(t.offsets) != len(t.elems)+1 {
		t.Layout(ctx)
	}
}

// BoundsOf returns the rectangle child i was given by the last layout.
func (t *Tile) BoundsOf(ctx *Context, i int) Rect {
	t.ensureLayout(ctx)
	b := ctx.Bounds
	cr := t.crossRange[i]
	start, extent := t.offsets[i], t.offsets[i+1]-t.offsets[i]
	if t.axis == Vertical {
		w := math.Min(clamp(b.Width, cr.X, cr.Y), b.Width)
		return Rect{X: b.X, Y: b.Y + start, Width: w, Height: extent}
	}
	h := math.Min(clamp(b.Height, cr.X, cr.Y), b.Height)
	return Rect{X: b.X + start, Y: b.Y, Width: extent, Height: h}
}

func (t *Tile) Draw(ctx *Context) {
	t.ensureLayout(ctx)
	t.CompositeBase.Draw(ctx)
}

// hitElement binary-searches the child whose main-axis span contains p.
func (t *Tile) hitElement(ctx *Context, p Vec2, control bool) hitInfo {
	n := len(t.elems)
	if n == 0 {
		return noHit
	}
	t.ensureLayout(ctx)
	pos := t.axis.of(p) - t.axis.of(Vec2{ctx.Bounds.X, ctx.Bounds.Y})
	i := sort.Search(n, func(i int) bool { return t.offsets[i+1] >= pos })
	if i >= n {
		return noHit
	}
	if info, ok := t.tryHit(ctx, p, control, i); ok {
		return info
	}
	return noHit
}
