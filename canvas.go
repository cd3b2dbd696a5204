package arbor

import "fmt"

// Canvas is the drawing surface elements render onto. Coordinates are in
// view space; the only state is the clip rectangle, which is pushed and
// popped with Save and CanvasState.Restore.
//
// Typical use inside Draw:
//
//	defer ctx.Canvas.Save().Restore()
//	ctx.Canvas.Clip(ctx.Bounds)
type Canvas interface {
	// Save records the current state. Restoring the returned state also
	// discards any later saves that were never restored.
	Save() CanvasState

	// Clip intersects the current clip rectangle with r.
	Clip(r Rect)

	// ClipExtent returns the current clip rectangle.
	ClipExtent() Rect

	FillRect(r Rect, c Color)
	StrokeRect(r Rect, width float64, c Color)
	FillRoundRect(r Rect, radius float64, c Color)
	FillCircle(center Vec2, radius float64, c Color)
	StrokeCircle(center Vec2, radius, width float64, c Color)
	Line(a, b Vec2, width float64, c Color)

	// FillText draws s with its top-left corner at p.
	FillText(p Vec2, s string, size float64, c Color)

	// MeasureText returns the width and height s occupies at size.
	MeasureText(s string, size float64) Vec2
}

// CanvasState is a saved canvas state.
type CanvasState interface {
	Restore()
}

// clipStack is the save/restore bookkeeping shared by canvas
// implementations.
type clipStack struct {
	clip  Rect
	saved []Rect
}

type clipState struct {
	stack *clipStack
	depth int
}

func (s clipState) Restore() {
	st := s.stack
	if s.depth > len(st.saved) {
		if globalDebug {
			panic(fmt.Sprintf("arbor debug: canvas restore to depth %d but only %d saved", s.depth, len(st.saved)))
		}
		return
	}
	st.clip = st.saved[s.depth-1]
	st.saved = st.saved[:s.depth-1]
}

func (st *clipStack) save() CanvasState {
	st.saved = append(st.saved, st.clip)
	return clipState{stack: st, depth: len(st.saved)}
}

func (st *clipStack) intersect(r Rect) {
	st.clip = st.clip.Intersect(r)
}

// visible reports whether r can produce pixels under the current clip.
func visible(c Canvas, r Rect) bool {
	if c == nil {
		return true
	}
	clip := c.ClipExtent()
	return !clip.Empty() && clip.Intersects(r)
}
