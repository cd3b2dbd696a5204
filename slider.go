package arbor

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooFewStates is returned when a Selector is given fewer than two
// states.
var ErrTooFewStates = errors.New("selector needs at least two states")

// Slider maps pointer position along a track to a value in [0, 1]. It is
// horizontal when the track's maximum width exceeds its maximum height.
// Vertical sliders put 0 at the bottom.
//
// Grabbing the thumb keeps the grab offset, so the thumb does not jump
// under the pointer. A press and release without movement leaves the
// value unchanged.
type Slider struct {
	Tracker
	thumb, track Element
	value        float64
	horizontal   bool
	keyStep      float64

	// OnChange is called after every user edit.
	OnChange func(v float64)

	quantize func(v float64) float64
	changed  func(ctx *Context, v float64)
}

// NewSlider builds a slider from a thumb and a track element.
func NewSlider(thumb, track Element, init float64) *Slider {
	s := &Slider{}
	s.initSlider(thumb, track, init)
	return s
}

// NewHSlider creates a horizontal slider with the default thumb and track.
func NewHSlider(init float64) *Slider {
	return NewSlider(NewSliderThumb(16), NewSliderTrack(Horizontal, 4), init)
}

// NewVSlider creates a vertical slider with the default thumb and track.
func NewVSlider(init float64) *Slider {
	return NewSlider(NewSliderThumb(16), NewSliderTrack(Vertical, 4), init)
}

func (s *Slider) initSlider(thumb, track Element, init float64) {
	s.thumb = thumb
	s.track = track
	s.value = clamp01(init)
	s.keyStep = 0.01
	s.changed = s.notifyChange
	s.initTracker(s)
	var ctx Context
	l := track.Limits(&ctx)
	s.horizontal = l.Max.X > l.Max.Y
}

func (s *Slider) notifyChange(ctx *Context, v float64) {
	if s.OnChange != nil {
		s.OnChange(v)
	}
	ctx.emit(ChangeEvent{Type: ChangeValue, Value: v})
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// SetValue sets the value without notifying OnChange.
func (s *Slider) SetValue(v float64) {
	if s.quantize != nil {
		v = s.quantize(v)
	}
	s.value = clamp01(v)
}

// Horizontal reports whether the slider runs along the x axis. The
// orientation is fixed by the track when the slider is built.
func (s *Slider) Horizontal() bool { return s.horizontal }

func (s *Slider) edit(ctx *Context, v float64) {
	if s.quantize != nil {
		v = s.quantize(v)
	}
	v = clamp01(v)
	if v == s.value {
		return
	}
	s.value = v
	ctx.Refresh()
	s.changed(ctx, v)
}

func (s *Slider) Limits(ctx *Context) Limits {
	tctx := ctx.Sub(s.track, ctx.Bounds)
	l := s.track.Limits(&tctx)
	hctx := ctx.Sub(s.thumb, ctx.Bounds)
	th := s.thumb.Limits(&hctx)

	if s.horizontal {
		l.Min.Y = math.Max(l.Min.Y, th.Min.Y)
		l.Max.Y = math.Max(l.Max.Y, th.Max.Y)
		l.Min.X = math.Max(l.Min.X, th.Min.X*2)
	} else {
		l.Min.X = math.Max(l.Min.X, th.Min.X)
		l.Max.X = math.Max(l.Max.X, th.Max.X)
		l.Min.Y = math.Max(l.Min.Y, th.Min.Y*2)
	}
	l.Max.X = math.Max(l.Max.X, l.Min.X)
	l.Max.Y = math.Max(l.Max.Y, l.Min.Y)
	return l
}

func (s *Slider) thumbSize(ctx *Context) Vec2 {
	hctx := ctx.Sub(s.thumb, ctx.Bounds)
	th := s.thumb.Limits(&hctx)
	return Vec2{math.Min(th.Max.X, ctx.Bounds.Width), math.Min(th.Max.Y, ctx.Bounds.Height)}
}

// TrackBounds returns the track rectangle, centred across the slider.
func (s *Slider) TrackBounds(ctx *Context) Rect {
	tctx := ctx.Sub(s.track, ctx.Bounds)
	l := s.track.Limits(&tctx)
	b := ctx.Bounds
	if s.horizontal {
		h := math.Min(l.Max.Y, b.Height)
		return Rect{X: b.X, Y: b.Y + (b.Height-h)/2, Width: b.Width, Height: h}
	}
	w := math.Min(l.Max.X, b.Width)
	return Rect{X: b.X + (b.Width-w)/2, Y: b.Y, Width: w, Height: b.Height}
}

// ThumbBounds returns the thumb rectangle for the current value.
func (s *Slider) ThumbBounds(ctx *Context) Rect {
	b := ctx.Bounds
	size := s.thumbSize(ctx)
	if s.horizontal {
		return Rect{
			X:     b.X + (b.Width-size.X)*s.value,
			Y:     b.Y + (b.Height-size.Y)/2,
			Width: size.X, Height: size.Y,
		}
	}
	return Rect{
		X:     b.X + (b.Width-size.X)/2,
		Y:     b.Y + (b.Height-size.Y)*(1-s.value),
		Width: size.X, Height: size.Y,
	}
}

// valueFromPoint maps a thumb centre position to a value.
func (s *Slider) valueFromPoint(ctx *Context, p Vec2) float64 {
	b := ctx.Bounds
	size := s.thumbSize(ctx)
	var v float64
	if s.horizontal {
		if travel := b.Width - size.X; travel > 0 {
			v = (p.X - (b.X + size.X/2)) / travel
		}
	} else {
		if travel := b.Height - size.Y; travel > 0 {
			v = 1 - (p.Y-(b.Y+size.Y/2))/travel
		}
	}
	return clamp01(v)
}

func (s *Slider) Layout(ctx *Context) {
	s.Limits(ctx)
	tctx := ctx.Sub(s.track, s.TrackBounds(ctx))
	s.track.Layout(&tctx)
	hctx := ctx.Sub(s.thumb, s.ThumbBounds(ctx))
	s.thumb.Layout(&hctx)
}

func (s *Slider) Draw(ctx *Context) {
	tctx := ctx.Sub(s.track, s.TrackBounds(ctx))
	s.track.Draw(&tctx)
	hctx := ctx.Sub(s.thumb, s.ThumbBounds(ctx))
	s.thumb.Draw(&hctx)
}

func (s *Slider) BeginTracking(ctx *Context, info *TrackerInfo) {
	if tb := s.ThumbBounds(ctx); tb.Includes(info.Start) {
		info.Offset = info.Start.Sub(tb.Center())
	}
}

func (s *Slider) KeepTracking(ctx *Context, info *TrackerInfo) {
	if info.Current != info.Previous {
		s.edit(ctx, s.valueFromPoint(ctx, info.Current))
	}
}

func (s *Slider) EndTracking(ctx *Context, info *TrackerInfo) {
	if info.Processed {
		s.edit(ctx, s.valueFromPoint(ctx, info.Current))
	}
}

func (s *Slider) Scroll(ctx *Context, dir, p Vec2) bool {
	step := ctx.Theme().ScrollStep
	delta := dir.Y * step
	if s.horizontal {
		delta = -dir.X * step
	}
	old := s.value
	s.edit(ctx, s.value+delta)
	return s.value != old
}

func (s *Slider) WantsFocus() bool { return true }

// Key nudges the value with the arrow keys.
func (s *Slider) Key(ctx *Context, k KeyInfo) bool {
	if k.Action == KeyRelease {
		return false
	}
	switch k.Key {
	case KeyRight, KeyUp:
		s.edit(ctx, s.value+s.keyStep)
	case KeyLeft, KeyDown:
		s.edit(ctx, s.value-s.keyStep)
	case KeyHome:
		s.edit(ctx, 0)
	case KeyEnd:
		s.edit(ctx, 1)
	default:
		return false
	}
	return true
}

// Selector is a slider that snaps to one of a fixed number of evenly
// spaced states.
type Selector struct {
	Slider
	states int

	// OnSelect is called with the new state index after a user edit.
	OnSelect func(state int)
}

// NewSelector builds a selector with the given number of states.
func NewSelector(states int, thumb, track Element, init int) (*Selector, error) {
	if states < 2 {
		return nil, fmt.Errorf("arbor: selector with %d states: %w", states, ErrTooFewStates)
	}
	sel := &Selector{states: states}
	sel.initSlider(thumb, track, 0)
	sel.quantize = sel.snap
	sel.changed = sel.notifySelect
	sel.keyStep = 1 / float64(states-1)
	sel.Select(init)
	return sel, nil
}

// NewHSelector creates a horizontal selector with the default thumb and
// track.
func NewHSelector(states, init int) (*Selector, error) {
	return NewSelector(states, NewSliderThumb(16), NewSliderTrack(Horizontal, 4), init)
}

func (sel *Selector) snap(v float64) float64 {
	n := float64(sel.states - 1)
	return math.Round(clamp01(v)*n) / n
}

func (sel *Selector) notifySelect(ctx *Context, v float64) {
	i := sel.Selected()
	if sel.OnSelect != nil {
		sel.OnSelect(i)
	}
	ctx.emit(ChangeEvent{Type: ChangeSelect, Value: v, Index: i})
}

// States returns the number of states.
func (sel *Selector) States() int { return sel.states }

// Selected returns the current state index.
func (sel *Selector) Selected() int {
	return int(math.Round(sel.value * float64(sel.states-1)))
}

// Select moves to state i without notifying OnSelect.
func (sel *Selector) Select(i int) {
	if i < 0 {
		i = 0
	}
	if i >= sel.states {
		i = sel.states - 1
	}
	sel.value = float64(i) / float64(sel.states-1)
}

// Scroll is disabled for selectors.
func (sel *Selector) Scroll(*Context, Vec2, Vec2) bool { return false }

// SliderThumb is the default round slider handle.
type SliderThumb struct {
	BaseElement
	Size float64
}

// NewSliderThumb creates a thumb of the given diameter.
func NewSliderThumb(size float64) *SliderThumb { return &SliderThumb{Size: size} }

func (t *SliderThumb) Limits(*Context) Limits { return FixedLimits(t.Size, t.Size) }

func (t *SliderThumb) Draw(ctx *Context) {
	th := ctx.Theme()
	c := ctx.Bounds.Center()
	r := math.Min(ctx.Bounds.Width, ctx.Bounds.Height) / 2
	ctx.Canvas.FillCircle(c, r, th.ControlColor)
	ctx.Canvas.StrokeCircle(c, r, 1, th.FrameColor)
	ctx.Canvas.FillCircle(c, r/3, th.IndicatorColor)
}

// SliderTrack is the default slider groove.
type SliderTrack struct {
	BaseElement
	axis  Axis
	Thick float64
}

// NewSliderTrack creates a track along axis with the given thickness.
func NewSliderTrack(axis Axis, thick float64) *SliderTrack {
	return &SliderTrack{axis: axis, Thick: thick}
}

func (t *SliderTrack) Limits(*Context) Limits {
	if t.axis == Horizontal {
		return Limits{Min: Vec2{32, t.Thick}, Max: Vec2{FullExtent, t.Thick}}
	}
	return Limits{Min: Vec2{t.Thick, 32}, Max: Vec2{t.Thick, FullExtent}}
}

func (t *SliderTrack) Draw(ctx *Context) {
	th := ctx.Theme()
	ctx.Canvas.FillRoundRect(ctx.Bounds, t.Thick/2, th.FrameColor)
}
