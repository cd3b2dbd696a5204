package arbor

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// hookRecorder records its tracker hooks.
type hookRecorder struct {
	Tracker
	log    []string
	offset Vec2
}

func newHookRecorder() *hookRecorder {
	p := &hookRecorder{}
	p.initTracker(p)
	return p
}

func (p *hookRecorder) BeginTracking(_ *Context, info *TrackerInfo) {
	info.Offset = p.offset
	p.log = append(p.log, "begin")
}

func (p *hookRecorder) KeepTracking(_ *Context, info *TrackerInfo) {
	p.log = append(p.log, "keep")
}

func (p *hookRecorder) EndTracking(_ *Context, info *TrackerInfo) {
	if info.Processed {
		p.log = append(p.log, "end moved")
	} else {
		p.log = append(p.log, "end")
	}
}

func TestTrackerStates(t *testing.T) {
	p := newHookRecorder()
	ctx := testContext(p, 100, 100)

	p.Click(&ctx, MouseEvent{Down: true, Pos: Vec2{10, 10}})
	if !p.IsTracking() {
		t.Fatal("IsTracking = false after press")
	}
	p.Drag(&ctx, MouseEvent{Down: true, Pos: Vec2{10, 10}})
	p.Drag(&ctx, MouseEvent{Down: true, Pos: Vec2{20, 10}})
	p.Drag(&ctx, MouseEvent{Down: true, Pos: Vec2{30, 10}})
	p.Click(&ctx, MouseEvent{Pos: Vec2{30, 10}})
	if p.IsTracking() {
		t.Error("IsTracking = true after release")
	}

	want := []string{"begin", "keep", "keep", "end moved"}
	if diff := cmp.Diff(want, p.log); diff != "" {
		t.Errorf("hook log mismatch (-want +got):\n%s", diff)
	}
}

func TestTrackerPressReleaseIsNoop(t *testing.T) {
	p := newHookRecorder()
	ctx := testContext(p, 100, 100)
	p.Click(&ctx, MouseEvent{Down: true, Pos: Vec2{10, 10}})
	p.Click(&ctx, MouseEvent{Pos: Vec2{10, 10}})
	if diff := cmp.Diff([]string{"begin", "end"}, p.log); diff != "" {
		t.Errorf("hook log mismatch (-want +got):\n%s", diff)
	}
}

func TestTrackerOffset(t *testing.T) {
	p := newHookRecorder()
	p.offset = Vec2{5, -5}
	ctx := testContext(p, 100, 100)
	p.Click(&ctx, MouseEvent{Down: true, Pos: Vec2{10, 10}})
	if got, want := p.state.Current, (Vec2{5, 15}); got != want {
		t.Errorf("Current = %v, want %v", got, want)
	}
	p.Drag(&ctx, MouseEvent{Down: true, Pos: Vec2{12, 10}})
	if got, want := p.state.Moved(), (Vec2{2, 0}); got != want {
		t.Errorf("Moved = %v, want %v", got, want)
	}
}

func TestTrackerCancel(t *testing.T) {
	p := newHookRecorder()
	ctx := testContext(p, 100, 100)
	p.Click(&ctx, MouseEvent{Down: true, Pos: Vec2{10, 10}})
	p.CancelTracking(&ctx)
	p.Drag(&ctx, MouseEvent{Down: true, Pos: Vec2{50, 10}})
	if p.Click(&ctx, MouseEvent{Pos: Vec2{50, 10}}) {
		t.Error("release after cancel should not be consumed")
	}
	if diff := cmp.Diff([]string{"begin", "end"}, p.log); diff != "" {
		t.Errorf("hook log mismatch (-want +got):\n%s", diff)
	}
}

func TestTrackerEndFocusEndsDrag(t *testing.T) {
	p := newHookRecorder()
	ctx := testContext(p, 100, 100)
	p.Click(&ctx, MouseEvent{Down: true, Pos: Vec2{10, 10}})
	p.Drag(&ctx, MouseEvent{Down: true, Pos: Vec2{30, 10}})
	p.EndFocus()
	p.EndFocus()
	if diff := cmp.Diff([]string{"begin", "keep", "end moved"}, p.log); diff != "" {
		t.Errorf("hook log mismatch (-want +got):\n%s", diff)
	}
	if p.IsTracking() {
		t.Error("still tracking after EndFocus")
	}
}

func TestSliderGrabKeepsValue(t *testing.T) {
	s := NewHSlider(0.25)
	var changes int
	s.OnChange = func(float64) { changes++ }
	ctx := testContext(s, 100, 16)
	tb := s.ThumbBounds(&ctx)

	// Grab the thumb off-centre and release without moving.
	p := Vec2{tb.X + 2, tb.Y + 3}
	s.Click(&ctx, MouseEvent{Down: true, Pos: p})
	s.Click(&ctx, MouseEvent{Pos: p})
	if s.Value() != 0.25 || changes != 0 {
		t.Errorf("value = %v after %d changes, want 0.25 unchanged", s.Value(), changes)
	}

	// Press on the track away from the thumb, release without moving.
	s.Click(&ctx, MouseEvent{Down: true, Pos: Vec2{90, 8}})
	s.Click(&ctx, MouseEvent{Pos: Vec2{90, 8}})
	if s.Value() != 0.25 || changes != 0 {
		t.Errorf("value = %v after %d changes, want 0.25 unchanged", s.Value(), changes)
	}
}

func TestSliderDrag(t *testing.T) {
	s := NewHSlider(0)
	ctx := testContext(s, 100, 16)
	if !s.Horizontal() {
		t.Fatal("expected horizontal slider")
	}
	// Travel is 100 - 16 = 84 pixels.
	s.Click(&ctx, MouseEvent{Down: true, Pos: Vec2{8, 8}})
	s.Drag(&ctx, MouseEvent{Down: true, Pos: Vec2{50, 8}})
	if got, want := s.Value(), 0.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("value after drag = %v, want %v", got, want)
	}
	s.Drag(&ctx, MouseEvent{Down: true, Pos: Vec2{500, 8}})
	s.Click(&ctx, MouseEvent{Pos: Vec2{500, 8}})
	if got := s.Value(); got != 1 {
		t.Errorf("value past the end = %v, want 1", got)
	}
}

func TestVerticalSliderBottomIsZero(t *testing.T) {
	s := NewVSlider(0)
	ctx := testContext(s, 16, 100)
	if s.Horizontal() {
		t.Fatal("expected vertical slider")
	}
	if got := s.ThumbBounds(&ctx).Y; got != 84 {
		t.Errorf("thumb Y at 0 = %v, want 84", got)
	}
	s.SetValue(1)
	if got := s.ThumbBounds(&ctx).Y; got != 0 {
		t.Errorf("thumb Y at 1 = %v, want 0", got)
	}
}

func TestSliderKeys(t *testing.T) {
	s := NewHSlider(0.5)
	ctx := testContext(s, 100, 16)
	tests := []struct {
		key  KeyCode
		want float64
	}{
		{KeyRight, 0.51},
		{KeyLeft, 0.5},
		{KeyEnd, 1},
		{KeyUp, 1},
		{KeyHome, 0},
		{KeyDown, 0},
	}
	for _, tt := range tests {
		s.Key(&ctx, KeyInfo{Key: tt.key})
		if got := s.Value(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("after key %d value = %v, want %v", tt.key, got, tt.want)
		}
	}
	if s.Key(&ctx, KeyInfo{Key: KeyRight, Action: KeyRelease}) {
		t.Error("key release should not be consumed")
	}
}

func TestSelectorQuantization(t *testing.T) {
	tests := []struct {
		states int
		in     float64
		want   float64
	}{
		{3, 0.4, 0.5},
		{3, 0.2, 0},
		{3, 0.8, 1},
		{2, 0.49, 0},
		{2, 0.5, 1},
		{5, 0.3, 0.25},
		{5, 1.7, 1},
		{5, -1, 0},
	}
	for _, tt := range tests {
		sel, err := NewHSelector(tt.states, 0)
		if err != nil {
			t.Fatal(err)
		}
		sel.SetValue(tt.in)
		want := math.Round(clamp01(tt.in)*float64(tt.states-1)) / float64(tt.states-1)
		if got := sel.Value(); got != tt.want || got != want {
			t.Errorf("states %d SetValue(%v) = %v, want %v", tt.states, tt.in, got, tt.want)
		}
	}
}

func TestSelectorTooFewStates(t *testing.T) {
	if _, err := NewHSelector(1, 0); !errors.Is(err, ErrTooFewStates) {
		t.Errorf("NewHSelector(1) error = %v, want ErrTooFewStates", err)
	}
}

func TestTwoStateSelectorDrag(t *testing.T) {
	sel, err := NewHSelector(2, 0)
	if err != nil {
		t.Fatal(err)
	}
	var picks []int
	sel.OnSelect = func(i int) { picks = append(picks, i) }
	ctx := testContext(sel, 100, 16)

	// Press on the thumb at x=0; the grab offset keeps the thumb under
	// the pointer so value = x / travel.
	sel.Click(&ctx, MouseEvent{Down: true, Pos: Vec2{0, 8}})
	flip := -1
	for x := 1.0; x <= 100; x++ {
		sel.Drag(&ctx, MouseEvent{Down: true, Pos: Vec2{x, 8}})
		v := sel.Value()
		if v != 0 && v != 1 {
			t.Fatalf("x=%v: intermediate value %v", x, v)
		}
		if v == 1 && flip < 0 {
			flip = int(x)
		}
	}
	sel.Click(&ctx, MouseEvent{Pos: Vec2{100, 8}})

	if flip != 42 {
		t.Errorf("value flipped at x=%d, want 42 (half of the 84px travel)", flip)
	}
	if got := sel.Value(); got != 1 {
		t.Errorf("value after release = %v, want 1", got)
	}
	if diff := cmp.Diff([]int{1}, picks); diff != "" {
		t.Errorf("OnSelect calls mismatch (-want +got):\n%s", diff)
	}
	if got := sel.Selected(); got != 1 {
		t.Errorf("Selected = %d, want 1", got)
	}
}

func TestSelectorIgnoresScroll(t *testing.T) {
	sel, _ := NewHSelector(3, 1)
	ctx := testContext(sel, 100, 16)
	if sel.Scroll(&ctx, Vec2{0, 5}, Vec2{50, 8}) {
		t.Error("selector should not consume scroll")
	}
	if sel.Selected() != 1 {
		t.Errorf("Selected = %d, want 1", sel.Selected())
	}
}

// stretchTrack reports its current bounds as its maximum size.
type stretchTrack struct{ BaseElement }

func (stretchTrack) Limits(ctx *Context) Limits {
	return Limits{Max: Vec2{ctx.Bounds.Width, ctx.Bounds.Height}}
}

func TestSliderLimitsKeepsOrientation(t *testing.T) {
	s := NewSlider(NewSliderThumb(8), stretchTrack{}, 0.5)
	if s.Horizontal() {
		t.Fatal("slider built horizontal from an empty track")
	}
	ctx := testContext(s, 200, 20)
	s.Limits(&ctx)
	s.Layout(&ctx)
	if s.Horizontal() {
		t.Error("Limits in a wide box changed the orientation")
	}
	if !NewHSlider(0).Horizontal() {
		t.Error("NewHSlider built a vertical slider")
	}
}
