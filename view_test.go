package arbor

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// fakeClock is a manually advanced time source.
type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock { return &fakeClock{t: time.Unix(1000, 0)} }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// recordingSink collects change events.
type recordingSink struct{ events []ChangeEvent }

func (s *recordingSink) EmitEvent(ev ChangeEvent) { s.events = append(s.events, ev) }

func TestViewDirtyUnion(t *testing.T) {
	v := NewView(NewBox(ColorWhite), 100, 100)
	if r, ok := v.Dirty(); !ok || r != (Rect{Width: 100, Height: 100}) {
		t.Fatalf("initial dirty = %v, %v, want whole view", r, ok)
	}
	v.Draw(newRecordCanvas(100, 100))
	if _, ok := v.Dirty(); ok {
		t.Fatal("dirty region not cleared by Draw")
	}

	v.Refresh(Rect{X: 10, Y: 10, Width: 10, Height: 10})
	v.Refresh(Rect{X: 50, Y: 40, Width: 20, Height: 5})
	v.Refresh(Rect{X: 500, Y: 500, Width: 10, Height: 10})
	want := Rect{X: 10, Y: 10, Width: 60, Height: 35}
	if r, ok := v.Dirty(); !ok || r != want {
		t.Errorf("dirty = %v, %v, want %v", r, ok, want)
	}
}

func TestViewRefreshElement(t *testing.T) {
	a, b := NewBox(ColorWhite), NewBox(ColorBlack)
	v := NewView(NewVTile(a, NewUniformMargin(5, b)), 100, 100)
	v.Draw(newRecordCanvas(100, 100))

	v.RefreshElement(b)
	want := Rect{X: 5, Y: 55, Width: 90, Height: 40}
	if r, ok := v.Dirty(); !ok || r != want {
		t.Errorf("dirty = %v, %v, want %v", r, ok, want)
	}
}

func TestViewDrawRespectsClip(t *testing.T) {
	v := NewView(NewVTile(NewBox(ColorWhite), NewBox(ColorBlack)), 100, 100)
	c := newRecordCanvas(100, 100)
	c.Clip(Rect{Y: 60, Width: 100, Height: 40})
	v.Draw(c)
	if diff := cmp.Diff([]string{"fill 0,50 100x50"}, c.ops); diff != "" {
		t.Errorf("draw ops mismatch (-want +got):\n%s", diff)
	}
}

func TestViewPostOrder(t *testing.T) {
	clock := newFakeClock()
	v := NewView(NewBox(ColorWhite), 10, 10)
	v.SetClock(clock.now)

	var order []string
	v.Post(10*time.Millisecond, func() { order = append(order, "a") })
	v.Post(0, func() { order = append(order, "b") })
	v.Post(10*time.Millisecond, func() { order = append(order, "c") })
	v.Post(5*time.Millisecond, func() { order = append(order, "d") })

	if n := v.Poll(); n != 1 {
		t.Errorf("first Poll ran %d, want 1", n)
	}
	if at, ok := v.NextDeadline(); !ok || !at.Equal(clock.now().Add(5*time.Millisecond)) {
		t.Errorf("NextDeadline = %v, %v", at, ok)
	}
	clock.advance(10 * time.Millisecond)
	v.Poll()

	if diff := cmp.Diff([]string{"b", "d", "a", "c"}, order); diff != "" {
		t.Errorf("run order mismatch (-want +got):\n%s", diff)
	}
	if _, ok := v.NextDeadline(); ok {
		t.Error("queue should be empty")
	}
}

func TestViewPostFromCallbackWaits(t *testing.T) {
	clock := newFakeClock()
	v := NewView(NewBox(ColorWhite), 10, 10)
	v.SetClock(clock.now)
	var ran []int
	v.Post(0, func() {
		ran = append(ran, 1)
		v.Post(0, func() { ran = append(ran, 2) })
	})
	v.Poll()
	if diff := cmp.Diff([]int{1}, ran); diff != "" {
		t.Errorf("after first Poll (-want +got):\n%s", diff)
	}
	v.Poll()
	if diff := cmp.Diff([]int{1, 2}, ran); diff != "" {
		t.Errorf("after second Poll (-want +got):\n%s", diff)
	}
}

func TestViewOverlays(t *testing.T) {
	var log []string
	root := &probe{name: "root", log: &log, control: true}
	pop := &probe{name: "pop", log: &log, control: true, focus: true}
	v := NewView(root, 100, 100)
	v.Draw(newRecordCanvas(100, 100))

	v.OpenOverlay(pop, Rect{X: 20, Y: 20, Width: 30, Height: 30})
	if v.Overlays() != 1 {
		t.Fatalf("Overlays = %d, want 1", v.Overlays())
	}
	if r, ok := v.Dirty(); !ok || r != (Rect{X: 20, Y: 20, Width: 30, Height: 30}) {
		t.Errorf("dirty after open = %v, %v", r, ok)
	}

	v.Click(MouseEvent{Down: true, Pos: Vec2{30, 30}})
	v.Click(MouseEvent{Pos: Vec2{30, 30}})
	v.Click(MouseEvent{Down: true, Pos: Vec2{80, 80}})
	v.Click(MouseEvent{Pos: Vec2{80, 80}})
	want := []string{"pop down 30,30", "pop up 30,30", "root down 80,80", "root up 80,80"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("event log mismatch (-want +got):\n%s", diff)
	}
	if v.Focus() != pop || !pop.focused {
		t.Errorf("Focus = %v, want overlay", v.Focus())
	}

	if !v.CloseOverlay(pop) {
		t.Error("CloseOverlay = false, want true")
	}
	if v.CloseOverlay(pop) {
		t.Error("second CloseOverlay = true, want false")
	}
	if pop.focused || v.Focus() != nil {
		t.Error("closing the focused overlay should drop its focus")
	}
	log = log[:0]
	v.Click(MouseEvent{Down: true, Pos: Vec2{30, 30}})
	if diff := cmp.Diff([]string{"root down 30,30"}, log); diff != "" {
		t.Errorf("after close (-want +got):\n%s", diff)
	}
}

func TestViewKeyStartsFocus(t *testing.T) {
	var log []string
	ps := probes(&log, 2)
	v := NewView(hTileOf(ps), 100, 10)
	if v.Focus() != nil {
		t.Fatal("nothing should be focused initially")
	}
	if !v.Key(KeyInfo{Key: KeyTab}) {
		t.Error("Tab should move focus")
	}
	if v.Focus() != ps[1] {
		t.Errorf("Focus = %v, want p1", v.Focus())
	}
}

func TestViewEventSink(t *testing.T) {
	s := NewHSlider(0.5)
	v := NewView(s, 100, 16)
	sink := &recordingSink{}
	v.SetEventSink(sink)
	v.Key(KeyInfo{Key: KeyRight})
	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Type != ChangeValue || ev.Source != s || math.Abs(ev.Value-0.51) > 1e-9 {
		t.Errorf("event = %+v", ev)
	}
}

func TestViewAnimations(t *testing.T) {
	v := NewView(NewBox(ColorWhite), 10, 10)
	var x float64
	v.Animate(NewTween(0, 10, 1, nil, func(f float64) { x = f }))
	v.Update(0.5)
	if math.Abs(x-5) > 1e-4 {
		t.Errorf("x = %v halfway, want 5", x)
	}
	if !v.Animating() {
		t.Error("Animating = false halfway")
	}
	v.Update(0.6)
	if x != 10 || v.Animating() {
		t.Errorf("x = %v, animating = %v; want 10, false", x, v.Animating())
	}
}

type chainAnim struct {
	v       *View
	started bool
	child   *Tween
}

func (a *chainAnim) Update(float32) bool {
	if !a.started {
		a.started = true
		a.v.Animate(a.child)
	}
	return true
}

func TestViewAnimationStartedDuringStep(t *testing.T) {
	v := NewView(NewBox(ColorWhite), 10, 10)
	var x float64
	child := NewTween(0, 1, 1, nil, func(f float64) { x = f })
	v.Animate(&chainAnim{v: v, child: child})
	v.Update(0.1)
	if !v.Animating() {
		t.Fatal("animation started during a step was lost")
	}
	v.Update(1)
	if x != 1 {
		t.Errorf("x = %v, want 1", x)
	}
}

func TestViewResizeRelayouts(t *testing.T) {
	a, b := NewBox(ColorWhite), NewBox(ColorBlack)
	tile := NewVTile(a, b)
	v := NewView(tile, 100, 100)
	v.Draw(newRecordCanvas(100, 100))
	v.Resize(100, 200)
	c := newRecordCanvas(100, 200)
	v.Draw(c)
	want := []string{"fill 0,0 100x100", "fill 0,100 100x100"}
	if diff := cmp.Diff(want, c.ops); diff != "" {
		t.Errorf("draw ops mismatch (-want +got):\n%s", diff)
	}
}

func TestViewSetRootResetsFocus(t *testing.T) {
	var log []string
	ps := probes(&log, 1)
	v := NewView(hTileOf(ps), 10, 10)
	v.Key(KeyInfo{Key: KeyEnter})
	if v.Focus() != ps[0] {
		t.Fatalf("Focus = %v, want p0", v.Focus())
	}
	v.SetRoot(NewBox(ColorWhite))
	if v.Focus() != nil {
		t.Errorf("Focus after SetRoot = %v, want nil", v.Focus())
	}
}

func TestViewTheme(t *testing.T) {
	v := NewView(NewBox(ColorWhite), 10, 10)
	th := DefaultTheme()
	th.FontSize = 20
	v.SetTheme(th)
	ctx := v.context(nil)
	if ctx.Theme().FontSize != 20 {
		t.Errorf("context FontSize = %v, want 20", ctx.Theme().FontSize)
	}
	v.SetTheme(nil)
	if v.Theme().FontSize != DefaultTheme().FontSize {
		t.Error("SetTheme(nil) should restore the default theme")
	}
}
