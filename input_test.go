package arbor

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// clickCounter logs presses with their click count.
type clickCounter struct {
	BaseElement
	log []string
}

func (c *clickCounter) WantsControl() bool { return true }

func (c *clickCounter) Click(_ *Context, ev MouseEvent) bool {
	state := "up"
	if ev.Down {
		state = "down"
	}
	c.log = append(c.log, fmt.Sprintf("%s x%d button %d", state, ev.Clicks, ev.Button))
	return true
}

func runFrames(v *View, n int) {
	for i := 0; i < n; i++ {
		v.Update(1.0 / 60)
	}
}

func TestInjectClick(t *testing.T) {
	var log []string
	ps := probes(&log, 2)
	v := NewView(hTileOf(ps), 100, 10)

	v.InjectClick(10, 5)
	if len(v.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(v.injectQueue))
	}

	// Frame 1: press
	v.Update(1.0 / 60)
	if len(v.injectQueue) != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", len(v.injectQueue))
	}
	if diff := cmp.Diff([]string{"p0 down 10,5"}, log); diff != "" {
		t.Errorf("after press (-want +got):\n%s", diff)
	}

	// Frame 2: release
	v.Update(1.0 / 60)
	if len(v.injectQueue) != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", len(v.injectQueue))
	}
	if diff := cmp.Diff([]string{"p0 down 10,5", "p0 up 10,5"}, log); diff != "" {
		t.Errorf("after release (-want +got):\n%s", diff)
	}
}

func TestInjectDrag(t *testing.T) {
	var log []string
	ps := probes(&log, 2)
	v := NewView(hTileOf(ps), 100, 10)

	// frame 0: press at 10, frame 1: move to 45, frame 2: release at 80
	v.InjectDrag(10, 5, 80, 5, 3)
	if len(v.injectQueue) != 3 {
		t.Fatalf("expected 3 queued events, got %d", len(v.injectQueue))
	}
	runFrames(v, 3)

	want := []string{"p0 down 10,5", "p0 drag 45,5", "p0 drag 80,5", "p0 up 80,5"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("event log mismatch (-want +got):\n%s", diff)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	v := NewView(NewBox(ColorWhite), 100, 100)
	v.InjectDrag(0, 0, 50, 50, 0)
	if len(v.injectQueue) != 2 {
		t.Errorf("expected press and release only, got %d events", len(v.injectQueue))
	}
}

func TestDoubleClick(t *testing.T) {
	clock := newFakeClock()
	cc := &clickCounter{}
	v := NewView(cc, 100, 100)
	v.SetClock(clock.now)

	v.InjectClick(10, 10)
	v.InjectClick(11, 11)
	runFrames(v, 4)

	// Too slow for a double click.
	clock.advance(time.Second)
	v.InjectClick(11, 11)
	runFrames(v, 2)

	// Too far away.
	clock.advance(10 * time.Millisecond)
	v.InjectClick(50, 50)
	runFrames(v, 2)

	want := []string{
		"down x1 button 0", "up x1 button 0",
		"down x2 button 0", "up x2 button 0",
		"down x1 button 0", "up x1 button 0",
		"down x1 button 0", "up x1 button 0",
	}
	if diff := cmp.Diff(want, cc.log); diff != "" {
		t.Errorf("click log mismatch (-want +got):\n%s", diff)
	}
}

func TestHoverEntersAndLeaves(t *testing.T) {
	var log []string
	ps := probes(&log, 2)
	v := NewView(hTileOf(ps), 100, 10)

	v.InjectHover(10, 5)
	v.InjectHover(12, 5)
	v.InjectHover(12, 5)
	v.InjectHover(70, 5)
	v.InjectHover(300, 5)
	runFrames(v, 5)

	want := []string{
		fmt.Sprintf("p0 cursor %d", CursorEntering),
		fmt.Sprintf("p0 cursor %d", CursorHovering),
		fmt.Sprintf("p0 cursor %d", CursorLeaving),
		fmt.Sprintf("p1 cursor %d", CursorEntering),
		fmt.Sprintf("p1 cursor %d", CursorLeaving),
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("cursor log mismatch (-want +got):\n%s", diff)
	}
}

func TestInjectedDragTracksSlider(t *testing.T) {
	s := NewHSlider(0)
	v := NewView(s, 100, 16)
	v.InjectPress(8, 8)
	v.InjectMove(50, 8)
	runFrames(v, 2)
	if e, ok := v.Tracking(); !ok || e != s {
		t.Errorf("Tracking = %v, %v, want slider", e, ok)
	}
	v.InjectRelease(50, 8)
	runFrames(v, 1)
	if _, ok := v.Tracking(); ok {
		t.Error("still tracking after release")
	}
	if !approx(s.Value(), 0.5) {
		t.Errorf("value = %v, want 0.5", s.Value())
	}
}
