package arbor

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// probe is a leaf that logs the events it receives.
type probe struct {
	BaseElement
	name    string
	log     *[]string
	control bool
	focus   bool
	focused bool
	keys    bool
}

func (p *probe) logf(format string, args ...any) {
	*p.log = append(*p.log, p.name+" "+fmt.Sprintf(format, args...))
}

func (p *probe) WantsControl() bool { return p.control }
func (p *probe) WantsFocus() bool { return p.focus }
func (p *probe) BeginFocus(FocusRequest) { p.focused = true }
func (p *probe) EndFocus() { p.focused = false }

func (p *probe) Click(ctx *Context, ev MouseEvent) bool {
	if ev.Down {
		p.logf("down %v,%v", ev.Pos.X, ev.Pos.Y)
	} else {
		p.logf("up %v,%v", ev.Pos.X, ev.Pos.Y)
	}
	return true
}

func (p *probe) Drag(ctx *Context, ev MouseEvent) { p.logf("drag %v,%v", ev.Pos.X, ev.Pos.Y) }

func (p *probe) Cursor(ctx *Context, pt Vec2, st CursorTracking) bool {
	p.logf("cursor %d", st)
	return true
}

func (p *probe) Key(ctx *Context, k KeyInfo) bool {
	if !p.keys {
		return false
	}
	p.logf("key %d", k.Key)
	return true
}

func (p *probe) Scroll(ctx *Context, dir, pt Vec2) bool {
	p.logf("scroll %v", dir.Y)
	return true
}

func probes(log *[]string, n int) []*probe {
	out := make([]*probe, n)
	for i := range out {
		out[i] = &probe{name: fmt.Sprintf("p%d", i), log: log, control: true, focus: true}
	}
	return out
}

func hTileOf(ps []*probe) *Tile {
	elems := make([]Element, len(ps))
	for i, p := range ps {
		elems[i] = p
	}
	return NewHTile(elems...)
}

func TestCompositeClickCapturesRelease(t *testing.T) {
	var log []string
	ps := probes(&log, 2)
	tile := hTileOf(ps)
	ctx := testContext(tile, 100, 10)

	tile.Click(&ctx, MouseEvent{Down: true, Pos: Vec2{10, 5}})
	tile.Drag(&ctx, MouseEvent{Down: true, Pos: Vec2{80, 5}})
	tile.Click(&ctx, MouseEvent{Pos: Vec2{80, 5}})

	want := []string{"p0 down 10,5", "p0 drag 80,5", "p0 up 80,5"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("event log mismatch (-want +got):\n%s", diff)
	}
	if tile.FocusIndex() != 0 || !ps[0].focused {
		t.Errorf("focus index = %d, want 0 after click", tile.FocusIndex())
	}
}

func TestCompositeClickSkipsNonControls(t *testing.T) {
	var log []string
	ps := probes(&log, 2)
	ps[0].control = false
	tile := hTileOf(ps)
	ctx := testContext(tile, 100, 10)
	if tile.Click(&ctx, MouseEvent{Down: true, Pos: Vec2{10, 5}}) {
		t.Error("press on a non-control should not be consumed")
	}
	if len(log) != 0 {
		t.Errorf("log = %v, want empty", log)
	}
}

func TestCompositeTabTraversal(t *testing.T) {
	var log []string
	ps := probes(&log, 3)
	ps[1].focus = false
	tile := hTileOf(ps)
	ctx := testContext(tile, 90, 10)

	tab := KeyInfo{Key: KeyTab}
	backTab := KeyInfo{Key: KeyTab, Modifiers: ModShift}

	steps := []struct {
		key     KeyInfo
		handled bool
		focus   int
	}{
		{tab, true, 0},
		{tab, true, 2},
		{tab, false, 2},
		{backTab, true, 0},
		{backTab, false, 0},
	}
	for i, st := range steps {
		if got := tile.Key(&ctx, st.key); got != st.handled {
			t.Errorf("step %d: Key handled = %v, want %v", i, got, st.handled)
		}
		if got := tile.FocusIndex(); got != st.focus {
			t.Errorf("step %d: focus = %d, want %d", i, got, st.focus)
		}
	}
	if ps[0].focused != true || ps[2].focused != false {
		t.Errorf("focused flags = %v %v, want true false", ps[0].focused, ps[2].focused)
	}
}

func TestCompositeKeyGoesToFocused(t *testing.T) {
	var log []string
	ps := probes(&log, 2)
	ps[1].keys = true
	tile := hTileOf(ps)
	ctx := testContext(tile, 100, 10)
	tile.SetFocus(&ctx, 1)
	if !tile.Key(&ctx, KeyInfo{Key: KeyEnter}) {
		t.Error("focused child should consume the key")
	}
	if diff := cmp.Diff([]string{fmt.Sprintf("p1 key %d", KeyEnter)}, log); diff != "" {
		t.Errorf("event log mismatch (-want +got):\n%s", diff)
	}
}

func TestCompositeCursorLeaving(t *testing.T) {
	var log []string
	ps := probes(&log, 2)
	tile := hTileOf(ps)
	ctx := testContext(tile, 100, 10)

	tile.Cursor(&ctx, Vec2{10, 5}, CursorEntering)
	tile.Cursor(&ctx, Vec2{20, 5}, CursorHovering)
	tile.Cursor(&ctx, Vec2{70, 5}, CursorHovering)
	tile.Cursor(&ctx, Vec2{70, 5}, CursorLeaving)

	want := []string{
		fmt.Sprintf("p0 cursor %d", CursorEntering),
		fmt.Sprintf("p0 cursor %d", CursorHovering),
		fmt.Sprintf("p0 cursor %d", CursorLeaving),
		fmt.Sprintf("p1 cursor %d", CursorEntering),
		fmt.Sprintf("p1 cursor %d", CursorLeaving),
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("event log mismatch (-want +got):\n%s", diff)
	}
}

func TestCompositeScrollRoutesByPosition(t *testing.T) {
	var log []string
	ps := probes(&log, 2)
	tile := hTileOf(ps)
	ctx := testContext(tile, 100, 10)
	tile.Scroll(&ctx, Vec2{0, 3}, Vec2{75, 5})
	if diff := cmp.Diff([]string{"p1 scroll 3"}, log); diff != "" {
		t.Errorf("event log mismatch (-want +got):\n%s", diff)
	}
}

func TestCompositeFocusRestore(t *testing.T) {
	var log []string
	ps := probes(&log, 3)
	tile := hTileOf(ps)
	ctx := testContext(tile, 90, 10)
	tile.SetFocus(&ctx, 2)
	tile.EndFocus()
	if tile.FocusIndex() != -1 || ps[2].focused {
		t.Fatal("EndFocus should clear focus")
	}
	tile.BeginFocus(FocusRestorePrevious)
	if got := tile.FocusIndex(); got != 2 {
		t.Errorf("restored focus = %d, want 2", got)
	}
	tile.EndFocus()
	tile.BeginFocus(FocusFromBottom)
	if got := tile.FocusIndex(); got != 2 {
		t.Errorf("from-bottom focus = %d, want 2", got)
	}
}

func TestFindFollowsFocus(t *testing.T) {
	var log []string
	ps := probes(&log, 2)
	inner := hTileOf(ps)
	outer := NewVTile(NewBox(ColorWhite), inner)
	ctx := testContext(outer, 100, 100)
	outer.SetFocus(&ctx, 1)
	inner.SetFocus(&ctx, 1)
	got, ok := Find[*probe](outer)
	if !ok || got != ps[1] {
		t.Errorf("Find = %v, %v, want p1", got, ok)
	}
}
