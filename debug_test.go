package arbor

import (
	"strings"
	"testing"
)

// badLimits reports a minimum larger than its maximum.
type badLimits struct{ BaseElement }

func (badLimits) Limits(*Context) Limits {
	return Limits{Min: Vec2{10, 10}, Max: Vec2{5, 5}}
}

func expectPanic(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		if msg, _ := r.(string); !strings.Contains(msg, substr) {
			t.Errorf("panic %v does not mention %q", r, substr)
		}
	}()
	fn()
}

func TestDebugCycleCheck(t *testing.T) {
	v := NewView(NewBox(ColorWhite), 10, 10)
	v.SetDebugMode(true)
	defer v.SetDebugMode(false)

	outer := NewVTile()
	expectPanic(t, "itself", func() { outer.Add(outer) })

	inner := NewHTile(outer)
	expectPanic(t, "cycle", func() { outer.Add(inner) })

	// A diamond is not a cycle.
	leaf := NewBox(ColorWhite)
	outer.Add(NewHTile(leaf), NewVTile(leaf))
}

func TestDebugInvalidLimits(t *testing.T) {
	tile := NewHTile(&badLimits{})
	ctx := testContext(tile, 100, 100)
	v := NewView(NewBox(ColorWhite), 10, 10)
	v.SetDebugMode(true)
	defer v.SetDebugMode(false)
	expectPanic(t, "invalid limits", func() { tile.Layout(&ctx) })
}
