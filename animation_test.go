package arbor

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenReachesTarget(t *testing.T) {
	var got float64
	tw := NewTween(10, 100, 1.0, ease.Linear, func(v float64) { got = v })

	// Exact halves avoid float32 accumulation drift.
	if tw.Update(0.5) {
		t.Fatal("done after half the duration")
	}
	if math.Abs(got-55) > 0.5 {
		t.Errorf("midpoint = %v, want ~55", got)
	}
	if !tw.Update(0.5) {
		t.Fatal("expected done after full duration")
	}
	if math.Abs(got-100) > 0.5 {
		t.Errorf("final = %v, want ~100", got)
	}
}

func TestTweenDoneIsSticky(t *testing.T) {
	calls := 0
	tw := NewTween(0, 1, 0.1, nil, func(float64) { calls++ })
	tw.Update(1)
	tw.Update(1)
	if !tw.Done || calls != 1 {
		t.Errorf("Done = %v calls = %d, want true and 1", tw.Done, calls)
	}
}

func TestTweenEasing(t *testing.T) {
	var lin, quad float64
	NewTween(0, 1, 1, ease.Linear, func(v float64) { lin = v }).Update(0.5)
	NewTween(0, 1, 1, ease.InQuad, func(v float64) { quad = v }).Update(0.5)
	if quad >= lin {
		t.Errorf("InQuad midpoint %v should trail linear %v", quad, lin)
	}
}
