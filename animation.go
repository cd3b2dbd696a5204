package arbor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is advanced once per frame by View.Update until it reports
// done.
type Animation interface {
	Update(dt float32) (done bool)
}

// Tween animates one float64 from a start to an end value and hands each
// step to an apply function.
type Tween struct {
	tween *gween.Tween
	apply func(float64)
	Done  bool
}

// NewTween creates a tween over duration seconds using the easing
// function fn.
func NewTween(from, to float64, duration float32, fn ease.TweenFunc, apply func(float64)) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{
		tween: gween.New(float32(from), float32(to), duration, fn),
		apply: apply,
	}
}

// Update advances the tween by dt seconds and applies the new value.
func (t *Tween) Update(dt float32) bool {
	if t.Done {
		return true
	}
	val, finished := t.tween.Update(dt)
	t.apply(float64(val))
	t.Done = finished
	return finished
}
