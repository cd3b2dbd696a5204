package arbor

// syntheticPointerEvent represents a single injected pointer event in view
// coordinates, fed through the same state machine as real mouse input.
type syntheticPointerEvent struct {
	pos     Vec2
	pressed bool
	button  MouseButton
}

// InjectPress queues a pointer press at (x, y) with the left button.
// The event is consumed by the next Update.
func (v *View) InjectPress(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{
		pos:     Vec2{x, y},
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectMove queues a pointer move to (x, y) with the button held down.
// Use this between InjectPress and InjectRelease to simulate a drag.
func (v *View) InjectMove(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{
		pos:     Vec2{x, y},
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectHover queues a pointer move to (x, y) with no button held.
func (v *View) InjectHover(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{
		pos:    Vec2{x, y},
		button: MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release at (x, y).
func (v *View) InjectRelease(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{
		pos:     Vec2{x, y},
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (v *View) InjectClick(x, y float64) {
	v.InjectPress(x, y)
	v.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes frames frames.
// Minimum frames is 2 (press + release).
func (v *View) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	v.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		v.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	v.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. It reports whether an event was consumed, in
// which case real mouse input is skipped for the frame.
func (v *View) processInjectedInput(mods KeyModifiers) bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	evt := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	v.processPointer(evt.pos, evt.pressed, evt.button, mods)
	return true
}
