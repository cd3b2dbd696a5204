package arbor

// TrackerInfo is the drag state shared between a Tracker and its owner.
// Start is the raw press position. Current and Previous are pointer
// positions minus Offset, which the owner may set in BeginTracking to
// keep a grabbed handle from jumping under the pointer. Processed becomes
// true once the pointer has moved while tracking.
type TrackerInfo struct {
	Start     Vec2
	Current   Vec2
	Previous  Vec2
	Offset    Vec2
	Modifiers KeyModifiers
	Processed bool
}

// Moved returns how far Current moved since the last step.
func (t *TrackerInfo) Moved() Vec2 { return t.Current.Sub(t.Previous) }

// TrackingHooks receive Tracker transitions.
type TrackingHooks interface {
	BeginTracking(ctx *Context, info *TrackerInfo)
	KeepTracking(ctx *Context, info *TrackerInfo)
	EndTracking(ctx *Context, info *TrackerInfo)
}

// Tracker turns press, drag and release into BeginTracking, KeepTracking
// and EndTracking calls on its hooks. It is idle until a press arrives,
// calls KeepTracking only when the adjusted position changes, and returns
// to idle on release or CancelTracking.
type Tracker struct {
	BaseElement
	hooks TrackingHooks
	state *TrackerInfo

	// ctx is the context of the last tracked event. EndFocus uses it to
	// end a drag when focus is taken without a context at hand.
	ctx Context
}

func (t *Tracker) initTracker(h TrackingHooks) { t.hooks = h }

// IsTracking reports whether a drag is in progress.
func (t *Tracker) IsTracking() bool { return t.state != nil }

func (t *Tracker) WantsControl() bool { return true }

func (t *Tracker) Click(ctx *Context, ev MouseEvent) bool {
	if ev.Down {
		if t.state != nil {
			return true
		}
		t.state = &TrackerInfo{Start: ev.Pos, Current: ev.Pos, Previous: ev.Pos, Modifiers: ev.Modifiers}
		t.ctx = *ctx
		if ctx.View != nil {
			ctx.View.noteTracking(ctx.Element, TrackingBegin)
		}
		t.hooks.BeginTracking(ctx, t.state)
		if t.state != nil {
			t.state.Current = ev.Pos.Sub(t.state.Offset)
			t.state.Previous = t.state.Current
		}
		return true
	}
	if t.state == nil {
		return false
	}
	t.state.Modifiers = ev.Modifiers
	t.end(ctx)
	return true
}

func (t *Tracker) Drag(ctx *Context, ev MouseEvent) {
	s := t.state
	if s == nil {
		return
	}
	t.ctx = *ctx
	s.Previous = s.Current
	s.Current = ev.Pos.Sub(s.Offset)
	s.Modifiers = ev.Modifiers
	if s.Current == s.Previous {
		return
	}
	s.Processed = true
	if ctx.View != nil {
		ctx.View.noteTracking(ctx.Element, TrackingWhile)
	}
	t.hooks.KeepTracking(ctx, s)
}

// CancelTracking ends an in-progress drag from outside, for example when
// the control loses focus.
func (t *Tracker) CancelTracking(ctx *Context) {
	if t.state != nil {
		t.end(ctx)
	}
}

func (t *Tracker) end(ctx *Context) {
	s := t.state
	t.state = nil
	t.ctx = Context{}
	if ctx.View != nil {
		ctx.View.noteTracking(ctx.Element, TrackingEnd)
	}
	t.hooks.EndTracking(ctx, s)
}

// EndFocus ends a drag in progress through EndTracking, using the context
// of the last tracked event.
func (t *Tracker) EndFocus() {
	if t.state != nil {
		ctx := t.ctx
		t.end(&ctx)
	}
}
