package arbor

import (
	"math"

	"github.com/tanema/gween/ease"
)

const (
	dialTravel     = 0.83
	dialRange      = 2 * math.Pi * dialTravel
	dialStartAngle = 2 * math.Pi * (1 - dialTravel) / 2

	// A radial drag that would move the value by this much or more is a
	// jump across the dead zone at the bottom of the dial and is ignored.
	dialMaxJump = 0.6
)

// Dial edits a value in [0, 1] by dragging. In DialRadial mode the value
// follows the pointer angle around the dial centre; in DialLinear mode it
// follows drag distance, rightward and upward increasing it. Holding
// Shift makes linear mode five times finer.
//
// The subject is the visual part of the dial. If it implements
// Receiver[float64] it is kept in sync with the dial's value.
type Dial struct {
	Proxy
	track     Tracker
	value     float64
	indicator Receiver[float64]

	// OnChange is called after every user edit.
	OnChange func(v float64)
}

// NewDial wraps subject as a dial.
func NewDial(subject Element, init float64) *Dial {
	d := &Dial{}
	d.subject = subject
	if r, ok := subject.(Receiver[float64]); ok {
		d.indicator = r
	}
	d.track.initTracker(d)
	d.SetValue(init)
	return d
}

// NewKnobDial creates a dial drawn as a round knob of the given diameter.
func NewKnobDial(size, init float64) *Dial {
	return NewDial(NewDialKnob(size), init)
}

// Value returns the current value.
func (d *Dial) Value() float64 { return d.value }

// SetValue sets the value without notifying OnChange.
func (d *Dial) SetValue(v float64) {
	d.value = clamp01(v)
	if d.indicator != nil {
		d.indicator.SetValue(d.value)
	}
}

func (d *Dial) edit(ctx *Context, v float64) {
	v = clamp01(v)
	if v == d.value {
		return
	}
	d.SetValue(v)
	ctx.Refresh()
	if d.OnChange != nil {
		d.OnChange(v)
	}
	ctx.emit(ChangeEvent{Type: ChangeValue, Value: v})
}

// HitTest claims the whole dial so presses reach the tracker.
func (d *Dial) HitTest(ctx *Context, p Vec2) Element {
	if ctx.Bounds.Includes(p) {
		return ctx.Element
	}
	return nil
}

func (d *Dial) WantsControl() bool { return true }
func (d *Dial) WantsFocus() bool { return true }

func (d *Dial) Click(ctx *Context, ev MouseEvent) bool { return d.track.Click(ctx, ev) }
func (d *Dial) Drag(ctx *Context, ev MouseEvent) { d.track.Drag(ctx, ev) }

// CancelTracking abandons an in-progress drag.
func (d *Dial) CancelTracking(ctx *Context) { d.track.CancelTracking(ctx) }

func (d *Dial) EndFocus() {
	d.track.EndFocus()
	d.Proxy.EndFocus()
}

func (d *Dial) BeginTracking(*Context, *TrackerInfo) {}

func (d *Dial) KeepTracking(ctx *Context, info *TrackerInfo) {
	if info.Current == info.Previous {
		return
	}
	if ctx.Theme().DialMode == DialRadial {
		d.edit(ctx, d.radialValue(ctx, info.Current))
	} else {
		d.edit(ctx, d.linearValue(ctx, info))
	}
}

func (d *Dial) EndTracking(*Context, *TrackerInfo) {}

func (d *Dial) radialValue(ctx *Context, p Vec2) float64 {
	c := ctx.Bounds.Center()
	angle := -math.Atan2(p.X-c.X, p.Y-c.Y)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	v := (angle - dialStartAngle) / dialRange
	if math.Abs(v-d.value) < dialMaxJump {
		return clamp01(v)
	}
	return d.value
}

func (d *Dial) linearValue(ctx *Context, info *TrackerInfo) float64 {
	factor := 1 / ctx.Theme().DialLinearRange
	if info.Modifiers&ModShift != 0 {
		factor /= 5
	}
	m := info.Moved()
	return clamp01(d.value + factor*(m.X-m.Y))
}

func (d *Dial) Scroll(ctx *Context, dir, p Vec2) bool {
	th := ctx.Theme()
	old := d.value
	d.edit(ctx, d.value+(dir.X*th.ScrollDirection.X+dir.Y*th.ScrollDirection.Y)*th.ScrollStep)
	return d.value != old
}

// Key nudges the value with the arrow keys.
func (d *Dial) Key(ctx *Context, k KeyInfo) bool {
	if k.Action == KeyRelease {
		return false
	}
	switch k.Key {
	case KeyRight, KeyUp:
		d.edit(ctx, d.value+0.01)
	case KeyLeft, KeyDown:
		d.edit(ctx, d.value-0.01)
	default:
		return false
	}
	return true
}

// DialKnob draws a round knob with a pointer at the angle for its value.
type DialKnob struct {
	BaseElement
	Size  float64
	value float64
}

// NewDialKnob creates a knob of the given diameter.
func NewDialKnob(size float64) *DialKnob { return &DialKnob{Size: size} }

func (k *DialKnob) Value() float64 { return k.value }
func (k *DialKnob) SetValue(v float64) { k.value = v }

func (k *DialKnob) Limits(*Context) Limits { return FixedLimits(k.Size, k.Size) }

// dialPoint returns the pointer position for v on a circle of radius r.
func dialPoint(c Vec2, r, v float64) Vec2 {
	a := dialStartAngle + v*dialRange
	return Vec2{c.X - r*math.Sin(a), c.Y + r*math.Cos(a)}
}

func (k *DialKnob) Draw(ctx *Context) {
	th := ctx.Theme()
	c := ctx.Bounds.Center()
	r := math.Min(ctx.Bounds.Width, ctx.Bounds.Height)/2 - 1
	ctx.Canvas.FillCircle(c, r, th.ControlColor)
	ctx.Canvas.StrokeCircle(c, r, 1, th.FrameColor)
	ctx.Canvas.Line(dialPoint(c, r*0.3, k.value), dialPoint(c, r*0.85, k.value), 2, th.IndicatorColor)
}

// Thumbwheel scrolls its subject inside a port as it is dragged, like a
// physical thumbwheel, and snaps to the nearest multiple of Quantize when
// released. A zero Quantize disables snapping.
type Thumbwheel struct {
	Port
	track    Tracker
	axis     Axis
	raw      float64
	value    float64
	Quantize float64

	// OnChange is called whenever the quantized value changes.
	OnChange func(v float64)
}

// NewVThumbwheel creates a vertical thumbwheel over subject.
func NewVThumbwheel(subject Element, quantize, init float64) *Thumbwheel {
	return newThumbwheel(Vertical, subject, quantize, init)
}

// NewHThumbwheel creates a horizontal thumbwheel over subject.
func NewHThumbwheel(subject Element, quantize, init float64) *Thumbwheel {
	return newThumbwheel(Horizontal, subject, quantize, init)
}

func newThumbwheel(axis Axis, subject Element, quantize, init float64) *Thumbwheel {
	t := &Thumbwheel{axis: axis, Quantize: quantize}
	if axis == Vertical {
		t.initPort(subject, scrollY)
	} else {
		t.initPort(subject, scrollX)
	}
	t.track.initTracker(t)
	t.SetValue(init)
	return t
}

func (t *Thumbwheel) quantized(v float64) float64 {
	v = clamp01(v)
	if t.Quantize <= 0 {
		return v
	}
	return clamp01(math.Round(v/t.Quantize) * t.Quantize)
}

// Value returns the quantized value.
func (t *Thumbwheel) Value() float64 { return t.value }

// SetValue moves the wheel to v, quantized, without notifying OnChange.
func (t *Thumbwheel) SetValue(v float64) {
	t.value = t.quantized(v)
	t.raw = t.value
	t.setPosition(t.value)
}

func (t *Thumbwheel) setPosition(v float64) {
	if t.axis == Vertical {
		t.SetVAlign(v)
	} else {
		t.SetHAlign(v)
	}
}

func (t *Thumbwheel) position() float64 {
	if t.axis == Vertical {
		return t.valign
	}
	return t.halign
}

func (t *Thumbwheel) commit(ctx *Context, v float64) {
	if v == t.value {
		return
	}
	t.value = v
	if t.OnChange != nil {
		t.OnChange(v)
	}
	ctx.emit(ChangeEvent{Type: ChangeValue, Value: v})
}

func (t *Thumbwheel) HitTest(ctx *Context, p Vec2) Element {
	if ctx.Bounds.Includes(p) {
		return ctx.Element
	}
	return nil
}

func (t *Thumbwheel) WantsControl() bool { return true }

func (t *Thumbwheel) Click(ctx *Context, ev MouseEvent) bool { return t.track.Click(ctx, ev) }
func (t *Thumbwheel) Drag(ctx *Context, ev MouseEvent) { t.track.Drag(ctx, ev) }

// CancelTracking abandons an in-progress drag and snaps to the committed
// value.
func (t *Thumbwheel) CancelTracking(ctx *Context) { t.track.CancelTracking(ctx) }

func (t *Thumbwheel) EndFocus() {
	t.track.EndFocus()
	t.Port.EndFocus()
}

// travel is the drag distance that moves the wheel from 0 to 1: the
// overflow of the subject inside the port, so content follows the pointer.
func (t *Thumbwheel) travel(ctx *Context) float64 {
	over := t.axis.of(t.overflow(ctx))
	if over <= 0 {
		return ctx.Theme().DialLinearRange
	}
	return over
}

func (t *Thumbwheel) BeginTracking(*Context, *TrackerInfo) {}

func (t *Thumbwheel) KeepTracking(ctx *Context, info *TrackerInfo) {
	d := -t.axis.of(info.Moved())
	t.raw = clamp01(t.raw + d/t.travel(ctx))
	t.setPosition(t.raw)
	ctx.Refresh()
	t.commit(ctx, t.quantized(t.raw))
}

func (t *Thumbwheel) EndTracking(ctx *Context, _ *TrackerInfo) {
	t.snap(ctx)
}

// snap animates the wheel from its raw position to the committed value.
func (t *Thumbwheel) snap(ctx *Context) {
	from, to := t.position(), t.value
	t.raw = to
	if from == to || ctx.View == nil {
		t.setPosition(to)
		ctx.Refresh()
		return
	}
	v := ctx.View
	dur := float32(ctx.Theme().ThumbwheelSnap.Seconds())
	v.Animate(NewTween(from, to, dur, ease.OutQuad, func(x float64) {
		t.setPosition(x)
		v.RefreshElement(t)
	}))
}

func (t *Thumbwheel) Scroll(ctx *Context, dir, p Vec2) bool {
	step := t.Quantize
	if step <= 0 {
		step = ctx.Theme().ScrollStep
	}
	d := -t.axis.of(dir)
	if d == 0 {
		return false
	}
	old := t.value
	t.commit(ctx, t.quantized(t.value+math.Copysign(step, d)))
	t.snap(ctx)
	return t.value != old
}
