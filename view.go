package arbor

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// overlay is a top-level element above the root, such as a tooltip or a
// popup.
type overlay struct {
	elem   Element
	bounds Rect
}

// layers is the View's top composite: the root element followed by open
// overlays, topmost last.
type layers struct {
	CompositeBase
	items []overlay
}

func (l *layers) Len() int { return len(l.items) }
func (l *layers) At(i int) Element { return l.items[i].elem }

func (l *layers) BoundsOf(ctx *Context, i int) Rect {
	if i == 0 {
		return ctx.Bounds
	}
	return l.items[i].bounds
}

func (l *layers) hitElement(ctx *Context, p Vec2, control bool) hitInfo {
	return l.hitDescending(ctx, p, control)
}

func (l *layers) Limits(ctx *Context) Limits {
	if len(l.items) == 0 {
		return FullLimits
	}
	cctx := ctx.Sub(l.items[0].elem, ctx.Bounds)
	return l.items[0].elem.Limits(&cctx)
}

func (l *layers) Layout(ctx *Context) {
	for i := range l.items {
		e, cctx := l.childContext(ctx, i)
		e.Layout(&cctx)
	}
}

// View is the boundary between an element tree and the host: it owns the
// root element, the theme, the dirty region, the deferred callback queue
// and running animations, and exposes the input entry points.
type View struct {
	layers  layers
	theme   *Theme
	bounds  Rect
	sink    EventSink
	debug   bool
	stats   debugStats
	font    *Font
	measure func(s string, size float64) Vec2

	dirty       Rect
	hasDirty    bool
	needsLayout bool

	timers timerQueue
	now    func() time.Time
	anims  []Animation

	tracking      Element
	trackingState TrackingState

	// Input state
	pointer     pointerState
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
	chars       []rune
	injected    bool

	// Render state
	buffer *ebiten.Image
	canvas *EbitenCanvas

	// ClearColor fills dirty regions before they are redrawn.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []shot

	// locate, while set, receives refreshed rectangles instead of the
	// dirty region.
	locate func(r Rect)
}

// NewView creates a view of the given size showing root.
func NewView(root Element, width, height float64) *View {
	v := &View{
		theme:         DefaultTheme(),
		bounds:        Rect{Width: width, Height: height},
		now:           time.Now,
		needsLayout:   true,
		ScreenshotDir: "screenshots",
	}
	v.ClearColor = v.theme.PanelColor
	v.layers.initComposite(&v.layers)
	v.layers.items = []overlay{{elem: root}}
	v.RefreshAll()
	return v
}

// Root returns the root element.
func (v *View) Root() Element { return v.layers.items[0].elem }

// SetRoot replaces the root element. Focus and hover state are reset.
func (v *View) SetRoot(e Element) {
	v.layers.items[0].elem = e
	v.layers.Reset()
	v.needsLayout = true
	v.RefreshAll()
}

// Theme returns the view's theme.
func (v *View) Theme() *Theme { return v.theme }

// SetTheme replaces the theme and schedules a full relayout and redraw.
func (v *View) SetTheme(t *Theme) {
	if t == nil {
		t = DefaultTheme()
	}
	v.theme = t
	v.needsLayout = true
	v.RefreshAll()
}

// Font returns the font used for text, loading DefaultFont on first use.
func (v *View) Font() *Font {
	if v.font == nil {
		v.SetFont(DefaultFont())
	}
	return v.font
}

// SetFont sets the font used for drawing and measuring text.
func (v *View) SetFont(f *Font) {
	v.font = f
	v.measure = f.Measure
	v.canvas = nil
	v.needsLayout = true
	v.RefreshAll()
}

// Bounds returns the view rectangle.
func (v *View) Bounds() Rect { return v.bounds }

// Resize changes the view size and schedules a full relayout and redraw.
func (v *View) Resize(width, height float64) {
	if width == v.bounds.Width && height == v.bounds.Height {
		return
	}
	v.bounds.Width, v.bounds.Height = width, height
	v.needsLayout = true
	v.RefreshAll()
}

// SetEventSink sets the sink that receives change events.
func (v *View) SetEventSink(s EventSink) { v.sink = s }

// SetDebugMode enables debug checks and per-frame stats on stderr.
func (v *View) SetDebugMode(enabled bool) {
	v.debug = enabled
	globalDebug = enabled
}

// SetClock replaces the time source used by Post and Poll.
func (v *View) SetClock(now func() time.Time) { v.now = now }

func (v *View) emit(ev ChangeEvent) {
	if v.sink != nil {
		v.sink.EmitEvent(ev)
	}
}

// --- Dirty region ---

// Refresh marks r for redraw. Regions accumulate into one bounding
// rectangle until the next Draw.
func (v *View) Refresh(r Rect) {
	if v.locate != nil {
		v.locate(r)
		return
	}
	r = r.Intersect(v.bounds)
	if r.Empty() {
		return
	}
	if v.hasDirty {
		v.dirty = v.dirty.Union(r)
	} else {
		v.dirty = r
		v.hasDirty = true
	}
}

// RefreshAll marks the whole view for redraw.
func (v *View) RefreshAll() { v.Refresh(v.bounds) }

// RefreshElement redraws e wherever it currently sits in the tree. It is
// meant for code running outside an element call, such as animations and
// deferred callbacks.
func (v *View) RefreshElement(e Element) {
	ctx := v.context(nil)
	v.layers.Refresh(&ctx, e)
}

// Dirty returns the region awaiting redraw.
func (v *View) Dirty() (Rect, bool) { return v.dirty, v.hasDirty }

// --- Layout and drawing ---

func (v *View) context(c Canvas) Context { return NewContext(v, c, &v.layers, v.bounds) }

// Limits returns the root element's limits.
func (v *View) Limits() Limits {
	ctx := v.context(nil)
	return v.layers.Limits(&ctx)
}

// Layout lays out the root and every overlay.
func (v *View) Layout() {
	start := time.Now()
	ctx := v.context(nil)
	v.layers.Layout(&ctx)
	v.needsLayout = false
	if v.debug {
		v.stats.layoutTime = time.Since(start)
		debugCheckTreeDepth(&v.layers)
	}
}

func (v *View) ensureLayout() {
	if v.needsLayout {
		v.Layout()
	}
}

// Draw draws the tree within the canvas clip and clears the dirty region.
func (v *View) Draw(c Canvas) {
	v.ensureLayout()
	start := time.Now()
	ctx := v.context(c)
	v.layers.Draw(&ctx)
	if v.debug {
		v.stats.drawTime = time.Since(start)
		v.stats.dirty = v.dirty
		v.debugLog(v.stats)
		v.stats = debugStats{}
	}
	v.dirty, v.hasDirty = Rect{}, false
}

// DrawScreen renders onto an Ebitengine screen. The tree is drawn into a
// retained buffer and only the dirty region is redrawn each frame.
func (v *View) DrawScreen(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	v.Resize(float64(w), float64(h))
	if v.buffer == nil || v.buffer.Bounds().Dx() != w || v.buffer.Bounds().Dy() != h {
		if v.buffer != nil {
			v.buffer.Deallocate()
		}
		v.buffer = ebiten.NewImage(w, h)
		v.canvas = nil
		v.RefreshAll()
	}
	if v.canvas == nil {
		v.canvas = NewEbitenCanvas(v.buffer, v.Font())
	}
	if r, ok := v.Dirty(); ok {
		st := v.canvas.Save()
		v.canvas.Clip(r)
		v.canvas.Clear(v.ClearColor)
		v.Draw(v.canvas)
		st.Restore()
	}
	screen.DrawImage(v.buffer, nil)
	v.flushScreenshots(v.buffer)
}

// --- Input entry points ---

// Click delivers a mouse press or release.
func (v *View) Click(ev MouseEvent) bool {
	v.ensureLayout()
	ctx := v.context(nil)
	return v.layers.Click(&ctx, ev)
}

// Drag delivers pointer movement while a button is held.
func (v *View) Drag(ev MouseEvent) {
	v.ensureLayout()
	ctx := v.context(nil)
	v.layers.Drag(&ctx, ev)
}

// Cursor delivers pointer movement with no button held.
func (v *View) Cursor(p Vec2, status CursorTracking) bool {
	v.ensureLayout()
	ctx := v.context(nil)
	return v.layers.Cursor(&ctx, p, status)
}

// Scroll delivers a wheel movement at p.
func (v *View) Scroll(dir, p Vec2) bool {
	v.ensureLayout()
	ctx := v.context(nil)
	return v.layers.Scroll(&ctx, dir, p)
}

// Key delivers a key event to the focused element. When nothing has focus
// yet, focus starts at the first element that wants it.
func (v *View) Key(k KeyInfo) bool {
	v.ensureLayout()
	ctx := v.context(nil)
	if v.layers.focus < 0 && v.layers.WantsFocus() {
		v.layers.BeginFocus(FocusFromTop)
	}
	return v.layers.Key(&ctx, k)
}

// Text delivers typed text to the focused element.
func (v *View) Text(t TextInfo) bool {
	v.ensureLayout()
	ctx := v.context(nil)
	return v.layers.Text(&ctx, t)
}

// Focus returns the innermost focused element, or nil.
func (v *View) Focus() Element {
	var last Element
	for e := v.layers.Focus(); e != nil; e = e.Focus() {
		last = e
	}
	return last
}

// Tracking returns the element currently tracking a drag, if any.
func (v *View) Tracking() (Element, bool) { return v.tracking, v.tracking != nil }

func (v *View) noteTracking(e Element, st TrackingState) {
	v.trackingState = st
	if st == TrackingEnd {
		v.tracking = nil
		return
	}
	v.tracking = e
}

// --- Overlays ---

// OpenOverlay shows e above the root at bounds.
func (v *View) OpenOverlay(e Element, bounds Rect) {
	v.layers.items = append(v.layers.items, overlay{elem: e, bounds: bounds})
	ctx := v.context(nil)
	cctx := ctx.Sub(e, bounds)
	e.Layout(&cctx)
	v.Refresh(bounds)
}

// CloseOverlay removes e if it is an open overlay and reports whether it
// was.
func (v *View) CloseOverlay(e Element) bool {
	l := &v.layers
	for i := 1; i < len(l.items); i++ {
		if l.items[i].elem != e {
			continue
		}
		switch {
		case l.focus == i:
			ctx := v.context(nil)
			cctx := ctx.Sub(e, l.items[i].bounds)
			dropFocus(&cctx, e)
			l.focus = -1
		case l.focus > i:
			l.focus--
		}
		l.savedFocus = -1
		l.clickInfo, l.cursorInfo, l.dragTracking = noHit, noHit, -1
		v.Refresh(l.items[i].bounds)
		l.items = append(l.items[:i], l.items[i+1:]...)
		return true
	}
	return false
}

// Overlays returns the number of open overlays.
func (v *View) Overlays() int { return len(v.layers.items) - 1 }

// --- Deferred work ---

// Post schedules fn to run on the UI thread after delay. Callbacks run in
// deadline order; equal deadlines run in the order they were posted.
// There is no cancellation: callbacks that may become stale should check
// a flag captured when they were posted.
func (v *View) Post(delay time.Duration, fn func()) {
	v.timers.post(v.now().Add(delay), fn)
}

// Poll runs the callbacks that are due and returns how many ran.
// Callbacks posted while polling wait for the next Poll.
func (v *View) Poll() int {
	fns := v.timers.due(v.now())
	for _, fn := range fns {
		fn()
	}
	if v.debug {
		v.stats.timersRun += len(fns)
	}
	return len(fns)
}

// NextDeadline returns when the next deferred callback is due.
func (v *View) NextDeadline() (time.Time, bool) { return v.timers.next() }

// Animate runs a until it reports done, advancing it from Update.
func (v *View) Animate(a Animation) { v.anims = append(v.anims, a) }

// Animating reports whether any animation is running.
func (v *View) Animating() bool { return len(v.anims) > 0 }

// Update advances one frame of dt seconds: it feeds injected input and the
// test runner, runs due callbacks and steps animations.
func (v *View) Update(dt float32) {
	if v.testRunner != nil {
		v.testRunner.step(v)
	}
	v.injected = v.processInjectedInput(v.pointer.mods)
	v.Poll()
	v.stepAnimations(dt)
}

func (v *View) stepAnimations(dt float32) {
	if v.debug {
		v.stats.animations = len(v.anims)
	}
	running := v.anims
	v.anims = nil
	var keep []Animation
	for _, a := range running {
		if !a.Update(dt) {
			keep = append(keep, a)
		}
	}
	// Animations started by a step join after the survivors.
	v.anims = append(keep, v.anims...)
}
