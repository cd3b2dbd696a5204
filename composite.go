package arbor

// Container exposes a composite's children by index.
type Container interface {
	Len() int
	At(i int) Element
}

// compositeOwner is implemented by the concrete type that embeds
// CompositeBase. It supplies child geometry; CompositeBase supplies the
// traversal.
type compositeOwner interface {
	Container
	BoundsOf(ctx *Context, i int) Rect
	hitElement(ctx *Context, p Vec2, control bool) hitInfo
}

// hitInfo records a child found under a point. element is the direct
// child, hit the innermost element it reported.
type hitInfo struct {
	element Element
	hit     Element
	bounds  Rect
	index   int
}

var noHit = hitInfo{index: -1}

// CompositeBase implements drawing, hit-testing, input routing and focus
// for elements with an ordered list of children. Embedders call
// initComposite with themselves and provide Len, At, BoundsOf and
// hitElement.
type CompositeBase struct {
	owner        compositeOwner
	focus        int
	savedFocus   int
	dragTracking int
	clickInfo    hitInfo
	cursorInfo   hitInfo
	topmostFirst bool
}

func (c *CompositeBase) initComposite(owner compositeOwner) {
	c.owner = owner
	c.Reset()
}

// Reset forgets focus, drag tracking and hover state. Composites call it
// whenever their children change.
func (c *CompositeBase) Reset() {
	c.focus = -1
	c.savedFocus = -1
	c.dragTracking = -1
	c.clickInfo = noHit
	c.cursorInfo = noHit
}

func (c *CompositeBase) childContext(ctx *Context, i int) (Element, Context) {
	e := c.owner.At(i)
	return e, ctx.Sub(e, c.owner.BoundsOf(ctx, i))
}

// currentBounds re-resolves a remembered hit, since layout may have moved
// the child since it was recorded.
func (c *CompositeBase) currentBounds(ctx *Context, info hitInfo) Rect {
	if info.index >= 0 && info.index < c.owner.Len() && c.owner.At(info.index) == info.element {
		return c.owner.BoundsOf(ctx, info.index)
	}
	return info.bounds
}

func (c *CompositeBase) tryHit(ctx *Context, p Vec2, control bool, i int) (hitInfo, bool) {
	e := c.owner.At(i)
	if control && !e.WantsControl() {
		return noHit, false
	}
	b := c.owner.BoundsOf(ctx, i)
	if !b.Includes(p) {
		return noHit, false
	}
	cctx := ctx.Sub(e, b)
	if h := e.HitTest(&cctx, p); h != nil {
		return hitInfo{element: e, hit: h, bounds: b, index: i}, true
	}
	return noHit, false
}

// hitAscending returns the first child in index order under p.
func (c *CompositeBase) hitAscending(ctx *Context, p Vec2, control bool) hitInfo {
	n := c.owner.Len()
	for i := 0; i < n; i++ {
		if info, ok := c.tryHit(ctx, p, control, i); ok {
			return info
		}
	}
	return noHit
}

// hitDescending returns the last child in index order under p.
func (c *CompositeBase) hitDescending(ctx *Context, p Vec2, control bool) hitInfo {
	for i := c.owner.Len() - 1; i >= 0; i-- {
		if info, ok := c.tryHit(ctx, p, control, i); ok {
			return info
		}
	}
	return noHit
}

// Draw draws the children whose bounds intersect the canvas clip, in index
// order.
func (c *CompositeBase) Draw(ctx *Context) {
	n := c.owner.Len()
	for i := 0; i < n; i++ {
		b := c.owner.BoundsOf(ctx, i)
		if !visible(ctx.Canvas, b) {
			continue
		}
		e := c.owner.At(i)
		cctx := ctx.Sub(e, b)
		e.Draw(&cctx)
	}
}

func (c *CompositeBase) HitTest(ctx *Context, p Vec2) Element {
	return c.owner.hitElement(ctx, p, false).hit
}

func (c *CompositeBase) Refresh(ctx *Context, target Element) {
	if target == ctx.Element {
		ctx.Refresh()
		return
	}
	n := c.owner.Len()
	for i := 0; i < n; i++ {
		e, cctx := c.childContext(ctx, i)
		e.Refresh(&cctx, target)
	}
}

func (c *CompositeBase) WantsControl() bool {
	n := c.owner.Len()
	for i := 0; i < n; i++ {
		if c.owner.At(i).WantsControl() {
			return true
		}
	}
	return false
}

// Click routes a press to the control under the pointer and remembers it,
// so the matching release and every drag in between reach the same child
// even when the pointer has left it.
func (c *CompositeBase) Click(ctx *Context, ev MouseEvent) bool {
	if ev.Down {
		info := c.owner.hitElement(ctx, ev.Pos, true)
		c.clickInfo = info
		c.dragTracking = -1
		if info.element == nil {
			return false
		}
		if info.element.WantsFocus() && c.focus != info.index {
			c.newFocus(ctx, info.index, FocusRestorePrevious)
		}
		cctx := ctx.Sub(info.element, info.bounds)
		if info.element.Click(&cctx, ev) {
			c.dragTracking = info.index
			return true
		}
		return false
	}

	info := c.clickInfo
	c.clickInfo = noHit
	c.dragTracking = -1
	if info.element == nil {
		return false
	}
	cctx := ctx.Sub(info.element, c.currentBounds(ctx, info))
	return info.element.Click(&cctx, ev)
}

func (c *CompositeBase) Drag(ctx *Context, ev MouseEvent) {
	i := c.dragTracking
	if i < 0 || i >= c.owner.Len() {
		return
	}
	e, cctx := c.childContext(ctx, i)
	e.Drag(&cctx, ev)
}

// Key goes to the focused child. An unhandled Tab moves focus to the next
// child that wants it, Shift-Tab to the previous one.
func (c *CompositeBase) Key(ctx *Context, k KeyInfo) bool {
	if c.focus >= 0 && c.focus < c.owner.Len() {
		e, cctx := c.childContext(ctx, c.focus)
		if e.Key(&cctx, k) {
			return true
		}
	}
	if k.Key != KeyTab || k.Action == KeyRelease {
		return false
	}
	n := c.owner.Len()
	if k.Modifiers&ModShift != 0 {
		next := c.focus
		if next < 0 {
			next = n
		}
		for next--; next >= 0; next-- {
			if c.owner.At(next).WantsFocus() {
				c.newFocus(ctx, next, FocusFromBottom)
				return true
			}
		}
		return false
	}
	for next := c.focus + 1; next < n; next++ {
		if c.owner.At(next).WantsFocus() {
			c.newFocus(ctx, next, FocusFromTop)
			return true
		}
	}
	return false
}

func (c *CompositeBase) Text(ctx *Context, t TextInfo) bool {
	if c.focus < 0 || c.focus >= c.owner.Len() {
		return false
	}
	e, cctx := c.childContext(ctx, c.focus)
	return e.Text(&cctx, t)
}

// Cursor delivers hover status, sending CursorLeaving to the previously
// hovered child when the pointer moves to another one.
func (c *CompositeBase) Cursor(ctx *Context, p Vec2, status CursorTracking) bool {
	info := noHit
	if status != CursorLeaving {
		info = c.owner.hitElement(ctx, p, false)
	}
	prev := c.cursorInfo
	if prev.element != nil && prev.element != info.element {
		pctx := ctx.Sub(prev.element, c.currentBounds(ctx, prev))
		prev.element.Cursor(&pctx, p, CursorLeaving)
	}
	c.cursorInfo = info
	if info.element == nil {
		return false
	}
	st := CursorHovering
	if info.element != prev.element {
		st = CursorEntering
	}
	cctx := ctx.Sub(info.element, info.bounds)
	return info.element.Cursor(&cctx, p, st)
}

func (c *CompositeBase) Scroll(ctx *Context, dir, p Vec2) bool {
	info := c.owner.hitElement(ctx, p, false)
	if info.element == nil {
		return false
	}
	cctx := ctx.Sub(info.element, info.bounds)
	return info.element.Scroll(&cctx, dir, p)
}

func (c *CompositeBase) WantsFocus() bool {
	n := c.owner.Len()
	for i := 0; i < n; i++ {
		if c.owner.At(i).WantsFocus() {
			return true
		}
	}
	return false
}

// BeginFocus restores the previously focused child or searches for one in
// the order req asks for.
func (c *CompositeBase) BeginFocus(req FocusRequest) {
	n := c.owner.Len()
	if c.focus < 0 && req == FocusRestorePrevious && c.savedFocus < n {
		c.focus = c.savedFocus
	}
	if c.focus < 0 {
		descending := req == FocusFromBottom
		if c.topmostFirst {
			descending = !descending
		}
		c.focus = c.firstWantingFocus(descending)
	}
	c.savedFocus = -1
	if c.focus >= 0 {
		c.owner.At(c.focus).BeginFocus(req)
	}
}

func (c *CompositeBase) firstWantingFocus(descending bool) int {
	n := c.owner.Len()
	if descending {
		for i := n - 1; i >= 0; i-- {
			if c.owner.At(i).WantsFocus() {
				return i
			}
		}
		return -1
	}
	for i := 0; i < n; i++ {
		if c.owner.At(i).WantsFocus() {
			return i
		}
	}
	return -1
}

func (c *CompositeBase) EndFocus() {
	if c.focus >= 0 && c.focus < c.owner.Len() {
		c.owner.At(c.focus).EndFocus()
		c.savedFocus = c.focus
	}
	c.focus = -1
}

func (c *CompositeBase) Focus() Element {
	if c.focus < 0 || c.focus >= c.owner.Len() {
		return nil
	}
	return c.owner.At(c.focus)
}

func (c *CompositeBase) Span() float64 { return 1 }

// FocusIndex returns the index of the focused child, or -1.
func (c *CompositeBase) FocusIndex() int { return c.focus }

// trackingCanceler is implemented by controls that must abandon a drag when
// they lose focus.
type trackingCanceler interface {
	CancelTracking(ctx *Context)
}

// dropFocus takes focus from e. A drag in progress in e ends through
// EndTracking first, so its value is committed and the View stops
// reporting it. ctx may be nil when no context is at hand; controls built
// on Tracker then end the drag from the context of their last event.
func dropFocus(ctx *Context, e Element) {
	if tc, ok := e.(trackingCanceler); ok && ctx != nil {
		tc.CancelTracking(ctx)
	}
	e.EndFocus()
}

func (c *CompositeBase) newFocus(ctx *Context, index int, req FocusRequest) {
	if c.focus >= 0 && c.focus < c.owner.Len() {
		e, cctx := c.childContext(ctx, c.focus)
		dropFocus(&cctx, e)
		cctx.Refresh()
	}
	c.focus = index
	if index >= 0 {
		e, cctx := c.childContext(ctx, index)
		e.BeginFocus(req)
		cctx.Refresh()
	}
}

// SetFocus moves focus to child i. Pass -1 to clear it.
func (c *CompositeBase) SetFocus(ctx *Context, i int) {
	if i >= c.owner.Len() {
		i = -1
	}
	if i != c.focus {
		c.newFocus(ctx, i, FocusFromTop)
	}
}

// ElementList is the ordered child storage of Tile, Layer and Deck.
type ElementList struct {
	elems    []Element
	owner    Element
	onChange func()
}

func (l *ElementList) initList(owner Element, onChange func(), elems []Element) {
	l.owner = owner
	l.onChange = onChange
	l.Add(elems...)
}

func (l *ElementList) Len() int { return len(l.elems) }

func (l *ElementList) At(i int) Element { return l.elems[i] }

// Elements returns the children. The slice must not be modified.
func (l *ElementList) Elements() []Element { return l.elems }

// Add appends children.
func (l *ElementList) Add(es ...Element) {
	if len(es) == 0 {
		return
	}
	if globalDebug {
		for _, e := range es {
			debugCheckCycle(l.owner, e)
		}
	}
	l.elems = append(l.elems, es...)
	l.changed()
}

// Insert places e before index i.
func (l *ElementList) Insert(i int, e Element) {
	if globalDebug {
		debugCheckCycle(l.owner, e)
	}
	l.elems = append(l.elems, nil)
	copy(l.elems[i+1:], l.elems[i:])
	l.elems[i] = e
	l.changed()
}

// Remove deletes and returns child i.
func (l *ElementList) Remove(i int) Element {
	e := l.elems[i]
	l.elems = append(l.elems[:i], l.elems[i+1:]...)
	l.changed()
	return e
}

// Clear removes all children.
func (l *ElementList) Clear() {
	l.elems = nil
	l.changed()
}

func (l *ElementList) changed() {
	if globalDebug && len(l.elems) > debugMaxChildCount {
		debugWarnChildCount(len(l.elems))
	}
	if l.onChange != nil {
		l.onChange()
	}
}
