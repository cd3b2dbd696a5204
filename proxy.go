package arbor

// SubjectAdjuster lets a proxy adjust the context its subject sees.
// PrepareSubject runs before every forwarded call and RestoreSubject after
// it, including when the forwarded call panics.
type SubjectAdjuster interface {
	PrepareSubject(ctx *Context)
	RestoreSubject(ctx *Context)
}

// Proxy owns a single subject element and forwards every operation to it.
// Concrete proxies embed Proxy, override what they change and register
// themselves as the SubjectAdjuster with SetAdjuster when they need to
// rewrite the subject's context.
type Proxy struct {
	subject Element
	adjust  SubjectAdjuster
}

// NewProxy creates a pass-through proxy.
func NewProxy(subject Element) *Proxy {
	return &Proxy{subject: subject}
}

// Subject returns the wrapped element.
func (p *Proxy) Subject() Element { return p.subject }

// SetSubject replaces the wrapped element.
func (p *Proxy) SetSubject(e Element) { p.subject = e }

// SetAdjuster installs the hooks run around every forwarded call.
func (p *Proxy) SetAdjuster(a SubjectAdjuster) { p.adjust = a }

// enter derives the subject context and runs PrepareSubject. Callers must
// defer leave with the returned context.
func (p *Proxy) enter(ctx *Context) Context {
	sctx := ctx.Sub(p.subject, ctx.Bounds)
	if p.adjust != nil {
		p.adjust.PrepareSubject(&sctx)
	}
	return sctx
}

func (p *Proxy) leave(sctx *Context) {
	if p.adjust != nil {
		p.adjust.RestoreSubject(sctx)
	}
}

// SubjectContext derives the subject's context without running the
// adjuster hooks. Use it for read-only queries such as geometry.
func (p *Proxy) SubjectContext(ctx *Context) Context {
	return ctx.Sub(p.subject, ctx.Bounds)
}

func (p *Proxy) Limits(ctx *Context) Limits {
	sctx := p.enter(ctx)
	defer p.leave(&sctx)
	return p.subject.Limits(&sctx)
}

func (p *Proxy) Span() float64 { return p.subject.Span() }

func (p *Proxy) Layout(ctx *Context) {
	sctx := p.enter(ctx)
	defer p.leave(&sctx)
	p.subject.Layout(&sctx)
}

func (p *Proxy) Draw(ctx *Context) {
	sctx := p.enter(ctx)
	defer p.leave(&sctx)
	p.subject.Draw(&sctx)
}

func (p *Proxy) HitTest(ctx *Context, pt Vec2) Element {
	sctx := p.enter(ctx)
	defer p.leave(&sctx)
	return p.subject.HitTest(&sctx, pt)
}

func (p *Proxy) Refresh(ctx *Context, target Element) {
	if target == ctx.Element {
		ctx.Refresh()
		return
	}
	sctx := p.enter(ctx)
	defer p.leave(&sctx)
	p.subject.Refresh(&sctx, target)
}

func (p *Proxy) WantsControl() bool { return p.subject.WantsControl() }

func (p *Proxy) Click(ctx *Context, ev MouseEvent) bool {
	sctx := p.enter(ctx)
	defer p.leave(&sctx)
	return p.subject.Click(&sctx, ev)
}

func (p *Proxy) Drag(ctx *Context, ev MouseEvent) {
	sctx := p.enter(ctx)
	defer p.leave(&sctx)
	p.subject.Drag(&sctx, ev)
}

func (p *Proxy) Key(ctx *Context, k KeyInfo) bool {
	sctx := p.enter(ctx)
	defer p.leave(&sctx)
	return p.subject.Key(&sctx, k)
}

func (p *Proxy) Text(ctx *Context, t TextInfo) bool {
	sctx := p.enter(ctx)
	defer p.leave(&sctx)
	return p.subject.Text(&sctx, t)
}

func (p *Proxy) Cursor(ctx *Context, pt Vec2, status CursorTracking) bool {
	sctx := p.enter(ctx)
	defer p.leave(&sctx)
	return p.subject.Cursor(&sctx, pt, status)
}

func (p *Proxy) Scroll(ctx *Context, dir, pt Vec2) bool {
	sctx := p.enter(ctx)
	defer p.leave(&sctx)
	return p.subject.Scroll(&sctx, dir, pt)
}

func (p *Proxy) WantsFocus() bool { return p.subject.WantsFocus() }
func (p *Proxy) BeginFocus(req FocusRequest) { p.subject.BeginFocus(req) }
func (p *Proxy) EndFocus() { p.subject.EndFocus() }
func (p *Proxy) Focus() Element { return p.subject }
