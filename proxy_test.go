package arbor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type countingAdjuster struct {
	prepared, restored int
	inset              float64
}

func (a *countingAdjuster) PrepareSubject(ctx *Context) {
	a.prepared++
	ctx.Bounds = ctx.Bounds.Inset(a.inset, a.inset, a.inset, a.inset)
}

func (a *countingAdjuster) RestoreSubject(*Context) { a.restored++ }

type panicker struct{ BaseElement }

func (panicker) Draw(*Context) { panic("draw failed") }

func TestProxyForwardsWithAdjustedBounds(t *testing.T) {
	box := NewBox(ColorWhite)
	p := NewProxy(box)
	adj := &countingAdjuster{inset: 10}
	p.SetAdjuster(adj)
	c := newRecordCanvas(100, 100)
	ctx := NewContext(nil, c, p, Rect{Width: 100, Height: 100})

	p.Draw(&ctx)
	if diff := cmp.Diff([]string{"fill 10,10 80x80"}, c.ops); diff != "" {
		t.Errorf("draw ops mismatch (-want +got):\n%s", diff)
	}
	if got := p.HitTest(&ctx, Vec2{5, 5}); got != nil {
		t.Errorf("HitTest in inset = %v, want nil", got)
	}
	if got := p.HitTest(&ctx, Vec2{50, 50}); got != box {
		t.Errorf("HitTest inside = %v, want box", got)
	}
	if adj.prepared != adj.restored || adj.prepared != 3 {
		t.Errorf("prepared %d restored %d, want 3 each", adj.prepared, adj.restored)
	}
}

func TestProxyRestoresOnPanic(t *testing.T) {
	p := NewProxy(panicker{})
	adj := &countingAdjuster{}
	p.SetAdjuster(adj)
	ctx := testContext(p, 10, 10)
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic to propagate")
			}
		}()
		p.Draw(&ctx)
	}()
	if adj.restored != 1 {
		t.Errorf("restored = %d, want 1", adj.restored)
	}
}

func TestMargin(t *testing.T) {
	box := NewBox(ColorWhite)
	m := NewMargin(1, 2, 3, 4, FixedSize(10, 10, box))
	ctx := testContext(m, 100, 100)
	want := Limits{Min: Vec2{14, 16}, Max: Vec2{14, 16}}
	if got := m.Limits(&ctx); got != want {
		t.Errorf("Limits = %v, want %v", got, want)
	}
	full := NewUniformMargin(5, NewBox(ColorWhite))
	if got := full.Limits(&ctx); got.Max.X != FullExtent || got.Min.X != 10 {
		t.Errorf("uniform Limits = %v, want min 10 max FullExtent", got)
	}
}

func TestAlign(t *testing.T) {
	box := NewBox(ColorWhite)
	a := NewAlign(0.5, 1, FixedSize(20, 10, box))
	c := newRecordCanvas(100, 100)
	ctx := NewContext(nil, c, a, Rect{Width: 100, Height: 50})
	a.Draw(&ctx)
	if diff := cmp.Diff([]string{"fill 40,40 20x10"}, c.ops); diff != "" {
		t.Errorf("draw ops mismatch (-want +got):\n%s", diff)
	}
	if got := a.Limits(&ctx); got.Max != (Vec2{FullExtent, FullExtent}) || got.Min != (Vec2{20, 10}) {
		t.Errorf("Limits = %v", got)
	}

	h := NewHAlign(1, FixedSize(20, 10, box))
	c.reset()
	hctx := NewContext(nil, c, h, Rect{Width: 100, Height: 10})
	h.Draw(&hctx)
	if diff := cmp.Diff([]string{"fill 80,0 20x10"}, c.ops); diff != "" {
		t.Errorf("halign draw ops mismatch (-want +got):\n%s", diff)
	}
}

func TestLimitClamps(t *testing.T) {
	ctx := testContext(nil, 100, 100)
	tests := []struct {
		name string
		e    Element
		want Limits
	}{
		{"fixed", FixedSize(10, 20, NewBox(ColorWhite)), FixedLimits(10, 20)},
		{"min", MinSize(10, 20, NewBox(ColorWhite)), Limits{Min: Vec2{10, 20}, Max: Vec2{FullExtent, FullExtent}}},
		{"max", MaxSize(10, 20, NewBox(ColorWhite)), Limits{Max: Vec2{10, 20}}},
		{"hsize", HSize(30, NewBox(ColorWhite)), Limits{Min: Vec2{30, 0}, Max: Vec2{30, FullExtent}}},
		{"vsize", VSize(30, NewBox(ColorWhite)), Limits{Min: Vec2{0, 30}, Max: Vec2{FullExtent, 30}}},
		{"nested", MaxSize(15, 15, MinSize(10, 20, NewBox(ColorWhite))), Limits{Min: Vec2{10, 15}, Max: Vec2{15, 15}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.e.Limits(&ctx)
			if got != tt.want {
				t.Errorf("Limits = %v, want %v", got, tt.want)
			}
			if !got.Valid() {
				t.Errorf("Limits %v not valid", got)
			}
		})
	}
}

func TestHidable(t *testing.T) {
	box := NewBox(ColorWhite)
	h := NewHidable(box)
	c := newRecordCanvas(10, 10)
	ctx := NewContext(nil, c, h, Rect{Width: 10, Height: 10})
	h.Hidden = true
	h.Draw(&ctx)
	if len(c.ops) != 0 {
		t.Errorf("hidden draw ops = %v, want none", c.ops)
	}
	if got := h.HitTest(&ctx, Vec2{5, 5}); got != nil {
		t.Errorf("hidden HitTest = %v, want nil", got)
	}
	h.Hidden = false
	h.Draw(&ctx)
	if len(c.ops) != 1 {
		t.Errorf("visible draw ops = %v, want one fill", c.ops)
	}
}

func TestSharedRef(t *testing.T) {
	box := NewBox(ColorBlack)
	ref := Share(box)
	a := NewVTile(ref)
	b := NewHTile(ref)
	ref.Get().SetValue(ColorWhite)
	if a.At(0).(*Ref[*Box]).Get().Value() != ColorWhite || b.At(0).(*Ref[*Box]).Get().Value() != ColorWhite {
		t.Error("mutation through a shared ref should be visible to every holder")
	}
	if ref.Span() != 1 {
		t.Errorf("Span = %v, want 1", ref.Span())
	}
}
