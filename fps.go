package arbor

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// FPSMeter is an overlay that displays the current FPS and TPS. Its text is
// updated every ~0.5 seconds.
type FPSMeter struct {
	BaseElement
	view    *View
	elapsed float64
	label   string

	// Sample returns the frame and tick rates. It defaults to Ebitengine's
	// measured rates.
	Sample func() (fps, tps float64)
}

// ShowFPS opens an FPSMeter overlay in the top-left corner of the view.
func (v *View) ShowFPS() *FPSMeter {
	m := &FPSMeter{view: v, Sample: func() (float64, float64) {
		return ebiten.ActualFPS(), ebiten.ActualTPS()
	}}
	v.OpenOverlay(m, Rect{X: 4, Y: 4, Width: 100, Height: 36})
	v.Animate(m)
	return m
}

// Label returns the text last shown.
func (m *FPSMeter) Label() string { return m.label }

// Update samples the rates twice a second. It never finishes.
func (m *FPSMeter) Update(dt float32) bool {
	m.elapsed += float64(dt)
	if m.elapsed < 0.5 && m.label != "" {
		return false
	}
	m.elapsed = 0
	fps, tps := m.Sample()
	m.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
	if m.view != nil {
		m.view.RefreshElement(m)
	}
	return false
}

// HitTest never hits so the meter does not block input.
func (m *FPSMeter) HitTest(*Context, Vec2) Element { return nil }

func (m *FPSMeter) Draw(ctx *Context) {
	ctx.Canvas.FillRect(ctx.Bounds, Color{A: 0.5})
	ctx.Canvas.FillText(Vec2{ctx.Bounds.X + 4, ctx.Bounds.Y + 2}, m.label, ctx.Theme().LabelFontSize, ctx.Theme().TextColor)
}
