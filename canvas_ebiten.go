package arbor

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas draws onto an *ebiten.Image. Clipping is implemented with
// SubImage, which keeps view coordinates intact.
type EbitenCanvas struct {
	target *ebiten.Image
	font   *Font
	clipStack
}

// NewEbitenCanvas wraps target. A nil font selects DefaultFont.
func NewEbitenCanvas(target *ebiten.Image, font *Font) *EbitenCanvas {
	if font == nil {
		font = DefaultFont()
	}
	b := target.Bounds()
	c := &EbitenCanvas{target: target, font: font}
	c.clip = Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}
	return c
}

func (c *EbitenCanvas) Save() CanvasState { return c.save() }
func (c *EbitenCanvas) Clip(r Rect) { c.intersect(r) }
func (c *EbitenCanvas) ClipExtent() Rect { return c.clip }

// dst returns the target restricted to the current clip, or nil when the
// clip is empty.
func (c *EbitenCanvas) dst() *ebiten.Image {
	if c.clip.Empty() {
		return nil
	}
	r := image.Rect(
		int(math.Floor(c.clip.X)), int(math.Floor(c.clip.Y)),
		int(math.Ceil(c.clip.Right())), int(math.Ceil(c.clip.Bottom())),
	)
	if r.Empty() {
		return nil
	}
	return c.target.SubImage(r).(*ebiten.Image)
}

func (c *EbitenCanvas) FillRect(r Rect, col Color) {
	if dst := c.dst(); dst != nil {
		vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), col.toRGBA(), false)
	}
}

func (c *EbitenCanvas) StrokeRect(r Rect, width float64, col Color) {
	if dst := c.dst(); dst != nil {
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), col.toRGBA(), true)
	}
}

// FillRoundRect composes the shape from two rectangles and four corner
// circles.
func (c *EbitenCanvas) FillRoundRect(r Rect, radius float64, col Color) {
	dst := c.dst()
	if dst == nil {
		return
	}
	radius = math.Min(radius, math.Min(r.Width, r.Height)/2)
	if radius <= 0 {
		c.FillRect(r, col)
		return
	}
	rgba := col.toRGBA()
	x, y, w, h, rr := float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(radius)
	vector.FillRect(dst, x+rr, y, w-2*rr, h, rgba, false)
	vector.FillRect(dst, x, y+rr, w, h-2*rr, rgba, false)
	vector.FillCircle(dst, x+rr, y+rr, rr, rgba, true)
	vector.FillCircle(dst, x+w-rr, y+rr, rr, rgba, true)
	vector.FillCircle(dst, x+rr, y+h-rr, rr, rgba, true)
	vector.FillCircle(dst, x+w-rr, y+h-rr, rr, rgba, true)
}

func (c *EbitenCanvas) FillCircle(center Vec2, radius float64, col Color) {
	if dst := c.dst(); dst != nil {
		vector.FillCircle(dst, float32(center.X), float32(center.Y), float32(radius), col.toRGBA(), true)
	}
}

func (c *EbitenCanvas) StrokeCircle(center Vec2, radius, width float64, col Color) {
	if dst := c.dst(); dst != nil {
		vector.StrokeCircle(dst, float32(center.X), float32(center.Y), float32(radius), float32(width), col.toRGBA(), true)
	}
}

func (c *EbitenCanvas) Line(a, b Vec2, width float64, col Color) {
	if dst := c.dst(); dst != nil {
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), col.toRGBA(), true)
	}
}

func (c *EbitenCanvas) FillText(p Vec2, s string, size float64, col Color) {
	dst := c.dst()
	if dst == nil || s == "" {
		return
	}
	face := c.font.Face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleWithColor(col.toRGBA())
	op.LineSpacing = c.font.LineHeight(size)
	text.Draw(dst, s, face, op)
}

func (c *EbitenCanvas) MeasureText(s string, size float64) Vec2 {
	return c.font.Measure(s, size)
}

// Clear replaces every pixel inside the clip with col.
func (c *EbitenCanvas) Clear(col Color) {
	if dst := c.dst(); dst != nil {
		dst.Fill(col.toRGBA())
	}
}
