package arbor

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a canvas backend.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
)

// toRGBA returns the premultiplied 8-bit form of c.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Opacity returns c with its alpha replaced.
func (c Color) Opacity(a float64) Color {
	c.A = a
	return c
}

// Level scales the RGB components, brightening for l > 1 and darkening
// for l < 1.
func (c Color) Level(l float64) Color {
	return Color{clamp01(c.R * l), clamp01(c.G * l), clamp01(c.B * l), c.A}
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Vec2 is a 2D vector used for points, offsets, sizes and directions.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromPoints builds the rectangle spanning (left, top) to (right, bottom).
func RectFromPoints(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Size returns the rectangle's extent.
func (r Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.Width/2, r.Y + r.Height/2} }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Includes reports whether p lies inside r.
func (r Rect) Includes(p Vec2) bool { return r.Contains(p.X, p.Y) }

// ContainsRect reports whether o lies entirely within r. A small tolerance
// absorbs rounding in accumulated layout offsets.
func (r Rect) ContainsRect(o Rect) bool {
	const eps = 1e-9
	return o.X >= r.X-eps && o.Y >= r.Y-eps &&
		o.Right() <= r.Right()+eps && o.Bottom() <= r.Bottom()+eps
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersect returns the overlap of r and o. The result is empty when they
// do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	left := math.Max(r.X, o.X)
	top := math.Max(r.Y, o.Y)
	right := math.Min(r.Right(), o.Right())
	bottom := math.Min(r.Bottom(), o.Bottom())
	if right < left || bottom < top {
		return Rect{}
	}
	return RectFromPoints(left, top, right, bottom)
}

// Union returns the smallest rectangle enclosing r and o. An empty operand
// is ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return RectFromPoints(
		math.Min(r.X, o.X), math.Min(r.Y, o.Y),
		math.Max(r.Right(), o.Right()), math.Max(r.Bottom(), o.Bottom()),
	)
}

// Inset shrinks r by the given edge amounts. Negative amounts grow it.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  math.Max(r.Width-left-right, 0),
		Height: math.Max(r.Height-top-bottom, 0),
	}
}

// Moved returns r translated by (dx, dy).
func (r Rect) Moved(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// FullExtent is the sentinel "unbounded" extent used for maximum limits.
const FullExtent = 1e6

// Limits is the size range an element accepts. Min must not exceed Max on
// either axis.
type Limits struct {
	Min, Max Vec2
}

// FullLimits accepts any size from zero to FullExtent.
var FullLimits = Limits{Max: Vec2{FullExtent, FullExtent}}

// FixedLimits pins both min and max to (w, h).
func FixedLimits(w, h float64) Limits {
	return Limits{Min: Vec2{w, h}, Max: Vec2{w, h}}
}

// Valid reports whether l satisfies 0 <= Min <= Max <= FullExtent.
func (l Limits) Valid() bool {
	return l.Min.X >= 0 && l.Min.Y >= 0 &&
		l.Min.X <= l.Max.X && l.Min.Y <= l.Max.Y &&
		l.Max.X <= FullExtent && l.Max.Y <= FullExtent
}

// Clamp fits size into l.
func (l Limits) Clamp(size Vec2) Vec2 {
	return Vec2{clamp(size.X, l.Min.X, l.Max.X), clamp(size.Y, l.Min.Y, l.Max.Y)}
}

// Axis selects the horizontal or vertical dimension.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) of(v Vec2) float64 {
	if a == Horizontal {
		return v.X
	}
	return v.Y
}

func (a Axis) set(v *Vec2, val float64) {
	if a == Horizontal {
		v.X = val
	} else {
		v.Y = val
	}
}

func (a Axis) other() Axis { return 1 - a }

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// MouseEvent describes a pointer button transition or a drag step.
type MouseEvent struct {
	Down      bool
	Clicks    int
	Button    MouseButton
	Modifiers KeyModifiers
	Pos       Vec2
}

// CursorTracking is the hover status passed to Element.Cursor.
type CursorTracking uint8

const (
	CursorEntering CursorTracking = iota
	CursorHovering
	CursorLeaving
)

// TrackingState is a Tracker transition reported to the View.
type TrackingState uint8

const (
	TrackingBegin TrackingState = iota
	TrackingWhile
	TrackingEnd
)

// FocusRequest tells BeginFocus where to place focus inside a composite.
type FocusRequest uint8

const (
	FocusFromTop FocusRequest = iota
	FocusFromBottom
	FocusRestorePrevious
)

// KeyCode names a physical key.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyTab
	KeyEnter
	KeyEscape
	KeySpace
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// KeyAction distinguishes press, repeat and release.
type KeyAction uint8

const (
	KeyPress KeyAction = iota
	KeyRepeat
	KeyRelease
)

// KeyInfo is a keyboard event.
type KeyInfo struct {
	Key       KeyCode
	Action    KeyAction
	Modifiers KeyModifiers
}

// TextInfo is a typed character.
type TextInfo struct {
	Codepoint rune
	Modifiers KeyModifiers
}
