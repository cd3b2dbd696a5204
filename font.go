package arbor

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps Ebitengine's text/v2 for TrueType rendering. Faces are created
// lazily per size and cached.
type Font struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadFont parses TrueType or OpenType data.
func LoadFont(ttfData []byte) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("arbor: failed to parse font data: %w", err)
	}
	return &Font{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

var (
	defaultFontOnce sync.Once
	defaultFont     *Font
)

// DefaultFont returns the Go Regular font. It panics if the embedded font
// data cannot be parsed, which would be a build defect.
func DefaultFont() *Font {
	defaultFontOnce.Do(func() {
		f, err := LoadFont(goregular.TTF)
		if err != nil {
			panic(err)
		}
		defaultFont = f
	})
	return defaultFont
}

// Face returns the face for size.
func (f *Font) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// LineHeight returns the distance between baselines at size.
func (f *Font) LineHeight(size float64) float64 {
	m := f.Face(size).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Measure returns the extent of s at size.
func (f *Font) Measure(s string, size float64) Vec2 {
	w, h := text.Measure(s, f.Face(size), f.LineHeight(size))
	return Vec2{w, h}
}
