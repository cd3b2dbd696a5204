package arbor

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// shot is a queued capture. When elem is set its bounds are looked up
// after the frame is drawn; otherwise area is used as given.
type shot struct {
	label string
	area  Rect
	elem  Element
}

// Screenshot queues a capture of the whole view, taken from the retained
// buffer at the end of the next DrawScreen. The PNG is written to
// ScreenshotDir with a timestamped file name.
func (v *View) Screenshot(label string) {
	v.screenshotQueue = append(v.screenshotQueue, shot{label: label, area: v.bounds})
}

// ScreenshotRect queues a capture of the part of the view inside r.
func (v *View) ScreenshotRect(label string, r Rect) {
	v.screenshotQueue = append(v.screenshotQueue, shot{label: label, area: r})
}

// ScreenshotElement queues a capture of e, cropped to wherever e sits when
// the frame has been drawn. Nothing is written if e is no longer in the
// tree by then.
func (v *View) ScreenshotElement(label string, e Element) {
	v.screenshotQueue = append(v.screenshotQueue, shot{label: label, elem: e})
}

// ElementBounds returns where e currently sits in the view. The lookup
// walks the tree the way RefreshElement does, so e is found in every
// container that forwards Refresh, including overlays.
func (v *View) ElementBounds(e Element) (Rect, bool) {
	var (
		found Rect
		ok    bool
	)
	v.locate = func(r Rect) {
		if !ok {
			found, ok = r, true
		}
	}
	defer func() { v.locate = nil }()
	v.RefreshElement(e)
	return found, ok
}

// pixelRect converts r to the whole pixels it touches, clipped to b.
func pixelRect(r Rect, b image.Rectangle) image.Rectangle {
	pr := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
	return pr.Intersect(b)
}

// flushScreenshots crops every queued capture out of buf and writes each
// as a PNG file.
func (v *View) flushScreenshots(buf *ebiten.Image) {
	if len(v.screenshotQueue) == 0 {
		return
	}
	queue := v.screenshotQueue
	v.screenshotQueue = nil

	if err := os.MkdirAll(v.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[arbor] screenshot: mkdir %s: %v\n", v.ScreenshotDir, err)
		return
	}
	stamp := time.Now().Format("20060102_150405")

	for _, s := range queue {
		area := s.area
		if s.elem != nil {
			var ok bool
			if area, ok = v.ElementBounds(s.elem); !ok {
				_, _ = fmt.Fprintf(os.Stderr, "[arbor] screenshot %q: element not in view\n", s.label)
				continue
			}
		}
		pr := pixelRect(area, buf.Bounds())
		if pr.Empty() {
			_, _ = fmt.Fprintf(os.Stderr, "[arbor] screenshot %q: %v is outside the view\n", s.label, area)
			continue
		}
		sub := buf.SubImage(pr).(*ebiten.Image)
		pixels := make([]byte, 4*pr.Dx()*pr.Dy())
		sub.ReadPixels(pixels)

		path := filepath.Join(v.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(s.label)))
		if err := writePNG(path, unpremultiply(pixels, pr.Dx(), pr.Dy())); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[arbor] screenshot: %v\n", err)
		}
	}
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
	}
	return img
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing anything else
// with '_'. An empty label becomes "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
