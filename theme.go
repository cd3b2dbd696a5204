package arbor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTheme is returned when a theme fails validation.
var ErrInvalidTheme = errors.New("invalid theme")

// DialMode selects how pointer motion maps to a Dial value.
type DialMode uint8

const (
	// DialLinear maps horizontal and vertical drag distance to value change.
	DialLinear DialMode = iota
	// DialRadial maps the pointer angle around the dial centre to a value.
	DialRadial
)

func (m DialMode) String() string {
	if m == DialRadial {
		return "radial"
	}
	return "linear"
}

// UnmarshalYAML accepts "linear" or "radial".
func (m *DialMode) UnmarshalYAML(n *yaml.Node) error {
	switch strings.ToLower(n.Value) {
	case "linear":
		*m = DialLinear
	case "radial":
		*m = DialRadial
	default:
		return fmt.Errorf("line %d: unknown dial mode %q", n.Line, n.Value)
	}
	return nil
}

// MarshalYAML writes the mode name.
func (m DialMode) MarshalYAML() (any, error) { return m.String(), nil }

// UnmarshalYAML accepts "#rrggbb" or "#rrggbbaa".
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	col, err := ParseHexColor(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = col
	return nil
}

// MarshalYAML writes c as "#rrggbbaa".
func (c Color) MarshalYAML() (any, error) {
	b := func(v float64) int { return int(clamp01(v)*255 + 0.5) }
	return fmt.Sprintf("#%02x%02x%02x%02x", b(c.R), b(c.G), b(c.B), b(c.A)), nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// Theme carries the colors, sizes and behavior constants elements consult
// while drawing and editing values. The View threads one Theme through
// every Context.
type Theme struct {
	PanelColor     Color `yaml:"panel_color"`
	FrameColor     Color `yaml:"frame_color"`
	TextColor      Color `yaml:"text_color"`
	LabelColor     Color `yaml:"label_color"`
	ControlColor   Color `yaml:"control_color"`
	IndicatorColor Color `yaml:"indicator_color"`
	ScrollbarColor Color `yaml:"scrollbar_color"`
	TooltipColor   Color `yaml:"tooltip_color"`

	FontSize      float64 `yaml:"font_size"`
	LabelFontSize float64 `yaml:"label_font_size"`
	FrameRadius   float64 `yaml:"frame_radius"`

	DialMode        DialMode `yaml:"dial_mode"`
	DialLinearRange float64  `yaml:"dial_linear_range"`

	ScrollbarWidth  float64 `yaml:"scrollbar_width"`
	ScrollStep      float64 `yaml:"scroll_step"`
	ScrollDirection Vec2    `yaml:"scroll_direction"`

	TooltipDelay    time.Duration `yaml:"tooltip_delay"`
	ThumbwheelSnap  time.Duration `yaml:"thumbwheel_snap"`
	DoubleClickTime time.Duration `yaml:"double_click_time"`
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		PanelColor:     Color{0.16, 0.16, 0.16, 1},
		FrameColor:     Color{0.4, 0.4, 0.4, 1},
		TextColor:      Color{0.85, 0.85, 0.85, 1},
		LabelColor:     Color{0.7, 0.7, 0.7, 1},
		ControlColor:   Color{0.3, 0.3, 0.3, 1},
		IndicatorColor: Color{0.2, 0.6, 1, 1},
		ScrollbarColor: Color{80.0 / 255, 80.0 / 255, 80.0 / 255, 80.0 / 255},
		TooltipColor:   Color{0.1, 0.1, 0.1, 0.9},

		FontSize:      14,
		LabelFontSize: 12,
		FrameRadius:   4,

		DialMode:        DialLinear,
		DialLinearRange: 200,

		ScrollbarWidth:  10,
		ScrollStep:      0.005,
		ScrollDirection: Vec2{1, 1},

		TooltipDelay:    500 * time.Millisecond,
		ThumbwheelSnap:  150 * time.Millisecond,
		DoubleClickTime: 400 * time.Millisecond,
	}
}

// LoadTheme decodes YAML over DefaultTheme, so omitted keys keep their
// defaults, and validates the result.
func LoadTheme(data []byte) (*Theme, error) {
	t := DefaultTheme()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("arbor: parse theme: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate reports the first out-of-range setting.
func (t *Theme) Validate() error {
	switch {
	case t.FontSize <= 0:
		return fmt.Errorf("arbor: font_size %v: %w", t.FontSize, ErrInvalidTheme)
	case t.LabelFontSize <= 0:
		return fmt.Errorf("arbor: label_font_size %v: %w", t.LabelFontSize, ErrInvalidTheme)
	case t.DialLinearRange <= 0:
		return fmt.Errorf("arbor: dial_linear_range %v: %w", t.DialLinearRange, ErrInvalidTheme)
	case t.ScrollbarWidth < 0:
		return fmt.Errorf("arbor: scrollbar_width %v: %w", t.ScrollbarWidth, ErrInvalidTheme)
	case t.TooltipDelay < 0, t.ThumbwheelSnap < 0, t.DoubleClickTime < 0:
		return fmt.Errorf("arbor: negative duration: %w", ErrInvalidTheme)
	}
	return nil
}
