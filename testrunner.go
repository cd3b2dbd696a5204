package arbor

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyScript is returned by LoadTestScript for a script without steps.
var ErrEmptyScript = errors.New("no steps")

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	Text   string  `json:"text,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	W      float64 `json:"w,omitempty"`
	H      float64 `json:"h,omitempty"`
	Focus  bool    `json:"focus,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var scriptKeys = map[string]KeyCode{
	"tab":      KeyTab,
	"enter":    KeyEnter,
	"escape":   KeyEscape,
	"space":    KeySpace,
	"left":     KeyLeft,
	"right":    KeyRight,
	"up":       KeyUp,
	"down":     KeyDown,
	"home":     KeyHome,
	"end":      KeyEnd,
	"pageup":   KeyPageUp,
	"pagedown": KeyPageDown,
}

// TestRunner sequences injected input events and screenshots across frames
// for automated visual testing. Attach it to a View with SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a View.
//
// Supported actions: "click", "drag", "hover", "scroll" (dx, dy at x, y),
// "key" (a name such as "tab" or "pageup"), "text", "wait" and
// "screenshot". A screenshot captures the whole view, the rectangle x, y,
// w, h when w and h are set, or the focused element when focus is true.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrEmptyScript)
	}
	for i, st := range script.Steps {
		if st.Action == "key" {
			if _, ok := scriptKeys[st.Key]; !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown key %q", i, st.Key)
			}
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the view. The runner advances one
// step per View.Update.
func (v *View) SetTestRunner(runner *TestRunner) {
	v.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(v *View) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(v.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		switch {
		case st.Focus:
			if e := v.Focus(); e != nil {
				v.ScreenshotElement(st.Label, e)
			}
		case st.W > 0 && st.H > 0:
			v.ScreenshotRect(st.Label, Rect{X: st.X, Y: st.Y, Width: st.W, Height: st.H})
		default:
			v.Screenshot(st.Label)
		}
	case "click":
		v.InjectClick(st.X, st.Y)
	case "drag":
		v.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "hover":
		v.InjectHover(st.X, st.Y)
	case "scroll":
		v.Scroll(Vec2{st.DX, st.DY}, Vec2{st.X, st.Y})
	case "key":
		k := scriptKeys[st.Key]
		v.Key(KeyInfo{Key: k, Action: KeyPress})
		v.Key(KeyInfo{Key: k, Action: KeyRelease})
	case "text":
		for _, c := range st.Text {
			v.Text(TextInfo{Codepoint: c})
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(v.injectQueue) == 0 {
		r.done = true
	}
}
