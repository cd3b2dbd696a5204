package arbor

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Constants ---

const (
	clickSlop       = 4.0 // pixels a double click may wander
	wheelLinePixels = 10.0
	keyRepeatDelay  = 30 // ticks
	keyRepeatEvery  = 3  // ticks
)

// --- Pointer state ---

type pointerState struct {
	down       bool
	last       Vec2
	button     MouseButton // button captured at press time
	mods       KeyModifiers
	inside     bool
	clicks     int
	lastPress  time.Time
	lastPressP Vec2
}

// processPointer turns one frame of pointer state into Click, Drag and
// Cursor calls on the View, counting consecutive presses for double
// clicks.
func (v *View) processPointer(p Vec2, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &v.pointer
	ps.mods = mods

	switch {
	case pressed && !ps.down:
		now := v.now()
		d := p.Sub(ps.lastPressP)
		if ps.clicks > 0 && now.Sub(ps.lastPress) <= v.theme.DoubleClickTime &&
			math.Hypot(d.X, d.Y) <= clickSlop && button == ps.button {
			ps.clicks++
		} else {
			ps.clicks = 1
		}
		ps.lastPress, ps.lastPressP = now, p
		ps.down = true
		ps.button = button
		ps.last = p
		v.Click(MouseEvent{Down: true, Clicks: ps.clicks, Button: button, Modifiers: mods, Pos: p})

	case !pressed && ps.down:
		if p != ps.last {
			v.Drag(MouseEvent{Down: true, Button: ps.button, Modifiers: mods, Pos: p})
		}
		ps.down = false
		ps.last = p
		v.Click(MouseEvent{Clicks: ps.clicks, Button: ps.button, Modifiers: mods, Pos: p})

	case pressed && ps.down:
		if p != ps.last {
			v.Drag(MouseEvent{Down: true, Button: ps.button, Modifiers: mods, Pos: p})
			ps.last = p
		}

	default:
		in := v.bounds.Includes(p)
		switch {
		case in && !ps.inside:
			v.Cursor(p, CursorEntering)
		case in && p != ps.last:
			v.Cursor(p, CursorHovering)
		case !in && ps.inside:
			v.Cursor(p, CursorLeaving)
		}
		ps.inside = in
		ps.last = p
	}
}

// --- Ebitengine polling ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// processInput polls Ebitengine for this frame's mouse, wheel, keyboard
// and text input. Injected pointer events replace the real mouse while
// any are queued.
func (v *View) processInput() {
	mods := readModifiers()
	v.pointer.mods = mods
	if !v.injected && len(v.injectQueue) == 0 {
		v.processMousePointer(mods)
	}
	if x, y := ebiten.Wheel(); x != 0 || y != 0 {
		mx, my := ebiten.CursorPosition()
		v.Scroll(Vec2{x * wheelLinePixels, y * wheelLinePixels}, Vec2{float64(mx), float64(my)})
	}
	v.processKeys(mods)
	v.processChars(mods)
}

func (v *View) processMousePointer(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	p := Vec2{float64(mx), float64(my)}

	// If the pointer is already down, keep the stored button so it does
	// not change mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	v.processPointer(p, pressed, button, mods)
}

var keyMap = []struct {
	ebiten ebiten.Key
	key    KeyCode
}{
	{ebiten.KeyTab, KeyTab},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyNumpadEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeySpace, KeySpace},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyDelete, KeyDelete},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyHome, KeyHome},
	{ebiten.KeyEnd, KeyEnd},
	{ebiten.KeyPageUp, KeyPageUp},
	{ebiten.KeyPageDown, KeyPageDown},
}

func (v *View) processKeys(mods KeyModifiers) {
	for _, m := range keyMap {
		ek, k := m.ebiten, m.key
		switch {
		case inpututil.IsKeyJustPressed(ek):
			v.Key(KeyInfo{Key: k, Action: KeyPress, Modifiers: mods})
		case inpututil.IsKeyJustReleased(ek):
			v.Key(KeyInfo{Key: k, Action: KeyRelease, Modifiers: mods})
		default:
			if d := inpututil.KeyPressDuration(ek); d > keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatEvery == 0 {
				v.Key(KeyInfo{Key: k, Action: KeyRepeat, Modifiers: mods})
			}
		}
	}
}

func (v *View) processChars(mods KeyModifiers) {
	v.chars = ebiten.AppendInputChars(v.chars[:0])
	for _, r := range v.chars {
		v.Text(TextInfo{Codepoint: r, Modifiers: mods})
	}
}
