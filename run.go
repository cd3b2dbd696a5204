package arbor

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	Debug   bool

	// Theme replaces the view's theme when set.
	Theme *Theme

	// Resizable lets the user resize the window; the view follows.
	Resizable bool
}

// game adapts a View to ebiten.Game.
type game struct {
	view *View
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.view.Update(dt)
	g.view.processInput()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.view.DrawScreen(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window showing v and blocks until it is closed.
func Run(v *View, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Theme != nil {
		if err := cfg.Theme.Validate(); err != nil {
			return fmt.Errorf("arbor: run: %w", err)
		}
		v.SetTheme(cfg.Theme)
		v.ClearColor = cfg.Theme.PanelColor
	}
	v.SetDebugMode(cfg.Debug)
	v.Resize(float64(cfg.Width), float64(cfg.Height))
	if cfg.ShowFPS {
		v.ShowFPS()
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	// The view keeps its own retained buffer and copies it whole each
	// frame.
	ebiten.SetScreenClearedEveryFrame(false)
	if err := ebiten.RunGame(&game{view: v}); err != nil {
		return fmt.Errorf("arbor: run: %w", err)
	}
	return nil
}
