package tangent

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// App is one frame-stepped application. Update receives the frame's single
// input sample and advances state; Draw renders whatever Update computed.
// The host loop never re-samples input between the two, so Update and Draw
// always agree on the frame's pointer and canvas size. Run drives an App,
// but any scheduler that alternates Update and Draw works, which keeps apps
// testable without a display.
type App interface {
	Update(in FrameInput) error
	Draw(screen *ebiten.Image)
}

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Queue, when non-nil, feeds synthetic pointer events ahead of the
	// real mouse.
	Queue *InputQueue
	// Script, when non-nil, is stepped into Queue once per frame. Ignored
	// unless Queue is also set.
	Script *Script
	// ShowFPS draws an FPS/TPS readout in the bottom-left corner.
	ShowFPS bool
	// Resizable allows the user to resize the window.
	Resizable bool
}

// game adapts an App to ebiten.Game, sampling input exactly once per tick.
type game struct {
	app    App
	cfg    RunConfig
	width  int
	height int
}

func (g *game) Update() error {
	if g.cfg.Script != nil && g.cfg.Queue != nil {
		g.cfg.Script.Step(g.cfg.Queue)
	}
	in := ReadInput(g.width, g.height, g.cfg.Queue)
	return g.app.Update(in)
}

func (g *game) Draw(screen *ebiten.Image) {
	g.app.Draw(screen)
	if g.cfg.ShowFPS {
		DrawFPS(screen, 8, screen.Bounds().Dy()-18)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a window and drives app until the window closes or Update
// returns an error. Zero-value config fields fall back to usable defaults.
func Run(app App, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Title == "" {
		cfg.Title = "tangent"
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	return ebiten.RunGame(&game{app: app, cfg: cfg, width: cfg.Width, height: cfg.Height})
}
