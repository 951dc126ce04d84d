package fab

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/pkg/errors"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Resizable lets the user resize the window; the host follows the
	// window size.
	Resizable bool
}

// fpsRefresh is how often the FPS overlay text is refreshed, in ticks.
const fpsRefresh = 30

// game adapts a Host to ebiten.Game.
type game struct {
	host    *Host
	cfg     RunConfig
	fpsText string
	ticks   int
}

func (g *game) Update() error {
	if g.host.updateFunc != nil {
		if err := g.host.updateFunc(); err != nil {
			return err
		}
	}
	g.host.Update()
	if g.cfg.ShowFPS {
		if g.ticks%fpsRefresh == 0 {
			g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
		g.ticks++
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.host.ClearColor.toRGBA())
	g.host.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, g.fpsText)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Resizable {
		g.host.SetSize(float64(outsideWidth), float64(outsideHeight))
		return outsideWidth, outsideHeight
	}
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives h until the window closes or the update
// function returns an error. The host is resized to the window.
func Run(h *Host, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Errorf("fab: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	h.SetSize(float64(cfg.Width), float64(cfg.Height))
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(&game{host: h, cfg: cfg}); err != nil {
		return errors.Wrap(err, "fab: run")
	}
	return nil
}

// SetUpdateFunc sets a function called once per tick before the host
// updates. Returning an error stops Run.
func (h *Host) SetUpdateFunc(fn func() error) {
	h.updateFunc = fn
}
