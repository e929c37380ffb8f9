package touchstrip

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the polling rate. Zero keeps ebiten's default of 60.
	TPS int
	// PanelSize is the side of the panel in panel units, used to fit the
	// default source. Zero means Width.
	PanelSize float64
	// Source polls touches each tick. Nil creates one fitted to the window
	// with mouse input enabled.
	Source *EbitenSource
	// ShowActive prints the tick rate, touch count and engaged zone names
	// in the top-left corner.
	ShowActive bool
	// OnUpdate, if set, runs after the panel's update each tick. A non-nil
	// error stops the loop and is returned by Run.
	OnUpdate func() error
}

type game struct {
	panel  *Panel
	cfg    RunConfig
	width  int
	height int
}

func (g *game) Update() error {
	g.panel.Update()
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if !g.cfg.ShowActive {
		return
	}
	var names []string
	g.panel.Active().Each(func(id ZoneID) {
		names = append(names, g.panel.Catalog().Zone(id).Name)
	})
	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f\ntouches: %d\nactive: %s",
		ebiten.ActualTPS(), g.panel.TouchCount(), strings.Join(names, " ")))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives the panel from ebiten's update loop until
// the window closes or OnUpdate fails. Touches are reset before returning.
func Run(p *Panel, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1080
	}
	if cfg.Height <= 0 {
		cfg.Height = 1080
	}
	if cfg.PanelSize <= 0 {
		cfg.PanelSize = float64(cfg.Width)
	}
	if cfg.Source == nil {
		cfg.Source = NewEbitenSource(FitViewport(float64(cfg.Width), float64(cfg.Height), cfg.PanelSize))
		cfg.Source.Mouse = true
	}
	p.SetSource(cfg.Source)
	defer p.Reset()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(&game{panel: p, cfg: cfg, width: cfg.Width, height: cfg.Height})
}
