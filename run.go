package sprig

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig holds window and loop settings for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Background overrides the scene's ClearColor when non-nil.
	Background *Color
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene    *Scene
	renderer *EbitenRenderer
	showFPS  bool
	err      error
}

func (g *gameShell) Update() error {
	if g.err != nil {
		return g.err
	}
	g.scene.HandleInput()
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	screen.Fill(g.scene.ClearColor.toRGBA())
	if g.renderer == nil {
		g.renderer = NewEbitenRenderer(screen)
	}
	g.renderer.Target = screen
	if err := g.scene.Draw(g.renderer); err != nil {
		g.err = err
		return
	}
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	g.scene.flushScreenshots(screen)
}

func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Reshape(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and drives the scene until the window is closed or the
// scene's update func returns an error. Frames are redrawn continuously, so
// scenes animate without any explicit invalidation.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	scene.Reshape(cfg.Width, cfg.Height)
	if cfg.Background != nil {
		scene.ClearColor = *cfg.Background
	}

	Logger().Info("starting", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return ebiten.RunGame(&gameShell{scene: scene, showFPS: cfg.ShowFPS})
}
