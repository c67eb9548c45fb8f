//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sketchbox/internal/config"
	"sketchbox/internal/core"
	"sketchbox/internal/render"
	"sketchbox/internal/ui"
)

// Game adapts a mounted sketch to the ebiten.Game interface.
type Game struct {
	reloader Reloader
	painter  *render.Painter
	hud      *ui.HUD
	overlay  *ui.Overlay
	pace     *core.FixedStep

	scale   int
	showHUD bool
	paused  bool
}

// New constructs a Game around the reloader's live instance.
func New(r Reloader, cfg config.Window) *Game {
	g := &Game{
		reloader: r,
		overlay:  ui.NewOverlay(cfg.Scale),
		pace:     core.NewFixedStep(cfg.FPS),
		scale:    cfg.Scale,
		hud:      ui.NewHUD(hudWidth),
		showHUD:  cfg.HUD,
	}
	g.ensurePainter()
	return g
}

func (g *Game) ensurePainter() {
	w, h := canvasSize(g.reloader.Current())
	if g.painter != nil {
		if pw, ph := g.painter.Size(); pw == w && ph == h {
			return
		}
	}
	g.painter = render.NewPainter(w, h)
}

// Update handles input, applies pending reloads and runs due frames.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
		ebiten.SetWindowSize(g.WindowSize())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reloader.Current().Redraw()
	}
	if applied, _ := g.reloader.Poll(); applied {
		g.ensurePainter()
	}
	g.overlay.Update()

	inst := g.reloader.Current()
	if !g.paused && g.pace.ShouldStep() {
		inst.Step()
	}
	if g.showHUD {
		g.hud.Update(inst.Sketch(), ui.Status{
			Sketch:  inst.Sketch().Name(),
			State:   inst.State().String(),
			Frames:  inst.Frames(),
			Reloads: g.reloader.Reloads(),
			Paused:  g.paused,
		})
	}
	return nil
}

// Draw blits the canvas, guides and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	inst := g.reloader.Current()
	if frame, ok := inst.Surface().(render.Frame); ok {
		g.painter.Blit(screen, frame.Image(), g.scale)
	}
	w, h := canvasSize(inst)
	g.overlay.Draw(screen, inst.Sketch(), w, h)
	if g.showHUD {
		g.hud.Draw(screen, w*g.scale, h*g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

// WindowSize is the current window size, including the HUD panel while it
// is shown.
func (g *Game) WindowSize() (int, int) {
	return screenSize(g.reloader.Current(), g.scale, g.showHUD)
}
