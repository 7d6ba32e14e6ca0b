//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/mazewalker/lifesim/internal/render"
	"github.com/mazewalker/lifesim/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	aliveColor = color.RGBA{R: 50, G: 205, B: 50, A: 255}
	deadColor  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
)

// Game adapts a sim.Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *sim.Controller
	painter *render.GridPainter
	scale   int

	// lastRate tracks the rate ebiten.SetTPS was last synced to, so the frame
	// clock follows the controller's speed commands.
	lastRate int
}

// New constructs a Game for the provided controller.
func New(ctrl *sim.Controller, scale int) *Game {
	grid := ctrl.Grid()
	return &Game{
		ctrl:     ctrl,
		painter:  render.NewGridPainter(grid.Rows(), grid.Cols()),
		scale:    scale,
		lastRate: ctrl.Rate(),
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.ResetRandom()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEqual) ||
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.ctrl.SpeedUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) ||
		inpututil.IsKeyJustPressed(ebiten.KeyMinus) ||
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.ctrl.SpeedDown()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.ctrl.SeedRandomCell()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.StepOnce()
	}

	if rate := g.ctrl.Rate(); rate != g.lastRate {
		ebiten.SetTPS(rate)
		g.lastRate = rate
	}

	g.ctrl.Tick()
	return nil
}

// Draw renders the current grid and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctrl.Grid(), aliveColor, deadColor, g.scale)

	status := fmt.Sprintf("Speed: %d updates/s  Generation: %d", g.ctrl.Rate(), g.ctrl.Generation())
	if g.ctrl.Paused() {
		status += "  [paused]"
	}
	text.Draw(screen, status, basicfont.Face7x13, 10, 20, color.White)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.ctrl.Grid()
	return grid.Cols() * g.scale, grid.Rows() * g.scale
}

// Run opens the window and drives the controller until the user quits. A nil
// return means a clean quit; any error means graphical mode did not work and
// the caller may fall back to the text front end.
func Run(ctrl *sim.Controller, scale int) error {
	game := New(ctrl, scale)
	grid := ctrl.Grid()

	ebiten.SetWindowTitle("lifesim — Conway's Game of Life")
	ebiten.SetTPS(ctrl.Rate())
	ebiten.SetWindowSize(grid.Cols()*scale, grid.Rows()*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
