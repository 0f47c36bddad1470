// File: internal/ui/gameloop.go
package ui

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"ur_go/internal/board"
	"ur_go/internal/config"
	"ur_go/internal/control"
	"ur_go/internal/dice"
	"ur_go/internal/i18n"
	"ur_go/internal/layout"
)

type GameLoop struct {
	cfg    config.Config
	lay    *layout.Layout
	tr     *i18n.Catalog
	roller *dice.Roller

	// built on the first tick, once ebiten is running
	rend   *renderer
	board  *board.Board
	loop   *control.Loop
	input  *inputHandler
	header *headerUI
}

func NewGameLoop(cfg config.Config, lay *layout.Layout, roller *dice.Roller, tr *i18n.Catalog) *GameLoop {
	return &GameLoop{
		cfg:    cfg,
		lay:    lay,
		tr:     tr,
		roller: roller,
		input:  &inputHandler{},
		header: newHeaderUI(tr, cfg.Style.LabelScale),
	}
}

// setup paints the static board, rolls the dice once and lets both players
// paint their reserves.
func (gl *GameLoop) setup() {
	gl.rend = newRenderer(gl.cfg, gl.lay)
	gl.rend.drawBoard()

	roll := gl.roller.Roll()
	gl.rend.drawDice(roll)
	gl.header.draw(gl.rend.background, gl.lay, roll, gl.cfg.Colors.RolledLabel.RGBA, gl.cfg.Colors.RollLabel.RGBA)
	log.Info().Interface("faces", roll).Int("count", roll.Count()).Msg("dice rolled")

	gl.board = board.New(gl.rend.canvas(), gl.lay, gl.cfg)
	gl.loop = control.NewLoop(gl.board, gl.lay)
}

func (gl *GameLoop) Update() error {
	if gl.loop == nil {
		gl.setup()
	}
	for _, ev := range gl.input.poll() {
		gl.loop.Handle(ev)
	}
	if gl.loop.State() == control.Stopped {
		return ebiten.Termination
	}
	return nil
}

func (gl *GameLoop) Draw(screen *ebiten.Image) {
	if gl.rend == nil {
		return
	}
	gl.rend.draw(screen)
}

func (gl *GameLoop) Layout(_, _ int) (int, int) { return gl.cfg.Window.Width, gl.cfg.Window.Height }

// Run blocks until the window is closed or Escape is pressed.
func Run(g *GameLoop) error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.tr.Get(g.cfg.Title))
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	ebiten.SetWindowClosingHandled(true)

	// nothing animates, so only redraw at a low tick rate
	ebiten.SetFPSMode(ebiten.FPSModeVsyncOffMinimum)
	ebiten.SetTPS(g.cfg.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
