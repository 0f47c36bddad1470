package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ur_go/internal/control"
)

var buttons = []struct {
	mouse ebiten.MouseButton
	btn   control.Button
}{
	{ebiten.MouseButtonLeft, control.Primary},
	{ebiten.MouseButtonRight, control.Secondary},
	{ebiten.MouseButtonMiddle, control.Other},
}

type inputHandler struct{}

// poll collects this tick's quit request and pointer releases.
func (h *inputHandler) poll() []control.Event {
	var evs []control.Event
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		evs = append(evs, control.Event{Kind: control.Quit})
	}
	for _, b := range buttons {
		if !inpututil.IsMouseButtonJustReleased(b.mouse) {
			continue
		}
		x, y := ebiten.CursorPosition()
		evs = append(evs, control.Event{Kind: control.Release, X: x, Y: y, Button: b.btn})
	}
	return evs
}
