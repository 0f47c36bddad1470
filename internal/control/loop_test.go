package control

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"ur_go/internal/board"
	"ur_go/internal/config"
	"ur_go/internal/layout"
)

type canvas struct{}

func (canvas) FillCircle(image.Point, int, color.Color) {}

func setup(t *testing.T) (*Loop, *board.Board, *layout.Layout) {
	t.Helper()
	c := config.Default()
	lay := layout.New(c)
	b := board.New(canvas{}, lay, c)
	return NewLoop(b, lay), b, lay
}

func TestResolve(t *testing.T) {
	lay := layout.New(config.Default())
	y := lay.TrackY()

	require.Equal(t, Command{layout.Top, AddReserve}, Resolve(lay, y-1, Primary))
	require.Equal(t, Command{layout.Top, AddReserve}, Resolve(lay, y, Primary))
	require.Equal(t, Command{layout.Bottom, AddReserve}, Resolve(lay, y+1, Primary))
	require.Equal(t, Command{layout.Bottom, RemoveReserve}, Resolve(lay, 900, Secondary))
	require.Equal(t, Command{layout.Top, RemoveReserve}, Resolve(lay, 10, Secondary))
	require.Equal(t, Command{layout.Top, NoOp}, Resolve(lay, 10, Other))
}

func TestLoopClicks(t *testing.T) {
	l, b, lay := setup(t)
	below := lay.TrackY() + 100
	above := lay.TrackY() - 100

	require.Equal(t, Running, l.State())

	// right clicks below the track drain the bottom reserve only
	for i := 0; i < 9; i++ {
		cmd := l.Handle(Event{Kind: Release, Y: below, Button: Secondary})
		require.Equal(t, Command{layout.Bottom, RemoveReserve}, cmd)
	}
	require.Equal(t, 0, b.Player(board.Bottom).Reserve())
	require.Equal(t, 7, b.Player(board.Top).Reserve())

	l.Handle(Event{Kind: Release, Y: below, Button: Primary})
	require.Equal(t, 1, b.Player(board.Bottom).Reserve())

	l.Handle(Event{Kind: Release, Y: above, Button: Secondary})
	require.Equal(t, 6, b.Player(board.Top).Reserve())

	// middle button does nothing
	l.Handle(Event{Kind: Release, Y: above, Button: Other})
	require.Equal(t, 6, b.Player(board.Top).Reserve())
	require.Equal(t, 1, b.Player(board.Bottom).Reserve())
}

func TestLoopQuit(t *testing.T) {
	l, b, lay := setup(t)

	l.Handle(Event{Kind: Quit})
	require.Equal(t, Stopped, l.State())
	require.Equal(t, "stopped", l.State().String())

	cmd := l.Handle(Event{Kind: Release, Y: lay.TrackY() + 1, Button: Secondary})
	require.Equal(t, Command{}, cmd)
	require.Equal(t, 7, b.Player(board.Bottom).Reserve())
	require.Equal(t, Stopped, l.State())
}

func TestActionString(t *testing.T) {
	require.Equal(t, "add-reserve", AddReserve.String())
	require.Equal(t, "remove-reserve", RemoveReserve.String())
	require.Equal(t, "noop", NoOp.String())
	require.Equal(t, "running", Running.String())
}
