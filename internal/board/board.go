// File internal/board/board.go
package board

import (
	"errors"
	"image"
	"image/color"

	"ur_go/internal/config"
	"ur_go/internal/layout"
)

type Side = layout.Side

const (
	Top    = layout.Top
	Bottom = layout.Bottom
)

var (
	ErrReserveFull    = errors.New("reserve full")
	ErrReserveEmpty   = errors.New("reserve empty")
	ErrTileOutOfRange = errors.New("tile index out of range")
)

// Canvas is the surface pieces are painted on. Erasing a piece is painting
// it again in the background colour.
type Canvas interface {
	FillCircle(center image.Point, radius int, c color.Color)
}

// Board owns one player per side and routes every call by side.
type Board struct {
	top    *Player
	bottom *Player
}

// New builds both players; each one paints its full reserve on cv.
func New(cv Canvas, lay *layout.Layout, c config.Config) *Board {
	return &Board{
		top:    NewPlayer(cv, lay, Top, c),
		bottom: NewPlayer(cv, lay, Bottom, c),
	}
}

func (b *Board) Player(s Side) *Player {
	if s == Bottom {
		return b.bottom
	}
	return b.top
}

func (b *Board) AddReserve(s Side) error { return b.Player(s).AddReserve() }

func (b *Board) RemoveReserve(s Side) error { return b.Player(s).RemoveReserve() }
