// File internal/board/player.go
package board

import (
	"fmt"
	"image"
	"image/color"

	"ur_go/internal/config"
	"ur_go/internal/layout"
)

// Player is one side's piece bookkeeping. Only the reserve counter moves;
// pieces and finished are carried as state but nothing updates them yet.
type Player struct {
	canvas Canvas
	side   Side
	color  color.Color
	erase  color.Color
	radius int

	tiles          [layout.PlayerTiles]layout.Tile
	pieces         [layout.PlayerTiles]int
	total          int
	reserve        int
	finished       int
	reserveCenters []image.Point
}

// NewPlayer lays out the player's tiles and reserve slots, then fills the
// reserve one piece at a time so every slot gets painted.
func NewPlayer(cv Canvas, lay *layout.Layout, s Side, c config.Config) *Player {
	clr := c.Colors.Top.RGBA
	if s == Bottom {
		clr = c.Colors.Bottom.RGBA
	}
	p := &Player{
		canvas:         cv,
		side:           s,
		color:          clr,
		erase:          c.Colors.Background.RGBA,
		radius:         c.Pieces.Radius,
		tiles:          lay.PlayerTiles(s),
		total:          c.Pieces.PerPlayer,
		reserveCenters: lay.ReserveCenters(s, c.Pieces.PerPlayer),
	}
	for p.AddReserve() == nil {
	}
	return p
}

func (p *Player) Side() Side { return p.side }

func (p *Player) Color() color.Color { return p.color }

func (p *Player) Total() int { return p.total }

func (p *Player) Reserve() int { return p.reserve }

func (p *Player) Finished() int { return p.finished }

// Pieces is the per-tile occupancy, indexed like Tiles.
func (p *Player) Pieces() [layout.PlayerTiles]int { return p.pieces }

func (p *Player) Tiles() [layout.PlayerTiles]layout.Tile { return p.tiles }

func (p *Player) ReserveCenters() []image.Point {
	return append([]image.Point(nil), p.reserveCenters...)
}

// AddReserve paints a piece in the next free reserve slot.
func (p *Player) AddReserve() error {
	if p.reserve >= p.total {
		return ErrReserveFull
	}
	p.draw(p.reserveCenters[p.reserve])
	p.reserve++
	return nil
}

// RemoveReserve clears the last occupied reserve slot.
func (p *Player) RemoveReserve() error {
	if p.reserve <= 0 {
		return ErrReserveEmpty
	}
	p.reserve--
	p.wipe(p.reserveCenters[p.reserve])
	return nil
}

// PlaceOnTrack takes a piece out of the reserve and paints it on tile index.
// The tile is not checked for an existing piece.
func (p *Player) PlaceOnTrack(index int) error {
	if err := p.checkTile(index); err != nil {
		return err
	}
	if err := p.RemoveReserve(); err != nil {
		return err
	}
	p.draw(p.tiles[index].Center())
	return nil
}

// ReturnToReserve puts a piece back into the reserve and clears tile index.
func (p *Player) ReturnToReserve(index int) error {
	if err := p.checkTile(index); err != nil {
		return err
	}
	if err := p.AddReserve(); err != nil {
		return err
	}
	p.wipe(p.tiles[index].Center())
	return nil
}

func (p *Player) checkTile(index int) error {
	if index < 0 || index >= len(p.tiles) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrTileOutOfRange, index, len(p.tiles))
	}
	return nil
}

func (p *Player) draw(at image.Point) { p.canvas.FillCircle(at, p.radius, p.color) }
func (p *Player) wipe(at image.Point) { p.canvas.FillCircle(at, p.radius, p.erase) }
