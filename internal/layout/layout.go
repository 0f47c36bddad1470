// File: internal/layout/layout.go
package layout

import (
	"image"
	"math"

	"ur_go/internal/config"
)

const (
	TrackTiles  = 8 // shared row both players traverse
	SafeTile    = 3 // highlighted track index
	EntryTiles  = 4
	ExitTiles   = 2
	PlayerTiles = EntryTiles + TrackTiles + ExitTiles

	trackRow = 2
)

// board rows/columns (before the left offset) holding the outlined side tiles
var (
	sideRows    = [...]int{1, 3}
	sideColumns = [...]int{0, 1, 2, 3, 6, 7}
)

// Side selects a player. The zero value is the top player, which matches a
// click landing above the track.
type Side bool

const (
	Top    Side = false
	Bottom Side = true
)

func (s Side) String() string {
	if s == Bottom {
		return "bottom"
	}
	return "top"
}

// dir is +1 towards the bottom edge, -1 towards the top edge.
func (s Side) dir() int {
	if s == Bottom {
		return 1
	}
	return -1
}

// Tile is one square of the board in screen pixels.
type Tile struct {
	image.Rectangle
}

func square(x, y, side int) Tile {
	return Tile{image.Rect(x, y, x+side, y+side)}
}

// Center rounds down like integer screen coordinates do.
func (t Tile) Center() image.Point {
	return image.Pt(t.Min.X+t.Dx()/2, t.Min.Y+t.Dy()/2)
}

// Len is the side length.
func (t Tile) Len() int { return t.Dx() }

func (t Tile) shift(dy int) Tile {
	return Tile{t.Add(image.Pt(0, dy))}
}

// Die is an outlined triangle with a pip spot that shows the rolled face.
type Die struct {
	Center   image.Point
	Side     int // half the base width
	Height   int
	Vertices [3]image.Point
	Pip      image.Point
}

func newDie(center image.Point, side int) Die {
	h := int(float64(side) / 2 * math.Sqrt(3))
	return Die{
		Center: center,
		Side:   side,
		Height: h,
		Vertices: [3]image.Point{
			image.Pt(center.X-side, center.Y+h),
			image.Pt(center.X+side, center.Y+h),
			image.Pt(center.X, center.Y-h),
		},
		Pip: image.Pt(center.X, int(float64(center.Y-h)+2*float64(h)/math.Sqrt(3))),
	}
}

// Layout holds every fixed pixel coordinate of the board. It is computed once
// and only read afterwards.
type Layout struct {
	TileLen   int
	Track     [TrackTiles]Tile
	SideTiles []Tile
	Dice      []Die

	// RolledLabel is the mid-top anchor of the "You rolled a:" text.
	RolledLabel image.Point
	// RollLabelTop is the top edge of the "Roll" text.
	RollLabelTop int

	reserveSpacing int
}

// TileLength picks a square tile that fits both axes.
func TileLength(width, height, columns, rows int) int {
	return min(width/columns, height/rows)
}

func New(c config.Config) *Layout {
	l := TileLength(c.Window.Width, c.Window.Height, c.Grid.Columns, c.Grid.Rows)
	off := c.Grid.LeftOffset

	lay := &Layout{
		TileLen:        l,
		reserveSpacing: c.Pieces.ReserveSpacing,
		RolledLabel:    image.Pt((10+off)*l, 3*l),
		RollLabelTop:   l,
	}

	for _, row := range sideRows {
		for _, col := range sideColumns {
			lay.SideTiles = append(lay.SideTiles, square((col+off)*l, row*l, l))
		}
	}
	for i := range lay.Track {
		lay.Track[i] = square((i+off)*l, trackRow*l, l)
	}

	dieSide := 3 * l / 7
	for i := 0; i < c.Grid.Dice; i++ {
		center := image.Pt((9+off)*l+i*l, trackRow*l+l/3)
		lay.Dice = append(lay.Dice, newDie(center, dieSide))
	}
	return lay
}

// Safe returns the highlighted track tile.
func (l *Layout) Safe() Tile { return l.Track[SafeTile] }

// TrackY is the vertical center of the track; clicks below it belong to the
// bottom player.
func (l *Layout) TrackY() int { return l.Track[0].Center().Y }

// SideOf maps a screen y coordinate to a player.
func (l *Layout) SideOf(y int) Side {
	return Side(y > l.TrackY())
}

// PlayerTiles lists the 14 tiles a player's pieces can stand on: the first
// four track tiles slid one tile towards the player's edge, the shared track,
// then the last two track tiles slid the same way.
func (l *Layout) PlayerTiles(s Side) [PlayerTiles]Tile {
	var out [PlayerTiles]Tile
	dy := s.dir() * l.TileLen
	n := 0
	for i := 0; i < EntryTiles; i++ {
		out[n] = l.Track[i].shift(dy)
		n++
	}
	for _, t := range l.Track {
		out[n] = t
		n++
	}
	for i := TrackTiles - ExitTiles; i < TrackTiles; i++ {
		out[n] = l.Track[i].shift(dy)
		n++
	}
	return out
}

// ReserveCenters returns total evenly spaced slots two tiles above (top) or
// below (bottom) the first track tile.
func (l *Layout) ReserveCenters(s Side, total int) []image.Point {
	origin := l.Track[0].Center()
	out := make([]image.Point, total)
	for i := range out {
		out[i] = image.Pt(origin.X+i*l.reserveSpacing, origin.Y+2*l.TileLen*s.dir())
	}
	return out
}
