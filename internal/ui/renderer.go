// internal/ui/renderer.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ur_go/internal/config"
	"ur_go/internal/dice"
	"ur_go/internal/layout"
)

// renderer owns the background image. Everything static is painted once;
// pieces are painted onto the same image by the board through canvas().
type renderer struct {
	cfg        config.Config
	lay        *layout.Layout
	background *ebiten.Image
}

func newRenderer(cfg config.Config, lay *layout.Layout) *renderer {
	r := &renderer{
		cfg:        cfg,
		lay:        lay,
		background: ebiten.NewImage(cfg.Window.Width, cfg.Window.Height),
	}
	r.background.Fill(cfg.Colors.Background.RGBA)
	return r
}

func (r *renderer) canvas() imageCanvas { return imageCanvas{dst: r.background} }

// drawBoard paints the outlined side tiles, the track and the safe tile.
func (r *renderer) drawBoard() {
	for _, t := range r.lay.SideTiles {
		r.strokeTile(t, r.cfg.Colors.Tile.RGBA)
	}
	for _, t := range r.lay.Track {
		r.strokeTile(t, r.cfg.Colors.Tile.RGBA)
	}
	r.strokeTile(r.lay.Safe(), r.cfg.Colors.Safe.RGBA)
}

// strokeTile keeps the border inside the tile the way a thick rect outline
// would be drawn by hand.
func (r *renderer) strokeTile(t layout.Tile, clr color.Color) {
	w := float32(r.cfg.Style.TileBorder)
	rect := t.Rectangle
	vector.StrokeRect(r.background,
		float32(rect.Min.X)+w/2, float32(rect.Min.Y)+w/2,
		float32(rect.Dx())-w, float32(rect.Dy())-w,
		w, clr, false)
}

// drawDice outlines each die and fills its pip with the rolled face.
func (r *renderer) drawDice(roll dice.Roll) {
	w := float32(r.cfg.Style.TriangleBorder)
	for i, d := range r.lay.Dice {
		for k := range d.Vertices {
			a, b := d.Vertices[k], d.Vertices[(k+1)%len(d.Vertices)]
			vector.StrokeLine(r.background, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, r.cfg.Colors.Tile.RGBA, true)
		}
		clr := r.cfg.Colors.PipBlank.RGBA
		if i < len(roll) && roll[i] {
			clr = r.cfg.Colors.PipMarked.RGBA
		}
		fillCircle(r.background, d.Pip, r.cfg.Style.PipRadius, clr)
	}
}

func fillCircle(dst *ebiten.Image, at image.Point, radius int, clr color.Color) {
	imageCanvas{dst: dst}.FillCircle(at, radius, clr)
}

// draw presents the composed background.
func (r *renderer) draw(screen *ebiten.Image) {
	screen.DrawImage(r.background, nil)
}
