// File internal/ui/canvas.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageCanvas paints pieces straight onto an offscreen ebiten image, so a
// piece stays until something is painted over it.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) FillCircle(at image.Point, radius int, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(at.X), float32(at.Y), float32(radius), clr, true)
}
