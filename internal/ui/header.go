package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"ur_go/internal/dice"
	"ur_go/internal/i18n"
	"ur_go/internal/layout"
)

var face = basicfont.Face7x13

// headerUI draws the two labels next to the dice.
type headerUI struct {
	tr    *i18n.Catalog
	scale int
}

func newHeaderUI(tr *i18n.Catalog, scale int) *headerUI {
	return &headerUI{tr: tr, scale: scale}
}

// draw puts "You rolled a: N" mid-top on lay.RolledLabel and "Roll" above it,
// left aligned with the first label.
func (h *headerUI) draw(dst *ebiten.Image, lay *layout.Layout, roll dice.Roll, rolledClr, rollClr color.Color) {
	rolled := h.tr.Get("You rolled a:") + " " + strconv.Itoa(roll.Count())
	w := text.BoundString(face, rolled).Dx() * h.scale
	left := lay.RolledLabel.X - w/2

	h.label(dst, rolled, image.Pt(left, lay.RolledLabel.Y), rolledClr)
	h.label(dst, h.tr.Get("Roll"), image.Pt(left, lay.RollLabelTop), rollClr)
}

// label draws s scaled up with its top-left corner at topLeft.
func (h *headerUI) label(dst *ebiten.Image, s string, topLeft image.Point, clr color.Color) {
	b := text.BoundString(face, s)
	k := float64(h.scale)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(float64(topLeft.X), float64(topLeft.Y)-float64(b.Min.Y)*k)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, face, op)
}
