// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face is the HUD font.
var Face = text.NewGoXFace(basicfont.Face7x13)

// DrawText draws str with its anchor at (x, y). align positions the anchor
// horizontally; scale enlarges the bitmap font.
func DrawText(screen *ebiten.Image, str string, x, y, scale float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = align
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, Face, op)
}

// DrawOutlinedText draws str with a one pixel outline around it.
func DrawOutlinedText(screen *ebiten.Image, str string, x, y, scale float64, align text.Align, clr, outline color.Color) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawText(screen, str, x+float64(dx), y+float64(dy), scale, align, outline)
		}
	}
	DrawText(screen, str, x, y, scale, align, clr)
}
