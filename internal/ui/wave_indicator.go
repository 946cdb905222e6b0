package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"go-arena-survival/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         float64
	Scale        float64
	Color        color.Color
	OutlineColor color.Color
}

func NewWaveIndicator(x, y, scale float64) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Scale:        scale,
		Color:        config.WaveTextColor,
		OutlineColor: color.White,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw centers the wave number horizontally on X. Every tenth wave is red.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = color.RGBA{230, 40, 40, 255}
	}
	DrawOutlinedText(screen, toRoman(waveNumber), i.X, i.Y, i.Scale, text.AlignCenter, textColor, i.OutlineColor)
}
