// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
)

// PlayerHealthIndicator отображает здоровье игрока полосой.
type PlayerHealthIndicator struct {
	X, Y          float32
	Width, Height float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{
		X:      x,
		Y:      y,
		Width:  config.HealthBarWidth,
		Height: config.HealthBarHeight,
	}
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health component.Health) {
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, config.HealthBarBack, false)
	if frac := float32(health.HpFrac()); frac > 0 {
		vector.DrawFilledRect(screen, i.X, i.Y, i.Width*frac, i.Height, config.HealthBarFill, false)
	}
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, config.ThinStrokeWidth, config.BorderColor, false)

	label := fmt.Sprintf("%.0f/%.0f", health.Current, health.Max)
	DrawText(screen, label, float64(i.X+i.Width/2), float64(i.Y+1), 1, text.AlignCenter, config.TextLightColor)
}
