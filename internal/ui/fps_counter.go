package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"go-arena-survival/internal/config"
)

// FPSCounter averages frame times and refreshes its reading every
// config.FPSUpdateTime seconds.
type FPSCounter struct {
	X, Y    float64
	elapsed float64
	frames  int
	fps     float64
}

func NewFPSCounter(x, y float64) *FPSCounter {
	return &FPSCounter{X: x, Y: y}
}

func (c *FPSCounter) Update(deltaTime float64) {
	c.elapsed += deltaTime
	c.frames++
	if c.elapsed >= config.FPSUpdateTime {
		c.fps = float64(c.frames) / c.elapsed
		c.elapsed = 0
		c.frames = 0
	}
}

func (c *FPSCounter) FPS() float64 {
	return c.fps
}

func (c *FPSCounter) Draw(screen *ebiten.Image) {
	DrawText(screen, fmt.Sprintf("FPS: %.0f", c.fps), c.X, c.Y, 1, text.AlignEnd, config.TextLightColor)
}
