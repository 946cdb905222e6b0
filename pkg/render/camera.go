package render

import "go-arena-survival/pkg/utils"

// Camera maps world units to screen pixels. The center of the world
// rectangle sits in the middle of the screen.
type Camera struct {
	Scale       float64
	WorldCenter utils.Vec2
	ScreenSize  utils.Vec2
}

func NewCamera(worldMin, worldMax utils.Vec2, screenWidth, screenHeight int, scale float64) Camera {
	return Camera{
		Scale:       scale,
		WorldCenter: worldMin.Add(worldMax).Scale(0.5),
		ScreenSize:  utils.V(float64(screenWidth), float64(screenHeight)),
	}
}

// ToScreen converts a world point to pixel coordinates.
func (c Camera) ToScreen(p utils.Vec2) (float32, float32) {
	s := p.Sub(c.WorldCenter).Scale(c.Scale).Add(c.ScreenSize.Scale(0.5))
	return float32(s.X), float32(s.Y)
}

// ToWorld converts pixel coordinates back to a world point.
func (c Camera) ToWorld(x, y int) utils.Vec2 {
	screen := utils.V(float64(x), float64(y)).Sub(c.ScreenSize.Scale(0.5))
	return screen.Scale(1 / c.Scale).Add(c.WorldCenter)
}

// Length converts a world distance to pixels.
func (c Camera) Length(d float64) float32 {
	return float32(d * c.Scale)
}
