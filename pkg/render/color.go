package render

import "image/color"

// Color is a linear RGBA color with every channel in [0, 1].
type Color struct {
	R, G, B, A float32
}

// NewColor builds a Color from 0..1 channels.
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromRGBA converts an 8-bit color into a Color.
func FromRGBA(c color.RGBA) Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// ToRGBA converts to a non-premultiplied 8-bit color.
func (c Color) ToRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c Color) Color {
	return Color{R: c.R * 0.5, G: c.G * 0.5, B: c.B * 0.5, A: c.A}
}
