// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// WorldScale is the number of screen pixels per world unit.
	WorldScale = 7.5

	FixedDelta            = 1.0 / 60.0
	MaxFixedStepsPerFrame = 8
	MaxDeltaTime          = 0.1

	StrokeWidth     = 2.0
	ThinStrokeWidth = 1.0

	HUDMargin       = 16
	HealthBarWidth  = 220
	HealthBarHeight = 14
	FPSUpdateTime   = 0.5
)

var (
	BackgroundColor   = color.RGBA{16, 16, 24, 255}
	BorderColor       = color.RGBA{200, 200, 200, 255}
	PlayerColor       = color.RGBA{240, 240, 240, 255}
	PlayerLifeColor   = color.RGBA{220, 60, 60, 255}
	PlayerBorderColor = color.RGBA{90, 90, 110, 160}
	SpawnerColor      = color.RGBA{180, 50, 230, 255}
	HealColor         = color.RGBA{0, 255, 0, 128}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 140}
	HealthBarBack     = color.RGBA{60, 20, 20, 220}
	HealthBarFill     = color.RGBA{220, 60, 60, 255}
	WaveTextColor     = color.RGBA{70, 130, 180, 255}
)
