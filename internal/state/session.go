package state

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/event"
)

// Session is what survives a restart: the loaded configuration and the
// sound output.
type Session struct {
	Tuning *config.Tuning
	Waves  []component.Wave
	// Seed of zero draws a fresh seed for every game.
	Seed int64
	// Sound receives every sound event; nil plays nothing.
	Sound event.Listener
}
