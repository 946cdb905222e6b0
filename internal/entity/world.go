// internal/entity/world.go
package entity

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/utils"
)

// World owns every piece of simulation state. Systems mutate it during a
// tick; collaborators only read it.
type World struct {
	GameTime    float64
	Bounds      component.Bounds
	Player      *component.Player
	Entities    []*Entity
	Particles   []*component.Particle
	Spawners    []*component.Spawner
	AreaEffects []*component.AreaEffect
	// Waves is the queue of waves not yet released, front first.
	Waves      []component.Wave
	WaveNumber int
	Events     *event.Queue
	Rng        *utils.PRNGService
}

// NewWorld creates an empty arena around player.
func NewWorld(bounds component.Bounds, player *component.Player, rng *utils.PRNGService) *World {
	return &World{
		Bounds:      bounds,
		Player:      player,
		Entities:    make([]*Entity, 0),
		Particles:   make([]*component.Particle, 0),
		Spawners:    make([]*component.Spawner, 0),
		AreaEffects: make([]*component.AreaEffect, 0),
		Events:      event.NewQueue(),
		Rng:         rng,
	}
}

// AliveEnemies counts enemies that still have health.
func (w *World) AliveEnemies() int {
	count := 0
	for _, e := range w.Entities {
		if e.EnemyType() != nil && e.IsAlive() {
			count++
		}
	}
	return count
}
