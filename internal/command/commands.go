package command

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/entity"
	"go-arena-survival/pkg/render"
	"go-arena-survival/pkg/utils"
)

// ParticleBurst asks for a burst of hit particles.
type ParticleBurst struct {
	Position  utils.Vec2
	Intensity float64
	Color     render.Color
}

// Buffer collects mutations requested while the world is being iterated.
// It belongs to a single fixed tick and is performed once after the pass
// that filled it.
type Buffer struct {
	Particles   []ParticleBurst
	Entities    []*entity.Entity
	AreaEffects []*component.AreaEffect
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// SpawnParticles defers a particle burst.
func (b *Buffer) SpawnParticles(position utils.Vec2, intensity float64, color render.Color) {
	b.Particles = append(b.Particles, ParticleBurst{Position: position, Intensity: intensity, Color: color})
}

// SpawnEntity defers adding e to the entity list.
func (b *Buffer) SpawnEntity(e *entity.Entity) {
	b.Entities = append(b.Entities, e)
}

// SpawnAreaEffect defers adding an area effect.
func (b *Buffer) SpawnAreaEffect(effect *component.AreaEffect) {
	b.AreaEffects = append(b.AreaEffects, effect)
}

func (b *Buffer) IsEmpty() bool {
	return len(b.Particles) == 0 && len(b.Entities) == 0 && len(b.AreaEffects) == 0
}
