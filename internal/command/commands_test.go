package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/entity"
	"go-arena-survival/pkg/render"
	"go-arena-survival/pkg/utils"
)

func TestBufferCollectsInOrder(t *testing.T) {
	b := NewBuffer()
	assert.True(t, b.IsEmpty())

	b.SpawnParticles(utils.V(1, 2), 30, render.Color{A: 1})
	b.SpawnParticles(utils.V(3, 4), 10, render.Color{A: 1})
	e := &entity.Entity{}
	b.SpawnEntity(e)
	b.SpawnAreaEffect(&component.AreaEffect{Radius: 2})

	assert.False(t, b.IsEmpty())
	assert.Len(t, b.Particles, 2)
	assert.Equal(t, utils.V(3, 4), b.Particles[1].Position)
	assert.Same(t, e, b.Entities[0])
	assert.Equal(t, 2.0, b.AreaEffects[0].Radius)
}
