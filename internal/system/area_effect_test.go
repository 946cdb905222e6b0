package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-arena-survival/internal/component"
	"go-arena-survival/pkg/utils"
)

func healAt(position utils.Vec2, lifetime float64) *component.AreaEffect {
	info := component.AreaEffectInfo{Radius: 1, Lifetime: lifetime, Effect: component.Heal{AmountPerSecond: 10}}
	return info.Spawn(position)
}

func TestHealInsideRadius(t *testing.T) {
	world, _ := newTestWorld()
	world.Player.Health.Current = 50
	world.AreaEffects = append(world.AreaEffects, healAt(utils.V(3, 0), 1))

	NewAreaEffectSystem(world).Update(0.5)

	assert.InDelta(t, 55, world.Player.Health.Current, 1e-9)
	assert.Len(t, world.AreaEffects, 1)
}

func TestHealOutsideRadius(t *testing.T) {
	world, _ := newTestWorld()
	world.Player.Health.Current = 50
	world.AreaEffects = append(world.AreaEffects, healAt(utils.V(10, 0), 1))

	NewAreaEffectSystem(world).Update(0.5)

	assert.Equal(t, 50.0, world.Player.Health.Current)
}

func TestHealSkipsDeadPlayer(t *testing.T) {
	world, _ := newTestWorld()
	world.Player.Health.Kill()
	world.AreaEffects = append(world.AreaEffects, healAt(utils.V(0, 0), 1))

	NewAreaEffectSystem(world).Update(0.5)

	assert.False(t, world.Player.IsAlive())
}

func TestExpiredAreaEffectsArePruned(t *testing.T) {
	world, _ := newTestWorld()
	keep := healAt(utils.V(50, 0), 2)
	world.AreaEffects = append(world.AreaEffects, healAt(utils.V(40, 0), 0.5), keep)

	NewAreaEffectSystem(world).Update(0.5)

	assert.Equal(t, []*component.AreaEffect{keep}, world.AreaEffects)
}
