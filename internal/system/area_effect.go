// internal/system/area_effect.go
package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/entity"
)

// AreaEffectSystem ages area effects and applies them to the player.
type AreaEffectSystem struct {
	world *entity.World
}

func NewAreaEffectSystem(world *entity.World) *AreaEffectSystem {
	return &AreaEffectSystem{world: world}
}

func (s *AreaEffectSystem) Update(deltaTime float64) {
	player := s.world.Player
	for _, effect := range s.world.AreaEffects {
		effect.Lifetime.Change(-deltaTime)

		if !player.IsAlive() {
			continue
		}
		distance := effect.Position.Sub(player.Body.Position).Len()
		if distance > effect.Radius+player.Body.Collider.Radius {
			continue
		}
		switch e := effect.Effect.(type) {
		case component.Heal:
			player.Health.Change(e.AmountPerSecond * deltaTime)
		}
	}

	kept := s.world.AreaEffects[:0]
	for _, effect := range s.world.AreaEffects {
		if effect.Lifetime.IsAlive() {
			kept = append(kept, effect)
		}
	}
	for i := len(kept); i < len(s.world.AreaEffects); i++ {
		s.world.AreaEffects[i] = nil
	}
	s.world.AreaEffects = kept
}
