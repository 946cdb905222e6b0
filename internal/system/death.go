// internal/system/death.go
package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
)

// DeathSystem turns dead enemies into corpses and removes finished ones.
type DeathSystem struct {
	world  *entity.World
	tuning *config.Tuning
}

func NewDeathSystem(world *entity.World, tuning *config.Tuning) *DeathSystem {
	return &DeathSystem{world: world, tuning: tuning}
}

// Update removes destroyed entities, faded corpses and detonated bombers,
// and converts everything else that died into a corpse. Survivors keep
// their relative order.
func (s *DeathSystem) Update(deltaTime float64) {
	var dead []int
	for i, e := range s.world.Entities {
		if e.Destroy {
			dead = append(dead, i)
			continue
		}
		if e.IsAlive() {
			continue
		}

		switch t := e.EnemyType().(type) {
		case nil:
		case *component.Corpse:
			t.Lifetime.Change(-deltaTime)
			if !t.Lifetime.IsAlive() {
				dead = append(dead, i)
				continue
			}
			e.Color.A = float32(t.Lifetime.HpFrac()) * s.tuning.Combat.CorpseAlpha
		case *component.Attacker:
			if _, bomb := t.Attack.Type.(*component.Bomb); bomb && !t.Attack.AttackTime.IsAlive() {
				dead = append(dead, i)
				continue
			}
			s.toCorpse(e)
		default:
			s.toCorpse(e)
		}
	}
	s.world.Entities = entity.RemoveIndices(s.world.Entities, dead)
}

func (s *DeathSystem) toCorpse(e *entity.Entity) {
	e.SetEnemyType(&component.Corpse{Lifetime: component.NewHealth(s.tuning.Combat.CorpseLifetime)})
	e.Color.A = s.tuning.Combat.CorpseAlpha
}
