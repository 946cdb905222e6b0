// internal/system/combat.go
package system

import (
	"go-arena-survival/internal/command"
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/pkg/render"
)

// CombatSystem runs attack timers, fires shooters, detonates bombers and
// ages projectiles.
type CombatSystem struct {
	world    *entity.World
	tuning   *config.Tuning
	material component.PhysicsMaterial
}

func NewCombatSystem(world *entity.World, tuning *config.Tuning) *CombatSystem {
	return &CombatSystem{
		world:    world,
		tuning:   tuning,
		material: component.NewPhysicsMaterial(tuning.Physics.Drag, tuning.Physics.Bounciness),
	}
}

// Update ticks every attack. Spawned projectiles, particles and area
// effects go to cmds.
func (s *CombatSystem) Update(deltaTime float64, cmds *command.Buffer) {
	for _, e := range s.world.Entities {
		switch t := e.EnemyType().(type) {
		case *component.Attacker:
			t.Attack.AttackTime.Change(-deltaTime)
			if shoot, ok := t.Attack.Type.(*component.Shoot); ok && e.IsAlive() {
				shoot.TargetPos = s.world.Player.Body.Position
			}
			s.perform(e, &t.Attack, cmds)
		case *component.Projectile:
			t.Lifetime.Change(-deltaTime)
			if !t.Lifetime.IsAlive() {
				e.Health.Kill()
			}
		}
	}
}

func (s *CombatSystem) perform(e *entity.Entity, attack *component.Attack, cmds *command.Buffer) {
	if !e.IsAlive() || attack.AttackTime.IsAlive() {
		return
	}
	switch a := attack.Type.(type) {
	case *component.Shoot:
		s.shoot(e, a, cmds)
		attack.AttackTime.Reset()
	case *component.Bomb:
		s.detonate(e, a, cmds)
	}
}

func (s *CombatSystem) shoot(e *entity.Entity, shoot *component.Shoot, cmds *command.Buffer) {
	direction := shoot.TargetPos.Sub(e.RigidBody.Position).NormalizeOrZero()
	if direction.IsZero() {
		direction = component.DegenerateNormal
	}
	offset := e.RigidBody.Collider.Radius + shoot.Projectile.Size + s.tuning.Combat.ProjectileSpawnSpace
	projectile := entity.NewEnemy(e.RigidBody.Position.Add(direction.Scale(offset)), shoot.Projectile, s.material)
	projectile.RigidBody.Velocity = direction.Scale(shoot.Speed)
	cmds.SpawnEntity(projectile)
}

// detonate kills the bomber. Its expired timer is what makes the death
// check remove it outright instead of leaving a corpse.
func (s *CombatSystem) detonate(e *entity.Entity, bomb *component.Bomb, cmds *command.Buffer) {
	ct := s.tuning.Combat
	player := s.world.Player
	position := e.RigidBody.Position

	e.Health.Kill()
	s.world.Events.PushType(event.SoundExplosion)
	cmds.SpawnParticles(position, ct.ExplosionIntensity, e.Color)

	offset := player.Body.Position.Sub(position)
	if player.IsAlive() && offset.Len() <= bomb.Radius+player.Body.Collider.Radius {
		player.Health.Change(-bomb.Damage)
		direction := offset.NormalizeOrZero()
		if direction.IsZero() {
			direction = component.DegenerateNormal
		}
		player.Body.Velocity = player.Body.Velocity.Add(direction.Scale(ct.ExplosionImpact / player.Body.Mass))
		cmds.SpawnParticles(player.Body.Position, bomb.Damage*ct.PlayerHitIntensity, render.FromRGBA(config.PlayerColor))
		if !player.IsAlive() {
			s.world.Events.PushType(event.SoundDeath)
		}
	}

	if bomb.Leaves != nil {
		cmds.SpawnAreaEffect(bomb.Leaves.Spawn(position))
	}
}
