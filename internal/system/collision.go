// internal/system/collision.go
package system

import (
	"go-arena-survival/internal/command"
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/pkg/render"
)

// CollisionSystem resolves wall bounces and player contacts.
type CollisionSystem struct {
	world  *entity.World
	tuning *config.Tuning
}

func NewCollisionSystem(world *entity.World, tuning *config.Tuning) *CollisionSystem {
	return &CollisionSystem{world: world, tuning: tuning}
}

func (s *CollisionSystem) Update(cmds *command.Buffer) {
	s.bounds()
	s.bodyHits(cmds)
	s.headHits(cmds)
}

// bounds keeps everything inside the arena. Projectiles die on the wall.
func (s *CollisionSystem) bounds() {
	player := s.world.Player
	if player.Body.BounceBounds(s.world.Bounds) {
		s.world.Events.PushType(event.SoundBounce)
	}
	player.Head.BounceBounds(s.world.Bounds)

	for _, e := range s.world.Entities {
		if !e.RigidBody.BounceBounds(s.world.Bounds) {
			continue
		}
		if projectile, ok := e.EnemyType().(*component.Projectile); ok {
			projectile.Lifetime.Kill()
		}
		s.world.Events.PushType(event.SoundBounce)
	}
}

// bodyHits hurts both the player and every living enemy touching the body.
func (s *CollisionSystem) bodyHits(cmds *command.Buffer) {
	ct := s.tuning.Combat
	player := s.world.Player
	playerColor := render.FromRGBA(config.PlayerColor)

	for _, e := range s.world.Entities {
		if !e.IsAlive() {
			continue
		}
		hit, ok := e.RigidBody.Collide(&player.Body, &ct.BodyImpact, &ct.BodyHitSpeed)
		if !ok {
			continue
		}

		wasAlive := player.IsAlive()
		player.Health.Change(-hit.HitStrength)
		cmds.SpawnParticles(hit.Contact, hit.HitStrength*ct.PlayerHitIntensity, playerColor)

		e.Health.Change(-hit.HitStrength)
		cmds.SpawnParticles(hit.Contact, hit.HitStrength, e.Color)

		s.world.Events.PushType(event.SoundBodyHit)
		if wasAlive && !player.IsAlive() {
			s.world.Events.PushType(event.SoundDeath)
		}
	}
}

// headHits lets the swinging head damage living enemies.
func (s *CollisionSystem) headHits(cmds *command.Buffer) {
	player := s.world.Player
	for _, e := range s.world.Entities {
		if !e.IsAlive() {
			continue
		}
		hit, ok := e.RigidBody.Collide(&player.Head, nil, nil)
		if !ok {
			continue
		}
		e.Health.Change(-hit.HitStrength)
		cmds.SpawnParticles(hit.Contact, hit.HitStrength, e.Color)
		s.world.Events.PushType(event.SoundHeadHit)
	}
}
