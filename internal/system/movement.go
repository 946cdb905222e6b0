// internal/system/movement.go
package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/pkg/utils"
)

// MovementSystem integrates the player and enemies and applies steering.
type MovementSystem struct {
	world  *entity.World
	tuning *config.Tuning
}

func NewMovementSystem(world *entity.World, tuning *config.Tuning) *MovementSystem {
	return &MovementSystem{world: world, tuning: tuning}
}

// MovePlayer moves body and head, steers them while the player is alive and
// keeps the head exactly one chain length from the body.
func (s *MovementSystem) MovePlayer(deltaTime float64) {
	p := s.world.Player
	pt := s.tuning.Player

	p.Body.Movement(deltaTime)
	p.Head.Movement(deltaTime)

	if p.IsAlive() {
		direction := p.Head.Position.Sub(p.Body.Position)
		target := p.HeadTarget.Sub(p.Body.Position)
		angle := utils.Abs(direction.AngleBetween(target))
		speed := min(angle, pt.HeadSwingAngle) / pt.HeadSwingAngle
		perp := direction.Perp().NormalizeOrZero()
		sign := utils.Sign(perp.Dot(target))
		p.TargetHeadVelocity = perp.Scale(sign * speed * pt.HeadSpeed).Add(p.Body.Velocity)

		p.Body.Velocity = p.Body.Velocity.Add(
			p.TargetBodyVelocity.Sub(p.Body.Velocity).Scale(pt.BodyAcceleration * deltaTime))
		p.Head.Velocity = p.Head.Velocity.Add(
			p.TargetHeadVelocity.Sub(p.Head.Velocity).Scale(pt.HeadAcceleration * deltaTime))
	} else {
		p.Body.Drag(deltaTime)
		p.Head.Drag(deltaTime)
	}

	offset := p.Head.Position.Sub(p.Body.Position)
	p.Head.Position = p.Head.Position.Sub(offset.NormalizeOrZero().Scale(offset.Len() - p.ChainLength))
}

// MoveEnemies integrates every entity, slows the ones above their cruise
// speed and steers living walkers towards the player body.
func (s *MovementSystem) MoveEnemies(deltaTime float64) {
	playerPos := s.world.Player.Body.Position
	for _, e := range s.world.Entities {
		e.RigidBody.Movement(deltaTime)
		if e.RigidBody.Velocity.Len() > e.MovementSpeed {
			e.RigidBody.Drag(deltaTime)
		}
		if !e.IsAlive() {
			continue
		}
		switch e.EnemyType().(type) {
		case *component.Crawler, *component.Attacker:
			target := playerPos.Sub(e.RigidBody.Position).NormalizeOrZero().Scale(e.MovementSpeed)
			e.RigidBody.Velocity = e.RigidBody.Velocity.Add(target.Sub(e.RigidBody.Velocity).Scale(deltaTime))
		}
	}
}
