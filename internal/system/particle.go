// internal/system/particle.go
package system

import (
	"math"

	"go-arena-survival/internal/command"
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/pkg/render"
	"go-arena-survival/pkg/utils"
)

// ParticleSystem spawns and ages cosmetic hit particles.
type ParticleSystem struct {
	world    *entity.World
	tuning   *config.Tuning
	material component.PhysicsMaterial
}

func NewParticleSystem(world *entity.World, tuning *config.Tuning) *ParticleSystem {
	return &ParticleSystem{
		world:    world,
		tuning:   tuning,
		material: component.NewPhysicsMaterial(tuning.Physics.Drag, tuning.Physics.Bounciness),
	}
}

// ParticleCount is the upper bound of a burst: intensity/10 floored,
// capped at the tuning maximum and never below 1.
func (s *ParticleSystem) ParticleCount(intensity float64) int {
	count := int(math.Floor(intensity / 10))
	if count > s.tuning.Particles.MaxCount {
		count = s.tuning.Particles.MaxCount
	}
	if count < 1 {
		count = 1
	}
	return count
}

// SpawnHit emits between 1 and ParticleCount(intensity) particles flying
// out of position in random directions.
func (s *ParticleSystem) SpawnHit(position utils.Vec2, intensity float64, color render.Color) {
	pt := s.tuning.Particles
	count := 1 + s.world.Rng.Intn(s.ParticleCount(intensity))
	for i := 0; i < count; i++ {
		body := component.NewRigidBody(position, pt.Mass, component.Collider{Radius: pt.Radius}, s.material)
		body.Velocity = s.world.Rng.Direction().Scale(s.world.Rng.Range(pt.MinSpeed, pt.MaxSpeed))
		s.world.Particles = append(s.world.Particles, &component.Particle{
			RigidBody: body,
			Color:     color,
			Lifetime:  component.NewHealth(pt.Lifetime),
		})
	}
}

// Perform spawns every deferred burst of a command buffer.
func (s *ParticleSystem) Perform(bursts []command.ParticleBurst) {
	for _, b := range bursts {
		s.SpawnHit(b.Position, b.Intensity, b.Color)
	}
}

// Update moves, bounces, slows, ages and fades particles, then drops the
// expired ones.
func (s *ParticleSystem) Update(deltaTime float64) {
	alpha := s.tuning.Particles.Alpha
	for _, p := range s.world.Particles {
		p.RigidBody.Movement(deltaTime)
		p.RigidBody.BounceBounds(s.world.Bounds)
		p.RigidBody.Drag(deltaTime)
		p.Lifetime.Change(-deltaTime)
		p.Color.A = float32(p.Lifetime.HpFrac()) * alpha
	}

	alive := s.world.Particles[:0]
	for _, p := range s.world.Particles {
		if p.Lifetime.IsAlive() {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(s.world.Particles); i++ {
		s.world.Particles[i] = nil
	}
	s.world.Particles = alive
}
