// internal/app/model.go
package app

import (
	"go-arena-survival/internal/command"
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/system"
	"go-arena-survival/internal/utils"
	vec "go-arena-survival/pkg/utils"
)

// Model is the arena simulation. The frame loop drives it through four
// entry points: MoveDirection, HeadTarget, Update and FixedUpdate.
type Model struct {
	World  *entity.World
	Tuning *config.Tuning

	CombatSystem     *system.CombatSystem
	AreaEffectSystem *system.AreaEffectSystem
	MovementSystem   *system.MovementSystem
	CollisionSystem  *system.CollisionSystem
	DeathSystem      *system.DeathSystem
	WaveSystem       *system.WaveSystem
	ParticleSystem   *system.ParticleSystem
}

// NewModel builds a fresh arena with the player at its center. A zero seed
// picks one from the clock.
func NewModel(tuning *config.Tuning, waves []component.Wave, seed int64) *Model {
	if tuning == nil {
		panic("tuning cannot be nil")
	}

	material := component.NewPhysicsMaterial(tuning.Physics.Drag, tuning.Physics.Bounciness)
	bounds := component.Bounds{Min: tuning.Arena.Min, Max: tuning.Arena.Max}
	center := bounds.Min.Add(bounds.Max).Scale(0.5)

	pt := tuning.Player
	body := component.NewRigidBody(center, pt.BodyMass, component.Collider{Radius: pt.BodyRadius}, material)
	head := component.NewRigidBody(center, pt.HeadMass, component.Collider{Radius: pt.HeadRadius}, material)
	player := component.NewPlayer(body, head, pt.ChainLength, pt.MaxHealth)

	world := entity.NewWorld(bounds, player, utils.NewPRNGService(seed))
	return &Model{
		World:            world,
		Tuning:           tuning,
		CombatSystem:     system.NewCombatSystem(world, tuning),
		AreaEffectSystem: system.NewAreaEffectSystem(world),
		MovementSystem:   system.NewMovementSystem(world, tuning),
		CollisionSystem:  system.NewCollisionSystem(world, tuning),
		DeathSystem:      system.NewDeathSystem(world, tuning),
		WaveSystem:       system.NewWaveSystem(world, tuning, waves),
		ParticleSystem:   system.NewParticleSystem(world, tuning),
	}
}

// MoveDirection sets the desired body velocity. Inputs longer than 1 are
// clamped so diagonals are not faster.
func (m *Model) MoveDirection(direction vec.Vec2) {
	m.World.Player.TargetBodyVelocity = direction.ClampLen(1).Scale(m.Tuning.Player.Speed)
}

// HeadTarget sets the world point the head swings towards.
func (m *Model) HeadTarget(target vec.Vec2) {
	m.World.Player.HeadTarget = target
}

// Update runs once per rendered frame: wave scheduling, spawners and
// particles.
func (m *Model) Update(deltaTime float64) {
	m.World.GameTime += deltaTime
	m.WaveSystem.Update(deltaTime)
	m.ParticleSystem.Update(deltaTime)
}

// FixedUpdate advances the deterministic part of the simulation by one
// step. Spawns requested during the step are applied at its end.
func (m *Model) FixedUpdate(deltaTime float64) {
	cmds := command.NewBuffer()

	m.CombatSystem.Update(deltaTime, cmds)
	m.AreaEffectSystem.Update(deltaTime)
	m.MovementSystem.MovePlayer(deltaTime)
	m.MovementSystem.MoveEnemies(deltaTime)
	m.CollisionSystem.Update(cmds)
	m.DeathSystem.Update(deltaTime)

	m.performCommands(cmds)
}

func (m *Model) performCommands(cmds *command.Buffer) {
	m.ParticleSystem.Perform(cmds.Particles)
	m.World.Entities = append(m.World.Entities, cmds.Entities...)
	m.World.AreaEffects = append(m.World.AreaEffects, cmds.AreaEffects...)
}

// Events drains the sound and wave notifications produced since the last
// call, oldest first.
func (m *Model) Events() []event.Event {
	return m.World.Events.Drain()
}

func (m *Model) Player() *component.Player {
	return m.World.Player
}

func (m *Model) Bounds() component.Bounds {
	return m.World.Bounds
}

func (m *Model) WaveNumber() int {
	return m.World.WaveNumber
}

// IsOver reports whether the player has died.
func (m *Model) IsOver() bool {
	return !m.World.Player.IsAlive()
}
