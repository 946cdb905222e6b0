package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/pkg/utils"
)

func newTestModel(t *testing.T, waves []component.Wave) *Model {
	t.Helper()
	return NewModel(config.DefaultTuning(), waves, 1)
}

func addEnemy(m *Model, id string, position utils.Vec2) *entity.Entity {
	info, err := defs.Enemy(id)
	if err != nil {
		panic(err)
	}
	material := component.NewPhysicsMaterial(m.Tuning.Physics.Drag, m.Tuning.Physics.Bounciness)
	e := entity.NewEnemy(position, info, material)
	m.World.Entities = append(m.World.Entities, e)
	return e
}

func TestNewModelCentersPlayer(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Equal(t, utils.V(0, 0), m.Player().Body.Position)
	assert.InDelta(t, m.Tuning.Player.ChainLength, m.Player().Head.Position.Len(), 1e-9)
	assert.Equal(t, m.Tuning.Player.MaxHealth, m.Player().Health.Current)
	assert.Equal(t, m.Tuning.Arena.Min, m.Bounds().Min)
	assert.False(t, m.IsOver())
}

func TestMoveDirectionIsClamped(t *testing.T) {
	m := newTestModel(t, nil)

	m.MoveDirection(utils.V(3, 4))
	assert.InDelta(t, m.Tuning.Player.Speed, m.Player().TargetBodyVelocity.Len(), 1e-9)

	m.MoveDirection(utils.V(0.5, 0))
	assert.InDelta(t, m.Tuning.Player.Speed/2, m.Player().TargetBodyVelocity.X, 1e-9)
}

func TestHeadTarget(t *testing.T) {
	m := newTestModel(t, nil)
	m.HeadTarget(utils.V(5, -5))
	assert.Equal(t, utils.V(5, -5), m.Player().HeadTarget)
}

func TestUpdateStartsFirstWave(t *testing.T) {
	m := newTestModel(t, defs.DefaultWaves())

	m.Update(0.01)

	assert.Equal(t, 1, m.WaveNumber())
	assert.Len(t, m.World.Spawners, len(defs.DefaultWaves()[0].Groups))
	events := m.Events()
	require.Len(t, events, 1)
	assert.Equal(t, event.WaveStarted, events[0].Type)
	assert.Empty(t, m.Events())
}

func TestUpdateWaitsForClearArena(t *testing.T) {
	m := newTestModel(t, defs.DefaultWaves())
	addEnemy(m, defs.EnemyCrawler, utils.V(40, 30))

	m.Update(0.01)

	assert.Zero(t, m.WaveNumber())
}

func TestDeadPlayerGetsNoWaves(t *testing.T) {
	m := newTestModel(t, defs.DefaultWaves())
	m.Player().Health.Kill()

	m.Update(0.01)

	assert.True(t, m.IsOver())
	assert.Zero(t, m.WaveNumber())
}

func TestSpawnersTurnIntoEnemies(t *testing.T) {
	m := newTestModel(t, defs.DefaultWaves())
	m.Update(0.01)
	groups := defs.DefaultWaves()[0].Groups

	m.Update(m.Tuning.Waves.SpawnerTime)

	assert.Empty(t, m.World.Spawners)
	assert.Len(t, m.World.Entities, len(groups[0].Enemies))
}

func TestProjectileJoinsWorldAfterFixedUpdate(t *testing.T) {
	m := newTestModel(t, nil)
	shooter := addEnemy(m, defs.EnemyShooter, utils.V(40, 0))
	shooter.EnemyType().(*component.Attacker).Attack.AttackTime.Current = 0.001

	m.FixedUpdate(config.FixedDelta)

	require.Len(t, m.World.Entities, 2)
	assert.IsType(t, &component.Projectile{}, m.World.Entities[1].EnemyType())
	assert.Less(t, m.World.Entities[1].RigidBody.Velocity.X, 0.0)
}

func TestBomberIsRemovedInTheSameTick(t *testing.T) {
	m := newTestModel(t, nil)
	medic := addEnemy(m, defs.EnemyMedic, utils.V(-6, 0))
	medic.EnemyType().(*component.Attacker).Attack.AttackTime.Current = 0.001

	m.FixedUpdate(config.FixedDelta)

	assert.Empty(t, m.World.Entities)
	require.Len(t, m.World.AreaEffects, 1)
	assert.NotEmpty(t, m.World.Particles)
	assert.Less(t, m.Player().Health.Current, m.Tuning.Player.MaxHealth)

	var explosions int
	for _, e := range m.Events() {
		if e.Type == event.SoundExplosion {
			explosions++
		}
	}
	assert.Equal(t, 1, explosions)
}

func TestKilledEnemyFadesAndIsRemoved(t *testing.T) {
	m := newTestModel(t, nil)
	crawler := addEnemy(m, defs.EnemyCrawler, utils.V(40, 30))
	crawler.Health.Kill()

	m.FixedUpdate(config.FixedDelta)
	require.Len(t, m.World.Entities, 1)
	assert.IsType(t, &component.Corpse{}, crawler.EnemyType())

	steps := int(m.Tuning.Combat.CorpseLifetime/config.FixedDelta) + 2
	for i := 0; i < steps; i++ {
		m.FixedUpdate(config.FixedDelta)
	}
	assert.Empty(t, m.World.Entities)
}

func TestSameSeedSameGame(t *testing.T) {
	run := func() *Model {
		m := NewModel(config.DefaultTuning(), defs.DefaultWaves(), 99)
		m.MoveDirection(utils.V(1, 0.3))
		m.HeadTarget(utils.V(-20, 10))
		for i := 0; i < 400; i++ {
			m.Update(config.FixedDelta)
			m.FixedUpdate(config.FixedDelta)
		}
		return m
	}

	a, b := run(), run()

	assert.Equal(t, a.Player().Body.Position, b.Player().Body.Position)
	assert.Equal(t, a.Player().Health, b.Player().Health)
	require.Equal(t, len(a.World.Entities), len(b.World.Entities))
	for i := range a.World.Entities {
		assert.Equal(t, a.World.Entities[i].RigidBody.Position, b.World.Entities[i].RigidBody.Position)
	}
	assert.Equal(t, len(a.World.Particles), len(b.World.Particles))
}
