package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-arena-survival/pkg/utils"
)

func TestChainLengthIsKept(t *testing.T) {
	world, tuning := newTestWorld()
	s := NewMovementSystem(world, tuning)
	p := world.Player
	p.Head.Position = utils.V(25, -7)
	p.TargetBodyVelocity = utils.V(30, 10)
	p.HeadTarget = utils.V(-20, 20)

	for i := 0; i < 120; i++ {
		s.MovePlayer(1.0 / 60)
		dist := p.Head.Position.Sub(p.Body.Position).Len()
		assert.InDelta(t, p.ChainLength, dist, 1e-9)
	}
}

func TestBodyAcceleratesTowardTarget(t *testing.T) {
	world, tuning := newTestWorld()
	s := NewMovementSystem(world, tuning)
	world.Player.TargetBodyVelocity = utils.V(40, 0)

	s.MovePlayer(0.1)

	assert.InDelta(t, 40*tuning.Player.BodyAcceleration*0.1, world.Player.Body.Velocity.X, 1e-9)
	assert.InDelta(t, 0, world.Player.Body.Velocity.Y, 1e-9)
}

func TestHeadSwingsTowardTarget(t *testing.T) {
	world, tuning := newTestWorld()
	s := NewMovementSystem(world, tuning)
	world.Player.HeadTarget = utils.V(0, 10)

	s.MovePlayer(0.01)

	assert.InDelta(t, 0, world.Player.TargetHeadVelocity.X, 1e-9)
	assert.InDelta(t, tuning.Player.HeadSpeed, world.Player.TargetHeadVelocity.Y, 1e-9)
	assert.Greater(t, world.Player.Head.Velocity.Y, 0.0)
}

func TestHeadRestsWhenAimed(t *testing.T) {
	world, tuning := newTestWorld()
	s := NewMovementSystem(world, tuning)
	world.Player.HeadTarget = utils.V(30, 0)

	s.MovePlayer(0.01)

	assert.True(t, world.Player.TargetHeadVelocity.IsZero())
}

func TestDeadPlayerDoesNotSteer(t *testing.T) {
	world, tuning := newTestWorld()
	s := NewMovementSystem(world, tuning)
	world.Player.Health.Kill()
	world.Player.TargetBodyVelocity = utils.V(40, 0)

	s.MovePlayer(0.1)

	assert.True(t, world.Player.Body.Velocity.IsZero())
}

func TestEnemySteersTowardPlayer(t *testing.T) {
	world, tuning := newTestWorld()
	s := NewMovementSystem(world, tuning)
	e := spawnEnemy(world, tuning, utils.V(20, 0), crawlerInfo())

	s.MoveEnemies(0.1)

	assert.InDelta(t, -e.MovementSpeed*0.1, e.RigidBody.Velocity.X, 1e-9)
	assert.InDelta(t, 0, e.RigidBody.Velocity.Y, 1e-9)
}

func TestDeadEnemyDrifts(t *testing.T) {
	world, tuning := newTestWorld()
	s := NewMovementSystem(world, tuning)
	e := spawnEnemy(world, tuning, utils.V(20, 0), crawlerInfo())
	e.Health.Kill()
	e.RigidBody.Velocity = utils.V(5, 0)

	s.MoveEnemies(0.1)

	assert.Equal(t, utils.V(5, 0), e.RigidBody.Velocity)
	assert.InDelta(t, 20.5, e.RigidBody.Position.X, 1e-9)
}

func TestFastEnemyIsSlowed(t *testing.T) {
	world, tuning := newTestWorld()
	s := NewMovementSystem(world, tuning)
	e := spawnEnemy(world, tuning, utils.V(0, 40), crawlerInfo())
	e.Health.Kill()
	e.RigidBody.Velocity = utils.V(50, 0)

	s.MoveEnemies(0.1)

	want := 50 * math.Max(0, 1-tuning.Physics.Drag*0.1)
	assert.InDelta(t, want, e.RigidBody.Velocity.X, 1e-9)
}
