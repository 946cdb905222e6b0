// internal/system/wave.go
package system

import (
	"log"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/pkg/utils"
)

// WaveSystem releases waves as spawners and turns expired spawners into
// enemies.
type WaveSystem struct {
	world    *entity.World
	tuning   *config.Tuning
	material component.PhysicsMaterial
	// waves is the full list; the pending queue lives in world.Waves.
	waves []component.Wave
}

// NewWaveSystem queues waves in the world.
func NewWaveSystem(world *entity.World, tuning *config.Tuning, waves []component.Wave) *WaveSystem {
	s := &WaveSystem{
		world:    world,
		tuning:   tuning,
		material: component.NewPhysicsMaterial(tuning.Physics.Drag, tuning.Physics.Bounciness),
		waves:    waves,
	}
	world.Waves = append([]component.Wave(nil), waves...)
	return s
}

// Update starts the next wave when the arena is clear, then ticks spawners.
func (s *WaveSystem) Update(deltaTime float64) {
	if s.ShouldStartWave() {
		s.NextWave()
	}
	s.UpdateSpawners(deltaTime)
}

// ShouldStartWave reports whether the player is alive and the arena holds
// neither entities nor spawners.
func (s *WaveSystem) ShouldStartWave() bool {
	return s.world.Player.IsAlive() && len(s.world.Entities) == 0 && len(s.world.Spawners) == 0
}

// NextWave pops the front wave and places one spawner per group. When the
// queue is exhausted it is refilled from the tuning RepeatFrom index so the
// game never runs out of waves.
func (s *WaveSystem) NextWave() bool {
	if len(s.world.Waves) == 0 {
		if len(s.waves) == 0 {
			return false
		}
		from := s.tuning.Waves.RepeatFrom
		if from < 0 || from >= len(s.waves) {
			from = len(s.waves) - 1
		}
		s.world.Waves = append(s.world.Waves, s.waves[from:]...)
	}

	wave := s.world.Waves[0]
	s.world.Waves = s.world.Waves[1:]
	s.world.WaveNumber++

	for _, group := range wave.Groups {
		position := s.groupPosition(group)
		spawnTime := group.SpawnTime
		if spawnTime <= 0 {
			spawnTime = s.tuning.Waves.SpawnerTime
		}
		s.world.Spawners = append(s.world.Spawners, &component.Spawner{
			Position:    position,
			SpawnGroup:  group.SpawnGroup,
			TimeLeft:    spawnTime,
			TimeLeftMax: spawnTime,
		})
	}

	log.Printf("Wave %d (%s) started: %d spawners", s.world.WaveNumber, wave.Name, len(wave.Groups))
	s.world.Events.Push(event.Event{Type: event.WaveStarted, Data: s.world.WaveNumber})
	return true
}

func (s *WaveSystem) groupPosition(group component.WaveGroup) utils.Vec2 {
	if group.Position != nil {
		return *group.Position
	}
	inset := utils.V(group.Radius, group.Radius)
	lo := s.world.Bounds.Min.Add(inset)
	hi := s.world.Bounds.Max.Sub(inset)
	if lo.X > hi.X || lo.Y > hi.Y {
		return s.world.Bounds.Min.Add(s.world.Bounds.Max).Scale(0.5)
	}
	return s.world.Rng.PointInRect(lo, hi)
}

// UpdateSpawners counts every spawner down and replaces the expired ones by
// their spawn group.
func (s *WaveSystem) UpdateSpawners(deltaTime float64) {
	var expired []int
	for i, spawner := range s.world.Spawners {
		spawner.TimeLeft -= deltaTime
		if spawner.TimeLeft <= 0 {
			expired = append(expired, i)
		}
	}
	if len(expired) == 0 {
		return
	}

	fired := make([]*component.Spawner, 0, len(expired))
	for i := len(expired) - 1; i >= 0; i-- {
		fired = append(fired, s.world.Spawners[expired[i]])
	}
	s.world.Spawners = entity.RemoveIndices(s.world.Spawners, expired)

	for _, spawner := range fired {
		s.SpawnGroup(spawner.Position, spawner.SpawnGroup)
	}
}

// SpawnGroup places every enemy of group at a random point within its
// radius around position.
func (s *WaveSystem) SpawnGroup(position utils.Vec2, group component.SpawnGroup) {
	for _, info := range group.Enemies {
		pos := s.world.Rng.PointInCircle(position, group.Radius)
		s.world.Entities = append(s.world.Entities, entity.NewEnemy(pos, info, s.material))
	}
}
