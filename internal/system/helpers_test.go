package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	gameutils "go-arena-survival/internal/utils"
	"go-arena-survival/pkg/render"
	"go-arena-survival/pkg/utils"
)

func newTestWorld() (*entity.World, *config.Tuning) {
	tuning := config.DefaultTuning()
	material := component.NewPhysicsMaterial(tuning.Physics.Drag, tuning.Physics.Bounciness)
	body := component.NewRigidBody(utils.V(0, 0), tuning.Player.BodyMass,
		component.Collider{Radius: tuning.Player.BodyRadius}, material)
	head := component.NewRigidBody(utils.V(0, 0), tuning.Player.HeadMass,
		component.Collider{Radius: tuning.Player.HeadRadius}, material)
	player := component.NewPlayer(body, head, tuning.Player.ChainLength, tuning.Player.MaxHealth)
	bounds := component.Bounds{Min: tuning.Arena.Min, Max: tuning.Arena.Max}
	return entity.NewWorld(bounds, player, gameutils.NewPRNGService(42)), tuning
}

func crawlerInfo() component.EnemyInfo {
	return component.EnemyInfo{
		Name:          "crawler",
		Health:        10,
		Mass:          1,
		Size:          1,
		MovementSpeed: 10,
		Color:         render.NewColor(1, 0, 0, 1),
		Type:          &component.Crawler{},
	}
}

func spawnEnemy(world *entity.World, tuning *config.Tuning, position utils.Vec2, info component.EnemyInfo) *entity.Entity {
	material := component.NewPhysicsMaterial(tuning.Physics.Drag, tuning.Physics.Bounciness)
	e := entity.NewEnemy(position, info, material)
	world.Entities = append(world.Entities, e)
	return e
}

func countEvents(events []event.Event, t event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}
