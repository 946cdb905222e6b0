// internal/defs/enemies.go
package defs

import (
	"fmt"
	"sort"

	"go-arena-survival/internal/component"
	"go-arena-survival/pkg/render"
)

// Enemy IDs known to the library.
const (
	EnemyBullet  = "bullet"
	EnemyCrawler = "crawler"
	EnemyBrute   = "brute"
	EnemyShooter = "shooter"
	EnemyBomber  = "bomber"
	EnemyMedic   = "medic"
)

func bullet() component.EnemyInfo {
	return component.EnemyInfo{
		Name:          EnemyBullet,
		Health:        1,
		Mass:          0.3,
		Size:          0.6,
		MovementSpeed: 60,
		Color:         render.NewColor(1, 0.85, 0.3, 1),
		Type:          &component.Projectile{Lifetime: component.NewHealth(4)},
	}
}

// EnemyLibrary holds every enemy template keyed by ID. Entities are always
// built from clones, so the templates stay untouched.
var EnemyLibrary = map[string]component.EnemyInfo{
	EnemyBullet: bullet(),

	EnemyCrawler: {
		Name:          EnemyCrawler,
		Health:        20,
		Mass:          1,
		Size:          1.5,
		MovementSpeed: 15,
		Color:         render.NewColor(0.9, 0.25, 0.25, 1),
		Type:          &component.Crawler{},
	},
	EnemyBrute: {
		Name:          EnemyBrute,
		Health:        60,
		Mass:          4,
		Size:          3,
		MovementSpeed: 8,
		Color:         render.NewColor(0.6, 0.1, 0.15, 1),
		Type:          &component.Crawler{},
	},
	EnemyShooter: {
		Name:          EnemyShooter,
		Health:        15,
		Mass:          1,
		Size:          1.5,
		MovementSpeed: 6,
		Color:         render.NewColor(0.3, 0.5, 0.95, 1),
		Type: &component.Attacker{Attack: component.NewAttack(2, &component.Shoot{
			Projectile: bullet(),
			Speed:      40,
		})},
	},
	EnemyBomber: {
		Name:          EnemyBomber,
		Health:        15,
		Mass:          1,
		Size:          1.8,
		MovementSpeed: 18,
		Color:         render.NewColor(1, 0.55, 0.1, 1),
		Type: &component.Attacker{Attack: component.NewAttack(5, &component.Bomb{
			Radius: 8,
			Damage: 25,
		})},
	},
	EnemyMedic: {
		Name:          EnemyMedic,
		Health:        25,
		Mass:          1.5,
		Size:          2,
		MovementSpeed: 10,
		Color:         render.NewColor(0.3, 0.85, 0.4, 1),
		Type: &component.Attacker{Attack: component.NewAttack(6, &component.Bomb{
			Radius: 6,
			Damage: 5,
			Leaves: &component.AreaEffectInfo{
				Radius:   8,
				Lifetime: 5,
				Effect:   component.Heal{AmountPerSecond: 4},
			},
		})},
	},
}

// Enemy returns a clone of the template with the given ID.
func Enemy(id string) (component.EnemyInfo, error) {
	info, ok := EnemyLibrary[id]
	if !ok {
		return component.EnemyInfo{}, fmt.Errorf("unknown enemy %q", id)
	}
	return info.Clone(), nil
}

// EnemyIDs lists the library IDs in sorted order.
func EnemyIDs() []string {
	ids := make([]string, 0, len(EnemyLibrary))
	for id := range EnemyLibrary {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
