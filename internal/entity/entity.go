// internal/entity/entity.go
package entity

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/pkg/render"
	"go-arena-survival/pkg/utils"
)

// EntityType tags an Entity. The set is closed: PlayerType and *EnemyKind.
type EntityType interface {
	isEntityType()
}

// PlayerType marks a player-controlled body.
type PlayerType struct{}

// EnemyKind carries the enemy variant; Type is swapped in place when the
// enemy turns into a corpse.
type EnemyKind struct {
	Type component.EnemyType
}

func (PlayerType) isEntityType() {}
func (*EnemyKind) isEntityType() {}

// Entity is a simulated actor.
type Entity struct {
	RigidBody     component.RigidBody
	Health        component.Health
	MovementSpeed float64
	Color         render.Color
	// Destroy removes the entity on the next death check regardless of health.
	Destroy bool
	Kind    EntityType
}

// NewEnemy builds an enemy from a template at position.
func NewEnemy(position utils.Vec2, info component.EnemyInfo, material component.PhysicsMaterial) *Entity {
	info = info.Clone()
	enemyType := info.Type
	if enemyType == nil {
		enemyType = &component.Crawler{}
	}
	return &Entity{
		RigidBody:     component.NewRigidBody(position, info.Mass, component.Collider{Radius: info.Size}, material),
		Health:        component.NewHealth(info.Health),
		MovementSpeed: info.MovementSpeed,
		Color:         info.Color,
		Kind:          &EnemyKind{Type: enemyType},
	}
}

func (e *Entity) IsAlive() bool {
	return e.Health.IsAlive()
}

// EnemyType returns the enemy variant, or nil for non-enemies.
func (e *Entity) EnemyType() component.EnemyType {
	if kind, ok := e.Kind.(*EnemyKind); ok {
		return kind.Type
	}
	return nil
}

// SetEnemyType replaces the variant of an enemy; it is a no-op otherwise.
func (e *Entity) SetEnemyType(t component.EnemyType) {
	if kind, ok := e.Kind.(*EnemyKind); ok {
		kind.Type = t
	}
}
