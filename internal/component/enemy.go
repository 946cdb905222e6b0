// internal/component/enemy.go
package component

import "go-arena-survival/pkg/render"

// EnemyType is the behavioral variant of an enemy. The set is closed:
// *Crawler, *Corpse, *Attacker and *Projectile.
type EnemyType interface {
	isEnemyType()
	// Clone returns an independent copy so templates are never mutated.
	Clone() EnemyType
}

// Crawler walks straight at the player.
type Crawler struct{}

// Corpse is a dead enemy fading out over Lifetime.
type Corpse struct {
	Lifetime Health
}

// Attacker walks at the player and performs Attack on a cooldown.
type Attacker struct {
	Attack Attack
}

// Projectile flies in a straight line until Lifetime runs out or it hits a wall.
type Projectile struct {
	Lifetime Health
}

func (*Crawler) isEnemyType()    {}
func (*Corpse) isEnemyType()     {}
func (*Attacker) isEnemyType()   {}
func (*Projectile) isEnemyType() {}

func (c *Crawler) Clone() EnemyType  { return &Crawler{} }
func (a *Attacker) Clone() EnemyType { return &Attacker{Attack: a.Attack.Clone()} }

func (c *Corpse) Clone() EnemyType {
	cp := *c
	return &cp
}

func (p *Projectile) Clone() EnemyType {
	cp := *p
	return &cp
}

// EnemyInfo is the template an enemy is built from.
type EnemyInfo struct {
	Name          string
	Health        float64
	Mass          float64
	Size          float64
	MovementSpeed float64
	Color         render.Color
	Type          EnemyType
}

// Clone deep-copies the template, including its variant payload.
func (info EnemyInfo) Clone() EnemyInfo {
	if info.Type != nil {
		info.Type = info.Type.Clone()
	}
	return info
}
