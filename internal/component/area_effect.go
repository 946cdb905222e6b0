package component

import "go-arena-survival/pkg/utils"

// Effect is what an area effect does to the player standing in it.
// Heal is the only variant.
type Effect interface {
	isEffect()
}

// Heal restores AmountPerSecond health per second.
type Heal struct {
	AmountPerSecond float64
}

func (Heal) isEffect() {}

// AreaEffect is a timed circular zone.
type AreaEffect struct {
	Position utils.Vec2
	Radius   float64
	Lifetime Health
	Effect   Effect
}

// AreaEffectInfo is the template of an AreaEffect.
type AreaEffectInfo struct {
	Radius   float64
	Lifetime float64
	Effect   Effect
}

// Spawn places the template at position.
func (info AreaEffectInfo) Spawn(position utils.Vec2) *AreaEffect {
	return &AreaEffect{
		Position: position,
		Radius:   info.Radius,
		Lifetime: NewHealth(info.Lifetime),
		Effect:   info.Effect,
	}
}
