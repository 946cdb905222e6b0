package component

import "go-arena-survival/pkg/render"

// Particle is a cosmetic body; it only collides with the arena bounds.
type Particle struct {
	RigidBody RigidBody
	Color     render.Color
	Lifetime  Health
}
