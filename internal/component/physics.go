package component

import (
	"fmt"

	"go-arena-survival/pkg/utils"
)

// Bounds is an axis-aligned rectangle.
type Bounds struct {
	Min, Max utils.Vec2
}

// PhysicsMaterial describes how a body loses speed and bounces.
type PhysicsMaterial struct {
	Drag       float64
	Bounciness float64
}

// NewPhysicsMaterial panics when bounciness lies outside [0, 1]; that is a
// configuration bug, not a runtime condition.
func NewPhysicsMaterial(drag, bounciness float64) PhysicsMaterial {
	if bounciness < 0 || bounciness > 1 {
		panic(fmt.Sprintf("bounciness must be in range 0..=1, received: %v", bounciness))
	}
	return PhysicsMaterial{Drag: drag, Bounciness: bounciness}
}

// Collider is a circle.
type Collider struct {
	Radius float64
}

// Collision describes an overlap seen from the first body. Normal points
// from the other body towards the first one.
type Collision struct {
	Normal      utils.Vec2
	Penetration float64
}

// HitInfo is the result of a resolved collision.
type HitInfo struct {
	Contact     utils.Vec2
	HitStrength float64
}

// DegenerateNormal is used when two centers coincide exactly.
var DegenerateNormal = utils.V(1, 0)

// RigidBody is the physical state of a circle in the arena.
type RigidBody struct {
	Position        utils.Vec2
	Velocity        utils.Vec2
	Mass            float64
	Collider        Collider
	PhysicsMaterial PhysicsMaterial
}

// NewRigidBody creates a body at rest.
func NewRigidBody(position utils.Vec2, mass float64, collider Collider, material PhysicsMaterial) RigidBody {
	return RigidBody{
		Position:        position,
		Mass:            mass,
		Collider:        collider,
		PhysicsMaterial: material,
	}
}

// Movement integrates position over deltaTime.
func (rb *RigidBody) Movement(deltaTime float64) {
	rb.Position = rb.Position.Add(rb.Velocity.Scale(deltaTime))
}

// Drag scales velocity down by the material drag; it never reverses it.
func (rb *RigidBody) Drag(deltaTime float64) {
	factor := 1 - rb.PhysicsMaterial.Drag*deltaTime
	if factor < 0 {
		factor = 0
	}
	rb.Velocity = rb.Velocity.Scale(factor)
}

// Collision tests two circles. Touching circles (penetration == 0) collide.
func (rb *RigidBody) Collision(other *RigidBody) (Collision, bool) {
	offset := rb.Position.Sub(other.Position)
	penetration := rb.Collider.Radius + other.Collider.Radius - offset.Len()
	if penetration < 0 {
		return Collision{}, false
	}
	normal := DegenerateNormal
	if !offset.IsZero() {
		normal = offset.NormalizeOrZero()
	}
	return Collision{Normal: normal, Penetration: penetration}, true
}

// Collide resolves an overlap between rb and other. rb is pushed out of
// other, then both receive mass-weighted impulses along the normal. When
// given, hitOverride replaces the impulse strength applied to other and
// impactOverride the one applied to rb; the returned HitStrength is always
// the physical one.
func (rb *RigidBody) Collide(other *RigidBody, hitOverride, impactOverride *float64) (HitInfo, bool) {
	collision, ok := rb.Collision(other)
	if !ok {
		return HitInfo{}, false
	}

	rb.Position = rb.Position.Add(collision.Normal.Scale(collision.Penetration))
	relativeVelocity := other.Velocity.Sub(rb.Velocity)
	hitStrength := utils.Abs(collision.Normal.Dot(relativeVelocity))

	impact := hitStrength
	if impactOverride != nil {
		impact = *impactOverride
	}
	rb.Velocity = rb.Velocity.Add(collision.Normal.Scale(impact * other.Mass / rb.Mass))

	hit := hitStrength
	if hitOverride != nil {
		hit = *hitOverride
	}
	other.Velocity = other.Velocity.Sub(collision.Normal.Scale(hit * rb.Mass / other.Mass))

	contact := other.Position.Add(collision.Normal.Scale(other.Collider.Radius))
	return HitInfo{Contact: contact, HitStrength: hitStrength}, true
}

// ClampBounds moves the body so its collider lies inside bounds.
func (rb *RigidBody) ClampBounds(bounds Bounds) {
	size := utils.V(rb.Collider.Radius, rb.Collider.Radius)
	rb.Position = rb.Position.Clamp(bounds.Min.Add(size), bounds.Max.Sub(size))
}

// BounceBounds reflects the velocity on every axis where the collider
// leaves bounds, scaled by bounciness, then clamps the position. It reports
// whether any axis bounced.
func (rb *RigidBody) BounceBounds(bounds Bounds) bool {
	r := rb.Collider.Radius
	bounce := false
	if rb.Position.X-r < bounds.Min.X || rb.Position.X+r > bounds.Max.X {
		rb.Velocity.X *= -rb.PhysicsMaterial.Bounciness
		bounce = true
	}
	if rb.Position.Y-r < bounds.Min.Y || rb.Position.Y+r > bounds.Max.Y {
		rb.Velocity.Y *= -rb.PhysicsMaterial.Bounciness
		bounce = true
	}
	rb.ClampBounds(bounds)
	return bounce
}
