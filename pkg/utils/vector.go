package utils

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// NormalizeOrZero returns the unit vector in the direction of v,
// or the zero vector when v has no length.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampLen shortens v to at most max length, keeping direction.
func (v Vec2) ClampLen(max float64) Vec2 {
	l := v.Len()
	if l > max && l > 0 {
		return v.Scale(max / l)
	}
	return v
}

// Clamp clamps each component independently into [min, max].
func (v Vec2) Clamp(min, max Vec2) Vec2 {
	return Vec2{Clamp(v.X, min.X, max.X), Clamp(v.Y, min.Y, max.Y)}
}

// Perp returns v rotated by -90 degrees, i.e. (y, -x).
func (v Vec2) Perp() Vec2 { return Vec2{v.Y, -v.X} }

// AngleBetween returns the signed angle in radians that rotates v onto o.
// Zero-length inputs give 0.
func (v Vec2) AngleBetween(o Vec2) float64 {
	if v.IsZero() || o.IsZero() {
		return 0
	}
	return math.Atan2(v.Cross(o), v.Dot(o))
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{c, s}
}
