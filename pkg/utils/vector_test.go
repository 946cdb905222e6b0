package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOrZero(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.NormalizeOrZero())
	n := V(3, 4).NormalizeOrZero()
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
}

func TestClampLen(t *testing.T) {
	assert.Equal(t, V(0.5, 0), V(0.5, 0).ClampLen(1))
	c := V(10, 0).ClampLen(1)
	assert.InDelta(t, 1.0, c.X, 1e-12)
	assert.Equal(t, Vec2{}, Vec2{}.ClampLen(1))
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, math.Pi/2, V(1, 0).AngleBetween(V(0, 1)), 1e-12)
	assert.InDelta(t, -math.Pi/2, V(1, 0).AngleBetween(V(0, -1)), 1e-12)
	assert.Equal(t, 0.0, Vec2{}.AngleBetween(V(1, 0)))
}

func TestSignTreatsZeroAsPositive(t *testing.T) {
	assert.Equal(t, 1.0, Sign(0))
	assert.Equal(t, -1.0, Sign(-0.1))
}
