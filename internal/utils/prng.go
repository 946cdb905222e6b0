// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	vec "go-arena-survival/pkg/utils"
)

// PRNGService wraps a seeded generator so the whole simulation draws from
// one reproducible source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed. A zero seed uses
// the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a number in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a number in [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return Lerp(min, max, s.rng.Float64())
}

// Direction returns a uniformly distributed unit vector.
func (s *PRNGService) Direction() vec.Vec2 {
	return vec.FromAngle(s.Range(0, 2*math.Pi))
}

// PointInCircle returns a uniformly distributed point inside a circle.
func (s *PRNGService) PointInCircle(center vec.Vec2, radius float64) vec.Vec2 {
	r := radius * math.Sqrt(s.rng.Float64())
	return center.Add(s.Direction().Scale(r))
}

// PointInRect returns a point inside [min, max] on both axes.
func (s *PRNGService) PointInRect(min, max vec.Vec2) vec.Vec2 {
	return vec.V(s.Range(min.X, max.X), s.Range(min.Y, max.Y))
}
