package app

import (
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/interfaces"
)

var _ interfaces.Simulation = (*Model)(nil)

// FrameLoop turns variable frame times into one Update plus a whole number
// of fixed steps.
type FrameLoop struct {
	sim         interfaces.Simulation
	accumulator float64
	FixedDelta  float64
	MaxSteps    int
}

func NewFrameLoop(sim interfaces.Simulation) *FrameLoop {
	return &FrameLoop{
		sim:        sim,
		FixedDelta: config.FixedDelta,
		MaxSteps:   config.MaxFixedStepsPerFrame,
	}
}

// Advance runs one frame and returns the number of fixed steps taken. A
// backlog beyond MaxSteps is dropped instead of caught up.
func (l *FrameLoop) Advance(deltaTime float64) int {
	l.sim.Update(deltaTime)

	l.accumulator += deltaTime
	steps := 0
	for l.accumulator >= l.FixedDelta {
		if steps == l.MaxSteps {
			l.accumulator = 0
			break
		}
		l.sim.FixedUpdate(l.FixedDelta)
		l.accumulator -= l.FixedDelta
		steps++
	}
	return steps
}
