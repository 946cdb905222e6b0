// internal/interfaces/simulation.go
package interfaces

import (
	"go-arena-survival/internal/event"
	"go-arena-survival/pkg/utils"
)

// Simulation is what the frame loop drives.
type Simulation interface {
	MoveDirection(direction utils.Vec2)
	HeadTarget(target utils.Vec2)
	Update(deltaTime float64)
	FixedUpdate(deltaTime float64)
	Events() []event.Event
	IsOver() bool
}
