// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State - интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine - структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state and enters newState. nil leaves the
// machine idle.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state, or nil.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
