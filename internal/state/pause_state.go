// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the previous state and draws it under an overlay.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	cx, cy := float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2
	ui.DrawText(screen, "PAUSED", cx, cy-20, 4, text.AlignCenter, config.TextLightColor)
}

func (s *PauseState) Exit() {}
