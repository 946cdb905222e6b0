// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/ui"
)

// MenuState - титульный экран
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx, cy := float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2
	ui.DrawOutlinedText(screen, "ARENA SURVIVAL", cx, cy-80, 5, text.AlignCenter, config.PlayerColor, config.SpawnerColor)
	ui.DrawText(screen, "WASD / arrows to move, mouse to swing the head", cx, cy+10, 1.5, text.AlignCenter, config.TextLightColor)
	ui.DrawText(screen, "P / Esc to pause", cx, cy+40, 1.5, text.AlignCenter, config.TextLightColor)
	ui.DrawText(screen, "Press SPACE to start", cx, cy+100, 2, text.AlignCenter, config.WaveTextColor)
}

func (m *MenuState) Exit() {}
