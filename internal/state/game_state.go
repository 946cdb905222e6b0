// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena-survival/internal/app"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/render"
	"go-arena-survival/internal/ui"
	gfx "go-arena-survival/pkg/render"
	"go-arena-survival/pkg/utils"
)

const waveBannerTime = 2.0

// GameState - состояние игры
type GameState struct {
	sm         *StateMachine
	session    *Session
	model      *app.Model
	loop       *app.FrameLoop
	renderer   *render.Renderer
	dispatcher *event.Dispatcher

	healthBar     *ui.PlayerHealthIndicator
	waveIndicator *ui.WaveIndicator
	fps           *ui.FPSCounter

	bannerTime float64
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	model := app.NewModel(session.Tuning, session.Waves, session.Seed)
	bounds := model.Bounds()
	camera := gfx.NewCamera(bounds.Min, bounds.Max, config.ScreenWidth, config.ScreenHeight, config.WorldScale)

	gs := &GameState{
		sm:            sm,
		session:       session,
		model:         model,
		loop:          app.NewFrameLoop(model),
		renderer:      render.NewRenderer(camera),
		dispatcher:    event.NewDispatcher(),
		healthBar:     ui.NewPlayerHealthIndicator(config.HUDMargin, config.HUDMargin),
		waveIndicator: ui.NewWaveIndicator(float64(config.ScreenWidth)/2, config.HUDMargin, 2),
		fps:           ui.NewFPSCounter(float64(config.ScreenWidth-config.HUDMargin), config.HUDMargin),
	}

	if session.Sound != nil {
		gs.dispatcher.SubscribeSounds(session.Sound)
	}
	gs.dispatcher.Subscribe(event.WaveStarted, event.ListenerFunc(func(event.Event) {
		gs.bannerTime = waveBannerTime
	}))
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.fps.Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if g.model.IsOver() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sm.SetState(NewGameState(g.sm, g.session))
		return
	}

	g.model.MoveDirection(moveInput())
	g.model.HeadTarget(g.renderer.Camera().ToWorld(ebiten.CursorPosition()))

	g.loop.Advance(deltaTime)

	g.dispatcher.DispatchAll(g.model.Events())
	if g.bannerTime > 0 {
		g.bannerTime -= deltaTime
	}
}

// moveInput reads WASD and the arrow keys.
func moveInput() utils.Vec2 {
	var dir utils.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y++
	}
	return dir
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.model.World)
	g.drawHUD(screen)
	if g.model.IsOver() {
		g.drawGameOver(screen)
	}
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	g.healthBar.Draw(screen, g.model.Player().Health)
	g.waveIndicator.Draw(screen, g.model.WaveNumber())
	g.fps.Draw(screen)

	enemies := fmt.Sprintf("Enemies: %d", g.model.World.AliveEnemies())
	ui.DrawText(screen, enemies, config.HUDMargin, config.HUDMargin+config.HealthBarHeight+8, 1, text.AlignStart, config.TextLightColor)

	if g.bannerTime > 0 {
		banner := fmt.Sprintf("WAVE %d", g.model.WaveNumber())
		ui.DrawOutlinedText(screen, banner, float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/3, 4,
			text.AlignCenter, config.WaveTextColor, config.TextLightColor)
	}
}

func (g *GameState) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	cx, cy := float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2
	ui.DrawText(screen, "GAME OVER", cx, cy-60, 5, text.AlignCenter, config.PlayerLifeColor)
	ui.DrawText(screen, fmt.Sprintf("Survived until wave %d", g.model.WaveNumber()), cx, cy+20, 2, text.AlignCenter, config.TextLightColor)
	ui.DrawText(screen, "Press R to restart", cx, cy+60, 2, text.AlignCenter, config.TextLightColor)
}

func (g *GameState) Exit() {}
