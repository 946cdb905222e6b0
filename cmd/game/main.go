// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-arena-survival/internal/audio"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML tuning file; compiled-in values when empty")
	wavesPath := flag.String("waves", "", "YAML wave file; compiled-in waves when empty")
	seed := flag.Int64("seed", 0, "RNG seed; 0 picks one from the clock")
	volume := flag.Float64("volume", 0.5, "sound volume in [0, 1]; 0 mutes")
	skipMenu := flag.Bool("skip-menu", false, "start directly in the arena")
	flag.Parse()

	tuning := config.DefaultTuning()
	if *tuningPath != "" {
		var err error
		if tuning, err = config.LoadTuning(*tuningPath); err != nil {
			log.Fatal(err)
		}
	}

	waves := defs.DefaultWaves()
	if *wavesPath != "" {
		var err error
		if waves, err = defs.LoadWaves(*wavesPath); err != nil {
			log.Fatal(err)
		}
	}

	session := &state.Session{
		Tuning: tuning,
		Waves:  waves,
		Seed:   *seed,
	}
	if *volume > 0 {
		session.Sound = audio.NewSoundPlayer(*volume)
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, session))
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Survival")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
