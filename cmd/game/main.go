// cmd/game/main.go
package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"homeland/internal/app"
	"homeland/internal/config"
	"homeland/internal/defs"
	"homeland/internal/event"
	"homeland/internal/state"
	"homeland/internal/utils"
)

const startFromGame = true // true — начинать с игры, false — с меню

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
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: utils.ParseLogLevel(utils.GetEnvDefault(config.EnvLogLevel, config.DefaultLogLevel)),
	}))
	slog.SetDefault(logger)

	dataDir := utils.GetEnvDefault(config.EnvDataDir, config.DefaultDataDir)
	mapID := utils.GetEnvDefault(config.EnvMapID, config.DefaultMapID)
	content, err := defs.LoadContent(dataDir, mapID)
	if err != nil {
		logger.Error("load content", "data_dir", dataDir, "map", mapID, "err", err)
		os.Exit(1)
	}
	game, err := app.NewGame(content, app.WithLogger(logger))
	if err != nil {
		logger.Error("new game", "err", err)
		os.Exit(1)
	}
	game.Subscribe(event.SlogListener{Logger: logger})

	sm := state.NewStateMachine()
	play := func() state.State { return state.NewGameState(sm, game, logger) }
	if startFromGame {
		sm.SetState(play())
	} else {
		sm.SetState(state.NewMenuState(sm, "Homeland: "+content.Map.ID, play))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Homeland")
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("run game", "err", err)
		os.Exit(1)
	}
}
