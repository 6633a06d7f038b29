// cmd/homeland/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"homeland/internal/app"
	"homeland/internal/config"
	"homeland/internal/defs"
	"homeland/internal/event"
	"homeland/internal/utils"
)

func main() {
	dataDir := flag.String("data", utils.GetEnvDefault(config.EnvDataDir, config.DefaultDataDir), "content directory")
	mapID := flag.String("map", utils.GetEnvDefault(config.EnvMapID, config.DefaultMapID), "map id to play")
	dt := flag.Float64("dt", config.DefaultTickDelta, "simulation step, seconds")
	printEvents := flag.Bool("events", false, "print every event")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: utils.ParseLogLevel(utils.GetEnvDefault(config.EnvLogLevel, config.DefaultLogLevel)),
	}))
	slog.SetDefault(logger)

	if err := run(os.Stdout, logger, *dataDir, *mapID, *dt, *printEvents); err != nil {
		logger.Error("homeland run failed", "err", err)
		os.Exit(1)
	}
}

func run(out io.Writer, logger *slog.Logger, dataDir, mapID string, dt float64, printEvents bool) error {
	content, err := defs.LoadContent(dataDir, mapID)
	if err != nil {
		return err
	}
	game, err := app.NewGame(content, app.WithLogger(logger))
	if err != nil {
		return err
	}
	game.Subscribe(event.SlogListener{Logger: logger})
	if printEvents {
		game.Subscribe(event.ListenerFunc(func(e event.Event) {
			fmt.Fprintf(out, "%s %+v\n", e.Type(), e)
		}))
	}

	ticks := autoPlay(game, dt, config.MaxTicksPerRun)
	logger.Info("run finished", "ticks", ticks, "session_id", game.SessionID().String())

	s := game.Snapshot()
	fmt.Fprintln(out, "Homeland Prototype Run")
	fmt.Fprintf(out, "state=%s\n", s.Phase)
	fmt.Fprintf(out, "outcome=%s\n", s.Outcome)
	fmt.Fprintf(out, "coins=%d\n", s.Coins)
	fmt.Fprintf(out, "xp=%d\n", s.XP)
	fmt.Fprintf(out, "waves=%d/%d\n", s.CurrentWave, s.TotalWaves)
	fmt.Fprintf(out, "towers_built=%d\n", s.TowersBuilt)
	fmt.Fprintf(out, "next_map_unlocked=%t\n", s.NextMapUnlocked)
	return nil
}
