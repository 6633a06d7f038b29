package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"homeland/internal/app"
	"homeland/internal/component"
	"homeland/internal/config"
	"homeland/internal/defs"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAutoPlayReachesMapResult(t *testing.T) {
	content, err := defs.LoadContent("../../data", config.DefaultMapID)
	if err != nil {
		t.Fatalf("LoadContent returned error: %v", err)
	}
	g, err := app.NewGame(content, app.WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("NewGame returned error: %v", err)
	}

	ticks := autoPlay(g, config.DefaultTickDelta, config.MaxTicksPerRun)
	if g.Phase() != component.PhaseMapResult {
		t.Fatalf("auto-play stopped in %s after %d ticks", g.Phase(), ticks)
	}
	snap := g.Snapshot()
	if snap.TowersBuilt != len(buildPlan) {
		t.Errorf("towers built = %d, want %d", snap.TowersBuilt, len(buildPlan))
	}
	if snap.Outcome == component.OutcomeVictory && snap.CurrentWave != snap.TotalWaves {
		t.Errorf("victory before the last wave: %+v", snap)
	}
}

func TestRunPrintsSummaryAndEvents(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, quietLogger(), "../../data", config.DefaultMapID, 0.1, true); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Homeland Prototype Run", "state=map_result", "waves=", "tower_built ", "map_result "} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunFailsOnMissingMap(t *testing.T) {
	if err := run(io.Discard, quietLogger(), "../../data", "no_such_map", 0.1, false); err == nil {
		t.Fatalf("expected error for unknown map")
	}
}
