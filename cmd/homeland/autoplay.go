// cmd/homeland/autoplay.go
package main

import (
	"homeland/internal/app"
	"homeland/internal/component"
	"homeland/internal/config"
)

// buildPlan — фиксированная расстановка башен для демонстрационного прогона.
var buildPlan = []struct {
	slot, tower string
}{
	{"s03", "arrow"},
	{"s05", "bone"},
	{"s08", "magic_fire"},
	{"s07", "magic_wind"},
}

// autoBuild places every planned tower it can afford. Failures are skipped.
func autoBuild(g *app.Game) {
	for _, step := range buildPlan {
		_ = g.BuildTower(step.slot, step.tower)
	}
}

// autoUpgrade upgrades the first planned tower that accepts an upgrade.
func autoUpgrade(g *app.Game) {
	for _, step := range buildPlan {
		if _, ok := g.TowerAt(step.slot); !ok {
			continue
		}
		if g.UpgradeTower(step.slot) == nil {
			return
		}
	}
}

// autoPlay drives the session to MapResult or until maxTicks ticks have run.
// It returns the number of ticks used.
func autoPlay(g *app.Game, dt float64, maxTicks int) int {
	if dt <= 0 {
		dt = config.DefaultTickDelta
	}
	autoBuild(g)

	ticks := 0
	for g.Phase() != component.PhaseMapResult && ticks < maxTicks {
		switch g.Phase() {
		case component.PhaseBuild, component.PhaseWaveResult:
			autoUpgrade(g)
			if err := g.StartNextWave(); err != nil {
				return ticks
			}
		case component.PhaseWaveRunning:
			g.Tick(dt)
			ticks++
		default:
			return ticks
		}
	}
	return ticks
}
