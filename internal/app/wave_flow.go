// internal/app/wave_flow.go
package app

import (
	"fmt"

	"homeland/internal/component"
	"homeland/internal/event"
	"homeland/internal/types"
)

// StartNextWave launches the next wave from the build or wave result phase.
func (g *Game) StartNextWave() error {
	if err := g.requireBuildPhase("start wave"); err != nil {
		return g.reject("start_next_wave", err)
	}
	runtime, err := g.waves.StartNextWave()
	if err != nil {
		return g.reject("start_next_wave", fmt.Errorf("start wave: %w", err))
	}

	g.emit(event.WaveStarted{
		WaveID:        runtime.Definition.ID,
		TotalWaves:    g.waves.TotalWaves(),
		PlannedSpawns: runtime.Definition.Composition.Total(),
	})
	g.setPhase(component.PhaseWaveRunning)
	return nil
}

// Tick advances the running wave by dt seconds. Outside the wave phase, and
// for dt <= 0, it does nothing.
//
// Порядок: появление лодок, бой, награды за убитых, движение и утечки,
// проверка поражения, проверка конца волны.
func (g *Game) Tick(dt float64) {
	if g.phase != component.PhaseWaveRunning || dt <= 0 {
		return
	}

	for _, enemyType := range g.waves.Tick(dt) {
		g.spawn(enemyType)
	}

	result := g.combat.Tick(dt, g.placement.Towers(), g.enemies, g.path)
	if result.AttacksFired > 0 {
		g.emit(event.CombatTick{AttacksFired: result.AttacksFired})
	}
	if len(result.Killed) > 0 {
		g.rewardKills(result.Killed)
	}

	g.moveEnemies(dt)

	if g.economy.Coins() < 0 {
		g.finishMap(false)
		return
	}

	if g.waves.IsWaveComplete(len(g.enemies)) {
		g.completeWave()
	}
}

func (g *Game) spawn(enemyType string) {
	def, ok := g.content.Enemies[enemyType]
	if !ok {
		g.logger.Warn("spawn skipped", "err", fmt.Errorf("%w: %s", ErrUnknownReference, enemyType))
		return
	}
	enemy := component.NewEnemy(types.EnemyID(g.enemyIDs.Next()), def)
	g.enemies = append(g.enemies, enemy)
	g.emit(event.EnemySpawned{EnemyID: enemy.ID, EnemyType: enemy.Type})
}

// rewardKills credits each kill once, in order of death, and drops the dead
// boats from the active list.
func (g *Game) rewardKills(killed []*component.Enemy) {
	dead := make(map[types.EnemyID]bool, len(killed))
	for _, enemy := range killed {
		if dead[enemy.ID] {
			continue
		}
		dead[enemy.ID] = true
		coins := g.economy.Add(enemy.CoinReward)
		xp := g.progression.Add(enemy.XPReward)
		g.emit(event.EnemyKilled{EnemyID: enemy.ID, EnemyType: enemy.Type})
		g.emit(event.CoinsChanged{Delta: enemy.CoinReward, Reason: event.ReasonEnemyKill, Coins: coins})
		g.emit(event.XPChanged{Delta: enemy.XPReward, Reason: event.ReasonEnemyKill, XP: xp})
	}

	alive := g.enemies[:0]
	for _, enemy := range g.enemies {
		if !dead[enemy.ID] {
			alive = append(alive, enemy)
		}
	}
	clear(g.enemies[len(alive):])
	g.enemies = alive
}

func (g *Game) moveEnemies(dt float64) {
	penalty := g.content.Map.LeakPenalty
	alive, leaked := g.movement.Tick(dt, g.enemies)
	g.enemies = alive
	for _, enemy := range leaked {
		coins := g.economy.Add(-penalty.Coins)
		xp := g.progression.Add(-penalty.XP)
		g.logger.Debug("boat leaked", "enemy_id", enemy.ID.String(), "coins", coins)
		g.emit(event.EnemyLeaked{EnemyID: enemy.ID, EnemyType: enemy.Type})
		g.emit(event.CoinsChanged{Delta: -penalty.Coins, Reason: event.ReasonEnemyLeak, Coins: coins})
		g.emit(event.XPChanged{Delta: -penalty.XP, Reason: event.ReasonEnemyLeak, XP: xp})
	}
}

func (g *Game) completeWave() {
	waveID := g.waves.CurrentWaveNumber()
	g.setPhase(component.PhaseWaveResult)
	g.waves.FinishWave()
	g.emit(event.WaveCompleted{WaveID: waveID})

	progression := g.content.Progression
	xp := g.progression.Add(progression.XPPerWaveClear)
	g.emit(event.XPChanged{Delta: progression.XPPerWaveClear, Reason: event.ReasonWaveClear, XP: xp})

	if g.waves.HasMoreWaves() {
		g.setPhase(component.PhaseBuild)
		return
	}

	xp = g.progression.Add(progression.XPMapClear)
	g.emit(event.XPChanged{Delta: progression.XPMapClear, Reason: event.ReasonMapClear, XP: xp})
	g.finishMap(true)
}

// finishMap ends the session. MapResult is terminal.
func (g *Game) finishMap(victory bool) {
	unlocked := victory && g.progression.HasUnlock(g.content.Map.UnlockRequirement.MinXP)
	if victory {
		g.outcome = component.OutcomeVictory
	} else {
		g.outcome = component.OutcomeDefeat
	}
	g.setPhase(component.PhaseMapResult)
	g.logger.Info("map finished",
		"outcome", g.outcome.String(),
		"coins", g.economy.Coins(),
		"xp", g.progression.XP(),
		"unlocked_next_map", unlocked,
	)
	g.emit(event.MapResult{Victory: victory, UnlockedNextMap: unlocked})
}
