// internal/system/combat.go
package system

import (
	"cmp"
	"log/slog"
	"slices"

	"homeland/internal/component"
	"homeland/internal/config"
	"homeland/internal/defs"
	"homeland/internal/types"
	"homeland/pkg/pathing"
)

// CombatResult — итог одного тика боя.
type CombatResult struct {
	Killed       []*component.Enemy // в порядке гибели, без повторов
	AttacksFired int
}

// CombatSystem resolves status effects and tower attacks for one tick.
type CombatSystem struct {
	towers map[string]defs.TowerDefinition
	logger *slog.Logger
}

func NewCombatSystem(towers map[string]defs.TowerDefinition, logger *slog.Logger) *CombatSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &CombatSystem{towers: towers, logger: logger}
}

type killSet struct {
	seen  map[types.EnemyID]bool
	order []*component.Enemy
}

func (k *killSet) add(e *component.Enemy) {
	if k.seen[e.ID] {
		return
	}
	k.seen[e.ID] = true
	k.order = append(k.order, e)
}

// Tick runs effect decay on every boat, then lets each tower, in the given
// order, attack the in-range boat furthest along the path.
func (s *CombatSystem) Tick(dt float64, towers []*component.Tower, enemies []*component.Enemy, path *pathing.Path) CombatResult {
	if dt <= 0 {
		return CombatResult{}
	}
	killed := &killSet{seen: make(map[types.EnemyID]bool)}

	for _, enemy := range enemies {
		if enemy.TickEffects(dt) {
			killed.add(enemy)
		}
	}

	// Позиции не меняются до фазы движения, считаем их один раз
	alive := make([]*component.Enemy, 0, len(enemies))
	positions := make(map[types.EnemyID]pathing.Point, len(enemies))
	for _, enemy := range enemies {
		if enemy.IsTerminal() {
			continue
		}
		alive = append(alive, enemy)
		positions[enemy.ID] = path.PositionAtDistance(enemy.Distance)
	}

	attacks := 0
	for _, tower := range towers {
		tower.TickCooldown(dt)
		if !tower.CanAttack() {
			continue
		}

		def, ok := s.towers[tower.DefID]
		if !ok {
			s.logger.Warn("combat: unknown tower definition", "tower_id", tower.ID.String(), "def_id", tower.DefID)
			continue
		}
		level, ok := def.Level(tower.Level)
		if !ok {
			s.logger.Warn("combat: tower level out of range", "tower_id", tower.ID.String(), "level", tower.Level)
			continue
		}

		target := selectTarget(tower.Position, level.Stats.Range, alive, positions)
		if target == nil {
			continue
		}

		attacks++
		tower.ResetCooldown(level.Stats.AttackSpeed)
		if target.ApplyDamage(level.Stats.Damage) {
			killed.add(target)
		}

		switch def.Effect {
		case defs.EffectNone:
		case defs.EffectFire:
			target.ApplyBurn(level.Stats.BurnDPS, level.Stats.BurnDuration)
		case defs.EffectWind:
			target.ApplySlow(level.Stats.SlowPercent, level.Stats.SlowDuration)
		case defs.EffectLightning:
			chainDamage(target, alive, positions, level.Stats, killed)
		}
	}

	return CombatResult{Killed: killed.order, AttacksFired: attacks}
}

// selectTarget picks the in-range boat with the greatest traveled distance.
// Ties go to the first boat in iteration order.
func selectTarget(from pathing.Point, rangeUnits float64, alive []*component.Enemy, positions map[types.EnemyID]pathing.Point) *component.Enemy {
	var best *component.Enemy
	for _, enemy := range alive {
		if enemy.IsTerminal() {
			continue
		}
		if pathing.Distance(from, positions[enemy.ID], config.WorldScale) > rangeUnits {
			continue
		}
		if best == nil || enemy.Distance > best.Distance {
			best = enemy
		}
	}
	return best
}

// chainDamage arcs from source to its nearest living neighbours inside
// ChainRadius. Only actual hits use up the chain count.
func chainDamage(source *component.Enemy, alive []*component.Enemy, positions map[types.EnemyID]pathing.Point, stats defs.LevelStats, killed *killSet) {
	if stats.ChainCount <= 0 {
		return
	}
	origin := positions[source.ID]

	type candidate struct {
		enemy    *component.Enemy
		distance float64
	}
	candidates := make([]candidate, 0, len(alive))
	for _, enemy := range alive {
		if enemy.ID == source.ID || enemy.IsTerminal() {
			continue
		}
		candidates = append(candidates, candidate{
			enemy:    enemy,
			distance: pathing.Distance(origin, positions[enemy.ID], config.WorldScale),
		})
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int { return cmp.Compare(a.distance, b.distance) })

	damage := stats.Damage * (1 - stats.ChainFalloff/100)
	hits := 0
	for _, c := range candidates {
		if hits >= stats.ChainCount {
			break
		}
		if c.distance > config.ChainRadius {
			continue
		}
		if c.enemy.ApplyDamage(damage) {
			killed.add(c.enemy)
		}
		hits++
	}
}
