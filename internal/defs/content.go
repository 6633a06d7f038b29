// internal/defs/content.go
package defs

import (
	"cmp"
	"fmt"
	"slices"
)

// Content is the full, already typed data set of one map session.
type Content struct {
	Map         MapDefinition
	Towers      map[string]TowerDefinition
	Enemies     map[string]EnemyDefinition
	Waves       []WaveDefinition
	Progression ProgressionDefinition
}

// Normalize sorts tower levels by level number and waves by wave id.
func (c *Content) Normalize() {
	for id, tower := range c.Towers {
		levels := slices.Clone(tower.Levels)
		slices.SortStableFunc(levels, func(a, b TowerLevel) int { return cmp.Compare(a.Level, b.Level) })
		tower.Levels = levels
		c.Towers[id] = tower
	}
	c.Waves = slices.Clone(c.Waves)
	slices.SortStableFunc(c.Waves, func(a, b WaveDefinition) int { return cmp.Compare(a.ID, b.ID) })
}

// Validate checks the structural rules the simulation relies on. Every
// failure wraps ErrInvalidContent.
func (c *Content) Validate() error {
	if err := c.validateMap(); err != nil {
		return err
	}
	if err := c.validateTowers(); err != nil {
		return err
	}
	if err := c.validateEnemies(); err != nil {
		return err
	}
	return c.validateWaves()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidContent, fmt.Sprintf(format, args...))
}

func (c *Content) validateMap() error {
	m := c.Map
	if m.ID == "" {
		return invalid("map_id is required")
	}
	if len(m.PathWaypoints) < 2 {
		return invalid("map %s: path_waypoints must include at least 2 points", m.ID)
	}
	if m.StartingCoins <= 0 {
		return invalid("map %s: starting_coins must be positive", m.ID)
	}
	if m.StartingXP < 0 {
		return invalid("map %s: starting_xp must be non-negative", m.ID)
	}
	if m.LeakPenalty.Coins < 0 || m.LeakPenalty.XP < 0 {
		return invalid("map %s: leak_penalty must be non-negative", m.ID)
	}
	seen := make(map[string]bool, len(m.BuildSlots))
	for _, slot := range m.BuildSlots {
		if slot.ID == "" {
			return invalid("map %s: build slot without id", m.ID)
		}
		if seen[slot.ID] {
			return invalid("map %s: duplicate build slot %s", m.ID, slot.ID)
		}
		seen[slot.ID] = true
	}
	return nil
}

func (c *Content) validateTowers() error {
	for id, tower := range c.Towers {
		if tower.ID != id {
			return invalid("tower %q registered under key %q", tower.ID, id)
		}
		if len(tower.Levels) == 0 {
			return invalid("tower %s: no levels", id)
		}
		for i, level := range tower.Levels {
			if level.Level != i+1 {
				return invalid("tower %s: levels must be numbered 1..%d", id, len(tower.Levels))
			}
			if level.Cost < 0 {
				return invalid("tower %s level %d: negative cost", id, level.Level)
			}
		}
	}
	return nil
}

func (c *Content) validateEnemies() error {
	for enemyType, enemy := range c.Enemies {
		if enemy.Type != enemyType {
			return invalid("enemy %q registered under key %q", enemy.Type, enemyType)
		}
		if enemy.HP <= 0 {
			return invalid("enemy %s: hp must be positive", enemyType)
		}
	}
	return nil
}

func (c *Content) validateWaves() error {
	if len(c.Waves) == 0 {
		return invalid("at least one wave is required")
	}
	seen := make(map[int]bool, len(c.Waves))
	for _, wave := range c.Waves {
		if seen[wave.ID] {
			return invalid("duplicate wave_id %d", wave.ID)
		}
		seen[wave.ID] = true
		if wave.SpawnInterval <= 0 {
			return invalid("wave %d: spawn_interval must be positive", wave.ID)
		}
		types := make(map[string]bool, len(wave.Composition))
		for _, entry := range wave.Composition {
			if _, ok := c.Enemies[entry.EnemyType]; !ok {
				return invalid("wave %d references unknown enemy type: %s", wave.ID, entry.EnemyType)
			}
			if types[entry.EnemyType] {
				return invalid("wave %d lists enemy type %s twice", wave.ID, entry.EnemyType)
			}
			types[entry.EnemyType] = true
			if entry.Count < 0 {
				return invalid("wave %d: negative count for %s", wave.ID, entry.EnemyType)
			}
		}
	}
	return nil
}
