// internal/defs/towers.go
package defs

// LevelStats contains the combat parameters of one tower level. Elemental
// fields are only read for the matching effect type.
type LevelStats struct {
	Damage       float64 `json:"damage" yaml:"damage"`
	Range        float64 `json:"range" yaml:"range"`               // мировые единицы
	AttackSpeed  float64 `json:"attack_speed" yaml:"attack_speed"` // атак в секунду
	BurnDPS      float64 `json:"burn_dps,omitempty" yaml:"burn_dps,omitempty"`
	BurnDuration float64 `json:"burn_duration,omitempty" yaml:"burn_duration,omitempty"`
	SlowPercent  float64 `json:"slow_percent,omitempty" yaml:"slow_percent,omitempty"`
	SlowDuration float64 `json:"slow_duration,omitempty" yaml:"slow_duration,omitempty"`
	ChainCount   int     `json:"chain_count,omitempty" yaml:"chain_count,omitempty"`
	ChainFalloff float64 `json:"chain_falloff,omitempty" yaml:"chain_falloff,omitempty"` // проценты
}

// TowerLevel is one purchasable level of a tower type.
type TowerLevel struct {
	Level int        `json:"level" yaml:"level"`
	Cost  int        `json:"cost" yaml:"cost"`
	Stats LevelStats `json:"stats" yaml:"stats"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID          string       `json:"tower_id" yaml:"tower_id"`
	DisplayName string       `json:"display_name" yaml:"display_name"`
	Effect      EffectType   `json:"effect_type" yaml:"effect_type"`
	Levels      []TowerLevel `json:"levels" yaml:"levels"`
}

// MaxLevel returns the highest defined level.
func (d TowerDefinition) MaxLevel() int {
	return len(d.Levels)
}

// Level returns the definition of a 1-based level.
func (d TowerDefinition) Level(level int) (TowerLevel, bool) {
	if level < 1 || level > len(d.Levels) {
		return TowerLevel{}, false
	}
	return d.Levels[level-1], true
}
