// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of boat.
type EnemyDefinition struct {
	Type       string  `json:"enemy_type" yaml:"enemy_type"`
	HP         float64 `json:"hp" yaml:"hp"`
	Speed      float64 `json:"speed" yaml:"speed"` // мировые единицы в секунду
	CoinReward int     `json:"coin_reward" yaml:"coin_reward"`
	XPReward   int     `json:"xp_reward" yaml:"xp_reward"`
}
