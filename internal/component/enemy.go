// internal/component/enemy.go
package component

import (
	"math"

	"homeland/internal/config"
	"homeland/internal/defs"
	"homeland/internal/types"
)

// Enemy is one boat in flight. Destroyed and Leaked are terminal and
// mutually exclusive: a terminal boat takes no damage, effects or movement.
type Enemy struct {
	ID         types.EnemyID
	Type       string
	MaxHP      float64
	HP         float64
	Speed      float64
	CoinReward int
	XPReward   int
	Distance   float64 // пройденный путь, мировые единицы
	Destroyed  bool
	Leaked     bool
	Burn       BurnEffect
	Slow       SlowEffect
}

// NewEnemy creates a boat at the start of the path.
func NewEnemy(id types.EnemyID, def defs.EnemyDefinition) *Enemy {
	return &Enemy{
		ID:         id,
		Type:       def.Type,
		MaxHP:      def.HP,
		HP:         def.HP,
		Speed:      def.Speed,
		CoinReward: def.CoinReward,
		XPReward:   def.XPReward,
	}
}

func (e *Enemy) IsTerminal() bool {
	return e.Destroyed || e.Leaked
}

// ApplyDamage subtracts amount from hp and reports whether this call killed the boat.
func (e *Enemy) ApplyDamage(amount float64) bool {
	if e.IsTerminal() {
		return false
	}
	e.HP -= math.Max(amount, 0)
	if e.HP <= 0 {
		e.HP = 0
		e.Destroyed = true
		return true
	}
	return false
}

// ApplyBurn keeps the stronger dps and always restarts the timer with the new
// duration. Burns do not stack.
func (e *Enemy) ApplyBurn(dps, duration float64) {
	if e.IsTerminal() || dps <= 0 || duration <= 0 {
		return
	}
	e.Burn.DPS = math.Max(e.Burn.DPS, dps)
	e.Burn.Remaining = duration
}

// ApplySlow keeps the larger percent and the longer remaining duration,
// independently of each other.
func (e *Enemy) ApplySlow(percent, duration float64) {
	if e.IsTerminal() || percent <= 0 || duration <= 0 {
		return
	}
	e.Slow.Percent = math.Max(e.Slow.Percent, percent)
	e.Slow.Remaining = math.Max(e.Slow.Remaining, duration)
}

// TickEffects advances burn and slow timers by dt. Burn damage is applied
// first and may kill the boat; the return value reports that kill.
func (e *Enemy) TickEffects(dt float64) bool {
	if e.IsTerminal() || dt <= 0 {
		return false
	}

	if e.Burn.Active() {
		killed := e.ApplyDamage(e.Burn.DPS * dt)
		e.Burn.Remaining = math.Max(0, e.Burn.Remaining-dt)
		if e.Burn.Remaining == 0 {
			e.Burn.DPS = 0
		}
		if killed {
			return true
		}
	}

	if e.Slow.Active() {
		e.Slow.Remaining = math.Max(0, e.Slow.Remaining-dt)
		if e.Slow.Remaining == 0 {
			e.Slow.Percent = 0
		}
	}
	return false
}

// SpeedMultiplier returns the fraction of base speed left after slows. It is never below 0.2.
func (e *Enemy) SpeedMultiplier() float64 {
	return 1 - math.Min(e.Slow.Percent/100, config.MaxSlowFraction)
}

// Move advances the boat and reports whether it reached the end of the path.
func (e *Enemy) Move(dt, pathLength float64) bool {
	if e.IsTerminal() || dt <= 0 {
		return false
	}
	e.Distance += e.Speed * e.SpeedMultiplier() * dt
	if e.Distance >= pathLength {
		e.Leaked = true
		return true
	}
	return false
}
