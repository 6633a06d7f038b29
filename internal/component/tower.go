// component/tower.go
package component

import (
	"homeland/internal/config"
	"homeland/internal/types"
	"homeland/pkg/pathing"
)

type Tower struct {
	ID       types.TowerID
	DefID    string        // ID из towers.json
	SlotID   string        // слот, на котором стоит башня
	Position pathing.Point // координаты слота, единицы карты
	Level    int           // начинается с 1
	Cooldown float64       // оставшееся время до следующей атаки
}

// TickCooldown counts the attack cooldown down, never below zero.
func (t *Tower) TickCooldown(dt float64) {
	if dt <= 0 {
		return
	}
	t.Cooldown -= dt
	if t.Cooldown < 0 {
		t.Cooldown = 0
	}
}

func (t *Tower) CanAttack() bool {
	return t.Cooldown <= 0
}

// ResetCooldown arms the next attack from attacks-per-second. Non-positive
// rates fall back to a fixed one second period.
func (t *Tower) ResetCooldown(attackSpeed float64) {
	if attackSpeed <= 0 {
		t.Cooldown = config.FallbackAttackPeriod
		return
	}
	t.Cooldown = 1.0 / attackSpeed
}
