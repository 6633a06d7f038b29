// internal/app/tower_management.go
package app

import (
	"fmt"

	"homeland/internal/event"
)

// BuildTower places a level 1 tower of towerType on slotID and pays for it.
// Every check runs before coins or the slot change.
func (g *Game) BuildTower(slotID, towerType string) error {
	if err := g.requireBuildPhase("build tower"); err != nil {
		return g.reject("build_tower", err)
	}
	def, ok := g.content.Towers[towerType]
	if !ok {
		return g.reject("build_tower", fmt.Errorf("%w: %s", ErrUnknownTower, towerType))
	}
	if err := g.placement.CheckPlacement(slotID); err != nil {
		return g.reject("build_tower", err)
	}
	first, _ := def.Level(1)
	if err := g.economy.Spend(first.Cost); err != nil {
		return g.reject("build_tower", fmt.Errorf("build %s on %s: %w", towerType, slotID, err))
	}

	tower, err := g.placement.Place(slotID, towerType)
	if err != nil {
		// CheckPlacement уже прошёл, сюда попасть нельзя
		g.economy.Add(first.Cost)
		return g.reject("build_tower", err)
	}

	g.logger.Debug("tower built", "tower_id", tower.ID.String(), "type", towerType, "slot", slotID)
	g.emit(event.CoinsChanged{Delta: -first.Cost, Reason: event.ReasonTowerBuild, Coins: g.economy.Coins()})
	g.emit(event.TowerBuilt{TowerID: tower.ID, TowerType: tower.DefID, SlotID: tower.SlotID, Level: tower.Level})
	return nil
}

// UpgradeTower raises the tower on slotID by one level.
func (g *Game) UpgradeTower(slotID string) error {
	if err := g.requireBuildPhase("upgrade tower"); err != nil {
		return g.reject("upgrade_tower", err)
	}
	tower, ok := g.placement.TowerAt(slotID)
	if !ok {
		return g.reject("upgrade_tower", fmt.Errorf("%w: %s", ErrNoTowerAtSlot, slotID))
	}
	def, ok := g.content.Towers[tower.DefID]
	if !ok {
		return g.reject("upgrade_tower", fmt.Errorf("%w: %s", ErrUnknownTower, tower.DefID))
	}
	next, ok := def.Level(tower.Level + 1)
	if !ok {
		return g.reject("upgrade_tower", fmt.Errorf("%w: %s on %s is level %d", ErrMaxLevel, tower.DefID, slotID, tower.Level))
	}
	if err := g.economy.Spend(next.Cost); err != nil {
		return g.reject("upgrade_tower", fmt.Errorf("upgrade %s on %s: %w", tower.DefID, slotID, err))
	}

	tower.Level = next.Level
	g.logger.Debug("tower upgraded", "tower_id", tower.ID.String(), "level", tower.Level)
	g.emit(event.CoinsChanged{Delta: -next.Cost, Reason: event.ReasonTowerUpgrade, Coins: g.economy.Coins()})
	g.emit(event.TowerUpgraded{TowerID: tower.ID, TowerType: tower.DefID, SlotID: tower.SlotID, Level: tower.Level})
	return nil
}

// UpgradeCost returns the price of the next level of the tower on slotID.
func (g *Game) UpgradeCost(slotID string) (int, bool) {
	tower, ok := g.placement.TowerAt(slotID)
	if !ok {
		return 0, false
	}
	next, ok := g.content.Towers[tower.DefID].Level(tower.Level + 1)
	if !ok {
		return 0, false
	}
	return next.Cost, true
}
