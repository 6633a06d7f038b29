// internal/event/kinds.go
package event

import (
	"homeland/internal/component"
	"homeland/internal/types"
)

const (
	MapLoadedType     EventType = "map_loaded"
	PhaseChangedType  EventType = "phase_changed"
	CoinsChangedType  EventType = "coins_changed"
	XPChangedType     EventType = "xp_changed"
	TowerBuiltType    EventType = "tower_built"
	TowerUpgradedType EventType = "tower_upgraded"
	WaveStartedType   EventType = "wave_started"
	EnemySpawnedType  EventType = "enemy_spawned"
	CombatTickType    EventType = "combat_tick"
	EnemyKilledType   EventType = "enemy_killed"
	EnemyLeakedType   EventType = "enemy_leaked"
	WaveCompletedType EventType = "wave_completed"
	MapResultType     EventType = "map_result"
)

// Reason — причина изменения монет или опыта.
type Reason string

const (
	ReasonTowerBuild   Reason = "tower_build"
	ReasonTowerUpgrade Reason = "tower_upgrade"
	ReasonEnemyKill    Reason = "enemy_kill"
	ReasonEnemyLeak    Reason = "enemy_leak"
	ReasonWaveClear    Reason = "wave_clear"
	ReasonMapClear     Reason = "map_clear"
)

type MapLoaded struct {
	MapID string
}

type PhaseChanged struct {
	From component.Phase
	To   component.Phase
}

// CoinsChanged carries the signed delta and the balance after it.
type CoinsChanged struct {
	Delta  int
	Reason Reason
	Coins  int
}

// XPChanged carries the requested delta and the total after flooring at zero.
type XPChanged struct {
	Delta  int
	Reason Reason
	XP     int
}

type TowerBuilt struct {
	TowerID   types.TowerID
	TowerType string
	SlotID    string
	Level     int
}

type TowerUpgraded struct {
	TowerID   types.TowerID
	TowerType string
	SlotID    string
	Level     int
}

type WaveStarted struct {
	WaveID        int
	TotalWaves    int
	PlannedSpawns int
}

type EnemySpawned struct {
	EnemyID   types.EnemyID
	EnemyType string
}

// CombatTick is only emitted for ticks in which at least one tower fired.
type CombatTick struct {
	AttacksFired int
}

type EnemyKilled struct {
	EnemyID   types.EnemyID
	EnemyType string
}

type EnemyLeaked struct {
	EnemyID   types.EnemyID
	EnemyType string
}

type WaveCompleted struct {
	WaveID int
}

type MapResult struct {
	Victory         bool
	UnlockedNextMap bool
}

func (MapLoaded) Type() EventType     { return MapLoadedType }
func (PhaseChanged) Type() EventType  { return PhaseChangedType }
func (CoinsChanged) Type() EventType  { return CoinsChangedType }
func (XPChanged) Type() EventType     { return XPChangedType }
func (TowerBuilt) Type() EventType    { return TowerBuiltType }
func (TowerUpgraded) Type() EventType { return TowerUpgradedType }
func (WaveStarted) Type() EventType   { return WaveStartedType }
func (EnemySpawned) Type() EventType  { return EnemySpawnedType }
func (CombatTick) Type() EventType    { return CombatTickType }
func (EnemyKilled) Type() EventType   { return EnemyKilledType }
func (EnemyLeaked) Type() EventType   { return EnemyLeakedType }
func (WaveCompleted) Type() EventType { return WaveCompletedType }
func (MapResult) Type() EventType     { return MapResultType }

func (MapLoaded) isEvent()     {}
func (PhaseChanged) isEvent()  {}
func (CoinsChanged) isEvent()  {}
func (XPChanged) isEvent()     {}
func (TowerBuilt) isEvent()    {}
func (TowerUpgraded) isEvent() {}
func (WaveStarted) isEvent()   {}
func (EnemySpawned) isEvent()  {}
func (CombatTick) isEvent()    {}
func (EnemyKilled) isEvent()   {}
func (EnemyLeaked) isEvent()   {}
func (WaveCompleted) isEvent() {}
func (MapResult) isEvent()     {}
