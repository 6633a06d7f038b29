// internal/app/errors.go
package app

import (
	"errors"

	"homeland/internal/system"
)

// Ошибки команд. Категории проверяются через errors.Is.
var (
	ErrPhaseViolation    = system.ErrPhaseViolation
	ErrUnknownReference  = system.ErrUnknownReference
	ErrOccupied          = system.ErrOccupied
	ErrInsufficientFunds = system.ErrInsufficientFunds
	ErrExhausted         = system.ErrExhausted

	ErrUnknownTower  = system.ErrUnknownTower
	ErrUnknownSlot   = system.ErrUnknownSlot
	ErrNoTowerAtSlot = system.ErrNoTowerAtSlot
	ErrSlotOccupied  = system.ErrSlotOccupied
	ErrMaxLevel      = system.ErrMaxLevel
	ErrNoMoreWaves   = system.ErrNoMoreWaves
	ErrWaveRunning   = system.ErrWaveRunning
)

// ErrNilContent is returned by NewGame when no content is given.
var ErrNilContent = errors.New("content is nil")
