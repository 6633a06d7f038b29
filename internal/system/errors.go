// internal/system/errors.go
package system

import "errors"

// Категории отказов. Конкретные ошибки ниже разворачиваются в одну из них через errors.Is.
var (
	ErrPhaseViolation    = errors.New("phase violation")
	ErrUnknownReference  = errors.New("unknown reference")
	ErrOccupied          = errors.New("occupied resource")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrExhausted         = errors.New("exhausted progression")
)

var (
	ErrUnknownTower  error = &kindError{msg: "unknown tower type", kind: ErrUnknownReference}
	ErrUnknownEnemy  error = &kindError{msg: "unknown enemy type", kind: ErrUnknownReference}
	ErrUnknownSlot   error = &kindError{msg: "unknown slot", kind: ErrUnknownReference}
	ErrNoTowerAtSlot error = &kindError{msg: "no tower at slot", kind: ErrUnknownReference}
	ErrSlotOccupied  error = &kindError{msg: "slot is occupied", kind: ErrOccupied}
	ErrMaxLevel      error = &kindError{msg: "tower is already max level", kind: ErrExhausted}
	ErrNoMoreWaves   error = &kindError{msg: "no more waves", kind: ErrExhausted}
	ErrWaveRunning   error = &kindError{msg: "wave already running", kind: ErrExhausted}
)

// ErrNoWaves is a construction error: a wave system needs at least one wave.
var ErrNoWaves = errors.New("at least one wave is required")

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
