// internal/component/game_state.go
package component

import "fmt"

// Phase — состояние игровой сессии.
type Phase int

const (
	PhaseBoot Phase = iota
	PhaseMapLoad
	PhaseBuild
	PhaseWaveRunning
	PhaseWaveResult
	PhaseMapResult
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseBoot:
		return "boot"
	case PhaseMapLoad:
		return "map_load"
	case PhaseBuild:
		return "build_phase"
	case PhaseWaveRunning:
		return "wave_running"
	case PhaseWaveResult:
		return "wave_result"
	case PhaseMapResult:
		return "map_result"
	case PhasePaused:
		return "paused"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// AllowsBuild reports whether build, upgrade and wave start commands are accepted.
func (p Phase) AllowsBuild() bool {
	return p == PhaseBuild || p == PhaseWaveResult
}

// Outcome — итог карты.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}
