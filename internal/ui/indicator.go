// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"homeland/internal/component"
	"homeland/internal/config"
)

// PhaseIndicator — кружок, цвет которого показывает фазу сессии.
// При смене фазы он коротко «пульсирует».
type PhaseIndicator struct {
	X, Y       float32
	Radius     float32
	lastPhase  component.Phase
	lastChange time.Time
}

func NewPhaseIndicator(x, y, radius float32) *PhaseIndicator {
	return &PhaseIndicator{X: x, Y: y, Radius: radius}
}

func phaseColor(p component.Phase) color.RGBA {
	switch p {
	case component.PhaseBuild:
		return config.BuildPhaseColor
	case component.PhaseWaveRunning:
		return config.WavePhaseColor
	case component.PhasePaused:
		return config.PausedPhaseColor
	default:
		return config.ResultPhaseColor
	}
}

// Draw отрисовывает индикатор
func (i *PhaseIndicator) Draw(screen *ebiten.Image, phase component.Phase) {
	if phase != i.lastPhase {
		i.lastPhase = phase
		i.lastChange = time.Now()
	}
	elapsed := time.Since(i.lastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, phaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, config.StrokeWidth, color.White, true)
}
