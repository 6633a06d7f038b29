// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// SpeedButton cycles the simulation speed multiplier.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastToggleTime time.Time
	Multipliers    []float64
	CurrentState   int
	face           font.Face
}

func NewSpeedButton(x, y, size float32, multipliers []float64, face font.Face) *SpeedButton {
	if len(multipliers) == 0 {
		multipliers = []float64{1}
	}
	return &SpeedButton{X: x, Y: y, Size: size, Multipliers: multipliers, face: face}
}

func (b *SpeedButton) Multiplier() float64 {
	return b.Multipliers[b.CurrentState]
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.Multipliers)
	b.LastToggleTime = time.Now()
}

// IsClicked — попадание по кругу кнопки.
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastToggleTime).Seconds()
	size := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	vector.StrokeCircle(screen, b.X, b.Y, size, 2, color.White, true)
	label := fmt.Sprintf("x%g", b.Multiplier())
	text.Draw(screen, label, b.face, int(b.X)-len(label)*3, int(b.Y)+4, color.White)
}
