// pkg/render/projection.go
package render

import (
	"math"

	"homeland/internal/defs"
	"homeland/pkg/pathing"
)

// Projection maps map units ([0,1] on both axes) to screen pixels.
type Projection struct {
	OffsetX, OffsetY float64
	Width, Height    float64
}

func NewProjection(screenWidth, screenHeight int, margin float64) Projection {
	return Projection{
		OffsetX: margin,
		OffsetY: margin,
		Width:   float64(screenWidth) - 2*margin,
		Height:  float64(screenHeight) - 2*margin,
	}
}

func (p Projection) ToScreen(pt pathing.Point) (float32, float32) {
	return float32(p.OffsetX + pt.X*p.Width), float32(p.OffsetY + pt.Y*p.Height)
}

func (p Projection) ToMap(x, y float64) pathing.Point {
	if p.Width == 0 || p.Height == 0 {
		return pathing.Point{}
	}
	return pathing.Point{X: (x - p.OffsetX) / p.Width, Y: (y - p.OffsetY) / p.Height}
}

// SlotAt returns the slot nearest to the screen point, if it lies within radius pixels.
func (p Projection) SlotAt(slots []defs.BuildSlot, x, y, radius float64) (defs.BuildSlot, bool) {
	var (
		best  defs.BuildSlot
		found bool
		bestD = math.Inf(1)
	)
	for _, slot := range slots {
		sx, sy := p.ToScreen(slot.Point())
		d := math.Hypot(float64(sx)-x, float64(sy)-y)
		if d <= radius && d < bestD {
			best, bestD, found = slot, d, true
		}
	}
	return best, found
}
