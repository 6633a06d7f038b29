// pkg/pathing/path.go
package pathing

import (
	"errors"
	"math"
)

// ErrTooFewPoints is returned when a path is built from fewer than two waypoints.
var ErrTooFewPoints = errors.New("pathing: path requires at least 2 points")

// Point — координата в единицах карты.
type Point struct {
	X, Y float64
}

type segment struct {
	from, to Point
	length   float64 // в мировых единицах
}

// Path is a polyline over map waypoints. Segment lengths are measured in
// world units (map units multiplied by the scale given to New) and are fixed
// at construction.
type Path struct {
	points   []Point
	segments []segment
	length   float64
}

// New builds a path and precomputes its segment table.
func New(points []Point, scale float64) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	p := &Path{
		points:   append([]Point(nil), points...),
		segments: make([]segment, 0, len(points)-1),
	}
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y) * scale
		p.segments = append(p.segments, segment{from: a, to: b, length: segLen})
		p.length += segLen
	}
	return p, nil
}

// Length returns the total path length in world units.
func (p *Path) Length() float64 {
	return p.length
}

// Points returns a copy of the waypoints.
func (p *Path) Points() []Point {
	return append([]Point(nil), p.points...)
}

// PositionAtDistance maps a traveled distance to a point on the polyline,
// clamped to the first and last waypoints.
func (p *Path) PositionAtDistance(distance float64) Point {
	if distance <= 0 {
		return p.points[0]
	}
	if distance >= p.length {
		return p.points[len(p.points)-1]
	}

	remaining := distance
	for _, seg := range p.segments {
		if remaining <= seg.length {
			// Нулевой сегмент вырождается в начальную точку
			t := 0.0
			if seg.length > 0 {
				t = remaining / seg.length
			}
			return Point{
				X: seg.from.X + (seg.to.X-seg.from.X)*t,
				Y: seg.from.Y + (seg.to.Y-seg.from.Y)*t,
			}
		}
		remaining -= seg.length
	}
	return p.points[len(p.points)-1]
}

// Distance returns the euclidean distance between two map points, scaled to world units.
func Distance(a, b Point, scale float64) float64 {
	return math.Hypot((a.X-b.X)*scale, (a.Y-b.Y)*scale)
}
