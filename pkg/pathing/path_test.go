package pathing

import (
	"errors"
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewRejectsSinglePoint(t *testing.T) {
	if _, err := New([]Point{{X: 0, Y: 0}}, 10); !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("expected ErrTooFewPoints, got %v", err)
	}
}

func TestLengthIsScaled(t *testing.T) {
	p, err := New([]Point{{0, 0}, {3, 4}, {3, 5}}, 10)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if !approx(p.Length(), 60) {
		t.Errorf("expected length 60, got %v", p.Length())
	}
}

func TestPositionAtDistance(t *testing.T) {
	p, err := New([]Point{{0, 0.5}, {1, 0.5}, {1, 1.5}}, 10)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	tests := []struct {
		name     string
		distance float64
		want     Point
	}{
		{"negative clamps to start", -5, Point{0, 0.5}},
		{"zero is start", 0, Point{0, 0.5}},
		{"inside first segment", 2.5, Point{0.25, 0.5}},
		{"segment boundary", 10, Point{1, 0.5}},
		{"inside second segment", 15, Point{1, 1.0}},
		{"end", 20, Point{1, 1.5}},
		{"past end clamps", 99, Point{1, 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.PositionAtDistance(tt.distance)
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) {
				t.Errorf("PositionAtDistance(%v) = %+v, want %+v", tt.distance, got, tt.want)
			}
		})
	}
}

func TestZeroLengthSegmentDoesNotDivideByZero(t *testing.T) {
	p, err := New([]Point{{0, 0}, {0, 0}, {1, 0}}, 10)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	got := p.PositionAtDistance(5)
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Fatalf("got NaN position %+v", got)
	}
	if !approx(got.X, 0.5) || !approx(got.Y, 0) {
		t.Errorf("expected (0.5, 0), got %+v", got)
	}
}

func TestPointsReturnsCopy(t *testing.T) {
	p, _ := New([]Point{{0, 0}, {1, 0}}, 1)
	pts := p.Points()
	pts[0].X = 42
	if p.PositionAtDistance(0).X != 0 {
		t.Errorf("mutating Points() result changed the path")
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Point{0.25, 0.5}, Point{0.23, 0.5}, 10); !approx(d, 0.2) {
		t.Errorf("expected 0.2, got %v", d)
	}
}
