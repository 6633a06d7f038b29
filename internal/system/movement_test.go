package system

import (
	"testing"

	"homeland/internal/component"
)

func TestMovementSeparatesLeaks(t *testing.T) {
	moves := NewMovementSystem(straightPath(t))

	slow := boat(1, 100, 0)
	slow.Speed = 1
	fast := boat(2, 100, 9.5)
	fast.Speed = 1
	slowed := boat(3, 100, 9.5)
	slowed.Speed = 1
	slowed.Slow = component.SlowEffect{Percent: 90, Remaining: 5}

	alive, leaked := moves.Tick(1, []*component.Enemy{slow, fast, slowed})

	if len(leaked) != 1 || leaked[0] != fast || !fast.Leaked {
		t.Fatalf("expected only the fast boat to leak, got %+v", leaked)
	}
	if len(alive) != 2 || alive[0] != slow || alive[1] != slowed {
		t.Fatalf("unexpected survivors: %+v", alive)
	}
	if slow.Distance != 1 {
		t.Errorf("slow boat distance = %v, want 1", slow.Distance)
	}
	if !approx(slowed.Distance, 9.7) {
		t.Errorf("slowed boat distance = %v, want 9.7 (speed floor 20%%)", slowed.Distance)
	}
}

func TestMovementIgnoresNonPositiveDelta(t *testing.T) {
	moves := NewMovementSystem(straightPath(t))
	enemy := boat(1, 100, 9.99)
	alive, leaked := moves.Tick(0, []*component.Enemy{enemy})
	if len(alive) != 1 || leaked != nil || enemy.Distance != 9.99 {
		t.Errorf("dt=0 moved boats")
	}
}
