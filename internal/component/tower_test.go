package component

import "testing"

func TestTowerCooldown(t *testing.T) {
	tower := &Tower{Level: 1}
	if !tower.CanAttack() {
		t.Fatalf("fresh tower should be able to attack")
	}

	tower.ResetCooldown(4)
	if tower.Cooldown != 0.25 || tower.CanAttack() {
		t.Fatalf("expected cooldown 0.25, got %v", tower.Cooldown)
	}

	tower.TickCooldown(1)
	if tower.Cooldown != 0 || !tower.CanAttack() {
		t.Errorf("cooldown must floor at zero, got %v", tower.Cooldown)
	}
}

func TestTowerFallbackPeriod(t *testing.T) {
	for _, speed := range []float64{0, -3} {
		tower := &Tower{}
		tower.ResetCooldown(speed)
		if tower.Cooldown != 1.0 {
			t.Errorf("ResetCooldown(%v) gave %v, want 1.0", speed, tower.Cooldown)
		}
	}
}

func TestTowerIgnoresNonPositiveDelta(t *testing.T) {
	tower := &Tower{Cooldown: 0.5}
	tower.TickCooldown(-1)
	tower.TickCooldown(0)
	if tower.Cooldown != 0.5 {
		t.Errorf("cooldown changed to %v", tower.Cooldown)
	}
}
