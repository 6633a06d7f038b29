package types

import "testing"

func TestSequenceIsMonotonic(t *testing.T) {
	var seq Sequence
	for want := uint64(1); want <= 3; want++ {
		if got := seq.Next(); got != want {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}
	if seq.Last() != 3 {
		t.Errorf("Last() = %d, want 3", seq.Last())
	}
}

func TestIDFormatting(t *testing.T) {
	if s := EnemyID(7).String(); s != "boat_0007" {
		t.Errorf("unexpected enemy id %q", s)
	}
	if s := TowerID(12).String(); s != "tower_012" {
		t.Errorf("unexpected tower id %q", s)
	}
}
