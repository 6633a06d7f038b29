package system

import (
	"errors"
	"testing"
)

func TestEconomyTransactions(t *testing.T) {
	economy := NewEconomy(1000)
	if !economy.CanAfford(500) {
		t.Fatalf("expected to afford 500")
	}
	if err := economy.Spend(250); err != nil {
		t.Fatalf("Spend returned error: %v", err)
	}
	if economy.Coins() != 750 {
		t.Errorf("expected 750, got %d", economy.Coins())
	}
	economy.Add(100)
	if economy.Coins() != 850 {
		t.Errorf("expected 850, got %d", economy.Coins())
	}
	economy.Add(-50)
	if economy.Coins() != 800 {
		t.Errorf("expected 800, got %d", economy.Coins())
	}
}

func TestEconomySpendRejectsWithoutChange(t *testing.T) {
	economy := NewEconomy(10)
	err := economy.Spend(11)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if economy.Coins() != 10 {
		t.Errorf("failed spend changed coins to %d", economy.Coins())
	}
	if err := economy.Spend(-1); err == nil {
		t.Errorf("negative spend should fail")
	}
}

func TestEconomyCanGoNegativeThroughPenalty(t *testing.T) {
	economy := NewEconomy(5)
	if got := economy.Add(-10); got != -5 {
		t.Errorf("expected -5, got %d", got)
	}
}

func TestProgressionFloorAtZero(t *testing.T) {
	progression := NewProgression(5)
	progression.Add(-20)
	if progression.XP() != 0 {
		t.Fatalf("expected xp 0, got %d", progression.XP())
	}
	progression.Add(12)
	if !progression.HasUnlock(10) {
		t.Errorf("expected unlock at 12 xp")
	}
	if progression.HasUnlock(13) {
		t.Errorf("unexpected unlock above total")
	}
}
