// internal/system/economy.go
package system

import "fmt"

// Economy is the coin ledger. Coins may go negative through penalties;
// that is how a lost map is detected.
type Economy struct {
	coins int
}

func NewEconomy(coins int) *Economy {
	return &Economy{coins: coins}
}

func (e *Economy) Coins() int {
	return e.coins
}

func (e *Economy) CanAfford(amount int) bool {
	return e.coins >= amount
}

// Spend debits amount only if the balance covers it.
func (e *Economy) Spend(amount int) error {
	if amount < 0 {
		return fmt.Errorf("spend: negative amount %d", amount)
	}
	if !e.CanAfford(amount) {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, amount, e.coins)
	}
	e.coins -= amount
	return nil
}

// Add applies a signed delta without any floor and returns the new balance.
func (e *Economy) Add(delta int) int {
	e.coins += delta
	return e.coins
}
