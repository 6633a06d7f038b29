// internal/types/types.go
package types

import "fmt"

// EnemyID — идентификатор лодки в пределах сессии.
type EnemyID uint64

func (id EnemyID) String() string {
	return fmt.Sprintf("boat_%04d", uint64(id))
}

// TowerID — идентификатор башни в пределах сессии.
type TowerID uint64

func (id TowerID) String() string {
	return fmt.Sprintf("tower_%03d", uint64(id))
}

// Sequence is a monotonic id counter. The zero value starts at 1.
type Sequence struct {
	last uint64
}

// Next returns the next id.
func (s *Sequence) Next() uint64 {
	s.last++
	return s.last
}

// Last returns the most recently issued id, or 0.
func (s *Sequence) Last() uint64 {
	return s.last
}
