// internal/system/movement.go
package system

import (
	"homeland/internal/component"
	"homeland/pkg/pathing"
)

// MovementSystem двигает лодки вдоль пути и отделяет дошедших до конца.
type MovementSystem struct {
	path *pathing.Path
}

func NewMovementSystem(path *pathing.Path) *MovementSystem {
	return &MovementSystem{path: path}
}

// Tick moves every boat by dt. It returns the boats still on the path and,
// in input order, the ones that leaked this tick. The input slice is reused.
func (s *MovementSystem) Tick(dt float64, enemies []*component.Enemy) (alive, leaked []*component.Enemy) {
	if dt <= 0 {
		return enemies, nil
	}
	alive = enemies[:0]
	for _, enemy := range enemies {
		if enemy.Move(dt, s.path.Length()) {
			leaked = append(leaked, enemy)
			continue
		}
		alive = append(alive, enemy)
	}
	clear(enemies[len(alive):])
	return alive, leaked
}
