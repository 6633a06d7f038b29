// internal/interfaces/game.go
package interfaces

import (
	"homeland/internal/app"
	"homeland/internal/component"
	"homeland/internal/defs"
	"homeland/pkg/pathing"
)

// GameView — то, что рендеру можно читать из сессии. Мутаций нет.
type GameView interface {
	Snapshot() app.Snapshot
	Path() *pathing.Path
	Slots() []defs.BuildSlot
	Towers() []*component.Tower
	Enemies() []*component.Enemy
	TowerDefinition(towerType string) (defs.TowerDefinition, bool)
}

var _ GameView = (*app.Game)(nil)
