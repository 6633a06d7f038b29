// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"homeland/internal/app"
	"homeland/internal/component"
	"homeland/internal/config"
)

// HUD prints the session snapshot and the current build selection.
type HUD struct {
	face font.Face
}

func NewHUD(face font.Face) *HUD {
	return &HUD{face: face}
}

// Selection — выбранный тип башни и подсказка по слоту под курсором.
type Selection struct {
	TowerType string
	Cost      int
	Hint      string
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot, sel Selection) {
	lines := []string{
		fmt.Sprintf("Phase: %s", snap.Phase),
		fmt.Sprintf("Coins: %d   XP: %d", snap.Coins, snap.XP),
		fmt.Sprintf("Wave: %d/%d   Boats left: %d", snap.CurrentWave, snap.TotalWaves, snap.EnemiesRemaining),
		fmt.Sprintf("Towers: %d", snap.TowersBuilt),
		fmt.Sprintf("Build: %s (%d)", sel.TowerType, sel.Cost),
	}
	if sel.Hint != "" {
		lines = append(lines, sel.Hint)
	}
	if snap.Phase == component.PhaseMapResult {
		lines = append(lines, fmt.Sprintf("Result: %s, next map unlocked: %t", snap.Outcome, snap.NextMapUnlocked))
	}

	y := config.HUDOffsetY
	for _, line := range lines {
		text.Draw(screen, line, h.face, config.HUDOffsetX, y, config.TextLightColor)
		y += config.HUDLineHeight
	}
}
