// internal/state/game_state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"homeland/internal/app"
	"homeland/internal/component"
	"homeland/internal/config"
	"homeland/internal/ui"
	"homeland/pkg/render"
)

var towerKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5}

// GameState — состояние игры
type GameState struct {
	sm     *StateMachine
	game   *app.Game
	logger *slog.Logger
	face   font.Face

	proj          render.Projection
	mapView       *ui.MapView
	hud           *ui.HUD
	indicator     *ui.PhaseIndicator
	speedButton   *ui.SpeedButton
	waveIndicator *ui.WaveIndicator

	towerTypes []string
	selected   int
	hoverSlot  string
	hint       string
}

func NewGameState(sm *StateMachine, game *app.Game, logger *slog.Logger) *GameState {
	if logger == nil {
		logger = slog.Default()
	}
	face := basicfont.Face7x13
	proj := render.NewProjection(config.ScreenWidth, config.ScreenHeight, config.MapMargin)
	return &GameState{
		sm:            sm,
		game:          game,
		logger:        logger,
		face:          face,
		proj:          proj,
		mapView:       ui.NewMapView(game, proj, render.DefaultPalette(), face),
		hud:           ui.NewHUD(face),
		indicator:     ui.NewPhaseIndicator(float32(config.ScreenWidth-config.IndicatorOffsetX), float32(config.IndicatorOffsetX), config.IndicatorRadius),
		speedButton:   ui.NewSpeedButton(float32(config.ScreenWidth-config.IndicatorOffsetX), float32(3*config.IndicatorOffsetX), config.IndicatorRadius*1.5, config.SpeedMultipliers, face),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, config.HUDOffsetY, face),
		towerTypes:    game.TowerTypes(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Update(deltaTime float64) error {
	if g.game.Phase() == component.PhaseMapResult && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for i, key := range towerKeys {
		if i < len(g.towerTypes) && inpututil.IsKeyJustPressed(key) {
			g.selected = i
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.speedButton.ToggleState()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if err := g.game.Pause(); err != nil {
			g.hint = err.Error()
		} else {
			g.sm.SetState(NewPauseState(g.sm, g, g.face))
			return nil
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.report(g.game.StartNextWave())
	}

	x, y := ebiten.CursorPosition()
	g.hoverSlot = ""
	if slot, ok := g.proj.SlotAt(g.game.Slots(), float64(x), float64(y), config.SlotRadius); ok {
		g.hoverSlot = slot.ID
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case g.speedButton.IsClicked(x, y):
			g.speedButton.ToggleState()
		case g.hoverSlot != "" && len(g.towerTypes) > 0:
			g.report(g.game.BuildTower(g.hoverSlot, g.towerTypes[g.selected]))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && g.hoverSlot != "" {
		g.report(g.game.UpgradeTower(g.hoverSlot))
	}

	g.game.Tick(deltaTime * g.speedButton.Multiplier())
	return nil
}

// report показывает отказ команды в HUD.
func (g *GameState) report(err error) {
	if err == nil {
		g.hint = ""
		return
	}
	g.hint = err.Error()
	g.logger.Debug("viewer command failed", "err", err)
}

func (g *GameState) selection() ui.Selection {
	sel := ui.Selection{Hint: g.hint}
	if len(g.towerTypes) == 0 {
		return sel
	}
	sel.TowerType = g.towerTypes[g.selected]
	if def, ok := g.game.TowerDefinition(sel.TowerType); ok {
		if level, ok := def.Level(1); ok {
			sel.Cost = level.Cost
		}
	}
	return sel
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.mapView.Draw(screen, g.game, g.hoverSlot)
	g.indicator.Draw(screen, snap.Phase)
	g.speedButton.Draw(screen)
	g.waveIndicator.Draw(screen, snap.CurrentWave, snap.TotalWaves)
	g.hud.Draw(screen, snap, g.selection())
}
