// internal/ui/map_view.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"homeland/internal/config"
	"homeland/internal/interfaces"
	"homeland/pkg/render"
)

// MapView draws the path, build slots, towers and boats of a session.
type MapView struct {
	proj     render.Projection
	palette  render.Palette
	face     font.Face
	mapImage *ebiten.Image // предрендеренная река
}

func NewMapView(view interfaces.GameView, proj render.Projection, palette render.Palette, face font.Face) *MapView {
	m := &MapView{proj: proj, palette: palette, face: face}
	m.mapImage = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	m.renderMapImage(view)
	return m
}

func (m *MapView) renderMapImage(view interfaces.GameView) {
	m.mapImage.Fill(m.palette.Background)
	points := view.Path().Points()
	for i := 1; i < len(points); i++ {
		x0, y0 := m.proj.ToScreen(points[i-1])
		x1, y1 := m.proj.ToScreen(points[i])
		vector.StrokeLine(m.mapImage, x0, y0, x1, y1, config.PathWidth, m.palette.Water, true)
	}
	// скругляем изломы
	for _, p := range points {
		x, y := m.proj.ToScreen(p)
		vector.DrawFilledCircle(m.mapImage, x, y, config.PathWidth/2, m.palette.Water, true)
	}
}

// Draw рисует кадр. hoverSlot подсвечивает слот под курсором.
func (m *MapView) Draw(screen *ebiten.Image, view interfaces.GameView, hoverSlot string) {
	screen.DrawImage(m.mapImage, nil)

	for _, slot := range view.Slots() {
		x, y := m.proj.ToScreen(slot.Point())
		c := m.palette.Slot
		if slot.ID == hoverSlot {
			c = m.palette.SlotHover
		}
		vector.StrokeCircle(screen, x, y, config.SlotRadius, config.StrokeWidth, c, true)
	}

	for _, tower := range view.Towers() {
		x, y := m.proj.ToScreen(tower.Position)
		c := m.palette.Slot
		if def, ok := view.TowerDefinition(tower.DefID); ok {
			c = m.palette.TowerColor(def.Effect)
		}
		vector.DrawFilledCircle(screen, x, y, config.TowerRadius+config.StrokeWidth, render.DarkenColor(c), true)
		vector.DrawFilledCircle(screen, x, y, config.TowerRadius, c, true)
		text.Draw(screen, strconv.Itoa(tower.Level), m.face, int(x)-3, int(y)+4, render.DarkenColor(render.DarkenColor(c)))
	}

	path := view.Path()
	for _, enemy := range view.Enemies() {
		x, y := m.proj.ToScreen(path.PositionAtDistance(enemy.Distance))
		vector.DrawFilledCircle(screen, x, y, config.EnemyRadius, m.palette.EnemyColor(enemy), true)

		bx := x - config.HPBarWidth/2
		by := y - config.EnemyRadius - config.HPBarHeight - 2
		vector.DrawFilledRect(screen, bx, by, config.HPBarWidth, config.HPBarHeight, m.palette.HPBack, false)
		if enemy.MaxHP > 0 {
			fill := float32(enemy.HP / enemy.MaxHP)
			vector.DrawFilledRect(screen, bx, by, config.HPBarWidth*fill, config.HPBarHeight, m.palette.HPFill, false)
		}
	}
}
