// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"homeland/internal/config"
)

// MenuState — стартовый экран. Space запускает игру.
type MenuState struct {
	sm    *StateMachine
	title string
	next  func() State
}

func NewMenuState(sm *StateMachine, title string, next func() State) *MenuState {
	return &MenuState{sm: sm, title: title, next: next}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(m.next())
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255}) // Чёрный экран
	face := basicfont.Face7x13
	text.Draw(screen, m.title, face, config.ScreenWidth/2-len(m.title)*7/2, config.ScreenHeight/2-10, config.TextLightColor)
	const hint = "Press Space to start"
	text.Draw(screen, hint, face, config.ScreenWidth/2-len(hint)*7/2, config.ScreenHeight/2+10, config.TextLightColor)
}

func (m *MenuState) Exit() {}
