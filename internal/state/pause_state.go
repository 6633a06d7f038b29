// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"homeland/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	face          font.Face
}

func NewPauseState(sm *StateMachine, prevState *GameState, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		face:          face,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) error {
	if !inpututil.IsKeyJustPressed(ebiten.KeyP) && !inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil
	}
	if err := s.previousState.game.Resume(); err != nil {
		s.previousState.report(err)
	}
	s.stateMachine.SetState(s.previousState)
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay, false)

	const pauseText = "PAUSED"
	x := config.ScreenWidth/2 - len(pauseText)*7/2
	text.Draw(screen, pauseText, s.face, x, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
