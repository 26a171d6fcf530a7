// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-defense/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

var (
	overlayColor = color.RGBA{0, 0, 0, 128}
	messageColor = color.RGBA{255, 230, 120, 255}
)

// PauseState останавливает движок. Постройка и продажа башен при этом работают.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.game.Pause()
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if s.previousState.handleInput() == ActionTogglePause {
		unpause = true
	}
	s.previousState.input.Update(deltaTime)
	s.previousState.input.Palette.Refresh(s.previousState.game.ECS.Economy.Money)

	if unpause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, float32(config.MapWidth), float32(config.ScreenHeight), overlayColor, false)
	if face := s.previousState.session.Face; face != nil {
		pauseText := "PAUSED"
		bounds := text.BoundString(face, pauseText)
		text.Draw(screen, pauseText, face, (config.MapWidth-bounds.Dx())/2, config.ScreenHeight/2, color.White)
	}
}

// Exit снимает паузу; первый тик после неё только синхронизирует часы.
func (s *PauseState) Exit() {
	s.previousState.game.Resume()
}
