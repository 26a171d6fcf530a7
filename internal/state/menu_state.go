// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-wave-defense/internal/config"
)

// MenuState — стартовый экран, Space начинает игру
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255}) // Чёрный экран
	if m.session.Face == nil {
		return
	}
	text.Draw(screen, "WAVE DEFENSE", m.session.Face, config.ScreenWidth/2-45, config.ScreenHeight/2-20, color.White)
	text.Draw(screen, "Press Space to start", m.session.Face, config.ScreenWidth/2-70, config.ScreenHeight/2+10, messageColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
