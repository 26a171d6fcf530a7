// internal/state/game_state.go
package state

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/metrics"
	"go-wave-defense/internal/ui"
	"go-wave-defense/pkg/render"
)

var _ State = (*GameState)(nil)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	session       *Session
	game          *app.Game
	renderer      *render.Renderer
	input         *InputController
	waveIndicator *ui.WaveIndicator
	infoPanel     *ui.InfoPanel
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	gameLogic := session.NewGame()

	gs := &GameState{
		sm:            sm,
		session:       session,
		game:          gameLogic,
		renderer:      render.NewRenderer(config.ScreenWidth, config.ScreenHeight, render.DefaultMapColors(), session.Face),
		input:         NewInputController(gameLogic, config.MapWidth),
		waveIndicator: ui.NewWaveIndicator(config.MapWidth+config.PanelWidth/2, 40),
		infoPanel:     ui.NewInfoPanel(image.Rect(config.MapWidth, 320, config.ScreenWidth, 470), session.Face),
	}
	gameLogic.EventDispatcher.SubscribeAll(gs, event.TowerPlaced, event.TowerRemoved)
	return gs
}

// OnEvent показывает итог покупки и продажи башен.
func (g *GameState) OnEvent(e event.Event) {
	data, ok := e.Data.(event.TowerData)
	if !ok {
		return
	}
	switch e.Type {
	case event.TowerPlaced:
		g.input.Flash(fmt.Sprintf("-$%d", data.Cost))
	case event.TowerRemoved:
		g.input.Flash(fmt.Sprintf("Refund +$%d", data.Refund))
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if g.handleInput() == ActionTogglePause {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	start := time.Now()
	g.game.Tick(deltaTime)
	metrics.RecordTick(time.Since(start))

	g.input.Update(deltaTime)
	g.input.Palette.Refresh(g.game.ECS.Economy.Money)

	if g.game.IsGameOver() {
		// Итог отдаётся recorder'у уже после тика
		g.game.RecordFinalScore()
		g.sm.SetState(NewGameOverState(g.sm, g.session, g.game.Snapshot()))
	}
}

// handleInput опрашивает клавиатуру и мышь. Используется и из паузы.
func (g *GameState) handleInput() Action {
	digitKeys := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}
	for slot, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.input.ArmSlot(slot)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.input.Cancel()
	}

	action := ActionNone
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		action = g.input.LeftClick(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.input.RightClick(x, y)
	}
	return action
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, snap)

	face := g.session.Face
	g.input.Palette.Draw(screen, face)
	g.input.SpeedButton.Draw(screen, face)
	g.input.PauseButton.SetPaused(snap.Paused)
	g.input.PauseButton.Draw(screen)
	g.waveIndicator.Draw(screen, face, snap.Wave, snap.WaveInProgress, snap.BreakSeconds)

	for _, t := range snap.Towers {
		if t.IsSelected {
			g.infoPanel.Draw(screen, &ui.TowerInfo{Type: t.Type, Range: t.Range})
			break
		}
	}

	if msg := g.input.Message(); msg != "" && face != nil {
		text.Draw(screen, msg, face, 10, config.ScreenHeight-20, messageColor)
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
