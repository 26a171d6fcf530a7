// internal/state/game_over_state.go
package state

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/leaderboard"
)

var _ State = (*GameOverState)(nil)

const topLoadTimeout = 2 * time.Second

var gameOverColor = color.RGBA{230, 60, 60, 255}

// GameOverState показывает итог забега и таблицу рекордов. R — новая игра.
// Таблица грузится в горутине: сначала дожидаемся записи своего результата.
type GameOverState struct {
	sm      *StateMachine
	session *Session
	final   app.Snapshot
	top     []leaderboard.Entry
	topCh   chan []leaderboard.Entry
	loaded  bool
}

func NewGameOverState(sm *StateMachine, session *Session, final app.Snapshot) *GameOverState {
	return &GameOverState{sm: sm, session: session, final: final, topCh: make(chan []leaderboard.Entry, 1)}
}

func (s *GameOverState) Enter() {
	recorder, store := s.session.Recorder, s.session.Store
	go func() {
		s.topCh <- collectTop(recorder, store)
	}()
}

// flusher — recorder, который умеет дождаться своей очереди.
type flusher interface {
	Flush()
}

// collectTop ждёт, пока recorder допишет очередь, и читает таблицу рекордов.
func collectTop(recorder interfaces.ScoreRecorder, store leaderboard.Store) []leaderboard.Entry {
	if f, ok := recorder.(flusher); ok {
		f.Flush()
	}
	return loadTop(store)
}

// loadTop читает таблицу рекордов; ошибки только логируются.
func loadTop(store leaderboard.Store) []leaderboard.Entry {
	if store == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), topLoadTimeout)
	defer cancel()

	top, err := store.Top(ctx, config.LeaderboardSize)
	if err != nil {
		log.Printf("Leaderboard unavailable: %v", err)
		return nil
	}
	return top
}

func (s *GameOverState) Update(deltaTime float64) {
	if !s.loaded {
		select {
		case s.top = <-s.topCh:
			s.loaded = true
		default:
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sm.SetState(NewGameState(s.sm, s.session))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{10, 10, 15, 255})
	face := s.session.Face
	if face == nil {
		return
	}

	x, y := config.ScreenWidth/2-120, 150
	text.Draw(screen, "GAME OVER", face, x, y, gameOverColor)
	y += 30
	for _, line := range s.summary() {
		text.Draw(screen, line, face, x, y, color.White)
		y += 20
	}

	y += 20
	text.Draw(screen, "Top scores", face, x, y, messageColor)
	y += 20
	if !s.loaded {
		text.Draw(screen, "Loading...", face, x, y, color.White)
	}
	for i, entry := range s.top {
		line := fmt.Sprintf("%2d. %-20s %d", i+1, entry.PlayerName, entry.Score)
		text.Draw(screen, line, face, x, y, color.White)
		y += 18
	}

	text.Draw(screen, "Press R to play again", face, x, config.ScreenHeight-60, messageColor)
}

func (s *GameOverState) summary() []string {
	st := s.final.Stats
	return []string{
		fmt.Sprintf("Score: %d", s.final.Score),
		fmt.Sprintf("Reached wave: %d", s.final.Wave),
		fmt.Sprintf("Enemies killed: %d", st.EnemiesKilled),
		fmt.Sprintf("Towers built: %d", st.TowersBuilt),
		fmt.Sprintf("Time: %.0fs", s.final.GameTime),
	}
}

func (s *GameOverState) Exit() {}
