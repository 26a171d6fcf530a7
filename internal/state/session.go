// internal/state/session.go
package state

import (
	"golang.org/x/image/font"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/leaderboard"
	"go-wave-defense/pkg/pathmap"
)

// Session — всё, что живёт дольше одного забега: настройки, таблица рекордов, шрифт.
type Session struct {
	Sim      config.Sim
	Store    leaderboard.Store
	Recorder interfaces.ScoreRecorder
	Face     font.Face

	// OnGameCreated вызывается для каждого нового забега до первой волны
	// (метрики подписываются тут и видят WaveStarted(1)).
	OnGameCreated func(g *app.Game)
}

// NewGame starts a fresh run on the default map sized to the play area.
func (s *Session) NewGame() *app.Game {
	gameMap := pathmap.DefaultMap(config.MapWidth, config.ScreenHeight)
	return app.NewGame(s.Sim, gameMap, app.Options{
		Recorder: s.Recorder,
		Setup:    s.OnGameCreated,
	})
}
