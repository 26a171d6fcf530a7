// cmd/game/main.go
package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/image/font/basicfont"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/leaderboard"
	"go-wave-defense/internal/metrics"
	"go-wave-defense/internal/state"
)

const startFromGame = true // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine *state.StateMachine
	clock        *app.FrameClock
}

func (a *AppGame) Update() error {
	deltaTime := a.clock.Delta(time.Now())
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func openStore(cfg config.Store) leaderboard.Store {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, keeping scores in memory")
		return leaderboard.NewMemoryStore()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := leaderboard.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Printf("Postgres unavailable (%v), keeping scores in memory", err)
		return leaderboard.NewMemoryStore()
	}
	return store
}

func main() {
	cfg := config.Load()
	if cfg.TowersFile != "" {
		if err := defs.LoadTowerDefinitions(cfg.TowersFile); err != nil {
			log.Fatalf("Failed to load towers: %v", err)
		}
	}

	// pprof регистрируется в DefaultServeMux при импорте
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Println(http.ListenAndServe(cfg.Server.DebugAddr, nil))
	}()

	store := openStore(cfg.Store)
	recorder := leaderboard.NewRecorder(store)
	defer recorder.Close()

	var runMetrics *metrics.Listener
	session := &state.Session{
		Sim:      cfg.Sim,
		Store:    store,
		Recorder: recorder,
		Face:     basicfont.Face7x13,
		OnGameCreated: func(g *app.Game) {
			// Предыдущий забег больше не считается
			if runMetrics != nil {
				runMetrics.Detach()
			}
			runMetrics = metrics.Attach(g.EventDispatcher)
		},
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		sm.SetState(state.NewGameState(sm, session)) // Устанавливаем состояние игры
	} else {
		sm.SetState(state.NewMenuState(sm, session)) // Устанавливаем состояние меню
	}
	game := &AppGame{
		stateMachine: sm,
		clock:        app.NewFrameClock(config.MaxDeltaTime),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wave Defense")
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
