// internal/app/game.go
package app

import (
	"log"
	"math"

	"github.com/google/uuid"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/pathmap"
)

// Options — необязательные коллабораторы движка.
type Options struct {
	Recorder interfaces.ScoreRecorder // получает итог забега через RecordFinalScore; nil — никуда
	Rng      *utils.PRNGService       // nil — сид из config.Sim

	// Setup вызывается до старта первой волны, чтобы подписчики увидели WaveStarted(1).
	Setup func(g *Game)
}

// Game holds the simulation state and advances it one tick at a time.
type Game struct {
	Map              *pathmap.Map
	Config           config.Sim
	RunID            string
	ECS              *entity.ECS
	MovementSystem   *system.MovementSystem
	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	EconomySystem    *system.EconomySystem
	StateSystem      *system.StateSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	recorder        interfaces.ScoreRecorder
	isPaused        bool
	needsClockSync  bool // первый тик после паузы только синхронизирует часы
	speedMultiplier float64
	finalScore      int
	scoreLatched    bool // GameOver зафиксировал итог
	scoreRecorded   bool // итог уже отдан recorder'у
}

// NewGame initializes a new run on the given map and starts wave 1.
func NewGame(cfg config.Sim, gameMap *pathmap.Map, opts Options) *Game {
	if gameMap == nil || gameMap.Path == nil {
		panic("gameMap cannot be nil")
	}

	rng := opts.Rng
	if rng == nil {
		rng = utils.NewPRNGService(cfg.Seed)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Map:              gameMap,
		Config:           cfg,
		RunID:            uuid.NewString(),
		ECS:              ecs,
		MovementSystem:   system.NewMovementSystem(ecs, gameMap.Path),
		WaveSystem:       system.NewWaveSystem(ecs, gameMap, eventDispatcher, rng, cfg),
		CombatSystem:     system.NewCombatSystem(ecs, gameMap.Path, eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(ecs, gameMap, eventDispatcher),
		EconomySystem:    system.NewEconomySystem(ecs, eventDispatcher),
		StateSystem:      system.NewStateSystem(ecs, eventDispatcher),
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		recorder:         opts.Recorder,
		speedMultiplier:  1.0,
	}
	g.EconomySystem.Reset(cfg.StartingMoney, cfg.StartingLives)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.GameOver, listener)
	if opts.Setup != nil {
		opts.Setup(g)
	}

	log.Printf("Run %s started (seed %d)", g.RunID, rng.Seed())
	g.WaveSystem.Start()
	return g
}

// GameEventListener handles game-level events.
type GameEventListener struct {
	game *Game
}

// OnEvent processes events for the game.
func (l *GameEventListener) OnEvent(e event.Event) {
	if e.Type == event.GameOver {
		if data, ok := e.Data.(event.GameOverData); ok {
			l.game.latchScore(data.Score)
		}
	}
}

// Tick advances the simulation by deltaTime seconds of host time.
// Порядок фаз фиксирован: волны, враги, башни, снаряды, очистка, проверка конца.
func (g *Game) Tick(deltaTime float64) {
	if g.IsGameOver() || g.isPaused {
		return
	}
	if g.needsClockSync {
		g.needsClockSync = false
		return
	}
	if math.IsNaN(deltaTime) || math.IsInf(deltaTime, 0) || deltaTime < 0 {
		deltaTime = 0
	}
	deltaTime *= g.speedMultiplier
	g.ECS.GameTime += deltaTime

	g.WaveSystem.Update()
	g.MovementSystem.Update(deltaTime)
	g.cleanupDestroyedEntities()
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.cleanupDestroyedEntities()
	g.StateSystem.Update()
}

// cleanupDestroyedEntities убирает дошедших и убитых врагов.
// Каждый враг удаляется ровно один раз, и вместе с удалением применяется ровно один эффект экономики.
func (g *Game) cleanupDestroyedEntities() {
	for _, id := range g.ECS.EnemyIDs() {
		enemy := g.ECS.Enemies[id]
		health := g.ECS.Healths[id]
		data := event.EnemyData{ID: id, Reward: enemy.Reward, Wave: enemy.Wave}

		switch {
		case g.MovementSystem.HasArrived(id):
			g.ECS.RemoveEnemy(id)
			g.ECS.Stats.EnemiesLeaked++
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: data})
		case health == nil || health.Value <= 0:
			g.ECS.RemoveEnemy(id)
			g.ECS.Stats.EnemiesKilled++
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
		}
	}
}

// latchScore запоминает итог. Внутри тика recorder не вызывается: запись может ходить в сеть.
func (g *Game) latchScore(score int) {
	if g.scoreLatched {
		return
	}
	g.finalScore = score
	g.scoreLatched = true
}

// FinalScore returns the score fixed at game over; ok is false while the run is going.
func (g *Game) FinalScore() (score int, ok bool) {
	return g.finalScore, g.scoreLatched
}

// RecordFinalScore hands the final score to the recorder exactly once per run.
// The host calls it after IsGameOver, outside Tick. Returns false if there was
// nothing to record or it was already recorded.
func (g *Game) RecordFinalScore() bool {
	if !g.scoreLatched || g.scoreRecorded {
		return false
	}
	g.scoreRecorded = true
	if g.recorder != nil {
		g.recorder.RecordScore(g.Config.PlayerName, g.finalScore)
	}
	return true
}

// Pause останавливает симуляцию. Запросы на постройку продолжают работать.
func (g *Game) Pause() {
	g.isPaused = true
}

// Resume снимает паузу; следующий тик будет синхронизацией часов без движения.
func (g *Game) Resume() {
	if !g.isPaused {
		return
	}
	g.isPaused = false
	g.needsClockSync = true
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) IsGameOver() bool {
	return g.ECS.Phase == component.GameOverPhase
}

// SetSpeed sets the game speed multiplier clamped to [MinGameSpeed, MaxGameSpeed]
// and returns the value actually applied.
func (g *Game) SetSpeed(multiplier float64) float64 {
	if math.IsNaN(multiplier) {
		return g.speedMultiplier
	}
	g.speedMultiplier = math.Max(config.MinGameSpeed, math.Min(config.MaxGameSpeed, multiplier))
	return g.speedMultiplier
}

func (g *Game) Speed() float64 {
	return g.speedMultiplier
}
