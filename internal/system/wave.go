// internal/system/wave.go
package system

import (
	"log"
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/pathmap"
)

// EnemyStats — готовые характеристики врага перед появлением.
type EnemyStats struct {
	Health         float64
	Speed          float64
	Reward         int
	IsArmored      bool
	IsCamo         bool
	IsRegenerating bool
	IsPowerUp      bool
	IsBoss         bool
	Wave           int
}

// WaveSystem — планировщик волн: SPAWNING -> BREAK -> SPAWNING ...
// Считает в тиках, а не в секундах, поэтому скорость игры на него не влияет.
type WaveSystem struct {
	ecs             *entity.ECS
	gameMap         *pathmap.Map
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	cfg             config.Sim
}

func NewWaveSystem(ecs *entity.ECS, gameMap *pathmap.Map, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, cfg config.Sim) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		gameMap:         gameMap,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		cfg:             cfg,
	}
}

// EnemiesForWave returns how many enemies wave n contains.
func (s *WaveSystem) EnemiesForWave(n int) int {
	count := s.cfg.InitialEnemiesPerWave + (n-1)*s.cfg.EnemiesIncreasePerWave
	if count < 0 {
		return 0
	}
	return count
}

// Start запускает первую волну. Вызывается один раз при создании игры.
func (s *WaveSystem) Start() {
	s.startWave(1)
}

func (s *WaveSystem) Update() {
	wave := s.ecs.Wave
	if wave.Number == 0 {
		return
	}

	wave.TickCounter++
	if wave.InProgress {
		if wave.TickCounter >= s.cfg.SpawnDelayTicks && wave.Spawned < wave.EnemyCount {
			s.Spawn(s.RollEnemy(wave.Number))
			wave.Spawned++
			wave.TickCounter = 0
		}
	} else if wave.TickCounter >= s.cfg.WaveBreakTicks && len(s.ecs.Enemies) == 0 {
		s.startWave(wave.Number + 1)
	}

	// Волна закончена только когда поле пустое, иначе волны наложатся.
	if wave.InProgress && wave.Spawned >= wave.EnemyCount && len(s.ecs.Enemies) == 0 {
		wave.InProgress = false
		wave.TickCounter = 0
		log.Printf("Wave %d cleared", wave.Number)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveEnded,
			Data: event.WaveData{Number: wave.Number, EnemyCount: wave.EnemyCount},
		})
	}
}

// BreakTicksLeft — сколько тиков осталось до следующей волны (0 во время волны).
func (s *WaveSystem) BreakTicksLeft() int {
	wave := s.ecs.Wave
	if wave.InProgress {
		return 0
	}
	left := s.cfg.WaveBreakTicks - wave.TickCounter
	if left < 0 {
		return 0
	}
	return left
}

func (s *WaveSystem) startWave(number int) {
	wave := s.ecs.Wave
	wave.Number = number
	wave.EnemyCount = s.EnemiesForWave(number)
	wave.Spawned = 0
	wave.TickCounter = 0
	wave.InProgress = true
	log.Printf("Wave %d started: %d enemies", number, wave.EnemyCount)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Number: number, EnemyCount: wave.EnemyCount},
	})
}

// RollEnemy рассчитывает характеристики врага для волны: рост по волнам,
// случайные модификаторы и обязательный босс каждой десятой волны.
func (s *WaveSystem) RollEnemy(wave int) EnemyStats {
	if wave < 1 {
		wave = 1
	}
	stats := EnemyStats{
		Health: config.EnemyBaseHealth * math.Pow(config.HealthGrowthPerWave, float64(wave-1)),
		Speed:  config.EnemyBaseSpeed * s.gameMap.SpeedScale(),
		Reward: int(float64(config.EnemyBaseReward) * math.Pow(config.RewardGrowthPerWave, float64(wave-1))),
		Wave:   wave,
	}

	// Обычные модификаторы: срабатывает первый выпавший.
	switch {
	case wave >= config.CamoFromWave && s.rng.Chance(modifierChance(wave, config.CamoFromWave, config.CamoChancePerWave, config.CamoMaxChance)):
		stats.IsCamo = true
		stats.Health *= config.CamoHealthMultiplier
		stats.Reward = int(float64(stats.Reward) * config.CamoRewardMultiplier)
	case wave >= config.ArmorFromWave && s.rng.Chance(modifierChance(wave, config.ArmorFromWave, config.ArmorChancePerWave, config.ArmorMaxChance)):
		stats.IsArmored = true
		stats.Health *= config.ArmorHealthMultiplier
		stats.Reward = int(float64(stats.Reward) * config.ArmorRewardMultiplier)
	case wave >= config.RegenFromWave && s.rng.Chance(modifierChance(wave, config.RegenFromWave, config.RegenChancePerWave, config.RegenMaxChance)):
		stats.IsRegenerating = true
		stats.Health *= config.RegenHealthMultiplier
		stats.Reward = int(float64(stats.Reward) * config.RegenRewardMultiplier)
	}

	// Босс перекрывает правила выше, множители модификаторов к нему не применяются.
	if wave%config.BossWaveEvery == 0 {
		stats.IsBoss = true
		stats.IsArmored = true
		stats.IsRegenerating = true
		if wave >= config.SuperBossWave {
			stats.IsCamo = true
		}
		stats.Health *= config.BossHealthMultiplier
		stats.Reward *= config.BossRewardMultiplier
	}
	return stats
}

func modifierChance(wave, fromWave int, perWave, maxChance float64) float64 {
	return math.Min(maxChance, float64(wave-fromWave)*perWave)
}

// Spawn ставит врага в начало маршрута. Сила врага задаётся целиком через stats.
func (s *WaveSystem) Spawn(stats EnemyStats) types.EntityID {
	id := s.ecs.NewEntity()
	start := s.gameMap.Path.Start()

	health := stats.Health
	if health <= 0 || math.IsNaN(health) {
		health = 1
	}

	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: math.Max(0, stats.Speed)}
	s.ecs.Paths[id] = &component.Path{CurrentIndex: 0}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Enemies[id] = &component.Enemy{
		Reward:         max(0, stats.Reward),
		Size:           s.gameMap.Bounds.Height * config.EnemySizeRatio,
		IsArmored:      stats.IsArmored,
		IsCamo:         stats.IsCamo,
		IsRegenerating: stats.IsRegenerating,
		IsPowerUp:      stats.IsPowerUp,
		IsBoss:         stats.IsBoss,
		Wave:           stats.Wave,
	}
	s.ecs.Stats.EnemiesSpawned++

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: id, Reward: stats.Reward, Wave: stats.Wave},
	})
	return id
}
