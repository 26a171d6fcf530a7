// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ScreenWidth    = 1200
	ScreenHeight   = 900
	MaxDeltaTime   = 0.25 // Самый длинный кадр, который хост передаёт в движок
	TicksPerSecond = 60   // Частота тиков хоста; волны считаются в тиках
	PanelWidth     = 200  // Правая панель с кнопками
	MapWidth       = ScreenWidth - PanelWidth
	ClickCooldown  = 150 // мс между переключениями кнопок
	MessageSeconds = 1.5 // Сколько висит всплывающее сообщение

	StartingMoney = 200
	StartingLives = 50

	EnemySpawnDelayTicks    = 60  // Тиков между появлениями врагов
	InitialEnemiesPerWave   = 5   // Врагов в первой волне
	EnemiesIncreasePerWave  = 3   // Прирост врагов за волну
	WaveBreakTicks          = 300 // Длительность перерыва между волнами
	BossWaveEvery           = 10
	SuperBossWave           = 20
	BossHealthMultiplier    = 3.0
	BossRewardMultiplier    = 3
	HealthGrowthPerWave     = 1.2
	RewardGrowthPerWave     = 1.1
	EnemyBaseHealth         = 100.0
	EnemyBaseReward         = 10
	EnemyBaseSpeed          = 100.0 // пикселей в секунду на карте 1000x1000
	EnemySizeRatio          = 0.03  // диаметр врага от высоты карты
	EnemyRegenRate          = 5.0   // HP в секунду
	ArmorDamageReduction    = 0.5
	CamoFromWave            = 5
	CamoChancePerWave       = 0.05
	CamoMaxChance           = 0.4
	ArmorFromWave           = 10
	ArmorChancePerWave      = 0.07
	ArmorMaxChance          = 0.5
	RegenFromWave           = 15
	RegenChancePerWave      = 0.04
	RegenMaxChance          = 0.3
	CamoHealthMultiplier    = 0.8
	CamoRewardMultiplier    = 1.5
	ArmorHealthMultiplier   = 1.5
	ArmorRewardMultiplier   = 1.2
	RegenHealthMultiplier   = 1.2
	RegenRewardMultiplier   = 1.3
	TowerSizeRatio          = 0.05 // размер башни от высоты карты, он же радиус подошвы
	TowerRefundRatio        = 0.5
	ProjectileSpeed         = 300.0 // pixels per second
	ProjectileSizeRatio     = 0.2   // от размера башни
	ProjectileArrivalRadius = 5.0

	MinGameSpeed = 0.1
	MaxGameSpeed = 3.0

	DefaultPlayerName = "Unknown Player"
	LeaderboardSize   = 10
)

// Sim — настраиваемые параметры симуляции.
// Значения по умолчанию совпадают с константами выше; тесты и хосты могут их менять.
type Sim struct {
	StartingMoney          int
	StartingLives          int
	SpawnDelayTicks        int
	InitialEnemiesPerWave  int
	EnemiesIncreasePerWave int
	WaveBreakTicks         int
	Seed                   int64 // 0 — случайный сид
	PlayerName             string
}

// DefaultSim returns the reference simulation parameters.
func DefaultSim() Sim {
	return Sim{
		StartingMoney:          StartingMoney,
		StartingLives:          StartingLives,
		SpawnDelayTicks:        EnemySpawnDelayTicks,
		InitialEnemiesPerWave:  InitialEnemiesPerWave,
		EnemiesIncreasePerWave: EnemiesIncreasePerWave,
		WaveBreakTicks:         WaveBreakTicks,
		PlayerName:             DefaultPlayerName,
	}
}

// SimFromEnv returns simulation parameters with environment variable overrides.
func SimFromEnv() Sim {
	cfg := DefaultSim()

	if v := getEnvInt("TD_STARTING_MONEY", -1); v >= 0 {
		cfg.StartingMoney = v
	}
	if v := getEnvInt("TD_STARTING_LIVES", 0); v > 0 {
		cfg.StartingLives = v
	}
	if v := getEnvInt("TD_SPAWN_DELAY_TICKS", 0); v > 0 {
		cfg.SpawnDelayTicks = v
	}
	if v := getEnvInt("TD_INITIAL_ENEMIES", -1); v >= 0 {
		cfg.InitialEnemiesPerWave = v
	}
	if v := getEnvInt("TD_ENEMIES_PER_WAVE_INCREASE", -1); v >= 0 {
		cfg.EnemiesIncreasePerWave = v
	}
	if v := getEnvInt("TD_WAVE_BREAK_TICKS", -1); v >= 0 {
		cfg.WaveBreakTicks = v
	}
	if v := getEnvInt("TD_SEED", 0); v != 0 {
		cfg.Seed = int64(v)
	}
	if name := strings.TrimSpace(os.Getenv("TD_PLAYER_NAME")); name != "" {
		cfg.PlayerName = name
	}

	return cfg
}

// Server — настройки HTTP-сервера таблицы рекордов.
type Server struct {
	Addr              string
	DebugAddr         string // pprof и /metrics хоста игры
	CORSOrigins       []string
	RequestsPerSecond float64
	Burst             int
}

// DefaultServer returns the default server configuration.
func DefaultServer() Server {
	return Server{
		Addr:              ":8080",
		DebugAddr:         "localhost:6060",
		CORSOrigins:       []string{"*"},
		RequestsPerSecond: 10,
		Burst:             20,
	}
}

// ServerFromEnv returns server configuration with environment variable overrides.
func ServerFromEnv() Server {
	cfg := DefaultServer()

	if addr := os.Getenv("TD_HTTP_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if addr := os.Getenv("TD_DEBUG_ADDR"); addr != "" {
		cfg.DebugAddr = addr
	}
	if origins := os.Getenv("TD_CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}
	if rps := getEnvFloat("TD_RATE_LIMIT_RPS", 0); rps > 0 {
		cfg.RequestsPerSecond = rps
	}
	if burst := getEnvInt("TD_RATE_LIMIT_BURST", 0); burst > 0 {
		cfg.Burst = burst
	}

	return cfg
}

// Store — где хранится таблица рекордов. Пустой DatabaseURL — хранение в памяти.
type Store struct {
	DatabaseURL string
}

// StoreFromEnv reads DATABASE_URL.
func StoreFromEnv() Store {
	return Store{DatabaseURL: os.Getenv("DATABASE_URL")}
}

// App — полная конфигурация приложения.
type App struct {
	Sim        Sim
	Server     Server
	Store      Store
	TowersFile string // JSON с переопределением башен; пусто — встроенная таблица
}

// Load reads .env (if present) and returns the configuration with environment overrides.
func Load() App {
	LoadDotEnv()
	return App{
		Sim:        SimFromEnv(),
		Server:     ServerFromEnv(),
		Store:      StoreFromEnv(),
		TowersFile: os.Getenv("TD_TOWERS_FILE"),
	}
}

// LoadDotEnv loads .env from the working directory or its parent; a missing file is fine.
func LoadDotEnv() {
	if err := godotenv.Load(".env"); err != nil {
		_ = godotenv.Load("../.env")
	}
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
