package app

import (
	"math"
	"testing"
	"time"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/geom"
	"go-wave-defense/pkg/pathmap"
)

type fakeRecorder struct {
	calls  int
	name   string
	scores []int
}

func (r *fakeRecorder) RecordScore(playerName string, score int) {
	r.calls++
	r.name = playerName
	r.scores = append(r.scores, score)
}

// slowRecorder имитирует запись в удалённую базу.
type slowRecorder struct {
	fakeRecorder
	delay time.Duration
}

func (r *slowRecorder) RecordScore(playerName string, score int) {
	time.Sleep(r.delay)
	r.fakeRecorder.RecordScore(playerName, score)
}

type eventCollector struct {
	events []event.Event
}

func (c *eventCollector) OnEvent(e event.Event) {
	c.events = append(c.events, e)
}

// quietSim — конфигурация без автоматического спавна: врагов тесты ставят сами.
func quietSim() config.Sim {
	cfg := config.DefaultSim()
	cfg.SpawnDelayTicks = math.MaxInt32
	cfg.Seed = 7
	return cfg
}

func newTestGame(t *testing.T, cfg config.Sim, width, height float64, points []geom.Point, rec interfaces.ScoreRecorder) *Game {
	t.Helper()
	m, err := pathmap.NewMap(width, height, points)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	return NewGame(cfg, m, Options{Rng: utils.NewPRNGService(cfg.Seed), Recorder: rec})
}

func straightGame(t *testing.T, cfg config.Sim, rec interfaces.ScoreRecorder) *Game {
	return newTestGame(t, cfg, 1000, 1000, []geom.Point{{X: 0, Y: 500}, {X: 1000, Y: 500}}, rec)
}

func TestPlacementScenario(t *testing.T) {
	m := pathmap.DefaultMap(config.ScreenWidth, config.ScreenHeight)
	g := NewGame(quietSim(), m, Options{})

	if g.ECS.Economy.Money != 200 || g.ECS.Economy.Lives != 50 {
		t.Fatalf("Expected 200/50 at start, got %+v", *g.ECS.Economy)
	}
	if !g.PlaceTower(defs.TowerBasic, 600, 100) {
		t.Fatal("Expected valid placement to succeed")
	}
	if g.ECS.Economy.Money != 150 || len(g.ECS.Towers) != 1 {
		t.Fatalf("Expected 150 money and 1 tower, got %d and %d", g.ECS.Economy.Money, len(g.ECS.Towers))
	}

	if g.PlaceTower(defs.TowerBasic, 100, 180) {
		t.Error("Placement on the path must fail")
	}
	if g.ECS.Economy.Money != 150 || len(g.ECS.Towers) != 1 {
		t.Errorf("Rejected placement changed state: %d money, %d towers", g.ECS.Economy.Money, len(g.ECS.Towers))
	}
}

func TestPlacementRejections(t *testing.T) {
	tests := []struct {
		name      string
		money     int
		towerType defs.TowerType
		x, y      float64
	}{
		{"insufficient funds", 40, defs.TowerBasic, 500, 200},
		{"unknown type", 1000, defs.TowerType(42), 500, 200},
		{"too close to path", 1000, defs.TowerBasic, 500, 460},
		{"outside bounds", 1000, defs.TowerBasic, 1200, 200},
		{"NaN position", 1000, defs.TowerBasic, math.NaN(), 200},
		{"overlaps tower", 1000, defs.TowerBasic, 560, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := quietSim()
			cfg.StartingMoney = tt.money
			g := straightGame(t, cfg, nil)
			if tt.money >= 50 && !g.PlaceTower(defs.TowerBasic, 500, 100) {
				t.Fatal("Setup placement failed")
			}
			money, towers := g.ECS.Economy.Money, len(g.ECS.Towers)

			if g.PlaceTower(tt.towerType, tt.x, tt.y) {
				t.Fatal("Expected placement to fail")
			}
			if g.ECS.Economy.Money != money || len(g.ECS.Towers) != towers {
				t.Errorf("Rejected placement changed state: money %d->%d, towers %d->%d",
					money, g.ECS.Economy.Money, towers, len(g.ECS.Towers))
			}
		})
	}
}

func TestPlacementFootprintClearance(t *testing.T) {
	// Первый участок пути идёт по y=180; подошва 45 + зазор 45 = 90 от оси.
	tests := []struct {
		name string
		y    float64
		ok   bool
	}{
		{"footprint touches path", 226, false},
		{"one unit short", 269, false},
		{"exactly on the boundary", 270, true},
		{"clear of the path", 271, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame(quietSim(), pathmap.DefaultMap(1000, 900), Options{})
			if got := g.PlaceTower(defs.TowerBasic, 100, tt.y); got != tt.ok {
				t.Errorf("PlaceTower(100, %v): expected %v, got %v", tt.y, tt.ok, got)
			}
		})
	}
}

func TestRemoveTowerRefund(t *testing.T) {
	g := straightGame(t, quietSim(), nil)
	if !g.PlaceTower(defs.TowerBasic, 500, 100) || !g.PlaceTower(defs.TowerSniper, 700, 100) {
		t.Fatal("Setup placement failed")
	}
	if g.ECS.Economy.Money != 50 {
		t.Fatalf("Expected 50 after two towers, got %d", g.ECS.Economy.Money)
	}

	// Нечётная цена проверяет округление вниз.
	sniper := g.ECS.TowerIDs()[1]
	g.ECS.Towers[sniper].Cost = 75

	if !g.RemoveTower(710, 100) {
		t.Fatal("Expected removal inside the footprint to succeed")
	}
	if g.ECS.Economy.Money != 87 || len(g.ECS.Towers) != 1 {
		t.Errorf("Expected 87 money and 1 tower, got %d and %d", g.ECS.Economy.Money, len(g.ECS.Towers))
	}
	if g.RemoveTower(710, 100) {
		t.Error("Second removal at the same spot must fail")
	}
	if !g.RemoveTower(500, 100) || g.ECS.Economy.Money != 112 {
		t.Errorf("Expected basic refund of 25, money %d", g.ECS.Economy.Money)
	}
	if g.ECS.Stats.TowersSold != 2 {
		t.Errorf("Expected 2 towers sold, got %d", g.ECS.Stats.TowersSold)
	}
}

func TestSelectTower(t *testing.T) {
	g := straightGame(t, quietSim(), nil)
	g.PlaceTower(defs.TowerBasic, 500, 100)
	g.PlaceTower(defs.TowerBasic, 700, 100)
	money := g.ECS.Economy.Money

	if !g.SelectTower(505, 100) {
		t.Fatal("Expected selection to find a tower")
	}
	first := g.ECS.TowerIDs()[0]
	if g.SelectedTower() != first {
		t.Errorf("Expected tower %d selected, got %d", first, g.SelectedTower())
	}

	if !g.SelectTower(700, 100) || g.ECS.Towers[first].IsSelected {
		t.Error("Selecting another tower must clear the previous selection")
	}
	if g.SelectTower(10, 10) {
		t.Error("Selecting empty ground must return false")
	}
	for id, tower := range g.ECS.Towers {
		if tower.IsSelected {
			t.Errorf("Tower %d still selected after clicking empty ground", id)
		}
	}
	if g.ECS.Economy.Money != money {
		t.Error("Selection must not affect the economy")
	}
}

func TestSetSpeedClamps(t *testing.T) {
	g := straightGame(t, quietSim(), nil)
	tests := []struct {
		in, want float64
	}{
		{1.5, 1.5},
		{5, config.MaxGameSpeed},
		{0, config.MinGameSpeed},
		{-3, config.MinGameSpeed},
		{math.NaN(), config.MinGameSpeed},
	}
	for _, tt := range tests {
		if got := g.SetSpeed(tt.in); got != tt.want {
			t.Errorf("SetSpeed(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestArrivalScenario(t *testing.T) {
	// 1000 единиц при скорости 100 — ровно 10 секунд при любом шаге кадра.
	tests := []struct {
		name  string
		dt    float64
		ticks int
	}{
		{"eighth of a second", 0.125, 80},
		{"tenth of a second", 0.1, 100},
		{"host frame 1/60", 1.0 / config.TicksPerSecond, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, quietSim(), 1000, 1000, []geom.Point{{X: 0, Y: 0}, {X: 1000, Y: 0}}, nil)
			id := g.WaveSystem.Spawn(system.EnemyStats{Health: 100, Speed: 100, Reward: 10, Wave: 1})

			for i := 0; i < tt.ticks-1; i++ {
				g.Tick(tt.dt)
			}
			if _, alive := g.ECS.Enemies[id]; !alive {
				t.Fatal("Enemy arrived before 10 seconds")
			}

			g.Tick(tt.dt)
			if _, alive := g.ECS.Enemies[id]; alive {
				t.Fatalf("Enemy must arrive after exactly 10 seconds (game time %v)", g.ECS.GameTime)
			}
			eco := g.ECS.Economy
			if eco.Lives != 49 || eco.Money != 200 || eco.Score != 0 {
				t.Errorf("Expected 49 lives, 200 money, 0 score; got %+v", *eco)
			}
			if g.ECS.Stats.EnemiesLeaked != 1 || g.ECS.Stats.EnemiesKilled != 0 {
				t.Errorf("Unexpected stats %+v", g.ECS.Stats)
			}
		})
	}
}

func TestSniperMissScenario(t *testing.T) {
	g := newTestGame(t, quietSim(), 500, 500, []geom.Point{{X: 150, Y: 250}, {X: 490, Y: 250}}, nil)
	if !g.PlaceTower(defs.TowerSniper, 100, 250) {
		t.Fatal("Sniper placement failed")
	}
	towerID := g.ECS.TowerIDs()[0]
	if r := g.ECS.Combats[towerID].Range; r != 200 {
		t.Fatalf("Expected sniper range 200, got %v", r)
	}

	for i := 0; i < 16; i++ {
		g.Tick(0.125)
	}
	enemyID := g.WaveSystem.Spawn(system.EnemyStats{Health: 100, Speed: 300, Reward: 10, Wave: 1})

	for i := 0; i < 10; i++ {
		g.Tick(0.05)
	}

	if g.ECS.Stats.ShotsFired != 1 {
		t.Fatalf("Expected exactly one shot, got %d", g.ECS.Stats.ShotsFired)
	}
	if g.ECS.Stats.ProjectileMisses != 1 || g.ECS.Stats.ProjectileHits != 0 {
		t.Errorf("Expected a miss, got %+v", g.ECS.Stats)
	}
	if len(g.ECS.Projectiles) != 0 {
		t.Errorf("Missed projectile must be removed, %d left", len(g.ECS.Projectiles))
	}
	if h := g.ECS.Healths[enemyID]; h == nil || h.Value != h.Max {
		t.Errorf("Enemy must take no damage, got %+v", h)
	}
}

func TestKillCreditsOnce(t *testing.T) {
	g := straightGame(t, quietSim(), nil)
	if !g.PlaceTower(defs.TowerBasic, 500, 390) {
		t.Fatal("Setup placement failed")
	}
	id := g.WaveSystem.Spawn(system.EnemyStats{Health: 20, Speed: 0, Reward: 7, Wave: 1})
	g.ECS.Positions[id].X = 500

	for i := 0; i < 40; i++ {
		g.Tick(0.125)
	}

	if _, alive := g.ECS.Enemies[id]; alive {
		t.Fatal("Expected the enemy to be killed")
	}
	eco := g.ECS.Economy
	if eco.Money != 157 || eco.Score != 7 || eco.Lives != 50 {
		t.Errorf("Expected 157 money, 7 score, 50 lives; got %+v", *eco)
	}
	if g.ECS.Stats.EnemiesKilled != 1 || g.ECS.Stats.ProjectileHits != 1 {
		t.Errorf("Unexpected stats %+v", g.ECS.Stats)
	}
}

func TestDeadEnemyCleanedUpOnce(t *testing.T) {
	g := straightGame(t, quietSim(), nil)
	id := g.WaveSystem.Spawn(system.EnemyStats{Health: 10, Speed: 10, Reward: 5, Wave: 1})
	system.ApplyDamage(g.ECS, id, 10)

	g.Tick(0.1)
	g.Tick(0.1)
	if g.ECS.Economy.Money != 205 || g.ECS.Economy.Score != 5 {
		t.Errorf("Expected a single credit of 5, got %+v", *g.ECS.Economy)
	}
}

func TestGameOverRecordsScoreOnce(t *testing.T) {
	cfg := quietSim()
	cfg.StartingLives = 2
	cfg.PlayerName = "ada"
	rec := &fakeRecorder{}
	g := straightGame(t, cfg, rec)

	g.WaveSystem.Spawn(system.EnemyStats{Health: 10, Speed: 1000, Wave: 1})
	g.WaveSystem.Spawn(system.EnemyStats{Health: 10, Speed: 1000, Wave: 1})
	g.WaveSystem.Spawn(system.EnemyStats{Health: 10, Speed: 1000, Wave: 1})
	g.Tick(1)

	if !g.IsGameOver() {
		t.Fatal("Expected game over after losing all lives")
	}
	if g.ECS.Economy.Lives != 0 {
		t.Errorf("Lives must stop at zero, got %d", g.ECS.Economy.Lives)
	}

	gameTime := g.ECS.GameTime
	g.Tick(1)
	g.Tick(1)
	if g.ECS.GameTime != gameTime {
		t.Error("Ticks after game over must be no-ops")
	}
	if rec.calls != 0 {
		t.Fatalf("Recorder must not be called inside Tick, got %d calls", rec.calls)
	}
	if !g.RecordFinalScore() || g.RecordFinalScore() {
		t.Error("Expected the final score to be recorded exactly once")
	}
	if rec.calls != 1 || rec.name != "ada" {
		t.Errorf("Expected one RecordScore call for ada, got %d (%q)", rec.calls, rec.name)
	}
	if g.PlaceTower(defs.TowerBasic, 500, 100) {
		t.Error("Placement after game over must fail")
	}
}

func TestSlowRecorderDoesNotStretchTick(t *testing.T) {
	cfg := quietSim()
	cfg.StartingLives = 1
	rec := &slowRecorder{delay: 300 * time.Millisecond}
	g := straightGame(t, cfg, rec)

	if g.RecordFinalScore() {
		t.Fatal("Nothing to record before game over")
	}
	if _, ok := g.FinalScore(); ok {
		t.Fatal("Final score must not be fixed while the run is going")
	}

	g.WaveSystem.Spawn(system.EnemyStats{Health: 10, Speed: 1000, Wave: 1})
	start := time.Now()
	g.Tick(1)
	if elapsed := time.Since(start); elapsed >= rec.delay {
		t.Errorf("Game-over tick took %v, recorder delay leaked into Tick", elapsed)
	}
	if !g.IsGameOver() || rec.calls != 0 {
		t.Fatalf("Expected game over with no recorder calls, got over=%v calls=%d", g.IsGameOver(), rec.calls)
	}

	if score, ok := g.FinalScore(); !ok || score != 0 {
		t.Errorf("Expected latched score 0, got %d (ok=%v)", score, ok)
	}
	g.RecordFinalScore()
	if rec.calls != 1 {
		t.Errorf("Expected one recorder call, got %d", rec.calls)
	}
}

func TestSetupSeesFirstWave(t *testing.T) {
	collector := &eventCollector{}
	var setupGame *Game
	m := pathmap.DefaultMap(1000, 900)
	g := NewGame(quietSim(), m, Options{Setup: func(g *Game) {
		setupGame = g
		g.EventDispatcher.Subscribe(event.WaveStarted, collector)
	}})

	if setupGame != g {
		t.Fatal("Expected Setup to receive the new game")
	}
	if len(collector.events) != 1 {
		t.Fatalf("Expected WaveStarted for wave 1, got %d events", len(collector.events))
	}
	if data, ok := collector.events[0].Data.(event.WaveData); !ok || data.Number != 1 {
		t.Errorf("Expected wave 1, got %+v", collector.events[0].Data)
	}
}

func TestPauseAndClockSync(t *testing.T) {
	g := straightGame(t, quietSim(), nil)
	id := g.WaveSystem.Spawn(system.EnemyStats{Health: 100, Speed: 100, Wave: 1})

	g.Tick(0.5) // первый тик игры обычный, не синхронизирующий
	if x := g.ECS.Positions[id].X; x != 50 {
		t.Fatalf("Expected x=50, got %v", x)
	}

	g.Pause()
	g.Tick(0.5)
	if x := g.ECS.Positions[id].X; x != 50 {
		t.Errorf("Paused tick moved the enemy to %v", x)
	}

	g.Resume()
	g.Tick(30) // длинный кадр после паузы
	if x := g.ECS.Positions[id].X; x != 50 {
		t.Errorf("Clock-sync tick moved the enemy to %v", x)
	}

	g.Tick(0.5)
	if x := g.ECS.Positions[id].X; x != 100 {
		t.Errorf("Expected x=100 after resume, got %v", x)
	}
}

func TestTickIgnoresInvalidDelta(t *testing.T) {
	g := straightGame(t, quietSim(), nil)
	id := g.WaveSystem.Spawn(system.EnemyStats{Health: 100, Speed: 100, Wave: 1})

	g.Tick(math.NaN())
	g.Tick(-1)
	g.Tick(math.Inf(1))
	if x := g.ECS.Positions[id].X; x != 0 {
		t.Errorf("Invalid dt must not move the enemy, got x=%v", x)
	}
}

func TestSpeedMultiplierScalesDelta(t *testing.T) {
	g := straightGame(t, quietSim(), nil)
	id := g.WaveSystem.Spawn(system.EnemyStats{Health: 100, Speed: 100, Wave: 1})
	g.SetSpeed(2)
	g.Tick(0.25)
	if x := g.ECS.Positions[id].X; x != 50 {
		t.Errorf("Expected x=50 at double speed, got %v", x)
	}
}

func TestWavesAdvanceThroughEngine(t *testing.T) {
	cfg := config.DefaultSim()
	cfg.SpawnDelayTicks = 1
	cfg.InitialEnemiesPerWave = 2
	cfg.WaveBreakTicks = 5
	cfg.Seed = 3
	g := newTestGame(t, cfg, 1000, 1000, []geom.Point{{X: 0, Y: 500}, {X: 50, Y: 500}}, nil)

	// Враги быстро доходят до выхода, поле пустеет, начинается перерыв.
	for i := 0; i < 200 && g.ECS.Wave.Number < 2; i++ {
		g.Tick(0.25)
	}
	if g.ECS.Wave.Number != 2 {
		t.Fatalf("Expected wave 2 to start, still on %+v", *g.ECS.Wave)
	}
	if g.ECS.Wave.EnemyCount != 5 {
		t.Errorf("Expected 5 enemies in wave 2, got %d", g.ECS.Wave.EnemyCount)
	}
	if g.ECS.Stats.EnemiesSpawned != 2 || g.ECS.Stats.EnemiesLeaked != 2 {
		t.Errorf("Unexpected stats %+v", g.ECS.Stats)
	}
}

func TestSnapshot(t *testing.T) {
	g := straightGame(t, quietSim(), nil)
	if !g.PlaceTower(defs.TowerMachine, 500, 390) {
		t.Fatal("Setup placement failed")
	}
	id := g.WaveSystem.Spawn(system.EnemyStats{Health: 100, Speed: 0, IsCamo: true, Wave: 1})
	g.ECS.Healths[id].Value = 25

	snap := g.Snapshot()
	if len(snap.Towers) != 1 || len(snap.Enemies) != 1 || len(snap.Path) != 2 {
		t.Fatalf("Unexpected snapshot sizes: %d towers, %d enemies, %d path points",
			len(snap.Towers), len(snap.Enemies), len(snap.Path))
	}
	if snap.Enemies[0].HealthRatio != 0.25 || !snap.Enemies[0].IsCamo {
		t.Errorf("Unexpected enemy view %+v", snap.Enemies[0])
	}
	if snap.Towers[0].Type != defs.TowerMachine || snap.Towers[0].Range != 200 {
		t.Errorf("Unexpected tower view %+v", snap.Towers[0])
	}
	if snap.Money != 50 || snap.Lives != 50 || snap.Wave != 1 || !snap.WaveInProgress {
		t.Errorf("Unexpected run state in snapshot %+v", snap)
	}

	snap.Path[0] = geom.Point{X: -1, Y: -1}
	if g.Map.Path.Start().X == -1 {
		t.Error("Snapshot path must be a copy")
	}
}

func TestFrameClock(t *testing.T) {
	clock := NewFrameClock(config.MaxDeltaTime)
	start := time.Unix(100, 0)

	if d := clock.Delta(start); d != 0 {
		t.Errorf("First frame must yield 0, got %v", d)
	}
	if d := clock.Delta(start.Add(100 * time.Millisecond)); math.Abs(d-0.1) > 1e-9 {
		t.Errorf("Expected 0.1, got %v", d)
	}
	if d := clock.Delta(start.Add(10 * time.Second)); d != config.MaxDeltaTime {
		t.Errorf("Long frame must be clamped to %v, got %v", config.MaxDeltaTime, d)
	}
	clock.Reset()
	if d := clock.Delta(start.Add(time.Minute)); d != 0 {
		t.Errorf("Frame after Reset must yield 0, got %v", d)
	}
}
