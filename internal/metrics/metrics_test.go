package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"go-wave-defense/internal/event"
)

func TestListenerCountsEvents(t *testing.T) {
	d := event.NewDispatcher()
	Attach(d)

	spawnedBefore := testutil.ToFloat64(enemiesSpawned)
	killedBefore := testutil.ToFloat64(enemiesRemoved.WithLabelValues("killed"))
	leakedBefore := testutil.ToFloat64(enemiesRemoved.WithLabelValues("leaked"))
	aliveBefore := testutil.ToFloat64(enemiesAlive)

	d.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{ID: 1}})
	d.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{ID: 2}})
	d.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{ID: 3}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{ID: 1}})
	d.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: event.EnemyData{ID: 2}})

	if got := testutil.ToFloat64(enemiesSpawned) - spawnedBefore; got != 3 {
		t.Errorf("Expected 3 spawned, got %v", got)
	}
	if got := testutil.ToFloat64(enemiesRemoved.WithLabelValues("killed")) - killedBefore; got != 1 {
		t.Errorf("Expected 1 killed, got %v", got)
	}
	if got := testutil.ToFloat64(enemiesRemoved.WithLabelValues("leaked")) - leakedBefore; got != 1 {
		t.Errorf("Expected 1 leaked, got %v", got)
	}
	if got := testutil.ToFloat64(enemiesAlive) - aliveBefore; got != 1 {
		t.Errorf("Expected 1 enemy alive, got %v", got)
	}
}

func TestListenerWaveAndGameOver(t *testing.T) {
	d := event.NewDispatcher()
	Attach(d)
	overBefore := testutil.ToFloat64(gamesOver)

	d.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: 7, EnemyCount: 23}})
	d.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{Score: 120, Wave: 7}})

	if got := testutil.ToFloat64(currentWave); got != 7 {
		t.Errorf("Expected wave gauge 7, got %v", got)
	}
	if got := testutil.ToFloat64(gamesOver) - overBefore; got != 1 {
		t.Errorf("Expected one finished run, got %v", got)
	}
}

func TestAttachStartsFreshRun(t *testing.T) {
	old := event.NewDispatcher()
	previous := Attach(old)
	for i := 0; i < 4; i++ {
		old.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{ID: 1}})
	}
	old.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{ID: 9, Cost: 50}})
	old.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: 3}})
	previous.Detach()
	previous.Detach()

	d := event.NewDispatcher()
	Attach(d)
	for name, g := range map[string]float64{
		"td_enemies_alive": testutil.ToFloat64(enemiesAlive),
		"td_towers_active": testutil.ToFloat64(towersActive),
		"td_current_wave":  testutil.ToFloat64(currentWave),
	} {
		if g != 0 {
			t.Errorf("Expected %s reset to 0, got %v", name, g)
		}
	}

	spawned := testutil.ToFloat64(enemiesSpawned)
	old.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{ID: 2}})
	if got := testutil.ToFloat64(enemiesSpawned); got != spawned {
		t.Errorf("Detached run must not count, spawned went %v -> %v", spawned, got)
	}
	if n := old.ListenerCount(event.EnemySpawned); n != 0 {
		t.Errorf("Expected no listeners on the old run, got %d", n)
	}

	d.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: 1}})
	if got := testutil.ToFloat64(currentWave); got != 1 {
		t.Errorf("Expected wave gauge 1, got %v", got)
	}
}
