// internal/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-wave-defense/internal/event"
)

// Метрики без меток с высокой кардинальностью: только счётчики и датчики забега.
var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "td_tick_duration_seconds",
		Help:    "Time spent in a simulation tick",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025},
	})

	enemiesSpawned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "td_enemies_spawned_total",
		Help: "Enemies spawned",
	})

	enemiesRemoved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "td_enemies_removed_total",
		Help: "Enemies removed from the field",
	}, []string{"outcome"}) // "killed", "leaked"

	enemiesAlive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "td_enemies_alive",
		Help: "Enemies currently on the field",
	})

	shotsFired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "td_shots_fired_total",
		Help: "Projectiles fired by towers",
	})

	projectileHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "td_projectile_hits_total",
		Help: "Projectiles that hit an enemy",
	})

	towersActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "td_towers_active",
		Help: "Towers currently built",
	})

	towerChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "td_tower_changes_total",
		Help: "Tower placements and sales",
	}, []string{"action"}) // "placed", "removed"

	currentWave = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "td_current_wave",
		Help: "Number of the current wave",
	})

	gamesOver = promauto.NewCounter(prometheus.CounterOpts{
		Name: "td_games_over_total",
		Help: "Finished runs",
	})

	finalScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "td_final_score",
		Help:    "Score at the end of a run",
		Buckets: prometheus.ExponentialBuckets(10, 2, 12),
	})
)

// Listener переводит события движка в метрики. Один Listener — один забег.
type Listener struct {
	dispatcher *event.Dispatcher
}

var countedEvents = []event.EventType{
	event.EnemySpawned, event.EnemyKilled, event.EnemyReachedEnd,
	event.ProjectileFired, event.ProjectileHit,
	event.TowerPlaced, event.TowerRemoved,
	event.WaveStarted, event.GameOver,
}

// Attach подписывает новый Listener на события забега и обнуляет
// гейджи, которые описывают один забег (живые враги, башни, волна).
func Attach(d *event.Dispatcher) *Listener {
	resetRunGauges()
	l := &Listener{dispatcher: d}
	d.SubscribeAll(l, countedEvents...)
	return l
}

// Detach отписывает Listener от его забега. Повторный вызов ничего не делает.
func (l *Listener) Detach() {
	if l.dispatcher == nil {
		return
	}
	l.dispatcher.UnsubscribeAll(l)
	l.dispatcher = nil
}

func resetRunGauges() {
	enemiesAlive.Set(0)
	towersActive.Set(0)
	currentWave.Set(0)
}

func (l *Listener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		enemiesSpawned.Inc()
		enemiesAlive.Inc()
	case event.EnemyKilled:
		enemiesRemoved.WithLabelValues("killed").Inc()
		enemiesAlive.Dec()
	case event.EnemyReachedEnd:
		enemiesRemoved.WithLabelValues("leaked").Inc()
		enemiesAlive.Dec()
	case event.ProjectileFired:
		shotsFired.Inc()
	case event.ProjectileHit:
		projectileHits.Inc()
	case event.TowerPlaced:
		towerChanges.WithLabelValues("placed").Inc()
		towersActive.Inc()
	case event.TowerRemoved:
		towerChanges.WithLabelValues("removed").Inc()
		towersActive.Dec()
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveData); ok {
			currentWave.Set(float64(data.Number))
		}
	case event.GameOver:
		gamesOver.Inc()
		if data, ok := e.Data.(event.GameOverData); ok {
			finalScore.Observe(float64(data.Score))
		}
	}
}

// RecordTick records tick timing.
func RecordTick(duration time.Duration) {
	tickDuration.Observe(duration.Seconds())
}
