// internal/app/snapshot.go
package app

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/geom"
)

// EnemyView — то, что рендер знает о враге.
type EnemyView struct {
	ID             types.EntityID
	Position       geom.Point
	Size           float64
	HealthRatio    float64
	IsArmored      bool
	IsCamo         bool
	IsRegenerating bool
	IsPowerUp      bool
	IsBoss         bool
}

// TowerView — то, что рендер знает о башне.
type TowerView struct {
	ID         types.EntityID
	Type       defs.TowerType
	Position   geom.Point
	Size       float64
	Range      float64
	IsSelected bool
	TargetID   types.EntityID
}

// ProjectileView — летящий снаряд.
type ProjectileView struct {
	ID       types.EntityID
	Position geom.Point
	Size     float64
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Слайсы принадлежат вызывающему; движок их больше не трогает.
type Snapshot struct {
	Bounds      geom.Bounds
	Path        []geom.Point
	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView

	Money int
	Lives int
	Score int

	Wave           int
	WaveInProgress bool
	WaveEnemies    int
	WaveSpawned    int
	BreakSeconds   float64 // до следующей волны при нормальной скорости

	Speed    float64
	Paused   bool
	GameOver bool
	GameTime float64
	Stats    component.RunStats
}

// Snapshot copies the current state in deterministic (ID) order.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	snap := Snapshot{
		Bounds:         g.Map.Bounds,
		Path:           g.Map.Path.Points(),
		Money:          ecs.Economy.Money,
		Lives:          ecs.Economy.Lives,
		Score:          ecs.Economy.Score,
		Wave:           ecs.Wave.Number,
		WaveInProgress: ecs.Wave.InProgress,
		WaveEnemies:    ecs.Wave.EnemyCount,
		WaveSpawned:    ecs.Wave.Spawned,
		BreakSeconds:   float64(g.WaveSystem.BreakTicksLeft()) / config.TicksPerSecond,
		Speed:          g.speedMultiplier,
		Paused:         g.isPaused,
		GameOver:       g.IsGameOver(),
		GameTime:       ecs.GameTime,
		Stats:          ecs.Stats,
	}

	enemyIDs := ecs.EnemyIDs()
	snap.Enemies = make([]EnemyView, 0, len(enemyIDs))
	for _, id := range enemyIDs {
		enemy := ecs.Enemies[id]
		pos := ecs.Positions[id]
		view := EnemyView{
			ID:             id,
			Position:       geom.Point{X: pos.X, Y: pos.Y},
			Size:           enemy.Size,
			IsArmored:      enemy.IsArmored,
			IsCamo:         enemy.IsCamo,
			IsRegenerating: enemy.IsRegenerating,
			IsPowerUp:      enemy.IsPowerUp,
			IsBoss:         enemy.IsBoss,
		}
		if health, ok := ecs.Healths[id]; ok {
			view.HealthRatio = health.Ratio()
		}
		snap.Enemies = append(snap.Enemies, view)
	}

	towerIDs := ecs.TowerIDs()
	snap.Towers = make([]TowerView, 0, len(towerIDs))
	for _, id := range towerIDs {
		tower := ecs.Towers[id]
		pos := ecs.Positions[id]
		view := TowerView{
			ID:         id,
			Type:       tower.Type,
			Position:   geom.Point{X: pos.X, Y: pos.Y},
			Size:       tower.Size,
			IsSelected: tower.IsSelected,
		}
		if combat, ok := ecs.Combats[id]; ok {
			view.Range = combat.Range
			view.TargetID = combat.TargetID
		}
		snap.Towers = append(snap.Towers, view)
	}

	projIDs := ecs.ProjectileIDs()
	snap.Projectiles = make([]ProjectileView, 0, len(projIDs))
	for _, id := range projIDs {
		pos := ecs.Positions[id]
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID:       id,
			Position: geom.Point{X: pos.X, Y: pos.Y},
			Size:     ecs.Projectiles[id].Size,
		})
	}
	return snap
}
