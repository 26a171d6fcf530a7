// internal/system/movement.go
package system

import (
	"math"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/geom"
	"go-wave-defense/pkg/pathmap"
)

// MovementSystem двигает врагов по маршруту и восстанавливает здоровье регенерирующим.
type MovementSystem struct {
	ecs  *entity.ECS
	path *pathmap.Path
}

func NewMovementSystem(ecs *entity.ECS, path *pathmap.Path) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyIDs() {
		s.advance(id, deltaTime)
	}
}

// HasArrived reports whether the enemy has reached the exit waypoint.
func (s *MovementSystem) HasArrived(id types.EntityID) bool {
	return hasArrived(s.ecs, s.path.LastIndex(), id)
}

// advance — один шаг врага: регенерация, затем не больше одной путевой точки за вызов.
// Остаток шага после достижения точки пропадает.
func (s *MovementSystem) advance(id types.EntityID, deltaTime float64) {
	pos, hasPos := s.ecs.Positions[id]
	vel, hasVel := s.ecs.Velocities[id]
	path, hasPath := s.ecs.Paths[id]
	health, hasHealth := s.ecs.Healths[id]
	if !hasPos || !hasVel || !hasPath || !hasHealth {
		return
	}
	if health.Value <= 0 || path.CurrentIndex >= s.path.LastIndex() {
		return
	}

	if enemy := s.ecs.Enemies[id]; enemy != nil && enemy.IsRegenerating {
		health.Value = math.Min(health.Max, health.Value+config.EnemyRegenRate*deltaTime)
	}

	target := s.path.PointAt(path.CurrentIndex + 1)
	next, reached := geom.MoveTowards(geom.Point{X: pos.X, Y: pos.Y}, target, vel.Speed*deltaTime)
	pos.X, pos.Y = next.X, next.Y
	if reached {
		path.CurrentIndex++
	}
}
