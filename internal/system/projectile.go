// internal/system/projectile.go
package system

import (
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/geom"
	"go-wave-defense/pkg/pathmap"
)

// ProjectileOutcome — чем закончился полёт снаряда в этом тике.
type ProjectileOutcome int

const (
	InFlight ProjectileOutcome = iota
	Hit                        // попал во врага
	Missed                     // долетел до точки прицеливания
	OutOfBounds                // вылетел за поле
)

// ProjectileSystem двигает снаряды и разрешает столкновения.
type ProjectileSystem struct {
	ecs             *entity.ECS
	gameMap         *pathmap.Map
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, gameMap *pathmap.Map, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		gameMap:         gameMap,
		eventDispatcher: eventDispatcher,
	}
}

// Update сначала решает судьбу каждого снаряда, затем удаляет завершившиеся.
// Исходы взаимоисключающие: попадание, промах, вылет за поле.
func (s *ProjectileSystem) Update(deltaTime float64) {
	var finished []types.EntityID
	for _, id := range s.ecs.ProjectileIDs() {
		if s.step(id, deltaTime) != InFlight {
			finished = append(finished, id)
		}
	}
	for _, id := range finished {
		s.ecs.RemoveProjectile(id)
	}
}

func (s *ProjectileSystem) step(id types.EntityID, deltaTime float64) ProjectileOutcome {
	proj := s.ecs.Projectiles[id]
	pos, hasPos := s.ecs.Positions[id]
	if !hasPos || !proj.Active {
		return Missed
	}

	target := geom.Point{X: proj.TargetX, Y: proj.TargetY}
	next, _ := geom.MoveTowards(geom.Point{X: pos.X, Y: pos.Y}, target, proj.Speed*deltaTime)
	pos.X, pos.Y = next.X, next.Y

	if enemyID := s.findCollision(next, proj.Size); enemyID != types.None {
		killed := ApplyDamage(s.ecs, enemyID, proj.Damage)
		proj.Active = false
		s.ecs.Stats.ProjectileHits++
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ProjectileHit,
			Data: event.HitData{ProjectileID: id, EnemyID: enemyID, Killed: killed},
		})
		return Hit
	}

	if geom.Distance(next, target) < config.ProjectileArrivalRadius {
		proj.Active = false
		s.ecs.Stats.ProjectileMisses++
		return Missed
	}

	if !s.gameMap.Bounds.Contains(next) {
		proj.Active = false
		s.ecs.Stats.ProjectilesLost++
		return OutOfBounds
	}
	return InFlight
}

// findCollision возвращает первого (по ID) живого врага, с которым пересекается снаряд.
func (s *ProjectileSystem) findCollision(p geom.Point, size float64) types.EntityID {
	lastIndex := s.gameMap.Path.LastIndex()
	for _, enemyID := range s.ecs.EnemyIDs() {
		if !s.ecs.IsEnemyAlive(enemyID) || hasArrived(s.ecs, lastIndex, enemyID) {
			continue
		}
		pos := s.ecs.Positions[enemyID]
		if pos == nil {
			continue
		}
		radiusSum := (size + s.ecs.Enemies[enemyID].Size) / 2
		if geom.Distance(p, geom.Point{X: pos.X, Y: pos.Y}) < radiusSum {
			return enemyID
		}
	}
	return types.None
}
