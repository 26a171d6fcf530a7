// internal/system/combat.go
package system

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/geom"
	"go-wave-defense/pkg/pathmap"
)

// CombatSystem управляет атакой башен: липкая цель и ограничение скорострельности.
type CombatSystem struct {
	ecs             *entity.ECS
	path            *pathmap.Path
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, path *pathmap.Path, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		path:            path,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.TowerIDs() {
		combat, hasCombat := s.ecs.Combats[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasCombat || !hasPos {
			continue
		}

		combat.SinceLastAttack += deltaTime

		towerPos := geom.Point{X: pos.X, Y: pos.Y}
		if !s.canKeepTarget(towerPos, combat, combat.TargetID) {
			combat.TargetID = s.findNearestTarget(towerPos, combat)
		}
		if combat.TargetID == types.None {
			continue
		}

		if combat.FireRate > 0 && combat.SinceLastAttack >= 1/combat.FireRate {
			s.fire(id, towerPos, combat)
		}
	}
}

// canKeepTarget — текущая цель жива, не дошла до выхода, в радиусе и видна.
func (s *CombatSystem) canKeepTarget(towerPos geom.Point, combat *component.Combat, enemyID types.EntityID) bool {
	if enemyID == types.None || !s.isEligible(combat, enemyID) {
		return false
	}
	return geom.Distance(towerPos, s.enemyPoint(enemyID)) <= combat.Range
}

// findNearestTarget выбирает ближайшего подходящего врага строго внутри радиуса.
// При равных расстояниях побеждает враг с меньшим ID (появившийся раньше).
func (s *CombatSystem) findNearestTarget(towerPos geom.Point, combat *component.Combat) types.EntityID {
	nearest := types.None
	minDistance := math.MaxFloat64
	for _, enemyID := range s.ecs.EnemyIDs() {
		if !s.isEligible(combat, enemyID) {
			continue
		}
		distance := geom.Distance(towerPos, s.enemyPoint(enemyID))
		if distance < combat.Range && distance < minDistance {
			minDistance = distance
			nearest = enemyID
		}
	}
	return nearest
}

func (s *CombatSystem) isEligible(combat *component.Combat, enemyID types.EntityID) bool {
	enemy, isEnemy := s.ecs.Enemies[enemyID]
	if !isEnemy || !s.ecs.IsEnemyAlive(enemyID) {
		return false
	}
	if hasArrived(s.ecs, s.path.LastIndex(), enemyID) {
		return false
	}
	return !enemy.IsCamo || combat.CanSeeCamo
}

func (s *CombatSystem) enemyPoint(enemyID types.EntityID) geom.Point {
	pos := s.ecs.Positions[enemyID]
	if pos == nil {
		return geom.Point{X: math.Inf(1), Y: math.Inf(1)}
	}
	return geom.Point{X: pos.X, Y: pos.Y}
}

// fire выпускает один снаряд в точку, где цель находится сейчас.
func (s *CombatSystem) fire(towerID types.EntityID, towerPos geom.Point, combat *component.Combat) {
	target := s.enemyPoint(combat.TargetID)
	size := 0.0
	if tower, ok := s.ecs.Towers[towerID]; ok {
		size = tower.Size * config.ProjectileSizeRatio
	}

	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		SourceID: towerID,
		TargetX:  target.X,
		TargetY:  target.Y,
		Speed:    config.ProjectileSpeed,
		Damage:   combat.Damage,
		Size:     size,
		Active:   true,
	}
	combat.SinceLastAttack = 0
	s.ecs.Stats.ShotsFired++

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Data: event.ShotData{ProjectileID: projID, TowerID: towerID},
	})
}
