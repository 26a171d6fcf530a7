// internal/system/utils.go
package system

import (
	"math"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/types"
)

// ApplyDamage наносит урон врагу с учётом брони.
// Возвращает true, если этот удар опустил здоровье до нуля.
// Мёртвые и несуществующие цели урон не получают.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage float64) bool {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || health.Value <= 0 {
		return false
	}
	if damage <= 0 || math.IsNaN(damage) {
		return false
	}

	finalDamage := damage
	if enemy, isEnemy := ecs.Enemies[entityID]; isEnemy && enemy.IsArmored {
		finalDamage *= 1 - config.ArmorDamageReduction
	}

	health.Value -= finalDamage
	if health.Value <= 0 {
		health.Value = 0
		return true
	}
	return false
}

// hasArrived — враг дошёл до последней точки маршрута.
func hasArrived(ecs *entity.ECS, lastIndex int, id types.EntityID) bool {
	path, ok := ecs.Paths[id]
	return ok && path.CurrentIndex >= lastIndex
}
