// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/types"
)

// ECS владеет всеми коллекциями сущностей забега.
// Системы читают и меняют их только через движок (app.Game).
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Projectiles map[types.EntityID]*component.Projectile
	Wave        *component.Wave
	Economy     *component.Economy
	Phase       component.Phase
	Stats       component.RunStats
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Wave:        &component.Wave{},
		Economy:     &component.Economy{},
		Phase:       component.PlayingPhase,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// EnemyIDs возвращает ID врагов в порядке появления.
// Порядок детерминирован: от него зависят выбор цели и первая коллизия.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Enemies))
}

// TowerIDs возвращает ID башен в порядке постройки.
func (ecs *ECS) TowerIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Towers))
}

// ProjectileIDs возвращает ID снарядов в порядке выстрелов.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Projectiles))
}

// RemoveEnemy удаляет все компоненты врага.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
}

// RemoveTower удаляет все компоненты башни.
func (ecs *ECS) RemoveTower(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
}

// RemoveProjectile удаляет все компоненты снаряда.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Projectiles, id)
}

// IsEnemyAlive — враг существует и его здоровье больше нуля.
func (ecs *ECS) IsEnemyAlive(id types.EntityID) bool {
	if _, ok := ecs.Enemies[id]; !ok {
		return false
	}
	health, ok := ecs.Healths[id]
	return ok && health.Value > 0
}
