// internal/app/tower_management.go
package app

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/geom"
)

// PlaceTower attempts to build a tower of the given type centered at (x, y).
// On rejection nothing changes.
func (g *Game) PlaceTower(towerType defs.TowerType, x, y float64) bool {
	if g.IsGameOver() {
		return false
	}
	def, ok := towerType.Definition()
	if !ok || !g.EconomySystem.CanAfford(def.Cost) {
		return false
	}

	pos := geom.Point{X: x, Y: y}
	if !g.canPlaceTower(pos) {
		return false
	}
	if !g.EconomySystem.Spend(def.Cost) {
		return false
	}

	id := g.createTowerEntity(towerType, def, pos)
	g.ECS.Stats.TowersBuilt++
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{ID: id, Cost: def.Cost},
	})
	return true
}

// RemoveTower sells the nearest tower whose footprint contains (x, y).
func (g *Game) RemoveTower(x, y float64) bool {
	if g.IsGameOver() {
		return false
	}
	id := g.towerAt(geom.Point{X: x, Y: y})
	if id == types.None {
		return false
	}

	tower := g.ECS.Towers[id]
	refund := int(float64(tower.Cost) * config.TowerRefundRatio)
	g.ECS.RemoveTower(id)
	g.EconomySystem.Refund(refund)
	g.ECS.Stats.TowersSold++

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerRemoved,
		Data: event.TowerData{ID: id, Cost: tower.Cost, Refund: refund},
	})
	return true
}

// SelectTower снимает выделение со всех башен и выделяет башню под курсором.
// Возвращает true, если башня нашлась. На симуляцию не влияет.
func (g *Game) SelectTower(x, y float64) bool {
	for _, tower := range g.ECS.Towers {
		tower.IsSelected = false
	}
	id := g.towerAt(geom.Point{X: x, Y: y})
	if id == types.None {
		return false
	}
	g.ECS.Towers[id].IsSelected = true
	return true
}

// SelectedTower returns the currently selected tower, or types.None.
func (g *Game) SelectedTower() types.EntityID {
	for _, id := range g.ECS.TowerIDs() {
		if g.ECS.Towers[id].IsSelected {
			return id
		}
	}
	return types.None
}

func (g *Game) canPlaceTower(pos geom.Point) bool {
	if math.IsNaN(pos.X) || math.IsNaN(pos.Y) || !g.Map.Bounds.Contains(pos) {
		return false
	}
	// Подошва башни (радиус size) должна отстоять от оси пути на clearance.
	size := g.towerSize()
	if g.Map.Path.DistanceTo(pos) < size+g.Map.PathClearance() {
		return false
	}

	for id, tower := range g.ECS.Towers {
		other := g.ECS.Positions[id]
		if geom.Distance(pos, geom.Point{X: other.X, Y: other.Y}) < size+tower.Size {
			return false
		}
	}
	return true
}

// towerAt находит ближайшую башню, чья "подошва" содержит точку.
func (g *Game) towerAt(p geom.Point) types.EntityID {
	found := types.None
	best := math.MaxFloat64
	for _, id := range g.ECS.TowerIDs() {
		pos := g.ECS.Positions[id]
		d := geom.Distance(p, geom.Point{X: pos.X, Y: pos.Y})
		if d < g.ECS.Towers[id].Size && d < best {
			best = d
			found = id
		}
	}
	return found
}

func (g *Game) towerSize() float64 {
	return g.Map.Bounds.Height * config.TowerSizeRatio
}

func (g *Game) createTowerEntity(towerType defs.TowerType, def defs.TowerDefinition, pos geom.Point) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	g.ECS.Towers[id] = &component.Tower{
		Type: towerType,
		Cost: def.Cost,
		Size: g.towerSize(),
	}
	g.ECS.Combats[id] = &component.Combat{
		Damage:     def.Damage,
		FireRate:   def.FireRate,
		Range:      def.RangeFactor * g.Map.RangeUnit(),
		CanSeeCamo: def.CanSeeCamo,
	}
	return id
}
