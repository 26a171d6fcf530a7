// internal/defs/towers.go
package defs

import "strings"

// TowerType — закрытый набор типов башен.
type TowerType int

const (
	TowerBasic TowerType = iota
	TowerSniper
	TowerMachine

	towerTypeCount
)

// TowerDefinition holds the fixed stats of a tower type.
type TowerDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cost        int     `json:"cost"`
	RangeFactor float64 `json:"range_factor"` // множитель базовой единицы дальности карты
	Damage      float64 `json:"damage"`
	FireRate    float64 `json:"fire_rate"` // выстрелов в секунду
	CanSeeCamo  bool    `json:"can_see_camo"`
}

// TowerLibrary — таблица характеристик, индексируемая TowerType.
var TowerLibrary = [towerTypeCount]TowerDefinition{
	TowerBasic: {
		ID:          "basic",
		Name:        "Basic",
		Cost:        50,
		RangeFactor: 1.5,
		Damage:      20,
		FireRate:    1.0,
		CanSeeCamo:  false,
	},
	TowerSniper: {
		ID:          "sniper",
		Name:        "Sniper",
		Cost:        100,
		RangeFactor: 2.0,
		Damage:      50,
		FireRate:    0.5,
		CanSeeCamo:  true,
	},
	TowerMachine: {
		ID:          "machine",
		Name:        "Machine",
		Cost:        150,
		RangeFactor: 1.0,
		Damage:      10,
		FireRate:    3.0,
		CanSeeCamo:  false,
	},
}

// AllTowerTypes lists every tower type in palette order.
func AllTowerTypes() []TowerType {
	types := make([]TowerType, 0, towerTypeCount)
	for t := TowerBasic; t < towerTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// Valid reports whether t is one of the known tower types.
func (t TowerType) Valid() bool {
	return t >= TowerBasic && t < towerTypeCount
}

// Definition returns the stats for t. ok is false for unknown types.
func (t TowerType) Definition() (TowerDefinition, bool) {
	if !t.Valid() {
		return TowerDefinition{}, false
	}
	return TowerLibrary[t], true
}

func (t TowerType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return TowerLibrary[t].ID
}

// ParseTowerType переводит строковый ID (без учёта регистра) в TowerType.
func ParseTowerType(id string) (TowerType, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for t := TowerBasic; t < towerTypeCount; t++ {
		if TowerLibrary[t].ID == id {
			return t, true
		}
	}
	return 0, false
}
