// internal/interfaces/game_context.go
package interfaces

import "go-wave-defense/internal/defs"

// GameContext — запросы, которые ввод может отправить движку.
// Все они синхронные и сообщают результат через bool.
type GameContext interface {
	PlaceTower(towerType defs.TowerType, x, y float64) bool
	RemoveTower(x, y float64) bool
	SelectTower(x, y float64) bool
	SetSpeed(multiplier float64) float64
	Speed() float64
	Pause()
	Resume()
	IsPaused() bool
	IsGameOver() bool
}
