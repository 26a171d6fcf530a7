// internal/event/types.go
package event

import "go-wave-defense/internal/types"

const (
	EnemySpawned    EventType = "EnemySpawned"    // Враг появился на входе
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен уроном
	EnemyReachedEnd EventType = "EnemyReachedEnd" // Враг дошёл до выхода
	TowerPlaced     EventType = "TowerPlaced"     // Башня построена
	TowerRemoved    EventType = "TowerRemoved"    // Башня продана
	ProjectileFired EventType = "ProjectileFired"
	ProjectileHit   EventType = "ProjectileHit"
	WaveStarted     EventType = "WaveStarted"
	WaveEnded       EventType = "WaveEnded" // Волна закончилась, начался перерыв
	GameOver        EventType = "GameOver"
)

// EnemyData — данные для EnemyKilled / EnemyReachedEnd / EnemySpawned.
type EnemyData struct {
	ID     types.EntityID
	Reward int
	Wave   int
}

// TowerData — данные для TowerPlaced / TowerRemoved.
type TowerData struct {
	ID     types.EntityID
	Cost   int
	Refund int
}

// WaveData — данные для WaveStarted / WaveEnded.
type WaveData struct {
	Number     int
	EnemyCount int
}

// GameOverData — итог забега.
type GameOverData struct {
	Score int
	Wave  int
}

// ShotData — данные для ProjectileFired.
type ShotData struct {
	ProjectileID types.EntityID
	TowerID      types.EntityID
}

// HitData — данные для ProjectileHit.
type HitData struct {
	ProjectileID types.EntityID
	EnemyID      types.EntityID
	Killed       bool // удар опустил здоровье до нуля
}
