// internal/component/wave.go
package component

// Wave — состояние планировщика волн.
type Wave struct {
	Number      int  // Номер текущей волны, начиная с 1
	EnemyCount  int  // Сколько врагов в волне
	Spawned     int  // Сколько уже появилось
	TickCounter int  // Тики с последнего спавна / с начала перерыва
	InProgress  bool // SPAWNING (true) или BREAK (false)
}
