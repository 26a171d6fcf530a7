package component

// Phase — фаза забега
type Phase int

const (
	PlayingPhase Phase = iota
	GameOverPhase
)

// Economy — деньги, жизни и очки забега.
// Меняется только через EconomySystem.
type Economy struct {
	Money int
	Lives int
	Score int
}

// RunStats — счётчики забега для HUD и метрик.
type RunStats struct {
	EnemiesSpawned   int
	EnemiesKilled    int
	EnemiesLeaked    int
	ShotsFired       int
	ProjectileHits   int
	ProjectileMisses int
	ProjectilesLost  int // вылетели за пределы поля
	TowersBuilt      int
	TowersSold       int
}
