package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	Reward         int     // Награда за уничтожение
	Size           float64 // Диаметр для коллизий и отрисовки
	IsArmored      bool    // Получает половину урона
	IsCamo         bool    // Невидим для башен без обнаружения
	IsRegenerating bool    // Восстанавливает здоровье со временем
	IsPowerUp      bool    // Несёт усиление (только тег для отображения)
	IsBoss         bool
	Wave           int // Волна, в которой враг появился
}
