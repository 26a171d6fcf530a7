package component

import "go-wave-defense/internal/types"

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}

// Ratio returns Value/Max in [0, 1] for health bars.
func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	r := h.Value / h.Max
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Damage          float64
	FireRate        float64        // Скорострельность (выстрелов в секунду)
	Range           float64        // Радиус действия в пикселях
	CanSeeCamo      bool           // Видит ли башня камуфлированных врагов
	SinceLastAttack float64        // Сколько секунд прошло с последнего выстрела
	TargetID        types.EntityID // Текущая "липкая" цель, None если цели нет
}
