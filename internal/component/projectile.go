// internal/component/projectile.go
package component

import "go-wave-defense/internal/types"

// Projectile представляет летящий снаряд.
// Точка цели фиксируется при выстреле и больше не обновляется.
type Projectile struct {
	SourceID types.EntityID // Башня, выпустившая снаряд
	TargetX  float64
	TargetY  float64
	Speed    float64
	Damage   float64
	Size     float64
	Active   bool
}
