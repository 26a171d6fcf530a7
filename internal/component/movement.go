// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости (единиц в секунду)
type Velocity struct {
	Speed float64
}

// Path — прогресс врага по маршруту.
// CurrentIndex — индекс последней достигнутой точки; только растёт.
type Path struct {
	CurrentIndex int
}
