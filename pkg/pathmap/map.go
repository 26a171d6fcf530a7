// pkg/pathmap/map.go
package pathmap

import (
	"go-wave-defense/pkg/geom"
)

const (
	rangeUnitRatio    = 0.2    // базовая единица дальности от меньшей стороны карты
	clearanceRatio    = 0.05   // минимальный отступ башни от дороги
	speedBaselineSide = 1000.0 // сторона карты, для которой скорость врагов не масштабируется
)

// Map описывает игровое поле: размеры и маршрут врагов.
// Движок считает карту неизменной на всё время забега.
type Map struct {
	Bounds geom.Bounds
	Path   *Path
}

// NewMap builds a map from explicit bounds and waypoints.
func NewMap(width, height float64, points []geom.Point) (*Map, error) {
	path, err := NewPath(points)
	if err != nil {
		return nil, err
	}
	return &Map{
		Bounds: geom.Bounds{Width: width, Height: height},
		Path:   path,
	}, nil
}

// DefaultMap строит змейку из десяти точек, масштабированную под размер поля.
func DefaultMap(width, height float64) *Map {
	w, h := width, height
	points := []geom.Point{
		{X: 0, Y: h * 0.2},       // вход слева
		{X: w * 0.2, Y: h * 0.2}, // вправо
		{X: w * 0.2, Y: h * 0.8}, // вниз
		{X: w * 0.4, Y: h * 0.8},
		{X: w * 0.4, Y: h * 0.4},
		{X: w * 0.6, Y: h * 0.4},
		{X: w * 0.6, Y: h * 0.6},
		{X: w * 0.8, Y: h * 0.6},
		{X: w * 0.8, Y: h * 0.2},
		{X: w, Y: h * 0.2}, // выход справа
	}
	m, err := NewMap(width, height, points)
	if err != nil {
		// Десять точек — путь всегда валиден.
		panic(err)
	}
	return m
}

// RangeUnit is the map-size-derived unit that tower ranges are multiples of.
func (m *Map) RangeUnit() float64 {
	return m.Bounds.MinSide() * rangeUnitRatio
}

// PathClearance is the minimum gap between a tower footprint and any path segment.
func (m *Map) PathClearance() float64 {
	return m.Bounds.MinSide() * clearanceRatio
}

// SpeedScale normalizes enemy speed so traversal time does not depend on resolution.
func (m *Map) SpeedScale() float64 {
	return m.Bounds.MinSide() / speedBaselineSide
}
