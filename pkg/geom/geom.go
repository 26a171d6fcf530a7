// pkg/geom/geom.go
package geom

import "math"

// Point — точка на плоскости в игровых единицах (пикселях).
type Point struct {
	X, Y float64
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Direction returns the unit vector from a to b and the distance between them.
// For coincident points the vector is zero: callers treat that as "already there".
func Direction(a, b Point) (dx, dy, dist float64) {
	dx = b.X - a.X
	dy = b.Y - a.Y
	dist = math.Hypot(dx, dy)
	if dist == 0 || math.IsNaN(dist) {
		return 0, 0, 0
	}
	return dx / dist, dy / dist, dist
}

// arriveTolerance — относительный допуск, чтобы накопленная ошибка округления
// (например, при шаге 1/60 с) не откладывала прибытие на лишний тик.
const arriveTolerance = 1e-9

// MoveTowards сдвигает from к to не более чем на step.
// Возвращает новую точку и true, если цель достигнута (в том числе при нулевой дистанции).
func MoveTowards(from, to Point, step float64) (Point, bool) {
	dx, dy, dist := Direction(from, to)
	if dist <= step+arriveTolerance*math.Max(1, step) {
		return to, true
	}
	return Point{X: from.X + dx*step, Y: from.Y + dy*step}, false
}

// DistanceToSegment returns the distance from p to the segment a-b.
// A zero-length segment degrades to the distance to a.
func DistanceToSegment(p, a, b Point) float64 {
	cx := b.X - a.X
	cy := b.Y - a.Y
	lenSq := cx*cx + cy*cy
	if lenSq == 0 {
		return Distance(p, a)
	}

	t := ((p.X-a.X)*cx + (p.Y-a.Y)*cy) / lenSq
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return Distance(p, Point{X: a.X + t*cx, Y: a.Y + t*cy})
}

// Bounds — прямоугольник игрового поля с началом в (0, 0).
type Bounds struct {
	Width, Height float64
}

// Contains reports whether p lies inside the rectangle, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// MinSide returns the shorter side of the rectangle.
func (b Bounds) MinSide() float64 {
	return math.Min(b.Width, b.Height)
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
