// pkg/pathmap/path.go
package pathmap

import (
	"errors"

	"go-wave-defense/pkg/geom"
)

// ErrShortPath возвращается, если в пути меньше двух точек.
var ErrShortPath = errors.New("pathmap: path needs at least two points")

// Path — упорядоченная последовательность точек маршрута.
// Первая точка — спавн, последняя — выход. После создания не меняется.
type Path struct {
	points []geom.Point
}

// NewPath copies points into an immutable path.
func NewPath(points []geom.Point) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrShortPath
	}
	cp := make([]geom.Point, len(points))
	copy(cp, points)
	return &Path{points: cp}, nil
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.points) - 1
}

// PointCount returns the number of waypoints.
func (p *Path) PointCount() int {
	return len(p.points)
}

// PointAt returns waypoint i. Indices are clamped to the valid range.
func (p *Path) PointAt(i int) geom.Point {
	if i < 0 {
		i = 0
	}
	if i >= len(p.points) {
		i = len(p.points) - 1
	}
	return p.points[i]
}

// LastIndex — индекс точки выхода.
func (p *Path) LastIndex() int {
	return len(p.points) - 1
}

// Start returns the spawn point.
func (p *Path) Start() geom.Point { return p.points[0] }

// End returns the exit point.
func (p *Path) End() geom.Point { return p.points[len(p.points)-1] }

// Points returns a copy of the waypoints.
func (p *Path) Points() []geom.Point {
	cp := make([]geom.Point, len(p.points))
	copy(cp, p.points)
	return cp
}

// TotalLength — суммарная длина всех сегментов.
func (p *Path) TotalLength() float64 {
	total := 0.0
	for i := 0; i < len(p.points)-1; i++ {
		total += geom.Distance(p.points[i], p.points[i+1])
	}
	return total
}

// DistanceTo returns the distance from pt to the nearest path segment.
func (p *Path) DistanceTo(pt geom.Point) float64 {
	best := -1.0
	for i := 0; i < len(p.points)-1; i++ {
		d := geom.DistanceToSegment(pt, p.points[i], p.points[i+1])
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}
