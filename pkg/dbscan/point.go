package dbscan

import (
	"math"
	"strconv"
)

// Точка на плоскости. Флаги алгоритма хранятся отдельно (см. store),
// поэтому сам срез точек во время прогона не меняется.
type Point struct {
	X float64 `validate:"finite"`
	Y float64 `validate:"finite"`
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}

// Евклидово расстояние
func Distance(a, b Point) float64 {
	return math.Sqrt((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y))
}

// состояние точки на время одного прогона
type pointState struct {
	// окрестность точки уже считали
	visited bool
	// точка уже лежит в каком-то кластере
	inCluster bool
}

// store - арена точек одного прогона.
// Везде (рабочий список, кластеры, шум) точка представлена своим индексом,
// поэтому изменение флага через любой индекс видно всем.
type store struct {
	points []Point
	states []pointState
}

func newStore(points []Point) *store {
	return &store{
		points: points,
		states: make([]pointState, len(points)),
	}
}
