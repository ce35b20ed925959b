package dataset

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-dbscan/pkg/dbscan"
)

// Source поставляет набор точек для кластеризации.
type Source func() ([]dbscan.Point, error)

// Random генерирует n точек с координатами, равномерно распределенными в [min, max],
// округленными до decimals знаков после запятой.
func Random(rng *rand.Rand, n int, min, max float64, decimals int) []dbscan.Point {
	if n <= 0 {
		return []dbscan.Point{}
	}
	if min > max {
		min, max = max, min
	}

	points := make([]dbscan.Point, n)
	for i := 0; i < n; i++ {
		points[i] = dbscan.Point{
			X: round(min+rng.Float64()*(max-min), decimals),
			Y: round(min+rng.Float64()*(max-min), decimals),
		}
	}
	return points
}

// Grid раскладывает n точек по центрам ячеек почти квадратной сетки внутри [0,width]x[0,height].
func Grid(n int, width, height float64) []dbscan.Point {
	return GridAt(n, dbscan.Point{}, width, height)
}

// GridAt - то же, что Grid, но сетка начинается в origin.
func GridAt(n int, origin dbscan.Point, width, height float64) []dbscan.Point {
	points := make([]dbscan.Point, 0, max(n, 0))
	if n <= 0 {
		return points
	}

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := width / float64(cols)
	yStep := height / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// строк и столбцов может хватать на большее число точек
			if len(points) == n {
				return points
			}
			points = append(points, dbscan.Point{
				X: origin.X + xStep/2 + float64(j)*xStep,
				Y: origin.Y + yStep/2 + float64(i)*yStep,
			})
		}
	}

	return points
}

func round(v float64, decimals int) float64 {
	if decimals < 0 {
		return v
	}
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
