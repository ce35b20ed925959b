package dbscan

// Neighborhood возвращает индексы всех точек, расстояние до которых от points[idx]
// строго меньше epsilon, в порядке входного среза. Сама точка тоже попадает в
// окрестность, если epsilon > 0. При epsilon <= 0 результат пустой.
//
// Перебор полный, без индексов и без кэша: результат зависит только от points и epsilon.
func Neighborhood(points []Point, idx int, epsilon float64) []int {
	center := points[idx]

	neighbors := make([]int, 0)
	for i, other := range points {
		if Distance(center, other) < epsilon {
			neighbors = append(neighbors, i)
		}
	}

	return neighbors
}
