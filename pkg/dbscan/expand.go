package dbscan

// expand растит кластер c из ядровой точки seed.
// worklist - уже посчитанная окрестность seed; по ходу обхода в конец списка
// дописываются окрестности найденных ядровых точек, и обход доходит и до них.
func (s *store) expand(c Cluster, seed int, worklist []int, epsilon float64, minPts int) Cluster {
	c = append(c, seed)
	s.states[seed].inCluster = true

	// список растет во время обхода, поэтому только курсор, не range
	for cursor := 0; cursor < len(worklist); cursor++ {
		q := worklist[cursor]
		state := &s.states[q]

		// плотность распространяется только при первом посещении точки
		if !state.visited {
			state.visited = true
			neighbors := Neighborhood(s.points, q, epsilon)
			if len(neighbors) >= minPts {
				// дубликаты не убираем, их отсекают флаги
				worklist = append(worklist, neighbors...)
			}
		}

		if !state.inCluster {
			c = append(c, q)
			state.inCluster = true
		}
	}

	return c
}
