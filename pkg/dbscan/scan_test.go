package dbscan

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/0x0FACED/go-dbscan/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPoints(seed int64, n int, min, max float64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: min + rng.Float64()*(max-min),
			Y: min + rng.Float64()*(max-min),
		}
	}
	return points
}

func TestScanScenario(t *testing.T) {
	points := []Point{{0, 0}, {0, 1}, {1, 0}, {10, 10}}

	res, err := Scan(points, 1.5, 3, nil)
	require.NoError(t, err)

	require.Len(t, res.Clusters, 1)
	assert.Equal(t, Cluster{0, 1, 2}, res.Clusters[0])
	assert.Equal(t, []Point{{0, 0}, {0, 1}, {1, 0}}, res.ClusterPoints(0))
	assert.Equal(t, []int{3}, res.Noise)
	assert.Equal(t, []Point{{10, 10}}, res.NoisePoints())
	assert.NotEmpty(t, res.RunID)
}

func TestScanEmpty(t *testing.T) {
	res, err := Scan(nil, 1, 3, nil)
	require.NoError(t, err)

	assert.Empty(t, res.Clusters)
	assert.Empty(t, res.Noise)
	assert.NotNil(t, res.Clusters)
	assert.NotNil(t, res.Noise)
}

func TestScanSinglePoint(t *testing.T) {
	res, err := Scan([]Point{{0, 0}}, 1.0, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, []Cluster{{0}}, res.Clusters)
	assert.Empty(t, res.Noise)
}

func TestScanDegenerateEpsilon(t *testing.T) {
	points := []Point{{0, 0}, {0, 0}, {1, 1}}

	for _, eps := range []float64{0, -2} {
		res, err := Scan(points, eps, 1, nil)
		require.NoError(t, err)

		assert.Empty(t, res.Clusters)
		assert.Equal(t, []int{0, 1, 2}, res.Noise)
	}
}

func TestScanZeroMinPoints(t *testing.T) {
	// пустая окрестность все равно >= 0, каждая точка - свой кластер
	res, err := Scan([]Point{{0, 0}, {0, 0}, {5, 5}}, 0, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, []Cluster{{0}, {1}, {2}}, res.Clusters)
	assert.Empty(t, res.Noise)
}

func TestScanInfiniteEpsilon(t *testing.T) {
	points := []Point{{0, 0}, {100, 100}, {-1e6, 3}}

	res, err := Scan(points, math.Inf(1), 3, nil)
	require.NoError(t, err)

	assert.Equal(t, []Cluster{{0, 1, 2}}, res.Clusters)
}

func TestScanKeepsAbsorbedNoise(t *testing.T) {
	// (0,0) проверяется первой и попадает в шум, затем ее забирает кластер (1,0)
	points := []Point{{0, 0}, {1, 0}, {2, 0}}

	res, err := Scan(points, 1.1, 3, nil)
	require.NoError(t, err)

	assert.Equal(t, []Cluster{{1, 0, 2}}, res.Clusters)
	assert.Equal(t, []int{0}, res.Noise)
	assert.Empty(t, res.Outliers())
	assert.Equal(t, []int{0, 0, 0}, res.Labels())
}

func TestScanChainReachesThroughGrowingWorklist(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}

	res, err := Scan(points, 1.5, 3, nil)
	require.NoError(t, err)

	// от (1,0) плотность доходит до конца цепочки только через дописанные в список окрестности
	assert.Equal(t, []Cluster{{1, 0, 2, 3, 4, 5}}, res.Clusters)
	assert.Equal(t, []int{0}, res.Noise)
}

func TestExpandBorderPointDoesNotPropagate(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	s := newStore(points)

	s.states[1].visited = true
	c := s.expand(nil, 1, Neighborhood(points, 1, 1.5), 1.5, 4)

	// окрестности размера 3 < 4, соседи добавлены, но дальше не пошли
	assert.Equal(t, Cluster{1, 0, 2}, c)
	assert.False(t, s.states[3].visited)
	assert.False(t, s.states[3].inCluster)
	for _, idx := range c {
		assert.True(t, s.states[idx].inCluster)
	}
}

func TestExpandSkipsPointsOfEarlierClusters(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {2, 0}}
	s := newStore(points)

	s.states[0] = pointState{visited: true, inCluster: true}
	s.states[1].visited = true
	c := s.expand(nil, 1, Neighborhood(points, 1, 1.5), 1.5, 3)

	assert.Equal(t, Cluster{1, 2}, c)
}

func TestScanPartition(t *testing.T) {
	tests := []struct {
		name    string
		seed    int64
		epsilon float64
		minPts  int
	}{
		{"Sparse", 1, 3, 5},
		{"Dense", 2, 8, 4},
		{"Reference", 3, 5, 5},
		{"Tiny", 4, 0.5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := randomPoints(tt.seed, 400, -100, 100)

			res, err := Scan(points, tt.epsilon, tt.minPts, nil)
			require.NoError(t, err)

			seen := make(map[int]int, len(points))
			for _, c := range res.Clusters {
				assert.NotEmpty(t, c)
				for _, idx := range c {
					seen[idx]++
				}
			}
			for idx, n := range seen {
				assert.Equal(t, 1, n, "point %d is in %d clusters", idx, n)
			}

			noise := make(map[int]bool, len(res.Noise))
			for _, idx := range res.Noise {
				assert.False(t, noise[idx], "point %d recorded as noise twice", idx)
				noise[idx] = true
			}

			for idx := range points {
				assert.True(t, seen[idx] == 1 || noise[idx], "point %d is lost", idx)
			}

			// кластеры и настоящие выбросы - точное разбиение
			assert.Equal(t, len(points), len(seen)+len(res.Outliers()))
		})
	}
}

func TestScanIsRepeatable(t *testing.T) {
	points := randomPoints(7, 500, -100, 100)
	before := append([]Point(nil), points...)

	first, err := Scan(points, 5, 5, nil)
	require.NoError(t, err)
	second, err := Scan(points, 5, 5, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Clusters, second.Clusters)
	assert.Equal(t, first.Noise, second.Noise)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, before, points)
}

func TestScanConcurrentRunsOnSharedInput(t *testing.T) {
	points := randomPoints(11, 300, -50, 50)

	expected, err := Scan(points, 4, 4, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Scan(points, 4, 4, nil)
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		require.NotNil(t, res)
		assert.Equal(t, expected.Clusters, res.Clusters)
		assert.Equal(t, expected.Noise, res.Noise)
	}
}

func TestScanCorePointNeighborsShareCluster(t *testing.T) {
	points := randomPoints(5, 400, -60, 60)
	const eps, minPts = 6.0, 4

	res, err := Scan(points, eps, minPts, nil)
	require.NoError(t, err)
	labels := res.Labels()

	isCore := make([]bool, len(points))
	for i := range points {
		isCore[i] = len(Neighborhood(points, i, eps)) >= minPts
	}

	for i := range points {
		if !isCore[i] {
			continue
		}
		require.NotEqual(t, NoiseLabel, labels[i])
		for _, j := range Neighborhood(points, i, eps) {
			// сосед ядровой точки всегда в каком-то кластере
			assert.NotEqual(t, NoiseLabel, labels[j])
			if isCore[j] {
				assert.Equal(t, labels[i], labels[j], "core points %d and %d split", i, j)
			}
		}
	}
}

func TestScanMinPointsOneHasNoNoise(t *testing.T) {
	points := randomPoints(9, 300, -100, 100)

	res, err := Scan(points, 2.5, 1, nil)
	require.NoError(t, err)

	assert.Empty(t, res.Noise)
	total := 0
	for _, c := range res.Clusters {
		total += len(c)
	}
	assert.Equal(t, len(points), total)
}

func TestScanMonotonicEpsilon(t *testing.T) {
	points := []Point{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
		{3, 0},
		{5, 0}, {5, 1}, {6, 0},
		{20, 20},
	}
	const small, large = 1.2, 2.1

	for i := range points {
		assert.LessOrEqual(t, len(Neighborhood(points, i, small)), len(Neighborhood(points, i, large)))
	}

	narrow, err := Scan(points, small, 3, nil)
	require.NoError(t, err)
	wide, err := Scan(points, large, 3, nil)
	require.NoError(t, err)

	assert.Len(t, narrow.Clusters, 2)
	assert.Equal(t, []int{4, 8}, narrow.Noise)

	// мост (3,0) становится ядровой точкой и склеивает оба кластера
	assert.Len(t, wide.Clusters, 1)
	assert.Equal(t, []int{8}, wide.Noise)

	assert.LessOrEqual(t, len(wide.Noise), len(narrow.Noise))
	assert.LessOrEqual(t, len(wide.Outliers()), len(narrow.Outliers()))
}

func TestScanRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		points  []Point
		epsilon float64
		minPts  int
		field   string
	}{
		{"NaNCoordinate", []Point{{0, 0}, {math.NaN(), 1}}, 1, 1, "Points[1].X"},
		{"InfCoordinate", []Point{{0, math.Inf(-1)}}, 1, 1, "Points[0].Y"},
		{"NaNEpsilon", []Point{{0, 0}}, math.NaN(), 1, "Epsilon"},
		{"NegativeMinPoints", []Point{{0, 0}}, 1, -1, "MinPoints"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Scan(tt.points, tt.epsilon, tt.minPts, nil)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.field)
			assert.Nil(t, res)
		})
	}
}

func TestScanLogsRun(t *testing.T) {
	log := logger.New()

	res, err := Scan([]Point{{0, 0}, {0, 1}, {1, 0}, {10, 10}}, 1.5, 3, log)
	require.NoError(t, err)

	raw := log.Raw()
	assert.Contains(t, raw, "Алгоритм запущен")
	assert.Contains(t, raw, "Новый кластер")
	assert.Contains(t, raw, "Алгоритм завершен!")
	assert.Contains(t, raw, res.RunID)
	require.Len(t, log.Logs, 1)
}
