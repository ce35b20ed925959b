package dbscan

import (
	"github.com/0x0FACED/go-dbscan/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Основная функция - база.
// Scan разбивает points на кластеры и шум алгоритмом DBSCAN: точка с окрестностью
// радиуса epsilon не меньше minPts точек (включая саму себя) считается ядровой.
//
// Флаги посещения живут в арене одного вызова, поэтому входной срез не меняется и
// несколько Scan над одним срезом друг другу не мешают.
// log может быть nil.
func Scan(points []Point, epsilon float64, minPts int, log *logger.ZapLogger) (*Result, error) {
	if log == nil {
		log = logger.NewNop()
	}

	runID := uuid.NewString()

	if err := validateInput(points, epsilon, minPts); err != nil {
		log.Error("[dbscan] Входные данные отклонены", zap.String("run", runID), zap.Error(err))
		return nil, err
	}

	log.Info("[dbscan] Алгоритм запущен",
		zap.String("run", runID),
		zap.Int("points", len(points)),
		zap.Float64("epsilon", epsilon),
		zap.Int("min_points", minPts),
	)

	s := newStore(points)
	res := &Result{
		RunID:    runID,
		Points:   points,
		Clusters: make([]Cluster, 0),
		Noise:    make([]int, 0),
	}

	// основной цикл: каждая точка рассматривается не больше одного раза
	for i := range points {
		if s.states[i].visited {
			continue
		}
		s.states[i].visited = true

		neighbors := Neighborhood(points, i, epsilon)
		if len(neighbors) < minPts {
			// флаг inCluster не ставим - позже точку может забрать чужой кластер
			res.Noise = append(res.Noise, i)
			continue
		}

		c := s.expand(make(Cluster, 0, len(neighbors)), i, neighbors, epsilon, minPts)
		res.Clusters = append(res.Clusters, c)

		log.Debug("[dbscan] Новый кластер",
			zap.Int("cluster", len(res.Clusters)-1),
			zap.Stringer("seed", points[i]),
			zap.Int("size", len(c)),
		)
	}

	log.Info("[dbscan] Алгоритм завершен!",
		zap.String("run", runID),
		zap.Int("clusters", len(res.Clusters)),
		zap.Int("noise", len(res.Noise)),
		zap.Int("outliers", len(res.Outliers())),
	)

	return res, nil
}
