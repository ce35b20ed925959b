package dbscan

// NoiseLabel - метка точки, которая не попала ни в один кластер.
const NoiseLabel = -1

// Кластер - индексы точек в порядке их обнаружения.
type Cluster []int

// Result - итог одного прогона. После возврата из Scan не меняется.
//
// Points - тот же срез, что передали в Scan, индексы в Clusters и Noise указывают в него.
// Noise заполняется во время обхода и не чистится: точка, признанная шумом, может
// позже войти в кластер как граничная и останется в обоих списках.
type Result struct {
	RunID    string
	Points   []Point
	Clusters []Cluster
	Noise    []int
}

func (r *Result) ClusterPoints(i int) []Point {
	return r.resolve(r.Clusters[i])
}

func (r *Result) NoisePoints() []Point {
	return r.resolve(r.Noise)
}

// Labels возвращает для каждой входной точки номер ее кластера или NoiseLabel.
func (r *Result) Labels() []int {
	labels := make([]int, len(r.Points))
	for i := range labels {
		labels[i] = NoiseLabel
	}

	for ci, c := range r.Clusters {
		for _, idx := range c {
			labels[idx] = ci
		}
	}

	return labels
}

// Outliers - точки из Noise, которые так и не вошли ни в один кластер.
func (r *Result) Outliers() []int {
	labels := r.Labels()

	outliers := make([]int, 0, len(r.Noise))
	for _, idx := range r.Noise {
		if labels[idx] == NoiseLabel {
			outliers = append(outliers, idx)
		}
	}

	return outliers
}

func (r *Result) resolve(indices []int) []Point {
	points := make([]Point, len(indices))
	for i, idx := range indices {
		points[i] = r.Points[idx]
	}
	return points
}
