// Package metrics - метрики Prometheus для прогонов кластеризации.
package metrics

import (
	"net/http"
	"time"

	"github.com/0x0FACED/go-dbscan/pkg/dbscan"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector держит метрики в собственном реестре, поэтому несколько коллекторов
// (например, по одному на тест) не конфликтуют при регистрации.
type Collector struct {
	registry *prometheus.Registry

	Runs     *prometheus.CounterVec
	Points   prometheus.Counter
	Clusters prometheus.Histogram
	Noise    prometheus.Histogram
	Duration prometheus.Histogram
}

func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of clustering runs",
			},
			[]string{"outcome"},
		),
		Points: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "points_total",
				Help:      "Total number of points clustered",
			},
		),
		Clusters: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "clusters",
				Help:      "Number of clusters found per run",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		Noise: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "noise_points",
				Help:      "Number of points recorded as noise per run",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Clustering run duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}

	registry.MustRegister(c.Runs, c.Points, c.Clusters, c.Noise, c.Duration)

	return c
}

func (c *Collector) ObserveRun(res *dbscan.Result, elapsed time.Duration) {
	c.Runs.WithLabelValues("ok").Inc()
	c.Points.Add(float64(len(res.Points)))
	c.Clusters.Observe(float64(len(res.Clusters)))
	c.Noise.Observe(float64(len(res.Noise)))
	c.Duration.Observe(elapsed.Seconds())
}

func (c *Collector) ObserveFailure() {
	c.Runs.WithLabelValues("error").Inc()
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler отдает реестр коллектора в текстовом формате Prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
