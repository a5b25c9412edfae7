// Package metrics records maze generation statistics in Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache lookup outcomes.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
	CacheErr  = "error"
)

// PrometheusRecorder records generation outcomes in Prometheus. A nil
// *PrometheusRecorder is valid and records nothing.
type PrometheusRecorder struct {
	registry         *prom.Registry
	generateDuration prom.Histogram
	generated        *prom.CounterVec
	pathLength       prom.Histogram
	cacheResults     *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the metrics on reg, or on a
// fresh registry when reg is nil.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.generateDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "amazeing",
		Name:      "generate_duration_seconds",
		Help:      "Duration of a full generate: carve, relax, expand and solve",
		Buckets:   prom.ExponentialBuckets(0.0001, 4, 8),
	})
	pr.generated = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "amazeing",
		Name:      "generated_total",
		Help:      "Generated mazes by perfect flag",
	}, []string{"perfect"})
	pr.pathLength = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "amazeing",
		Name:      "path_length",
		Help:      "Number of cell steps in the shortest route",
		Buckets:   prom.LinearBuckets(0, 50, 12),
	})
	pr.cacheResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "amazeing",
		Name:      "cache_results_total",
		Help:      "Maze cache lookups by outcome",
	}, []string{"result"})
	reg.MustRegister(pr.generateDuration, pr.generated, pr.pathLength, pr.cacheResults)
	return pr
}

func (p *PrometheusRecorder) ObserveGenerate(d time.Duration, perfect bool, pathLength int) {
	if p == nil || p.generateDuration == nil {
		return
	}
	p.generateDuration.Observe(d.Seconds())
	p.generated.WithLabelValues(strconv.FormatBool(perfect)).Inc()
	p.pathLength.Observe(float64(pathLength))
}

func (p *PrometheusRecorder) IncCacheResult(result string) {
	if p == nil || p.cacheResults == nil {
		return
	}
	p.cacheResults.WithLabelValues(result).Inc()
}

// Handler serves the recorder's registry in the Prometheus exposition format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
