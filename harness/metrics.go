package harness

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics registers the harness's Prometheus instrumentation, the way
// ahrav/go-gavel's infrastructure/middleware.PrometheusMetrics registers its
// own counters/gauges/histograms against a registry at construction time.
type Metrics struct {
	generationsRun   prometheus.Counter
	mutationsApplied *prometheus.CounterVec
	orphansRemoved   *prometheus.CounterVec
	cacheHits        prometheus.Gauge
	cacheMisses      prometheus.Gauge
	evalDuration     prometheus.Histogram
	verifyIssues     prometheus.Gauge
}

// NewMetrics constructs a Metrics instance and registers every collector
// against reg. Passing prometheus.NewRegistry() keeps a harness's metrics
// isolated from the global default registry, which matters when more than
// one harness runs in the same process (e.g. in tests).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		generationsRun: factory.NewCounter(prometheus.CounterOpts{
			Name: "tpg_generations_run_total",
			Help: "Total number of generational-loop iterations completed.",
		}),
		mutationsApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tpg_mutations_applied_total",
			Help: "Total number of mutation-operator invocations, by strategy.",
		}, []string{"strategy"}),
		orphansRemoved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tpg_gc_orphans_removed_total",
			Help: "Total number of orphaned teams/programs removed by GC, by kind.",
		}, []string{"kind"}),
		cacheHits: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tpg_cache_hits",
			Help: "Cumulative evaluation-cache hit count as of the last observation.",
		}),
		cacheMisses: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tpg_cache_misses",
			Help: "Cumulative evaluation-cache miss count as of the last observation.",
		}),
		evalDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tpg_graph_evaluation_duration_seconds",
			Help:    "Wall-clock duration of a single root-to-terminal graph evaluation.",
			Buckets: prometheus.DefBuckets,
		}),
		verifyIssues: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tpg_verify_issues",
			Help: "Number of invariant violations found by the most recent verify.Verify call.",
		}),
	}
}

func (m *Metrics) observeGeneration() { m.generationsRun.Inc() }

func (m *Metrics) observeMutation(strategy string) { m.mutationsApplied.WithLabelValues(strategy).Inc() }

func (m *Metrics) observeOrphansRemoved(kind string, n int) {
	if n > 0 {
		m.orphansRemoved.WithLabelValues(kind).Add(float64(n))
	}
}

func (m *Metrics) observeCacheStats(hits, misses int64) {
	m.cacheHits.Set(float64(hits))
	m.cacheMisses.Set(float64(misses))
}

func (m *Metrics) observeEvalDuration(d time.Duration) { m.evalDuration.Observe(d.Seconds()) }

func (m *Metrics) observeVerifyIssues(n int) { m.verifyIssues.Set(float64(n)) }
