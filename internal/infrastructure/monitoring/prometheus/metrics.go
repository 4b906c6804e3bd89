// Package prometheus exposes application metrics for nciserver on a private
// registry, so only deliberately registered series are exported.
package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xtalgeom/nciscan/pkg/types/chem"
)

// Default histogram buckets.
var (
	// AnalysisDurationBuckets covers the expected in-memory analysis range:
	// sub-millisecond for small molecules up to seconds for large systems.
	AnalysisDurationBuckets = []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5, 10}
	// AtomCountBuckets covers typical structure sizes.
	AtomCountBuckets = []float64{5, 10, 25, 50, 100, 250, 500, 1000}
	// HTTPDurationBuckets is the conventional request latency spread.
	HTTPDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
)

// Metrics holds every application metric plus the registry backing them.
type Metrics struct {
	registry *prometheus.Registry

	AnalysesTotal     *prometheus.CounterVec
	AnalysisDuration  prometheus.Histogram
	AnalysisAtomCount prometheus.Histogram
	InteractionsTotal *prometheus.CounterVec
	FragmentsPerRun   prometheus.Histogram

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// Options configures metric construction.
type Options struct {
	// Namespace prefixes every metric name.  Defaults to "nciscan".
	Namespace string
	// EnableRuntimeMetrics additionally registers the standard Go and
	// process collectors.
	EnableRuntimeMetrics bool
}

// New constructs and registers all application metrics on a fresh registry.
func New(opts Options) *Metrics {
	ns := opts.Namespace
	if ns == "" {
		ns = "nciscan"
	}

	registry := prometheus.NewRegistry()
	if opts.EnableRuntimeMetrics {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		registry: registry,
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "analyses_total",
			Help:      "Structure analyses by outcome.",
		}, []string{"status"}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "analysis_duration_seconds",
			Help:      "End-to-end analysis duration.",
			Buckets:   AnalysisDurationBuckets,
		}),
		AnalysisAtomCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "analysis_atom_count",
			Help:      "Atoms per analyzed structure.",
			Buckets:   AtomCountBuckets,
		}),
		InteractionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "interactions_total",
			Help:      "Detected non-covalent interactions by type and scope.",
		}, []string{"type", "scope"}),
		FragmentsPerRun: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "fragments_per_analysis",
			Help:      "Covalent fragments per analyzed structure.",
			Buckets:   []float64{1, 2, 3, 5, 10, 25, 50},
		}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by method and path.",
			Buckets:   HTTPDurationBuckets,
		}, []string{"method", "path"}),
	}

	registry.MustRegister(
		m.AnalysesTotal,
		m.AnalysisDuration,
		m.AnalysisAtomCount,
		m.InteractionsTotal,
		m.FragmentsPerRun,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)
	return m
}

// Handler returns the exposition endpoint for the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveAnalysisSuccess records one completed analysis.
func (m *Metrics) ObserveAnalysisSuccess(atoms, fragments int, elapsed time.Duration, interactions []chem.InteractionDTO) {
	m.AnalysesTotal.WithLabelValues("success").Inc()
	m.AnalysisDuration.Observe(elapsed.Seconds())
	m.AnalysisAtomCount.Observe(float64(atoms))
	m.FragmentsPerRun.Observe(float64(fragments))
	for _, it := range interactions {
		m.InteractionsTotal.WithLabelValues(string(it.Type), string(it.Scope)).Inc()
	}
}

// ObserveAnalysisFailure records one failed analysis.
func (m *Metrics) ObserveAnalysisFailure() {
	m.AnalysesTotal.WithLabelValues("error").Inc()
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
