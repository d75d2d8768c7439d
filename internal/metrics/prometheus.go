package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Brannonj96/RandomizeProjectMembers/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metric instruments are registered lazily on first use so that constructing
// a collector never panics on duplicate registration in tests.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	runDuration        *prometheus.HistogramVec
	validationFailures *prometheus.CounterVec
	placementAttempts  prometheus.Histogram
	rebalancePasses    prometheus.Counter
	rebalanceMoves     prometheus.Counter
	groupSize          *prometheus.GaugeVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "assign" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "assign"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.runDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "allocator",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of allocation runs by outcome.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5},
		}, []string{"outcome"})

		p.validationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "allocator",
			Name:      "validation_failures_total",
			Help:      "Total rejected inputs by validation error kind.",
		}, []string{"kind"})

		p.placementAttempts = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "placement_attempts",
			Help:      "Preference pops needed to seat one member during initial assignment.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		})

		p.rebalancePasses = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "rebalance_passes_total",
			Help:      "Total completed rebalance passes.",
		})

		p.rebalanceMoves = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "rebalance_moves_total",
			Help:      "Total members moved by the rebalancer.",
		})

		p.groupSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "group_size",
			Help:      "Final member count per project.",
		}, []string{"project"})

		p.runDuration = p.register(p.runDuration).(*prometheus.HistogramVec)
		p.validationFailures = p.register(p.validationFailures).(*prometheus.CounterVec)
		p.placementAttempts = p.register(p.placementAttempts).(prometheus.Histogram)
		p.rebalancePasses = p.register(p.rebalancePasses).(prometheus.Counter)
		p.rebalanceMoves = p.register(p.rebalanceMoves).(prometheus.Counter)
		p.groupSize = p.register(p.groupSize).(*prometheus.GaugeVec)
	})
}

// register adds the collector to the registry, reusing the existing collector
// when an identical one is already registered. Any other registration error
// is a programming mistake and panics.
func (p *PrometheusCollector) register(c prometheus.Collector) prometheus.Collector {
	if err := p.reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector
		}
		panic(err)
	}

	return c
}

// RecordRunDuration records the duration of one allocation run.
func (p *PrometheusCollector) RecordRunDuration(seconds float64, outcome string) {
	p.ensureRegistered()
	p.runDuration.WithLabelValues(outcome).Observe(seconds)
}

// RecordValidationFailure records a rejected input by error kind.
func (p *PrometheusCollector) RecordValidationFailure(kind string) {
	p.ensureRegistered()
	p.validationFailures.WithLabelValues(kind).Inc()
}

// RecordPlacementAttempts records the pops needed to seat one member.
func (p *PrometheusCollector) RecordPlacementAttempts(attempts int) {
	p.ensureRegistered()
	p.placementAttempts.Observe(float64(attempts))
}

// RecordRebalancePass records one completed rebalance pass and its moves.
func (p *PrometheusCollector) RecordRebalancePass(moves int) {
	p.ensureRegistered()
	p.rebalancePasses.Inc()
	p.rebalanceMoves.Add(float64(moves))
}

// SetGroupSize sets the final member count gauge for a project.
func (p *PrometheusCollector) SetGroupSize(project string, size int) {
	p.ensureRegistered()
	p.groupSize.WithLabelValues(project).Set(float64(size))
}
