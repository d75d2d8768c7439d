package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "")

	m.RecordRunDuration(0.01, "success")
	m.RecordValidationFailure("duplicate_rank")
	m.RecordPlacementAttempts(2)
	m.RecordRebalancePass(3)
	m.SetGroupSize("alpha", 4)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	require.ElementsMatch(t, []string{
		"assign_allocator_run_duration_seconds",
		"assign_allocator_validation_failures_total",
		"assign_engine_placement_attempts",
		"assign_engine_rebalance_passes_total",
		"assign_engine_rebalance_moves_total",
		"assign_engine_group_size",
	}, names)
}

func TestPrometheusCollector_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewPrometheus(reg, "")
	second := NewPrometheus(reg, "")

	// Identical instruments on a shared registry are reused, so two
	// collectors fold into the same series instead of failing.
	first.RecordRebalancePass(1)
	second.RecordRebalancePass(2)

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != "assign_engine_rebalance_passes_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	require.Equal(t, float64(2), total)
}

func TestPrometheusCollector_ConflictingRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	// Occupy a metric name with an incompatible instrument.
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assign_engine_group_size",
		Help: "conflicting",
	}))

	m := NewPrometheus(reg, "")
	require.Panics(t, func() {
		m.SetGroupSize("alpha", 1)
	})
}
