// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/Brannonj96/RandomizeProjectMembers/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	m := metrics.NewNop()
//	a, err := assign.NewAllocator(&cfg, src, assign.WithMetrics(m))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// AllocatorMetrics implementation

// RecordRunDuration discards the run duration metric.
func (n *NopMetrics) RecordRunDuration(_ /* seconds */ float64, _ /* outcome */ string) {
	// No-op
}

// RecordValidationFailure discards the validation failure metric.
func (n *NopMetrics) RecordValidationFailure(_ /* kind */ string) {
	// No-op
}

// EngineMetrics implementation

// RecordPlacementAttempts discards the placement attempts metric.
func (n *NopMetrics) RecordPlacementAttempts(_ /* attempts */ int) {
	// No-op
}

// RecordRebalancePass discards the rebalance pass metric.
func (n *NopMetrics) RecordRebalancePass(_ /* moves */ int) {
	// No-op
}

// SetGroupSize discards the group size metric.
func (n *NopMetrics) SetGroupSize(_ /* project */ string, _ /* size */ int) {
	// No-op
}
