package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
//
// This interface composes smaller, domain-focused interfaces so internal
// components can depend on only the slice they record against.
type MetricsCollector interface {
	AllocatorMetrics
	EngineMetrics
}

// AllocatorMetrics defines metrics for allocator-level operations.
type AllocatorMetrics interface {
	// RecordRunDuration records the time taken by one allocation run.
	//
	// Parameters:
	//   - seconds: Wall-clock duration in seconds
	//   - outcome: "success" or the failed error kind (e.g., "unplaceable_member")
	RecordRunDuration(seconds float64, outcome string)

	// RecordValidationFailure records a rejected input.
	//
	// Parameters:
	//   - kind: Validation error kind (e.g., "duplicate_rank", "blank_member_name")
	RecordValidationFailure(kind string)
}

// EngineMetrics defines metrics for the assignment and rebalance engines.
type EngineMetrics interface {
	// RecordPlacementAttempts records how many preference pops one member
	// needed before a project accepted them during initial assignment.
	RecordPlacementAttempts(attempts int)

	// RecordRebalancePass records one completed rebalance pass.
	//
	// Parameters:
	//   - moves: Number of members moved during the pass
	RecordRebalancePass(moves int)

	// SetGroupSize sets the final member count for a project (gauge metric).
	SetGroupSize(project string, size int)
}
