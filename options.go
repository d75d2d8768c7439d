package assign

import "github.com/Brannonj96/RandomizeProjectMembers/types"

// Option configures an Allocator with optional dependencies.
type Option func(*allocatorOptions)

// allocatorOptions holds optional Allocator configuration.
type allocatorOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
	hooks   *types.Hooks
	rnd     types.Rand
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewAllocator
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	a, err := assign.NewAllocator(&cfg, src, assign.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(o *allocatorOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewAllocator
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *allocatorOptions) {
		o.metrics = metrics
	}
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewAllocator
//
// Example:
//
//	hooks := &assign.Hooks{
//	    OnMove: func(member, from, to string) {
//	        log.Printf("%s: %s -> %s", member, from, to)
//	    },
//	}
//	a, err := assign.NewAllocator(&cfg, src, assign.WithHooks(hooks))
func WithHooks(hooks *types.Hooks) Option {
	return func(o *allocatorOptions) {
		o.hooks = hooks
	}
}

// WithRand sets a custom random source, overriding Config.Seed and
// Config.SeedFromInput.
//
// The source is the only randomness the algorithm consumes, so a
// deterministic implementation makes runs fully reproducible. See the
// testing package for scripted sources.
//
// Parameters:
//   - rnd: Random source
//
// Returns:
//   - Option: Functional option for NewAllocator
func WithRand(rnd types.Rand) Option {
	return func(o *allocatorOptions) {
		o.rnd = rnd
	}
}
