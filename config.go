package assign

import "fmt"

// Config is the configuration for the Allocator.
type Config struct {
	// MaxGroupSize is the hard per-project member ceiling.
	// Required; must be >= 1. Initial assignment never seats a member in a
	// project already at this size.
	MaxGroupSize int `yaml:"maxGroupSize"`

	// MinGroupSize is the per-project member floor the rebalancer tries to
	// satisfy. 0 disables rebalancing entirely. Must be <= MaxGroupSize,
	// and MinGroupSize x #projects must not exceed the member count
	// (checked per run against the actual input).
	MinGroupSize int `yaml:"minGroupSize"`

	// MaxRebalancePasses caps the rebalancer's repair loop. 0 means no cap;
	// termination is still guaranteed because a pass that consumes no
	// preferences fails instead of spinning.
	MaxRebalancePasses int `yaml:"maxRebalancePasses"`

	// Seed seeds the random source when non-zero, making runs reproducible.
	// 0 (the default) draws a fresh random seed per run.
	Seed uint64 `yaml:"seed"`

	// SeedFromInput derives the seed from a digest of the roster input, so
	// identical input always produces the identical roster. Ignored when
	// Seed is non-zero or a custom source is supplied via WithRand.
	SeedFromInput bool `yaml:"seedFromInput"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// MaxGroupSize has no usable default and must be set by the caller.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		MaxGroupSize:       0,
		MinGroupSize:       0,
		MaxRebalancePasses: 0,
		Seed:               0,
		SeedFromInput:      false,
	}
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: ErrInvalidConfig (wrapped with detail) or nil
func (c *Config) Validate() error {
	if c.MaxGroupSize < 1 {
		return fmt.Errorf("%w: MaxGroupSize must be >= 1, got %d",
			ErrInvalidConfig, c.MaxGroupSize)
	}
	if c.MinGroupSize < 0 {
		return fmt.Errorf("%w: MinGroupSize must be >= 0, got %d",
			ErrInvalidConfig, c.MinGroupSize)
	}
	if c.MinGroupSize > c.MaxGroupSize {
		return fmt.Errorf("%w: MinGroupSize (%d) must not exceed MaxGroupSize (%d)",
			ErrInvalidConfig, c.MinGroupSize, c.MaxGroupSize)
	}
	if c.MaxRebalancePasses < 0 {
		return fmt.Errorf("%w: MaxRebalancePasses must be >= 0, got %d",
			ErrInvalidConfig, c.MaxRebalancePasses)
	}

	return nil
}
