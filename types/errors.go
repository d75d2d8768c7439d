package types

import "errors"

// Sentinel errors for the assignment library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components use these sentinels for known failure
// conditions and wrap additional context with fmt.Errorf("...: %w", err).
//
// Every failure is fatal to the current run: no partial roster is ever
// published. Validation errors are detected eagerly, before any randomized
// work begins; only ErrUnplaceableMember and ErrRebalanceUnsatisfiable can
// surface mid-algorithm.

// Allocator errors - Public API errors returned by the Allocator.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRosterSourceRequired is returned when the roster source is nil.
	ErrRosterSourceRequired = errors.New("roster source is required")

	// ErrSourceFailed is returned when the roster source cannot supply
	// project or member data.
	ErrSourceFailed = errors.New("roster source failed")
)

// Validation errors - Input shape failures, reported with the offending
// project or member named in the wrapped message.
var (
	// ErrEmptyRoster is returned when the input has no projects, no members,
	// or no ranks.
	ErrEmptyRoster = errors.New("empty or malformed roster data")

	// ErrDuplicateProject is returned when two projects share a name.
	ErrDuplicateProject = errors.New("duplicate project name")

	// ErrBlankMemberName is returned when a member row has no name.
	ErrBlankMemberName = errors.New("blank member name")

	// ErrRankCountMismatch is returned when a member's rank row length does
	// not equal the number of projects.
	ErrRankCountMismatch = errors.New("rank count mismatch")

	// ErrInvalidRank is returned when a rank is not an integer in [1, N].
	ErrInvalidRank = errors.New("invalid rank value")

	// ErrDuplicateRank is returned when a member repeats a rank within one row.
	ErrDuplicateRank = errors.New("duplicate rank value")

	// ErrInfeasibleMinimum is returned when minSize x #projects exceeds the
	// total member count, checked before any placement is attempted.
	ErrInfeasibleMinimum = errors.New("minimum group size infeasible")
)

// Engine errors - Failures raised while the assignment engines run.
var (
	// ErrUnplaceableMember is returned when initial assignment cannot seat a
	// member under the size ceiling anywhere in their preference list.
	ErrUnplaceableMember = errors.New("could not place member")

	// ErrRebalanceUnsatisfiable is returned when the rebalancer can make no
	// further progress toward the minimum group size, or exhausts its
	// configured pass budget.
	ErrRebalanceUnsatisfiable = errors.New("minimum group size unsatisfiable")
)

// Exporter errors - Failures raised by roster exporters.
var (
	// ErrPublishFailed is returned when publishing a roster to an external
	// store fails.
	ErrPublishFailed = errors.New("failed to publish roster")
)
