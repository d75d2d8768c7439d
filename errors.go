package assign

import "github.com/Brannonj96/RandomizeProjectMembers/types"

// Sentinel errors returned by the Allocator, re-exported from the types
// subpackage so callers can errors.Is against either package.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrRosterSourceRequired is returned when the roster source is nil.
	ErrRosterSourceRequired = types.ErrRosterSourceRequired

	// ErrSourceFailed is returned when the roster source cannot supply data.
	ErrSourceFailed = types.ErrSourceFailed

	// ErrEmptyRoster is returned when the input has no projects or no members.
	ErrEmptyRoster = types.ErrEmptyRoster

	// ErrDuplicateProject is returned when two projects share a name.
	ErrDuplicateProject = types.ErrDuplicateProject

	// ErrBlankMemberName is returned when a member row has no name.
	ErrBlankMemberName = types.ErrBlankMemberName

	// ErrRankCountMismatch is returned when a rank row length differs from
	// the number of projects.
	ErrRankCountMismatch = types.ErrRankCountMismatch

	// ErrInvalidRank is returned when a rank falls outside [1, N].
	ErrInvalidRank = types.ErrInvalidRank

	// ErrDuplicateRank is returned when a member repeats a rank.
	ErrDuplicateRank = types.ErrDuplicateRank

	// ErrInfeasibleMinimum is returned when the minimum size cannot be met
	// even in principle (minSize x #projects > #members).
	ErrInfeasibleMinimum = types.ErrInfeasibleMinimum

	// ErrUnplaceableMember is returned when initial assignment cannot seat a
	// member anywhere in their preference list.
	ErrUnplaceableMember = types.ErrUnplaceableMember

	// ErrRebalanceUnsatisfiable is returned when rebalancing cannot reach
	// the minimum group size.
	ErrRebalanceUnsatisfiable = types.ErrRebalanceUnsatisfiable
)
