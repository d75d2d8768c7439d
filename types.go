package assign

import "github.com/Brannonj96/RandomizeProjectMembers/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces via type aliases. Internal packages depend on the types
// subpackage directly, which avoids import cycles while still offering the
// convenient assign.Roster, assign.Logger, etc. for users.
type (
	Member     = types.Member
	Roster     = types.Roster
	Group      = types.Group
	Submission = types.Submission
)

// Re-export interfaces from the types subpackage for convenience.
type (
	RosterSource     = types.RosterSource
	Rand             = types.Rand
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Hooks            = types.Hooks
)
