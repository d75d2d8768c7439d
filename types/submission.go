package types

import "context"

// Submission is one member's raw input row: a name plus one rank per project.
//
// Ranks are positional: Ranks[i] is the member's rank for the i-th project in
// the source's project list, with 1 meaning most preferred. Across one row
// the ranks must form exactly the permutation {1..N}.
type Submission struct {
	// Name is the member's name (must be non-empty).
	Name string `json:"name" yaml:"name"`

	// Ranks holds one integer rank per project, in project list order.
	Ranks []int `json:"ranks" yaml:"ranks"`
}

// RosterSource supplies the project list and member submissions for a run.
//
// Implementations can read various backends:
//   - Static: fixed lists for tests and programmatic use
//   - File: YAML roster files
//   - CSV: exported spreadsheet data
//
// The allocator calls both methods once at the start of each run, before any
// randomized work begins.
type RosterSource interface {
	// ListProjects returns the ordered list of project names.
	//
	// Project order is significant: it fixes both the rank column order of
	// submissions and the group order of the final roster.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []string: Ordered project names
	//   - error: Source read error (nil on success)
	ListProjects(ctx context.Context) ([]string, error)

	// ListSubmissions returns all member submissions, one per input row.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []Submission: Member submissions in input order
	//   - error: Source read error (nil on success)
	ListSubmissions(ctx context.Context) ([]Submission, error)
}
