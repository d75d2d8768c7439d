// Package prefs decodes rank permutations into preference stacks.
package prefs

import (
	"fmt"

	"github.com/Brannonj96/RandomizeProjectMembers/types"
)

// Decode builds a preference stack from one member's rank row.
//
// The stack is ordered least- to most-preferred: the project with rank r is
// placed at index N-r, so popping from the end yields rank 1 first, then
// rank 2, and rank N last.
//
// Parameters:
//   - projects: Ordered project names (rank column order)
//   - ranks: One integer rank per project, in the same order
//
// Returns:
//   - []string: Preference stack of length len(projects)
//   - error: ErrRankCountMismatch, ErrInvalidRank, or ErrDuplicateRank with
//     the offending value named; the caller attributes the row
func Decode(projects []string, ranks []int) ([]string, error) {
	n := len(projects)
	if len(ranks) != n {
		return nil, fmt.Errorf("%w: got %d ranks for %d projects",
			types.ErrRankCountMismatch, len(ranks), n)
	}

	stack := make([]string, n)
	seen := make([]bool, n+1)
	for i, r := range ranks {
		if r < 1 || r > n {
			return nil, fmt.Errorf("%w: rank %d for project %q is outside [1, %d]",
				types.ErrInvalidRank, r, projects[i], n)
		}
		if seen[r] {
			return nil, fmt.Errorf("%w: rank %d appears more than once",
				types.ErrDuplicateRank, r)
		}
		seen[r] = true
		stack[n-r] = projects[i]
	}

	return stack, nil
}
