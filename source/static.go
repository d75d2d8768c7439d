package source

import (
	"context"
	"slices"
	"sync"

	"github.com/Brannonj96/RandomizeProjectMembers/types"
)

// Static implements a roster source with fixed projects and submissions.
type Static struct {
	mu       sync.RWMutex
	projects []string
	subs     []types.Submission
}

var _ types.RosterSource = (*Static)(nil)

// NewStatic creates a new static roster source.
//
// The source returns fixed lists that never change unless Update is called.
// Useful for tests and for callers that already hold the roster in memory.
//
// Parameters:
//   - projects: Ordered project names
//   - subs: Member submissions, one per row
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic(
//	    []string{"alpha", "beta"},
//	    []types.Submission{
//	        {Name: "ada", Ranks: []int{1, 2}},
//	        {Name: "grace", Ranks: []int{2, 1}},
//	    },
//	)
//	a, err := assign.NewAllocator(&cfg, src)
func NewStatic(projects []string, subs []types.Submission) *Static {
	return &Static{
		projects: slices.Clone(projects),
		subs:     slices.Clone(subs),
	}
}

// ListProjects returns the static project list.
func (s *Static) ListProjects(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.projects), nil
}

// ListSubmissions returns the static submission list.
func (s *Static) ListSubmissions(_ context.Context) ([]types.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.subs), nil
}

// Update replaces the projects and submissions.
//
// This allows the static source to simulate changing input between runs,
// which is useful for testing re-allocation scenarios.
//
// Parameters:
//   - projects: New ordered project names
//   - subs: New member submissions
func (s *Static) Update(projects []string, subs []types.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = slices.Clone(projects)
	s.subs = slices.Clone(subs)
}
