// Package assign distributes members across capacity-bounded project groups
// based on each member's ranked preferences.
//
// The algorithm is a randomized greedy heuristic with a repair pass, not an
// optimization solver: members are visited in random order and seated in
// their most-preferred project that is still below the size ceiling, then an
// optional rebalancing pass moves members into under-populated projects
// using each mover's next-best remaining preference.
//
// # Quick Start
//
//	cfg := assign.Config{
//	    MaxGroupSize: 6,
//	    MinGroupSize: 3,
//	}
//
//	src := source.NewStatic(projects, submissions)
//	a, err := assign.NewAllocator(&cfg, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	roster, err := a.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, g := range roster.Groups() {
//	    fmt.Println(g.Project, g.Members)
//	}
//
// # Input Contract
//
// Each member submits one rank per project, 1 meaning most preferred; across
// one row the ranks must form exactly the permutation {1..N}. Malformed
// input is rejected before any randomized work begins, and every failure is
// fatal to the run: no partial roster is ever returned.
//
// # Reproducibility
//
// All randomness flows through a single injectable source. Set Config.Seed
// for fixed-seed runs, Config.SeedFromInput to tie the outcome to an input
// digest, or supply your own source with WithRand. Two runs with the same
// input and the same random source produce identical rosters.
//
// # Guarantees and Limits
//
// On success every member occupies exactly one group and no group exceeds
// MaxGroupSize. When MinGroupSize > 0 the rebalancer raises every group to
// the minimum or fails with ErrRebalanceUnsatisfiable; it never runs
// unbounded. A donor group may itself be left below the minimum by a move;
// the repair pass does not revisit donors.
package assign
