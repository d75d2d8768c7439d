package testing

import (
	"math/rand/v2"

	"github.com/Brannonj96/RandomizeProjectMembers/types"
)

// ScriptedRand is a deterministic types.Rand that replays a fixed sequence
// of draws.
//
// Each IntN call consumes the next scripted value, reduced modulo n so one
// script stays valid as the considered range shrinks. When the script is
// exhausted, IntN returns 0 (the first remaining element), which keeps the
// tail of a run deterministic without requiring the script to cover every
// draw.
//
// This makes it possible to steer the engines through every possible
// visitation order in tests: with k members the first draw is script[0] % k,
// the next script[1] % (k-1), and so on.
type ScriptedRand struct {
	draws []int
	pos   int
}

var _ types.Rand = (*ScriptedRand)(nil)

// NewScriptedRand creates a scripted random source.
//
// Parameters:
//   - draws: Values replayed by successive IntN calls
//
// Returns:
//   - *ScriptedRand: Deterministic source replaying draws
//
// Example:
//
//	// Visit the second member first, then the remaining one.
//	rnd := assigntest.NewScriptedRand(1)
//	a, err := assign.NewAllocator(&cfg, src, assign.WithRand(rnd))
func NewScriptedRand(draws ...int) *ScriptedRand {
	return &ScriptedRand{draws: draws}
}

// IntN returns the next scripted draw reduced modulo n, or 0 when the
// script is exhausted.
func (r *ScriptedRand) IntN(n int) int {
	if r.pos >= len(r.draws) {
		return 0
	}
	v := r.draws[r.pos] % n
	r.pos++

	return v
}

// Calls reports how many draws have been consumed.
func (r *ScriptedRand) Calls() int {
	return r.pos
}

// NewSeededRand returns a PCG-backed types.Rand with a fixed seed, for
// tests that want realistic randomness with reproducible results.
func NewSeededRand(seed uint64) types.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
