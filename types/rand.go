package types

// Rand supplies the random draws consumed by the assignment engines.
//
// It is the single source of randomness in a run: swapping it for a
// deterministic implementation (see the testing package) makes runs fully
// reproducible without changing any other component.
//
// Satisfied by *rand.Rand from math/rand/v2.
type Rand interface {
	// IntN returns a uniformly random int in [0, n). It panics if n <= 0,
	// matching math/rand/v2 semantics.
	IntN(n int) int
}
