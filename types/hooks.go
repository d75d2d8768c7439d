package types

// Hooks defines callbacks for allocation lifecycle events.
//
// All hooks are optional and are invoked synchronously from the single
// thread of control that runs the engines, in the order events occur.
// Hooks must not mutate the roster; they exist for observation (progress
// reporting, tracing, audit logs).
//
// Best practices for hook implementation:
//   - Complete quickly (hooks run on the algorithm's hot path)
//   - Don't block on I/O
//   - Treat arguments as read-only
type Hooks struct {
	// OnPlacement is called when initial assignment seats a member.
	OnPlacement func(member, project string)

	// OnMove is called when the rebalancer moves a member between projects.
	OnMove func(member, from, to string)

	// OnPassComplete is called at the end of each rebalance pass.
	// deficient is the number of projects still below the minimum size.
	OnPassComplete func(pass, deficient int)
}
