// Package engine implements the two assignment passes: greedy randomized
// initial placement under a size ceiling, and the minimum-size rebalancer.
package engine

import (
	"fmt"
	"slices"

	"github.com/Brannonj96/RandomizeProjectMembers/internal/pick"
	"github.com/Brannonj96/RandomizeProjectMembers/types"
)

// Engine runs the assignment passes against a roster.
//
// The engine is single-threaded and stateless between calls; all mutable
// assignment state lives in the roster and the members' preference stacks.
type Engine struct {
	rnd     types.Rand
	logger  types.Logger
	metrics types.EngineMetrics
	hooks   *types.Hooks

	maxSize   int
	minSize   int
	maxPasses int
}

// New creates an engine.
//
// Parameters:
//   - rnd: Random source for member and project visitation order
//   - maxSize: Hard per-project member ceiling (>= 1)
//   - minSize: Per-project member floor (0 disables rebalancing)
//   - maxPasses: Rebalance pass budget (0 = no cap; progress detection still
//     guarantees termination)
//   - logger: Structured logger
//   - metrics: Engine metrics sink
//   - hooks: Optional lifecycle callbacks (may be nil)
func New(rnd types.Rand, maxSize, minSize, maxPasses int,
	logger types.Logger, metrics types.EngineMetrics, hooks *types.Hooks,
) *Engine {
	return &Engine{
		rnd:       rnd,
		logger:    logger,
		metrics:   metrics,
		hooks:     hooks,
		maxSize:   maxSize,
		minSize:   minSize,
		maxPasses: maxPasses,
	}
}

// Place assigns every member to exactly one project.
//
// Members are visited in random order, one draw without replacement per
// step. The drawn member's preference stack is popped most-preferred-first
// until a project below the size ceiling accepts them. Rejected preferences
// are consumed permanently; anything never reached stays on the stack for
// the rebalancer.
//
// Within a project's group, member order reflects the random visitation
// order of the outer loop, not preference rank.
//
// Parameters:
//   - roster: Empty roster to populate (one group per project)
//   - members: All members, each with a full preference stack
//
// Returns:
//   - error: ErrUnplaceableMember if a member's whole preference list is at
//     the ceiling; the roster must then be discarded (no partial output)
func (e *Engine) Place(roster *types.Roster, members []*types.Member) error {
	pool := slices.Clone(members)
	for k := len(pool); k > 0; k-- {
		m := pick.Draw(e.rnd, pool, k)

		attempts := 0
		for {
			project, ok := m.PopChoice()
			if !ok {
				return fmt.Errorf("%w: every project in %q's preference list is full",
					types.ErrUnplaceableMember, m.Name)
			}
			attempts++
			if roster.Count(project) >= e.maxSize {
				continue
			}

			roster.Add(project, m)
			e.metrics.RecordPlacementAttempts(attempts)
			if e.hooks != nil && e.hooks.OnPlacement != nil {
				e.hooks.OnPlacement(m.Name, project)
			}
			e.logger.Debug("member placed",
				"member", m.Name, "project", project, "attempts", attempts)

			break
		}
	}

	return nil
}

// Rebalance raises every project to at least the minimum size by moving
// members out of non-deficient projects, guided only by each mover's
// remaining preference stack. It is a no-op when the minimum size is zero.
//
// The deficient set is computed once, before the pass loop begins. A donor
// that drops below the minimum by giving up a member is not re-added to the
// set and may finish under the floor.
//
// Each visited donor member loses exactly one preference per visit, whether
// or not it produces a move. A pass that pops nothing while projects remain
// deficient can never make progress, so it fails instead of looping forever.
//
// Parameters:
//   - roster: Roster produced by Place
//
// Returns:
//   - error: ErrRebalanceUnsatisfiable when no remaining preference chain
//     can fill the deficient projects, or the pass budget is exhausted
func (e *Engine) Rebalance(roster *types.Roster) error {
	if e.minSize <= 0 {
		return nil
	}

	deficient := make(map[string]struct{})
	for _, p := range roster.Projects() {
		if roster.Count(p) < e.minSize {
			deficient[p] = struct{}{}
		}
	}

	pass := 0
	for len(deficient) > 0 {
		pass++
		if e.maxPasses > 0 && pass > e.maxPasses {
			return fmt.Errorf("%w: %d project(s) still deficient after %d passes",
				types.ErrRebalanceUnsatisfiable, len(deficient), e.maxPasses)
		}

		moves, pops := 0, 0
		projects := roster.Projects()
		for k := len(projects); k > 0 && len(deficient) > 0; k-- {
			donor := pick.Draw(e.rnd, projects, k)
			if _, short := deficient[donor]; short {
				// A project that needs members is not used as a donor.
				continue
			}

			members := roster.Members(donor)
			for j := len(members); j > 0 && len(deficient) > 0; j-- {
				m := pick.Draw(e.rnd, members, j)
				choice, ok := m.PopChoice()
				if !ok {
					continue
				}
				pops++
				if _, short := deficient[choice]; !short {
					// Not a project in need: the preference is burned.
					continue
				}

				roster.Move(m, donor, choice)
				moves++
				if e.hooks != nil && e.hooks.OnMove != nil {
					e.hooks.OnMove(m.Name, donor, choice)
				}
				e.logger.Debug("member moved",
					"member", m.Name, "from", donor, "to", choice)

				if roster.Count(choice) >= e.minSize {
					delete(deficient, choice)
				}
			}
		}

		e.metrics.RecordRebalancePass(moves)
		if e.hooks != nil && e.hooks.OnPassComplete != nil {
			e.hooks.OnPassComplete(pass, len(deficient))
		}
		e.logger.Debug("rebalance pass complete",
			"pass", pass, "moves", moves, "deficient", len(deficient))

		if pops == 0 && len(deficient) > 0 {
			return fmt.Errorf("%w: no remaining preferences reach the %d deficient project(s)",
				types.ErrRebalanceUnsatisfiable, len(deficient))
		}
	}

	return nil
}
