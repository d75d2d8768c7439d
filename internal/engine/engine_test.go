package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Brannonj96/RandomizeProjectMembers/internal/metrics"
	assigntest "github.com/Brannonj96/RandomizeProjectMembers/testing"
	"github.com/Brannonj96/RandomizeProjectMembers/types"
)

// stack builds a preference stack in pop order: first argument popped first.
func stack(popOrder ...string) []string {
	out := make([]string, len(popOrder))
	for i, p := range popOrder {
		out[len(popOrder)-1-i] = p
	}

	return out
}

func newEngine(t *testing.T, rnd types.Rand, maxSize, minSize, maxPasses int) *Engine {
	t.Helper()

	return New(rnd, maxSize, minSize, maxPasses,
		assigntest.NewTestLogger(t), metrics.NewNop(), nil)
}

func TestEngine_Place(t *testing.T) {
	projects := []string{"alpha", "beta", "gamma"}

	t.Run("seats every member exactly once under the ceiling", func(t *testing.T) {
		roster := types.NewRoster(projects)
		members := make([]*types.Member, 9)
		for i := range members {
			// Everyone prefers alpha, then beta, then gamma.
			members[i] = types.NewMember("m", stack("alpha", "beta", "gamma"))
		}

		eng := newEngine(t, assigntest.NewSeededRand(11), 3, 0, 0)
		require.NoError(t, eng.Place(roster, members))

		require.Equal(t, 9, roster.Len())
		for _, p := range projects {
			require.LessOrEqual(t, roster.Count(p), 3)
		}
		// With identical preferences the fill order is forced.
		require.Equal(t, 3, roster.Count("alpha"))
		require.Equal(t, 3, roster.Count("beta"))
		require.Equal(t, 3, roster.Count("gamma"))
	})

	t.Run("skips full projects in preference order", func(t *testing.T) {
		roster := types.NewRoster(projects)
		roster.Add("alpha", types.NewMember("seated", nil))

		m := types.NewMember("ada", stack("alpha", "gamma", "beta"))
		eng := newEngine(t, assigntest.NewSeededRand(1), 1, 0, 0)
		require.NoError(t, eng.Place(roster, []*types.Member{m}))

		require.Equal(t, []string{"ada"}, roster.MembersOf("gamma"))
		// The rejected alpha preference is consumed; beta is still on the stack.
		require.Equal(t, 1, m.Remaining())
	})

	t.Run("fails when a member's whole list is at the ceiling", func(t *testing.T) {
		roster := types.NewRoster([]string{"alpha"})
		members := []*types.Member{
			types.NewMember("first", stack("alpha")),
			types.NewMember("second", stack("alpha")),
		}

		eng := newEngine(t, assigntest.NewSeededRand(3), 1, 0, 0)
		err := eng.Place(roster, members)

		require.ErrorIs(t, err, types.ErrUnplaceableMember)
	})

	t.Run("does not reorder the caller's member slice", func(t *testing.T) {
		roster := types.NewRoster(projects)
		first := types.NewMember("first", stack("alpha", "beta", "gamma"))
		second := types.NewMember("second", stack("beta", "alpha", "gamma"))
		members := []*types.Member{first, second}

		eng := newEngine(t, assigntest.NewSeededRand(5), 3, 0, 0)
		require.NoError(t, eng.Place(roster, members))

		require.Same(t, first, members[0])
		require.Same(t, second, members[1])
	})
}

func TestEngine_Rebalance(t *testing.T) {
	t.Run("no-op when minimum size is zero", func(t *testing.T) {
		roster := types.NewRoster([]string{"alpha", "beta"})
		roster.Add("alpha", types.NewMember("ada", stack("beta")))

		rnd := assigntest.NewScriptedRand(0, 0, 0)
		eng := newEngine(t, rnd, 2, 0, 0)
		require.NoError(t, eng.Rebalance(roster))

		require.Equal(t, []string{"ada"}, roster.MembersOf("alpha"))
		require.Equal(t, 0, roster.Count("beta"))
		// No randomness may be consumed when rebalancing is disabled.
		require.Zero(t, rnd.Calls())
	})

	t.Run("moves a member into the deficient project", func(t *testing.T) {
		roster := types.NewRoster([]string{"alpha", "beta"})
		ada := types.NewMember("ada", stack("beta"))
		grace := types.NewMember("grace", nil)
		roster.Add("alpha", ada)
		roster.Add("alpha", grace)

		// Visit alpha first as donor, then draw ada first among its members.
		eng := newEngine(t, assigntest.NewScriptedRand(0, 0), 2, 1, 0)
		require.NoError(t, eng.Rebalance(roster))

		require.Equal(t, []string{"grace"}, roster.MembersOf("alpha"))
		require.Equal(t, []string{"ada"}, roster.MembersOf("beta"))
	})

	t.Run("leaves a drained donor below the minimum", func(t *testing.T) {
		roster := types.NewRoster([]string{"alpha", "beta"})
		ada := types.NewMember("ada", stack("beta"))
		roster.Add("alpha", ada)

		// The deficient set is fixed up front as {beta}; alpha sits exactly
		// at the minimum, donates ada, and is never re-checked.
		eng := newEngine(t, assigntest.NewScriptedRand(0, 0), 2, 1, 0)
		require.NoError(t, eng.Rebalance(roster))

		require.Equal(t, []string{"ada"}, roster.MembersOf("beta"))
		require.Equal(t, 0, roster.Count("alpha"))
	})

	t.Run("burns preferences for non-deficient targets", func(t *testing.T) {
		roster := types.NewRoster([]string{"alpha", "beta", "gamma"})
		ada := types.NewMember("ada", stack("beta", "gamma"))
		grace := types.NewMember("grace", nil)
		ben := types.NewMember("ben", stack("alpha"))
		roster.Add("alpha", ada)
		roster.Add("alpha", grace)
		roster.Add("beta", ben)

		// Pass 1: donor alpha (ada pops beta - burned, grace empty), donor
		// beta (ben pops alpha - burned), gamma skipped as deficient.
		// Pass 2: donor alpha again; ada pops gamma and moves.
		rnd := assigntest.NewScriptedRand(0, 0, 0, 1, 0, 0, 0, 0)
		eng := newEngine(t, rnd, 2, 1, 0)
		require.NoError(t, eng.Rebalance(roster))

		require.Equal(t, []string{"ada"}, roster.MembersOf("gamma"))
		require.Equal(t, []string{"grace"}, roster.MembersOf("alpha"))
		require.Equal(t, []string{"ben"}, roster.MembersOf("beta"))
		require.Zero(t, ada.Remaining())
		require.Zero(t, ben.Remaining())
	})

	t.Run("fails when no preferences remain to make progress", func(t *testing.T) {
		roster := types.NewRoster([]string{"alpha", "beta"})
		roster.Add("alpha", types.NewMember("ada", nil))
		roster.Add("alpha", types.NewMember("grace", nil))

		eng := newEngine(t, assigntest.NewSeededRand(9), 2, 1, 0)
		err := eng.Rebalance(roster)

		require.ErrorIs(t, err, types.ErrRebalanceUnsatisfiable)
	})

	t.Run("enforces the pass budget", func(t *testing.T) {
		roster := types.NewRoster([]string{"alpha", "beta"})
		// Stacks keep producing pops that never hit the deficient project.
		ada := types.NewMember("ada", stack("alpha", "alpha", "alpha", "alpha"))
		grace := types.NewMember("grace", stack("alpha", "alpha", "alpha", "alpha"))
		roster.Add("alpha", ada)
		roster.Add("alpha", grace)

		eng := newEngine(t, assigntest.NewSeededRand(13), 2, 1, 2)
		err := eng.Rebalance(roster)

		require.ErrorIs(t, err, types.ErrRebalanceUnsatisfiable)
	})

	t.Run("invokes move hooks", func(t *testing.T) {
		roster := types.NewRoster([]string{"alpha", "beta"})
		ada := types.NewMember("ada", stack("beta"))
		grace := types.NewMember("grace", nil)
		roster.Add("alpha", ada)
		roster.Add("alpha", grace)

		var moves [][3]string
		hooks := &types.Hooks{
			OnMove: func(member, from, to string) {
				moves = append(moves, [3]string{member, from, to})
			},
		}
		eng := New(assigntest.NewScriptedRand(0, 0), 2, 1, 0,
			assigntest.NewTestLogger(t), metrics.NewNop(), hooks)

		require.NoError(t, eng.Rebalance(roster))
		require.Equal(t, [][3]string{{"ada", "alpha", "beta"}}, moves)
	})
}
