package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMember_PopChoice(t *testing.T) {
	t.Run("pops most-preferred first", func(t *testing.T) {
		// Stack is least- to most-preferred: gamma is rank 1.
		m := NewMember("ada", []string{"alpha", "beta", "gamma"})

		first, ok := m.PopChoice()
		require.True(t, ok)
		require.Equal(t, "gamma", first)

		second, ok := m.PopChoice()
		require.True(t, ok)
		require.Equal(t, "beta", second)

		require.Equal(t, 1, m.Remaining())
	})

	t.Run("reports exhaustion", func(t *testing.T) {
		m := NewMember("ada", []string{"alpha"})

		_, ok := m.PopChoice()
		require.True(t, ok)

		name, ok := m.PopChoice()
		require.False(t, ok)
		require.Empty(t, name)
		require.Zero(t, m.Remaining())
	})
}

func TestRoster_AddAndCount(t *testing.T) {
	r := NewRoster([]string{"alpha", "beta"})

	require.Equal(t, 0, r.Count("alpha"))
	require.Equal(t, 0, r.Len())

	r.Add("alpha", NewMember("ada", nil))
	r.Add("alpha", NewMember("grace", nil))
	r.Add("beta", NewMember("edsger", nil))

	require.Equal(t, 2, r.Count("alpha"))
	require.Equal(t, 1, r.Count("beta"))
	require.Equal(t, 3, r.Len())
	require.Equal(t, []string{"ada", "grace"}, r.MembersOf("alpha"))
}

func TestRoster_Move(t *testing.T) {
	t.Run("appends at the end of the destination", func(t *testing.T) {
		r := NewRoster([]string{"alpha", "beta"})
		ada := NewMember("ada", nil)
		grace := NewMember("grace", nil)
		edsger := NewMember("edsger", nil)
		r.Add("alpha", ada)
		r.Add("alpha", grace)
		r.Add("beta", edsger)

		require.True(t, r.Move(ada, "alpha", "beta"))
		require.Equal(t, []string{"grace"}, r.MembersOf("alpha"))
		require.Equal(t, []string{"edsger", "ada"}, r.MembersOf("beta"))
		require.Equal(t, 3, r.Len())
	})

	t.Run("distinguishes duplicate names by identity", func(t *testing.T) {
		r := NewRoster([]string{"alpha", "beta"})
		first := NewMember("sam", nil)
		second := NewMember("sam", nil)
		r.Add("alpha", first)
		r.Add("alpha", second)

		require.True(t, r.Move(second, "alpha", "beta"))
		require.Equal(t, 1, r.Count("alpha"))
		// The remaining member in alpha must be the first instance.
		require.Same(t, first, r.Members("alpha")[0])
	})

	t.Run("returns false when member is not in the source group", func(t *testing.T) {
		r := NewRoster([]string{"alpha", "beta"})
		stray := NewMember("stray", nil)

		require.False(t, r.Move(stray, "alpha", "beta"))
	})
}

func TestRoster_Groups(t *testing.T) {
	t.Run("preserves project input order", func(t *testing.T) {
		r := NewRoster([]string{"zeta", "alpha", "mid"})
		r.Add("mid", NewMember("ada", nil))

		groups := r.Groups()
		require.Len(t, groups, 3)
		require.Equal(t, "zeta", groups[0].Project)
		require.Equal(t, "alpha", groups[1].Project)
		require.Equal(t, "mid", groups[2].Project)
		require.Equal(t, []string{"ada"}, groups[2].Members)
	})

	t.Run("includes empty projects", func(t *testing.T) {
		r := NewRoster([]string{"alpha"})

		groups := r.Groups()
		require.Len(t, groups, 1)
		require.Empty(t, groups[0].Members)
	})
}

func TestRoster_MembersReturnsCopy(t *testing.T) {
	r := NewRoster([]string{"alpha"})
	r.Add("alpha", NewMember("ada", nil))
	r.Add("alpha", NewMember("grace", nil))

	members := r.Members("alpha")
	members[0], members[1] = members[1], members[0]

	// Reordering the copy must not disturb the stored group.
	require.Equal(t, []string{"ada", "grace"}, r.MembersOf("alpha"))
}
