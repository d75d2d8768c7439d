package source

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Brannonj96/RandomizeProjectMembers/types"
)

func TestReadCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("parses a spreadsheet export", func(t *testing.T) {
		src, err := ReadCSV(strings.NewReader(
			"member,alpha,beta,gamma\n" +
				"ada,1,3,2\n" +
				"grace, 2 ,1,3\n"))
		require.NoError(t, err)

		projects, err := src.ListProjects(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"alpha", "beta", "gamma"}, projects)

		subs, err := src.ListSubmissions(ctx)
		require.NoError(t, err)
		require.Equal(t, []types.Submission{
			{Name: "ada", Ranks: []int{1, 3, 2}},
			{Name: "grace", Ranks: []int{2, 1, 3}},
		}, subs)
	})

	t.Run("rejects non-integer rank cells", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(
			"member,alpha,beta\n" +
				"ada,first,2\n"))

		require.ErrorIs(t, err, types.ErrInvalidRank)
		require.Contains(t, err.Error(), "row 2")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(""))

		require.ErrorIs(t, err, types.ErrEmptyRoster)
	})

	t.Run("rejects a header without project columns", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("member\n"))

		require.ErrorIs(t, err, types.ErrEmptyRoster)
	})

	t.Run("leaves shape validation to the allocator", func(t *testing.T) {
		// A short rank row parses; the allocator reports the mismatch.
		src, err := ReadCSV(strings.NewReader(
			"member,alpha,beta\n" +
				"ada,1\n"))
		require.NoError(t, err)

		subs, err := src.ListSubmissions(ctx)
		require.NoError(t, err)
		require.Equal(t, []int{1}, subs[0].Ranks)
	})
}
