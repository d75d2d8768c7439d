package export

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	assigntest "github.com/Brannonj96/RandomizeProjectMembers/testing"
	"github.com/Brannonj96/RandomizeProjectMembers/types"
)

func TestNATSPublisher_Publish(t *testing.T) {
	_, nc := assigntest.StartEmbeddedNATS(t)
	kv := assigntest.CreateJetStreamKV(t, nc, "rosters")

	roster := types.NewRoster([]string{"alpha", "beta"})
	roster.Add("alpha", types.NewMember("ada", nil))
	roster.Add("alpha", types.NewMember("grace", nil))
	roster.Add("beta", types.NewMember("ben", nil))

	pub := NewNATSPublisher(kv, "roster.current", assigntest.NewTestLogger(t))
	require.NoError(t, pub.Publish(t.Context(), roster))

	entry, err := kv.Get(t.Context(), "roster.current")
	require.NoError(t, err)

	var groups []types.Group
	require.NoError(t, json.Unmarshal(entry.Value(), &groups))
	require.Equal(t, []types.Group{
		{Project: "alpha", Members: []string{"ada", "grace"}},
		{Project: "beta", Members: []string{"ben"}},
	}, groups)
}

func TestNATSPublisher_DefaultLogger(t *testing.T) {
	_, nc := assigntest.StartEmbeddedNATS(t)
	kv := assigntest.CreateJetStreamKV(t, nc, "rosters")

	roster := types.NewRoster([]string{"alpha"})
	roster.Add("alpha", types.NewMember("ada", nil))

	// A nil logger falls back to the slog default.
	pub := NewNATSPublisher(kv, "roster.current", nil)
	require.NoError(t, pub.Publish(t.Context(), roster))

	_, err := kv.Get(t.Context(), "roster.current")
	require.NoError(t, err)
}

func TestNATSPublisher_Overwrite(t *testing.T) {
	_, nc := assigntest.StartEmbeddedNATS(t)
	kv := assigntest.CreateJetStreamKV(t, nc, "rosters")
	pub := NewNATSPublisher(kv, "roster.current", assigntest.NewTestLogger(t))

	first := types.NewRoster([]string{"alpha"})
	first.Add("alpha", types.NewMember("ada", nil))
	require.NoError(t, pub.Publish(t.Context(), first))

	second := types.NewRoster([]string{"alpha"})
	second.Add("alpha", types.NewMember("grace", nil))
	require.NoError(t, pub.Publish(t.Context(), second))

	entry, err := kv.Get(t.Context(), "roster.current")
	require.NoError(t, err)

	var groups []types.Group
	require.NoError(t, json.Unmarshal(entry.Value(), &groups))
	require.Equal(t, []string{"grace"}, groups[0].Members)
}
