package mutate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix-labs/tpg/backend"
	"github.com/arborix-labs/tpg/core"
	"github.com/arborix-labs/tpg/mutate"
)

func chain(t *testing.T, n int) (*core.Graph, []core.TeamID, core.ProgramID) {
	t.Helper()
	g := core.NewGraph()
	p, err := g.AddProgram(backend.GenomeC(), nil)
	require.NoError(t, err)

	teams := make([]core.TeamID, n)
	for i := 0; i < n; i++ {
		tm, err := g.AddTeam([]core.ProgramID{p.ID}, nil)
		require.NoError(t, err)
		teams[i] = tm.ID
	}
	for i := 0; i < n-1; i++ {
		dst := teams[i+1]
		require.NoError(t, g.SetTeamAction(teams[i], p.ID, &dst))
	}
	require.NoError(t, g.AddRoot(teams[0]))
	return g, teams, p.ID
}

func TestPathCloneClonesEveryTeamOnThePathAndRelinks(t *testing.T) {
	g, teams, p := chain(t, 4)
	before := make([]core.Team, len(teams))
	for i, tid := range teams {
		tm, err := g.Team(tid)
		require.NoError(t, err)
		before[i] = *tm
	}

	newHead, err := mutate.PathClone(g, teams[0], teams[3], mutate.Config{}, rand.New(rand.NewSource(1)), backend.StackBackend{}, nil)
	require.NoError(t, err)
	require.NotEqual(t, teams[0], newHead)

	// Original chain must be untouched.
	for i, tid := range teams {
		tm, err := g.Team(tid)
		require.NoError(t, err)
		require.Equal(t, before[i].Programs, tm.Programs)
		require.Equal(t, before[i].ActionMap, tm.ActionMap)
	}

	// Walk the cloned chain: each clone must map p to the next clone, not
	// to the corresponding original team.
	cur := newHead
	for i := 0; i < 3; i++ {
		tm, err := g.Team(cur)
		require.NoError(t, err)
		next, ok := tm.ActionMap[p]
		require.True(t, ok)
		require.NotContains(t, teams, next, "cloned chain must not point back into the original chain")
		cur = next
	}
}

func TestPathCloneUnreachableTargetErrors(t *testing.T) {
	g, teams, _ := chain(t, 2)
	isolated, err := g.AddTeam(nil, nil)
	require.NoError(t, err)

	_, err = mutate.PathClone(g, teams[0], isolated.ID, mutate.Config{}, rand.New(rand.NewSource(1)), backend.StackBackend{}, nil)
	require.ErrorIs(t, err, mutate.ErrTargetUnreachable)
}

func TestPathCloneSameStartAndTargetActsLikeRootClone(t *testing.T) {
	g, teams, _ := chain(t, 1)
	newHead, err := mutate.PathClone(g, teams[0], teams[0], mutate.Config{}, rand.New(rand.NewSource(1)), backend.StackBackend{}, nil)
	require.NoError(t, err)
	require.NotEqual(t, teams[0], newHead)
	require.True(t, g.IsRoot(newHead))
}
