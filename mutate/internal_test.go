package mutate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix-labs/tpg/core"
)

func twoTeamGraph(t *testing.T) (g *core.Graph, a, b core.TeamID, pa, pb core.ProgramID) {
	t.Helper()
	g = core.NewGraph(core.WithActions(1, 2))
	p1, err := g.AddProgram(nil, 1)
	require.NoError(t, err)
	p2, err := g.AddProgram(nil, 2)
	require.NoError(t, err)

	teamA, err := g.AddTeam([]core.ProgramID{p1.ID, p2.ID}, nil)
	require.NoError(t, err)
	teamB, err := g.AddTeam([]core.ProgramID{p1.ID, p2.ID}, nil)
	require.NoError(t, err)
	return g, teamA.ID, teamB.ID, p1.ID, p2.ID
}

func TestActionMapAddMapsAnUnmappedProgram(t *testing.T) {
	g, a, _, p1, _ := twoTeamGraph(t)
	rng := rand.New(rand.NewSource(1))

	require.NoError(t, actionMapAdd(g, a, rng))

	team, err := g.Team(a)
	require.NoError(t, err)
	require.Len(t, team.ActionMap, 1)
	_, ok := team.ActionMap[p1]
	_ = ok // either program may have been chosen
}

func TestActionMapAddNoopWhenEveryProgramMapped(t *testing.T) {
	g, a, b, p1, p2 := twoTeamGraph(t)
	require.NoError(t, g.SetTeamAction(a, p1, &b))
	require.NoError(t, g.SetTeamAction(a, p2, &b))
	rng := rand.New(rand.NewSource(1))

	require.NoError(t, actionMapAdd(g, a, rng))
	team, _ := g.Team(a)
	require.Len(t, team.ActionMap, 2, "no unmapped program left, must be a no-op")
}

func TestActionMapChangeRedirectsExistingMapping(t *testing.T) {
	g, a, b, p1, _ := twoTeamGraph(t)
	orphan, err := g.AddTeam(nil, nil)
	require.NoError(t, err)
	require.NoError(t, g.SetTeamAction(a, p1, &b))

	rng := rand.New(rand.NewSource(1))
	require.NoError(t, actionMapChange(g, a, rng))

	team, _ := g.Team(a)
	require.NotEqual(t, b, team.ActionMap[p1], "must redirect away from the current destination")
	require.Equal(t, orphan.ID, team.ActionMap[p1])
}

func TestActionMapRemoveClearsAMapping(t *testing.T) {
	g, a, b, p1, _ := twoTeamGraph(t)
	require.NoError(t, g.SetTeamAction(a, p1, &b))
	rng := rand.New(rand.NewSource(1))

	require.NoError(t, actionMapRemove(g, a, rng))
	team, _ := g.Team(a)
	require.Empty(t, team.ActionMap)
}

func TestPickDifferentActionPrefersADistinctValue(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		got := pickDifferentAction([]any{1, 2}, 1, rng)
		require.Equal(t, 2, got)
	}
}

func TestPickDifferentActionFallsBackWithOneDistinctValue(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	require.Equal(t, 7, pickDifferentAction([]any{7}, 7, rng))
	require.Equal(t, 7, pickDifferentAction([]any{}, 7, rng))
}

func TestReplaceProgramInTeamPreservesMapping(t *testing.T) {
	g, a, b, p1, _ := twoTeamGraph(t)
	require.NoError(t, g.SetTeamAction(a, p1, &b))

	fresh, err := g.AddProgram(nil, 1)
	require.NoError(t, err)
	require.NoError(t, replaceProgramInTeam(g, a, p1, fresh.ID))

	team, err := g.Team(a)
	require.NoError(t, err)
	require.False(t, team.HasProgram(p1))
	require.True(t, team.HasProgram(fresh.ID))
	require.Equal(t, b, team.ActionMap[fresh.ID])
}
