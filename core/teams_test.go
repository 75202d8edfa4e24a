package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix-labs/tpg/core"
)

func TestAddTeamRejectsDuplicateProgram(t *testing.T) {
	g := core.NewGraph()
	p, _ := g.AddProgram(nil, nil)
	_, err := g.AddTeam([]core.ProgramID{p.ID, p.ID}, nil)
	require.ErrorIs(t, err, core.ErrDuplicateProgram)
}

func TestAddTeamRejectsUnknownProgram(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddTeam([]core.ProgramID{core.ProgramID(42)}, nil)
	require.ErrorIs(t, err, core.ErrProgramNotFound)
}

func TestAddProgramToTeamGrowsMembershipWithNoMapping(t *testing.T) {
	g := core.NewGraph()
	p1, _ := g.AddProgram(nil, nil)
	p2, _ := g.AddProgram(nil, nil)
	team, err := g.AddTeam([]core.ProgramID{p1.ID}, nil)
	require.NoError(t, err)

	require.NoError(t, g.AddProgramToTeam(team.ID, p2.ID))
	team, _ = g.Team(team.ID)
	require.Len(t, team.Programs, 2)
	require.NotContains(t, team.ActionMap, p2.ID)

	err = g.AddProgramToTeam(team.ID, p2.ID)
	require.ErrorIs(t, err, core.ErrDuplicateProgram)
}

func TestRemoveProgramFromTeamClearsMappingAndMembership(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddProgram(nil, nil)
	b, _ := g.AddProgram(nil, nil)
	leaf, err := g.AddTeam([]core.ProgramID{a.ID}, nil)
	require.NoError(t, err)
	root, err := g.AddTeam([]core.ProgramID{a.ID, b.ID}, nil)
	require.NoError(t, err)
	dst := leaf.ID
	require.NoError(t, g.SetTeamAction(root.ID, a.ID, &dst))

	require.NoError(t, g.RemoveProgramFromTeam(root.ID, a.ID))

	rootTeam, _ := g.Team(root.ID)
	require.NotContains(t, rootTeam.Programs, a.ID)
	require.NotContains(t, rootTeam.ActionMap, a.ID)
	require.Empty(t, rootTeam.OutEdges)

	pa, _ := g.Program(a.ID)
	_, inRoot := pa.InEdges[root.ID]
	require.False(t, inRoot)
	_, inLeaf := pa.InEdges[leaf.ID]
	require.True(t, inLeaf)
}

func TestRemoveProgramFromTeamRejectsNonMember(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddProgram(nil, nil)
	b, _ := g.AddProgram(nil, nil)
	team, err := g.AddTeam([]core.ProgramID{a.ID}, nil)
	require.NoError(t, err)

	err = g.RemoveProgramFromTeam(team.ID, b.ID)
	require.ErrorIs(t, err, core.ErrProgramNotInTeam)
}

func TestRemoveTeamRefusesWithIncomingEdgesUnlessForced(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddProgram(nil, nil)
	leaf, err := g.AddTeam([]core.ProgramID{a.ID}, nil)
	require.NoError(t, err)
	root, err := g.AddTeam([]core.ProgramID{a.ID}, nil)
	require.NoError(t, err)
	dst := leaf.ID
	require.NoError(t, g.SetTeamAction(root.ID, a.ID, &dst))

	err = g.RemoveTeam(leaf.ID, false)
	require.ErrorIs(t, err, core.ErrTeamHasIncomingEdges)

	require.NoError(t, g.RemoveTeam(leaf.ID, true))
	_, err = g.Team(leaf.ID)
	require.ErrorIs(t, err, core.ErrTeamNotFound)

	// Per spec, force-remove only clears leaf's own outgoing back-references
	// (it has none here); it does not retroactively edit teams that pointed
	// at it. root's mapping is left dangling until verify.Verify(cleanup=true)
	// sweeps it.
	rootTeam, _ := g.Team(root.ID)
	require.Equal(t, leaf.ID, rootTeam.ActionMap[a.ID])
}

func TestRemoveTeamDropsRootStatus(t *testing.T) {
	g := core.NewGraph()
	team, err := g.AddTeam(nil, nil)
	require.NoError(t, err)
	require.NoError(t, g.AddRoot(team.ID))
	require.NoError(t, g.RemoveTeam(team.ID, false))
	require.False(t, g.IsRoot(team.ID))
}
