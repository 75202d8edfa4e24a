package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix-labs/tpg/backend"
	"github.com/arborix-labs/tpg/cache"
	"github.com/arborix-labs/tpg/core"
	"github.com/arborix-labs/tpg/eval"
)

// Scenario 1: single-team leaf, two programs, no action map.
func TestScenarioSingleTeamLeaf(t *testing.T) {
	g := core.NewGraph(core.WithActions(1, 2))
	b := backend.StackBackend{}

	a, err := g.AddProgram(backend.GenomeA(), 1)
	require.NoError(t, err)
	bp, err := g.AddProgram(backend.GenomeB(), 2)
	require.NoError(t, err)

	team, err := g.AddTeam([]core.ProgramID{a.ID, bp.ID}, nil)
	require.NoError(t, err)
	require.NoError(t, g.AddRoot(team.ID))

	res, err := eval.Graph(g, team.ID, b, nil, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 2, res.Output) // B wins (1.5 > 0.6666...)

	res, err = eval.Graph(g, team.ID, b, nil, []float64{1, 2, 1})
	require.NoError(t, err)
	require.Equal(t, 1, res.Output) // A wins (2 > 0.5)
}

// Scenario 2: two-team chain, root -> leaf via A's mapping.
func TestScenarioTwoTeamChain(t *testing.T) {
	g := core.NewGraph(core.WithActions(1, 2))
	b := backend.StackBackend{}

	ra, err := g.AddProgram(backend.GenomeA(), 1)
	require.NoError(t, err)
	rb, err := g.AddProgram(backend.GenomeB(), 2)
	require.NoError(t, err)
	la, err := g.AddProgram(backend.GenomeA(), 1)
	require.NoError(t, err)
	lb, err := g.AddProgram(backend.GenomeB(), 2)
	require.NoError(t, err)

	leaf, err := g.AddTeam([]core.ProgramID{la.ID, lb.ID}, nil)
	require.NoError(t, err)
	root, err := g.AddTeam([]core.ProgramID{ra.ID, rb.ID}, nil)
	require.NoError(t, err)
	dst := leaf.ID
	require.NoError(t, g.SetTeamAction(root.ID, ra.ID, &dst))
	require.NoError(t, g.AddRoot(root.ID))

	res, err := eval.Graph(g, root.ID, b, nil, []float64{1, 2, 1})
	require.NoError(t, err)
	require.Equal(t, 1, res.Output)
	require.Len(t, res.Path, 2, "must visit root then leaf")

	res, err = eval.Graph(g, root.ID, b, nil, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 2, res.Output)
	require.Len(t, res.Path, 1, "B wins in root and has no mapping, so evaluation stops there")
}

// Repeated evaluation with caching enabled returns identical results.
func TestCachedEvaluationIsRepeatable(t *testing.T) {
	g := core.NewGraph()
	b := backend.StackBackend{}
	p, err := g.AddProgram(backend.GenomeA(), nil)
	require.NoError(t, err)
	team, err := g.AddTeam([]core.ProgramID{p.ID}, nil)
	require.NoError(t, err)

	c := cache.New(cache.PerInput, 0)
	first, err := eval.Team(g, team.ID, b, c, []float64{1, 2, 3})
	require.NoError(t, err)
	second, err := eval.Team(g, team.ID, b, c, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, first.Bid, second.Bid)

	stats := c.Stats()
	require.Equal(t, int64(1), stats.Hits)
}

// Terminating-action rule: a winner with no action yields the bid.
func TestTerminatingActionRule(t *testing.T) {
	g := core.NewGraph()
	b := backend.StackBackend{}
	p, err := g.AddProgram(backend.GenomeC(), nil) // no action assigned
	require.NoError(t, err)
	team, err := g.AddTeam([]core.ProgramID{p.ID}, nil)
	require.NoError(t, err)

	res, err := eval.Graph(g, team.ID, b, nil, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 12.0, res.Output)
}

// A cycle in the action map must not hang evaluation.
func TestLoopDetectionTerminates(t *testing.T) {
	g := core.NewGraph(core.WithActions("x"))
	b := backend.StackBackend{}

	pa, err := g.AddProgram(backend.GenomeC(), "x")
	require.NoError(t, err)
	pb, err := g.AddProgram(backend.GenomeC(), "x")
	require.NoError(t, err)

	teamA, err := g.AddTeam([]core.ProgramID{pa.ID}, nil)
	require.NoError(t, err)
	teamB, err := g.AddTeam([]core.ProgramID{pb.ID}, nil)
	require.NoError(t, err)

	dstB := teamB.ID
	require.NoError(t, g.SetTeamAction(teamA.ID, pa.ID, &dstB))
	dstA := teamA.ID
	require.NoError(t, g.SetTeamAction(teamB.ID, pb.ID, &dstA))

	res, err := eval.Graph(g, teamA.ID, b, nil, []float64{1, 2})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, "x", res.Output)
}
