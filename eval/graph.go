package eval

import (
	"log/slog"

	"github.com/arborix-labs/tpg/backend"
	"github.com/arborix-labs/tpg/cache"
	"github.com/arborix-labs/tpg/core"
)

// PathEntry records one team visited during a Graph evaluation, in order.
type PathEntry struct {
	TeamID   core.TeamID
	Bid      float64
	WinnerID core.ProgramID
}

// GraphResult is the outcome of walking a root team to a terminal output.
type GraphResult struct {
	// Output is the winning program's action if it has one, otherwise its
	// bid — the terminating-action rule that resolves a walk into a result.
	Output any
	Path   []PathEntry
}

// Graph evaluates root on input: evaluate the current team, record
// (team, bid) into the path, then either terminate (no outgoing edge,
// dangling destination, or a revisited team — loop detection) or advance to
// the winner's destination team.
func Graph(g *core.Graph, root core.TeamID, b backend.ProgramBackend, c *cache.Cache, input []float64) (*GraphResult, error) {
	visited := make(map[core.TeamID]struct{})
	var path []PathEntry
	current := root

	for {
		res, err := Team(g, current, b, c, input)
		if err != nil {
			return nil, err
		}
		path = append(path, PathEntry{TeamID: current, Bid: res.Bid, WinnerID: res.WinnerID})
		visited[current] = struct{}{}

		terminal := res.NextTeam == nil
		if !terminal {
			if _, seen := visited[*res.NextTeam]; seen {
				slog.Info("eval: loop detected, terminating at most recent winner", "team", *res.NextTeam)
				terminal = true
			} else if _, err := g.Team(*res.NextTeam); err != nil {
				terminal = true
			}
		}

		if terminal {
			p, err := g.Program(res.WinnerID)
			if err != nil {
				return nil, err
			}
			var output any
			if p.HasAction() {
				output = p.Action
			} else {
				output = res.Bid
			}
			return &GraphResult{Output: output, Path: path}, nil
		}

		current = *res.NextTeam
	}
}
