package eval

import (
	"log/slog"
	"math"

	"github.com/arborix-labs/tpg/backend"
	"github.com/arborix-labs/tpg/cache"
	"github.com/arborix-labs/tpg/core"
)

// TeamResult is the outcome of evaluating one team on one input.
type TeamResult struct {
	WinnerID core.ProgramID
	Bid      float64
	// NextTeam is the team the winner's action-map entry points to, or nil
	// if the winner has none.
	NextTeam *core.TeamID
}

// Team evaluates every program in teamID on input and picks a winner: the
// strictly-greatest bid, ties broken by lowest ProgramID (the tie-break
// rule is left implementation-defined upstream, see DESIGN.md). A NaN bid
// is treated as a non-numeric bid — float64 is the only bid type this
// module's ProgramBackend can return, and NaN is what a degenerate
// arithmetic genome (e.g. 0/0) produces in place of a real number. If any
// program's bid is NaN, the team's first program is chosen deterministically
// and a warning is logged.
func Team(g *core.Graph, teamID core.TeamID, b backend.ProgramBackend, c *cache.Cache, input []float64) (*TeamResult, error) {
	t, err := g.Team(teamID)
	if err != nil {
		return nil, err
	}
	if len(t.Programs) == 0 {
		return nil, ErrEmptyTeam
	}

	bids := make(map[core.ProgramID]float64, len(t.Programs))
	sawNaN := false
	for _, pid := range t.Programs {
		p, err := g.Program(pid)
		if err != nil {
			return nil, err
		}
		bid, err := Program(p, b, c, input)
		if err != nil {
			return nil, err
		}
		bids[pid] = bid
		if math.IsNaN(bid) {
			sawNaN = true
		}
	}

	var winner core.ProgramID
	var best float64
	if sawNaN {
		slog.Warn("eval: non-numeric bid in team, falling back to first program",
			"team", teamID)
		winner = t.Programs[0]
		best = bids[winner]
	} else {
		winner = t.Programs[0]
		best = bids[winner]
		for _, pid := range t.Programs[1:] {
			bid := bids[pid]
			if bid > best || (bid == best && pid < winner) {
				best = bid
				winner = pid
			}
		}
	}

	var next *core.TeamID
	if dest, ok := t.ActionMap[winner]; ok {
		d := dest
		next = &d
	}

	return &TeamResult{WinnerID: winner, Bid: best, NextTeam: next}, nil
}
