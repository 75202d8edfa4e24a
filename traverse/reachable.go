package traverse

import (
	"github.com/arborix-labs/tpg/core"
)

// Result holds the outcome of a Reachable traversal.
type Result struct {
	// Teams is the set of teams reachable from the given roots (roots
	// included).
	Teams map[core.TeamID]struct{}

	// Programs is the union of Programs over every reachable team.
	Programs map[core.ProgramID]struct{}

	// Depth maps each reachable team to its shortest distance, in
	// team-hops, from the nearest root.
	Depth map[core.TeamID]int
}

// queueItem pairs a team ID with the depth at which it was enqueued.
type queueItem struct {
	id    core.TeamID
	depth int
}

// Reachable runs a breadth-first search from roots and returns every team
// and program reachable from them, plus shortest team-hop distances. Roots
// must already exist in g (core.ErrTeamNotFound otherwise).
func Reachable(g *core.Graph, roots ...core.TeamID) (*Result, error) {
	res := &Result{
		Teams:    make(map[core.TeamID]struct{}),
		Programs: make(map[core.ProgramID]struct{}),
		Depth:    make(map[core.TeamID]int),
	}

	queue := make([]queueItem, 0, len(roots))
	for _, r := range roots {
		if _, err := g.Team(r); err != nil {
			return nil, err
		}
		if d, ok := res.Depth[r]; !ok || 0 < d {
			res.Depth[r] = 0
			queue = append(queue, queueItem{id: r, depth: 0})
		}
	}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		// Stale entry: a shorter path to this team was found after it was
		// enqueued at this depth.
		if best, ok := res.Depth[it.id]; ok && best < it.depth {
			continue
		}

		team, err := g.Team(it.id)
		if err != nil {
			// Dangling destination (e.g. force-removed while still
			// referenced); nothing reachable through it.
			continue
		}

		res.Teams[it.id] = struct{}{}
		for _, pid := range team.Programs {
			res.Programs[pid] = struct{}{}
		}

		for dest := range team.OutEdges {
			nd := it.depth + 1
			if cur, ok := res.Depth[dest]; !ok || nd < cur {
				res.Depth[dest] = nd
				queue = append(queue, queueItem{id: dest, depth: nd})
			}
		}
	}

	return res, nil
}
