package mutate

import (
	"math/rand"

	"github.com/arborix-labs/tpg/backend"
	"github.com/arborix-labs/tpg/cache"
	"github.com/arborix-labs/tpg/core"
)

// PathClone is the multi-team counterpart to RootClone: find the shortest
// root→target path, copy only the teams on it (relinking each copy's
// action map to the next copy instead of the original), declare the head
// of the cloned path a new root, and apply the same probabilistic edits
// RootClone applies to its single clone, here at the tail of the cloned
// path.
//
// Its exact semantics are less rigidly pinned down than RootClone's; this
// implementation follows the same edge-primitive discipline throughout but
// is not held to the same invariant-stress-test rigor (see DESIGN.md).
func PathClone(g *core.Graph, from, target core.TeamID, cfg Config, rng *rand.Rand, b backend.ProgramBackend, c *cache.Cache) (core.TeamID, error) {
	path, err := shortestPath(g, from, target)
	if err != nil {
		return 0, err
	}

	clones := make([]core.TeamID, len(path))
	for i, tid := range path {
		clone, err := g.CopyTeam(tid)
		if err != nil {
			return 0, err
		}
		clones[i] = clone.ID
	}

	// Relink each clone's action map so that the entry which used to point
	// at the next team on the original path instead points at that team's
	// clone; every other mapping on the cloned team is left as copied.
	for i := 0; i < len(clones)-1; i++ {
		origNext := path[i+1]
		t, err := g.Team(clones[i])
		if err != nil {
			return 0, err
		}
		for pid, dest := range t.ActionMap {
			if dest == origNext {
				next := clones[i+1]
				if err := g.SetTeamAction(clones[i], pid, &next); err != nil {
					return 0, err
				}
			}
		}
	}

	if err := g.AddRoot(clones[0]); err != nil {
		return 0, err
	}

	tail := clones[len(clones)-1]
	if err := applyCloneEdits(g, tail, cfg, rng, b, c); err != nil {
		return 0, err
	}

	return clones[0], nil
}

// shortestPath breadth-first searches the action-map graph from `from` to
// `target`, returning the sequence of team IDs visited (inclusive of both
// ends). It uses OutEdges directly rather than package traverse's Reachable,
// since it needs parent pointers to reconstruct an actual path, not just
// reachability and depth.
func shortestPath(g *core.Graph, from, target core.TeamID) ([]core.TeamID, error) {
	if _, err := g.Team(from); err != nil {
		return nil, err
	}
	if _, err := g.Team(target); err != nil {
		return nil, err
	}
	if from == target {
		return []core.TeamID{from}, nil
	}

	parent := map[core.TeamID]core.TeamID{from: from}
	queue := []core.TeamID{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		t, err := g.Team(cur)
		if err != nil {
			continue
		}
		for dest := range t.OutEdges {
			if _, seen := parent[dest]; seen {
				continue
			}
			parent[dest] = cur
			if dest == target {
				queue = nil
				break
			}
			queue = append(queue, dest)
		}
	}

	if _, ok := parent[target]; !ok {
		return nil, ErrTargetUnreachable
	}

	path := []core.TeamID{target}
	for path[len(path)-1] != from {
		path = append(path, parent[path[len(path)-1]])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
