package verify

import (
	"math"

	"github.com/arborix-labs/tpg/core"
	"github.com/arborix-labs/tpg/traverse"
)

// Verify computes an integrity report for g. If cleanup is false, or the
// graph currently has no orphans, the report is returned as-is.
//
// If cleanup is true and orphans exist, Verify runs the iterative GC sweep
// (see gcSweep) and returns a fresh report recomputed after the sweep. If
// the sweep gets stuck — a pass removes nothing while orphans remain, which
// indicates a bug in the edge machinery rather than ordinary garbage — the
// freshest report available is returned alongside the error.
//
// evictor may be nil, in which case deleted programs simply aren't evicted
// from any cache.
func Verify(g *core.Graph, cleanup bool, evictor CacheEvictor) (*Report, error) {
	rep, err := computeReport(g)
	if err != nil {
		return nil, err
	}
	if !cleanup || rep.Clean() {
		return rep, nil
	}

	if sweepErr := gcSweep(g, evictor); sweepErr != nil {
		after, reportErr := computeReport(g)
		if reportErr != nil {
			return rep, sweepErr
		}
		return after, sweepErr
	}

	return computeReport(g)
}

// computeReport derives every invariant check from team.Programs and
// team.ActionMap — the only fields the core package's edge primitive treats
// as source of truth — then compares the derived sets against what is
// actually stored in InEdges/OutEdges. Checks I1-I5 are scoped to teams and
// programs reachable from the graph's current roots, per this package's
// contract; an orphan's stale edges are GC's concern, not a reported bug.
func computeReport(g *core.Graph) (*Report, error) {
	roots := g.Roots()
	res, err := traverse.Reachable(g, roots...)
	if err != nil {
		return nil, err
	}

	allTeams := g.TeamIDs()
	allPrograms := g.ProgramIDs()

	rep := &Report{
		TotalTeams:        len(allTeams),
		TotalPrograms:     len(allPrograms),
		ReachableTeams:    len(res.Teams),
		ReachablePrograms: len(res.Programs),
		Depth:             res.Depth,
		DepthStats:        computeDepthStats(res.Depth),
	}
	rep.TeamCoveragePct = coveragePct(rep.ReachableTeams, rep.TotalTeams)
	rep.ProgramCoveragePct = coveragePct(rep.ReachablePrograms, rep.TotalPrograms)

	// expectedTeamIn/expectedProgramIn/expectedProgramOut are derived over
	// every team in the graph, not just the reachable ones: an orphan team
	// can still hold a stale action_map entry pointing at a reachable team,
	// which legitimately belongs in that team's expected in_edges until GC
	// removes the orphan.
	expectedTeamIn := make(map[core.TeamID]map[core.TeamID]struct{})
	expectedProgramIn := make(map[core.ProgramID]map[core.TeamID]struct{})
	expectedProgramOut := make(map[core.ProgramID]map[core.TeamID]struct{})

	for _, tid := range allTeams {
		t, err := g.Team(tid)
		if err != nil {
			continue
		}
		for _, pid := range t.Programs {
			addEdge(expectedProgramIn, pid, tid)
		}
		for pid, dest := range t.ActionMap {
			addEdge(expectedTeamIn, dest, tid)
			addEdge(expectedProgramOut, pid, dest)
			if dest == tid {
				rep.Issues = append(rep.Issues, Issue{
					Kind: IssueSelfLoop, Team: tid, Program: pid,
					Detail: "action_map maps team to itself",
				})
			}
		}
	}

	for tid := range res.Teams {
		t, err := g.Team(tid)
		if err != nil {
			continue
		}
		for pid := range t.ActionMap {
			if !t.HasProgram(pid) {
				rep.Issues = append(rep.Issues, Issue{
					Kind: IssueActionMapKeyNotMember, Team: tid, Program: pid,
					Detail: "action_map key is not a member program",
				})
			}
		}
		if !setEqual(t.OutEdges, valuesOf(t.ActionMap)) {
			rep.Issues = append(rep.Issues, Issue{
				Kind: IssueOutEdgesMismatch, Team: tid,
				Detail: "out_edges does not equal values(action_map)",
			})
		}
		if !setEqual(t.InEdges, expectedTeamIn[tid]) {
			rep.Issues = append(rep.Issues, Issue{
				Kind: IssueTeamInEdgesMismatch, Team: tid,
				Detail: "in_edges does not equal computed incoming set",
			})
		}
	}

	for pid := range res.Programs {
		p, err := g.Program(pid)
		if err != nil {
			continue
		}
		if !setEqual(p.InEdges, expectedProgramIn[pid]) {
			rep.Issues = append(rep.Issues, Issue{
				Kind: IssueProgramInEdgesMismatch, Program: pid,
				Detail: "in_edges does not equal the set of teams containing this program",
			})
		}
		if !setEqual(p.OutEdges, expectedProgramOut[pid]) {
			rep.Issues = append(rep.Issues, Issue{
				Kind: IssueProgramOutEdgesMismatch, Program: pid,
				Detail: "out_edges does not equal the union of owning teams' mapped destinations",
			})
		}
	}

	for _, r := range roots {
		if _, err := g.Team(r); err != nil {
			rep.Issues = append(rep.Issues, Issue{
				Kind: IssueRootMissing, Team: r,
				Detail: "root_teams entry has no corresponding team",
			})
		}
	}

	for _, tid := range allTeams {
		if _, ok := res.Teams[tid]; !ok {
			rep.OrphanTeams = append(rep.OrphanTeams, tid)
		}
	}
	for _, pid := range allPrograms {
		if _, ok := res.Programs[pid]; !ok {
			rep.OrphanPrograms = append(rep.OrphanPrograms, pid)
		}
	}

	return rep, nil
}

// computeDepthStats summarizes depth's values. The zero value is returned
// for an empty map rather than NaN-poisoned mean/stddev.
func computeDepthStats(depth map[core.TeamID]int) DepthStats {
	if len(depth) == 0 {
		return DepthStats{}
	}

	first := true
	var min, max, sum int
	for _, d := range depth {
		if first {
			min, max = d, d
			first = false
		} else if d < min {
			min = d
		} else if d > max {
			max = d
		}
		sum += d
	}
	n := float64(len(depth))
	mean := float64(sum) / n

	var variance float64
	for _, d := range depth {
		delta := float64(d) - mean
		variance += delta * delta
	}
	variance /= n

	return DepthStats{Min: min, Max: max, Mean: mean, StdDev: math.Sqrt(variance)}
}

// coveragePct returns reachable/total as a percentage in [0,100]. A zero
// total reports full coverage: there is nothing left to reach.
func coveragePct(reachable, total int) float64 {
	if total == 0 {
		return 100
	}
	return 100 * float64(reachable) / float64(total)
}

func addEdge[K comparable](m map[K]map[core.TeamID]struct{}, key K, team core.TeamID) {
	if m[key] == nil {
		m[key] = make(map[core.TeamID]struct{})
	}
	m[key][team] = struct{}{}
}

func valuesOf(m map[core.ProgramID]core.TeamID) map[core.TeamID]struct{} {
	out := make(map[core.TeamID]struct{}, len(m))
	for _, v := range m {
		out[v] = struct{}{}
	}
	return out
}

func setEqual(a, b map[core.TeamID]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
