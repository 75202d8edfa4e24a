package verify

import "github.com/arborix-labs/tpg/core"

// IssueKind names which invariant from the module's edge-consistency rules a
// reported Issue violates.
type IssueKind string

const (
	// IssueActionMapKeyNotMember: a team's action_map key is not one of its
	// own programs (I1).
	IssueActionMapKeyNotMember IssueKind = "action_map_key_not_member"

	// IssueOutEdgesMismatch: a team's out_edges differs from
	// values(action_map) (I2).
	IssueOutEdgesMismatch IssueKind = "out_edges_mismatch"

	// IssueTeamInEdgesMismatch: a team's in_edges differs from the computed
	// set of teams whose action_map maps to it (I5, team side).
	IssueTeamInEdgesMismatch IssueKind = "team_in_edges_mismatch"

	// IssueProgramInEdgesMismatch: a program's in_edges differs from the set
	// of teams that list it as a member (I3).
	IssueProgramInEdgesMismatch IssueKind = "program_in_edges_mismatch"

	// IssueProgramOutEdgesMismatch: a program's out_edges differs from the
	// union of action_map destinations across teams containing it (I4).
	IssueProgramOutEdgesMismatch IssueKind = "program_out_edges_mismatch"

	// IssueSelfLoop: a team's action_map maps a program to the team itself
	// (I6).
	IssueSelfLoop IssueKind = "self_loop"

	// IssueRootMissing: a team listed in root_teams no longer exists in the
	// graph (I7).
	IssueRootMissing IssueKind = "root_missing"
)

// Issue is one concrete invariant violation found by computeReport. Team
// and/or Program are populated according to which side of the graph the
// issue concerns; the zero value of either means "not applicable".
type Issue struct {
	Kind    IssueKind
	Team    core.TeamID
	Program core.ProgramID
	Detail  string
}

// Report is the outcome of a Verify call: the set of invariant violations
// found among reachable teams/programs, the orphan sets, and enough
// reachability bookkeeping to tell a caller whether cleanup left the graph
// fully reachable from its roots.
type Report struct {
	Issues []Issue

	// OrphanTeams and OrphanPrograms are unreachable from every current
	// root at the time the report was computed.
	OrphanTeams    []core.TeamID
	OrphanPrograms []core.ProgramID

	TotalTeams        int
	TotalPrograms     int
	ReachableTeams    int
	ReachablePrograms int

	// Depth is the shortest team-hop distance from the nearest root, for
	// every reachable team.
	Depth map[core.TeamID]int

	// DepthStats summarizes Depth's values. Zero-valued when no team is
	// reachable.
	DepthStats DepthStats

	// TeamCoveragePct and ProgramCoveragePct are ReachableTeams/TotalTeams
	// and ReachablePrograms/TotalPrograms, expressed as percentages in
	// [0,100]. Both are 100 when the corresponding total is zero — an
	// empty graph has nothing left uncovered.
	TeamCoveragePct    float64
	ProgramCoveragePct float64
}

// DepthStats summarizes the shortest-hop distances from the nearest root
// across every reachable team.
type DepthStats struct {
	Min    int
	Max    int
	Mean   float64
	StdDev float64
}

// OK reports whether no invariant violations were found. A Report can be OK
// while still carrying a non-empty orphan set — orphans are expected,
// transient state, not a bug.
func (r *Report) OK() bool { return len(r.Issues) == 0 }

// Clean reports whether the graph has no orphans at all (P6's
// post-condition for a cleanup run).
func (r *Report) Clean() bool {
	return len(r.OrphanTeams) == 0 && len(r.OrphanPrograms) == 0
}

// CacheEvictor is the duck-typed hook GC uses to drop a deleted program's
// cached evaluation results without this package importing package cache.
// *cache.Cache satisfies this interface.
type CacheEvictor interface {
	Drop(core.ProgramID)
}
