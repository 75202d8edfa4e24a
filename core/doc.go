// Package core defines the central data model of a Tangled Program Graph:
// Program and Team records, their typed identifiers, and the Graph that owns
// them.
//
// The Graph is an arena keyed by ProgramID and TeamID: every cross-reference
// (a team's program list, a program's owning teams, an action-map edge) is an
// ID, never a pointer, so that cloning a team or garbage-collecting a program
// never requires chasing live references held elsewhere. The edge sets
// derived from each team's action map (team in/out edges, program out edges)
// are kept consistent by a single routine, SetTeamAction — see edges.go. A
// program's in edges record team membership and are written only by AddTeam,
// AddProgramToTeam and RemoveProgramFromTeam (teams.go). No code outside this
// package writes to an in/out edge set directly.
//
// Graph mutation is not safe for concurrent use; callers (normally the
// harness package) serialize mutation, evaluation, and verification. The
// only concurrent surface in the whole module is cache.Cache during
// harness-driven warmup (see the cache package).
package core
