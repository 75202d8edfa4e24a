// Package verify recomputes a core.Graph's edge sets from first principles
// and compares them against what is actually stored, then optionally garbage
// collects anything unreachable from the graph's root teams.
//
// Verify never trusts a team's or program's InEdges/OutEdges at face value:
// it derives the expected sets purely from team.Programs and team.ActionMap
// (the only source-of-truth fields under the core package's edge-primitive
// chokepoint) and reports every place the stored and derived sets diverge.
// This is what lets GC detect a bug in the edge machinery itself rather than
// silently compounding it.
package verify
