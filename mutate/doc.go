// Package mutate implements the graph's structural mutation operators:
// RootClone, the fully-specified single-team strategy, and PathClone, its
// looser multi-team counterpart.
//
// Every operator clones before it edits — the parent root and everything
// reachable from it is left bit-identical — and every edge change routes
// through core.Graph's own public methods (which in turn route through the
// single SetTeamAction chokepoint), so invariants I1-I7 hold at return the
// same way they hold after any other core operation.
package mutate
