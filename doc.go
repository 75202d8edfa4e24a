// Package tpg is a Tangled Program Graph (TPG) engine: populations of small
// numeric programs ("bidders") are organized into teams, and teams are linked
// into a directed graph whose traversal produces a decision.
//
// Given an input, evaluation starts at a root team, runs every program in it,
// and follows the highest bidder's outgoing edge into the next team — or, if
// the winner has no outgoing edge, returns its assigned action.
//
// The module is organized into focused subpackages:
//
//	core/      — ProgramID/TeamID, Program, Team, Graph, and the edge-maintenance
//	             primitive that every mutation routes through
//	traverse/  — BFS reachability and shortest-path distances from one or many roots
//	verify/    — integrity verification and reachability-based garbage collection
//	cache/     — per-program bid memoization (off / per-input / bounded LRU)
//	backend/   — the ProgramBackend contract plus a reference stack-machine bidder
//	eval/      — program, team, and graph evaluation with loop detection
//	mutate/    — structural mutation operators (root-clone, path-clone)
//	harness/   — the generational evolutionary loop: config, metrics, warmup
//	dot/       — text graph description export
//
// This package itself holds no code; see the subpackages above.
package tpg
