// Package eval implements the graph's read path: evaluating a single
// program on an input, picking a team's winner, and walking a root team to
// a terminal output with loop detection.
//
// Every function here takes a backend.ProgramBackend and, optionally, a
// cache.Cache explicitly rather than storing them on core.Graph — the core
// package stays free of both dependencies, and a harness can swap backends
// or caches between generations without touching graph state.
package eval
