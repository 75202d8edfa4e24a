// Package cache memoizes program evaluations keyed by a 64-bit input hash
// (see backend.ProgramBackend.Hash), logically a mapping
// ProgramID -> (inputHash -> bid).
//
// Three modes are supported: Off (no storage), PerInput (an unbounded inner
// map per program) and LRU (a bounded, per-program
// github.com/hashicorp/golang-lru/v2 cache with hit/miss counters). The
// outer ProgramID -> inner-cache map is a sync.Map so a new program's inner
// cache can be created concurrently without a package-wide lock — this is
// what makes LRU mode safe for the evolutionary harness's warmup phase,
// which evaluates many programs over a batch from multiple goroutines
// before the sequential generation proper begins.
package cache
