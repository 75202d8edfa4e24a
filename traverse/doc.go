// Package traverse computes reachability and shortest team-hop distances
// from one or many root teams of a core.Graph.
//
// It follows the breadth-first walker shape used throughout this module's
// teacher lineage (a queue of (id, depth) pairs, a visited/-depth map, a
// tight dequeue/visit/enqueue loop) but is tolerant of an item being
// enqueued more than once: if a shorter path to an already-queued team is
// discovered later, the stored depth is updated and the team is requeued.
// For a graph with uniform (team-hop) edge weights this only matters when
// several roots are searched at once; it keeps the implementation correct
// without special-casing the multi-root case.
package traverse
