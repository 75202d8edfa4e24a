// Package dot renders a core.Graph as a DOT-compatible text graph
// description: teams are nodes labeled with their member program IDs and
// actions (roots styled with a double border), and each action-map entry is
// a directed edge labeled with the triggering program ID.
//
// This is a peripheral debugging aid rather than part of the engine's
// hard-engineering core, so it reaches for nothing beyond the standard
// library.
package dot
