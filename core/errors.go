package core

import "errors"

// Sentinel errors for core graph operations. Callers branch on these with
// errors.Is; they are never %w-wrapped at the definition site.
var (
	// ErrProgramNotFound indicates an operation referenced a non-existent program.
	ErrProgramNotFound = errors.New("core: program not found")

	// ErrTeamNotFound indicates an operation referenced a non-existent team.
	ErrTeamNotFound = errors.New("core: team not found")

	// ErrDuplicateProgram indicates a program ID was listed more than once
	// for a single team.
	ErrDuplicateProgram = errors.New("core: duplicate program in team")

	// ErrProgramNotInTeam indicates an operation (removal, action-map edit)
	// targeted a program that is not a member of the given team.
	ErrProgramNotInTeam = errors.New("core: program not in team")

	// ErrActionNotInSet indicates a requested action is not a member of the
	// graph's action alphabet.
	ErrActionNotInSet = errors.New("core: action not in graph's action set")

	// ErrSelfLoop indicates an action-map entry would map a team to itself.
	ErrSelfLoop = errors.New("core: team cannot map to itself")

	// ErrTeamHasIncomingEdges indicates RemoveTeam was called without
	// force=true on a team that still has incoming edges.
	ErrTeamHasIncomingEdges = errors.New("core: team has incoming edges; use force")

	// ErrRootNotFound indicates RemoveRoot was called on a team that is not
	// currently a root.
	ErrRootNotFound = errors.New("core: team is not a root")

	// ErrProgramNotOrphan indicates DeleteOrphanProgram was called on a
	// program that is still referenced by at least one team.
	ErrProgramNotOrphan = errors.New("core: program is not orphaned")
)
