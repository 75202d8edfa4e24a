package core

import (
	"fmt"
	"math/rand"
	"sync"
)

// ProgramID uniquely identifies a Program within a Graph. It is minted from
// the graph's monotonic counter and never reused, even after the Program is
// garbage-collected.
type ProgramID uint64

// String renders the ID the way the rest of the module logs and displays it.
func (id ProgramID) String() string { return fmt.Sprintf("P%d", uint64(id)) }

// TeamID uniquely identifies a Team within a Graph. Like ProgramID, it is
// monotonic and never reused.
type TeamID uint64

// String renders the ID the way the rest of the module logs and displays it.
func (id TeamID) String() string { return fmt.Sprintf("T%d", uint64(id)) }

// Program is a bidder: a genome, a lazily-decoded executable derived from it,
// an optional action, and the edge sets recording which teams reference it.
//
// Only Action, Decoded, and the two edge sets are ever mutated in place on a
// live Program; Genome is replaced only by cloning the Program (copy-on-write
// — see Graph.CopyProgram).
type Program struct {
	ID ProgramID

	// Genome is the opaque payload passed to the external ProgramBackend.
	Genome any

	// Decoded caches the executable derived from Genome. It is produced
	// lazily on first evaluation and invalidated whenever Genome changes.
	Decoded any

	// Action is the value emitted when this program wins with no outgoing
	// edge. It may be nil if the graph's action set is empty.
	Action any

	// InEdges is the set of teams that include this program.
	InEdges map[TeamID]struct{}

	// OutEdges is the set of distinct destination teams reached via this
	// program, across every team that contains it.
	OutEdges map[TeamID]struct{}
}

// HasAction reports whether the program carries a non-nil assigned action.
func (p *Program) HasAction() bool { return p.Action != nil }

// Team is a node in the graph: an ordered set of programs plus the action
// map that gives its outgoing edges.
type Team struct {
	ID TeamID

	// Programs is the team's member list in insertion order. Duplicates are
	// forbidden by AddTeam/AddProgramToTeam.
	Programs []ProgramID

	// ActionMap restricts to IDs present in Programs; it is the single
	// source of truth for this team's outgoing edges (see edges.go).
	ActionMap map[ProgramID]TeamID

	// InEdges is the set of teams with at least one program mapping here.
	InEdges map[TeamID]struct{}

	// OutEdges is exactly the set of values currently present in ActionMap.
	OutEdges map[TeamID]struct{}
}

// HasProgram reports whether p is a member of this team.
func (t *Team) HasProgram(p ProgramID) bool {
	for _, id := range t.Programs {
		if id == p {
			return true
		}
	}
	return false
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithActions seeds the graph's action alphabet. Actions must be comparable
// values (usable as map keys); duplicates are kept as given, not removed.
func WithActions(actions ...any) GraphOption {
	return func(g *Graph) {
		for _, a := range actions {
			g.actions = append(g.actions, a)
		}
	}
}

// WithRand overrides the graph's random source, used to pick a default
// action for new programs. Mutation operators take their own *rand.Rand
// and do not use this one. If not supplied, NewGraph seeds a private source deterministically so
// graphs are reproducible unless the caller asks otherwise.
func WithRand(r *rand.Rand) GraphOption {
	return func(g *Graph) { g.rng = r }
}

// Graph — the TangledProgramGraph — owns every Program and Team by value of
// its ID tables, the set of root teams, the two monotonic ID counters, and
// the action alphabet. Graph mutation is not safe for concurrent use (see
// package doc); mu serializes each method's access to the tables and
// counters, but a sequence of calls is not atomic, and the *Program/*Team
// pointers handed out by lookups are read and written without it.
type Graph struct {
	mu sync.Mutex

	nextProgramID uint64
	nextTeamID    uint64

	programs  map[ProgramID]*Program
	teams     map[TeamID]*Team
	rootTeams map[TeamID]struct{}

	actions []any
	rng     *rand.Rand
}

// NewGraph constructs an empty Graph and applies opts in order.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		programs:  make(map[ProgramID]*Program),
		teams:     make(map[TeamID]*Team),
		rootTeams: make(map[TeamID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(1))
	}
	return g
}

// Stats is a constant-time, read-only summary of graph size, mirroring the kind of
// cheap diagnostic snapshot the verifier and harness poll between
// generations.
type Stats struct {
	ProgramCount int
	TeamCount    int
	RootCount    int
}

// Stats returns a snapshot of the graph's current size.
func (g *Graph) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Stats{
		ProgramCount: len(g.programs),
		TeamCount:    len(g.teams),
		RootCount:    len(g.rootTeams),
	}
}

// Actions returns a copy of the graph's action alphabet.
func (g *Graph) Actions() []any {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]any, len(g.actions))
	copy(out, g.actions)
	return out
}
