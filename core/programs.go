package core

// File: programs.go
// Role: Program lifecycle — minting, lookup, action assignment.
//
// AI-HINT: AddProgram and CopyProgram (copy.go) are the only places
// nextProgramID advances; IDs are never reused even after GC removes a Program.

// Program looks up a program by ID. The returned pointer is shared graph
// state: callers may mutate Action/Decoded in place (per the module's
// mutation contract) but must never touch InEdges/OutEdges directly — those
// are owned by SetTeamAction and the team-membership methods in teams.go.
func (g *Graph) Program(id ProgramID) (*Program, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.programs[id]
	if !ok {
		return nil, ErrProgramNotFound
	}
	return p, nil
}

// ProgramIDs returns every program ID currently in the graph, in no
// particular order.
func (g *Graph) ProgramIDs() []ProgramID {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]ProgramID, 0, len(g.programs))
	for id := range g.programs {
		out = append(out, id)
	}
	return out
}

// AddProgram creates a new Program with the given genome.
//
// If action is non-nil it must be a member of the graph's action set
// (ErrActionNotInSet otherwise). If action is nil and the action set is
// non-empty, a uniformly random member is assigned; if the action set is
// empty, the new program's Action is left nil.
func (g *Graph) AddProgram(genome any, action any) (*Program, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if action != nil {
		if !g.actionAllowedLocked(action) {
			return nil, ErrActionNotInSet
		}
	} else if len(g.actions) > 0 {
		action = g.actions[g.rng.Intn(len(g.actions))]
	}

	g.nextProgramID++
	id := ProgramID(g.nextProgramID)
	p := &Program{
		ID:       id,
		Genome:   genome,
		Action:   action,
		InEdges:  make(map[TeamID]struct{}),
		OutEdges: make(map[TeamID]struct{}),
	}
	g.programs[id] = p
	return p, nil
}

// actionAllowedLocked reports whether action is in the graph's action set.
// Caller must hold g.mu.
func (g *Graph) actionAllowedLocked(action any) bool {
	for _, a := range g.actions {
		if a == action {
			return true
		}
	}
	return false
}

// DeleteOrphanProgram permanently removes a program record. Only package
// verify calls this, and only for a program whose InEdges set is already
// empty (i.e. no team references it) — this is the sole way a Program is
// ever destroyed; nothing else in this package deletes one.
func (g *Graph) DeleteOrphanProgram(id ProgramID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.programs[id]
	if !ok {
		return ErrProgramNotFound
	}
	if len(p.InEdges) != 0 {
		return ErrProgramNotOrphan
	}
	delete(g.programs, id)
	return nil
}
