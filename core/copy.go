package core

// File: copy.go
// Role: copy-on-write cloning of programs and teams. Mutation operators
// (package mutate) never edit a live, reachable Program or Team in place —
// they clone first via these two functions, edit the clone, and leave the
// parent untouched and bit-identical.

// GenomeCloner deep-copies an opaque genome payload. backend.ProgramBackend
// values satisfy this interface structurally via their DeepCopy method; core
// does not import package backend to avoid a dependency cycle.
type GenomeCloner interface {
	DeepCopy(genome any) any
}

// CopyProgram deep-copies p's genome (not its decoded executable, which is
// re-derived lazily on first evaluation of the clone) and reuses its
// current action. The clone is registered with a fresh ID and empty edge
// sets; it is not attached to any team until the caller adds it to one.
func (g *Graph) CopyProgram(id ProgramID, cloner GenomeCloner) (*Program, error) {
	g.mu.Lock()
	p, ok := g.programs[id]
	if !ok {
		g.mu.Unlock()
		return nil, ErrProgramNotFound
	}
	genome, action := p.Genome, p.Action
	g.mu.Unlock()

	newGenome := genome
	if cloner != nil {
		newGenome = cloner.DeepCopy(genome)
	}

	g.mu.Lock()
	g.nextProgramID++
	newID := ProgramID(g.nextProgramID)
	clone := &Program{
		ID:       newID,
		Genome:   newGenome,
		Action:   action,
		InEdges:  make(map[TeamID]struct{}),
		OutEdges: make(map[TeamID]struct{}),
	}
	g.programs[newID] = clone
	g.mu.Unlock()

	return clone, nil
}

// CopyTeam creates a new team sharing id's program references and a copied
// action map; edge bookkeeping is re-applied through AddTeam/SetTeamAction
// so the new team's in/out edges, and the affected programs' in/out edges,
// come out consistent. The original team is left untouched.
func (g *Graph) CopyTeam(id TeamID) (*Team, error) {
	g.mu.Lock()
	t, ok := g.teams[id]
	if !ok {
		g.mu.Unlock()
		return nil, ErrTeamNotFound
	}
	programs := append([]ProgramID(nil), t.Programs...)
	actionMap := make(map[ProgramID]TeamID, len(t.ActionMap))
	for k, v := range t.ActionMap {
		actionMap[k] = v
	}
	g.mu.Unlock()

	return g.AddTeam(programs, actionMap)
}
