package core

import "log/slog"

// File: teams.go
// Role: Team lifecycle — minting, lookup, program membership, removal.
//
// Programs/ActionMap are never written outside AddTeam, AddProgramToTeam,
// RemoveProgramFromTeam, and SetTeamAction (edges.go); those four functions
// are this package's only mutators of team membership and the edge sets it
// implies.

// Team looks up a team by ID. The returned pointer is shared graph state;
// see Program's doc comment for the same caveat about direct field writes.
func (g *Graph) Team(id TeamID) (*Team, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	t, ok := g.teams[id]
	if !ok {
		return nil, ErrTeamNotFound
	}
	return t, nil
}

// TeamIDs returns every team ID currently in the graph, in no particular order.
func (g *Graph) TeamIDs() []TeamID {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]TeamID, 0, len(g.teams))
	for id := range g.teams {
		out = append(out, id)
	}
	return out
}

// AddTeam creates a new team containing programIDs (duplicates rejected)
// and applies actionMap through SetTeamAction so every edge set is
// consistent from the moment of creation.
func (g *Graph) AddTeam(programIDs []ProgramID, actionMap map[ProgramID]TeamID) (*Team, error) {
	g.mu.Lock()

	seen := make(map[ProgramID]struct{}, len(programIDs))
	for _, pid := range programIDs {
		if _, dup := seen[pid]; dup {
			g.mu.Unlock()
			return nil, ErrDuplicateProgram
		}
		seen[pid] = struct{}{}
		if _, ok := g.programs[pid]; !ok {
			g.mu.Unlock()
			return nil, ErrProgramNotFound
		}
	}

	g.nextTeamID++
	id := TeamID(g.nextTeamID)
	t := &Team{
		ID:        id,
		Programs:  append([]ProgramID(nil), programIDs...),
		ActionMap: make(map[ProgramID]TeamID),
		InEdges:   make(map[TeamID]struct{}),
		OutEdges:  make(map[TeamID]struct{}),
	}
	g.teams[id] = t
	for _, pid := range programIDs {
		g.programs[pid].InEdges[id] = struct{}{}
	}
	g.mu.Unlock()

	for pid, dest := range actionMap {
		if err := g.SetTeamAction(id, pid, &dest); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AddProgramToTeam inserts an existing program into an existing team with no
// action-map entry. Used by mutation operators to grow a cloned team.
func (g *Graph) AddProgramToTeam(teamID TeamID, programID ProgramID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	t, ok := g.teams[teamID]
	if !ok {
		return ErrTeamNotFound
	}
	p, ok := g.programs[programID]
	if !ok {
		return ErrProgramNotFound
	}
	if t.HasProgram(programID) {
		return ErrDuplicateProgram
	}
	t.Programs = append(t.Programs, programID)
	p.InEdges[teamID] = struct{}{}
	return nil
}

// RemoveProgramFromTeam drops program from team's member list, clears any
// action-map entry for it (via SetTeamAction), and removes team from the
// program's in-edges. It does not delete the Program record — GC does that.
func (g *Graph) RemoveProgramFromTeam(teamID TeamID, programID ProgramID) error {
	g.mu.Lock()
	t, ok := g.teams[teamID]
	if !ok {
		g.mu.Unlock()
		return ErrTeamNotFound
	}
	if !t.HasProgram(programID) {
		g.mu.Unlock()
		return ErrProgramNotInTeam
	}
	g.mu.Unlock()

	if err := g.SetTeamAction(teamID, programID, nil); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	t, ok = g.teams[teamID]
	if !ok {
		return ErrTeamNotFound
	}
	for i, id := range t.Programs {
		if id == programID {
			t.Programs = append(t.Programs[:i], t.Programs[i+1:]...)
			break
		}
	}
	if p, ok := g.programs[programID]; ok {
		delete(p.InEdges, teamID)
	}
	return nil
}

// RemoveTeam deletes team outright. Unless force is true, it refuses if the
// team still has incoming edges, logging a warning and returning
// ErrTeamHasIncomingEdges with the graph unchanged. On success it
// clears back-references in every destination's in-edges, removes every
// member program (via RemoveProgramFromTeam), drops the team from
// root-team status if present, and deletes the team record.
func (g *Graph) RemoveTeam(teamID TeamID, force bool) error {
	g.mu.Lock()
	t, ok := g.teams[teamID]
	if !ok {
		g.mu.Unlock()
		return ErrTeamNotFound
	}
	if !force && len(t.InEdges) > 0 {
		g.mu.Unlock()
		slog.Warn("core: refusing to remove team with incoming edges; use force", "team", teamID)
		return ErrTeamHasIncomingEdges
	}
	members := append([]ProgramID(nil), t.Programs...)
	g.mu.Unlock()

	for _, pid := range members {
		if err := g.RemoveProgramFromTeam(teamID, pid); err != nil {
			return err
		}
	}

	// Every member's action-map entry was already cleared through
	// SetTeamAction above, which drops this team from each destination's
	// in-edges as a side effect — so OutEdges is empty here already.
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.rootTeams, teamID)
	delete(g.teams, teamID)
	return nil
}
