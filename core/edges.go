package core

// File: edges.go
// Role: the single edge-maintenance primitive. SetTeamAction is the only
// routine that ever writes to a Team's ActionMap/OutEdges or to the in/out
// edge sets it implies — every other mutator in this package (AddTeam,
// RemoveProgramFromTeam, CopyTeam) routes through it instead of touching
// those fields directly. That chokepoint is what makes invariants I2, I4, I5
// hold inductively: as long as nothing else ever writes an edge set, a
// correct SetTeamAction keeps all of them derivable from the action maps.

// SetTeamAction sets, changes, or clears the action-map entry
// team[programID] → dest.
//
// programID must already be a member of teamID (ErrProgramNotInTeam
// otherwise). dest, if non-nil, must name an existing team other than teamID
// itself (ErrSelfLoop is returned for a self-mapping; cross-team cycles are
// permitted). A nil dest removes the mapping. Setting the mapping to its
// current value — including clearing an already-absent one — is a no-op.
func (g *Graph) SetTeamAction(teamID TeamID, programID ProgramID, dest *TeamID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	t, ok := g.teams[teamID]
	if !ok {
		return ErrTeamNotFound
	}
	if !t.HasProgram(programID) {
		return ErrProgramNotInTeam
	}
	if dest != nil {
		if *dest == teamID {
			return ErrSelfLoop
		}
		if _, ok := g.teams[*dest]; !ok {
			return ErrTeamNotFound
		}
	}
	p := g.programs[programID]

	oldDest, hadOld := t.ActionMap[programID]
	if dest == nil {
		if !hadOld {
			return nil // already unmapped
		}
	} else if hadOld && oldDest == *dest {
		return nil // unchanged
	}

	// 1. action_map is the source of truth; update it first.
	if dest == nil {
		delete(t.ActionMap, programID)
	} else {
		t.ActionMap[programID] = *dest
	}

	// 2. retire the old destination's back-references if nothing else
	// still uses them.
	if hadOld {
		stillMappedByTeam := false
		for _, d := range t.ActionMap {
			if d == oldDest {
				stillMappedByTeam = true
				break
			}
		}
		if !stillMappedByTeam {
			delete(t.OutEdges, oldDest)
			if oldDestTeam, ok := g.teams[oldDest]; ok {
				delete(oldDestTeam.InEdges, teamID)
			}
		}

		stillUsedByProgram := false
		for tid := range p.InEdges {
			owner, ok := g.teams[tid]
			if !ok {
				continue
			}
			if d, ok := owner.ActionMap[programID]; ok && d == oldDest {
				stillUsedByProgram = true
				break
			}
		}
		if !stillUsedByProgram {
			delete(p.OutEdges, oldDest)
		}
	}

	// 3. register the new destination.
	if dest != nil {
		t.OutEdges[*dest] = struct{}{}
		g.teams[*dest].InEdges[teamID] = struct{}{}
		p.OutEdges[*dest] = struct{}{}
	}

	return nil
}
