package mutate

import (
	"math/rand"

	"github.com/arborix-labs/tpg/backend"
	"github.com/arborix-labs/tpg/cache"
	"github.com/arborix-labs/tpg/core"
)

// replaceProgramInTeam swaps oldID for newID as a member of teamID,
// preserving any action-map mapping oldID held. Every edge change still
// routes through core's own public methods, which in turn route through
// SetTeamAction.
func replaceProgramInTeam(g *core.Graph, teamID core.TeamID, oldID, newID core.ProgramID) error {
	t, err := g.Team(teamID)
	if err != nil {
		return err
	}
	dest, hadMapping := t.ActionMap[oldID]

	if err := g.AddProgramToTeam(teamID, newID); err != nil {
		return err
	}
	if err := g.RemoveProgramFromTeam(teamID, oldID); err != nil {
		return err
	}
	if hadMapping {
		d := dest
		if err := g.SetTeamAction(teamID, newID, &d); err != nil {
			return err
		}
	}
	return nil
}

// pickProgramNotInTeam returns a uniformly random program that exists in
// the graph but is not a member of teamID. ok is false if none exists.
func pickProgramNotInTeam(g *core.Graph, teamID core.TeamID, rng *rand.Rand) (core.ProgramID, bool) {
	t, err := g.Team(teamID)
	if err != nil {
		return 0, false
	}
	member := make(map[core.ProgramID]struct{}, len(t.Programs))
	for _, pid := range t.Programs {
		member[pid] = struct{}{}
	}

	var candidates []core.ProgramID
	for _, pid := range g.ProgramIDs() {
		if _, in := member[pid]; !in {
			candidates = append(candidates, pid)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// mutateProgramGenome deep-copies pid, applies b.Mutate to the copy,
// invalidates its decoded executable, replaces pid with the clone in
// teamID, and returns the clone's ID.
func mutateProgramGenome(g *core.Graph, teamID core.TeamID, pid core.ProgramID, rng *rand.Rand, b backend.ProgramBackend) (core.ProgramID, error) {
	clone, err := g.CopyProgram(pid, b)
	if err != nil {
		return 0, err
	}
	clone.Genome = b.Mutate(clone.Genome, rng)
	clone.Decoded = nil

	if err := replaceProgramInTeam(g, teamID, pid, clone.ID); err != nil {
		return 0, err
	}
	return clone.ID, nil
}

// mutateProgramAction deep-copies pid, reassigns its action (preferring a
// different value from the graph's action set when one exists), carries
// the per-input cache forward (the bids are unchanged, only the action
// is), replaces pid with the clone in teamID, and returns the clone's ID.
func mutateProgramAction(g *core.Graph, teamID core.TeamID, pid core.ProgramID, rng *rand.Rand, c *cache.Cache) (core.ProgramID, error) {
	p, err := g.Program(pid)
	if err != nil {
		return 0, err
	}
	currentAction := p.Action

	clone, err := g.CopyProgram(pid, nil)
	if err != nil {
		return 0, err
	}

	actions := g.Actions()
	if len(actions) > 0 {
		clone.Action = pickDifferentAction(actions, currentAction, rng)
	}

	if c != nil {
		c.CopyCache(pid, clone.ID)
	}

	if err := replaceProgramInTeam(g, teamID, pid, clone.ID); err != nil {
		return 0, err
	}
	return clone.ID, nil
}

// pickDifferentAction returns a uniformly random member of actions other
// than current when at least two distinct values exist, otherwise it
// returns whatever single distinct value is available.
func pickDifferentAction(actions []any, current any, rng *rand.Rand) any {
	distinct := make([]any, 0, len(actions))
	for _, a := range actions {
		seen := false
		for _, d := range distinct {
			if d == a {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, a)
		}
	}
	if len(distinct) <= 1 {
		if len(distinct) == 1 {
			return distinct[0]
		}
		return current
	}
	for {
		candidate := distinct[rng.Intn(len(distinct))]
		if candidate != current {
			return candidate
		}
	}
}
