package mutate

import (
	"math/rand"

	"github.com/arborix-labs/tpg/core"
)

// applyActionMapEdit applies exactly one of the three action-map
// sub-operators, chosen uniformly, to teamID. Each sub-operator is a no-op
// if its precondition fails.
func applyActionMapEdit(g *core.Graph, teamID core.TeamID, rng *rand.Rand) error {
	switch rng.Intn(3) {
	case 0:
		return actionMapAdd(g, teamID, rng)
	case 1:
		return actionMapChange(g, teamID, rng)
	default:
		return actionMapRemove(g, teamID, rng)
	}
}

// actionMapAdd maps a currently-unmapped program to a random other team.
func actionMapAdd(g *core.Graph, teamID core.TeamID, rng *rand.Rand) error {
	t, err := g.Team(teamID)
	if err != nil {
		return err
	}

	var unmapped []core.ProgramID
	for _, pid := range t.Programs {
		if _, ok := t.ActionMap[pid]; !ok {
			unmapped = append(unmapped, pid)
		}
	}
	if len(unmapped) == 0 {
		return nil
	}

	candidates := otherTeams(g, teamID)
	if len(candidates) == 0 {
		return nil
	}

	pid := unmapped[rng.Intn(len(unmapped))]
	dest := candidates[rng.Intn(len(candidates))]
	return g.SetTeamAction(teamID, pid, &dest)
}

// actionMapChange redirects an existing mapping to a different destination.
func actionMapChange(g *core.Graph, teamID core.TeamID, rng *rand.Rand) error {
	t, err := g.Team(teamID)
	if err != nil {
		return err
	}

	mapped := mappedPrograms(t)
	if len(mapped) == 0 {
		return nil
	}
	pid := mapped[rng.Intn(len(mapped))]
	current := t.ActionMap[pid]

	var candidates []core.TeamID
	for _, tid := range g.TeamIDs() {
		if tid != teamID && tid != current {
			candidates = append(candidates, tid)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	dest := candidates[rng.Intn(len(candidates))]
	return g.SetTeamAction(teamID, pid, &dest)
}

// actionMapRemove clears an existing mapping.
func actionMapRemove(g *core.Graph, teamID core.TeamID, rng *rand.Rand) error {
	t, err := g.Team(teamID)
	if err != nil {
		return err
	}

	mapped := mappedPrograms(t)
	if len(mapped) == 0 {
		return nil
	}
	pid := mapped[rng.Intn(len(mapped))]
	return g.SetTeamAction(teamID, pid, nil)
}

func mappedPrograms(t *core.Team) []core.ProgramID {
	out := make([]core.ProgramID, 0, len(t.ActionMap))
	for pid := range t.ActionMap {
		out = append(out, pid)
	}
	return out
}

func otherTeams(g *core.Graph, exclude core.TeamID) []core.TeamID {
	var out []core.TeamID
	for _, tid := range g.TeamIDs() {
		if tid != exclude {
			out = append(out, tid)
		}
	}
	return out
}
