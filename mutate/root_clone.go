package mutate

import (
	"math/rand"

	"github.com/arborix-labs/tpg/backend"
	"github.com/arborix-labs/tpg/cache"
	"github.com/arborix-labs/tpg/core"
)

// RootClone clones parentRoot, declares the clone a new root alongside the
// parent (which is left untouched and still a root), then applies up to
// five probabilistic edits to the clone. Invariants hold at return, the
// same way they hold after any other core operation, because every edit
// below routes through core's public API and ultimately through
// SetTeamAction.
func RootClone(g *core.Graph, parentRoot core.TeamID, cfg Config, rng *rand.Rand, b backend.ProgramBackend, c *cache.Cache) (core.TeamID, error) {
	clone, err := g.CopyTeam(parentRoot)
	if err != nil {
		return 0, err
	}
	if err := g.AddRoot(clone.ID); err != nil {
		return 0, err
	}
	if err := applyCloneEdits(g, clone.ID, cfg, rng, b, c); err != nil {
		return 0, err
	}
	return clone.ID, nil
}

// applyCloneEdits runs the five probabilistic clone edits (remove a
// program, add a program, per-program genome/action mutation, one
// action-map edit) against an already-cloned team. Shared by RootClone and
// PathClone (applied at the tail of the cloned path).
func applyCloneEdits(g *core.Graph, teamID core.TeamID, cfg Config, rng *rand.Rand, b backend.ProgramBackend, c *cache.Cache) error {
	t, err := g.Team(teamID)
	if err != nil {
		return err
	}

	// Remove a random program, iff more than one remains.
	if len(t.Programs) > 1 && rng.Float64() < cfg.RemoveProgramRate {
		victim := t.Programs[rng.Intn(len(t.Programs))]
		if err := g.RemoveProgramFromTeam(teamID, victim); err != nil {
			return err
		}
	}

	// Add a program from elsewhere in the graph, with no mapping.
	if rng.Float64() < cfg.AddProgramRate {
		if candidate, ok := pickProgramNotInTeam(g, teamID, rng); ok {
			if err := g.AddProgramToTeam(teamID, candidate); err != nil {
				return err
			}
		}
	}

	// Snapshot membership, then per-program genome/action edits.
	t, err = g.Team(teamID)
	if err != nil {
		return err
	}
	snapshot := append([]core.ProgramID(nil), t.Programs...)
	for _, pid := range snapshot {
		current := pid
		if rng.Float64() < cfg.ProgramMutationRate {
			newID, err := mutateProgramGenome(g, teamID, current, rng, b)
			if err != nil {
				return err
			}
			current = newID
		}
		if rng.Float64() < cfg.ProgramActionRate {
			if _, err := mutateProgramAction(g, teamID, current, rng, c); err != nil {
				return err
			}
		}
	}

	// One action-map sub-operator.
	if rng.Float64() < cfg.ActionMapRate {
		if err := applyActionMapEdit(g, teamID, rng); err != nil {
			return err
		}
	}

	return nil
}
