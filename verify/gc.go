package verify

import (
	"errors"

	"github.com/arborix-labs/tpg/core"
	"github.com/arborix-labs/tpg/traverse"
)

// ErrStuckOrphans is returned by gcSweep (and surfaces through Verify) when
// a pass removes nothing but orphans remain — the edge machinery itself is
// inconsistent and ordinary GC cannot make progress.
var ErrStuckOrphans = errors.New("verify: gc pass removed nothing but orphans remain")

// gcSweep iteratively traverses from the current roots, force-removes any
// team unreachable from them, then deletes any program with no remaining
// team reference, evicting it from evictor if given. It repeats until a
// pass removes nothing. Programs still referenced by a just-removed team's
// sibling edges are left for a later pass — removing a team can orphan a
// program only once nothing else points to it.
func gcSweep(g *core.Graph, evictor CacheEvictor) error {
	for {
		roots := g.Roots()
		res, err := traverse.Reachable(g, roots...)
		if err != nil {
			return err
		}

		var orphanTeams []core.TeamID
		for _, tid := range g.TeamIDs() {
			if _, ok := res.Teams[tid]; !ok {
				orphanTeams = append(orphanTeams, tid)
			}
		}
		var orphanPrograms []core.ProgramID
		for _, pid := range g.ProgramIDs() {
			if _, ok := res.Programs[pid]; !ok {
				orphanPrograms = append(orphanPrograms, pid)
			}
		}
		if len(orphanTeams) == 0 && len(orphanPrograms) == 0 {
			return nil
		}

		removed := 0

		for _, tid := range orphanTeams {
			if err := g.RemoveTeam(tid, true); err != nil {
				if errors.Is(err, core.ErrTeamNotFound) {
					continue
				}
				return err
			}
			removed++
		}

		for _, pid := range orphanPrograms {
			p, err := g.Program(pid)
			if err != nil {
				continue // already gone
			}
			if len(p.InEdges) != 0 {
				continue // still referenced; may free up on a later pass
			}
			if err := g.DeleteOrphanProgram(pid); err != nil {
				if errors.Is(err, core.ErrProgramNotFound) || errors.Is(err, core.ErrProgramNotOrphan) {
					continue
				}
				return err
			}
			if evictor != nil {
				evictor.Drop(pid)
			}
			removed++
		}

		if removed == 0 {
			return ErrStuckOrphans
		}
	}
}
