package dot

import (
	"fmt"
	"io"
	"sort"

	"github.com/arborix-labs/tpg/core"
)

// Write renders g as a DOT digraph: one node per team (labeled with its
// member program IDs and their assigned actions, roots drawn with a double
// border), and one labeled edge per action-map entry, pointing from the
// owning team to its mapped destination and labeled with the triggering
// program ID. Node and edge emission order is sorted by ID so output is
// deterministic across calls, following the
// fmt.Sprintf("%v -> %v [label=%v];\n")-style emission the reference corpus
// uses for its own Graphviz export.
func Write(w io.Writer, g *core.Graph) error {
	roots := make(map[core.TeamID]struct{})
	for _, r := range g.Roots() {
		roots[r] = struct{}{}
	}

	teamIDs := g.TeamIDs()
	sort.Slice(teamIDs, func(i, j int) bool { return teamIDs[i] < teamIDs[j] })

	if _, err := fmt.Fprintf(w, "digraph tpg {\n\trankdir=LR;\n"); err != nil {
		return err
	}

	for _, tid := range teamIDs {
		t, err := g.Team(tid)
		if err != nil {
			continue
		}
		label, err := teamLabel(g, t)
		if err != nil {
			return err
		}
		shape := "box"
		if _, isRoot := roots[tid]; isRoot {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "\t%v [shape=%s,label=%q];\n", tid, shape, label); err != nil {
			return err
		}
	}

	for _, tid := range teamIDs {
		t, err := g.Team(tid)
		if err != nil {
			continue
		}
		programIDs := make([]core.ProgramID, 0, len(t.ActionMap))
		for pid := range t.ActionMap {
			programIDs = append(programIDs, pid)
		}
		sort.Slice(programIDs, func(i, j int) bool { return programIDs[i] < programIDs[j] })

		for _, pid := range programIDs {
			dest := t.ActionMap[pid]
			if _, err := fmt.Fprintf(w, "\t%v -> %v [label=%q];\n", tid, dest, pid.String()); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprint(w, "}\n")
	return err
}

// teamLabel renders a team's node label: one line per member program,
// showing its ID and assigned action (or "-" if it has none).
func teamLabel(g *core.Graph, t *core.Team) (string, error) {
	label := t.ID.String()
	for _, pid := range t.Programs {
		p, err := g.Program(pid)
		if err != nil {
			return "", err
		}
		action := "-"
		if p.HasAction() {
			action = fmt.Sprintf("%v", p.Action)
		}
		label += fmt.Sprintf("\\n%v:%v", pid, action)
	}
	return label, nil
}
