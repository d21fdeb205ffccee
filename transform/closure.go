// Package transform: selection closure checks shared by the rules.
package transform

import (
	"fmt"

	"github.com/katalvlaran/peirce/egi"
)

// effectiveSet resolves a selection to the full element set it denotes:
// the listed ids plus everything transitively enclosed by listed cuts.
// Returns egi.ErrElementNotFound for an unknown id.
func effectiveSet(g *egi.Graph, sel Selection) (map[egi.ElementID]struct{}, error) {
	if len(sel.Elements) == 0 {
		return nil, ErrEmptySelection
	}
	eff := make(map[egi.ElementID]struct{})
	var collect func(id egi.ElementID)
	collect = func(id egi.ElementID) {
		if _, seen := eff[id]; seen {
			return
		}
		eff[id] = struct{}{}
		if g.IsCut(id) {
			members, _ := g.Area(id)
			for _, m := range members {
				collect(m)
			}
		}
	}
	for _, id := range sel.Elements {
		if !g.HasElement(id) {
			return nil, fmt.Errorf("transform: selection: %q: %w", id, egi.ErrElementNotFound)
		}
		collect(id)
	}

	return eff, nil
}

// selectionRoots returns the selected elements whose enclosing context
// is itself outside the selection, in creation order.
func selectionRoots(g *egi.Graph, eff map[egi.ElementID]struct{}) []egi.ElementID {
	var roots []egi.ElementID
	for id := range eff {
		ctx, _ := g.ContextOf(id)
		if _, inside := eff[ctx]; !inside {
			roots = append(roots, id)
		}
	}
	sortByArea(g, roots)

	return roots
}

// sortByArea orders ids by creation order, borrowing the deterministic
// ordering of a context walk (ids here always share one graph).
func sortByArea(g *egi.Graph, ids []egi.ElementID) {
	order := make(map[egi.ElementID]int, len(ids))
	pos := 0
	var walk func(ctx egi.ElementID)
	walk = func(ctx egi.ElementID) {
		members, _ := g.Area(ctx)
		for _, m := range members {
			order[m] = pos
			pos++
			if g.IsCut(m) {
				walk(m)
			}
		}
	}
	walk(egi.Sheet)
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && order[ids[j]] < order[ids[j-1]]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}

// sourceContext returns the single context enclosing every selection
// root; scattered roots are not a coherent subgraph.
func sourceContext(g *egi.Graph, roots []egi.ElementID) (egi.ElementID, error) {
	src, _ := g.ContextOf(roots[0])
	for _, id := range roots[1:] {
		ctx, _ := g.ContextOf(id)
		if ctx != src {
			return "", fmt.Errorf("transform: selection roots span %q and %q: %w", src, ctx, ErrNotClosed)
		}
	}

	return src, nil
}

// vertexComplete verifies every selected vertex's incident edges are selected.
func vertexComplete(g *egi.Graph, eff map[egi.ElementID]struct{}) error {
	for id := range eff {
		if !g.IsVertex(id) {
			continue
		}
		incident, _ := g.IncidentEdges(id)
		for _, eid := range incident {
			if _, in := eff[eid]; !in {
				return fmt.Errorf("transform: vertex %q has unselected incident edge %q: %w", id, eid, ErrNotClosed)
			}
		}
	}

	return nil
}
