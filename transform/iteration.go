// Package transform: the iteration rule.
package transform

import (
	"fmt"

	"github.com/katalvlaran/peirce/egi"
)

// Iterate copies a selection into sel.Target, a context that must
// enclose-or-equal the selection's own context: the copy lands on the
// same level or a shallower one, never deeper. The direction is easy
// to invert, so it is asserted here and covered both ways in tests.
//
// The copy gets fresh ids throughout. A selected edge may reference an
// unselected vertex; the copy then references that same vertex,
// preserving the ligature across the boundary, provided the vertex's
// context still encloses the target.
//
// Preconditions, all checked before anything is built:
//  1. the selection is non-empty, coherent (roots in one context), and
//     edge-closed up to boundary ligatures;
//  2. sel.Target is a context and encloses-or-equals the source context;
//  3. every boundary vertex's context encloses sel.Target.
//
// Returns the new Graph plus a Selection listing every copied element
// (suitable for a follow-up Deiterate).
// Errors: ErrEmptySelection, egi.ErrElementNotFound, egi.ErrNotContext,
// ErrNotClosed, egi.ErrDominance.
// Complexity: O((V+E)·delta).
func Iterate(g *egi.Graph, sel Selection) (*egi.Graph, Selection, error) {
	none := Selection{}

	// 1. Resolve the selection.
	eff, err := effectiveSet(g, sel)
	if err != nil {
		return nil, none, err
	}
	roots := selectionRoots(g, eff)
	src, err := sourceContext(g, roots)
	if err != nil {
		return nil, none, err
	}

	// 2. Dominance gate: target must enclose-or-equal the source.
	if !g.IsContext(sel.Target) {
		return nil, none, fmt.Errorf("transform: iterate into %q: %w", sel.Target, egi.ErrNotContext)
	}
	if !g.Encloses(sel.Target, src) {
		return nil, none, fmt.Errorf("transform: iterate: target %q does not enclose source %q: %w",
			sel.Target, src, egi.ErrDominance)
	}

	// 3. Boundary check: unselected argument vertices must stay visible
	//    from the target, selected ones must be part of the copy.
	for id := range eff {
		if !g.IsEdge(id) {
			continue
		}
		e, _ := g.Edge(id)
		for _, v := range e.Args {
			if _, in := eff[v]; in {
				continue
			}
			vctx, _ := g.ContextOf(v)
			if !g.Encloses(vctx, sel.Target) {
				return nil, none, fmt.Errorf("transform: iterate: boundary vertex %q invisible from %q: %w",
					v, sel.Target, egi.ErrDominance)
			}
		}
	}

	// 4. Copy top-down: per level vertices first, then edges, then cuts,
	//    so dominance guarantees every argument exists when its edge is
	//    built. copies maps original ids to fresh ids.
	copies := make(map[egi.ElementID]egi.ElementID, len(eff))
	ng := g
	var copied []egi.ElementID

	var copyLevel func(levelIDs []egi.ElementID, dst egi.ElementID) error
	copyLevel = func(levelIDs []egi.ElementID, dst egi.ElementID) error {
		var cuts []egi.ElementID
		for _, id := range levelIDs {
			if g.IsVertex(id) {
				v, _ := g.Vertex(id)
				var nid egi.ElementID
				if ng, nid, err = ng.AddVertex(dst, v.Label, v.Kind); err != nil {
					return err
				}
				copies[id] = nid
				copied = append(copied, nid)
			}
		}
		for _, id := range levelIDs {
			if !g.IsEdge(id) {
				continue
			}
			e, _ := g.Edge(id)
			args := make([]egi.ElementID, len(e.Args))
			for i, v := range e.Args {
				if nid, in := copies[v]; in {
					args[i] = nid
				} else {
					args[i] = v // boundary ligature: shared vertex
				}
			}
			var nid egi.ElementID
			if ng, nid, err = ng.AddEdge(dst, e.Name, args...); err != nil {
				return err
			}
			copied = append(copied, nid)
		}
		for _, id := range levelIDs {
			if g.IsCut(id) {
				cuts = append(cuts, id)
			}
		}
		for _, id := range cuts {
			var nid egi.ElementID
			if ng, nid, err = ng.AddCut(dst); err != nil {
				return err
			}
			copies[id] = nid
			copied = append(copied, nid)
			members, _ := g.Area(id)
			if err = copyLevel(members, nid); err != nil {
				return err
			}
		}

		return nil
	}

	if err = copyLevel(roots, sel.Target); err != nil {
		return nil, none, err
	}

	return ng, NewSelection(copied...), nil
}
