// Package transform: the double-cut pair of rules.
package transform

import (
	"fmt"

	"github.com/katalvlaran/peirce/egi"
)

// AddDoubleCut wraps a selection in two nested cuts. Two cuts cancel
// logically, so this is sound in any context, any polarity.
//
// An empty selection is allowed: sel.Target names the context that
// receives an empty double cut (sheet when Target is zero). A non-empty
// selection ignores Target; the pair is built around the selection in
// its own context.
//
// Returns the new Graph plus the Outer/Inner pair for a follow-up
// RemoveDoubleCut. Errors: egi.ErrElementNotFound, egi.ErrNotContext,
// ErrNotClosed. Complexity: O(V+E).
func AddDoubleCut(g *egi.Graph, sel Selection) (*egi.Graph, DoubleCut, error) {
	none := DoubleCut{}

	// 1. Locate the host context.
	var src egi.ElementID
	var roots []egi.ElementID
	if len(sel.Elements) == 0 {
		src = sel.Target
		if src == "" {
			src = egi.Sheet
		}
		if !g.IsContext(src) {
			return nil, none, fmt.Errorf("transform: double cut in %q: %w", src, egi.ErrNotContext)
		}
	} else {
		eff, err := effectiveSet(g, sel)
		if err != nil {
			return nil, none, err
		}
		roots = selectionRoots(g, eff)
		if src, err = sourceContext(g, roots); err != nil {
			return nil, none, err
		}
	}

	// 2. Build the pair.
	ng, outer, err := g.AddCut(src)
	if err != nil {
		return nil, none, err
	}
	ng, inner, err := ng.AddCut(outer)
	if err != nil {
		return nil, none, err
	}

	// 3. Move the selection inside.
	if len(roots) > 0 {
		if ng, err = ng.MoveElements(roots, inner); err != nil {
			return nil, none, err
		}
	}

	return ng, DoubleCut{Outer: outer, Inner: inner}, nil
}

// RemoveDoubleCut deletes a double cut, splicing the inner area into
// the outer cut's context. The outer cut's area must be exactly the
// inner cut and nothing else; anything between the two cuts would
// change meaning on removal.
//
// Returns egi.ErrElementNotFound or ErrNotDoubleCut.
// Complexity: O(V+E).
func RemoveDoubleCut(g *egi.Graph, outer egi.ElementID) (*egi.Graph, error) {
	// 1. The pair must be a genuine double cut.
	oc, err := g.Cut(outer)
	if err != nil {
		return nil, err
	}
	between, err := g.Area(outer)
	if err != nil {
		return nil, err
	}
	if len(between) != 1 || !g.IsCut(between[0]) {
		return nil, fmt.Errorf("transform: cut %q is not half of a double cut: %w", outer, ErrNotDoubleCut)
	}
	inner := between[0]

	// 2. Splice the inner area out to the host context.
	members, err := g.Area(inner)
	if err != nil {
		return nil, err
	}
	ng := g
	if len(members) > 0 {
		if ng, err = ng.MoveElements(members, oc.Parent); err != nil {
			return nil, err
		}
	}

	// 3. Drop the now-empty pair.
	return ng.RemoveElements(outer)
}
