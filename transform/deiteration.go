// Package transform: the de-iteration rule.
package transform

import (
	"fmt"

	"github.com/katalvlaran/peirce/egi"
)

// Deiterate removes a selection that duplicates a pattern already
// visible from its context: a subgraph isomorphic to the selection
// (respecting ligatures, so a boundary vertex must be the very same
// vertex) must exist, disjoint from the selection, in the selection's
// own context or one enclosing it. This is the exact inverse of
// Iterate: anything Iterate produced, Deiterate accepts.
//
// Preconditions, all checked before anything is built:
//  1. the selection is non-empty and coherent (roots in one context);
//  2. the selection is vertex-closed (a selected vertex's incident
//     edges are all selected), so removal cannot dangle an edge;
//  3. a matching pattern exists (see match.go).
//
// Returns ErrEmptySelection, egi.ErrElementNotFound, ErrNotClosed, or
// ErrPatternNotFound.
// Complexity: backtracking search, see package doc.
func Deiterate(g *egi.Graph, sel Selection) (*egi.Graph, error) {
	// 1. Resolve the selection.
	eff, err := effectiveSet(g, sel)
	if err != nil {
		return nil, err
	}
	roots := selectionRoots(g, eff)
	src, err := sourceContext(g, roots)
	if err != nil {
		return nil, err
	}

	// 2. Removal must be self-contained on the vertex side.
	if err = vertexComplete(g, eff); err != nil {
		return nil, err
	}

	// 3. Search the enclosing chain (source context included) for a
	//    disjoint duplicate of the selection.
	if !findPattern(g, eff, roots, src) {
		return nil, fmt.Errorf("transform: deiterate from %q: %w", src, ErrPatternNotFound)
	}

	// 4. Build the result.
	return g.RemoveElements(roots...)
}
