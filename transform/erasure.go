// Package transform: the erasure rule.
package transform

import (
	"fmt"

	"github.com/katalvlaran/peirce/egi"
)

// Erase removes a closed selection from a positive context.
//
// Preconditions, all checked before anything is built:
//  1. the selection is non-empty and every id exists;
//  2. the selection roots share one context, and that context is
//     positive (even cut depth); erasing under negation is unsound and
//     fails with ErrPolarity;
//  3. the selection is vertex-closed: every selected vertex's incident
//     edges are selected. Selected edges may reach unselected vertices;
//     erasing an edge alone just severs it from its ligature.
//
// Returns ErrEmptySelection, egi.ErrElementNotFound, ErrNotClosed, or
// ErrPolarity. Complexity: O(V+E).
func Erase(g *egi.Graph, sel Selection) (*egi.Graph, error) {
	// 1. Resolve the selection.
	eff, err := effectiveSet(g, sel)
	if err != nil {
		return nil, err
	}
	roots := selectionRoots(g, eff)

	// 2. Polarity gate.
	src, err := sourceContext(g, roots)
	if err != nil {
		return nil, err
	}
	pol, err := g.PolarityOf(src)
	if err != nil {
		return nil, err
	}
	if pol != egi.Positive {
		return nil, fmt.Errorf("transform: erase in negative context %q: %w", src, ErrPolarity)
	}

	// 3. Vertex closure, so removal cannot dangle an edge.
	if err = vertexComplete(g, eff); err != nil {
		return nil, err
	}

	// 4. Build the result.
	return g.RemoveElements(roots...)
}
