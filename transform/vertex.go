// Package transform: the isolated-vertex pair of rules.
package transform

import (
	"fmt"

	"github.com/katalvlaran/peirce/egi"
)

// AddIsolatedVertex asserts the bare existence of something in ctx.
// An unattached vertex carries no relational content, so this is sound
// in any context. Pass an empty label with egi.Generic, a constant name
// with egi.Constant.
//
// Returns egi.ErrNotContext.
func AddIsolatedVertex(g *egi.Graph, ctx egi.ElementID, label string, kind egi.VertexKind) (*egi.Graph, egi.ElementID, error) {
	return g.AddVertex(ctx, label, kind)
}

// RemoveIsolatedVertex deletes a vertex no edge touches. The inverse of
// AddIsolatedVertex, equally polarity-free.
//
// Returns egi.ErrElementNotFound or ErrVertexNotIsolated.
func RemoveIsolatedVertex(g *egi.Graph, v egi.ElementID) (*egi.Graph, error) {
	free, err := g.Isolated(v)
	if err != nil {
		return nil, fmt.Errorf("transform: remove isolated vertex %q: %w", v, err)
	}
	if !free {
		return nil, fmt.Errorf("transform: vertex %q has incident edges: %w", v, ErrVertexNotIsolated)
	}

	return g.RemoveElements(v)
}
