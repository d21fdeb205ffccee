// Package transform: the insertion rule.
package transform

import (
	"fmt"

	"github.com/katalvlaran/peirce/egi"
)

// Insert adds a new, previously unattached subgraph into a negative
// context. The subgraph is declarative (local refs, see Subgraph); an
// edge argument naming an existing vertex id keeps the insertion
// attached to that vertex's ligature, subject to dominance.
//
// Preconditions, all checked before anything is built:
//  1. target is a context with negative polarity;
//  2. every In reference names a listed cut (parents before children);
//  3. every edge argument is a listed vertex ref or an existing vertex.
//
// Returns egi.ErrNotContext, ErrPolarity, egi.ErrElementNotFound, or
// egi.ErrDominance. Complexity: O((V+E)·delta).
func Insert(g *egi.Graph, sub Subgraph, target egi.ElementID) (*egi.Graph, error) {
	// 1. Polarity gate on the target context.
	pol, err := g.PolarityOf(target)
	if err != nil {
		return nil, err
	}
	if pol != egi.Negative {
		return nil, fmt.Errorf("transform: insert into positive context %q: %w", target, ErrPolarity)
	}

	// 2. Pre-validate all local references.
	cutRefs := make(map[string]bool, len(sub.Cuts))
	for _, c := range sub.Cuts {
		if c.In != "" && !cutRefs[c.In] {
			return nil, fmt.Errorf("transform: insert: cut %q placed in unknown cut %q: %w",
				c.Ref, c.In, egi.ErrElementNotFound)
		}
		cutRefs[c.Ref] = true
	}
	vertRefs := make(map[string]bool, len(sub.Vertices))
	for _, v := range sub.Vertices {
		if v.In != "" && !cutRefs[v.In] {
			return nil, fmt.Errorf("transform: insert: vertex %q placed in unknown cut %q: %w",
				v.Ref, v.In, egi.ErrElementNotFound)
		}
		vertRefs[v.Ref] = true
	}
	for _, e := range sub.Edges {
		if e.In != "" && !cutRefs[e.In] {
			return nil, fmt.Errorf("transform: insert: edge %q placed in unknown cut %q: %w",
				e.Name, e.In, egi.ErrElementNotFound)
		}
		for _, arg := range e.Args {
			if !vertRefs[arg] && !g.IsVertex(egi.ElementID(arg)) {
				return nil, fmt.Errorf("transform: insert: edge %q argument %q: %w",
					e.Name, arg, egi.ErrElementNotFound)
			}
		}
	}

	// 3. Build: cuts, then vertices, then edges. Dominance of edges that
	//    reach existing vertices is enforced by egi.AddEdge.
	ng := g
	cutIDs := map[string]egi.ElementID{"": target}
	for _, c := range sub.Cuts {
		var id egi.ElementID
		if ng, id, err = ng.AddCut(cutIDs[c.In]); err != nil {
			return nil, err
		}
		cutIDs[c.Ref] = id
	}
	vertIDs := make(map[string]egi.ElementID, len(sub.Vertices))
	for _, v := range sub.Vertices {
		var id egi.ElementID
		if ng, id, err = ng.AddVertex(cutIDs[v.In], v.Label, v.Kind); err != nil {
			return nil, err
		}
		vertIDs[v.Ref] = id
	}
	for _, e := range sub.Edges {
		args := make([]egi.ElementID, len(e.Args))
		for i, arg := range e.Args {
			if id, local := vertIDs[arg]; local {
				args[i] = id
			} else {
				args[i] = egi.ElementID(arg)
			}
		}
		if ng, _, err = ng.AddEdge(cutIDs[e.In], e.Name, args...); err != nil {
			return nil, err
		}
	}

	return ng, nil
}
