// Package egi: whole-graph invariant validation.
package egi

import "fmt"

// Validate re-checks every structural invariant of the form and returns
// the first violation found, or nil. Construction operations maintain
// these invariants incrementally; Validate exists for tests, for
// external snapshot consumers, and as a guard after bulk rewrites.
//
// Checked invariants:
//  1. The area mapping partitions all elements into a tree rooted at
//     the sheet (each element in exactly one area, parents consistent,
//     no cut cycles).
//  2. Dominance: every edge argument's context encloses the edge.
//  3. Strict cut nesting follows from the tree shape of (1).
//  4. Every vertex kind is Generic or Constant.
//
// Complexity: O(V+E+C·depth).
func (g *Graph) Validate() error {
	// 1. Every element is in exactly one area, and that area's context
	//    agrees with the parent index.
	seenIn := make(map[ElementID]ElementID, len(g.seq))
	for ctx, set := range g.area {
		if !g.IsContext(ctx) {
			return fmt.Errorf("egi: area keyed by non-context %q: %w", ctx, ErrNotContext)
		}
		for id := range set {
			if prev, dup := seenIn[id]; dup {
				return fmt.Errorf("egi: element %q enclosed by both %q and %q: %w",
					id, prev, ctx, ErrDominance)
			}
			seenIn[id] = ctx
			if g.parent[id] != ctx {
				return fmt.Errorf("egi: element %q parent index disagrees with area %q: %w",
					id, ctx, ErrDominance)
			}
		}
	}
	for id := range g.seq {
		if _, ok := seenIn[id]; !ok {
			return fmt.Errorf("egi: element %q enclosed by no context: %w", id, ErrElementNotFound)
		}
	}

	// 2. Cuts reach the sheet without cycles.
	for id := range g.cuts {
		hops := 0
		ctx := id
		for ctx != Sheet {
			c, ok := g.cuts[ctx]
			if !ok {
				return fmt.Errorf("egi: cut %q has unknown ancestor %q: %w", id, ctx, ErrNotContext)
			}
			ctx = c.Parent
			if hops++; hops > len(g.cuts) {
				return fmt.Errorf("egi: cut %q is part of a nesting cycle: %w", id, ErrDominance)
			}
		}
	}

	// 3. Edge dominance and argument existence.
	for eid, e := range g.edges {
		if e.Name == "" {
			return fmt.Errorf("egi: edge %q: %w", eid, ErrEmptyName)
		}
		if e.Name == IdentityName && len(e.Args) != 2 {
			return fmt.Errorf("egi: identity edge %q with %d arguments: %w", eid, len(e.Args), ErrIdentityArity)
		}
		ectx := g.parent[eid]
		for _, v := range e.Args {
			if _, ok := g.vertices[v]; !ok {
				return fmt.Errorf("egi: edge %q argument %q: %w", eid, v, ErrElementNotFound)
			}
			if !g.Encloses(g.parent[v], ectx) {
				return fmt.Errorf("egi: edge %q reaches vertex %q outside its enclosing chain: %w",
					eid, v, ErrDominance)
			}
		}
	}

	// 4. Vertex kind exclusivity.
	for vid, v := range g.vertices {
		if v.Kind != Generic && v.Kind != Constant {
			return fmt.Errorf("egi: vertex %q has invalid kind %d: %w", vid, v.Kind, ErrElementNotFound)
		}
	}

	return nil
}
