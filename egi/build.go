// Package egi: construction operations.
//
// Every operation in this file is copy-on-write: validate the delta
// against the base, clone the arena, patch the clone, return it. The
// base Graph is never touched, so a failing call is a complete no-op
// and a succeeding call never invalidates previously returned values.
package egi

import (
	"fmt"
	"maps"
)

const (
	vertexIDPrefix = "v"
	edgeIDPrefix   = "e"
	cutIDPrefix    = "c"
)

// clone returns a deep copy of the arena (maps and nested sets).
// Element structs are values; Edge.Args slices are never mutated after
// construction, so sharing them between clones is safe.
// Complexity: O(V+E+C).
func (g *Graph) clone() *Graph {
	ng := &Graph{
		vertices: maps.Clone(g.vertices),
		edges:    maps.Clone(g.edges),
		cuts:     maps.Clone(g.cuts),
		area:     make(map[ElementID]map[ElementID]struct{}, len(g.area)),
		parent:   maps.Clone(g.parent),
		incident: make(map[ElementID]map[ElementID]struct{}, len(g.incident)),
		seq:      maps.Clone(g.seq),
		nextSeq:  g.nextSeq,
	}
	for ctx, set := range g.area {
		ng.area[ctx] = maps.Clone(set)
	}
	for v, set := range g.incident {
		ng.incident[v] = maps.Clone(set)
	}

	return ng
}

// mint assigns the next creation ordinal to a fresh id with the given prefix.
func (g *Graph) mint(prefix string) ElementID {
	id := ElementID(fmt.Sprintf("%s%d", prefix, g.nextSeq))
	g.seq[id] = g.nextSeq
	g.nextSeq++

	return id
}

// enclose places id into the area of ctx on the receiver (a fresh clone).
func (g *Graph) enclose(ctx, id ElementID) {
	g.area[ctx][id] = struct{}{}
	g.parent[id] = ctx
}

// AddVertex returns a new Graph extended with one vertex directly
// enclosed by ctx, together with the fresh vertex id.
// Returns ErrNotContext if ctx is neither the sheet nor a cut.
// Complexity: O(V+E+C) for the clone.
func (g *Graph) AddVertex(ctx ElementID, label string, kind VertexKind) (*Graph, ElementID, error) {
	// 1. Validate placement.
	if !g.IsContext(ctx) {
		return nil, "", fmt.Errorf("egi: add vertex in %q: %w", ctx, ErrNotContext)
	}

	// 2. Clone and patch.
	ng := g.clone()
	id := ng.mint(vertexIDPrefix)
	ng.vertices[id] = Vertex{ID: id, Label: label, Kind: kind}
	ng.incident[id] = make(map[ElementID]struct{})
	ng.enclose(ctx, id)

	return ng, id, nil
}

// AddEdge returns a new Graph extended with one relation edge named
// name, directly enclosed by ctx, applied to args in order.
//
// Dominance is enforced: every argument's context must enclose-or-equal
// ctx, i.e. a predicate may reach outward to vertices on its own or an
// enclosing level, never into a sibling or deeper branch.
//
// Returns ErrNotContext, ErrEmptyName, ErrIdentityArity (IdentityName
// with arity other than 2), ErrElementNotFound (unknown argument), or
// ErrDominance.
// Complexity: O(V+E+C) for the clone plus O(arity·depth) checks.
func (g *Graph) AddEdge(ctx ElementID, name string, args ...ElementID) (*Graph, ElementID, error) {
	// 1. Validate placement and name.
	if !g.IsContext(ctx) {
		return nil, "", fmt.Errorf("egi: add edge in %q: %w", ctx, ErrNotContext)
	}
	if name == "" {
		return nil, "", ErrEmptyName
	}
	if name == IdentityName && len(args) != 2 {
		return nil, "", fmt.Errorf("egi: identity edge with %d arguments: %w", len(args), ErrIdentityArity)
	}

	// 2. Validate every argument before building anything.
	for _, v := range args {
		if _, ok := g.vertices[v]; !ok {
			return nil, "", fmt.Errorf("egi: edge argument %q: %w", v, ErrElementNotFound)
		}
		if !g.Encloses(g.parent[v], ctx) {
			return nil, "", fmt.Errorf("egi: edge %q in %q cannot reach vertex %q in %q: %w",
				name, ctx, v, g.parent[v], ErrDominance)
		}
	}

	// 3. Clone and patch.
	ng := g.clone()
	id := ng.mint(edgeIDPrefix)
	ng.edges[id] = Edge{ID: id, Name: name, Args: append([]ElementID(nil), args...)}
	for _, v := range args {
		ng.incident[v][id] = struct{}{}
	}
	ng.enclose(ctx, id)

	return ng, id, nil
}

// AddCut returns a new Graph extended with one empty cut directly
// enclosed by parent, together with the fresh cut id.
// Returns ErrNotContext if parent is neither the sheet nor a cut.
// Complexity: O(V+E+C) for the clone.
func (g *Graph) AddCut(parent ElementID) (*Graph, ElementID, error) {
	// 1. Validate placement.
	if !g.IsContext(parent) {
		return nil, "", fmt.Errorf("egi: add cut in %q: %w", parent, ErrNotContext)
	}

	// 2. Clone and patch.
	ng := g.clone()
	id := ng.mint(cutIDPrefix)
	ng.cuts[id] = Cut{ID: id, Parent: parent}
	ng.area[id] = make(map[ElementID]struct{})
	ng.enclose(parent, id)

	return ng, id, nil
}

// RemoveElements returns a new Graph with the listed elements removed.
// Removing a cut removes everything it transitively encloses. The
// removal is checked as a whole: if any surviving edge would lose an
// argument vertex, the call fails with ErrDanglingEdge and the base is
// untouched.
//
// Returns ErrSheet (sheet listed), ErrElementNotFound (unknown id), or
// ErrDanglingEdge.
// Complexity: O(V+E+C).
func (g *Graph) RemoveElements(ids ...ElementID) (*Graph, error) {
	// 1. Validate the listed ids and collect the transitive closure:
	//    a removed cut takes its whole subtree with it.
	doomed := make(map[ElementID]struct{})
	var collect func(id ElementID)
	collect = func(id ElementID) {
		if _, seen := doomed[id]; seen {
			return
		}
		doomed[id] = struct{}{}
		if _, isCut := g.cuts[id]; isCut {
			for member := range g.area[id] {
				collect(member)
			}
		}
	}
	for _, id := range ids {
		if id == Sheet {
			return nil, fmt.Errorf("egi: remove: %w", ErrSheet)
		}
		if !g.HasElement(id) {
			return nil, fmt.Errorf("egi: remove %q: %w", id, ErrElementNotFound)
		}
		collect(id)
	}

	// 2. No surviving edge may reference a doomed vertex.
	for eid, e := range g.edges {
		if _, gone := doomed[eid]; gone {
			continue
		}
		for _, v := range e.Args {
			if _, gone := doomed[v]; gone {
				return nil, fmt.Errorf("egi: remove vertex %q still used by edge %q: %w",
					v, eid, ErrDanglingEdge)
			}
		}
	}

	// 3. Clone and excise.
	ng := g.clone()
	for id := range doomed {
		delete(ng.area[ng.parent[id]], id)
		delete(ng.parent, id)
		delete(ng.seq, id)
		if e, isEdge := ng.edges[id]; isEdge {
			for _, v := range e.Args {
				if set, ok := ng.incident[v]; ok {
					delete(set, id)
				}
			}
			delete(ng.edges, id)

			continue
		}
		if _, isVertex := ng.vertices[id]; isVertex {
			delete(ng.vertices, id)
			delete(ng.incident, id)

			continue
		}
		delete(ng.cuts, id)
		delete(ng.area, id)
	}

	return ng, nil
}

// MoveElements returns a new Graph in which each listed element is
// re-parented into newCtx. A moved cut carries its subtree with it.
// The whole move is validated on the result before it is returned:
// moving a cut into its own area, or stranding an edge above one of its
// argument vertices, fails with ErrDominance and leaves the base
// untouched.
//
// Returns ErrNotContext, ErrSheet, ErrElementNotFound, or ErrDominance.
// Complexity: O(V+E+C) plus O(E·depth) revalidation.
func (g *Graph) MoveElements(ids []ElementID, newCtx ElementID) (*Graph, error) {
	// 1. Validate the target and the listed ids.
	if !g.IsContext(newCtx) {
		return nil, fmt.Errorf("egi: move into %q: %w", newCtx, ErrNotContext)
	}
	for _, id := range ids {
		if id == Sheet {
			return nil, fmt.Errorf("egi: move: %w", ErrSheet)
		}
		if !g.HasElement(id) {
			return nil, fmt.Errorf("egi: move %q: %w", id, ErrElementNotFound)
		}
		// A cut may not be moved into itself or its own subtree.
		if g.IsCut(id) && g.Encloses(id, newCtx) {
			return nil, fmt.Errorf("egi: move cut %q into its own area: %w", id, ErrDominance)
		}
	}

	// 2. Clone and re-parent the top-level ids; subtrees follow their cut.
	ng := g.clone()
	for _, id := range ids {
		delete(ng.area[ng.parent[id]], id)
		ng.enclose(newCtx, id)
		if c, isCut := ng.cuts[id]; isCut {
			c.Parent = newCtx
			ng.cuts[id] = c
		}
	}

	// 3. Revalidate edge dominance on the result.
	for eid, e := range ng.edges {
		ectx := ng.parent[eid]
		for _, v := range e.Args {
			if !ng.Encloses(ng.parent[v], ectx) {
				return nil, fmt.Errorf("egi: move strands edge %q from vertex %q: %w",
					eid, v, ErrDominance)
			}
		}
	}

	return ng, nil
}
