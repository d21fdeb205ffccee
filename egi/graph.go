// Package egi: read-only queries over one Graph value.
//
// Every method in this file is a pure observation: no method allocates
// into, or hands out references to, the graph's internal maps. Slices
// returned to callers are fresh copies ordered by creation ordinal.
package egi

import (
	"fmt"
	"sort"
)

// IsContext reports whether id denotes the sheet or an existing cut.
// Complexity: O(1).
func (g *Graph) IsContext(id ElementID) bool {
	if id == Sheet {
		return true
	}
	_, ok := g.cuts[id]

	return ok
}

// HasElement reports whether id denotes any vertex, edge, or cut.
// The sheet is a context, not an element, and reports false.
// Complexity: O(1).
func (g *Graph) HasElement(id ElementID) bool {
	_, ok := g.seq[id]

	return ok
}

// IsVertex reports whether id denotes a vertex. Complexity: O(1).
func (g *Graph) IsVertex(id ElementID) bool {
	_, ok := g.vertices[id]

	return ok
}

// IsEdge reports whether id denotes an edge. Complexity: O(1).
func (g *Graph) IsEdge(id ElementID) bool {
	_, ok := g.edges[id]

	return ok
}

// IsCut reports whether id denotes a cut. Complexity: O(1).
func (g *Graph) IsCut(id ElementID) bool {
	_, ok := g.cuts[id]

	return ok
}

// Vertex returns the vertex with the given id.
// Returns ErrElementNotFound if id does not denote a vertex.
// Complexity: O(1).
func (g *Graph) Vertex(id ElementID) (Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("egi: vertex %q: %w", id, ErrElementNotFound)
	}

	return v, nil
}

// Edge returns the edge with the given id. The returned Args slice is a
// copy; callers may keep or mutate it freely.
// Returns ErrElementNotFound if id does not denote an edge.
// Complexity: O(arity).
func (g *Graph) Edge(id ElementID) (Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("egi: edge %q: %w", id, ErrElementNotFound)
	}
	e.Args = append([]ElementID(nil), e.Args...)

	return e, nil
}

// Cut returns the cut with the given id.
// Returns ErrElementNotFound if id does not denote a cut.
// Complexity: O(1).
func (g *Graph) Cut(id ElementID) (Cut, error) {
	c, ok := g.cuts[id]
	if !ok {
		return Cut{}, fmt.Errorf("egi: cut %q: %w", id, ErrElementNotFound)
	}

	return c, nil
}

// ContextOf returns the context directly enclosing the given element.
// The sheet has no enclosing context and reports ErrElementNotFound.
// Complexity: O(1).
func (g *Graph) ContextOf(id ElementID) (ElementID, error) {
	ctx, ok := g.parent[id]
	if !ok {
		return "", fmt.Errorf("egi: context of %q: %w", id, ErrElementNotFound)
	}

	return ctx, nil
}

// Depth returns the cut-nesting depth of a context: 0 for the sheet,
// parent's depth + 1 for a cut.
// Returns ErrNotContext if ctx is neither the sheet nor a cut.
// Complexity: O(depth).
func (g *Graph) Depth(ctx ElementID) (int, error) {
	if !g.IsContext(ctx) {
		return 0, fmt.Errorf("egi: depth of %q: %w", ctx, ErrNotContext)
	}
	depth := 0
	for ctx != Sheet {
		ctx = g.cuts[ctx].Parent
		depth++
	}

	return depth, nil
}

// PolarityOf returns the sign of a context: Positive at even depth
// (the sheet included), Negative at odd depth.
// Returns ErrNotContext if ctx is neither the sheet nor a cut.
// Complexity: O(depth).
func (g *Graph) PolarityOf(ctx ElementID) (Polarity, error) {
	depth, err := g.Depth(ctx)
	if err != nil {
		return 0, err
	}
	if depth%2 == 0 {
		return Positive, nil
	}

	return Negative, nil
}

// Encloses reports whether context outer dominates context inner:
// outer is the same context as inner, or a strict ancestor of it in the
// nesting tree. Non-context ids report false.
// Complexity: O(depth(inner)).
func (g *Graph) Encloses(outer, inner ElementID) bool {
	if !g.IsContext(outer) || !g.IsContext(inner) {
		return false
	}
	for {
		if inner == outer {
			return true
		}
		if inner == Sheet {
			return false
		}
		inner = g.cuts[inner].Parent
	}
}

// Isolated reports whether the given vertex has no incident edges.
// Returns ErrElementNotFound if id does not denote a vertex.
// Complexity: O(1).
func (g *Graph) Isolated(id ElementID) (bool, error) {
	if _, ok := g.vertices[id]; !ok {
		return false, fmt.Errorf("egi: isolated %q: %w", id, ErrElementNotFound)
	}

	return len(g.incident[id]) == 0, nil
}

// IncidentEdges returns the ids of all edges having the given vertex
// among their arguments, in creation order.
// Returns ErrElementNotFound if id does not denote a vertex.
// Complexity: O(deg log deg).
func (g *Graph) IncidentEdges(id ElementID) ([]ElementID, error) {
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("egi: incident edges of %q: %w", id, ErrElementNotFound)
	}
	out := make([]ElementID, 0, len(g.incident[id]))
	for eid := range g.incident[id] {
		out = append(out, eid)
	}
	g.sortByCreation(out)

	return out, nil
}

// Area returns the ids directly enclosed by the given context, in
// creation order.
// Returns ErrNotContext if ctx is neither the sheet nor a cut.
// Complexity: O(k log k) for k direct members.
func (g *Graph) Area(ctx ElementID) ([]ElementID, error) {
	if !g.IsContext(ctx) {
		return nil, fmt.Errorf("egi: area of %q: %w", ctx, ErrNotContext)
	}
	out := make([]ElementID, 0, len(g.area[ctx]))
	for id := range g.area[ctx] {
		out = append(out, id)
	}
	g.sortByCreation(out)

	return out, nil
}

// Vertices returns all vertices in creation order. Complexity: O(V log V).
func (g *Graph) Vertices() []Vertex {
	ids := make([]ElementID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.sortByCreation(ids)
	out := make([]Vertex, len(ids))
	for i, id := range ids {
		out[i] = g.vertices[id]
	}

	return out
}

// Edges returns all edges in creation order, Args copied.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	ids := make([]ElementID, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	g.sortByCreation(ids)
	out := make([]Edge, len(ids))
	for i, id := range ids {
		e := g.edges[id]
		e.Args = append([]ElementID(nil), e.Args...)
		out[i] = e
	}

	return out
}

// Cuts returns all cuts in creation order. Complexity: O(C log C).
func (g *Graph) Cuts() []Cut {
	ids := make([]ElementID, 0, len(g.cuts))
	for id := range g.cuts {
		ids = append(ids, id)
	}
	g.sortByCreation(ids)
	out := make([]Cut, len(ids))
	for i, id := range ids {
		out[i] = g.cuts[id]
	}

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// CutCount returns the number of cuts. Complexity: O(1).
func (g *Graph) CutCount() int { return len(g.cuts) }

// IsEmpty reports whether the graph holds no elements at all.
// Complexity: O(1).
func (g *Graph) IsEmpty() bool {
	return len(g.vertices) == 0 && len(g.edges) == 0 && len(g.cuts) == 0
}

// sortByCreation orders ids by their creation ordinal, in place.
func (g *Graph) sortByCreation(ids []ElementID) {
	sort.Slice(ids, func(i, j int) bool { return g.seq[ids[i]] < g.seq[ids[j]] })
}
