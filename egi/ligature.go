// Package egi: ligature (coreference) queries.
//
// A ligature is not stored: it is the connected component of the vertex
// set under identity edges, recomputed on demand.
package egi

import "fmt"

// Ligature returns the ids of all vertices coreferent with the given
// vertex: the connected component containing it under identity edges.
// A vertex with no identity edges forms a singleton ligature.
// The result is in creation order.
// Returns ErrElementNotFound if id does not denote a vertex.
// Complexity: O(component size).
func (g *Graph) Ligature(id ElementID) ([]ElementID, error) {
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("egi: ligature of %q: %w", id, ErrElementNotFound)
	}

	seen := map[ElementID]struct{}{id: {}}
	frontier := []ElementID{id}
	for len(frontier) > 0 {
		v := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for eid := range g.incident[v] {
			e := g.edges[eid]
			if e.Name != IdentityName {
				continue
			}
			for _, u := range e.Args {
				if _, ok := seen[u]; !ok {
					seen[u] = struct{}{}
					frontier = append(frontier, u)
				}
			}
		}
	}

	out := make([]ElementID, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	g.sortByCreation(out)

	return out, nil
}

// Ligatures returns the full coreference partition of the vertex set:
// every ligature, each in creation order, ordered by their earliest
// member. Singleton ligatures are included.
// Complexity: O(V+E).
func (g *Graph) Ligatures() [][]ElementID {
	visited := make(map[ElementID]struct{}, len(g.vertices))
	var out [][]ElementID

	ids := make([]ElementID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.sortByCreation(ids)

	for _, id := range ids {
		if _, ok := visited[id]; ok {
			continue
		}
		lig, _ := g.Ligature(id)
		for _, v := range lig {
			visited[v] = struct{}{}
		}
		out = append(out, lig)
	}

	return out
}
