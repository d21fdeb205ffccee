// Package egi: the flat snapshot boundary for external serializers.
package egi

// Snapshot is a flat, walkable view of one Graph: plain slices and maps
// an external persistence or rendering layer can encode in any format.
// All slices are ordered by creation ordinal, so snapshotting the same
// Graph twice yields identical values. The snapshot shares nothing with
// the Graph's internal state.
type Snapshot struct {
	// Root is the id of the sheet of assertion.
	Root ElementID

	// Vertices, Edges, and Cuts list every element, creation-ordered.
	Vertices []Vertex
	Edges    []Edge
	Cuts     []Cut

	// Area maps each context to its directly enclosed ids, creation-ordered.
	Area map[ElementID][]ElementID

	// Incidence maps each edge to its ordered argument vertex ids.
	Incidence map[ElementID][]ElementID

	// Relation maps each edge to its relation name.
	Relation map[ElementID]string
}

// Snapshot produces the flat view of the graph.
// Complexity: O((V+E+C) log(V+E+C)).
func (g *Graph) Snapshot() Snapshot {
	s := Snapshot{
		Root:      Sheet,
		Vertices:  g.Vertices(),
		Edges:     g.Edges(),
		Cuts:      g.Cuts(),
		Area:      make(map[ElementID][]ElementID, len(g.area)),
		Incidence: make(map[ElementID][]ElementID, len(g.edges)),
		Relation:  make(map[ElementID]string, len(g.edges)),
	}
	for ctx := range g.area {
		members, _ := g.Area(ctx)
		s.Area[ctx] = members
	}
	for _, e := range s.Edges {
		s.Incidence[e.ID] = e.Args // Edges() already copied Args
		s.Relation[e.ID] = e.Name
	}

	return s
}
