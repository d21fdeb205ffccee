// Package egi: central type declarations and sentinel errors.
//
// This file declares ElementID, VertexKind, Polarity, the element
// structs (Vertex, Edge, Cut), sentinel errors, and the New constructor.
// Query methods live in graph.go, construction in build.go.
package egi

import "errors"

// Sentinel errors for EGI operations.
var (
	// ErrElementNotFound indicates an operation referenced an id that is
	// absent from the graph or denotes an element of the wrong kind.
	ErrElementNotFound = errors.New("egi: element not found")

	// ErrNotContext indicates an id that denotes neither the sheet nor a cut.
	ErrNotContext = errors.New("egi: not a context")

	// ErrDominance indicates an edge argument whose context does not
	// enclose the edge, or a move that would break the context tree.
	ErrDominance = errors.New("egi: dominance violation")

	// ErrDanglingEdge indicates a removal that would leave a surviving
	// edge with a missing argument vertex.
	ErrDanglingEdge = errors.New("egi: removal would dangle an edge")

	// ErrEmptyName indicates an edge with an empty relation name.
	ErrEmptyName = errors.New("egi: relation name is empty")

	// ErrIdentityArity indicates an IdentityName edge whose arity is not 2.
	ErrIdentityArity = errors.New("egi: identity edges take exactly two arguments")

	// ErrSheet indicates an attempt to remove or move the sheet of assertion.
	ErrSheet = errors.New("egi: the sheet of assertion is fixed")
)

// ElementID uniquely identifies a vertex, edge, or cut within one Graph.
// IDs are opaque; their only guaranteed property is that creation order
// is total and observable through the ordering of Area, Vertices, Edges,
// Cuts, and Snapshot.
type ElementID string

// Sheet is the id of the root context, the sheet of assertion.
// It is a context but not an element: it has no enclosing context and
// never appears in any area.
const Sheet ElementID = "sheet"

// IdentityName is the reserved 2-ary relation name of identity edges.
// Vertices linked by identity edges form one ligature (coreference).
const IdentityName = "="

// VertexKind distinguishes the two mutually exclusive vertex flavors.
type VertexKind uint8

const (
	// Generic marks an existentially quantified vertex; its Label is a
	// surface notation hint and carries no logical content.
	Generic VertexKind = iota

	// Constant marks a named individual; its Label is the name and is
	// significant for isomorphism.
	Constant
)

// Polarity is the sign of a context: the sheet is Positive, and each
// cut flips the sign of everything directly inside it.
type Polarity int8

const (
	// Positive marks contexts at even cut depth.
	Positive Polarity = 1
	// Negative marks contexts at odd cut depth.
	Negative Polarity = -1
)

// Vertex is a node of the hypergraph: one (occurrence of an) individual.
type Vertex struct {
	// ID is the unique identifier of this vertex.
	ID ElementID

	// Label is the constant's name, or a surface label for a generic
	// (may be empty; generators allocate labels for unlabeled generics).
	Label string

	// Kind is Generic or Constant, never both, never neither.
	Kind VertexKind
}

// Edge is a relation hyperedge: a named relation applied to an ordered
// tuple of vertices. Arity is len(Args); 0-ary edges (medads) are legal.
type Edge struct {
	// ID is the unique identifier of this edge.
	ID ElementID

	// Name is the relation name. IdentityName marks identity edges.
	Name string

	// Args is the ordered tuple of incident vertex ids.
	Args []ElementID
}

// Cut is a context boundary denoting negation of its contents.
type Cut struct {
	// ID is the unique identifier of this cut.
	ID ElementID

	// Parent is the directly enclosing context (the sheet or a cut).
	Parent ElementID
}

// Graph is one immutable existential graph instance.
//
// All maps are private and never escape; every construction operation
// clones them before patching, so a Graph can be shared across
// goroutines without synchronization and a base is never observed to
// change after one of its derivatives is built.
type Graph struct {
	vertices map[ElementID]Vertex
	edges    map[ElementID]Edge
	cuts     map[ElementID]Cut

	// area[ctx] is the set of ids directly enclosed by ctx.
	area map[ElementID]map[ElementID]struct{}
	// parent[id] is the context directly enclosing id.
	parent map[ElementID]ElementID
	// incident[v] is the set of edge ids having v among their Args.
	incident map[ElementID]map[ElementID]struct{}

	// seq[id] is the creation ordinal; nextSeq mints the next one.
	seq     map[ElementID]uint64
	nextSeq uint64
}

// New creates an empty Graph: just the sheet of assertion, no elements.
// Complexity: O(1).
func New() *Graph {
	g := &Graph{
		vertices: make(map[ElementID]Vertex),
		edges:    make(map[ElementID]Edge),
		cuts:     make(map[ElementID]Cut),
		area:     make(map[ElementID]map[ElementID]struct{}),
		parent:   make(map[ElementID]ElementID),
		incident: make(map[ElementID]map[ElementID]struct{}),
		seq:      make(map[ElementID]uint64),
		nextSeq:  1,
	}
	g.area[Sheet] = make(map[ElementID]struct{})

	return g
}
