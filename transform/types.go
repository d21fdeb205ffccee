// Package transform: selections, subgraph descriptions, and sentinel errors.
package transform

import (
	"errors"

	"github.com/katalvlaran/peirce/egi"
)

// Sentinel errors for rule preconditions.
var (
	// ErrPolarity indicates the rule's polarity gate failed: erasure
	// needs a positive context, insertion a negative one.
	ErrPolarity = errors.New("transform: context polarity violation")

	// ErrNotClosed indicates the selection is not closed for the rule:
	// missing incident elements, or roots scattered across contexts.
	ErrNotClosed = errors.New("transform: selection is not a closed subgraph")

	// ErrPatternNotFound indicates de-iteration found no subgraph
	// isomorphic to the selection in any enclosing-or-equal context.
	ErrPatternNotFound = errors.New("transform: no matching pattern in an enclosing context")

	// ErrNotDoubleCut indicates the cut does not hold exactly one child
	// cut and nothing else.
	ErrNotDoubleCut = errors.New("transform: not a removable double cut")

	// ErrVertexNotIsolated indicates the vertex still has incident edges.
	ErrVertexNotIsolated = errors.New("transform: vertex is not isolated")

	// ErrEmptySelection indicates a rule that needs elements got none.
	ErrEmptySelection = errors.New("transform: selection is empty")
)

// Selection names the elements a rule acts on, plus a target context
// where the rule needs one (Iterate's destination, AddDoubleCut's
// context for an empty selection).
type Selection struct {
	// Elements are the selected element ids. Selecting a cut implies
	// its whole subtree.
	Elements []egi.ElementID

	// Target is the destination context, where the rule uses one.
	Target egi.ElementID
}

// NewSelection builds a Selection over the given elements.
func NewSelection(ids ...egi.ElementID) Selection {
	return Selection{Elements: ids}
}

// WithTarget returns a copy of the selection aimed at the given context.
func (s Selection) WithTarget(ctx egi.ElementID) Selection {
	s.Target = ctx

	return s
}

// DoubleCut names the pair of cuts created by AddDoubleCut.
type DoubleCut struct {
	// Outer is the cut sitting in the original context.
	Outer egi.ElementID
	// Inner is the sole child of Outer, holding the wrapped selection.
	Inner egi.ElementID
}

// Subgraph is a declarative description of a new, previously unattached
// subgraph for Insert. Local Refs name the pieces; In places a piece
// inside one of the listed cuts ("" means the insertion context itself).
type Subgraph struct {
	Vertices []SubVertex
	Cuts     []SubCut
	Edges    []SubEdge
}

// SubVertex describes one vertex to create.
type SubVertex struct {
	Ref   string // local handle, unique among vertices
	Label string
	Kind  egi.VertexKind
	In    string // cut Ref or "" for the insertion context
}

// SubCut describes one cut to create. Parents must be listed before
// children.
type SubCut struct {
	Ref string // local handle, unique among cuts
	In  string // cut Ref or "" for the insertion context
}

// SubEdge describes one edge to create. Each Arg is either a local
// vertex Ref or the id of an existing graph vertex visible at the
// edge's context (keeping the new subgraph attached to its ligatures).
type SubEdge struct {
	Name string
	Args []string
	In   string // cut Ref or "" for the insertion context
}
