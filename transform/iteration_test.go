package transform_test

import (
	"testing"

	"github.com/katalvlaran/peirce/egi"
	"github.com/katalvlaran/peirce/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIterate_SameContext: copying an edge next to itself duplicates it
// on the shared ligature.
func TestIterate_SameContext(t *testing.T) {
	g := parse(t, `(man *x)`)

	ng, copySel, err := transform.Iterate(g,
		transform.NewSelection(edgeID(t, g, "man")).WithTarget(egi.Sheet))
	require.NoError(t, err)

	assert.Equal(t, `(man *x) (man x)`, render(t, ng))
	require.Len(t, copySel.Elements, 1)
	assert.True(t, ng.IsEdge(copySel.Elements[0]))
	assert.Equal(t, 1, g.EdgeCount(), "base graph untouched")
}

// TestIterate_Outward: the target may be any context enclosing the
// source; a closed selection copies with fresh ids.
func TestIterate_Outward(t *testing.T) {
	g := parse(t, `~[ (P *x) ]`)
	sel := transform.NewSelection(vertexArg(t, g, "P", 0), edgeID(t, g, "P")).
		WithTarget(egi.Sheet)

	ng, copySel, err := transform.Iterate(g, sel)
	require.NoError(t, err)
	assert.Equal(t, `~[(P *x)] (P *x1)`, render(t, ng))
	assert.Len(t, copySel.Elements, 2)
}

// TestIterate_Inward: a deeper target does not enclose the source and
// is rejected; the dominance direction must never silently flip.
func TestIterate_Inward(t *testing.T) {
	g := parse(t, `(man *x) ~[]`)

	_, _, err := transform.Iterate(g,
		transform.NewSelection(edgeID(t, g, "man")).WithTarget(cutAt(t, g, 0)))
	assert.ErrorIs(t, err, egi.ErrDominance)
}

// TestIterate_CutSelection: a selected cut copies its whole subtree,
// boundary ligatures intact.
func TestIterate_CutSelection(t *testing.T) {
	g := parse(t, `(man *x) ~[ (mortal x) ]`)

	ng, copySel, err := transform.Iterate(g,
		transform.NewSelection(cutAt(t, g, 0)).WithTarget(egi.Sheet))
	require.NoError(t, err)

	assert.Equal(t, `[*x] (man x) ~[(mortal x)] ~[(mortal x)]`, render(t, ng))
	assert.Len(t, copySel.Elements, 2, "the copied cut and its edge")
	assert.Len(t, ng.Ligatures(), 1, "both copies bind the original vertex")
}

// TestIterate_BoundaryInvisible: a boundary vertex deeper than the
// target cannot be referenced from there.
func TestIterate_BoundaryInvisible(t *testing.T) {
	g := parse(t, `~[ (P *x) ]`)

	_, _, err := transform.Iterate(g,
		transform.NewSelection(edgeID(t, g, "P")).WithTarget(egi.Sheet))
	assert.ErrorIs(t, err, egi.ErrDominance)
}

// TestIterate_BadTarget: the target must be a context.
func TestIterate_BadTarget(t *testing.T) {
	g := parse(t, `(man *x)`)

	_, _, err := transform.Iterate(g,
		transform.NewSelection(edgeID(t, g, "man")).WithTarget(vertexArg(t, g, "man", 0)))
	assert.ErrorIs(t, err, egi.ErrNotContext)
}

// TestDeiterate_SameContext: a duplicate next to its pattern goes away.
func TestDeiterate_SameContext(t *testing.T) {
	g := parse(t, `(man *x) (man x)`)
	edges := g.Edges()

	ng, err := transform.Deiterate(g, transform.NewSelection(edges[1].ID))
	require.NoError(t, err)
	assert.Equal(t, `(man *x)`, render(t, ng))
}

// TestDeiterate_EnclosingPattern: the pattern may live any number of
// cuts above the selection.
func TestDeiterate_EnclosingPattern(t *testing.T) {
	g := parse(t, `(P *x) ~[ (P *y) ]`)

	// The cut's copy of P, together with its own vertex.
	inner := g.Edges()[1]
	sel := transform.NewSelection(inner.Args[0], inner.ID)

	ng, err := transform.Deiterate(g, sel)
	require.NoError(t, err)
	assert.Equal(t, `(P *x) ~[]`, render(t, ng))
}

// TestDeiterate_LigatureBoundary: an unselected argument must be the
// very same vertex in the pattern, not just a lookalike.
func TestDeiterate_LigatureBoundary(t *testing.T) {
	// Two mortal edges in the cut bind the same outer vertex: removable.
	g := parse(t, `(man *x) ~[ (mortal x) (mortal x) ]`)
	second := g.Edges()[2]
	ng, err := transform.Deiterate(g, transform.NewSelection(second.ID))
	require.NoError(t, err)
	assert.Equal(t, `[*x] (man x) ~[(mortal x)]`, render(t, ng))

	// Same shape over a different vertex is no pattern.
	g = parse(t, `(man *x) (man *y) ~[ (mortal x) ]`)
	_, err = transform.Deiterate(g, transform.NewSelection(edgeID(t, g, "mortal")))
	assert.ErrorIs(t, err, transform.ErrPatternNotFound)
}

// TestDeiterate_CutPattern: whole-cut selections match structurally,
// with fresh variables mapped across.
func TestDeiterate_CutPattern(t *testing.T) {
	g := parse(t, `~[ (P *x) ] ~[ (P *y) ]`)

	ng, err := transform.Deiterate(g, transform.NewSelection(cutAt(t, g, 1)))
	require.NoError(t, err)
	assert.Equal(t, `~[(P *x)]`, render(t, ng))
}

// TestDeiterate_SupersetCut: a cut whose area strictly contains the
// selection's content is no duplicate. Removing the smaller cut on the
// strength of the bigger one would turn not-(P and Q) into a license to
// drop not-P.
func TestDeiterate_SupersetCut(t *testing.T) {
	g := parse(t, `~[ (P *x) (Q x) ] ~[ (P *y) ]`)
	_, err := transform.Deiterate(g, transform.NewSelection(cutAt(t, g, 1)))
	assert.ErrorIs(t, err, transform.ErrPatternNotFound)

	// An extra isolated vertex in the candidate also blocks the match.
	g = parse(t, `~[ (P *x) [*z] ] ~[ (P *y) ]`)
	_, err = transform.Deiterate(g, transform.NewSelection(cutAt(t, g, 1)))
	assert.ErrorIs(t, err, transform.ErrPatternNotFound)
}

// TestDeiterate_NotClosed: removing a vertex but not its edge can never
// be a de-iteration.
func TestDeiterate_NotClosed(t *testing.T) {
	g := parse(t, `(P *x) (P *y)`)

	_, err := transform.Deiterate(g, transform.NewSelection(vertexArg(t, g, "P", 0)))
	assert.ErrorIs(t, err, transform.ErrNotClosed)
}

// TestDeiterate_NoPattern: a lone statement has nothing to justify its
// removal.
func TestDeiterate_NoPattern(t *testing.T) {
	g := parse(t, `(P *x) (Q x)`)

	_, err := transform.Deiterate(g, transform.NewSelection(edgeID(t, g, "Q")))
	assert.ErrorIs(t, err, transform.ErrPatternNotFound)
}
