package transform_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/peirce/egi"
	"github.com/katalvlaran/peirce/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The algebraic laws of the calculus, checked up to isomorphism.

// TestLaw_DoubleCutInverse: AddDoubleCut then RemoveDoubleCut is the
// identity, and so is the opposite order.
func TestLaw_DoubleCutInverse(t *testing.T) {
	g := parse(t, `(man *x) (mortal x)`)
	sel := transform.NewSelection(
		vertexArg(t, g, "man", 0),
		edgeID(t, g, "man"),
		edgeID(t, g, "mortal"),
	)

	wrapped, dc, err := transform.AddDoubleCut(g, sel)
	require.NoError(t, err)
	back, err := transform.RemoveDoubleCut(wrapped, dc.Outer)
	require.NoError(t, err)
	assert.True(t, egi.Isomorphic(g, back))

	// Opposite order, starting from an existing double cut.
	g2 := parse(t, `~[~[ (P *x) ]]`)
	peeled, err := transform.RemoveDoubleCut(g2, cutAt(t, g2, 0))
	require.NoError(t, err)
	rewrapped, _, err := transform.AddDoubleCut(peeled, transform.NewSelection(
		vertexArg(t, peeled, "P", 0), edgeID(t, peeled, "P")))
	require.NoError(t, err)
	assert.True(t, egi.Isomorphic(g2, rewrapped))
}

// TestLaw_PolarityGates: erasure only in positive contexts, insertion
// only in negative ones, each checked in both polarities.
func TestLaw_PolarityGates(t *testing.T) {
	sub := transform.Subgraph{
		Vertices: []transform.SubVertex{{Ref: "v", Kind: egi.Generic}},
		Edges:    []transform.SubEdge{{Name: "unicorn", Args: []string{"v"}}},
	}

	// Insertion into the positive sheet fails; into a fresh negative
	// cut it succeeds.
	g := parse(t, ``)
	_, err := transform.Insert(g, sub, egi.Sheet)
	assert.ErrorIs(t, err, transform.ErrPolarity)

	g, dc, err := transform.AddDoubleCut(g, transform.Selection{})
	require.NoError(t, err)
	g, err = transform.Insert(g, sub, dc.Outer)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())

	// The inserted edge now sits in a negative context: not erasable.
	_, err = transform.Erase(g, transform.NewSelection(edgeID(t, g, "unicorn")))
	assert.ErrorIs(t, err, transform.ErrPolarity)

	// One level deeper (inside the inner cut) erasure works again.
	deep := parse(t, `~[~[ (P *x) ]]`)
	_, err = transform.Erase(deep, transform.NewSelection(
		vertexArg(t, deep, "P", 0), edgeID(t, deep, "P")))
	assert.NoError(t, err)
}

// TestLaw_IsolatedVertexIdentity: add-then-remove restores the graph up
// to the fresh id, independent of edits elsewhere.
func TestLaw_IsolatedVertexIdentity(t *testing.T) {
	g := parse(t, `(man *x) ~[ (mortal x) ]`)

	withV, v, err := transform.AddIsolatedVertex(g, cutAt(t, g, 0), "", egi.Generic)
	require.NoError(t, err)

	// An unrelated edit on another derivative does not interfere.
	_, _, err = transform.AddIsolatedVertex(g, egi.Sheet, "Sun", egi.Constant)
	require.NoError(t, err)

	back, err := transform.RemoveIsolatedVertex(withV, v)
	require.NoError(t, err)
	assert.True(t, egi.Isomorphic(g, back))
}

// TestLaw_IterateDeiterateInverse: iterating a selection and then
// de-iterating the returned copy restores the original, where both
// preconditions meet (target equal to the source context).
func TestLaw_IterateDeiterateInverse(t *testing.T) {
	g := parse(t, `(man *x) ~[ (mortal x) ]`)

	iterated, copySel, err := transform.Iterate(g,
		transform.NewSelection(cutAt(t, g, 0)).WithTarget(egi.Sheet))
	require.NoError(t, err)
	assert.False(t, egi.Isomorphic(g, iterated))

	back, err := transform.Deiterate(iterated, copySel)
	require.NoError(t, err)
	assert.True(t, egi.Isomorphic(g, back))
}

// TestLaw_ConcurrentTransforms: many rules applied to the same base
// graph from parallel goroutines, no locks, base unchanged.
func TestLaw_ConcurrentTransforms(t *testing.T) {
	g := parse(t, `(man *x) (mortal x) ~[ (happy x) ]`)
	before := g.Snapshot()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			ng, err := transform.Erase(g, transform.NewSelection(edgeID(t, g, "man")))
			assert.NoError(t, err)
			assert.Equal(t, 2, ng.EdgeCount())
		}()
		go func() {
			defer wg.Done()
			ng, _, err := transform.AddDoubleCut(g, transform.NewSelection(edgeID(t, g, "mortal")))
			assert.NoError(t, err)
			assert.Equal(t, 3, ng.CutCount())
		}()
		go func() {
			defer wg.Done()
			_, err := transform.Deiterate(g, transform.NewSelection(edgeID(t, g, "happy")))
			assert.ErrorIs(t, err, transform.ErrPatternNotFound)
		}()
	}
	wg.Wait()

	assert.Equal(t, before, g.Snapshot(), "shared base must be untouched")
}
