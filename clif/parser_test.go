// Package clif_test verifies the CLIF subset: the five operators,
// identity, term rules, header capture, and the typed errors.
package clif_test

import (
	"testing"

	"github.com/katalvlaran/peirce/clif"
	"github.com/katalvlaran/peirce/egi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Atom: an atomic sentence is one relation edge; quoted and
// capitalized terms are constants, bound once per visible scope.
func TestParse_Atom(t *testing.T) {
	doc, err := clif.Parse(`(and (man "Socrates") (mortal "Socrates"))`)
	require.NoError(t, err)
	g := doc.Graph

	assert.Equal(t, 1, g.VertexCount(), "both mentions bind one constant")
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, egi.Constant, g.Vertices()[0].Kind)

	// Unquoted capitalized and digit-initial symbols are constants too.
	doc, err = clif.Parse(`(orbits Earth Sun) (age Sun 4603)`)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Graph.VertexCount())
}

// TestParse_Exists: variables become generic vertices in the quantifier's
// context, visible through the whole body.
func TestParse_Exists(t *testing.T) {
	doc, err := clif.Parse(`(exists (x y) (and (man x) (loves x y)))`)
	require.NoError(t, err)
	g := doc.Graph

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	for _, v := range g.Vertices() {
		ctx, err := g.ContextOf(v.ID)
		require.NoError(t, err)
		assert.Equal(t, egi.Sheet, ctx)
	}

	// A variable list with no body just asserts existence.
	doc, err = clif.Parse(`(exists (x))`)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Graph.VertexCount())
	assert.Equal(t, 0, doc.Graph.EdgeCount())
}

// TestParse_NotAndOr: not is one cut; or is the cut-normal form
// ¬(¬A ∧ ¬B); and at top level is just juxtaposition.
func TestParse_NotAndOr(t *testing.T) {
	doc, err := clif.Parse(`(not (exists (x) (phoenix x)))`)
	require.NoError(t, err)
	g := doc.Graph
	require.Equal(t, 1, g.CutCount())
	cut := g.Cuts()[0]
	area, err := g.Area(cut.ID)
	require.NoError(t, err)
	assert.Len(t, area, 2, "variable and atom live inside the cut")

	doc, err = clif.Parse(`(or (p "A") (q "B"))`)
	require.NoError(t, err)
	g = doc.Graph
	require.Equal(t, 3, g.CutCount())
	outer := g.Cuts()[0]
	assert.Equal(t, egi.Sheet, outer.Parent)
	assert.Equal(t, outer.ID, g.Cuts()[1].Parent)
	assert.Equal(t, outer.ID, g.Cuts()[2].Parent)

	// The empty conjunction asserts nothing.
	doc, err = clif.Parse(`(and)`)
	require.NoError(t, err)
	assert.True(t, doc.Graph.IsEmpty())
}

// TestParse_Forall: universal quantification is the derived form
// ¬∃vars¬body, with the variables between the two cuts.
func TestParse_Forall(t *testing.T) {
	doc, err := clif.Parse(`(forall (x) (mortal x))`)
	require.NoError(t, err)
	g := doc.Graph

	require.Equal(t, 2, g.CutCount())
	outer, inner := g.Cuts()[0], g.Cuts()[1]
	assert.Equal(t, egi.Sheet, outer.Parent)
	assert.Equal(t, outer.ID, inner.Parent)

	v := g.Vertices()[0]
	ctx, err := g.ContextOf(v.ID)
	require.NoError(t, err)
	assert.Equal(t, outer.ID, ctx, "variables live between the cuts")

	innerArea, err := g.Area(inner.ID)
	require.NoError(t, err)
	require.Len(t, innerArea, 1)
	assert.True(t, g.IsEdge(innerArea[0]))
}

// TestParse_Identity: (= a b) is one identity edge joining two ligatures.
func TestParse_Identity(t *testing.T) {
	doc, err := clif.Parse(`(exists (x) (= x "Hesperus"))`)
	require.NoError(t, err)
	g := doc.Graph

	assert.Equal(t, 2, g.VertexCount())
	require.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, egi.IdentityName, g.Edges()[0].Name)
	assert.Len(t, g.Ligatures(), 1)
}

// TestParse_Headers: cl:comment and cl:imports are captured verbatim,
// byte for byte, and only at top level.
func TestParse_Headers(t *testing.T) {
	src := `(cl:comment "EG  examples (Dau)") (cl:imports http://example.org/base) (p "A")`
	doc, err := clif.Parse(src)
	require.NoError(t, err)

	require.Len(t, doc.Header, 2)
	assert.Equal(t, clif.MetaComment, doc.Header[0].Kind)
	assert.Equal(t, `(cl:comment "EG  examples (Dau)")`, doc.Header[0].Text)
	assert.Equal(t, clif.MetaImports, doc.Header[1].Kind)
	assert.Equal(t, `(cl:imports http://example.org/base)`, doc.Header[1].Text)
	assert.Equal(t, 1, doc.Graph.EdgeCount())

	_, err = clif.Parse(`(and (cl:comment "buried"))`)
	assert.ErrorIs(t, err, clif.ErrSyntax)
}

// TestParse_Errors: scoping and shape violations carry their sentinels.
func TestParse_Errors(t *testing.T) {
	// Unbound lower-case variable.
	_, err := clif.Parse(`(mortal x)`)
	assert.ErrorIs(t, err, clif.ErrUndefinedLabel)

	// A quantifier cannot rebind a visible variable.
	_, err = clif.Parse(`(exists (x x) (p x))`)
	assert.ErrorIs(t, err, clif.ErrDuplicateLabel)
	_, err = clif.Parse(`(exists (x) (exists (x) (p x)))`)
	assert.ErrorIs(t, err, clif.ErrDuplicateLabel)

	// A variable dies with its quantifier.
	_, err = clif.Parse(`(not (exists (x) (p x))) (q x)`)
	assert.ErrorIs(t, err, clif.ErrUndefinedLabel)

	// Shape errors.
	for _, src := range []string{
		`(not (p "A") (q "B"))`, // not takes one sentence
		`(= "A")`,               // = takes two terms
		`(exists x (p x))`,      // missing variable list parens
		`(p "A"`,                // unclosed
		`)`,                     // stray closer
		`(cl:imports`,           // unclosed header
	} {
		_, err = clif.Parse(src)
		assert.ErrorIs(t, err, clif.ErrSyntax, "input %q", src)
	}
}

// TestParse_OperatorCase: operator heads are case-insensitive, relation
// names keep their spelling.
func TestParse_OperatorCase(t *testing.T) {
	doc, err := clif.Parse(`(AND (NOT (Flies "Tux")))`)
	require.NoError(t, err)
	g := doc.Graph

	assert.Equal(t, 1, g.CutCount())
	require.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, "Flies", g.Edges()[0].Name)
}
