package clif_test

import (
	"testing"

	"github.com/katalvlaran/peirce/clif"
	"github.com/katalvlaran/peirce/egi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// regen parses and regenerates, failing the test on any error.
func regen(t *testing.T, src string) string {
	t.Helper()
	doc, err := clif.Parse(src)
	require.NoError(t, err)
	out, err := clif.Generate(doc)
	require.NoError(t, err)

	return out
}

// TestGenerate_NormalForm: every surface form comes back in the
// exists/and/not/= normal form.
func TestGenerate_NormalForm(t *testing.T) {
	cases := []struct{ src, want string }{
		{`(man "Socrates")`, `(man "Socrates")`},
		{
			`(and (man "Socrates") (mortal "Socrates"))`,
			`(and (man "Socrates") (mortal "Socrates"))`,
		},
		{
			`(exists (x y) (and (man x) (loves x y)))`,
			`(exists (x y) (and (man x) (loves x y)))`,
		},
		{`(exists (x))`, `(exists (x))`},
		{
			`(not (exists (x) (phoenix x)))`,
			`(not (exists (x) (phoenix x)))`,
		},
		// or is emitted in its cut-normal form.
		{
			`(or (p "A") (q "B"))`,
			`(not (and (not (p "A")) (not (q "B"))))`,
		},
		// forall is emitted as the derived ¬∃¬ form.
		{
			`(forall (x) (mortal x))`,
			`(not (exists (x) (not (mortal x))))`,
		},
		{`(exists (x) (= x "Hesperus"))`, `(exists (x) (= x "Hesperus"))`},
		// An empty cut embeds the vacuous conjunction.
		{`(not (and))`, `(not (and))`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, regen(t, c.src), "input %q", c.src)
	}
}

// TestGenerate_Headers: header forms precede the sentence, byte for byte.
func TestGenerate_Headers(t *testing.T) {
	src := "(cl:comment \"two  spaces kept\")\n(cl:imports http://example.org/base)\n(p \"A\")"
	want := "(cl:comment \"two  spaces kept\")\n(cl:imports http://example.org/base)\n(p \"A\")"
	assert.Equal(t, want, regen(t, src))

	// Headers survive even over an empty sentence.
	out := regen(t, `(cl:comment "nothing asserted")`)
	assert.Equal(t, `(cl:comment "nothing asserted")`, out)
}

// TestGenerate_Deterministic: same Document, same bytes, and the
// canonical text is a fixed point of the loop.
func TestGenerate_Deterministic(t *testing.T) {
	src := `(forall (x) (not (and (lives x) (not (exists (y) (knows x y))))))`
	doc, err := clif.Parse(src)
	require.NoError(t, err)

	first, err := clif.Generate(doc)
	require.NoError(t, err)
	second, err := clif.Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, first, regen(t, first), "canonical text must be a fixed point")
}

// TestGenerate_LabelAllocation: an illegal surface label (upper-case,
// reserved, or colliding) is replaced with x1, x2, ...
func TestGenerate_LabelAllocation(t *testing.T) {
	g := egi.New()
	g, a, err := g.AddVertex(egi.Sheet, "Foo", egi.Generic)
	require.NoError(t, err)
	g, b, err := g.AddVertex(egi.Sheet, "not", egi.Generic)
	require.NoError(t, err)
	g, _, err = g.AddEdge(egi.Sheet, "knows", a, b)
	require.NoError(t, err)

	out, err := clif.Generate(&clif.Document{Graph: g})
	require.NoError(t, err)
	assert.Equal(t, `(exists (x1 x2) (knows x1 x2))`, out)
}

// TestGenerate_NilDocument: the one typed generator error.
func TestGenerate_NilDocument(t *testing.T) {
	_, err := clif.Generate(nil)
	assert.ErrorIs(t, err, clif.ErrNilGraph)
	_, err = clif.Generate(&clif.Document{})
	assert.ErrorIs(t, err, clif.ErrNilGraph)
}
