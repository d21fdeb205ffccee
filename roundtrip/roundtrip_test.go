// Package roundtrip_test drives the parse → generate → reparse loop over
// a corpus of statements in both dialects.
package roundtrip_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/peirce/roundtrip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheck_EGIFCorpus: every statement survives the loop isomorphically.
func TestCheck_EGIFCorpus(t *testing.T) {
	corpus := []string{
		`(man *x) (mortal x)`,
		`(orbits "Earth" "Sun") (shines "Sun")`,
		`~[]`,
		`~[ (phoenix *x) ]`,
		`~[~[ (P *x) ]]`,
		`[If (man *x) [Then (mortal x)]]`,
		`(P *x) (Q *y) [x y]`,
		`[*x *y] (left x) (right y)`,
		`[If (farmer *x) (donkey *y) (owns x y) [Then (beats x y)]]`,
		`(thunder *x) ~[ (lightning *y) [x y] ]`,
		`; a comment up front
		 (noted *x)`,
	}
	for _, src := range corpus {
		rep, err := roundtrip.Check(src)
		require.NoError(t, err, "input %q", src)
		assert.True(t, rep.Isomorphic, "input %q regenerated as %q", src, rep.Output)
		assert.Empty(t, rep.Warnings, "input %q", src)
		assert.Equal(t, src, rep.Input)
		assert.NotEmpty(t, rep.Output)
	}
}

// TestCheck_CLIFCorpus: the CLIF loop, including forms that normalize
// (or, forall) and must still mean the same thing.
func TestCheck_CLIFCorpus(t *testing.T) {
	corpus := []string{
		`(man "Socrates")`,
		`(and (man "Socrates") (mortal "Socrates"))`,
		`(exists (x y) (and (man x) (loves x y)))`,
		`(not (exists (x) (phoenix x)))`,
		`(or (p "A") (q "B"))`,
		`(forall (x) (mortal x))`,
		`(exists (x) (= x "Hesperus"))`,
		`(forall (x) (not (and (lives x) (not (exists (y) (knows x y))))))`,
	}
	for _, src := range corpus {
		rep, err := roundtrip.Check(src, roundtrip.WithDialect(roundtrip.CLIF))
		require.NoError(t, err, "input %q", src)
		assert.True(t, rep.Isomorphic, "input %q regenerated as %q", src, rep.Output)
		assert.Empty(t, rep.Warnings, "input %q", src)
	}
}

// TestCheck_CLIFHeaders: header metadata survives verbatim and the
// report confirms it.
func TestCheck_CLIFHeaders(t *testing.T) {
	src := "(cl:comment \"weird   spacing () preserved\")\n(cl:imports http://example.org/eg)\n(p \"A\")"

	rep, err := roundtrip.Check(src, roundtrip.WithDialect(roundtrip.CLIF))
	require.NoError(t, err)
	assert.True(t, rep.Isomorphic)
	assert.Empty(t, rep.Warnings)
	assert.True(t, strings.HasPrefix(rep.Output, `(cl:comment "weird   spacing () preserved")`))
	assert.Contains(t, rep.Output, `(cl:imports http://example.org/eg)`)
}

// TestCheck_Errors: a broken input is a hard error; so is an unknown
// dialect.
func TestCheck_Errors(t *testing.T) {
	_, err := roundtrip.Check(`(man *x`)
	assert.Error(t, err)

	_, err = roundtrip.Check(`(mortal x)`, roundtrip.WithDialect(roundtrip.CLIF))
	assert.Error(t, err)

	_, err = roundtrip.Check(`(p "A")`, roundtrip.WithDialect(roundtrip.Dialect(99)))
	assert.ErrorIs(t, err, roundtrip.ErrUnknownDialect)
}

// TestCheck_EmptyInputs: the empty statement round-trips to itself.
func TestCheck_EmptyInputs(t *testing.T) {
	rep, err := roundtrip.Check(``)
	require.NoError(t, err)
	assert.True(t, rep.Isomorphic)
	assert.Equal(t, "", rep.Output)

	rep, err = roundtrip.Check(`(and)`, roundtrip.WithDialect(roundtrip.CLIF))
	require.NoError(t, err)
	assert.True(t, rep.Isomorphic)
}
