package roundtrip

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/peirce/clif"
	"github.com/katalvlaran/peirce/egi"
	"github.com/katalvlaran/peirce/egif"
)

// ErrUnknownDialect reports a Dialect value Check does not speak.
var ErrUnknownDialect = errors.New("roundtrip: unknown dialect")

// Dialect selects the notation Check parses and regenerates.
type Dialect int

const (
	// EGIF is the default dialect.
	EGIF Dialect = iota
	// CLIF selects the Common Logic subset.
	CLIF
)

// Warning is an advisory finding: the round trip completed but
// something did not survive it intact.
type Warning struct {
	// Code is a stable machine-readable tag.
	Code string
	// Message explains the finding for humans.
	Message string
}

// Warning codes.
const (
	// WarnNotIsomorphic: the reparsed graph differs from the original.
	WarnNotIsomorphic = "not-isomorphic"
	// WarnHeaderChanged: a CLIF meta header did not survive verbatim.
	WarnHeaderChanged = "header-changed"
)

// Report is the outcome of one round trip.
type Report struct {
	// Input is the original text, as given.
	Input string
	// Output is the canonical regenerated text.
	Output string
	// Isomorphic is true when the reparse means the same as the input.
	Isomorphic bool
	// Warnings lists advisory findings; empty on a clean trip.
	Warnings []Warning
}

// Option adjusts Check. The zero configuration checks EGIF text.
type Option func(*options)

type options struct {
	dialect Dialect
}

// WithDialect selects the input notation.
func WithDialect(d Dialect) Option {
	return func(o *options) { o.dialect = d }
}

// Check runs the full loop on text: parse, generate, reparse, compare.
// Parse failures (of the input or, indicating a generator bug, of the
// generated text) are errors; a semantic mismatch is a Warning on the
// returned Report.
func Check(text string, opts ...Option) (*Report, error) {
	o := options{dialect: EGIF}
	for _, opt := range opts {
		opt(&o)
	}

	switch o.dialect {
	case EGIF:
		return checkEGIF(text)
	case CLIF:
		return checkCLIF(text)
	default:
		return nil, fmt.Errorf("roundtrip: dialect %d: %w", o.dialect, ErrUnknownDialect)
	}
}

func checkEGIF(text string) (*Report, error) {
	// 1. Parse the input.
	g, err := egif.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("roundtrip: input: %w", err)
	}

	// 2. Generate the canonical form.
	out, err := egif.Generate(g)
	if err != nil {
		return nil, fmt.Errorf("roundtrip: generate: %w", err)
	}

	// 3. Reparse. A failure here is a generator defect, not bad input.
	g2, err := egif.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("roundtrip: reparse: %w", err)
	}

	// 4. Compare.
	return report(text, out, g, g2, nil), nil
}

func checkCLIF(text string) (*Report, error) {
	// 1. Parse the input.
	doc, err := clif.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("roundtrip: input: %w", err)
	}

	// 2. Generate the canonical form.
	out, err := clif.Generate(doc)
	if err != nil {
		return nil, fmt.Errorf("roundtrip: generate: %w", err)
	}

	// 3. Reparse.
	doc2, err := clif.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("roundtrip: reparse: %w", err)
	}

	// 4. Meta headers must survive byte for byte.
	var warns []Warning
	if !headersEqual(doc.Header, doc2.Header) {
		warns = append(warns, Warning{
			Code:    WarnHeaderChanged,
			Message: "cl: header block did not survive the round trip verbatim",
		})
	}

	return report(text, out, doc.Graph, doc2.Graph, warns), nil
}

func report(in, out string, a, b *egi.Graph, warns []Warning) *Report {
	iso := egi.Isomorphic(a, b)
	if !iso {
		warns = append(warns, Warning{
			Code:    WarnNotIsomorphic,
			Message: "reparsed graph is not isomorphic to the input graph",
		})
	}

	return &Report{Input: in, Output: out, Isomorphic: iso, Warnings: warns}
}

func headersEqual(a, b []clif.Meta) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].Text != b[i].Text {
			return false
		}
	}

	return true
}
