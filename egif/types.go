// Package egif: sentinel errors, tokens, and generator options.
package egif

import "errors"

// Sentinel errors for EGIF parsing and generation.
var (
	// ErrSyntax indicates malformed input: bad nesting, an unexpected
	// token, or an unterminated construct.
	ErrSyntax = errors.New("egif: syntax error")

	// ErrUndefinedLabel indicates a bound occurrence whose label has no
	// definition in the current or any enclosing context.
	ErrUndefinedLabel = errors.New("egif: undefined label")

	// ErrDuplicateLabel indicates a defining occurrence whose label is
	// already visible in the current or an enclosing context.
	ErrDuplicateLabel = errors.New("egif: duplicate label definition")

	// ErrNilGraph indicates Generate was called with a nil Graph.
	ErrNilGraph = errors.New("egif: graph is nil")
)

// tokenKind enumerates the lexical classes of EGIF.
type tokenKind uint8

const (
	tEOF        tokenKind = iota
	tLParen               // (
	tRParen               // )
	tLBrack               // [
	tRBrack               // ]
	tTildeBrack           // ~[
	tDefining             // *label (text holds the label)
	tName                 // bare identifier: relation name or bound label
	tString               // "quoted" constant name (text holds the name)
)

// token is one lexeme with its source position (1-based line/column).
type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

// GenOption configures generation. Use with Generate(g, opts...).
type GenOption func(*genOptions)

// genOptions holds generator knobs.
type genOptions struct {
	// sugar enables [If ... [Then ...]] detection. Default true.
	sugar bool
}

// defaultGenOptions returns the generator defaults: sugar enabled.
func defaultGenOptions() genOptions {
	return genOptions{sugar: true}
}

// WithoutSugar disables scroll ([If ... [Then ...]]) detection; every
// cut prints as explicit ~[ ... ] negation.
func WithoutSugar() GenOption {
	return func(o *genOptions) { o.sugar = false }
}
