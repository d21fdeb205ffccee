// Package clif: sentinel errors, document types, and tokens.
package clif

import (
	"errors"

	"github.com/katalvlaran/peirce/egi"
)

// Sentinel errors for CLIF parsing and generation.
var (
	// ErrSyntax indicates a malformed s-expression or operator shape.
	ErrSyntax = errors.New("clif: syntax error")

	// ErrUndefinedLabel indicates a lower-case term with no visible
	// quantifier binding it.
	ErrUndefinedLabel = errors.New("clif: undefined variable")

	// ErrDuplicateLabel indicates a quantifier re-binding a variable
	// already visible in an enclosing scope.
	ErrDuplicateLabel = errors.New("clif: duplicate variable binding")

	// ErrNilGraph indicates Generate was called with a nil document or graph.
	ErrNilGraph = errors.New("clif: document or graph is nil")
)

// MetaKind classifies a header form.
type MetaKind uint8

const (
	// MetaComment is a (cl:comment ...) header form.
	MetaComment MetaKind = iota
	// MetaImports is a (cl:imports ...) header form.
	MetaImports
)

// Meta is one header form captured verbatim: Text is the exact source
// byte span of the whole form, re-emitted unchanged on generation.
type Meta struct {
	Kind MetaKind
	Text string
}

// Document is the result of parsing one CLIF text: the logical content
// as a Graph plus the header metadata that must survive round trips.
type Document struct {
	Graph  *egi.Graph
	Header []Meta
}

// tokenKind enumerates the lexical classes of the CLIF subset.
type tokenKind uint8

const (
	tEOF    tokenKind = iota
	tLParen           // (
	tRParen           // )
	tSymbol           // bare symbol: operator, name, variable
	tString           // "quoted" constant name
)

// token is one lexeme with position and source byte span (for verbatim
// header capture).
type token struct {
	kind  tokenKind
	text  string
	line  int
	col   int
	start int // byte offset of the first byte
	end   int // byte offset just past the last byte
}
