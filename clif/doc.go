// Package clif parses and generates a Common Logic Interchange Format
// subset as a second linear notation for egi.Graph values.
//
// Grammar (s-expressions):
//
//	document  = { header } { sentence } .
//	header    = "(" "cl:comment" string ")"
//	          | "(" "cl:imports" term ")" .        preserved verbatim
//	sentence  = "(" "and" { sentence } ")"
//	          | "(" "or" { sentence } ")"
//	          | "(" "not" sentence ")"
//	          | "(" "exists" "(" { variable } ")" { sentence } ")"
//	          | "(" "forall" "(" { variable } ")" { sentence } ")"
//	          | "(" "=" term term ")"
//	          | "(" name { term } ")" .            atomic sentence
//	term      = variable | constant .
//	constant  = '"' name '"' | capitalized symbol .
//
// Mapping onto the existential graph form:
//
//   - exists introduces generic vertices in the current context;
//   - and is juxtaposition; not opens one cut;
//   - or desugars to ¬(∧¬...): one outer cut holding one cut per disjunct;
//   - forall desugars to ¬∃¬: a cut holding the variables and an inner cut;
//   - = is an identity edge; an atom is a relation edge.
//
// Header forms (cl:comment, cl:imports) are captured byte for byte and
// re-emitted unchanged by Generate, so metadata survives round trips
// verbatim.
//
// Generation always emits the exists/and/not/= normal form: forall and
// or are accepted on input but never printed. Round trips are therefore
// textually different yet isomorphic.
//
// Errors:
//
//   - ErrSyntax: malformed s-expression or operator shape.
//   - ErrUndefinedLabel: a lower-case term bound by no visible quantifier.
//   - ErrDuplicateLabel: a quantifier re-binding a visible variable.
//   - ErrNilGraph: Generate called with a nil document or graph.
package clif
