// Package egif parses and generates the Existential Graph Interchange
// Format, the primary linear notation for egi.Graph values.
//
// Grammar:
//
//	statement   = { item } .
//	item        = relation | negation | bracket .
//	relation    = "(" name { arg } ")" .         0-ary relations are legal
//	arg         = "*" label                      defining occurrence
//	            | label                          bound occurrence
//	            | '"' name '"'                   constant (named individual)
//	negation    = "~[" { item } "]" .            opens one cut
//	bracket     = "[" arg { arg } "]"            coreference (one ligature)
//	            | "[" "If" { item } "[" "Then" { item } "]" "]" .
//	comment     = ";" to end of line, skipped.
//
// Scoping:
//
//   - A defining occurrence *x introduces a generic vertex in the
//     current context. Defining a label already visible (same or any
//     enclosing context) is ErrDuplicateLabel.
//   - A bound occurrence x must resolve to a definition in the current
//     or an enclosing context, else ErrUndefinedLabel.
//   - A constant "Name" binds to a visible constant of the same name,
//     or introduces a fresh constant vertex in the current context.
//   - [If ... [Then ...]] desugars to a double cut: an outer cut holding
//     the antecedent and an inner cut holding the consequent.
//
// Generation:
//
//   - Deterministic: one context at a time, elements in creation order,
//     defining label at the first mention inside the defining context,
//     bound label afterwards. Generating twice from one Graph yields
//     byte-identical text.
//   - A vertex whose identity edges group (two or more in one context)
//     prints as a single coreference bracket; a lone identity edge
//     prints as a two-item bracket; an isolated vertex prints as [*x].
//   - A cut holding exactly one child cut plus a non-empty antecedent
//     prints as [If ... [Then ...]]; WithoutSugar disables this.
//
// Errors:
//
//   - ErrSyntax: malformed nesting, unexpected or missing tokens.
//   - ErrUndefinedLabel: bound occurrence with no visible definition.
//   - ErrDuplicateLabel: defining occurrence shadowing a visible label.
//   - ErrNilGraph: Generate called with a nil Graph.
package egif
