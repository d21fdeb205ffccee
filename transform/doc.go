// Package transform implements the eight transformation rules of the
// existential-graph calculus over immutable egi.Graph values.
//
// What:
//
//   - Erase: remove a closed selection from a positive context.
//   - Insert: add a new subgraph into a negative context.
//   - Iterate: copy a selection into a context that encloses-or-equals
//     its own, keeping ligature links to vertices outside the copy.
//   - Deiterate: remove a selection that duplicates a pattern visible
//     in an enclosing-or-equal context.
//   - AddDoubleCut / RemoveDoubleCut: wrap a selection in two nested
//     cuts, or collapse a cut whose sole content is one child cut.
//   - AddIsolatedVertex / RemoveIsolatedVertex.
//
// Why:
//
//   - These are exactly the sound inference moves of the calculus:
//     erasure/insertion are polarity-gated, iteration/de-iteration are
//     dominance-gated, double cuts and isolated vertices are neutral.
//
// Every operation is pure: it validates all preconditions first, then
// builds a brand-new Graph through the egi construction API. A failing
// call returns a typed error and the input value is untouched; a
// succeeding call never invalidates previously returned values, so one
// base Graph can be transformed concurrently from many goroutines.
//
// Complexity:
//
//   - Erase/Insert/double cuts/vertices: O(V+E) per copy-on-write step.
//   - Iterate: O(V+E) per copied element.
//   - Deiterate: backtracking pattern search over enclosing contexts;
//     exponential worst case, immediate on practical statements.
//
// Errors:
//
//   - ErrPolarity: erasure outside a positive context, insertion
//     outside a negative one.
//   - ErrNotClosed: selection misses incident vertices/edges, or its
//     roots span sibling contexts.
//   - ErrPatternNotFound: de-iteration found no enclosing duplicate.
//   - ErrNotDoubleCut: the cut is not an empty-walled double cut.
//   - ErrVertexNotIsolated: the vertex still has incident edges.
//   - ErrEmptySelection: the rule needs a non-empty selection.
//   - egi.ErrDominance, egi.ErrElementNotFound, egi.ErrNotContext pass
//     through for structural violations.
package transform
