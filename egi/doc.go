// Package egi implements the canonical hypergraph form of an
// existential graph (Existential Graph Instance): vertices, relation
// hyperedges, and cuts arranged in a context tree rooted at the sheet
// of assertion.
//
// What:
//
//   - Graph is an immutable value; every construction operation takes a
//     base Graph and returns a brand-new one, never touching the base.
//   - Context queries: ContextOf, PolarityOf, Depth, Encloses (dominance).
//   - Coreference queries: Ligature and Ligatures, the connected
//     components of the vertex set under identity edges.
//   - Validate re-checks every structural invariant of the form.
//   - Isomorphic decides equality of two graphs up to id renaming.
//   - Snapshot exposes a flat, walkable view for external serializers.
//
// Why:
//
//   - Rewrite engines: the transformation calculus needs polarity- and
//     dominance-gated edits that can never corrupt a shared value.
//   - Concurrency for free: immutable values are shared across
//     goroutines with no locks; derive from one base in parallel.
//   - Determinism: element order is the creation order, so generation
//     and snapshots are reproducible byte for byte.
//
// Invariants (hold for every Graph value):
//
//  1. The area mapping partitions all elements: each vertex, edge, and
//     cut is directly enclosed by exactly one context.
//  2. Dominance: each edge argument's context encloses-or-equals the
//     edge's own context (a predicate may reach outward to a vertex on
//     an enclosing level, never sideways or inward).
//  3. Cuts nest strictly: the contexts form a tree rooted at the sheet.
//  4. A vertex is exactly one of generic or constant.
//
// Complexity:
//
//   - Queries: ContextOf/Isolated O(1); PolarityOf/Encloses O(depth);
//     Ligature O(component); Area O(k log k) for k direct members.
//   - Construction: each operation clones the arena, O(V+E), then
//     applies an O(delta) patch. Bases are never mutated.
//   - Isomorphic: backtracking over cut pairings and vertex classes;
//     exponential worst case, linearithmic on typical statements.
//
// Errors:
//
//   - ErrElementNotFound: an id does not denote the expected element.
//   - ErrNotContext: an id denotes neither the sheet nor a cut.
//   - ErrDominance: an edge would reach a vertex outside its enclosing
//     chain, or a move would break the nesting tree.
//   - ErrDanglingEdge: a removal would leave an edge missing arguments.
//   - ErrEmptyName: an edge was given an empty relation name.
//   - ErrSheet: the sheet of assertion cannot be removed or moved.
package egi
