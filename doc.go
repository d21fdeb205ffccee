// Package peirce is an in-memory engine for Peirce/Dau existential
// graphs: parse them, rewrite them under the calculus, and print them
// back out.
//
// 🚀 What is peirce?
//
//	A pure, immutable-value library that brings together:
//		• EGI core: vertices, relation hyperedges, cuts, and the context tree
//		• Two linear notations: EGIF and a CLIF subset, both parsed and generated
//		• The eight canonical transformation rules (erasure, insertion,
//		  iteration, de-iteration, double-cut add/remove, isolated-vertex
//		  add/remove), each polarity- and dominance-gated
//		• A round-trip validator checking parse→generate→parse isomorphism
//
// ✨ Why choose peirce?
//
//   - Immutable by construction – every operation returns a fresh Graph;
//     share one value across goroutines with no locks
//   - Rock-solid guarantees – every rewrite validates all preconditions
//     before a single element is built; a failed call is a no-op
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – generation and snapshots order by creation id, so
//     the same Graph always prints the same text
//
// Everything is organized under five subpackages:
//
//	egi/       — the canonical hypergraph: Graph, Vertex, Edge, Cut,
//	             polarity/dominance/ligature queries, isomorphism
//	egif/      — Existential Graph Interchange Format parser & generator
//	clif/      — CLIF-subset parser & generator with verbatim metadata
//	transform/ — the eight rewrite rules of the calculus
//	roundtrip/ — parse→generate→parse isomorphism validation
//
// Quick ASCII example:
//
//	(man *x) (mortal x)      — "some man is mortal", both on the sheet
//	~[ (phoenix *x) ]        — "no phoenix exists", one cut deep
//	[If (man *x) [Then (mortal x)]]
//	                         — implication as a double cut
//
// Dive into each package's doc.go for grammar, rule tables, and the
// complexity of every operation.
//
//	go get github.com/katalvlaran/peirce
package peirce
