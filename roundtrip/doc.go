// Package roundtrip validates the parse → generate → reparse loop.
//
// 🚀 What:
//
//	Check takes linear-notation text, parses it to a graph, generates
//	text back, reparses that, and compares the two graphs up to
//	isomorphism. The generated text is the canonical rendering; the
//	comparison proves it means the same thing the input did.
//
// ✨ Why:
//
//	Generators drift. A generator bug that drops a cut or reorders a
//	ligature is invisible until something downstream misreads the
//	output; the round trip catches it at the source.
//
// Report semantics:
//   - A hard failure (either parse) is an error.
//   - Non-isomorphism is NOT an error: Check returns a Report with
//     Isomorphic=false and a warning, so callers can batch-audit a
//     corpus without aborting on the first miss.
//
// Errors: wrapped egif/clif parse errors, ErrUnknownDialect.
// Complexity: parsing/generation O(n), isomorphism check exponential
// in the worst case, fast on graphs with few interchangeable cuts.
package roundtrip
