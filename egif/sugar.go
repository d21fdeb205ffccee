// Package egif: scroll sugar detection.
//
// Kept apart from the generator's traversal on purpose: this is a
// presentation heuristic, free to change without touching the
// correctness-critical emission rules.
package egif

import "github.com/katalvlaran/peirce/egi"

// scrollParts reports whether cut should print as [If ... [Then ...]]:
// its area holds exactly one child cut (the consequent) plus at least
// one other element (a non-empty antecedent). An empty double cut stays
// explicit negation, and WithoutSugar turns the sugar off entirely.
func (w *writer) scrollParts(cut egi.ElementID) (inner egi.ElementID, ok bool) {
	if !w.opts.sugar {
		return "", false
	}
	members, _ := w.g.Area(cut)
	for _, id := range members {
		if !w.g.IsCut(id) {
			continue
		}
		if inner != "" {
			return "", false // two child cuts: not a scroll
		}
		inner = id
	}
	if inner == "" || len(members) < 2 {
		return "", false
	}

	return inner, true
}
