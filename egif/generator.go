// Package egif: the EGIF generator.
//
// The generator is the inverse traversal of the context tree. Output is
// a pure function of the Graph value: elements print in creation order,
// labels are allocated deterministically, and generating twice yields
// byte-identical text.
package egif

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/peirce/egi"
)

// Generate renders one Graph as EGIF text.
//
// Per context, in creation order:
//   - a vertex prints a standalone bracket ([*x] or ["Name"]) when it is
//     isolated or when some incident edge sits in a deeper context (the
//     definition must precede that deeper bound mention);
//   - a non-identity edge prints (name args...), carrying the defining
//     *label at the vertex's first mention inside its defining context;
//   - identity edges print as coreference brackets, grouped per shared
//     vertex when it joins two or more of them in one context;
//   - a cut prints as [If ... [Then ...]] when the scroll shape matches
//     (see sugar.go), else as ~[ ... ].
//
// Returns ErrNilGraph for a nil graph.
// Complexity: O((V+E+C) log(V+E+C)).
func Generate(g *egi.Graph, opts ...GenOption) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	o := defaultGenOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &writer{
		g:       g,
		opts:    o,
		labels:  make(map[egi.ElementID]string, g.VertexCount()),
		defined: make(map[egi.ElementID]bool, g.VertexCount()),
		emitted: make(map[egi.ElementID]bool),
	}
	w.assignLabels()

	return strings.Join(w.renderContext(egi.Sheet, ""), " "), nil
}

// writer carries generation state: the label table, which vertices have
// had their defining occurrence printed, and which identity edges have
// already been folded into a bracket.
type writer struct {
	g       *egi.Graph
	opts    genOptions
	labels  map[egi.ElementID]string // generic vertex -> display label
	defined map[egi.ElementID]bool   // defining occurrence printed
	emitted map[egi.ElementID]bool   // identity edge folded into a bracket
}

// assignLabels gives every generic vertex a display label, unique over
// the whole statement. A vertex's own Label is kept when free; unlabeled
// or colliding vertices get x1, x2, ... in creation order. The scroll
// keywords are never used as labels.
func (w *writer) assignLabels() {
	used := map[string]bool{"if": true, "then": true}
	free := func(l string) bool { return l == "" || used[strings.ToLower(l)] }

	n := 0
	for _, v := range w.g.Vertices() {
		if v.Kind != egi.Generic {
			continue
		}
		label := v.Label
		if free(label) {
			for {
				n++
				label = fmt.Sprintf("x%d", n)
				if !used[label] {
					break
				}
			}
		}
		used[strings.ToLower(label)] = true
		w.labels[v.ID] = label
	}
}

// argForm renders one argument occurrence of a vertex inside ctx,
// choosing defining (*x), bound (x), or constant ("Name") form.
func (w *writer) argForm(vid, ctx egi.ElementID) string {
	v, _ := w.g.Vertex(vid)
	if v.Kind == egi.Constant {
		w.defined[vid] = true

		return `"` + v.Label + `"`
	}
	home, _ := w.g.ContextOf(vid)
	if !w.defined[vid] && home == ctx {
		w.defined[vid] = true

		return "*" + w.labels[vid]
	}

	return w.labels[vid]
}

// needsStandalone reports whether a vertex must print its own defining
// bracket in its home context: it is isolated, or some incident edge is
// enclosed deeper, so a bound mention would otherwise precede the
// definition.
func (w *writer) needsStandalone(vid egi.ElementID) bool {
	home, _ := w.g.ContextOf(vid)
	incident, _ := w.g.IncidentEdges(vid)
	if len(incident) == 0 {
		return true
	}
	for _, eid := range incident {
		if ectx, _ := w.g.ContextOf(eid); ectx != home {
			return true
		}
	}

	return false
}

// renderContext renders every item directly enclosed by ctx, in
// creation order, with standalone vertex definitions first. skip names
// one cut to leave out (the consequent cut when the caller prints a
// scroll).
func (w *writer) renderContext(ctx, skip egi.ElementID) []string {
	members, _ := w.g.Area(ctx)
	var items []string

	// 1. Standalone vertex definitions come first so every deeper bound
	//    mention parses against an existing definition.
	for _, id := range members {
		if w.g.IsVertex(id) && w.needsStandalone(id) {
			items = append(items, "["+w.argForm(id, ctx)+"]")
		}
	}

	// 2. Remaining items in creation order.
	for _, id := range members {
		switch {
		case w.g.IsVertex(id) || id == skip || w.emitted[id]:
			// Vertices were handled above or ride their first mention;
			// emitted identity edges were folded into an earlier bracket.
		case w.g.IsEdge(id):
			e, _ := w.g.Edge(id)
			if e.Name == egi.IdentityName {
				items = append(items, w.renderCoreference(id, ctx))
			} else {
				items = append(items, w.renderRelation(e, ctx))
			}
		default:
			items = append(items, w.renderCut(id))
		}
	}

	return items
}

// renderRelation prints (name args...).
func (w *writer) renderRelation(e egi.Edge, ctx egi.ElementID) string {
	parts := make([]string, 0, len(e.Args)+1)
	parts = append(parts, e.Name)
	for _, v := range e.Args {
		parts = append(parts, w.argForm(v, ctx))
	}

	return "(" + strings.Join(parts, " ") + ")"
}

// renderCoreference prints one identity edge, folding in every other
// not-yet-emitted identity edge of ctx that shares a hub vertex with
// it, so a vertex joining two or more identity edges prints one grouped
// bracket.
func (w *writer) renderCoreference(eid, ctx egi.ElementID) string {
	e, _ := w.g.Edge(eid)
	w.emitted[eid] = true

	// Pick the hub: the first argument that more of this context's
	// pending identity edges are incident to.
	var hub egi.ElementID
	var group []egi.Edge
	for _, cand := range e.Args {
		peers := w.pendingIdentity(cand, ctx)
		if len(peers) > 0 {
			hub, group = cand, peers
			break
		}
	}

	if hub == "" {
		// Lone identity edge: a plain two-item bracket.
		return "[" + w.argForm(e.Args[0], ctx) + " " + w.argForm(e.Args[1], ctx) + "]"
	}

	// Grouped bracket: hub first, then the far endpoint of each edge.
	items := []string{w.argForm(hub, ctx)}
	appendFar := func(edge egi.Edge) {
		far := edge.Args[0]
		if far == hub {
			far = edge.Args[1]
		}
		items = append(items, w.argForm(far, ctx))
	}
	appendFar(e)
	for _, peer := range group {
		w.emitted[peer.ID] = true
		appendFar(peer)
	}

	return "[" + strings.Join(items, " ") + "]"
}

// pendingIdentity lists ctx's not-yet-emitted identity edges incident
// to v, in creation order.
func (w *writer) pendingIdentity(v, ctx egi.ElementID) []egi.Edge {
	incident, _ := w.g.IncidentEdges(v)
	var out []egi.Edge
	for _, eid := range incident {
		if w.emitted[eid] {
			continue
		}
		ectx, _ := w.g.ContextOf(eid)
		if ectx != ctx {
			continue
		}
		e, _ := w.g.Edge(eid)
		if e.Name == egi.IdentityName {
			out = append(out, e)
		}
	}

	return out
}

// renderCut prints one cut, as scroll sugar when the shape matches and
// sugar is enabled, else as explicit negation.
func (w *writer) renderCut(cut egi.ElementID) string {
	if inner, ok := w.scrollParts(cut); ok {
		antecedent := strings.Join(w.renderContext(cut, inner), " ")
		consequent := strings.Join(w.renderContext(inner, ""), " ")

		return "[If " + antecedent + " [Then " + consequent + "]]"
	}
	body := w.renderContext(cut, "")
	if len(body) == 0 {
		return "~[]"
	}

	return "~[" + strings.Join(body, " ") + "]"
}
