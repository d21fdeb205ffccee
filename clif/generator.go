// Package clif: the CLIF generator.
//
// Always emits the exists/and/not/= normal form: deterministic, one
// surface form per Graph value. Header metadata is re-emitted byte for
// byte ahead of the sentence.
package clif

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/peirce/egi"
)

// Generate renders one Document as CLIF text: header forms first,
// verbatim and newline-separated, then the sentence for the graph.
// Returns ErrNilGraph for a nil document or graph.
// Complexity: O((V+E+C) log(V+E+C)).
func Generate(doc *Document) (string, error) {
	if doc == nil || doc.Graph == nil {
		return "", ErrNilGraph
	}

	w := &writer{
		g:      doc.Graph,
		labels: make(map[egi.ElementID]string, doc.Graph.VertexCount()),
	}
	w.assignLabels()

	var lines []string
	for _, meta := range doc.Header {
		lines = append(lines, meta.Text)
	}
	if body := w.renderContext(egi.Sheet); body != "" {
		lines = append(lines, body)
	}

	return strings.Join(lines, "\n"), nil
}

// writer carries the generic-vertex label table.
type writer struct {
	g      *egi.Graph
	labels map[egi.ElementID]string
}

// reserved lists symbols a variable may never shadow.
var reserved = map[string]bool{
	"and": true, "or": true, "not": true,
	"exists": true, "forall": true, egi.IdentityName: true,
}

// assignLabels gives every generic vertex a variable name, unique over
// the statement. A vertex's own Label is kept when it is a legal
// variable (lower-case initial, not reserved) and still free; others
// get x1, x2, ... in creation order.
func (w *writer) assignLabels() {
	used := map[string]bool{}
	legal := func(l string) bool {
		if l == "" || reserved[l] || used[l] {
			return false
		}
		first := []rune(l)[0]

		return unicode.IsLower(first)
	}

	n := 0
	for _, v := range w.g.Vertices() {
		if v.Kind != egi.Generic {
			continue
		}
		label := v.Label
		if !legal(label) {
			for {
				n++
				label = fmt.Sprintf("x%d", n)
				if !used[label] {
					break
				}
			}
		}
		used[label] = true
		w.labels[v.ID] = label
	}
}

// term renders one argument occurrence.
func (w *writer) term(vid egi.ElementID) string {
	v, _ := w.g.Vertex(vid)
	if v.Kind == egi.Constant {
		return `"` + v.Label + `"`
	}

	return w.labels[vid]
}

// renderContext renders one context as a single sentence: its generic
// vertices become an exists variable list, its edges and cuts (creation
// order) the body. An empty context renders as "" at the sheet and
// "(and)" inside a cut.
func (w *writer) renderContext(ctx egi.ElementID) string {
	members, _ := w.g.Area(ctx)

	var vars, body []string
	for _, id := range members {
		switch {
		case w.g.IsVertex(id):
			if v, _ := w.g.Vertex(id); v.Kind == egi.Generic {
				vars = append(vars, w.labels[id])
			}
			// Constants appear inline at their mentions.
		case w.g.IsEdge(id):
			e, _ := w.g.Edge(id)
			parts := make([]string, 0, len(e.Args)+1)
			parts = append(parts, e.Name)
			for _, arg := range e.Args {
				parts = append(parts, w.term(arg))
			}
			body = append(body, "("+strings.Join(parts, " ")+")")
		default:
			body = append(body, "(not "+w.innerSentence(id)+")")
		}
	}

	var sentence string
	switch len(body) {
	case 0:
		sentence = ""
	case 1:
		sentence = body[0]
	default:
		sentence = "(and " + strings.Join(body, " ") + ")"
	}

	if len(vars) > 0 {
		if sentence == "" {
			return "(exists (" + strings.Join(vars, " ") + "))"
		}

		return "(exists (" + strings.Join(vars, " ") + ") " + sentence + ")"
	}

	return sentence
}

// innerSentence renders a cut's content for embedding under (not ...);
// an empty cut embeds the vacuous conjunction.
func (w *writer) innerSentence(cut egi.ElementID) string {
	if s := w.renderContext(cut); s != "" {
		return s
	}

	return "(and)"
}
