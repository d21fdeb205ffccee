// Package egi: graph isomorphism up to id renaming.
//
// Two graphs are isomorphic when a bijection of their elements
// preserves the context-nesting shape, each context's multiset of
// relation name/arity, vertex kinds (and constant names), the argument
// order of non-identity edges, and the ligature partition. Identity
// edges are compared through the ligature partition, not through their
// argument orientation: (= x y) and (= y x) carry the same coreference.
package egi

// Isomorphic reports whether a and b are the same existential graph up
// to renaming of vertex, edge, and cut ids.
//
// The search walks both context trees top-down, backtracking over cut
// pairings and vertex bijections (continuation-passing, so a failed
// ligature check at the end re-enters the search). Exponential in the
// worst case; statements of practical size resolve immediately because
// vertex kind/label classes and edge multisets prune the space.
func Isomorphic(a, b *Graph) bool {
	// 1. Cheap global prechecks.
	if a.VertexCount() != b.VertexCount() ||
		a.EdgeCount() != b.EdgeCount() ||
		a.CutCount() != b.CutCount() {
		return false
	}

	// 2. Full backtracking search with the ligature check as the final
	//    continuation.
	st := &isoState{a: a, b: b, vmap: make(map[ElementID]ElementID, a.VertexCount())}

	return st.matchContext(Sheet, Sheet, st.ligaturesAgree)
}

// isoState carries the two graphs and the vertex bijection under construction.
type isoState struct {
	a, b *Graph
	// vmap maps a-vertex ids to b-vertex ids.
	vmap map[ElementID]ElementID
}

// directKinds splits a context's direct members into vertices, edges, and cuts.
func directKinds(g *Graph, ctx ElementID) (vs, es, cs []ElementID) {
	members, _ := g.Area(ctx)
	for _, id := range members {
		switch {
		case g.IsVertex(id):
			vs = append(vs, id)
		case g.IsEdge(id):
			es = append(es, id)
		default:
			cs = append(cs, id)
		}
	}

	return vs, es, cs
}

// matchContext tries to match context ca of a against cb of b and, on
// success of the whole subtree, calls k; false propagates backtracking.
func (st *isoState) matchContext(ca, cb ElementID, k func() bool) bool {
	va, ea, cua := directKinds(st.a, ca)
	vb, eb, cub := directKinds(st.b, cb)
	if len(va) != len(vb) || len(ea) != len(eb) || len(cua) != len(cub) {
		return false
	}
	usedB := make([]bool, len(vb))

	return st.matchVertices(va, vb, usedB, 0, func() bool {
		if !st.edgesAgree(ea, eb) {
			return false
		}

		return st.matchCuts(cua, cub, make([]bool, len(cub)), 0, k)
	})
}

// matchVertices extends the bijection over one context's direct
// vertices, trying every kind/label-compatible pairing.
func (st *isoState) matchVertices(va, vb []ElementID, usedB []bool, i int, k func() bool) bool {
	if i == len(va) {
		return k()
	}
	v := st.a.vertices[va[i]]
	for j, uid := range vb {
		if usedB[j] {
			continue
		}
		u := st.b.vertices[uid]
		if v.Kind != u.Kind {
			continue
		}
		if v.Kind == Constant && v.Label != u.Label {
			continue
		}
		usedB[j] = true
		st.vmap[va[i]] = uid
		if st.matchVertices(va, vb, usedB, i+1, k) {
			return true
		}
		delete(st.vmap, va[i])
		usedB[j] = false
	}

	return false
}

// edgesAgree checks one context's direct edges under the bijection
// built so far. Edge arguments live in the same or an enclosing
// context, so they are always already mapped here.
//
// Non-identity edges must correspond exactly: same name, same mapped
// argument tuple. Identity edges are counted by arity only; their
// semantics are re-checked globally via the ligature partition.
func (st *isoState) edgesAgree(ea, eb []ElementID) bool {
	want := make(map[string]int, len(ea))
	for _, eid := range ea {
		want[st.edgeKeyA(eid)]++
	}
	for _, eid := range eb {
		key := edgeKey(st.b, eid, nil)
		if want[key] == 0 {
			return false
		}
		want[key]--
	}

	return true
}

// edgeKeyA renders an a-side edge with its arguments mapped into b ids.
func (st *isoState) edgeKeyA(eid ElementID) string {
	return edgeKey(st.a, eid, st.vmap)
}

// edgeKey renders an edge as a comparable string. vmap, when non-nil,
// translates argument ids. Identity edges collapse to name+arity.
func edgeKey(g *Graph, eid ElementID, vmap map[ElementID]ElementID) string {
	e := g.edges[eid]
	key := e.Name
	if e.Name == IdentityName {
		// Orientation-free: ligature check covers the semantics.
		return key + "/" + string(rune('0'+len(e.Args)))
	}
	for _, v := range e.Args {
		if vmap != nil {
			v = vmap[v]
		}
		key += "\x00" + string(v)
	}

	return key
}

// matchCuts pairs off the child cuts of one context, backtracking over
// permutations; each pairing recurses into matchContext.
func (st *isoState) matchCuts(cua, cub []ElementID, usedB []bool, i int, k func() bool) bool {
	if i == len(cua) {
		return k()
	}
	for j := range cub {
		if usedB[j] {
			continue
		}
		usedB[j] = true
		if st.matchContext(cua[i], cub[j], func() bool {
			return st.matchCuts(cua, cub, usedB, i+1, k)
		}) {
			return true
		}
		usedB[j] = false
	}

	return false
}

// ligaturesAgree verifies the completed bijection maps every ligature
// of a onto a ligature of b, member for member.
func (st *isoState) ligaturesAgree() bool {
	// Index b's partition: vertex → representative (earliest member).
	rep := make(map[ElementID]ElementID, st.b.VertexCount())
	size := make(map[ElementID]int)
	for _, lig := range st.b.Ligatures() {
		for _, v := range lig {
			rep[v] = lig[0]
		}
		size[lig[0]] = len(lig)
	}

	for _, lig := range st.a.Ligatures() {
		r, ok := rep[st.vmap[lig[0]]]
		if !ok || size[r] != len(lig) {
			return false
		}
		for _, v := range lig[1:] {
			if rep[st.vmap[v]] != r {
				return false
			}
		}
	}

	return true
}
