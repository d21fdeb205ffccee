// Package transform: the de-iteration pattern matcher.
//
// Searches the selection's enclosing chain for a disjoint subgraph
// isomorphic to the selection. Ligatures are respected the strict way:
// an argument vertex outside the selection must appear in the pattern
// as the very same vertex, so the pattern is something Iterate could
// have copied into the selection's place.
package transform

import (
	"maps"

	"github.com/katalvlaran/peirce/egi"
)

// findPattern reports whether some context on the chain src, parent(src),
// ..., sheet holds a duplicate of the selection, disjoint from it.
func findPattern(g *egi.Graph, eff map[egi.ElementID]struct{}, roots []egi.ElementID, src egi.ElementID) bool {
	ctx := src
	for {
		st := &patternState{
			g:    g,
			eff:  eff,
			vmap: make(map[egi.ElementID]egi.ElementID),
			used: make(map[egi.ElementID]struct{}),
		}
		if st.matchLevel(roots, ctx, false, func() bool { return true }) {
			return true
		}
		if ctx == egi.Sheet {
			return false
		}
		c, _ := g.Cut(ctx)
		ctx = c.Parent
	}
}

// patternState carries the selection→pattern vertex mapping and the
// pattern elements already claimed (injectivity).
type patternState struct {
	g    *egi.Graph
	eff  map[egi.ElementID]struct{}
	vmap map[egi.ElementID]egi.ElementID
	used map[egi.ElementID]struct{}
}

// matchLevel matches one selection level (the given selected ids)
// against the direct area of pattern context pctx, then calls k.
//
// At the selection's own level the pattern may sit among unrelated
// content, so the level embeds as a subset. Inside a matched cut the
// correspondence must be exact: the candidate cut's area is consumed
// completely, with equal per-kind counts. A candidate cut with extra
// members is a strictly stronger statement and is no duplicate of the
// selection.
func (st *patternState) matchLevel(selIDs []egi.ElementID, pctx egi.ElementID, exact bool, k func() bool) bool {
	var selVerts, selEdges, selCuts []egi.ElementID
	for _, id := range selIDs {
		switch {
		case st.g.IsVertex(id):
			selVerts = append(selVerts, id)
		case st.g.IsEdge(id):
			selEdges = append(selEdges, id)
		default:
			selCuts = append(selCuts, id)
		}
	}

	candVerts, candEdges, candCuts := st.candidates(pctx)
	if exact && (len(selVerts) != len(candVerts) ||
		len(selEdges) != len(candEdges) ||
		len(selCuts) != len(candCuts)) {
		return false
	}

	return st.matchVerts(selVerts, candVerts, 0, func() bool {
		if !st.edgesCovered(selEdges, candEdges) {
			return false
		}

		return st.matchCuts(selCuts, candCuts, make([]bool, len(candCuts)), 0, k)
	})
}

// candidates lists pctx's direct members outside the selection and not
// yet claimed, split by kind.
func (st *patternState) candidates(pctx egi.ElementID) (vs, es, cs []egi.ElementID) {
	members, _ := st.g.Area(pctx)
	for _, id := range members {
		if _, in := st.eff[id]; in {
			continue
		}
		if _, claimed := st.used[id]; claimed {
			continue
		}
		switch {
		case st.g.IsVertex(id):
			vs = append(vs, id)
		case st.g.IsEdge(id):
			es = append(es, id)
		default:
			cs = append(cs, id)
		}
	}

	return vs, es, cs
}

// matchVerts extends the vertex mapping over one level, backtracking
// across kind/label-compatible candidates.
func (st *patternState) matchVerts(sel, cand []egi.ElementID, i int, k func() bool) bool {
	if i == len(sel) {
		return k()
	}
	v, _ := st.g.Vertex(sel[i])
	for _, uid := range cand {
		if _, claimed := st.used[uid]; claimed {
			continue
		}
		u, _ := st.g.Vertex(uid)
		if v.Kind != u.Kind {
			continue
		}
		if v.Kind == egi.Constant && v.Label != u.Label {
			continue
		}
		st.used[uid] = struct{}{}
		st.vmap[sel[i]] = uid
		if st.matchVerts(sel, cand, i+1, k) {
			return true
		}
		delete(st.vmap, sel[i])
		delete(st.used, uid)
	}

	return false
}

// edgesCovered checks every selected edge of this level has a distinct
// pattern counterpart: same name, arguments equal under the mapping
// (unselected arguments literally equal). Edges with identical keys are
// interchangeable, so multiset counting suffices.
func (st *patternState) edgesCovered(sel, cand []egi.ElementID) bool {
	need := make(map[string]int, len(sel))
	for _, eid := range sel {
		need[st.selEdgeKey(eid)]++
	}
	for _, eid := range cand {
		key := st.candEdgeKey(eid)
		if need[key] > 0 {
			need[key]--
		}
	}
	for _, n := range need {
		if n > 0 {
			return false
		}
	}

	return true
}

// selEdgeKey renders a selected edge with in-selection arguments mapped
// into pattern ids.
func (st *patternState) selEdgeKey(eid egi.ElementID) string {
	e, _ := st.g.Edge(eid)
	key := e.Name
	for _, v := range e.Args {
		if _, in := st.eff[v]; in {
			v = st.vmap[v]
		}
		key += "\x00" + string(v)
	}

	return key
}

// candEdgeKey renders a candidate pattern edge literally.
func (st *patternState) candEdgeKey(eid egi.ElementID) string {
	e, _ := st.g.Edge(eid)
	key := e.Name
	for _, v := range e.Args {
		key += "\x00" + string(v)
	}

	return key
}

// matchCuts pairs selected cuts with candidate cuts, recursing into
// their areas; the mapping snapshot rolls back on a failed branch.
func (st *patternState) matchCuts(sel, cand []egi.ElementID, usedCand []bool, i int, k func() bool) bool {
	if i == len(sel) {
		return k()
	}
	selMembers, _ := st.g.Area(sel[i])
	for j, cid := range cand {
		if usedCand[j] {
			continue
		}
		savedMap := maps.Clone(st.vmap)
		savedUsed := maps.Clone(st.used)
		usedCand[j] = true
		st.used[cid] = struct{}{}
		if st.matchLevel(selMembers, cid, true, func() bool {
			return st.matchCuts(sel, cand, usedCand, i+1, k)
		}) {
			return true
		}
		usedCand[j] = false
		st.vmap = savedMap
		st.used = savedUsed
	}

	return false
}
