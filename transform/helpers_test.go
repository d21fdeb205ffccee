// Package transform_test verifies the eight rules against the graphs the
// EGIF parser builds, checking results by regenerating text.
package transform_test

import (
	"testing"

	"github.com/katalvlaran/peirce/egi"
	"github.com/katalvlaran/peirce/egif"
	"github.com/stretchr/testify/require"
)

// parse builds a graph from EGIF text, failing the test on error.
func parse(t *testing.T, src string) *egi.Graph {
	t.Helper()
	g, err := egif.Parse(src)
	require.NoError(t, err)

	return g
}

// render generates EGIF text without scroll sugar, for shape assertions.
func render(t *testing.T, g *egi.Graph) string {
	t.Helper()
	out, err := egif.Generate(g, egif.WithoutSugar())
	require.NoError(t, err)

	return out
}

// edgeID returns the first edge named name, in creation order.
func edgeID(t *testing.T, g *egi.Graph, name string) egi.ElementID {
	t.Helper()
	for _, e := range g.Edges() {
		if e.Name == name {
			return e.ID
		}
	}
	t.Fatalf("no edge named %q", name)

	return ""
}

// vertexArg returns argument i of the first edge named name.
func vertexArg(t *testing.T, g *egi.Graph, name string, i int) egi.ElementID {
	t.Helper()
	e, err := g.Edge(edgeID(t, g, name))
	require.NoError(t, err)
	require.Less(t, i, len(e.Args))

	return e.Args[i]
}

// cutAt returns the i-th cut in creation order.
func cutAt(t *testing.T, g *egi.Graph, i int) egi.ElementID {
	t.Helper()
	cuts := g.Cuts()
	require.Less(t, i, len(cuts))

	return cuts[i].ID
}
