package egif_test

import (
	"fmt"

	"github.com/katalvlaran/peirce/egif"
)

// ExampleParse parses Peirce's classic implication and prints what the
// graph looks like underneath the sugar.
func ExampleParse() {
	g, err := egif.Parse(`[If (man *x) [Then (mortal x)]]`)
	if err != nil {
		panic(err)
	}

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:   ", g.EdgeCount())
	fmt.Println("cuts:    ", g.CutCount())

	// Output:
	// vertices: 1
	// edges:    2
	// cuts:     2
}

// ExampleGenerate shows the canonical rendering, with and without the
// implication sugar.
func ExampleGenerate() {
	g, _ := egif.Parse(`[If (man *x) [Then (mortal x)]]`)

	sugar, _ := egif.Generate(g)
	plain, _ := egif.Generate(g, egif.WithoutSugar())
	fmt.Println(sugar)
	fmt.Println(plain)

	// Output:
	// [If [*x] (man x) [Then (mortal x)]]
	// ~[[*x] (man x) ~[(mortal x)]]
}
