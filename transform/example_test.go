package transform_test

import (
	"fmt"

	"github.com/katalvlaran/peirce/egif"
	"github.com/katalvlaran/peirce/transform"
)

// Example applies the erasure rule to "a man exists and he is mortal",
// dropping the "man" edge. The base graph is untouched; the result is a
// new value.
func Example() {
	g, _ := egif.Parse(`(man *x) (mortal x)`)

	// The first edge in creation order is (man x).
	man := g.Edges()[0]
	ng, err := transform.Erase(g, transform.NewSelection(man.ID))
	if err != nil {
		panic(err)
	}

	before, _ := egif.Generate(g)
	after, _ := egif.Generate(ng)
	fmt.Println("before:", before)
	fmt.Println("after: ", after)

	// Output:
	// before: (man *x) (mortal x)
	// after:  (mortal *x)
}
