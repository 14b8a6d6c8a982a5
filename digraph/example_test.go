package digraph_test

import (
	"fmt"

	"github.com/avernet/fxrank/digraph"
)

// ExampleGraph assembles a tiny directed graph and shows the stable
// enumeration surface.
func ExampleGraph() {
	g := digraph.New()
	_ = g.AddEdge("C", "A")
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("C", "B")
	_ = g.AddEdge("C", "A") // duplicate, deduplicated

	fmt.Println(g.Vertices())
	nbrs, _ := g.OutNeighbors("C")
	fmt.Println(nbrs)
	fmt.Println(g.EdgeCount())
	// Output:
	// [A B C]
	// [A B]
	// 3
}
