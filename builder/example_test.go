package builder_test

import (
	"fmt"

	"github.com/avernet/fxrank/builder"
	"github.com/avernet/fxrank/pagerank"
)

// ExampleCycle builds a four-node ring and ranks it. Every node in a
// ring receives exactly what it sends, so the uniform vector is already
// stationary.
func ExampleCycle() {
	g, _ := builder.Cycle(4)

	sg, _ := pagerank.NewStochasticGraph(g)
	table, _ := pagerank.Rank(sg, pagerank.WithDamping(1))

	fmt.Println("edges:", g.EdgeCount())
	fmt.Printf("rank of %s: %.4f\n", builder.Label(0), table.Floats()[0])
	// Output:
	// edges: 4
	// rank of #0: 0.2500
}

// ExampleRandom generates a reproducible scale fixture.
func ExampleRandom() {
	g, _ := builder.Random(8, 24, builder.WithSeed(builder.DefaultSeed))

	deg, _ := g.OutDegree(builder.Label(0))
	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("node #0 sends:", deg > 0)
	// Output:
	// vertices: 8
	// edges: 24
	// node #0 sends: true
}
