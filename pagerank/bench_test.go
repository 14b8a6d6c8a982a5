package pagerank_test

import (
	"fmt"
	"testing"

	"github.com/avernet/fxrank/digraph"
	"github.com/avernet/fxrank/pagerank"
)

// benchmarkRank runs the engine over a deterministic ring-with-chords
// topology of n nodes.
func benchmarkRank(b *testing.B, n int) {
	g := digraph.New()
	for i := 0; i < n; i++ {
		u := fmt.Sprintf("#%d", i)
		if err := g.AddEdge(u, fmt.Sprintf("#%d", (i+1)%n)); err != nil {
			b.Fatalf("AddEdge failed: %v", err)
		}
		if err := g.AddEdge(u, fmt.Sprintf("#%d", (i*7+3)%n)); err != nil {
			b.Fatalf("AddEdge failed: %v", err)
		}
	}
	sg, err := pagerank.NewStochasticGraph(g)
	if err != nil {
		b.Fatalf("NewStochasticGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pagerank.Rank(sg); err != nil {
			b.Fatalf("Rank failed: %v", err)
		}
	}
}

// BenchmarkRank_Small benchmarks a 100-node graph.
func BenchmarkRank_Small(b *testing.B) { benchmarkRank(b, 100) }

// BenchmarkRank_Medium benchmarks a 2000-node graph.
func BenchmarkRank_Medium(b *testing.B) { benchmarkRank(b, 2000) }
