// SPDX-License-Identifier: MIT
// Package: fxrank/builder
//
// random.go — seeded random directed graphs with no dangling nodes.

package builder

import (
	"fmt"

	"github.com/avernet/fxrank/digraph"
)

// Random builds a directed graph with exactly nodeCount vertices and
// edgeCount distinct directed edges, such that every vertex has at least
// one out-edge (no dangling nodes). Self-loops may occur; duplicates
// never do.
//
// Construction:
//
//  1. One pass over all vertices gives each a random out-edge,
//     guaranteeing out-degree ≥ 1.
//  2. Random (from, to) pairs are drawn until edgeCount distinct edges
//     exist. Feasibility of the budget is validated up front, so the
//     rejection loop always terminates.
//
// Errors:
//   - ErrTooFewVertices if nodeCount < MinRandomNodes.
//   - ErrBadEdgeCount unless nodeCount ≤ edgeCount ≤ nodeCount².
//
// Complexity: expected O(edgeCount) draws while the edge set is sparse
// relative to nodeCount².
func Random(nodeCount, edgeCount int, opts ...Option) (*digraph.Graph, error) {
	if nodeCount < MinRandomNodes {
		return nil, fmt.Errorf("%w: Random(%d, %d)", ErrTooFewVertices, nodeCount, edgeCount)
	}
	if edgeCount < nodeCount || edgeCount > nodeCount*nodeCount {
		return nil, fmt.Errorf("%w: Random(%d, %d)", ErrBadEdgeCount, nodeCount, edgeCount)
	}
	cfg := resolve(opts)

	type pair struct{ from, to int }
	edges := make(map[pair]struct{}, edgeCount)

	// Cover: every vertex sends at least one edge.
	for i := 0; i < nodeCount; i++ {
		edges[pair{from: i, to: cfg.rng.Intn(nodeCount)}] = struct{}{}
	}

	// Fill: draw until the budget of distinct edges is met.
	for len(edges) < edgeCount {
		edges[pair{from: cfg.rng.Intn(nodeCount), to: cfg.rng.Intn(nodeCount)}] = struct{}{}
	}

	g := digraph.New()
	for i := 0; i < nodeCount; i++ {
		if err := g.AddVertex(Label(i)); err != nil {
			return nil, err
		}
	}
	// Map iteration order is incidental; the graph's own sorted
	// enumeration surface makes the result order-independent.
	for e := range edges {
		if err := g.AddEdge(Label(e.from), Label(e.to)); err != nil {
			return nil, err
		}
	}

	return g, nil
}
