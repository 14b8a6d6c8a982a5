// SPDX-License-Identifier: MIT
// Package: fxrank/builder
//
// topologies.go — deterministic regular topologies.

package builder

import (
	"fmt"

	"github.com/avernet/fxrank/digraph"
)

// Cycle builds the directed cycle C_n: #i → #(i+1 mod n). A cycle of one
// node is a single self-loop, the trivial convergence fixture.
//
// Errors:
//   - ErrTooFewVertices if n < MinCycleNodes.
//
// Complexity: O(n) vertices + O(n) edges.
func Cycle(n int) (*digraph.Graph, error) {
	if n < MinCycleNodes {
		return nil, fmt.Errorf("%w: Cycle(%d)", ErrTooFewVertices, n)
	}

	g := digraph.New()
	for i := 0; i < n; i++ {
		if err := g.AddEdge(Label(i), Label((i+1)%n)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Grid builds a rows×cols lattice with 4-neighbor adjacency, each
// undirected neighbor pair expanded into both directed edges. Cell
// (r, c) gets the ID Label(r*cols + c), row-major. Every cell of a grid
// with at least two cells has an out-edge, so the fixture never dangles.
//
// Errors:
//   - ErrTooFewVertices if rows < 1 or cols < 1.
//
// Complexity: O(rows×cols) vertices + O(rows×cols) edges.
func Grid(rows, cols int) (*digraph.Graph, error) {
	if rows < MinGridDim || cols < MinGridDim {
		return nil, fmt.Errorf("%w: Grid(%d, %d)", ErrTooFewVertices, rows, cols)
	}

	g := digraph.New()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := Label(r*cols + c)
			if err := g.AddVertex(id); err != nil {
				return nil, err
			}
			if c+1 < cols {
				right := Label(r*cols + c + 1)
				if err := g.AddEdge(id, right); err != nil {
					return nil, err
				}
				if err := g.AddEdge(right, id); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				down := Label((r+1)*cols + c)
				if err := g.AddEdge(id, down); err != nil {
					return nil, err
				}
				if err := g.AddEdge(down, id); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// Complete builds the complete directed graph K_n: every ordered pair of
// distinct vertices, no loops.
//
// Errors:
//   - ErrTooFewVertices if n < MinCompleteNodes.
//
// Complexity: O(n) vertices + O(n²) edges.
func Complete(n int) (*digraph.Graph, error) {
	if n < MinCompleteNodes {
		return nil, fmt.Errorf("%w: Complete(%d)", ErrTooFewVertices, n)
	}

	g := digraph.New()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := g.AddEdge(Label(i), Label(j)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
