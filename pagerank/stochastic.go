package pagerank

import (
	"fmt"
	"sort"

	"github.com/avernet/fxrank/digraph"
)

// Edge is a directed (From, To) pair, used when building a view from a
// raw node set and edge list.
type Edge struct {
	From string
	To   string
}

// StochasticGraph is an immutable, read-only view over a directed graph,
// exposing per node: the sorted out-neighbor list and the normalized
// per-edge transfer weight (1 / out-degree), plus the set of dangling
// nodes (out-degree zero, handled separately by the engine).
//
// The view is constructed once and never mutated, so it is safe to share
// across sequential engine runs — and across goroutines — without
// synchronization.
type StochasticGraph struct {
	nodes []string       // sorted node IDs
	index map[string]int // node ID → position in nodes
	succ  [][]int        // per node, sorted successor indexes
}

// NewStochasticGraph snapshots g into an immutable stochastic view.
// Later mutation of g does not affect the view.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrEmptyGraph if g has zero nodes.
func NewStochasticGraph(g *digraph.Graph) (*StochasticGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes := g.Vertices()
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	sg := newView(nodes)
	for i, u := range nodes {
		nbrs, err := g.OutNeighbors(u)
		if err != nil {
			// Unreachable: u came from g.Vertices(). Propagate anyway.
			return nil, err
		}
		sg.succ[i] = make([]int, len(nbrs))
		for j, v := range nbrs {
			sg.succ[i][j] = sg.index[v]
		}
	}

	return sg, nil
}

// NewStochasticGraphFromEdges builds a view directly from a node set and
// an edge list. Duplicate nodes and edges are deduplicated.
//
// Errors:
//   - ErrEmptyGraph if nodes is empty (or holds only empty IDs).
//   - ErrUnknownVertex if an edge endpoint is absent from the node set;
//     detected here, before any iteration runs.
func NewStochasticGraphFromEdges(nodes []string, edges []Edge) (*StochasticGraph, error) {
	set := make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	if len(set) == 0 {
		return nil, ErrEmptyGraph
	}

	sorted := make([]string, 0, len(set))
	for id := range set {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	sg := newView(sorted)
	adj := make([]map[int]struct{}, len(sorted))
	for _, e := range edges {
		ui, ok := sg.index[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: edge %q->%q", ErrUnknownVertex, e.From, e.To)
		}
		vi, ok := sg.index[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: edge %q->%q", ErrUnknownVertex, e.From, e.To)
		}
		if adj[ui] == nil {
			adj[ui] = make(map[int]struct{})
		}
		adj[ui][vi] = struct{}{}
	}
	for i, outs := range adj {
		out := make([]int, 0, len(outs))
		for vi := range outs {
			out = append(out, vi)
		}
		sort.Ints(out)
		sg.succ[i] = out
	}

	return sg, nil
}

// newView allocates an empty view over the given sorted node list.
func newView(sorted []string) *StochasticGraph {
	sg := &StochasticGraph{
		nodes: sorted,
		index: make(map[string]int, len(sorted)),
		succ:  make([][]int, len(sorted)),
	}
	for i, id := range sorted {
		sg.index[id] = i
		sg.succ[i] = []int{}
	}

	return sg
}

// Nodes returns the sorted node IDs. The returned slice is a copy.
func (sg *StochasticGraph) Nodes() []string {
	out := make([]string, len(sg.nodes))
	copy(out, sg.nodes)

	return out
}

// NodeCount returns the number of nodes.
func (sg *StochasticGraph) NodeCount() int { return len(sg.nodes) }

// HasNode reports whether id is part of the view.
func (sg *StochasticGraph) HasNode(id string) bool {
	_, ok := sg.index[id]

	return ok
}

// OutNeighbors returns the sorted out-neighbors of id; empty for a
// dangling node.
//
// Errors:
//   - ErrUnknownVertex if id is not part of the view.
func (sg *StochasticGraph) OutNeighbors(id string) ([]string, error) {
	i, ok := sg.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}
	out := make([]string, len(sg.succ[i]))
	for j, vi := range sg.succ[i] {
		out[j] = sg.nodes[vi]
	}

	return out, nil
}

// OutDegree returns the out-degree of id.
//
// Errors:
//   - ErrUnknownVertex if id is not part of the view.
func (sg *StochasticGraph) OutDegree(id string) (int, error) {
	i, ok := sg.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}

	return len(sg.succ[i]), nil
}

// TransferWeights returns the normalized per-edge weights of id: one
// entry of 1/out-degree per out-edge, summing to 1, aligned with
// OutNeighbors. The slice is empty for a dangling node (the transfer
// weight is undefined there; dangling mass is handled by the engine's
// damping step instead).
//
// Errors:
//   - ErrUnknownVertex if id is not part of the view.
func (sg *StochasticGraph) TransferWeights(id string) ([]float64, error) {
	i, ok := sg.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}
	deg := len(sg.succ[i])
	w := make([]float64, deg)
	for j := range w {
		w[j] = 1 / float64(deg)
	}

	return w, nil
}

// Dangling returns the sorted IDs of nodes with out-degree zero.
func (sg *StochasticGraph) Dangling() []string {
	var out []string
	for i, id := range sg.nodes {
		if len(sg.succ[i]) == 0 {
			out = append(out, id)
		}
	}

	return out
}
