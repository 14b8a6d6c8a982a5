// Package pagerank implements power-iteration PageRank in bounded-
// precision fixed-point arithmetic, reproducing the exact numeric
// trajectory of a width-limited message-passing hardware target.
//
// Overview:
//
//   - A StochasticGraph is an immutable view over a directed graph: per
//     node, the sorted out-neighbor list and the normalized transfer
//     weight 1/out-degree, plus the dangling set.
//   - Rank runs the synchronous power iteration: each time step, every
//     non-dangling node divides its rank by its out-degree, the result
//     is quantized once (fixpoint.Quantize, LostBits low fractional bits
//     dropped — the simulated link payload), and the same quantized
//     packet accumulates into every out-neighbor. Damping then mixes in
//     the uniform jump mass, and an L1 check against n·tolerance decides
//     termination.
//   - A RankTable is the success-only output: final per-node ranks (as
//     fixed-point values, decodable to float64) plus the iteration count.
//
// Deviations from textbook PageRank (deliberate, for hardware fidelity):
//
//   - Dangling-node mass is NOT redistributed uniformly through a
//     dangling correction; it is folded into the damping term alone.
//     With damping < 1 every node still receives (1-d)/n each step, but
//     the share of rank parked on dangling nodes simply drains. This
//     undercounts dangling contributions relative to the standard
//     formulation and is preserved on purpose: "fixing" it would change
//     every bit of the trajectory relative to the hardware.
//   - All arithmetic is Q15.48 fixed point with wraparound overflow and
//     truncating multiplication (see package fixpoint). Results differ
//     from float PageRank by a small, bounded quantization error; tests
//     compare against a floating-point oracle within an epsilon, never
//     exactly.
//
// Determinism:
//
//   - For a fixed view, options and numeric configuration (fixpoint
//     constants and LostBits), repeated runs produce bit-identical rank
//     vectors and iteration counts. Node enumeration is sorted, so even
//     the trace output is stable.
//
// Concurrency and resources:
//
//   - The engine is single-threaded and synchronous by design: it models
//     a discrete global time step where iteration-t messages depend only
//     on iteration-(t-1) state. The only external boundary is MaxIter,
//     a deterministic timeout. No I/O, no cancellation, no locks.
//
// Errors:
//
//   - Structural (detected before iterating): ErrNilGraph, ErrEmptyGraph,
//     ErrUnknownVertex, ErrBadDamping, ErrBadTolerance, ErrBadMaxIter,
//     ErrBadLabels.
//   - Expected outcome: *NonConvergenceError (matches ErrNonConvergence),
//     carrying the exhausted budget. Never retried internally — identical
//     parameters fail identically.
//
// Example:
//
//	g := digraph.New()
//	_ = g.AddEdge("A", "B")
//	_ = g.AddEdge("B", "A")
//	sg, _ := pagerank.NewStochasticGraph(g)
//	table, err := pagerank.Rank(sg, pagerank.WithDamping(0.9))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(table.Iterations(), table.Floats())
package pagerank
