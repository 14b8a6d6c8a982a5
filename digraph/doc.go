// Package digraph provides a compact, thread-safe directed-graph
// container: the input side of the rank computation.
//
// Model:
//
//   - Vertices are non-empty string identifiers.
//   - Edges are ordered (from, to) pairs. The edge set deduplicates:
//     adding the same edge twice is a no-op. Self-loops are legal.
//   - There are no weights; the stochastic view derives per-edge
//     transfer weights from out-degrees.
//
// Determinism:
//
//   - Vertices() and OutNeighbors() return identifiers sorted
//     lexicographically ascending. Algorithms that enumerate the graph
//     through these surfaces are reproducible regardless of map
//     iteration order.
//
// Concurrency:
//
//   - All methods are guarded by a single RWMutex, so a Graph may be
//     mutated from multiple goroutines while it is being assembled.
//     Consumers that need a stable topology for the duration of a
//     computation should take an immutable snapshot (see
//     pagerank.NewStochasticGraph) rather than hold the lock.
//
// Errors (sentinel):
//
//   - ErrEmptyVertexID  — a vertex or edge endpoint with an empty ID.
//   - ErrVertexNotFound — a query referenced an unknown vertex.
package digraph
