// Package fxrank is a fixed-point PageRank engine faithful to a
// packet-based message-passing hardware target.
//
// What is fxrank?
//
//	A small, deterministic library that reproduces, bit for bit, the
//	numeric trajectory of a power-iteration PageRank running on a
//	width-limited interconnect:
//		• fixpoint/ — bounded-precision Q15.48 fixed-point arithmetic
//		  with an explicit wraparound overflow policy, plus the lossy
//		  payload quantization applied to every value that crosses a
//		  simulated link
//		• digraph/  — a compact, thread-safe directed-graph container
//		  with deduplicated edges and a stable (sorted) enumeration
//		  surface
//		• pagerank/ — the stochastic graph view and the power-iteration
//		  engine: damping, dangling handling, L1-norm convergence, an
//		  iteration budget, and a success-only rank table
//		• builder/  — deterministic graph fixtures (cycles, complete
//		  graphs, lattices, seeded random graphs with no dangling
//		  nodes)
//		• cmd/fxrank — a CLI runner that loads a YAML run description,
//		  executes the engine and prints the resulting rank table
//
// Why fixed point?
//
//   - The hardware target exchanges ranks in narrow packet payloads;
//     every message loses its low-order fractional bits in transit.
//   - Floating point (or hidden arbitrary-precision arithmetic) would
//     silently erase exactly the truncation behavior that the engine
//     exists to model.
//   - Wraparound integer arithmetic keeps accumulation associative, so
//     message delivery order can never change the resulting bit pattern.
//
// Quick ASCII example (the classic four-vertex graph):
//
//	A ──▶ B ──▶ D
//	▲ ╲   ▲    ▲│
//	│  ╲  │   ╱ │
//	│   ▼ │  ╱  ▼
//	└──── C ◀───┘
//
// converges to ranks A=1/8, B=3/16, C=3/8, D=5/16.
//
// Dive into the per-package docs for the exact numeric contract, the
// deviations from textbook PageRank that the hardware model mandates,
// and runnable examples.
//
//	go get github.com/avernet/fxrank
package fxrank
