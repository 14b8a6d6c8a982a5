// SPDX-License-Identifier: MIT
// Package: fxrank/builder
//
// Package builder constructs deterministic directed-graph fixtures for
// the rank engine: regular topologies (Cycle, Complete, Grid) and
// seeded random graphs guaranteed to have no dangling nodes and no
// duplicate edges.
//
// Determinism:
//
//   - Every constructor is deterministic for the same parameters and
//     seed. Random uses a dedicated *rand.Rand (WithSeed/WithRand);
//     there is no global RNG state, so fixtures are reproducible across
//     runs and packages.
//
// Vertex IDs:
//
//   - All constructors label vertices "#0", "#1", ... via Label, so
//     traces and tables from different fixtures line up by index.
//
// Errors (sentinel):
//
//   - ErrTooFewVertices — node count below the constructor's minimum.
//   - ErrBadEdgeCount   — Random edge budget outside
//     [nodeCount, nodeCount²].
//
// Option constructors (WithSeed, WithRand) panic on meaningless values;
// runtime construction never panics and returns sentinel errors only.
package builder
