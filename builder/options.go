// SPDX-License-Identifier: MIT
// Package: fxrank/builder
//
// options.go — shared constants, the vertex ID scheme, sentinel errors
// and the functional options resolved by every constructor.

package builder

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for fixture construction. Callers branch with errors.Is.
var (
	// ErrTooFewVertices indicates a node count below the constructor's
	// documented minimum.
	ErrTooFewVertices = errors.New("builder: node count too small")

	// ErrBadEdgeCount indicates a Random edge budget outside the feasible
	// range [nodeCount, nodeCount²]: fewer edges cannot cover every node
	// with an out-edge, more cannot stay duplicate-free.
	ErrBadEdgeCount = errors.New("builder: edge count out of range")
)

// Minimum node counts per constructor.
const (
	// MinCycleNodes is the smallest cycle; a single node forms a
	// self-loop, which is a legal rank fixture.
	MinCycleNodes = 1

	// MinCompleteNodes is the smallest complete graph with at least one
	// edge (loops are excluded there).
	MinCompleteNodes = 2

	// MinGridDim is the smallest lattice extent per axis.
	MinGridDim = 1

	// MinRandomNodes is the smallest random fixture.
	MinRandomNodes = 1
)

// DefaultSeed seeds the RNG when no option overrides it, keeping even
// "unseeded" fixtures reproducible.
const DefaultSeed int64 = 1

// Label formats the canonical vertex ID of index i: "#0", "#1", ...
func Label(i int) string { return fmt.Sprintf("#%d", i) }

// Options configures the stochastic constructors.
type Options struct {
	rng *rand.Rand
}

// Option is a functional option for fixture construction.
type Option func(*Options)

// WithSeed derives a dedicated RNG from the given seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an existing RNG. Panics on nil: a nil source is a
// programmer error, caught at configuration time.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			panic("builder: WithRand(nil)")
		}
		o.rng = r
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) Options {
	cfg := Options{rng: rand.New(rand.NewSource(DefaultSeed))}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
