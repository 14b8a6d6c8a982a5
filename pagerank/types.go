// types.go — configuration surface and error taxonomy for the engine.
// The algorithm lives in pagerank.go, the immutable graph view in
// stochastic.go, and the result contract in ranktable.go.

package pagerank

import (
	"errors"
	"fmt"
)

// Engine defaults and fixed numeric parameters.
const (
	// DefaultDamping is the probability mass retained through graph
	// edges each iteration; the remainder is redistributed uniformly.
	DefaultDamping = 0.85

	// DefaultTolerance is the default convergence tolerance. The engine
	// stops once the L1 distance between successive rank vectors drops
	// below n * tolerance, all computed in fixed point.
	DefaultTolerance = 1e-6

	// DefaultMaxIter is the default iteration budget.
	DefaultMaxIter = 100

	// LostBits is the number of low-order fractional bits discarded from
	// every rank message crossing a simulated link. It is a property of
	// the modeled hardware payload width, fixed system-wide, and not a
	// per-run parameter: changing it changes every numeric trajectory.
	LostBits = 2
)

// Sentinel errors. Callers branch with errors.Is.
var (
	// ErrNilGraph indicates a nil graph or stochastic view.
	ErrNilGraph = errors.New("pagerank: graph is nil")

	// ErrEmptyGraph indicates a graph with zero nodes; rejected at view
	// construction, before any iteration runs.
	ErrEmptyGraph = errors.New("pagerank: graph has no nodes")

	// ErrUnknownVertex indicates an edge endpoint absent from the node
	// set; rejected at view construction.
	ErrUnknownVertex = errors.New("pagerank: edge references unknown node")

	// ErrBadDamping indicates a damping factor outside (0, 1].
	ErrBadDamping = errors.New("pagerank: damping must be in (0, 1]")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("pagerank: tolerance must be positive")

	// ErrBadMaxIter indicates a non-positive iteration budget.
	ErrBadMaxIter = errors.New("pagerank: max iterations must be at least 1")

	// ErrBadLabels indicates an output label list that is not a
	// permutation of the node set.
	ErrBadLabels = errors.New("pagerank: labels must be a permutation of the node set")

	// ErrNonConvergence is matched (via errors.Is) by the
	// *NonConvergenceError returned when the iteration budget is
	// exhausted. Non-convergence is an expected outcome for pathological
	// graphs or parameters, not a structural failure: retrying with
	// identical parameters fails identically, so callers must widen
	// MaxIter or loosen the tolerance to retry meaningfully.
	ErrNonConvergence = errors.New("pagerank: power iteration did not converge")
)

// NonConvergenceError reports an exhausted iteration budget. No partial
// rank vector is exposed; the budget is the only diagnostic.
type NonConvergenceError struct {
	// MaxIter is the iteration budget that was exhausted.
	MaxIter int
}

// Error implements the error interface.
func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("pagerank: no convergence within %d iterations", e.MaxIter)
}

// Is matches ErrNonConvergence so callers can use errors.Is without
// unpacking the budget.
func (e *NonConvergenceError) Is(target error) bool {
	return target == ErrNonConvergence
}

// TraceFunc receives formatted per-iteration diagnostics from the engine:
// per-source packet values (with hardware-style hex rendering) and the
// L1 error of every time step. A nil TraceFunc disables tracing; the
// engine never touches global logger state.
type TraceFunc func(format string, args ...interface{})

// Options configures a single engine run.
//
//   - Damping: mass retained through edges each iteration, in (0, 1].
//   - Tolerance: positive convergence tolerance, compared in fixed
//     point. Tolerances below the fixed-point resolution make the
//     strict L1 check unsatisfiable and force budget exhaustion.
//   - MaxIter: iteration budget, at least 1; the deterministic timeout.
//   - Labels: optional output ordering; must be a permutation of the
//     node set. Nil means sorted node IDs.
//   - Trace: optional diagnostic sink; nil disables tracing.
type Options struct {
	Damping   float64
	Tolerance float64
	MaxIter   int
	Labels    []string
	Trace     TraceFunc
}

// Option is a functional option for configuring Rank.
type Option func(*Options)

// WithDamping sets the damping factor. Validated by Rank (ErrBadDamping).
func WithDamping(d float64) Option {
	return func(o *Options) { o.Damping = d }
}

// WithTolerance sets the convergence tolerance. Validated by Rank
// (ErrBadTolerance).
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIter sets the iteration budget. Validated by Rank (ErrBadMaxIter).
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithLabels sets the output ordering of the resulting rank table. The
// list must be a permutation of the node set (ErrBadLabels otherwise).
func WithLabels(labels []string) Option {
	return func(o *Options) { o.Labels = labels }
}

// WithTrace wires a diagnostic sink into the engine. Tracing is purely
// observational: it never alters the numeric trajectory.
func WithTrace(fn TraceFunc) Option {
	return func(o *Options) { o.Trace = fn }
}

// DefaultOptions returns the engine defaults: Damping 0.85, Tolerance
// 1e-6, MaxIter 100, sorted output order, tracing disabled.
func DefaultOptions() Options {
	return Options{
		Damping:   DefaultDamping,
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
	}
}
