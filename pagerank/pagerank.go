// pagerank.go — the power-iteration engine over bounded-precision
// fixed-point arithmetic, faithful to a packet-based message-passing
// hardware target.
//
// Algorithm, per iteration t:
//
//  1. x_prev is the rank vector of the previous iteration; iteration 0
//     initializes every node to 1/n (fixed-point division).
//  2. x_next starts at all zeros.
//  3. Every node u with out-neighbors computes one message
//     m = x_prev[u] / outDegree(u), quantized ONCE per source
//     (broadcast semantics: every out-edge of u carries the same
//     quantized payload), and the quantized value accumulates into
//     x_next[v] for each out-neighbor v.
//  4. Dangling mass is NOT redistributed through edges; it is folded
//     into the damping step only. This matches the hardware reference
//     and deliberately deviates from the textbook dangling correction.
//  5. If damping != 1: x_next[v] = dampingSum + damping * x_next[v],
//     with dampingSum = (1-damping)/n precomputed in fixed point.
//  6. err = Σ |x_next[v] - x_prev[v]| (L1 norm, fixed point throughout).
//  7. Converged when err < n * tolerance (fixed point, strict); the
//     iteration count reported is t+1.
//  8. Budget exhaustion yields *NonConvergenceError carrying MaxIter.
//
// Because fixed-point addition wraps, accumulation in step 3 is
// associative: delivery order cannot change the resulting bit pattern.
// Enumeration is nevertheless fixed (sorted node order) so traces are
// reproducible line for line.

package pagerank

import (
	"fmt"

	"github.com/avernet/fxrank/fixpoint"
)

// Rank runs the fixed-point power iteration over sg and returns the
// converged rank table, or an error.
//
// Validation (in order):
//  1. sg must be non-nil (ErrNilGraph).
//  2. Damping must lie in (0, 1] (ErrBadDamping).
//  3. Tolerance must be positive (ErrBadTolerance).
//  4. MaxIter must be at least 1 (ErrBadMaxIter).
//  5. Labels, when given, must be a permutation of the node set
//     (ErrBadLabels).
//
// On success the result is deterministic: same view, options and
// numeric configuration produce bit-identical ranks and the same
// iteration count on every platform. On budget exhaustion the returned
// error is a *NonConvergenceError (matching ErrNonConvergence) and no
// partial ranks are exposed.
func Rank(sg *StochasticGraph, opts ...Option) (*RankTable, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in documented order.
	if sg == nil {
		return nil, ErrNilGraph
	}
	if cfg.Damping <= 0 || cfg.Damping > 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadDamping, cfg.Damping)
	}
	if cfg.Tolerance <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadTolerance, cfg.Tolerance)
	}
	if cfg.MaxIter < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxIter, cfg.MaxIter)
	}
	order, err := resolveOrder(sg, cfg.Labels)
	if err != nil {
		return nil, err
	}

	// 3) Precompute the fixed-point constants of the run.
	r, err := newRunner(sg, cfg)
	if err != nil {
		return nil, err
	}

	// 4) Iterate.
	ranks, iters, err := r.run()
	if err != nil {
		return nil, err
	}

	// 5) Project the converged vector into the requested output order.
	labels := cfg.Labels
	if labels == nil {
		labels = sg.Nodes()
	}
	values := make([]fixpoint.Value, len(order))
	for i, idx := range order {
		values[i] = ranks[idx]
	}

	return newRankTable(labels, values, iters), nil
}

// resolveOrder maps the requested output labels to node indexes, or the
// identity order when labels is nil.
func resolveOrder(sg *StochasticGraph, labels []string) ([]int, error) {
	n := sg.NodeCount()
	if labels == nil {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}

		return order, nil
	}

	if len(labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d nodes", ErrBadLabels, len(labels), n)
	}
	order := make([]int, n)
	seen := make(map[int]struct{}, n)
	for i, label := range labels {
		idx, ok := sg.index[label]
		if !ok {
			return nil, fmt.Errorf("%w: unknown label %q", ErrBadLabels, label)
		}
		if _, dup := seen[idx]; dup {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrBadLabels, label)
		}
		seen[idx] = struct{}{}
		order[i] = idx
	}

	return order, nil
}

// runner holds the immutable constants and mutable rank buffers of one
// engine execution.
type runner struct {
	sg    *StochasticGraph
	trace TraceFunc

	maxIter int

	d         fixpoint.Value   // damping factor
	dSum      fixpoint.Value   // (1 - damping) / n, the uniform jump mass
	one       fixpoint.Value   // 1
	threshold fixpoint.Value   // n * tolerance, the convergence bound
	divisor   []fixpoint.Value // per node, FromInt(outDegree); zero Value for dangling

	x     []fixpoint.Value // rank vector at the previous iteration
	xNext []fixpoint.Value // rank vector being accumulated
}

// newRunner converts the run parameters into fixed point and initializes
// the iteration-0 vector to 1/n per node.
//
// A node count or out-degree too large for the fixed-point integer range
// surfaces as fixpoint.ErrOutOfRange here, before any iteration runs.
func newRunner(sg *StochasticGraph, cfg Options) (*runner, error) {
	n := sg.NodeCount()

	d, err := fixpoint.FromFloat(cfg.Damping)
	if err != nil {
		return nil, fmt.Errorf("pagerank: damping: %w", err)
	}
	// The tolerance may quantize to zero: that is the documented
	// hardware-fidelity behavior, not an error (the strict L1 check then
	// never passes and the budget is exhausted).
	tol, err := fixpoint.FromFloat(cfg.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("pagerank: tolerance: %w", err)
	}
	nFx, err := fixpoint.FromInt(int64(n))
	if err != nil {
		return nil, fmt.Errorf("pagerank: node count %d: %w", n, err)
	}

	r := &runner{
		sg:        sg,
		trace:     cfg.Trace,
		maxIter:   cfg.MaxIter,
		d:         d,
		one:       fixpoint.One(),
		threshold: nFx.Mul(tol),
		divisor:   make([]fixpoint.Value, n),
		x:         make([]fixpoint.Value, n),
		xNext:     make([]fixpoint.Value, n),
	}

	if d.Cmp(r.one) != 0 {
		r.dSum, err = r.one.Sub(d).Div(nFx)
		if err != nil {
			return nil, fmt.Errorf("pagerank: damping sum: %w", err)
		}
	}

	for i := range r.divisor {
		deg := len(sg.succ[i])
		if deg == 0 {
			continue
		}
		r.divisor[i], err = fixpoint.FromInt(int64(deg))
		if err != nil {
			return nil, fmt.Errorf("pagerank: out-degree of %q: %w", sg.nodes[i], err)
		}
	}

	init, err := r.one.Div(nFx)
	if err != nil {
		return nil, fmt.Errorf("pagerank: initial rank: %w", err)
	}
	for i := range r.x {
		r.x[i] = init
	}

	return r, nil
}

// run executes the power iteration until convergence or budget
// exhaustion.
func (r *runner) run() ([]fixpoint.Value, int, error) {
	damped := r.d.Cmp(r.one) != 0

	for t := 0; t < r.maxIter; t++ {
		r.tracef("===== TIME STEP = %d =====", t)

		// Zero the accumulator.
		for i := range r.xNext {
			r.xNext[i] = fixpoint.Zero()
		}

		// Message exchange: one quantized packet per source, broadcast
		// to every out-neighbor. Dangling nodes send nothing.
		for u, nbrs := range r.sg.succ {
			if len(nbrs) == 0 {
				continue
			}
			pkt, err := r.x[u].Div(r.divisor[u])
			if err != nil {
				// Divisor is a positive integer; only a range failure on
				// a pathological rank can land here.
				return nil, 0, fmt.Errorf("pagerank: message from %q: %w", r.sg.nodes[u], err)
			}
			pkt = fixpoint.Quantize(pkt, LostBits)
			r.tracef("[t=%04d|%s] sending pkt %s[%s]", t, r.sg.nodes[u], pkt, pkt.Hex())
			for _, v := range nbrs {
				r.xNext[v] = r.xNext[v].Add(pkt)
			}
		}

		// Damping step. Dangling mass is folded in here: nodes whose
		// only in-flow came from dangling sources receive dampingSum
		// alone, never an explicit redistribution.
		if damped {
			for i := range r.xNext {
				r.xNext[i] = r.dSum.Add(r.d.Mul(r.xNext[i]))
			}
		}

		// L1 convergence check, fixed point throughout.
		l1 := fixpoint.Zero()
		for i := range r.xNext {
			l1 = l1.Add(r.xNext[i].Sub(r.x[i]).Abs())
		}
		r.tracef("[t=%04d] l1 error %s[%s], threshold %s", t, l1, l1.Hex(), r.threshold)

		if l1.Cmp(r.threshold) < 0 {
			// Iteration t+1 completes at the end of time step t.
			return r.xNext, t + 1, nil
		}
		r.x, r.xNext = r.xNext, r.x
	}

	return nil, 0, &NonConvergenceError{MaxIter: r.maxIter}
}

// tracef forwards diagnostics to the configured sink, if any.
func (r *runner) tracef(format string, args ...interface{}) {
	if r.trace != nil {
		r.trace(format, args...)
	}
}
