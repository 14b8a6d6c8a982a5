package pagerank

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/avernet/fxrank/fixpoint"
)

// floatPrecision is the number of decimals used when pretty-printing
// decoded ranks.
const floatPrecision = 6

// RankTable is the output contract of a successful run: the final rank
// per node plus the iteration count at which convergence was detected.
// It is immutable; accessors return copies.
//
// A RankTable only ever represents success — on failure the engine
// returns an error and no partial results.
type RankTable struct {
	labels     []string
	index      map[string]int
	values     []fixpoint.Value
	iterations int
}

// newRankTable builds a table over an already-resolved output order.
func newRankTable(labels []string, values []fixpoint.Value, iterations int) *RankTable {
	idx := make(map[string]int, len(labels))
	for i, label := range labels {
		idx[label] = i
	}

	return &RankTable{
		labels:     labels,
		index:      idx,
		values:     values,
		iterations: iterations,
	}
}

// Iterations returns the number of iterations consumed to converge.
func (t *RankTable) Iterations() int { return t.iterations }

// Len returns the number of ranked nodes.
func (t *RankTable) Len() int { return len(t.labels) }

// Labels returns the node labels in output order.
func (t *RankTable) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)

	return out
}

// Rank returns the fixed-point rank of label, and whether it exists.
func (t *RankTable) Rank(label string) (fixpoint.Value, bool) {
	i, ok := t.index[label]
	if !ok {
		return fixpoint.Value{}, false
	}

	return t.values[i], true
}

// Float returns the decoded rank of label, and whether it exists.
func (t *RankTable) Float(label string) (float64, bool) {
	v, ok := t.Rank(label)

	return v.Float64(), ok
}

// Values returns the fixed-point ranks in output order.
func (t *RankTable) Values() []fixpoint.Value {
	out := make([]fixpoint.Value, len(t.values))
	copy(out, t.values)

	return out
}

// Floats returns the decoded ranks in output order, for external
// consumption. Decoding never feeds back into the computation.
func (t *RankTable) Floats() []float64 {
	out := make([]float64, len(t.values))
	for i, v := range t.values {
		out[i] = v.Float64()
	}

	return out
}

// String renders an aligned two-column table of node and rank, one row
// per node, followed by the iteration count.
func (t *RankTable) String() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NODE\tRANK")
	for i, label := range t.labels {
		fmt.Fprintf(w, "%s\t%.*f\n", label, floatPrecision, t.values[i].Float64())
	}
	// Flush into the builder; tabwriter only errors on a failing writer.
	_ = w.Flush()
	fmt.Fprintf(&sb, "converged in %d iterations", t.iterations)

	return sb.String()
}
