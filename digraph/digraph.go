package digraph

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyVertexID indicates a vertex or edge endpoint with an empty ID.
	ErrEmptyVertexID = errors.New("digraph: vertex ID is empty")

	// ErrVertexNotFound indicates a query referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("digraph: vertex not found")
)

// Graph is a mutable directed graph with deduplicated edges.
// The zero value is not usable; construct with New.
type Graph struct {
	mu sync.RWMutex

	// succ[u] is the set of direct successors of u. Every vertex has an
	// entry, so membership in succ doubles as the vertex catalog.
	succ map[string]map[string]struct{}

	edgeCount int
}

// New creates an empty directed graph.
func New() *Graph {
	return &Graph{succ: make(map[string]map[string]struct{})}
}

// AddVertex registers a vertex. Adding an existing vertex is a no-op.
//
// Errors:
//   - ErrEmptyVertexID if id is empty.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(id)

	return nil
}

// AddEdge registers the directed edge from→to, creating both endpoints if
// they are not present. Duplicate edges are deduplicated; self-loops are
// allowed.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return fmt.Errorf("%w: edge %q->%q", ErrEmptyVertexID, from, to)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(from)
	g.ensure(to)
	if _, dup := g.succ[from][to]; dup {
		return nil
	}
	g.succ[from][to] = struct{}{}
	g.edgeCount++

	return nil
}

// ensure registers id without locking; callers hold g.mu.
func (g *Graph) ensure(id string) {
	if _, ok := g.succ[id]; !ok {
		g.succ[id] = make(map[string]struct{})
	}
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.succ[id]

	return ok
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.succ[from][to]

	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.succ)
}

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// This is the stable enumeration surface; rely on it for reproducible
// output.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.succ))
	for id := range g.succ {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// OutNeighbors returns the direct successors of id, sorted ascending.
// Returns an empty (non-nil) slice for a vertex with no out-edges.
//
// Errors:
//   - ErrVertexNotFound if id is not a vertex of g.
func (g *Graph) OutNeighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.succ[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// OutDegree returns the number of out-edges of id.
//
// Errors:
//   - ErrVertexNotFound if id is not a vertex of g.
func (g *Graph) OutDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.succ[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(set), nil
}

// Clone returns a deep copy of g. The copy shares no state with the
// original and may be mutated independently.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := New()
	for u, set := range g.succ {
		c.succ[u] = make(map[string]struct{}, len(set))
		for v := range set {
			c.succ[u][v] = struct{}{}
		}
	}
	c.edgeCount = g.edgeCount

	return c
}
