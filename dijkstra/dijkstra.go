// Package dijkstra implements Dijkstra's shortest-path algorithm on a core.Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each extraction from the frontier costs O(log V).
//   - Each successful relaxation costs one O(log V) insert or decrease-key.
//   - Space: O(V + E) for distances, hop counts, the frontier and the adjacency snapshot.
//
// Notes on implementation choices:
//
//   - The frontier is an indexed min-heap (yagh.IntMap): a vertex is held at most once,
//     and Put lowers its key in place. No stale entries are ever extracted.
//   - Out-edges come from a single core.Graph.Adjacency snapshot, not a scan of all edges.
//   - Edges into the source are never relaxed, so dist[source] is always 0.
//   - A tentative path is never extended to V edges. With non-negative weights
//     this bound is never reached; with negative cycles it guarantees termination.
package dijkstra

import (
	"fmt"

	"github.com/rhartert/yagh"

	"github.com/katalvlaran/sssp/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: core.Distances; dist[source] == 0, unreachable vertices hold core.Inf().
//   - err:  ErrNilGraph, a wrapped ErrInvalidVertex, or ErrNegativeWeight (StrictWeights only).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be in [0, g.VertexCount()) (ErrInvalidVertex).
//  3. With StrictWeights, no edge may have a negative weight (ErrNegativeWeight).
//
// Without StrictWeights, negative weights are not rejected. The result is
// then best-effort and may not be a shortest-path map, but the call always
// terminates.
func Dijkstra(g *core.Graph, source int, opts ...Option) (core.Distances, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.CheckVertex(source); err != nil {
		return nil, fmt.Errorf("dijkstra: source: %w", err)
	}

	adj := g.Adjacency()
	if cfg.StrictWeights {
		for _, out := range adj {
			for _, e := range out {
				if e.Weight < 0 {
					return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
				}
			}
		}
	}

	n := g.VertexCount()
	r := &runner{
		options: cfg,
		source:  source,
		adj:     adj,
		dist:    core.NewDistances(n, source),
		hops:    make([]int, n),
		pq:      yagh.New[float64](n),
	}
	r.pq.Put(source, 0)
	r.process()

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	options Options
	source  int
	adj     [][]core.Edge          // out-edges per vertex, snapshot of the graph
	dist    core.Distances         // best known distance per vertex
	hops    []int                  // edge count of the path realizing dist
	pq      *yagh.IntMap[float64] // frontier keyed by tentative distance
}

// process repeatedly extracts the closest frontier vertex and relaxes its
// out-edges until the frontier is empty. relax never inserts a key above
// MaxDistance, so the frontier drains on its own.
func (r *runner) process() {
	for r.pq.Size() > 0 {
		entry := r.pq.Pop()
		u, d := entry.Elem, entry.Cost

		// Stale entry: the vertex was improved after this key was recorded.
		if d > r.dist[u] {
			continue
		}

		r.relax(u)
	}
}

// relax examines every edge leaving u and lowers the distance of its
// target when a strictly shorter path through u is found.
func (r *runner) relax(u int) {
	limit := len(r.dist) - 1
	if r.hops[u] >= limit {
		return
	}

	for _, e := range r.adj[u] {
		v := e.To
		// dist[source] stays 0, even when a negative cycle runs through it.
		if v == r.source {
			continue
		}
		newDist := r.dist[u] + e.Weight

		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.hops[v] = r.hops[u] + 1
		r.pq.Put(v, newDist)
	}
}
