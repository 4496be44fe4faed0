// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm on a core.Graph, tolerating negative edge weights and detecting
// negative-weight cycles reachable from the source.
//
// Complexity:
//
//   - Time:  O(V · E) for V-1 passes over every edge plus one detection pass.
//   - Space: O(V + E) for distances, the edge snapshot and the cycle set.
package bellmanford

import (
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/sssp/core"
)

// BellmanFord computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: core.Distances; dist[source] == 0, unreachable vertices hold core.Inf().
//   - err:  ErrNilGraph, a wrapped ErrInvalidVertex, or *NegativeCycleError.
//
// Algorithm:
//  1. dist = +Inf everywhere except dist[source] = 0.
//  2. Up to V-1 passes over all edges in insertion order; an edge u→v is relaxed
//     when dist[u] is finite and dist[u]+w < dist[v].
//  3. One detection pass: any edge that still relaxes means a reachable negative
//     cycle. No partial distances are returned in that case.
func BellmanFord(g *core.Graph, source int, opts ...Option) (core.Distances, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.CheckVertex(source); err != nil {
		return nil, fmt.Errorf("bellmanford: source: %w", err)
	}

	n := g.VertexCount()
	edges := g.Edges()
	dist := core.NewDistances(n, source)

	for pass := 0; pass < n-1; pass++ {
		changed := false
		for _, e := range edges {
			if relaxable(dist, e) {
				dist[e.To] = dist[e.From] + e.Weight
				changed = true
			}
		}
		// A pass without changes is a fixed point: every later pass is a no-op.
		if !changed && cfg.EarlyExit {
			break
		}
	}

	if cycle := detect(dist, edges); cycle != nil {
		return nil, &NegativeCycleError{Source: source, Vertices: cycle}
	}

	return dist, nil
}

// relaxable reports whether e improves the distance of its target.
func relaxable(dist core.Distances, e core.Edge) bool {
	if math.IsInf(dist[e.From], 1) {
		return false
	}

	return dist[e.From]+e.Weight < dist[e.To]
}

// detect runs the extra pass and returns the distinct targets of every
// edge that can still be relaxed, or nil if there are none.
func detect(dist core.Distances, edges []core.Edge) []int {
	var seen *sparsesets.Set
	for _, e := range edges {
		if !relaxable(dist, e) {
			continue
		}
		if seen == nil {
			seen = sparsesets.New(len(dist))
		}
		seen.Insert(e.To)
	}
	if seen == nil {
		return nil
	}

	content := seen.Content()
	cycle := make([]int, len(content))
	copy(cycle, content)

	return cycle
}
