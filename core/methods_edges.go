// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/Out/EdgeCount/NegativeWeights.
// Determinism:
//   - Edges() and Out() return edges in insertion order.
// Concurrency:
//   - AddEdge under mu write lock.
//   - Read queries under mu read lock; returned slices are copies.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends the directed edge from→to with the given weight.
//
// Steps:
//  1. Validate both endpoints are in [0, VertexCount()).
//  2. Validate weight is finite.
//  3. Lock mu, append to edges, index in out[from].
//
// No deduplication is performed: parallel and anti-parallel edges are kept.
// A failed call leaves the graph unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return fmt.Errorf("%w: edge (%d, %d) with vertices in [0, %d]",
			ErrInvalidVertex, from, to, g.n-1)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: edge (%d, %d) weight=%g", ErrBadWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.out[from] = append(g.out[from], len(g.edges))
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})

	return nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)

	return edges
}

// EdgeCount returns the number of stored edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Out returns a copy of the edges leaving v, in insertion order.
// Returns ErrInvalidVertex if v is out of range.
// Complexity: O(deg⁺(v)).
func (g *Graph) Out(v int) ([]Edge, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertex, v)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.out[v]))
	for i, idx := range g.out[v] {
		out[i] = g.edges[idx]
	}

	return out, nil
}

// Adjacency returns a consistent snapshot of the out-edge index:
// adj[v] lists the edges leaving v in insertion order.
// Solvers call it once per run instead of Out per vertex.
// Complexity: O(V + E).
func (g *Graph) Adjacency() [][]Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := make([][]Edge, g.n)
	for v, idxs := range g.out {
		if len(idxs) == 0 {
			continue
		}
		adj[v] = make([]Edge, len(idxs))
		for i, idx := range idxs {
			adj[v][i] = g.edges[idx]
		}
	}

	return adj
}

// NegativeWeights reports whether at least one edge has a negative weight.
// Complexity: O(E).
func (g *Graph) NegativeWeights() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Weight < 0 {
			return true
		}
	}

	return false
}
