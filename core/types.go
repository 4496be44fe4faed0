// Package core defines the central Graph and Edge types together with the
// Distances map returned by the shortest-path solvers.
//
// A Graph has a fixed number of vertices, identified by the integers
// [0, VertexCount()), and an append-only list of directed, weighted edges.
// All methods are safe for concurrent use: a single sync.RWMutex guards the
// edge list and the adjacency index.
//
// This file declares Edge, Graph, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrTooFewVertices  - vertex count is smaller than 1.
//	ErrTooManyVertices - vertex count is larger than MaxVertices.
//	ErrInvalidVertex  - vertex ID is outside [0, VertexCount()).
//	ErrBadWeight      - edge weight is NaN or infinite.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrTooFewVertices indicates that a graph was requested with fewer than one vertex.
	ErrTooFewVertices = errors.New("core: vertex count must be positive")

	// ErrTooManyVertices indicates that a graph was requested with more than MaxVertices vertices.
	ErrTooManyVertices = errors.New("core: vertex count too large")

	// ErrInvalidVertex indicates an operation referenced a vertex outside [0, VertexCount()).
	ErrInvalidVertex = errors.New("core: vertex out of range")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")
)

// minVertices is the smallest admissible vertex count.
const minVertices = 1

// MaxVertices is the largest admissible vertex count. Every solver
// allocates O(n) state per run, so the bound also caps their memory.
const MaxVertices = 1 << 20

// Edge represents a directed connection From→To with a signed Weight.
type Edge struct {
	// From is the source vertex.
	From int

	// To is the destination vertex.
	To int

	// Weight is the cost of traversing the edge. It may be negative.
	Weight float64
}

// String renders the edge the way the command-line tools list them.
func (e Edge) String() string {
	return fmt.Sprintf("Edge from %d to %d with weight %g", e.From, e.To, e.Weight)
}

// Graph is a directed, weighted graph over a fixed vertex set.
//
// edges keeps insertion order; out[v] holds indexes into edges for every
// edge leaving v, also in insertion order. Both are guarded by mu.
type Graph struct {
	mu sync.RWMutex // guards edges and out

	n     int     // vertex count, fixed at construction
	edges []Edge  // insertion-ordered edge list
	out   [][]int // out[v] = indexes of edges with From == v
}

// NewGraph creates an empty Graph over n vertices.
// Returns ErrTooFewVertices if n < 1 and ErrTooManyVertices if n > MaxVertices.
// Complexity: O(n)
func NewGraph(n int) (*Graph, error) {
	if n < minVertices {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, n)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyVertices, n, MaxVertices)
	}

	return &Graph{
		n:   n,
		out: make([][]int, n),
	}, nil
}

// MustNewGraph is like NewGraph but panics on error. Intended for tests,
// examples and fixtures with constant vertex counts.
func MustNewGraph(n int) *Graph {
	g, err := NewGraph(n)
	if err != nil {
		panic(err)
	}

	return g
}
