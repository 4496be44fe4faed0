// File: api.go
// Role: read-only getters on the fixed vertex set.

package core

import "fmt"

// VertexCount returns the number of vertices fixed at construction.
func (g *Graph) VertexCount() int {
	return g.n
}

// HasVertex reports whether v is a valid vertex ID, i.e. 0 ≤ v < VertexCount().
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.n
}

// CheckVertex returns nil if v is a valid vertex ID and a wrapped
// ErrInvalidVertex otherwise. Solvers use it to validate their source.
func (g *Graph) CheckVertex(v int) error {
	if g.HasVertex(v) {
		return nil
	}

	return &VertexError{Vertex: v, Count: g.n}
}

// VertexError describes an out-of-range vertex. It matches ErrInvalidVertex
// under errors.Is.
type VertexError struct {
	Vertex int
	Count  int
}

func (e *VertexError) Error() string {
	return fmt.Sprintf("core: vertex %d is invalid, vertices are in [0, %d]", e.Vertex, e.Count-1)
}

// Is reports target == ErrInvalidVertex.
func (e *VertexError) Is(target error) bool {
	return target == ErrInvalidVertex
}
