// Package core provides the graph store shared by the shortest-path solvers.
//
// The Graph G = (V,E) is deliberately small:
//
//   - V is fixed at construction: vertices are the integers [0, n).
//   - E is an append-only, insertion-ordered list of directed edges
//     (From, To, Weight). Weights are signed and finite.
//   - An out-edge index (adjacency) is maintained on every AddEdge, so
//     solvers never scan the full edge list to find a vertex's neighbours.
//   - A sync.RWMutex guards edges and adjacency; every getter returns a copy.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)                  // O(n)
//	AddEdge(from, to int, weight float64) error      // O(1) amortized
//	HasVertex(v int) bool                            // O(1)
//	VertexCount() int / EdgeCount() int              // O(1)
//	Edges() []Edge                                   // O(E), insertion order
//	Out(v int) ([]Edge, error)                       // O(deg⁺(v))
//	Adjacency() [][]Edge                             // O(V+E) snapshot
//	NegativeWeights() bool                           // O(E)
//
// Invariants:
//
//   - Every stored edge satisfies 0 ≤ From, To < VertexCount().
//   - A rejected AddEdge leaves the graph unchanged (no partial insert).
//   - There is no removal or mutation API.
//
// Distances:
//
//	Distances is the []float64 result type of dijkstra and bellmanford.
//	Index = vertex ID; unreachable vertices hold Inf() (+∞).
//
// Errors:
//
//	ErrTooFewVertices  - NewGraph(n) with n < 1.
//	ErrTooManyVertices - NewGraph(n) with n > MaxVertices.
//	ErrInvalidVertex   - endpoint or source outside [0, n). Check with errors.Is.
//	ErrBadWeight       - NaN or ±Inf weight.
package core
