// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// over a core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source vertex to every
//     vertex in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on an indexed min-heap to always expand the next-closest vertex.
//   - Unreachable vertices keep the core.Inf() sentinel; the source is always 0.
//
// When to use:
//
//   - Any static weighted graph whose weights are known to be non-negative.
//   - When weights may be negative, use package bellmanford, or compare the two
//     with package compare.
//
// Negative weights:
//
//   - By default Dijkstra does not scan for negative weights. On such input the
//     returned distances are best-effort and may be wrong, but the call always
//     terminates, even in the presence of negative cycles.
//   - WithStrictWeights() turns the precondition into a check that fails with
//     ErrNegativeWeight.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, source int, opts ...Option) (core.Distances, error)
//
//	  - opts:
//	      • WithStrictWeights():       reject negative weights up front.
//	      • WithMaxDistance(float64):  leave vertices farther than the cap at core.Inf().
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrInvalidVertex:  source outside [0, VertexCount()); same value as core.ErrInvalidVertex.
//   - ErrNegativeWeight: StrictWeights enabled and a negative weight present.
//
// Thread safety:
//
//   - Dijkstra reads a single adjacency snapshot of the graph under its read lock
//     and never mutates it; concurrent calls on the same graph are safe.
package dijkstra
