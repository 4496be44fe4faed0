// Package bellmanford provides the Bellman-Ford single-source shortest-path
// algorithm over a core.Graph.
//
// Overview:
//
//   - Unlike Dijkstra, Bellman-Ford accepts negative edge weights.
//   - It performs at most V-1 relaxation passes over the whole edge list, then
//     one detection pass. If any edge can still be relaxed, a negative cycle is
//     reachable from the source and no distances are returned.
//   - Unreachable vertices keep the core.Inf() sentinel; the source is always 0.
//
// Early exit:
//
//   - By default the passes stop as soon as one of them changes nothing. This
//     never alters the result; WithoutEarlyExit() restores the full V-1 passes.
//
// Error handling:
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrInvalidVertex:  source outside [0, VertexCount()); same value as core.ErrInvalidVertex.
//   - ErrNegativeCycle:  reachable negative cycle; the concrete error is
//     *NegativeCycleError, inspect it with errors.As to list the affected vertices.
//
// Example:
//
//	dist, err := bellmanford.BellmanFord(g, 0)
//	var nc *bellmanford.NegativeCycleError
//	if errors.As(err, &nc) {
//	    fmt.Println("negative cycle near", nc.Vertices)
//	}
package bellmanford
