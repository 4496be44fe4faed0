// Package sssp computes single-source shortest paths over small directed,
// weighted graphs with two classic algorithms and compares them.
//
// What is in the box?
//
//	A thread-safe graph store and two solvers that share it:
//		• core        – Graph over vertices [0, n), append-only weighted edges, Distances
//		• dijkstra    – priority-queue solver for non-negative weights
//		• bellmanford – edge-relaxation solver with negative-cycle detection
//		• compare     – runs both, times them, recommends one
//		• bfs         – hop-count reachability from a source
//		• builder     – seeded random edge generator
//
// The command-line tool in cmd/sssp loads a graph from an HCL file, from the
// random generator, or from an interactive session, and prints the results.
//
// Quick example:
//
//	0 ──1──▶ 1 ──2──▶ 2 ──1──▶ 3
//	 ╲───────4───────▶╱
//
//	g := core.MustNewGraph(4)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(0, 2, 4)
//	_ = g.AddEdge(2, 3, 1)
//	dist, _ := dijkstra.Dijkstra(g, 0) // {0: 0, 1: 1, 2: 3, 3: 4}
//
//	go get github.com/katalvlaran/sssp
package sssp
