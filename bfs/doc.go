// Package bfs provides breadth-first search over a core.Graph, answering
// "which vertices can the source reach, and in how many edges?".
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex,
//     following edges in their direction (From→To) and ignoring weights.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence
//   - Depth:  Depth[v] = hop count from start, Unreached if v was not reached
//   - Parent: Parent[v] = predecessor in the BFS tree, Unreached for the root
//   - Supports an OnVisit hook that may abort the walk with an error.
//   - Allows filtering of individual edges via WithFilterEdge.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//	A vertex has a finite shortest distance exactly when BFS reaches it, so
//	the reached set is the yardstick for both solvers' results, and the
//	command-line tool reports it before solving.
//
// Determinism
//
//	core.Graph keeps out-edges in insertion order and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = VertexCount, E = EdgeCount)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrInvalidVertex    if the start vertex is outside [0, VertexCount()).
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err().
package bfs
