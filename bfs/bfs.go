// Package bfs provides breadth-first search over a core.Graph,
// returning hop counts, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]core.Edge
	opts  BFSOptions
	ctx   context.Context
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrInvalidVertex for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.CheckVertex(start); err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}

	n := g.VertexCount()
	w := &walker{
		adj:   g.Adjacency(),
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = Unreached
	}

	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent and queues it.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		w.enqueueNeighbors(v)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// edge target.
func (w *walker) enqueueNeighbors(v int) {
	next := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.adj[v] {
		if !w.opts.FilterEdge(e) {
			continue
		}
		if w.res.Depth[e.To] == Unreached {
			w.enqueue(e.To, next, v)
		}
	}
}
