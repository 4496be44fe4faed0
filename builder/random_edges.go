// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// random_edges.go - implementation of RandomEdges(g, m).
//
// Model:
//   - Draw ordered pairs (u, v) uniformly at random until m are accepted.
//   - Reject self-loops (u == v), duplicates (u, v) and anti-parallel
//     pairs (v, u) of an already accepted edge.
//   - Weight of every accepted edge: cfg.weightFn(cfg.rng).
//
// Contract:
//   - g non-nil (else ErrNilGraph).
//   - 1 ≤ m ≤ MaxEdges(n) (else ErrTooFewEdges / ErrTooManyEdges).
//   - cfg.rng non-nil (else ErrNeedRandSource).
//   - Validation happens before the first AddEdge: an invalid call leaves g untouched.
//
// Complexity:
//   - Expected O(M · log M) draws where M = MaxEdges(n) in the worst case m = M.
//   - Space: O(m) for the accepted-pair set.
//
// Determinism:
//   - Fixed seed and options → identical edge sequence.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sssp/core"
)

const methodRandomEdges = "RandomEdges"

// pair is an unordered vertex pair key (lo < hi).
type pair struct{ lo, hi int }

func newPair(u, v int) pair {
	if u > v {
		u, v = v, u
	}

	return pair{lo: u, hi: v}
}

// MaxEdges returns the number of distinct edges RandomEdges can place on
// n vertices: one per unordered pair, n(n-1)/2. The result saturates at
// math.MaxInt instead of overflowing.
func MaxEdges(n int) int {
	if n < 2 {
		return 0
	}

	// Halve the even factor first so the product is exact.
	a, b := n, n-1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}

	return a * b
}

// RandomEdges appends m random directed edges to g.
func RandomEdges(g *core.Graph, m int, opts ...BuilderOption) error {
	if g == nil {
		return fmt.Errorf("%s: %w", methodRandomEdges, ErrNilGraph)
	}
	cfg := newBuilderConfig(opts...)

	n := g.VertexCount()
	if m < 1 {
		return fmt.Errorf("%s: m=%d < 1: %w", methodRandomEdges, m, ErrTooFewEdges)
	}
	if limit := MaxEdges(n); m > limit {
		return fmt.Errorf("%s: m=%d > max=%d for n=%d: %w", methodRandomEdges, m, limit, n, ErrTooManyEdges)
	}
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", methodRandomEdges, ErrNeedRandSource)
	}

	rng := cfg.rng
	used := make(map[pair]struct{}, m)
	for len(used) < m {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		key := newPair(u, v)
		if _, dup := used[key]; dup {
			continue
		}

		w := cfg.weightFn(rng)
		if err := g.AddEdge(u, v, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", methodRandomEdges, u, v, w, err)
		}
		used[key] = struct{}{}
	}

	return nil
}
