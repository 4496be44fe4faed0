// SPDX-License-Identifier: MIT
//
// Package builder generates random edge sets for core.Graph instances.
//
// RandomEdges(g, m, opts...) appends m directed edges chosen uniformly at
// random among vertex pairs, with no self-loops, no duplicates and no
// anti-parallel pairs. Edge weights default to integers in [1, 20].
//
// Options:
//
//	WithSeed(seed)           reproducible RNG
//	WithRand(r)              caller-owned RNG
//	WithWeightRange(lo, hi)  integer weights in [lo, hi]
//	WithWeightFn(fn)         custom weight policy
//
// Errors:
//
//	ErrNilGraph, ErrTooFewEdges, ErrTooManyEdges, ErrNeedRandSource.
//
// Example:
//
//	g := core.MustNewGraph(10)
//	if err := builder.RandomEdges(g, 15, builder.WithSeed(42)); err != nil {
//	    log.Fatal(err)
//	}
package builder
