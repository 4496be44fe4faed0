// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • Generators never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrNilGraph indicates that a nil *core.Graph was passed to a generator.
var ErrNilGraph = errors.New("builder: graph is nil")

// ErrTooFewEdges indicates a requested edge count smaller than 1.
var ErrTooFewEdges = errors.New("builder: edge count too small")

// ErrTooManyEdges indicates a requested edge count above MaxEdges(n):
// with self-loops, duplicates and anti-parallel pairs excluded, no more
// distinct edges exist.
var ErrTooManyEdges = errors.New("builder: edge count exceeds available vertex pairs")

// ErrNeedRandSource indicates a stochastic generator was invoked without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: random source required")
