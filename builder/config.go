// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng      = nil                       (generators requiring randomness fail with ErrNeedRandSource)
//   • weightFn = UniformIntWeightFn(1, 20) (integer weights in [1, 20])

package builder

import "math/rand"

// Default integer weight range for random edges.
const (
	DefaultMinWeight = 1
	DefaultMaxWeight = 20
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: UniformIntWeightFn(DefaultMinWeight, DefaultMaxWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
