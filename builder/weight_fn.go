// Package builder provides helper functions and types
// for configuring edge-weight distributions in graph generators.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given a *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformIntWeightFn returns a WeightFn sampling integers uniformly in
// [min, max] inclusive. Panics if max < min.
// If rng is nil, yields min to maintain a deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformIntWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}
