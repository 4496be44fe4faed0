// Package dijkstra defines sentinel errors and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Options:
//
//	– StrictWeights: reject graphs holding any negative edge weight.
//	– MaxDistance:   optional cap on distances to explore; vertices beyond it stay at core.Inf().
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrInvalidVertex  if the source vertex is outside [0, VertexCount()).
//	– ErrNegativeWeight if StrictWeights is set and a negative edge weight is present.
//	– ErrBadMaxDistance if MaxDistance < 0 (raised by panic in WithMaxDistance).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/sssp/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidVertex indicates that the source vertex is out of range.
	// It is the core sentinel, so errors.Is works against either name.
	ErrInvalidVertex = core.ErrInvalidVertex

	// ErrNegativeWeight indicates that a negative edge weight was detected
	// while StrictWeights was enabled.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// StrictWeights – if true, fail with ErrNegativeWeight when any edge weight is negative.
// MaxDistance   – vertices whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	StrictWeights bool    // Reject negative weights up front
	MaxDistance   float64 // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithStrictWeights makes Dijkstra verify its non-negative weight precondition
// with an O(E) pre-scan and fail with ErrNegativeWeight instead of returning
// a best-effort result.
func WithStrictWeights() Option {
	return func(o *Options) {
		o.StrictWeights = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are left at core.Inf().
// Panics on negative or NaN values.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - StrictWeights: false (negative weights yield a best-effort result).
//   - MaxDistance:   +Inf (explore all reachable vertices).
func DefaultOptions() Options {
	return Options{
		StrictWeights: false,
		MaxDistance:   math.Inf(1),
	}
}
