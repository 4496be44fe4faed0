// Package bellmanford defines sentinel errors, the negative-cycle error type
// and configuration options for the Bellman-Ford shortest-path algorithm.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrInvalidVertex  if the source vertex is outside [0, VertexCount()).
//	– ErrNegativeCycle  if a negative-weight cycle is reachable from the source.
//	                    Always delivered as *NegativeCycleError.
package bellmanford

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to BellmanFord.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrInvalidVertex indicates that the source vertex is out of range.
	// It is the core sentinel, so errors.Is works against either name.
	ErrInvalidVertex = core.ErrInvalidVertex

	// ErrNegativeCycle indicates that the graph contains a negative weight
	// cycle reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: graph contains a negative weight cycle")
)

// NegativeCycleError is returned when the detection pass still finds a
// relaxable edge. Vertices lists, in first-seen order, the targets of every
// edge that could still be relaxed; each of them lies on or behind a
// negative cycle reachable from Source.
type NegativeCycleError struct {
	Source   int
	Vertices []int
}

func (e *NegativeCycleError) Error() string {
	return fmt.Sprintf("%s (source %d, relaxable vertices %v)", ErrNegativeCycle, e.Source, e.Vertices)
}

// Unwrap exposes ErrNegativeCycle to errors.Is.
func (e *NegativeCycleError) Unwrap() error {
	return ErrNegativeCycle
}

// Options configures the behavior of the Bellman-Ford algorithm.
//
// EarlyExit – stop the relaxation passes as soon as one pass changes nothing.
//
//	The result is identical to running all V-1 passes. Default true.
type Options struct {
	EarlyExit bool
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// WithEarlyExit enables stopping once a pass relaxes no edge.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// WithoutEarlyExit forces exactly V-1 relaxation passes.
func WithoutEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = false
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - EarlyExit: true.
func DefaultOptions() Options {
	return Options{
		EarlyExit: true,
	}
}
