// Package compare defines the comparison report, the recommendation enum
// and the functional options of Compare.
package compare

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/sssp/core"
)

// Recommendation is the outcome of the timing-driven decision policy.
type Recommendation int

const (
	// RecommendDijkstraNonNegative: Bellman-Ford hit a negative cycle.
	RecommendDijkstraNonNegative Recommendation = iota + 1

	// RecommendDijkstraFaster: Dijkstra finished strictly faster.
	RecommendDijkstraFaster

	// RecommendBellmanFordRobust: Bellman-Ford was at least as fast.
	RecommendBellmanFordRobust
)

// String returns the human-facing recommendation sentence.
func (r Recommendation) String() string {
	switch r {
	case RecommendDijkstraNonNegative:
		return "Bellman-Ford failed due to negative weight cycles. Use Dijkstra for non-negative weights."
	case RecommendDijkstraFaster:
		return "Dijkstra is faster and recommended for this graph."
	case RecommendBellmanFordRobust:
		return "Bellman-Ford is more robust and recommended for graphs with negative weights."
	default:
		return "unknown recommendation"
	}
}

// Report holds the outcome of running both solvers on the same input.
//
//   - Dijkstra / DijkstraTime: distances and elapsed time of dijkstra.Dijkstra.
//   - BellmanFord / BellmanFordTime: distances (nil on failure) and elapsed time.
//   - BellmanFordErr: the captured negative-cycle error, nil on success.
//   - Recommendation: see Recommend.
type Report struct {
	Source int

	Dijkstra     core.Distances
	DijkstraTime time.Duration

	BellmanFord     core.Distances
	BellmanFordErr  error
	BellmanFordTime time.Duration

	Recommendation Recommendation
}

// Agree reports whether Bellman-Ford succeeded and both solvers produced
// identical distances. On graphs with non-negative weights this always holds.
func (r *Report) Agree() bool {
	return r.BellmanFordErr == nil && r.Dijkstra.Equal(r.BellmanFord)
}

// Options configures Compare.
//
// Clock  – time source used to measure each solver; default time.Now.
// Logger – receives one debug record per solver run; default discards.
type Options struct {
	Clock  func() time.Time
	Logger *slog.Logger
}

// Option represents a functional option for configuring Compare.
type Option func(*Options)

// WithClock overrides the time source. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("compare: WithClock(nil)")
	}
	return func(o *Options) {
		o.Clock = now
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("compare: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the wall clock and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Clock:  time.Now,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
