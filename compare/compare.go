// Package compare runs Dijkstra and Bellman-Ford on the same graph and source,
// times each one, and recommends one of them.
//
// The recommendation is a heuristic based on a single wall-clock measurement
// per solver; it is noisy and not reproducible across runs or machines.
package compare

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sssp/bellmanford"
	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// Compare runs dijkstra.Dijkstra then bellmanford.BellmanFord from source.
//
// Input errors (nil graph, invalid source) are shared by both solvers and are
// returned directly. A negative cycle detected by Bellman-Ford is not an
// error of Compare: it is captured in Report.BellmanFordErr next to
// Dijkstra's result.
func Compare(g *core.Graph, source int, opts ...Option) (*Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger

	start := cfg.Clock()
	dDist, err := dijkstra.Dijkstra(g, source)
	dTime := cfg.Clock().Sub(start)
	if err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}
	log.Debug("Dijkstra finished.", "source", source, "elapsed", dTime)

	start = cfg.Clock()
	bDist, bErr := bellmanford.BellmanFord(g, source)
	bTime := cfg.Clock().Sub(start)
	if bErr != nil && !errors.Is(bErr, bellmanford.ErrNegativeCycle) {
		return nil, fmt.Errorf("compare: %w", bErr)
	}
	log.Debug("Bellman-Ford finished.", "source", source, "elapsed", bTime, "error", bErr)

	r := &Report{
		Source:          source,
		Dijkstra:        dDist,
		DijkstraTime:    dTime,
		BellmanFord:     bDist,
		BellmanFordErr:  bErr,
		BellmanFordTime: bTime,
	}
	r.Recommendation = Recommend(r)
	log.Debug("Comparison complete.", "recommendation", r.Recommendation.String())

	return r, nil
}

// Recommend applies the decision policy to a report:
//  1. Bellman-Ford failed with a negative cycle → RecommendDijkstraNonNegative.
//  2. DijkstraTime < BellmanFordTime            → RecommendDijkstraFaster.
//  3. otherwise                                 → RecommendBellmanFordRobust.
func Recommend(r *Report) Recommendation {
	switch {
	case errors.Is(r.BellmanFordErr, bellmanford.ErrNegativeCycle):
		return RecommendDijkstraNonNegative
	case r.DijkstraTime < r.BellmanFordTime:
		return RecommendDijkstraFaster
	default:
		return RecommendBellmanFordRobust
	}
}
