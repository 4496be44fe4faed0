package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/sssp/bellmanford"
	"github.com/katalvlaran/sssp/bfs"
	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/compare"
	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
	"github.com/katalvlaran/sssp/internal/ctxlog"
	"github.com/katalvlaran/sssp/internal/graphfile"
)

// Run executes one invocation described by cfg. Interactive sessions read
// from in; all results go to out. The logger is taken from ctx.
func Run(ctx context.Context, cfg *Config, in io.Reader, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)
	if cfg.Interactive {
		logger.Debug("Starting interactive session.")
		return newSession(ctx, cfg, in, out).run()
	}

	g, source, err := loadGraph(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info("Graph ready.", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "source", source)

	printEdges(out, "Edges added to the graph:", g.Edges())
	fmt.Fprintln(out)

	return solve(ctx, out, g, cfg.Algorithm, source)
}

// loadGraph builds the graph from the file or the random generator and
// resolves the source vertex: -source wins, then the file's source, then 0.
func loadGraph(ctx context.Context, cfg *Config) (*core.Graph, int, error) {
	source := 0

	var g *core.Graph
	if cfg.GraphPath != "" {
		f, err := graphfile.Load(ctx, cfg.GraphPath)
		if err != nil {
			return nil, 0, err
		}
		g = f.Graph
		if f.HasSource {
			source = f.Source
		}
	} else {
		var err error
		g, err = core.NewGraph(cfg.RandomVertices)
		if err != nil {
			return nil, 0, err
		}
		if err = builder.RandomEdges(g, cfg.RandomEdges, builder.WithSeed(seedFor(cfg))); err != nil {
			return nil, 0, err
		}
	}

	if cfg.Source >= 0 {
		source = cfg.Source
	}

	return g, source, nil
}

func seedFor(cfg *Config) int64 {
	if cfg.SeedSet {
		return cfg.Seed
	}

	return time.Now().UnixNano()
}

// solve runs algo from source on g and prints the result to w.
func solve(ctx context.Context, w io.Writer, g *core.Graph, algo string, source int) error {
	ctx = ctxlog.With(ctx, "algo", algo, "source", source)
	logger := ctxlog.FromContext(ctx)
	if res, err := bfs.BFS(g, source, bfs.WithContext(ctx)); err == nil {
		logger.Debug("Reachability computed.", "reached", len(res.Order), "unreachable", res.Unreachable())
	}

	switch algo {
	case AlgoDijkstra:
		d, err := dijkstra.Dijkstra(g, source)
		if err != nil {
			return err
		}
		printDistances(w, "Dijkstra", source, d)

	case AlgoBellmanFord:
		d, err := bellmanford.BellmanFord(g, source)
		if err != nil {
			return err
		}
		printDistances(w, "Bellman-Ford", source, d)

	case AlgoCompare:
		r, err := compare.Compare(g, source, compare.WithLogger(logger))
		if err != nil {
			return err
		}
		printComparison(w, r)

	default:
		return fmt.Errorf("unknown algorithm %q", algo)
	}

	return nil
}
