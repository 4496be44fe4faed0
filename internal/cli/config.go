package cli

import (
	"errors"
	"fmt"
)

// Algorithm names accepted by -algo.
const (
	AlgoDijkstra    = "dijkstra"
	AlgoBellmanFord = "bellman-ford"
	AlgoCompare     = "compare"
)

// Config holds everything Run needs.
type Config struct {
	GraphPath string // .hcl graph file

	RandomVertices int // > 0 selects the random generator
	RandomEdges    int
	Seed           int64
	SeedSet        bool

	Source    int // < 0: take the file's source, else 0
	Algorithm string

	Interactive bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Interactive {
		return &cfg, nil
	}

	switch {
	case cfg.GraphPath == "" && cfg.RandomVertices <= 0:
		return nil, errors.New("either a graph file or -random with a positive vertex count is required")
	case cfg.GraphPath != "" && cfg.RandomVertices > 0:
		return nil, errors.New("a graph file and -random are mutually exclusive")
	case cfg.RandomVertices > 0 && cfg.RandomEdges <= 0:
		return nil, fmt.Errorf("-edges must be positive, got %d", cfg.RandomEdges)
	}

	switch cfg.Algorithm {
	case AlgoDijkstra, AlgoBellmanFord, AlgoCompare:
	default:
		return nil, fmt.Errorf("invalid algo %q: must be %q, %q or %q",
			cfg.Algorithm, AlgoDijkstra, AlgoBellmanFord, AlgoCompare)
	}

	return &cfg, nil
}

// mode names the graph source selected by c.
func (c *Config) mode() string {
	switch {
	case c.Interactive:
		return "interactive"
	case c.GraphPath != "":
		return "file"
	default:
		return "random"
	}
}
