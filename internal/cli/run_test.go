package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/bellmanford"
	"github.com/katalvlaran/sssp/core"
)

const scenarioOne = `
vertices = 4
source   = 0

edge {
  from   = 0
  to     = 1
  weight = 1
}
edge {
  from   = 1
  to     = 2
  weight = 2
}
edge {
  from   = 0
  to     = 2
  weight = 4
}
edge {
  from   = 2
  to     = 3
  weight = 1
}
`

const negativeCycle = `
vertices = 3
edge {
  from   = 0
  to     = 1
  weight = 1
}
edge {
  from   = 1
  to     = 2
  weight = -1
}
edge {
  from   = 2
  to     = 0
  weight = -1
}
`

func writeGraph(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

func runConfig(t *testing.T, cfg Config) (string, error) {
	t.Helper()
	c, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	err = Run(context.Background(), c, strings.NewReader(""), out)

	return out.String(), err
}

func TestRun_FileDijkstra(t *testing.T) {
	out, err := runConfig(t, Config{
		GraphPath: writeGraph(t, scenarioOne),
		Source:    -1,
		Algorithm: AlgoDijkstra,
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Edges added to the graph:\nEdge from 0 to 1 with weight 1\n")
	assert.Contains(t, out, "Shortest distances from vertex 0 using Dijkstra:\n"+
		"Vertex 0 -> Distance 0\n"+
		"Vertex 1 -> Distance 1\n"+
		"Vertex 2 -> Distance 3\n"+
		"Vertex 3 -> Distance 4\n")
}

func TestRun_SourceFlagOverridesFile(t *testing.T) {
	out, err := runConfig(t, Config{
		GraphPath: writeGraph(t, scenarioOne),
		Source:    2,
		Algorithm: AlgoBellmanFord,
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Shortest distances from vertex 2 using Bellman-Ford:\n"+
		"Vertex 0 -> Distance inf\n"+
		"Vertex 1 -> Distance inf\n"+
		"Vertex 2 -> Distance 0\n"+
		"Vertex 3 -> Distance 1\n")
}

func TestRun_BellmanFordNegativeCycle(t *testing.T) {
	_, err := runConfig(t, Config{
		GraphPath: writeGraph(t, negativeCycle),
		Source:    -1,
		Algorithm: AlgoBellmanFord,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, bellmanford.ErrNegativeCycle))
}

func TestRun_CompareNegativeCycle(t *testing.T) {
	out, err := runConfig(t, Config{
		GraphPath: writeGraph(t, negativeCycle),
		Source:    0,
		Algorithm: AlgoCompare,
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Comparing Dijkstra and Bellman-Ford Algorithms:")
	assert.Contains(t, out, "Dijkstra's Algorithm:\nShortest distances: {0: 0, 1: 1, 2: 0}\nTime taken: ")
	assert.Contains(t, out, "Bellman-Ford Algorithm:\nbellmanford: graph contains a negative weight cycle")
	assert.Contains(t, out, "Recommendation:\nBellman-Ford failed due to negative weight cycles. Use Dijkstra for non-negative weights.\n")
}

func TestRun_CompareAgreeing(t *testing.T) {
	out, err := runConfig(t, Config{
		GraphPath: writeGraph(t, scenarioOne),
		Source:    -1,
		Algorithm: AlgoCompare,
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Dijkstra's Algorithm:\nShortest distances: {0: 0, 1: 1, 2: 3, 3: 4}\n")
	assert.Contains(t, out, "Bellman-Ford Algorithm:\nShortest distances: {0: 0, 1: 1, 2: 3, 3: 4}\n")
	assert.Contains(t, out, "Recommendation:\n")
}

func TestRun_InvalidSource(t *testing.T) {
	_, err := runConfig(t, Config{
		GraphPath: writeGraph(t, scenarioOne),
		Source:    9,
		Algorithm: AlgoDijkstra,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidVertex))
}

func TestRun_MissingFile(t *testing.T) {
	_, err := runConfig(t, Config{
		GraphPath: filepath.Join(t.TempDir(), "absent.hcl"),
		Source:    -1,
		Algorithm: AlgoDijkstra,
	})
	require.Error(t, err)
}

func TestRun_RandomIsDeterministicForSeed(t *testing.T) {
	cfg := Config{
		RandomVertices: 6,
		RandomEdges:    9,
		Seed:           42,
		SeedSet:        true,
		Source:         -1,
		Algorithm:      AlgoBellmanFord,
	}
	first, err := runConfig(t, cfg)
	require.NoError(t, err)
	second, err := runConfig(t, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 9, strings.Count(first, "Edge from "))
	assert.Contains(t, first, "using Bellman-Ford:\nVertex 0 -> Distance 0\n")
}

func TestRun_RandomTooManyEdges(t *testing.T) {
	_, err := runConfig(t, Config{
		RandomVertices: 3,
		RandomEdges:    4,
		SeedSet:        true,
		Source:         -1,
		Algorithm:      AlgoDijkstra,
	})
	require.Error(t, err)
}

func TestRun_RandomTooManyVertices(t *testing.T) {
	_, err := runConfig(t, Config{
		RandomVertices: 1 << 50,
		RandomEdges:    1,
		SeedSet:        true,
		Source:         -1,
		Algorithm:      AlgoDijkstra,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTooManyVertices))
}
