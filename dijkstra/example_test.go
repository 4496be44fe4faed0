// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// ExampleDijkstra computes distances on a small directed graph.
// Complexity: O((V+E) log V).
func ExampleDijkstra() {
	// 1) Create a graph over vertices 0..3.
	g := core.MustNewGraph(4)
	// 2) Add directed edges.
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 4)
	_ = g.AddEdge(2, 3, 1)

	// 3) Compute distances from 0.
	dist, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) 0→1→2 (3) beats the direct 0→2 (4).
	fmt.Println(dist)
	// Output: {0: 0, 1: 1, 2: 3, 3: 4}
}

// ExampleDijkstra_unreachable shows the infinity sentinel.
func ExampleDijkstra_unreachable() {
	g := core.MustNewGraph(3)
	_ = g.AddEdge(0, 1, 5)

	dist, _ := dijkstra.Dijkstra(g, 0)
	for v := range dist {
		fmt.Printf("Vertex %d -> Distance %s\n", v, core.FormatDistance(dist[v]))
	}
	// Output:
	// Vertex 0 -> Distance 0
	// Vertex 1 -> Distance 5
	// Vertex 2 -> Distance inf
}

// ExampleWithStrictWeights rejects a graph holding a negative edge.
func ExampleWithStrictWeights() {
	g := core.MustNewGraph(2)
	_ = g.AddEdge(0, 1, -2)

	_, err := dijkstra.Dijkstra(g, 0, dijkstra.WithStrictWeights())
	fmt.Println(err)
	// Output: dijkstra: negative edge weight encountered: edge 0→1 weight=-2
}
