package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/sssp/bfs"
	"github.com/katalvlaran/sssp/core"
)

// ExampleBFS finds the fewest-edge route and the vertices the source
// cannot reach at all.
func ExampleBFS() {
	g := core.MustNewGraph(5)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 4)
	_ = g.AddEdge(2, 3, 1)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(3)

	fmt.Println(res.Order)
	fmt.Println(path)
	fmt.Println(res.Unreachable())
	// Output:
	// [0 1 2 3]
	// [0 2 3]
	// [4]
}
