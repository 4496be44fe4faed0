package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/sssp/compare"
	"github.com/katalvlaran/sssp/core"
)

func printEdges(w io.Writer, header string, edges []core.Edge) {
	fmt.Fprintf(w, "\n%s\n", header)
	for _, e := range edges {
		fmt.Fprintln(w, e)
	}
}

func printDistances(w io.Writer, algoName string, source int, d core.Distances) {
	fmt.Fprintf(w, "Shortest distances from vertex %d using %s:\n", source, algoName)
	for v, dist := range d {
		fmt.Fprintf(w, "Vertex %d -> Distance %s\n", v, core.FormatDistance(dist))
	}
}

func printComparison(w io.Writer, r *compare.Report) {
	fmt.Fprint(w, "\nComparing Dijkstra and Bellman-Ford Algorithms:\n\n")

	fmt.Fprintf(w, "Dijkstra's Algorithm:\nShortest distances: %s\nTime taken: %.6f seconds\n\n",
		r.Dijkstra, r.DijkstraTime.Seconds())

	if r.BellmanFordErr != nil {
		fmt.Fprintf(w, "Bellman-Ford Algorithm:\n%v\nTime taken: %.6f seconds\n\n",
			r.BellmanFordErr, r.BellmanFordTime.Seconds())
	} else {
		fmt.Fprintf(w, "Bellman-Ford Algorithm:\nShortest distances: %s\nTime taken: %.6f seconds\n\n",
			r.BellmanFord, r.BellmanFordTime.Seconds())
	}

	fmt.Fprintln(w, "Recommendation:")
	fmt.Fprintln(w, r.Recommendation)
}
