package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/internal/ctxlog"
)

// errNotInt marks a line that does not hold a single integer.
var errNotInt = errors.New("not an integer")

// session is one interactive run: read a graph from the user, then serve the
// algorithm menu until the user exits or input ends.
type session struct {
	ctx context.Context
	cfg *Config
	in  *bufio.Scanner
	out io.Writer
}

func newSession(ctx context.Context, cfg *Config, in io.Reader, out io.Writer) *session {
	return &session{ctx: ctx, cfg: cfg, in: bufio.NewScanner(in), out: out}
}

// readLine prints prompt and returns the next input line, trimmed.
// io.EOF is returned once input is exhausted.
func (s *session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) readInt(prompt string) (int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, errNotInt
	}

	return n, nil
}

// run drives the session. Invalid setup input ends the session after a
// message, without an error; only an early end of input is reported.
func (s *session) run() error {
	fmt.Fprintln(s.out, "Shortest Path Finder using Dijkstra and Bellman-Ford algorithms")

	g, err := s.readGraph()
	if err != nil || g == nil {
		return err
	}

	printEdges(s.out, "Edges added to the graph:", g.Edges())

	return s.menu(g)
}

// readGraph returns (nil, nil) when the user gave invalid setup input.
func (s *session) readGraph() (*core.Graph, error) {
	vertices, err := s.readInt("Enter the number of vertices: ")
	switch {
	case errors.Is(err, errNotInt):
		fmt.Fprintln(s.out, "Invalid input. Please enter an integer for the number of vertices.")
		return nil, nil
	case err != nil:
		return nil, unexpectedEOF(err)
	case vertices <= 0:
		fmt.Fprintln(s.out, "Number of vertices must be greater than 0.")
		return nil, nil
	case vertices > core.MaxVertices:
		fmt.Fprintf(s.out, "Number of vertices must be at most %d.\n", core.MaxVertices)
		return nil, nil
	}

	g, err := core.NewGraph(vertices)
	if err != nil {
		return nil, err
	}

	limit := builder.MaxEdges(vertices)
	edges, err := s.readInt("Enter the number of edges: ")
	switch {
	case errors.Is(err, errNotInt):
		fmt.Fprintln(s.out, "Invalid input. Please enter an integer for the number of edges.")
		return nil, nil
	case err != nil:
		return nil, unexpectedEOF(err)
	case edges <= 0 || edges > limit:
		fmt.Fprintf(s.out, "Invalid number of edges. It should be between 1 and %d.\n", limit)
		return nil, nil
	}

	fmt.Fprintln(s.out, "\nChoose edge generation method:")
	fmt.Fprintln(s.out, "1. Generate random edges")
	fmt.Fprintln(s.out, "2. Enter edges manually")
	method, err := s.readInt("Enter your choice (1 or 2): ")
	switch {
	case errors.Is(err, errNotInt):
		fmt.Fprintln(s.out, "Invalid input. Please enter either 1 or 2.")
		return nil, nil
	case err != nil:
		return nil, unexpectedEOF(err)
	}

	switch method {
	case 1:
		seed := seedFor(s.cfg)
		ctxlog.FromContext(s.ctx).Debug("Generating random edges.", "vertices", vertices, "edges", edges, "seed", seed)
		if err := builder.RandomEdges(g, edges, builder.WithSeed(seed)); err != nil {
			return nil, err
		}
		printEdges(s.out, "Random edges generated successfully:", g.Edges())
	case 2:
		if err := s.readEdges(g, edges); err != nil {
			return nil, err
		}
	default:
		fmt.Fprintln(s.out, "Invalid choice! Please restart the program and choose either 1 or 2.")
		return nil, nil
	}

	return g, nil
}

// readEdges reads "u v w" lines until count edges are accepted. A repeated
// pair, in either direction, is refused.
func (s *session) readEdges(g *core.Graph, count int) error {
	n := g.VertexCount()
	seen := make(map[[2]int]struct{}, count)

	fmt.Fprintln(s.out, "Enter edges in the format (source destination weight):")
	for len(seen) < count {
		line, err := s.readLine(fmt.Sprintf("Enter edge %d/%d: ", len(seen)+1, count))
		if err != nil {
			return unexpectedEOF(err)
		}

		u, v, w, ok := parseEdgeLine(line)
		if !ok {
			fmt.Fprintln(s.out, "Invalid input format. Please enter the edge as three space-separated integers.")
			continue
		}
		_, dup := seen[[2]int{u, v}]
		_, rev := seen[[2]int{v, u}]
		if dup || rev {
			fmt.Fprintln(s.out, "Duplicate edge detected. Please enter a unique edge.")
			continue
		}
		if !g.HasVertex(u) || !g.HasVertex(v) {
			fmt.Fprintf(s.out, "Invalid vertices. Enter vertices between 0 and %d.\n", n-1)
			continue
		}

		if err := g.AddEdge(u, v, float64(w)); err != nil {
			return err
		}
		seen[[2]int{u, v}] = struct{}{}
	}

	return nil
}

func parseEdgeLine(line string) (u, v, w int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, false
	}

	var vals [3]int
	for i, f := range fields {
		x, err := strconv.Atoi(f)
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = x
	}

	return vals[0], vals[1], vals[2], true
}

// menu serves the algorithm menu. End of input is treated like option 4.
func (s *session) menu(g *core.Graph) error {
	for {
		fmt.Fprintln(s.out, "\nChoose an option:")
		fmt.Fprintln(s.out, "1. Run Dijkstra")
		fmt.Fprintln(s.out, "2. Run Bellman-Ford")
		fmt.Fprintln(s.out, "3. Compare Dijkstra and Bellman-Ford")
		fmt.Fprintln(s.out, "4. Exit")

		choice, err := s.readInt("Enter your choice: ")
		switch {
		case errors.Is(err, errNotInt):
			fmt.Fprintln(s.out, "Invalid input. Please enter a valid choice.")
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out, "\nExiting the program.")
			return nil
		case err != nil:
			return err
		}

		var algo string
		switch choice {
		case 1:
			algo = AlgoDijkstra
		case 2:
			algo = AlgoBellmanFord
		case 3:
			algo = AlgoCompare
		case 4:
			fmt.Fprintln(s.out, "Exiting the program.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice! Please select a valid option.")
			continue
		}

		start, err := s.readInt("Enter the starting vertex: ")
		switch {
		case errors.Is(err, errNotInt):
			fmt.Fprintln(s.out, "Invalid input. Please enter an integer for the starting vertex.")
			continue
		case err != nil:
			return unexpectedEOF(err)
		}

		if err := solve(s.ctx, s.out, g, algo, start); err != nil {
			fmt.Fprintln(s.out, err)
		}
	}
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("interactive session: %w", io.ErrUnexpectedEOF)
	}

	return err
}
