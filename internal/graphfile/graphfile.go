// Package graphfile loads a graph description from an HCL file.
//
// A graph file declares the vertex count, an optional source vertex and any
// number of edge blocks:
//
//	vertices = 4
//	source   = 0
//
//	edge {
//	  from   = 0
//	  to     = 1
//	  weight = 1
//	}
//
// Edge attributes are expressions evaluated with two variables, `vertices`
// and `last` (= vertices - 1), and the functions abs, max, min and negate.
// A pair may appear once: repeating (u, v), or adding (v, u) after (u, v),
// fails with ErrDuplicateEdge.
package graphfile

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/internal/ctxlog"
)

var (
	// ErrDuplicateEdge indicates an edge whose vertex pair, in either
	// direction, was already declared.
	ErrDuplicateEdge = errors.New("graphfile: duplicate edge")

	// ErrBadValue indicates an attribute that did not evaluate to a usable number.
	ErrBadValue = errors.New("graphfile: bad value")
)

// File is a decoded graph description.
type File struct {
	Graph     *core.Graph
	Source    int
	HasSource bool
}

// hclGraphFile is the top-level structure of a graph file for decoding.
type hclGraphFile struct {
	Vertices int        `hcl:"vertices"`
	Source   *int       `hcl:"source,optional"`
	Edges    []*hclEdge `hcl:"edge,block"`
}

// hclEdge keeps raw expressions so they can be evaluated once the vertex
// count is known.
type hclEdge struct {
	From   hcl.Expression `hcl:"from"`
	To     hcl.Expression `hcl:"to"`
	Weight hcl.Expression `hcl:"weight"`
}

// functions available inside every expression of a graph file.
var functions = map[string]function.Function{
	"abs":    stdlib.AbsoluteFunc,
	"max":    stdlib.MaxFunc,
	"min":    stdlib.MinFunc,
	"negate": stdlib.NegateFunc,
}

// Load parses and decodes the graph file at path.
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctxlog.With(ctx, "path", path))
	logger.Debug("Loading graph file.")

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to parse %s: %w", path, diags)
	}

	f, err := decode(hclFile.Body, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Graph file loaded.",
		"vertices", f.Graph.VertexCount(), "edges", f.Graph.EdgeCount())

	return f, nil
}

// Parse decodes a graph description held in memory. filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to parse %s: %w", filename, diags)
	}

	return decode(hclFile.Body, filename)
}

func decode(body hcl.Body, filename string) (*File, error) {
	var parsed hclGraphFile
	diags := gohcl.DecodeBody(body, &hcl.EvalContext{Functions: functions}, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to decode %s: %w", filename, diags)
	}

	g, err := core.NewGraph(parsed.Vertices)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %s: %w", filename, err)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"vertices": cty.NumberIntVal(int64(parsed.Vertices)),
			"last":     cty.NumberIntVal(int64(parsed.Vertices - 1)),
		},
		Functions: functions,
	}

	seen := make(map[[2]int]struct{}, len(parsed.Edges))
	for i, e := range parsed.Edges {
		var from, to int
		var weight float64
		if err := evalInto(e.From, evalCtx, &from); err != nil {
			return nil, fmt.Errorf("graphfile: %s: edge %d: from: %w", filename, i+1, err)
		}
		if err := evalInto(e.To, evalCtx, &to); err != nil {
			return nil, fmt.Errorf("graphfile: %s: edge %d: to: %w", filename, i+1, err)
		}
		if err := evalInto(e.Weight, evalCtx, &weight); err != nil {
			return nil, fmt.Errorf("graphfile: %s: edge %d: weight: %w", filename, i+1, err)
		}

		if _, dup := seen[[2]int{from, to}]; dup {
			return nil, fmt.Errorf("%w: %s: edge %d (%d, %d)", ErrDuplicateEdge, filename, i+1, from, to)
		}
		if _, dup := seen[[2]int{to, from}]; dup {
			return nil, fmt.Errorf("%w: %s: edge %d (%d, %d) reverses an earlier edge", ErrDuplicateEdge, filename, i+1, from, to)
		}
		if err := g.AddEdge(from, to, weight); err != nil {
			return nil, fmt.Errorf("graphfile: %s: edge %d: %w", filename, i+1, err)
		}
		seen[[2]int{from, to}] = struct{}{}
	}

	f := &File{Graph: g}
	if parsed.Source != nil {
		if err := g.CheckVertex(*parsed.Source); err != nil {
			return nil, fmt.Errorf("graphfile: %s: source: %w", filename, err)
		}
		f.Source = *parsed.Source
		f.HasSource = true
	}

	return f, nil
}

// evalInto evaluates expr and converts the result into target, which must
// be a pointer to a Go number type.
func evalInto(expr hcl.Expression, ctx *hcl.EvalContext, target interface{}) error {
	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return diags
	}
	if val.IsNull() || !val.IsKnown() {
		return fmt.Errorf("%w: value is null or unknown", ErrBadValue)
	}
	if err := gocty.FromCtyValue(val, target); err != nil {
		return fmt.Errorf("%w: %v", ErrBadValue, err)
	}

	return nil
}
