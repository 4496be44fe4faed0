package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(strings.NewReader(""), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok, "parse failures are reported as *cli.ExitError")
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_GraphFileWithDebugLogs(t *testing.T) {
	t.Parallel()

	src := `
vertices = 3
source   = 0
edge {
  from   = 0
  to     = 1
  weight = 5
}
`
	path := filepath.Join(t.TempDir(), "graph.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(strings.NewReader(""), out, logs, []string{"-algo", "dijkstra", "-log-level", "debug", "-log-format", "json", path})
	require.NoError(t, err)

	require.Contains(t, out.String(), "Vertex 0 -> Distance 0\nVertex 1 -> Distance 5\nVertex 2 -> Distance inf\n")
	require.Contains(t, logs.String(), `"msg":"Graph ready."`)
	require.Contains(t, logs.String(), `"unreachable":[2]`)
	require.Contains(t, logs.String(), `"mode":"file"`)
	require.Contains(t, logs.String(), `"algo":"dijkstra"`)
}

func TestRun_InteractiveExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(strings.NewReader("2\n1\n2\n0 1 3\n4\n"), out, &bytes.Buffer{}, nil)

	require.NoError(t, err)
	require.Contains(t, out.String(), "Exiting the program.")
}
