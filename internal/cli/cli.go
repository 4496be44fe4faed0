package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Without any argument the interactive session is selected.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("sssp", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
sssp - shortest paths with Dijkstra and Bellman-Ford.

Usage:
  sssp [options] [GRAPH_PATH]
  sssp                      (interactive session)

Arguments:
  GRAPH_PATH
    Path to an .hcl graph file.

Options:
`)
		flagSet.PrintDefaults()
	}

	graphFlag := flagSet.String("graph", "", "Path to the graph file.")
	gFlag := flagSet.String("g", "", "Path to the graph file (shorthand).")
	randomFlag := flagSet.Int("random", 0, "Generate a random graph with this many vertices.")
	edgesFlag := flagSet.Int("edges", 0, "Number of random edges to generate.")
	seedFlag := flagSet.Int64("seed", 0, "Seed for the random generator. Time-based when unset.")
	sourceFlag := flagSet.Int("source", -1, "Source vertex. Defaults to the graph file's source, else 0.")
	algoFlag := flagSet.String("algo", AlgoCompare, "Algorithm: 'dijkstra', 'bellman-ford' or 'compare'.")
	interactiveFlag := flagSet.Bool("interactive", false, "Run the interactive session.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *graphFlag != "" {
		path = *graphFlag
	} else if *gFlag != "" {
		path = *gFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	seedSet := false
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	logFormat := strings.ToLower(*logFormatFlag)
	if err := checkLogFormat(logFormat); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if _, err := parseLogLevel(logLevel); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	interactive := *interactiveFlag || len(args) == 0
	config, err := NewConfig(Config{
		GraphPath:      path,
		RandomVertices: *randomFlag,
		RandomEdges:    *edgesFlag,
		Seed:           *seedFlag,
		SeedSet:        seedSet,
		Source:         *sourceFlag,
		Algorithm:      strings.ToLower(*algoFlag),
		Interactive:    interactive,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
