package cli

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
)

// logLevels maps the accepted -log-level values to slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func parseLogLevel(s string) (slog.Level, error) {
	level, ok := logLevels[s]
	if !ok {
		names := make([]string, 0, len(logLevels))
		for name := range logLevels {
			names = append(names, "'"+name+"'")
		}
		sort.Strings(names)
		return 0, fmt.Errorf("invalid log-level %q: must be one of %s", s, strings.Join(names, ", "))
	}

	return level, nil
}

func checkLogFormat(s string) error {
	if s != "text" && s != "json" {
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", s)
	}

	return nil
}

// NewLogger builds the logger described by cfg.LogLevel and cfg.LogFormat,
// writing to w. Every record carries the run mode. It does not set the
// global logger.
func NewLogger(cfg *Config, w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if err := checkLogFormat(cfg.LogFormat); err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler).With("mode", cfg.mode()), nil
}
