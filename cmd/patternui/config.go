package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// config holds the parsed CLI configuration. Flags override env vars.
type config struct {
	menu         string
	tiles        bool
	toggleButton bool
	defaultPanel string
	html         bool
	logFile      string
	logLevel     slog.Level
}

func parseFlags(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	cfg := config{logLevel: parseLogLevel(getenv("LOG_LEVEL"))}

	fs := flag.NewFlagSet("patternui", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.menu, "menu", getenv("PATTERNUI_MENU"), "JSON or YAML menu file (default: built-in demo tree)")
	fs.BoolVar(&cfg.tiles, "tiles", true, "render the first level as tiles")
	fs.BoolVar(&cfg.toggleButton, "toggle-button", false, "hide the sidebar completely when toggled")
	fs.StringVar(&cfg.defaultPanel, "default", getenv("PATTERNUI_DEFAULT_PANEL"), "top-level id selected when nothing is active")
	fs.BoolVar(&cfg.html, "html", false, "print an HTML snapshot of the sidebar and exit")
	fs.StringVar(&cfg.logFile, "log", getenv("PATTERNUI_LOG"), "write debug logs to this file")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: patternui [flags]\n\n")
		fmt.Fprintf(stderr, "patternui shows a nested, collapsible navigation sidebar.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger writes JSON logs to path. The terminal belongs to the TUI, so
// without a path nothing is logged.
func newLogger(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	return slog.New(h).With("module", "patternui"), f.Close, nil
}
