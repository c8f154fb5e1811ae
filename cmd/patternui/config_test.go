package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := parseFlags(nil, env(nil), &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, cfg.tiles)
	assert.False(t, cfg.toggleButton)
	assert.False(t, cfg.html)
	assert.Empty(t, cfg.menu)
	assert.Equal(t, slog.LevelInfo, cfg.logLevel)
}

func TestParseFlags_EnvAndOverride(t *testing.T) {
	vars := env(map[string]string{
		"PATTERNUI_MENU":          "menu.yaml",
		"PATTERNUI_DEFAULT_PANEL": "settings",
		"LOG_LEVEL":               "debug",
	})

	cfg, err := parseFlags(nil, vars, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "menu.yaml", cfg.menu)
	assert.Equal(t, "settings", cfg.defaultPanel)
	assert.Equal(t, slog.LevelDebug, cfg.logLevel)

	cfg, err = parseFlags([]string{"-menu", "other.json", "-default", "help", "-tiles=false", "-toggle-button"}, vars, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "other.json", cfg.menu)
	assert.Equal(t, "help", cfg.defaultPanel)
	assert.False(t, cfg.tiles)
	assert.True(t, cfg.toggleButton)
}

func TestParseFlags_Errors(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseFlags([]string{"-nope"}, env(nil), &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Usage: patternui")

	_, err = parseFlags([]string{"extra"}, env(nil), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected arguments")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel(" DEBUG "))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patternui.log")
	logger, closeLog, err := newLogger(path, slog.LevelDebug)
	require.NoError(t, err)
	logger.Debug("hello", "id", "home")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"module":"patternui"`)
}

func TestRun_HTMLSnapshot(t *testing.T) {
	var out bytes.Buffer
	cfg := config{tiles: true, html: true, logLevel: slog.LevelInfo}
	require.NoError(t, run(t.Context(), cfg, nil, &out))

	html := out.String()
	assert.Contains(t, html, `id="side-nav"`)
	assert.Contains(t, html, `class="side-nav__tiles"`)
	assert.Contains(t, html, "Welcome.")
}

func TestRun_MenuFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	menu := strings.Join([]string{
		"defaultActive: docs",
		"items:",
		"  - id: docs",
		"    title: Docs",
		"    extra:",
		"      body: Read me.",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(menu), 0o644))

	var out bytes.Buffer
	cfg := config{menu: path, tiles: false, html: true}
	require.NoError(t, run(t.Context(), cfg, nil, &out))
	assert.Contains(t, out.String(), "section-no-tiles")
	assert.Contains(t, out.String(), "Read me.")
}

func TestRun_MissingMenu(t *testing.T) {
	cfg := config{menu: filepath.Join(t.TempDir(), "missing.json"), html: true}
	err := run(t.Context(), cfg, nil, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read menu")
}

func TestRun_TUIStartsProgram(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var out bytes.Buffer
	cfg := config{tiles: true, logLevel: slog.LevelInfo}
	err := run(ctx, cfg, strings.NewReader(""), &out)
	require.ErrorIs(t, err, tea.ErrProgramKilled)
	assert.ErrorIs(t, err, context.Canceled)
}
