package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"patternui/internal/panel"
	"patternui/internal/telemetry"
	"patternui/internal/ui"
	"patternui/internal/ui/web"
)

// run loads the menu and either writes the HTML layout to stdout or runs the
// terminal UI on it. A nil stdin leaves input to the terminal.
func run(ctx context.Context, cfg config, stdin io.Reader, stdout io.Writer) error {
	logger, closeLog, err := newLogger(cfg.logFile, cfg.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	menu, err := loadMenu(cfg.menu)
	if err != nil {
		return err
	}
	def := menu.DefaultActive
	if cfg.defaultPanel != "" {
		def = cfg.defaultPanel
	}

	p := ui.NewProvider(menu.Items,
		ui.WithTiles(cfg.tiles),
		ui.WithToggleButton(cfg.toggleButton),
		ui.WithDefaultActive(def),
		ui.WithLogger(logger),
	)
	logger.Info("menu loaded", "source", cfg.menu, "items", len(menu.Items), "active", p.ActivePath().String())

	if cfg.html {
		return web.Layout(p, nil, html.P(g.Text(pageBody(p)))).Render(stdout)
	}

	tp, err := telemetry.NewOTLPProvider(ctx)
	if err != nil {
		return err
	}
	rec := telemetry.NewRecorder(tp)
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rec.Shutdown(sctx); err != nil {
			logger.Warn("telemetry shutdown", "error", err)
		}
	}()
	unsubscribe := p.Subscribe(func(ev ui.Event) {
		logger.Debug("sidebar event", "kind", ev.Kind.String(), "id_path", ev.IDPath)
		rec.Record(ctx, ev.SpanName(), ev.Attributes())
	})
	defer unsubscribe()

	content := ui.NewContentView(pageBody(p))
	content.Page = func(msg ui.SelectedMsg) string {
		return pageFor(panel.At(p.Items(), msg.Path), msg.ID)
	}
	shell := ui.NewShellView(p, nil, content)

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
		tea.WithOutput(stdout),
	}
	if stdin != nil {
		opts = append(opts, tea.WithInput(stdin))
	}
	prog := tea.NewProgram(shell.AsTeaModel(), opts...)
	_, err = prog.Run()
	return err
}

func pageBody(p *ui.Provider[string, page]) string {
	it := p.Active()
	if it == nil {
		return "Nothing selected."
	}
	return pageFor(it, it.ID)
}

func pageFor(it *entry, id string) string {
	if it == nil || it.Extra.Body == "" {
		return id
	}
	var b strings.Builder
	b.WriteString(it.Title)
	b.WriteString("\n\n")
	b.WriteString(it.Extra.Body)
	return b.String()
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "patternui: %v\n", err)
		os.Exit(2)
	}
	if err := run(context.Background(), cfg, nil, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "patternui: %v\n", err)
		os.Exit(1)
	}
}
