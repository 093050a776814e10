package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/teologia"
	"github.com/fwojciec/teologia/inmem"
	"github.com/fwojciec/teologia/sqlite"
	tslog "github.com/fwojciec/teologia/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	// Run reports errors on stderr itself.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used when --db is set.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SourceService teologia.SourceService
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments. Every returned error has
// already been written to stderr as a single "error: " line.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("teologia"),
		kong.Description("Search theological and philosophical sources by author, work or topic."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return reportError(stderr, fmt.Errorf("failed to create parser: %w", err))
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return reportError(stderr, fmt.Errorf("no command specified. Run 'teologia --help' to see available commands"))
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return reportError(stderr, err)
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire the source service: SQLite when --db is set, otherwise the
	// compiled-in catalog.
	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			err = reportError(stderr, fmt.Errorf("failed to open database at %q: %w", cli.DB, err))
			fmt.Fprintf(stderr, "Hint: Set TEOLOGIA_DB to use a different database path\n")
			return err
		}
		defer m.Close()

		store := sqlite.NewSourceService(m.DB)
		m.SourceService = store
		deps.Writer = store
	} else {
		m.SourceService = inmem.NewSourceService()
	}
	deps.Sources = tslog.NewLoggingSourceService(m.SourceService, deps.Logger)

	return kongCtx.Run(deps)
}

// reportError prints an error raised outside a command and returns it.
// Commands print their own errors.
func reportError(w io.Writer, err error) error {
	fmt.Fprintf(w, "error: %s\n", err)
	return err
}
