package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/gmdocs"
	"github.com/fwojciec/gmdocs/fs"
	"github.com/fwojciec/gmdocs/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened only when --db is set.
	DB *sqlite.DB

	// Builds stores the manual when --db is set. Tests may set it
	// before calling Run.
	Builds gmdocs.BuildService
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

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gmdocs"),
		kong.Description("Extract the GameMaker reference manual into a JSON document."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"base_url": gmdocs.DefaultBaseURL,
			"index":    fs.DefaultIndexFile,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no manual directory specified. Run 'gmdocs --help' for usage")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: newLogger(stderr, cli.Verbose),
	}

	if cli.DB != "" && !cli.Check {
		if m.Builds == nil {
			m.DB = sqlite.NewDB(cli.DB)
			if err := m.DB.Open(); err != nil {
				return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
			}
			defer m.Close()
			m.Builds = sqlite.NewBuildService(m.DB)
		}
		deps.Builds = m.Builds
	}

	return cli.Run(deps)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
