package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/signdeck/internal/debug"
	"github.com/alexander-akhmetov/signdeck/internal/rng"
	"github.com/alexander-akhmetov/signdeck/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive dashboard",
	Args:  cobra.NoArgs,
	RunE:  runUI,
}

func runUI(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, 0, func(ctx context.Context, a *app) error {
		return runTUI(ctx, a, nil)
	})
}

// runTUI opens the TUI, optionally going straight to a practice session.
func runTUI(_ context.Context, a *app, run *practiceRun) error {
	opts := tui.Options{
		Store:    a.store,
		Defaults: a.cfg.Practice,
		LogsDir:  a.cfg.ResolvedLogsDir(),
		Rand:     rng.New(a.cfg.Seed),
	}
	if run != nil {
		opts.StartListID = run.List.ID
		opts.Defaults.Random = run.Random
		opts.Defaults.Duration = run.Duration
		opts.Rand = run.Rand
	}

	m := tui.New(opts)
	a.replaceHandlers(m.Handler())
	defer a.replaceHandlers(a.notes.WriteEvent)

	// Debug output would draw over the alternate screen.
	sink := debugSink()
	defer sink.Close()
	prev := debug.SetOutput(sink)
	defer debug.SetOutput(prev)

	return tui.Run(m)
}

// debugSink returns where debug logs go while the TUI owns the terminal:
// SIGNDECK_DEBUG_FILE when set and writable, otherwise nowhere.
func debugSink() io.WriteCloser {
	if path := os.Getenv("SIGNDECK_DEBUG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) //nolint:gosec // user-chosen log path
		if err == nil {
			return f
		}
	}
	return discardCloser{}
}

type discardCloser struct{}

func (discardCloser) Write(p []byte) (int, error) { return len(p), nil }
func (discardCloser) Close() error                { return nil }
