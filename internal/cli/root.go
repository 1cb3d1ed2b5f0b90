// Package cli implements the command-line interface for signdeck.
package cli

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexander-akhmetov/signdeck/internal/config"
	"github.com/alexander-akhmetov/signdeck/internal/debug"
	"github.com/alexander-akhmetov/signdeck/internal/event"
	"github.com/alexander-akhmetov/signdeck/internal/rng"
	"github.com/alexander-akhmetov/signdeck/internal/storage"
	"github.com/alexander-akhmetov/signdeck/internal/timing"
	"github.com/alexander-akhmetov/signdeck/internal/wordlist"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

var (
	flagEphemeral bool
	flagStorage   string
)

var rootCmd = &cobra.Command{
	Use:   "signdeck",
	Short: "Flashcard trainer for sign-language word lists",
	Long: `signdeck keeps named word lists and shows them one word at a time,
in order or at random, with a per-word countdown. Run without a command to
open the interactive dashboard.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runUI,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep lists in memory only for this run")
	rootCmd.PersistentFlags().StringVar(&flagStorage, "storage", "", "Storage backend: file, sqlite, redis, memory")

	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(configCmd)
}

// app bundles what every command needs: the merged config, the open store
// and the stderr notification writer.
type app struct {
	cfg   *config.Config
	slot  storage.Slot
	store *wordlist.Store
	notes *Writer

	mu       sync.Mutex
	handlers []event.Handler
}

// loadConfig loads, overrides and validates the configuration.
func loadConfig(duration int) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	backend := flagStorage
	if flagEphemeral {
		backend = config.BackendMemory
	}
	cfg.ApplyCLIFlags(duration, backend)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openApp opens the configured storage slot and the list store on it.
func openApp(ctx context.Context, cfg *config.Config) (*app, error) {
	slot, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	timing.Log("storage opened")

	isTTY := term.IsTerminal(int(os.Stderr.Fd()))
	a := &app{cfg: cfg, slot: slot, notes: NewWriter(os.Stderr, isTTY, terminalWidth())}
	a.subscribe(a.notes.WriteEvent)

	store, err := wordlist.Open(ctx, slot,
		wordlist.WithRand(rng.New(cfg.Seed)),
		wordlist.WithNotifier(a.emit),
	)
	if err != nil {
		_ = slot.Close()
		return nil, err
	}
	a.store = store
	timing.Log("store opened")
	debug.Logf("cli: %d lists in %s", store.Len(), slot.Describe())
	return a, nil
}

// subscribe adds h to the handlers notified of store events.
func (a *app) subscribe(h event.Handler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handlers = append(a.handlers, h)
}

// replaceHandlers swaps every handler for hs. The TUI uses it to take over
// the terminal from the stderr writer.
func (a *app) replaceHandlers(hs ...event.Handler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handlers = hs
}

func (a *app) emit(e event.Event) {
	a.mu.Lock()
	hs := append([]event.Handler(nil), a.handlers...)
	a.mu.Unlock()
	event.Fanout(hs...)(e)
}

func (a *app) Close() error {
	return a.slot.Close()
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w
	}
	return 80
}

func stdinIsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func stdoutIsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
