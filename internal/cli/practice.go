package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/signdeck/internal/domain"
	"github.com/alexander-akhmetov/signdeck/internal/event"
	"github.com/alexander-akhmetov/signdeck/internal/journal"
	"github.com/alexander-akhmetov/signdeck/internal/practice"
	"github.com/alexander-akhmetov/signdeck/internal/rng"
)

// tickInterval is the wall-clock length of one practice tick.
var tickInterval = time.Second

var (
	practiceRandom   bool
	practiceDuration int
	practicePlain    bool
	practiceCount    int
)

var practiceCmd = &cobra.Command{
	Use:   "practice [id|name]",
	Short: "Practice a word list",
	Long: `Show the words of a list one at a time with a countdown per word.

Without --plain the interactive practice view opens. With --plain each word
is printed on its own line; the run ends after --count words, on Ctrl+C, or
when the list is deleted.

Examples:
  signdeck practice Animaux
  signdeck practice Animaux --random --duration 5
  signdeck practice Animaux --plain --count 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, practiceDuration, func(ctx context.Context, a *app) error {
			l, err := resolveList(ctx, a, args)
			if err != nil {
				return err
			}
			run := practiceRun{
				List:     l,
				Random:   a.cfg.Practice.Random,
				Duration: a.cfg.Practice.Duration,
				Count:    practiceCount,
				LogsDir:  a.cfg.ResolvedLogsDir(),
				Rand:     rng.New(a.cfg.Seed),
			}
			if cmd.Flags().Changed("random") {
				run.Random = practiceRandom
			}
			if practicePlain {
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
				return runPlainPractice(ctx, a, cmd.OutOrStdout(), run)
			}
			return runTUI(ctx, a, &run)
		})
	},
}

func init() {
	practiceCmd.Flags().BoolVarP(&practiceRandom, "random", "r", false, "Show words in random order")
	practiceCmd.Flags().IntVarP(&practiceDuration, "duration", "d", 0, "Seconds per word (3-30)")
	practiceCmd.Flags().BoolVar(&practicePlain, "plain", false, "Print words to stdout instead of opening the TUI")
	practiceCmd.Flags().IntVarP(&practiceCount, "count", "n", 0, "Stop after this many words (--plain only)")
}

// practiceRun holds the resolved settings of one practice command.
type practiceRun struct {
	List     domain.WordList
	Random   bool
	Duration int
	Count    int
	LogsDir  string
	Rand     rng.Source
}

func (r practiceRun) mode() string {
	if r.Random {
		return "random"
	}
	return "sequential"
}

// wordPrinter prints practice words to out, at most limit of them when
// limit > 0.
type wordPrinter struct {
	mu      sync.Mutex
	out     io.Writer
	limit   int
	printed int
}

// print reports whether word was printed.
func (p *wordPrinter) print(word string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.limit > 0 && p.printed >= p.limit {
		return false
	}
	p.printed++
	fmt.Fprintln(p.out, strings.ToUpper(word))
	return true
}

// runPlainPractice drives a session from a Scheduler and prints each word
// as it comes up. It returns when ctx is done, the count is reached, or the
// session ends.
func runPlainPractice(ctx context.Context, a *app, out io.Writer, run practiceRun) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	j, err := journal.New(journal.Config{
		LogsDir:  run.LogsDir,
		ListID:   run.List.ID,
		ListName: run.List.Name,
		Mode:     run.mode(),
		Duration: practice.ClampDuration(run.Duration),
	})
	if err != nil {
		return err
	}
	defer j.Close()

	// Only printed words are journaled.
	printer := &wordPrinter{out: out, limit: run.Count}
	journaled := j.Handler()
	engine := practice.New(a.store,
		practice.WithRand(run.Rand),
		practice.WithNotifier(func(e event.Event) {
			if e.Kind == event.KindWord {
				if printer.print(e.Text) {
					journaled.Emit(e)
				}
				return
			}
			event.Fanout(journaled, a.notes.WriteEvent)(e)
		}),
	)

	if _, err := engine.Start(run.List.ID, run.Random, run.Duration); err != nil {
		return err
	}

	var (
		completed    int
		countReached bool
	)
	sched := practice.NewScheduler(engine, func(res practice.TickResult) {
		if res.Kind != practice.TickAdvanced {
			return
		}
		completed = res.Session.CompletedWords
		if run.Count > 0 && completed >= run.Count {
			countReached = true
			cancel()
		}
	}, practice.WithInterval(tickInterval))

	sched.Run(ctx)
	<-sched.Done()
	sched.Stop()

	reason := "interrupted"
	switch {
	case countReached:
		reason = "count reached"
	case !engine.Active():
		reason = "list no longer available"
	}
	engine.Stop()
	j.Exit(reason, completed)
	return nil
}
