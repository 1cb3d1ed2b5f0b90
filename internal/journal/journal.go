// Package journal records practice runs. Every session started from the CLI
// or the TUI writes one timestamped file under the logs directory with the
// words shown, pauses, and an exit summary.
package journal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/alexander-akhmetov/signdeck/internal/dirs"
	"github.com/alexander-akhmetov/signdeck/internal/event"
)

// timestampFormat is the format for journal timestamps.
const timestampFormat = "2006-01-02 15:04:05"

// fileTimeFormat prefixes every journal filename.
const fileTimeFormat = "20060102-150405"

// Journal writes timestamped practice entries to a file and an optional
// io.Writer.
type Journal struct {
	mu        sync.Mutex
	file      *os.File
	writer    io.Writer
	now       func() time.Time
	startTime time.Time
	listName  string
	path      string
	words     int
}

// Config holds journal configuration.
type Config struct {
	LogsDir  string // Directory for journals (default: dirs.LogsDir())
	ListID   string
	ListName string
	Mode     string // "sequential" or "random"
	Duration int    // seconds per word
	Writer   io.Writer
	Now      func() time.Time
}

// New creates a journal file named <timestamp>-<list-name>.log.
func New(cfg Config) (*Journal, error) {
	logsDir := cfg.LogsDir
	if logsDir == "" {
		logsDir = dirs.LogsDir()
	}
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create logs dir: %w", err)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	start := now()

	f, path, err := createUnique(logsDir, start.Format(fileTimeFormat)+"-"+sanitizeFilename(cfg.ListName))
	if err != nil {
		return nil, err
	}

	j := &Journal{
		file:      f,
		writer:    cfg.Writer,
		now:       now,
		startTime: start,
		listName:  cfg.ListName,
		path:      path,
	}

	j.writef("# signdeck practice journal\n")
	j.writef("List: %s (%s)\n", cfg.ListName, cfg.ListID)
	j.writef("Mode: %s, %ds per word\n", cfg.Mode, cfg.Duration)
	j.writef("Started: %s\n", start.Format(timestampFormat))
	j.writef("%s\n\n", strings.Repeat("-", 60))

	return j, nil
}

// createUnique opens base.log, or base-2.log, base-3.log... if it exists.
func createUnique(dir, base string) (*os.File, string, error) {
	for i := 1; ; i++ {
		name := base + ".log"
		if i > 1 {
			name = fmt.Sprintf("%s-%d.log", base, i)
		}
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, os.ErrExist) || i >= 100 {
			return nil, "", fmt.Errorf("create journal file: %w", err)
		}
	}
}

// Path returns the journal file path.
func (j *Journal) Path() string {
	return j.path
}

// Printf writes a timestamped message.
func (j *Journal) Printf(format string, args ...any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stampf("%s", fmt.Sprintf(format, args...))
}

// Errorf writes a timestamped error message.
func (j *Journal) Errorf(format string, args ...any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stampf("ERROR: %s", fmt.Sprintf(format, args...))
}

// Word records a word being shown.
func (j *Journal) Word(w string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.words++
	j.stampf("#%d %s", j.words, w)
}

// Handler returns an event.Handler that records practice events.
func (j *Journal) Handler() event.Handler {
	return func(e event.Event) {
		switch e.Kind {
		case event.KindWord:
			j.Word(e.Text)
		case event.KindError:
			j.Errorf("%s", e.Text)
		default:
			j.Printf("%s", e.Text)
		}
	}
}

// Exit writes the run summary.
func (j *Journal) Exit(reason string, completed int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.writef("\n%s\n", strings.Repeat("-", 60))
	j.writef("Exit reason: %s\n", reason)
	j.writef("Words shown: %d\n", j.words)
	j.writef("Words completed: %d\n", completed)
	j.writef("Duration: %s\n", formatElapsed(j.now().Sub(j.startTime)))
	j.writef("Completed: %s\n", j.now().Format(timestampFormat))
}

// Close closes the journal file.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.file == nil {
		return nil
	}
	err := j.file.Close()
	j.file = nil
	if err != nil {
		return fmt.Errorf("close journal: %w", err)
	}
	return nil
}

func (j *Journal) stampf(format string, args ...any) {
	j.writef("[%s] %s\n", j.now().Format(timestampFormat), fmt.Sprintf(format, args...))
}

func (j *Journal) writef(format string, args ...any) {
	if j.file != nil {
		fmt.Fprintf(j.file, format, args...)
	}
	if j.writer != nil {
		fmt.Fprintf(j.writer, format, args...)
	}
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// sanitizeFilename converts a list name to a safe filename component.
func sanitizeFilename(s string) string {
	s = strings.NewReplacer("/", "-", "\\", "-", ":", "-", " ", "-").Replace(s)

	var clean strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			clean.WriteRune(r)
		}
	}
	result := clean.String()

	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}
	result = strings.Trim(result, "-")

	if len(result) > 100 {
		result = strings.TrimRight(result[:100], "-")
	}

	if result == "" {
		return "unnamed"
	}
	return result
}
