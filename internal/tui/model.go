package tui

import (
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexander-akhmetov/signdeck/internal/config"
	"github.com/alexander-akhmetov/signdeck/internal/debug"
	"github.com/alexander-akhmetov/signdeck/internal/domain"
	"github.com/alexander-akhmetov/signdeck/internal/event"
	"github.com/alexander-akhmetov/signdeck/internal/journal"
	"github.com/alexander-akhmetov/signdeck/internal/practice"
	"github.com/alexander-akhmetov/signdeck/internal/rng"
	"github.com/alexander-akhmetov/signdeck/internal/wordlist"
)

type screen int

const (
	screenDashboard screen = iota
	screenCreate
	screenSettings
	screenPractice
)

func (s screen) String() string {
	switch s {
	case screenDashboard:
		return "Word lists"
	case screenCreate:
		return "New list"
	case screenSettings:
		return "Practice settings"
	case screenPractice:
		return "Practice"
	default:
		return "unknown"
	}
}

// previewWords is how many words a dashboard card shows before "+N more".
const previewWords = 6

// Options configures a Model.
type Options struct {
	Store    *wordlist.Store
	Defaults config.PracticeConfig
	LogsDir  string
	Rand     rng.Source
	// StartListID opens the practice view on this list right away.
	StartListID string
}

// shared holds state that must survive the model being copied by value:
// the open journal and the last notification.
type shared struct {
	mu        sync.Mutex
	journal   *journal.Journal
	status    event.Event
	hasStatus bool
}

// handleStatus records a notification for the status line.
func (s *shared) handleStatus(e event.Event) {
	if e.Kind == event.KindWord {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = e
	s.hasStatus = true
}

// handleSession records a practice notification and journals it.
func (s *shared) handleSession(e event.Event) {
	s.handleStatus(e)
	s.mu.Lock()
	j := s.journal
	s.mu.Unlock()
	if j != nil {
		j.Handler().Emit(e)
	}
}

func (s *shared) lastStatus() (event.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.hasStatus
}

func (s *shared) setJournal(j *journal.Journal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journal = j
}

// closeJournal writes the exit summary and closes the open journal, if any.
func (s *shared) closeJournal(reason string, completed int) {
	s.mu.Lock()
	j := s.journal
	s.journal = nil
	s.mu.Unlock()
	if j == nil {
		return
	}
	j.Exit(reason, completed)
	if err := j.Close(); err != nil {
		debug.Logf("tui: %v", err)
	}
}

// Model is the bubbletea model for the TUI.
type Model struct {
	store   *wordlist.Store
	engine  *practice.Engine
	shared  *shared
	logsDir string
	keys    keyMap
	help    help.Model

	screen        screen
	cursor        int
	confirmDelete bool

	nameInput  textinput.Model
	wordsInput textarea.Model
	formFocus  int
	formErr    string

	target    domain.WordList
	random    bool
	duration  int
	completed int
	bar       progress.Model

	width   int
	height  int
	initCmd tea.Cmd
}

// New creates a Model on the dashboard, or on the practice view when
// opts.StartListID is set.
func New(opts Options) Model {
	sh := &shared{}
	r := opts.Rand
	if r == nil {
		r = rng.New(0)
	}

	name := textinput.New()
	name.Placeholder = "e.g. Animaux"
	name.CharLimit = 80
	name.Prompt = ""

	words := textarea.New()
	words.Placeholder = "One word per line"
	words.ShowLineNumbers = false
	words.SetHeight(8)

	m := Model{
		store:      opts.Store,
		engine:     practice.New(opts.Store, practice.WithRand(r), practice.WithNotifier(sh.handleSession)),
		shared:     sh,
		logsDir:    opts.LogsDir,
		keys:       defaultKeyMap(),
		help:       help.New(),
		nameInput:  name,
		wordsInput: words,
		random:     opts.Defaults.Random,
		duration:   practice.ClampDuration(opts.Defaults.Duration),
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}

	if opts.StartListID != "" {
		if l, ok := opts.Store.Get(opts.StartListID); ok {
			m.target = l
			m.initCmd = m.startPractice()
		} else {
			sh.handleStatus(event.Error("List not found"))
		}
	}
	return m
}

// Handler returns the sink the TUI uses for list store notifications.
func (m Model) Handler() event.Handler {
	return m.shared.handleStatus
}

// Engine returns the practice engine driven by the model.
func (m Model) Engine() *practice.Engine {
	return m.engine
}

// tickMsg is one second of practice time for the stream of generation gen.
type tickMsg struct {
	gen uint64
}
