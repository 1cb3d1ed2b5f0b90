// Package practice drives a single flashcard session through
// start → advance → pause/resume → stop. The engine holds only the list id
// and resolves words from its ListSource on every call, so it never works
// from a stale copy of the list.
package practice

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alexander-akhmetov/signdeck/internal/config"
	"github.com/alexander-akhmetov/signdeck/internal/debug"
	"github.com/alexander-akhmetov/signdeck/internal/domain"
	"github.com/alexander-akhmetov/signdeck/internal/event"
	"github.com/alexander-akhmetov/signdeck/internal/rng"
)

// ErrNoSession is returned by operations that need an active session.
var ErrNoSession = errors.New("no active practice session")

// ListSource resolves word lists by id. *wordlist.Store implements it.
type ListSource interface {
	Get(id string) (domain.WordList, bool)
}

// Session is a snapshot of the active practice session.
type Session struct {
	ListID   string
	ListName string

	CurrentWordIndex int
	IsPlaying        bool
	IsRandom         bool
	Duration         int // seconds per word
	TimeLeft         int // seconds left for the current word
	CompletedWords   int // advances since start, not clamped to TotalWords
	TotalWords       int // word count when the session started
}

// ClampDuration forces seconds into the allowed per-word range.
func ClampDuration(seconds int) int {
	return max(config.MinDuration, min(seconds, config.MaxDuration))
}

// Engine owns at most one session. All methods are safe for concurrent use.
type Engine struct {
	lists  ListSource
	rand   rng.Source
	notify event.Handler

	mu      sync.Mutex
	session *Session
	gen     uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the source used for random order.
func WithRand(r rng.Source) Option {
	return func(e *Engine) { e.rand = r }
}

// WithNotifier sets the sink for session notifications.
func WithNotifier(h event.Handler) Option {
	return func(e *Engine) { e.notify = h }
}

// New returns an idle engine reading lists from src.
func New(src ListSource, opts ...Option) *Engine {
	e := &Engine{lists: src, rand: rng.New(0)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start replaces any current session with a new one on listID. duration is
// clamped into [config.MinDuration, config.MaxDuration].
func (e *Engine) Start(listID string, random bool, duration int) (Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, ok := e.lists.Get(listID)
	if !ok || l.Len() == 0 {
		err := &domain.NotFoundError{Kind: "word list", Ref: listID}
		e.notify.Emit(event.Error(err.Error()))
		return Session{}, err
	}

	idx := 0
	if random {
		idx = e.rand.IntN(l.Len())
	}
	duration = ClampDuration(duration)

	e.gen++
	e.session = &Session{
		ListID:           l.ID,
		ListName:         l.Name,
		CurrentWordIndex: idx,
		IsPlaying:        true,
		IsRandom:         random,
		Duration:         duration,
		TimeLeft:         duration,
		TotalWords:       l.Len(),
	}
	debug.Logf("practice: start list=%s random=%v duration=%d gen=%d", l.ID, random, duration, e.gen)

	mode := "sequential"
	if random {
		mode = "random"
	}
	e.notify.Emit(event.Info(fmt.Sprintf("Practicing %q (%s, %ds per word)", l.Name, mode, duration)))
	e.notify.Emit(event.Word(l.Words[idx]))
	return *e.session, nil
}

// TogglePause flips IsPlaying and returns the new value.
func (e *Engine) TogglePause() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return false, ErrNoSession
	}
	e.session.IsPlaying = !e.session.IsPlaying
	if e.session.IsPlaying {
		e.notify.Emit(event.Info("Resumed"))
	} else {
		e.notify.Emit(event.Info("Paused"))
	}
	return e.session.IsPlaying, nil
}

// Stop discards the session. It is a no-op when idle.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return
	}
	done := e.session.CompletedWords
	e.endLocked()
	e.notify.Emit(event.Info(fmt.Sprintf("Practice stopped after %d words", done)))
}

// Tick applies one second of wall-clock time. gen must be the generation the
// tick was scheduled for; ticks from an earlier stream are ignored. Every
// playing tick resolves the list first, so a vanished list or an index past
// its end ends the session on the next tick, countdown or not.
func (e *Engine) Tick(gen uint64) TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	if s == nil || gen != e.gen {
		return TickResult{Kind: TickStale}
	}
	if !s.IsPlaying {
		return TickResult{Kind: TickPaused, Session: *s}
	}

	l, ok := e.lists.Get(s.ListID)
	if !ok || s.CurrentWordIndex >= l.Len() {
		e.collapseLocked()
		return TickResult{Kind: TickEnded}
	}

	if s.TimeLeft > 1 {
		s.TimeLeft--
		return TickResult{Kind: TickCountdown, Session: *s}
	}

	if s.IsRandom {
		s.CurrentWordIndex = e.rand.IntN(l.Len())
	} else {
		s.CurrentWordIndex = (s.CurrentWordIndex + 1) % l.Len()
	}
	s.TimeLeft = s.Duration
	s.CompletedWords++

	word := l.Words[s.CurrentWordIndex]
	e.notify.Emit(event.Word(word))
	return TickResult{Kind: TickAdvanced, Session: *s, Word: word}
}

// CurrentWord returns the word at the session's index in the live list.
// A vanished list or out-of-range index stops the session and returns "".
func (e *Engine) CurrentWord() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return ""
	}
	l, ok := e.lists.Get(e.session.ListID)
	if !ok {
		e.collapseLocked()
		return ""
	}
	w, ok := l.WordAt(e.session.CurrentWordIndex)
	if !ok {
		e.collapseLocked()
		return ""
	}
	return w
}

// PeekWord returns the current word without touching the session. ok is
// false when idle, or when the list has vanished or shrunk past the index;
// the next Tick then ends the session.
func (e *Engine) PeekWord() (word string, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return "", false
	}
	l, found := e.lists.Get(e.session.ListID)
	if !found {
		return "", false
	}
	return l.WordAt(e.session.CurrentWordIndex)
}

// Progress returns how much of the current word's time has elapsed, in
// [0, 1]. It is 0 when idle.
func (e *Engine) Progress() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	if s == nil || s.Duration <= 0 {
		return 0
	}
	p := float64(s.Duration-s.TimeLeft) / float64(s.Duration)
	return max(0, min(p, 1))
}

// Session returns a snapshot of the active session.
func (e *Engine) Session() (Session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

// Active reports whether a session exists.
func (e *Engine) Active() bool {
	_, ok := e.Session()
	return ok
}

// Generation identifies the current timer stream. It changes on every
// Start, Stop and collapse.
func (e *Engine) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gen
}

func (e *Engine) collapseLocked() {
	debug.Logf("practice: list %s no longer resolves, ending session", e.session.ListID)
	e.endLocked()
	e.notify.Emit(event.Error("The list being practiced is no longer available"))
}

func (e *Engine) endLocked() {
	e.session = nil
	e.gen++
}
