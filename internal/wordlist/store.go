// Package wordlist implements the list store: the durable collection of word
// lists that can be practiced. Every mutation rewrites the whole collection
// to a single storage slot; the collection is read once when the store opens.
package wordlist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexander-akhmetov/signdeck/internal/debug"
	"github.com/alexander-akhmetov/signdeck/internal/domain"
	"github.com/alexander-akhmetov/signdeck/internal/event"
	"github.com/alexander-akhmetov/signdeck/internal/rng"
	"github.com/alexander-akhmetov/signdeck/internal/storage"
)

// Store owns the word lists. It is safe for concurrent use.
type Store struct {
	slot   storage.Slot
	rand   rng.Source
	now    func() time.Time
	newID  func() string
	notify event.Handler

	mu    sync.RWMutex
	lists []domain.WordList
}

// Option configures a Store.
type Option func(*Store)

// WithRand sets the source used to pick palette colors.
func WithRand(r rng.Source) Option {
	return func(s *Store) { s.rand = r }
}

// WithClock sets the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides id generation.
func WithIDFunc(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// WithNotifier sets the sink for user-facing notifications.
func WithNotifier(h event.Handler) Option {
	return func(s *Store) { s.notify = h }
}

// Open reads the collection from slot and returns a ready store. An empty
// slot yields an empty store; a malformed blob is decoded best effort.
func Open(ctx context.Context, slot storage.Slot, opts ...Option) (*Store, error) {
	s := &Store{
		slot:  slot,
		rand:  rng.New(0),
		now:   time.Now,
		newID: newListID,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := slot.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrEmpty):
		debug.Logf("wordlist: %s is empty", slot.Describe())
	case err != nil:
		return nil, fmt.Errorf("load word lists: %w", err)
	default:
		s.lists = Decode(data)
		debug.Logf("wordlist: loaded %d lists from %s", len(s.lists), slot.Describe())
	}

	return s, nil
}

// Create validates input and appends a new list. rawText holds one word per
// line; lines are trimmed and blank ones dropped.
func (s *Store) Create(ctx context.Context, name, rawText string) (domain.WordList, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(rawText) == "" {
		err := &domain.ValidationError{Field: "name", Message: "Please fill in all fields"}
		if name != "" {
			err.Field = "words"
		}
		s.notify.Emit(event.Error(err.Message))
		return domain.WordList{}, err
	}

	words := domain.ParseWords(rawText)
	if len(words) == 0 {
		err := &domain.ValidationError{Field: "words", Message: "Please add at least one word"}
		s.notify.Emit(event.Error(err.Message))
		return domain.WordList{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := domain.WordList{
		ID:        s.uniqueID(),
		Name:      name,
		Words:     words,
		Color:     domain.Palette[s.rand.IntN(len(domain.Palette))],
		CreatedAt: s.now(),
	}

	next := append(cloneAll(s.lists), list)
	if err := s.persist(ctx, next); err != nil {
		s.notify.Emit(event.Error(fmt.Sprintf("Could not save list %q", name)))
		return domain.WordList{}, err
	}
	s.lists = next

	s.notify.Emit(event.Success(fmt.Sprintf("List %q created with %d words", list.Name, len(list.Words))))
	return list.Clone(), nil
}

// Delete removes the list with id and returns it.
func (s *Store) Delete(ctx context.Context, id string) (domain.WordList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		err := &domain.NotFoundError{Kind: "word list", Ref: id}
		s.notify.Emit(event.Error(err.Error()))
		return domain.WordList{}, err
	}
	removed := s.lists[idx]

	next := make([]domain.WordList, 0, len(s.lists)-1)
	next = append(next, s.lists[:idx]...)
	next = append(next, s.lists[idx+1:]...)
	if err := s.persist(ctx, next); err != nil {
		s.notify.Emit(event.Error(fmt.Sprintf("Could not delete list %q", removed.Name)))
		return domain.WordList{}, err
	}
	s.lists = next

	s.notify.Emit(event.Success(fmt.Sprintf("List %q deleted", removed.Name)))
	return removed.Clone(), nil
}

// List returns all lists in insertion order.
func (s *Store) List() []domain.WordList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.lists)
}

// Len returns the number of lists.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lists)
}

// Get returns the current version of the list with id.
func (s *Store) Get(id string) (domain.WordList, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.WordList{}, false
	}
	return s.lists[idx].Clone(), true
}

// Slot returns the underlying storage slot.
func (s *Store) Slot() storage.Slot {
	return s.slot
}

func (s *Store) persist(ctx context.Context, lists []domain.WordList) error {
	data, err := Encode(lists)
	if err != nil {
		return err
	}
	if err := s.slot.Save(ctx, data); err != nil {
		return fmt.Errorf("save word lists: %w", err)
	}
	return nil
}

// uniqueID draws ids until one is free. Callers hold s.mu.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.lists {
		if s.lists[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(lists []domain.WordList) []domain.WordList {
	out := make([]domain.WordList, len(lists))
	for i := range lists {
		out[i] = lists[i].Clone()
	}
	return out
}

// newListID returns a time-ordered UUIDv7, falling back to v4 if the clock
// source fails.
func newListID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
