package tui

import (
	"context"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/signdeck/internal/config"
	"github.com/alexander-akhmetov/signdeck/internal/event"
	"github.com/alexander-akhmetov/signdeck/internal/journal"
	"github.com/alexander-akhmetov/signdeck/internal/rng"
	"github.com/alexander-akhmetov/signdeck/internal/storage"
	"github.com/alexander-akhmetov/signdeck/internal/wordlist"
)

// relay forwards store notifications to a handler set after the model exists.
type relay struct {
	h event.Handler
}

func (r *relay) emit(e event.Event) { r.h.Emit(e) }

func newTestStore(t *testing.T, lists map[string]string) (*wordlist.Store, *relay) {
	t.Helper()
	r := &relay{}
	store, err := wordlist.Open(context.Background(), storage.NewMemorySlot(),
		wordlist.WithRand(rng.NewSequence(0)), wordlist.WithNotifier(r.emit))
	require.NoError(t, err)
	for _, name := range []string{"Animaux", "Couleurs"} {
		if words, ok := lists[name]; ok {
			_, err := store.Create(context.Background(), name, words)
			require.NoError(t, err)
		}
	}
	return store, r
}

func newTestModel(t *testing.T, store *wordlist.Store, r *relay) Model {
	t.Helper()
	m := New(Options{
		Store:    store,
		Defaults: config.PracticeConfig{Duration: 3},
		LogsDir:  t.TempDir(),
		Rand:     rng.NewSequence(1),
	})
	r.h = m.Handler()
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = send(t, m, keyRunes(string(r)))
	}
	return m
}

func TestDashboardEmpty(t *testing.T) {
	store, r := newTestStore(t, nil)
	m := newTestModel(t, store, r)
	assert.Equal(t, screenDashboard, m.screen)
	assert.Contains(t, m.View(), "No word lists yet")
}

func TestDashboardListsCards(t *testing.T) {
	store, r := newTestStore(t, map[string]string{
		"Animaux":  "un\ndeux\ntrois\nquatre\ncinq\nsix\nsept\nhuit",
		"Couleurs": "rouge",
	})
	m := newTestModel(t, store, r)

	view := m.View()
	assert.Contains(t, view, "Animaux")
	assert.Contains(t, view, "8 words")
	assert.Contains(t, view, "+2 more")
	assert.Contains(t, view, "Couleurs")
}

func TestCreateFlow(t *testing.T) {
	store, r := newTestStore(t, nil)
	m := newTestModel(t, store, r)

	m, _ = send(t, m, keyRunes("n"))
	require.Equal(t, screenCreate, m.screen)

	m = typeText(t, m, "Animaux")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "chat")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(t, m, " chien ")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, screenDashboard, m.screen)
	lists := store.List()
	require.Len(t, lists, 1)
	assert.Equal(t, "Animaux", lists[0].Name)
	assert.Equal(t, []string{"chat", "chien"}, lists[0].Words)
	assert.Contains(t, m.View(), `List "Animaux" created with 2 words`)
}

func TestCreateValidation(t *testing.T) {
	store, r := newTestStore(t, nil)
	m := newTestModel(t, store, r)

	m, _ = send(t, m, keyRunes("n"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, screenCreate, m.screen)
	assert.Equal(t, "Please fill in all fields", m.formErr)
	assert.Contains(t, m.View(), "Please fill in all fields")

	m = typeText(t, m, "Vide")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, screenCreate, m.screen)
	assert.Zero(t, store.Len())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenDashboard, m.screen)
}

func TestSettingsAdjust(t *testing.T) {
	store, r := newTestStore(t, map[string]string{"Animaux": "chat\nchien\noiseau"})
	m := newTestModel(t, store, r)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenSettings, m.screen)
	assert.Equal(t, 3, m.duration)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 3, m.duration, "duration must not go below the minimum")

	for range 40 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, 30, m.duration)

	m, _ = send(t, m, keyRunes("r"))
	assert.True(t, m.random)
	assert.Contains(t, m.View(), "[ Random ]")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenDashboard, m.screen)
}

func TestPracticeFlow(t *testing.T) {
	store, r := newTestStore(t, map[string]string{"Animaux": "chat\nchien\noiseau"})
	m := newTestModel(t, store, r)

	m, _ = send(t, m, keyRunes("p"))
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenPractice, m.screen)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "CHAT")

	gen := m.engine.Generation()
	for range 3 {
		m, cmd = send(t, m, tickMsg{gen: gen})
		require.NotNil(t, cmd, "live ticks are rescheduled")
	}
	assert.Contains(t, m.View(), "CHIEN")
	assert.Equal(t, 1, m.completed)

	// pause freezes the countdown
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	s, ok := m.engine.Session()
	require.True(t, ok)
	assert.False(t, s.IsPlaying)
	assert.Contains(t, m.View(), "PAUSED")
	m, cmd = send(t, m, tickMsg{gen: gen})
	assert.NotNil(t, cmd)
	after, _ := m.engine.Session()
	assert.Equal(t, s.TimeLeft, after.TimeLeft)

	m, _ = send(t, m, keyRunes("s"))
	assert.Equal(t, screenDashboard, m.screen)
	assert.False(t, m.engine.Active())

	logs, err := journal.FindLogs(m.logsDir, "")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	data, err := os.ReadFile(logs[0].Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#1 chat")
	assert.Contains(t, string(data), "#2 chien")
	assert.Contains(t, string(data), "Exit reason: stopped")
	assert.Contains(t, string(data), "Words completed: 1")
}

func TestStaleTickDropped(t *testing.T) {
	store, r := newTestStore(t, map[string]string{"Animaux": "chat\nchien"})
	m := newTestModel(t, store, r)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	oldGen := m.engine.Generation()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenPractice, m.screen)
	require.NotEqual(t, oldGen, m.engine.Generation())

	m, cmd := send(t, m, tickMsg{gen: oldGen})
	assert.Nil(t, cmd)
	s, _ := m.engine.Session()
	assert.Equal(t, 3, s.TimeLeft)
}

func TestPracticeEndsWhenListDeleted(t *testing.T) {
	store, r := newTestStore(t, map[string]string{"Animaux": "chat\nchien"})
	m := newTestModel(t, store, r)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	_, err := store.Delete(context.Background(), m.target.ID)
	require.NoError(t, err)

	m, cmd := send(t, m, tickMsg{gen: m.engine.Generation()})
	assert.Nil(t, cmd)
	assert.Equal(t, screenDashboard, m.screen)
	assert.False(t, m.engine.Active())
}

func TestViewDoesNotEndSession(t *testing.T) {
	store, r := newTestStore(t, map[string]string{"Animaux": "chat\nchien"})
	m := newTestModel(t, store, r)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenPractice, m.screen)
	_, err := store.Delete(context.Background(), m.target.ID)
	require.NoError(t, err)

	assert.Contains(t, m.View(), "This list is no longer available.")
	assert.True(t, m.engine.Active())
	st, _ := m.shared.lastStatus()
	assert.Equal(t, event.KindSuccess, st.Kind)

	m, _ = send(t, m, tickMsg{gen: m.engine.Generation()})
	assert.Equal(t, screenDashboard, m.screen)
	st, _ = m.shared.lastStatus()
	assert.Equal(t, event.KindError, st.Kind)
}

func TestDeleteConfirm(t *testing.T) {
	store, r := newTestStore(t, map[string]string{"Animaux": "chat", "Couleurs": "rouge"})
	m := newTestModel(t, store, r)

	m, _ = send(t, m, keyRunes("j"), keyRunes("d"))
	assert.Contains(t, m.View(), `Delete "Couleurs"?`)
	m, _ = send(t, m, keyRunes("x"))
	assert.Equal(t, 2, store.Len())

	m, _ = send(t, m, keyRunes("d"), keyRunes("y"))
	require.Equal(t, 1, store.Len())
	assert.Equal(t, "Animaux", store.List()[0].Name)
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.View(), `List "Couleurs" deleted`)
}

func TestStartListOption(t *testing.T) {
	store, _ := newTestStore(t, map[string]string{"Animaux": "chat\nchien"})
	id := store.List()[0].ID

	m := New(Options{
		Store:       store,
		Defaults:    config.PracticeConfig{Duration: 50, Random: false},
		LogsDir:     t.TempDir(),
		StartListID: id,
	})
	assert.Equal(t, screenPractice, m.screen)
	assert.NotNil(t, m.Init())
	s, ok := m.engine.Session()
	require.True(t, ok)
	assert.Equal(t, 30, s.Duration)
	m.finishSession("quit")
}

func TestQuit(t *testing.T) {
	store, r := newTestStore(t, nil)
	m := newTestModel(t, store, r)
	_, cmd := send(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowSize(t *testing.T) {
	store, r := newTestStore(t, nil)
	m := newTestModel(t, store, r)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 60, m.bar.Width)
}
