package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexander-akhmetov/signdeck/internal/config"
	"github.com/alexander-akhmetov/signdeck/internal/debug"
	"github.com/alexander-akhmetov/signdeck/internal/domain"
	"github.com/alexander-akhmetov/signdeck/internal/journal"
	"github.com/alexander-akhmetov/signdeck/internal/practice"
)

// tickInterval is the wall-clock length of one practice tick.
var tickInterval = time.Second

// tickCmd schedules the next tick for generation gen. Ticks for a generation
// the engine has moved past are dropped in Update and not rescheduled, so a
// stop/start never leaves two streams running.
func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, tea.WindowSize())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = max(20, min(msg.Width-8, 60))
		m.nameInput.Width = max(20, min(msg.Width-12, 60))
		m.wordsInput.SetWidth(max(20, min(msg.Width-4, 64)))
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQ) {
			m.finishSession("quit")
			return m, tea.Quit
		}
		switch m.screen {
		case screenCreate:
			return m.updateCreate(msg)
		case screenSettings:
			return m.updateSettings(msg)
		case screenPractice:
			return m.updatePractice(msg)
		default:
			return m.updateDashboard(msg)
		}
	}

	if m.screen == screenCreate {
		return m.updateInputs(msg)
	}
	return m, nil
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	res := m.engine.Tick(msg.gen)
	switch res.Kind {
	case practice.TickStale:
		if m.screen == screenPractice && !m.engine.Active() {
			m.shared.closeJournal("list no longer available", m.completed)
			m.screen = screenDashboard
			m.clampCursor()
		}
		return m, nil
	case practice.TickEnded:
		debug.Logf("tui: session on %s ended", m.target.ID)
		m.shared.closeJournal("list no longer available", m.completed)
		m.screen = screenDashboard
		m.clampCursor()
		return m, nil
	default:
		m.completed = res.Session.CompletedWords
		return m, tickCmd(msg.gen)
	}
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lists := m.store.List()

	if m.confirmDelete {
		m.confirmDelete = false
		if key.Matches(msg, m.keys.Confirm) && m.cursor < len(lists) {
			if _, err := m.store.Delete(context.Background(), lists[m.cursor].ID); err != nil {
				debug.Logf("tui: delete failed: %v", err)
			}
			m.clampCursor()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(lists)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.New):
		return m.openCreate()
	case key.Matches(msg, m.keys.Practice):
		if m.cursor < len(lists) {
			m.target = lists[m.cursor]
			m.screen = screenSettings
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(lists) {
			m.confirmDelete = true
		}
	}
	return m, nil
}

func (m Model) openCreate() (tea.Model, tea.Cmd) {
	m.screen = screenCreate
	m.formErr = ""
	m.formFocus = 0
	m.nameInput.Reset()
	m.wordsInput.Reset()
	m.wordsInput.Blur()
	return m, tea.Batch(m.nameInput.Focus(), textinput.Blink)
}

func (m Model) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenDashboard
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.formFocus = 1 - m.formFocus
		if m.formFocus == 0 {
			m.wordsInput.Blur()
			return m, m.nameInput.Focus()
		}
		m.nameInput.Blur()
		return m, tea.Batch(m.wordsInput.Focus(), textarea.Blink)

	case key.Matches(msg, m.keys.Save):
		l, err := m.store.Create(context.Background(), m.nameInput.Value(), m.wordsInput.Value())
		if err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				m.formErr = ve.Message
			} else {
				m.formErr = err.Error()
			}
			return m, nil
		}
		m.screen = screenDashboard
		m.cursor = max(0, m.store.Len()-1)
		debug.Logf("tui: created list %s", l.ID)
		return m, nil
	}

	return m.updateInputs(msg)
}

// updateInputs forwards msg to the focused form field.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.wordsInput, cmd = m.wordsInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenDashboard
	case key.Matches(msg, m.keys.Random):
		m.random = !m.random
	case key.Matches(msg, m.keys.Shorter):
		m.duration = max(config.MinDuration, m.duration-1)
	case key.Matches(msg, m.keys.Longer):
		m.duration = min(config.MaxDuration, m.duration+1)
	case key.Matches(msg, m.keys.Start):
		cmd := m.startPractice()
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePractice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Pause):
		if _, err := m.engine.TogglePause(); err != nil {
			m.screen = screenDashboard
		}
	case key.Matches(msg, m.keys.Stop):
		m.finishSession("stopped")
		m.screen = screenDashboard
	}
	return m, nil
}

// startPractice opens a journal, starts the engine on m.target and returns
// the first tick of the new stream.
func (m *Model) startPractice() tea.Cmd {
	mode := "sequential"
	if m.random {
		mode = "random"
	}
	j, err := journal.New(journal.Config{
		LogsDir:  m.logsDir,
		ListID:   m.target.ID,
		ListName: m.target.Name,
		Mode:     mode,
		Duration: m.duration,
	})
	if err != nil {
		debug.Logf("tui: journal disabled: %v", err)
	} else {
		m.shared.setJournal(j)
	}

	if _, err := m.engine.Start(m.target.ID, m.random, m.duration); err != nil {
		m.shared.closeJournal("list not found", 0)
		m.screen = screenDashboard
		return nil
	}
	m.completed = 0
	m.screen = screenPractice
	return tickCmd(m.engine.Generation())
}

// finishSession stops the engine and closes the journal. No-op when idle.
func (m *Model) finishSession(reason string) {
	s, ok := m.engine.Session()
	if !ok {
		return
	}
	m.engine.Stop()
	m.shared.closeJournal(reason, s.CompletedWords)
}

func (m *Model) clampCursor() {
	m.cursor = max(0, min(m.cursor, m.store.Len()-1))
}
