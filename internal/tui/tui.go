// Package tui implements the interactive terminal interface: a dashboard of
// word lists, a form to create one, practice settings and the practice view.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexander-akhmetov/signdeck/internal/timing"
)

// Run shows m full screen until the user quits. A session still running at
// exit is stopped and its journal closed.
func Run(m Model) error {
	timing.Log("tui.Run: start")
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.finishSession("quit")
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
