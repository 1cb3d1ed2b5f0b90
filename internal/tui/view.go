package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexander-akhmetov/signdeck/internal/domain"
)

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenCreate:
		body = m.viewCreate()
	case screenSettings:
		body = m.viewSettings()
	case screenPractice:
		body = m.viewPractice()
	default:
		body = m.viewDashboard()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("signdeck · " + m.screen.String()))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	if st, ok := m.shared.lastStatus(); ok {
		b.WriteString(statusStyle(st.Kind).Render(st.Text))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys.forScreen(m.screen))))
	return b.String()
}

func (m Model) viewDashboard() string {
	lists := m.store.List()
	if len(lists) == 0 {
		return tipStyle.Render("No word lists yet. Press n to create one.")
	}

	var b strings.Builder
	for i, l := range lists {
		cursor := "  "
		name := valueStyle.Render(l.Name)
		if i == m.cursor {
			cursor = selectedStyle.Render("› ")
			name = selectedStyle.Render(l.Name)
		}
		fmt.Fprintf(&b, "%s%s %s  %s\n", cursor, colorStyle(l.Color).Render("●"), name,
			labelStyle.Render(fmt.Sprintf("%d words · %s", l.Len(), createdLabel(l))))
		fmt.Fprintf(&b, "    %s\n", tipStyle.Render(previewLine(l)))
	}

	if m.confirmDelete && m.cursor < len(lists) {
		b.WriteString("\n")
		b.WriteString(dangerStyle.Render(fmt.Sprintf("Delete %q? y to confirm, any other key to cancel", lists[m.cursor].Name)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewCreate() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Name"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Words (one per line)"))
	b.WriteString("\n")
	b.WriteString(m.wordsInput.View())
	if m.formErr != "" {
		b.WriteString("\n")
		b.WriteString(dangerStyle.Render(m.formErr))
	}
	return b.String()
}

func (m Model) viewSettings() string {
	seq, rnd := "[ Sequential ]", "  Random  "
	if m.random {
		seq, rnd = "  Sequential  ", "[ Random ]"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n\n", colorStyle(m.target.Color).Render("●"),
		valueStyle.Render(m.target.Name), labelStyle.Render(fmt.Sprintf("%d words", m.target.Len())))
	fmt.Fprintf(&b, "%s  %s %s\n", labelStyle.Render("Order:   "), selectedStyle.Render(seq), selectedStyle.Render(rnd))
	fmt.Fprintf(&b, "%s  ◂ %s ▸", labelStyle.Render("Per word:"), valueStyle.Render(fmt.Sprintf("%ds", m.duration)))
	return b.String()
}

func (m Model) viewPractice() string {
	s, ok := m.engine.Session()
	if !ok {
		return tipStyle.Render("Session ended.")
	}
	word, ok := m.engine.PeekWord()
	if !ok {
		return tipStyle.Render("This list is no longer available.")
	}

	mode := "Sequential"
	if s.IsRandom {
		mode = "Random"
	}
	state := runningStyle.Render("PLAYING")
	if !s.IsPlaying {
		state = pausedStyle.Render("PAUSED")
	}

	card := cardStyle(m.target.Color).
		Width(max(24, min(m.width-4, 60))).
		Render(wordStyle.Render(strings.ToUpper(word)))

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", colorStyle(m.target.Color).Render("●"), valueStyle.Render(s.ListName))
	b.WriteString(card)
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.engine.Progress()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("Time left ")+valueStyle.Render(fmt.Sprintf("%ds", s.TimeLeft)),
		labelStyle.Render("   Completed ")+valueStyle.Render(fmt.Sprint(s.CompletedWords)),
		labelStyle.Render("   Mode ")+valueStyle.Render(mode),
		"   "+state,
	))
	return b.String()
}

func previewLine(l domain.WordList) string {
	shown, more := l.Preview(previewWords)
	s := strings.Join(shown, " · ")
	if more > 0 {
		s += fmt.Sprintf("  +%d more", more)
	}
	return s
}

func createdLabel(l domain.WordList) string {
	if l.CreatedAt.IsZero() {
		return "created ?"
	}
	return "created " + l.CreatedAt.Local().Format("2006-01-02")
}
