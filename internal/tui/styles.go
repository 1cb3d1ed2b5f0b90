package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexander-akhmetov/signdeck/internal/domain"
	"github.com/alexander-akhmetov/signdeck/internal/event"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	wordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Padding(1, 4)

	tipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Faint(true)
)

// colorStyle returns a foreground style in the list's palette color.
func colorStyle(c domain.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// cardStyle frames the practice word in the list's color.
func cardStyle(c domain.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Hex())).
		Padding(0, 2).
		Align(lipgloss.Center)
}

func statusStyle(k event.Kind) lipgloss.Style {
	switch k {
	case event.KindSuccess:
		return runningStyle
	case event.KindError:
		return dangerStyle
	default:
		return labelStyle
	}
}
