package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexander-akhmetov/signdeck/internal/domain"
)

// fg wraps text with a 256-color foreground escape.
func fg(color int, text string) string {
	return fmt.Sprintf("\033[38;5;%dm%s\033[0m", color, text)
}

// fgBold wraps text with a 256-color foreground and bold.
func fgBold(color int, text string) string {
	return fmt.Sprintf("\033[1;38;5;%dm%s\033[0m", color, text)
}

// swatch renders a colored block for a palette color.
func swatch(c domain.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("●")
}
