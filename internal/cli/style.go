package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"lexstat/internal/domain"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

func heading(title string) string {
	rule := strings.Repeat("=", 70)
	return rule + "\n" + headingStyle.Render(title) + "\n" + rule
}

func success(format string, args ...any) string {
	return successStyle.Render("✓ " + fmt.Sprintf(format, args...))
}

func warning(format string, args ...any) string {
	return warningStyle.Render("⚠ " + fmt.Sprintf(format, args...))
}

func muted(s string) string {
	return mutedStyle.Render(s)
}

// formatTopWords renders ranked words as "кот (3), собака (2)".
func formatTopWords(words []domain.WordFrequency) string {
	if len(words) == 0 {
		return muted("нет")
	}
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("%s (%d)", w.Word, w.Count)
	}
	return strings.Join(parts, ", ")
}
