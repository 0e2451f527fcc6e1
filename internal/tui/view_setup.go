package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/lyra/internal/config"
	"github.com/sant0-9/lyra/internal/tui/styles"
)

var modeDescriptions = map[string]string{
	"basic":  "Quick fix with the core techniques",
	"detail": "Full technique set plus clarifying questions",
	"auto":   "Pick per prompt from its length and wording",
}

func (a *App) renderSetup() string {
	switch a.state.setupStep {
	case 0:
		return a.renderPlatformSelection()
	case 1:
		return a.renderModeSelection()
	default:
		return ""
	}
}

func (a *App) renderPlatformSelection() string {
	lines := make([]string, 0, len(config.Platforms))
	for i, p := range config.Platforms {
		lines = append(lines, choiceLine(i == a.state.selectedPlatform, p.Name, p.Description))
	}
	return a.renderChoices("Welcome! Which AI do you mostly write prompts for?", lines)
}

func (a *App) renderModeSelection() string {
	lines := make([]string, 0, len(modeChoices))
	for i, m := range modeChoices {
		lines = append(lines, choiceLine(i == a.state.selectedMode, m, modeDescriptions[m]))
	}
	return a.renderChoices("Default optimization mode:", lines)
}

func choiceLine(selected bool, name, desc string) string {
	if selected {
		return lipgloss.NewStyle().
			Foreground(styles.ColorSecondary).
			Bold(true).
			Render(fmt.Sprintf("> [x] %-8s %s", name, desc))
	}
	return lipgloss.NewStyle().
		Foreground(styles.ColorMuted).
		Render(fmt.Sprintf("  [ ] %-8s %s", name, desc))
}

func (a *App) renderChoices(heading string, lines []string) string {
	var b strings.Builder

	// Header
	header := styles.Logo.Render(logo)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n\n")

	// Title
	title := lipgloss.NewStyle().
		Bold(true).
		Render(heading)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	listBox := styles.Box.
		Width(64).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := styles.StatusBar.Render("[j/k] Navigate  [Enter] Select  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
