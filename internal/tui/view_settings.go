package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/lyra/internal/config"
	"github.com/sant0-9/lyra/internal/tui/styles"
)

func (a *App) renderSettings() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(styles.ColorPrimary).
		Bold(true).
		Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	platform := config.Platforms[a.state.selectedPlatform]
	rows := []struct {
		label string
		value string
	}{
		{"Platform", platform.Name},
		{"Mode", modeChoices[a.state.selectedMode]},
	}

	var lines []string
	for i, row := range rows {
		cursor := "  "
		if i == a.state.settingsRow {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-10s < %s >", cursor, row.label, row.value)
		if i == a.state.settingsRow {
			line = lipgloss.NewStyle().Foreground(styles.ColorPrimary).Bold(true).Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", styles.Subtitle.Render("  "+platform.Description))

	configBox := styles.Box.
		Width(50).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configBox))
	b.WriteString("\n\n")

	if a.state.settingsSaved {
		path, _ := config.ConfigPath()
		saved := lipgloss.NewStyle().Foreground(styles.ColorSuccess).Render("Saved to " + path)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, saved))
		b.WriteString("\n\n")
	}

	// Instructions
	instructions := styles.StatusBar.Render("[Up/Down] Row  [Left/Right] Change  [Enter] Save  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
