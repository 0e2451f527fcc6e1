package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/lyra/internal/tui/styles"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(styles.ColorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Input format
	format := []string{
		"  [DETAIL|BASIC] using [Platform] - Your prompt",
		"",
		"  DETAIL using ChatGPT - Write me a marketing email",
		"  BASIC using Claude - Help with my resume",
		"  Explain recursion to a beginner",
		"",
		"  Platforms: chatgpt, claude, gemini, other",
		"  Missing parts use the defaults from /settings",
	}
	formatBox := styles.Box.
		Width(60).
		Render(strings.Join(format, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, formatBox))
	b.WriteString("\n\n")

	// Commands
	commands := []string{
		"  /help, /h      Show this help",
		"  /settings, /s  Default platform and mode",
		"  /quit, /q      Quit lyra (also quit, exit, q)",
	}

	commandsBox := styles.Box.
		Width(60).
		Render(strings.Join(commands, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, commandsBox))
	b.WriteString("\n\n")

	// Keyboard shortcuts
	shortcuts := []string{
		"  Esc            Go back / Quit",
		"  Enter          Optimize the prompt",
		"  Up/Down PgUp   Scroll a result",
		"  ?              Help (when the input is empty)",
	}

	shortcutsTitle := styles.Subtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styles.Box.
		Width(60).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := styles.StatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
