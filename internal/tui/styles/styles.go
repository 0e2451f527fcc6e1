// Package styles holds the lipgloss palette shared by the TUI and the
// one-shot report printer.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("#D946EF")
	ColorSecondary = lipgloss.Color("#38BDF8")
	ColorSuccess   = lipgloss.Color("#22C55E")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorError     = lipgloss.Color("#EF4444")
	ColorMuted     = lipgloss.Color("#6B7280")

	Logo = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	Subtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Section headings in a printed report
	Heading = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	Rule = lipgloss.NewStyle().
		Foreground(ColorMuted)

	Tip = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Italic(true)

	Question = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	Error = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)

	StatusBar = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
