package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/lyra/internal/pipeline"
	"github.com/sant0-9/lyra/internal/tui/styles"
)

const logo = `
 ██╗  ██╗   ██╗██████╗  █████╗
 ██║  ╚██╗ ██╔╝██╔══██╗██╔══██╗
 ██║   ╚████╔╝ ██████╔╝███████║
 ██║    ╚██╔╝  ██╔══██╗██╔══██║
 ███████╗██║   ██║  ██║██║  ██║
 ╚══════╝╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝
`

func (a *App) renderWelcome() string {
	boxWidth := min(70, a.width-4)

	// Logo
	logoRendered := styles.Logo.Render(logo)

	// Subtitle
	subtitle := styles.Subtitle.Render("AI Prompt Optimization Specialist")

	// Greeting
	greeting := styles.Box.
		Width(boxWidth).
		Render(wrapText(pipeline.WelcomeMessage(), boxWidth-4))

	// Input
	inputBox := styles.Box.
		Width(boxWidth).
		BorderForeground(styles.ColorPrimary).
		Render(a.state.input.View())

	// Status bar
	statusBar := styles.StatusBar.Render(a.defaultsLine() + "  [Enter] Optimize  [?] Help  [Esc] Quit")

	// Combine main content
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		"",
		greeting,
		"",
		inputBox,
	)

	// Center content on screen (leave room for status bar)
	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	// Status bar centered at bottom
	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}

// defaultsLine shows the platform and mode used when a line names neither.
func (a *App) defaultsLine() string {
	return "Defaults: " + a.state.config.TargetPlatform().String() + "/" + a.state.config.DefaultModeName()
}
