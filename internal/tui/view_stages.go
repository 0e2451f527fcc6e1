package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/lyra/internal/pipeline"
	"github.com/sant0-9/lyra/internal/tui/styles"
)

// stageNames lists the stages shown above a result, in pipeline order.
var stageNames = []pipeline.Stage{
	pipeline.StageDeconstruct,
	pipeline.StageDiagnose,
	pipeline.StageDevelop,
	pipeline.StageDeliver,
}

// renderStages marks each stage the last run reported as done.
func (a *App) renderStages() string {
	reached := -1
	for _, p := range a.state.stages {
		if p.StageIndex > reached {
			reached = p.StageIndex
		}
	}

	var parts []string
	for _, stage := range stageNames {
		var icon string
		var style lipgloss.Style

		if int(stage) < reached {
			// Completed
			icon = "[x]"
			style = lipgloss.NewStyle().Foreground(styles.ColorSuccess)
		} else if int(stage) == reached {
			// Current
			icon = "[>]"
			style = lipgloss.NewStyle().Foreground(styles.ColorSecondary).Bold(true)
		} else {
			// Pending
			icon = "[ ]"
			style = lipgloss.NewStyle().Foreground(styles.ColorMuted)
		}
		parts = append(parts, style.Render(icon+" "+stage.String()))
	}

	return strings.Join(parts, "  ")
}
