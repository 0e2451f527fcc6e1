package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/sant0-9/lyra/internal/config"
	"github.com/sant0-9/lyra/internal/report"
	"github.com/sant0-9/lyra/internal/tui/styles"
)

func (a *App) renderResult() string {
	var b strings.Builder

	// Show what was asked
	if a.state.currentIntent != nil {
		asked := styles.Subtitle.Render("> " + truncate(a.state.currentIntent.RawPrompt, 60))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
		b.WriteString("\n")
	}

	target := styles.Subtitle.Render(fmt.Sprintf("Mode: %s  Platform: %s",
		strings.ToUpper(a.state.mode.String()), strings.ToUpper(a.state.platform.String())))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, target))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.renderStages()))
	b.WriteString("\n\n")

	// Result box
	resultBox := styles.Box.
		BorderForeground(styles.ColorPrimary).
		Render(a.state.viewport.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n\n")

	// Input for the next prompt
	inputBox := styles.Box.
		Width(min(70, a.width-4)).
		Render(a.state.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n")

	// Status bar
	status := styles.StatusBar.Render(a.tokenLine() + "  [Up/Down] Scroll  [Enter] Optimize  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return b.String()
}

// tokenLine compares the rough size of the prompt before and after.
func (a *App) tokenLine() string {
	if a.state.currentIntent == nil || a.state.result == nil {
		return ""
	}
	return fmt.Sprintf("~%d -> ~%d tokens",
		estimateTokens(a.state.currentIntent.Prompt),
		estimateTokens(a.state.result.OptimizedPrompt))
}

// refreshResult renders the current result into the viewport. glamour draws
// the markdown; if it fails the plain report is shown instead.
func (a *App) refreshResult() {
	if a.state.result == nil {
		return
	}
	width, _ := a.resultSize()

	content, err := a.renderMarkdown(resultMarkdown(a.state, a.state.config.ShowTechniques), width)
	if err != nil {
		a.logger.Debug("markdown render failed", zap.Error(err))
		content = report.Render(a.state.result, a.state.analysis, report.Options{
			Mode:           a.state.mode,
			ShowTechniques: a.state.config.ShowTechniques,
			Questions:      a.state.questions,
		})
	}
	a.state.viewport.SetContent(content)
	a.state.viewport.GotoTop()
}

func (a *App) renderMarkdown(md string, width int) (string, error) {
	if a.state.renderer == nil || a.state.rendererWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width-4),
		)
		if err != nil {
			return "", err
		}
		a.state.renderer = r
		a.state.rendererWidth = width
	}
	return a.state.renderer.Render(md)
}

// resultMarkdown lays a result out as markdown with the same sections the
// printed report uses.
func resultMarkdown(s *state, showTechniques bool) string {
	r := s.result
	long := report.UseComplexLayout(s.analysis, s.mode)

	var b strings.Builder
	b.WriteString("## Your optimized prompt\n\n")
	b.WriteString(r.OptimizedPrompt)
	b.WriteString("\n\n")

	if long {
		b.WriteString("## Key improvements\n\n")
	} else {
		b.WriteString("## What changed\n\n")
	}
	for _, imp := range r.Improvements {
		b.WriteString("- " + imp + "\n")
	}

	if len(r.TechniquesApplied) > 0 && (long || showTechniques) {
		b.WriteString("\n## Techniques applied\n\n")
		b.WriteString("`" + strings.Join(r.TechniquesApplied, "`, `") + "`\n")
	}

	if long && r.ProTip != "" {
		b.WriteString("\n## Pro tip\n\n> " + r.ProTip + "\n")
	}

	if s.mode == config.ModeDetail && len(s.questions) > 0 {
		b.WriteString("\n## Optional clarifications\n\n")
		for i, q := range s.questions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q)
		}
	}

	return b.String()
}
