package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/lyra/internal/pipeline"
	"github.com/sant0-9/lyra/internal/tui/styles"
)

func (a *App) renderError() string {
	var b strings.Builder

	// Error icon and title
	title := styles.Error.Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Error message
	errMsg := "Unknown error"
	if a.state.err != nil {
		errMsg = a.state.err.Error()
	}

	errBox := styles.Box.
		Width(min(60, a.width-4)).
		BorderForeground(styles.ColorError).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	if suggestions := errorSuggestions(a.state.err); len(suggestions) > 0 {
		suggBox := styles.Box.
			Width(min(60, a.width-4)).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	// Actions
	status := styles.StatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

// errorSuggestions returns hints for errors the user can fix.
func errorSuggestions(err error) []string {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errNoPrompt):
		return []string{
			"Format: [DETAIL/BASIC] using [Platform] - Your prompt",
			"Example: DETAIL using ChatGPT - Write me a marketing email",
		}
	case errors.Is(err, errUnknownCommand):
		return []string{"Type /help to see the available commands"}
	case errors.Is(err, pipeline.ErrInvalidPrompt):
		return []string{"Paste the prompt as plain text"}
	}

	lower := strings.ToLower(err.Error())
	if strings.Contains(lower, "permission") || strings.Contains(lower, "read-only") {
		return []string{"Check that ~/.config/lyra is writable", "Or set LYRA_CONFIG_DIR to another directory"}
	}
	return nil
}
