// Package report prints an optimization result for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sant0-9/lyra/internal/analysis"
	"github.com/sant0-9/lyra/internal/config"
	"github.com/sant0-9/lyra/internal/pipeline"
	"github.com/sant0-9/lyra/internal/tui/styles"
)

const width = 70

// complexThreshold is the score above which the long layout is used.
const complexThreshold = 6

// Section titles
const (
	TitlePrompt         = "YOUR OPTIMIZED PROMPT:"
	TitleChanged        = "WHAT CHANGED:"
	TitleImprovements   = "KEY IMPROVEMENTS:"
	TitleTechniques     = "TECHNIQUES APPLIED:"
	TitleProTip         = "PRO TIP:"
	TitleClarifications = "OPTIONAL CLARIFICATIONS:"
	clarificationsNote  = "(These could further improve your prompt)"
)

// Options controls what Render includes.
type Options struct {
	Mode config.Mode

	// ShowTechniques lists techniques in the short layout. The long layout
	// always lists them.
	ShowTechniques bool

	// Questions are printed after the result. Callers pass them in detail
	// mode or when asked to.
	Questions []string
}

// UseComplexLayout reports whether a result gets the long layout.
func UseComplexLayout(a *analysis.Analysis, mode config.Mode) bool {
	return mode == config.ModeDetail || (a != nil && a.ComplexityScore > complexThreshold)
}

// Render formats r. a is the analysis of the original prompt and picks the
// layout; it may be nil.
func Render(r *pipeline.Result, a *analysis.Analysis, opts Options) string {
	var b strings.Builder
	double := styles.Rule.Render(strings.Repeat("=", width))
	single := styles.Rule.Render(strings.Repeat("-", width))

	b.WriteString(double + "\n")
	b.WriteString(styles.Heading.Render(TitlePrompt) + "\n")
	b.WriteString(double + "\n")
	b.WriteString(r.OptimizedPrompt + "\n")

	long := UseComplexLayout(a, opts.Mode)

	title := TitleChanged
	if long {
		title = TitleImprovements
	}
	b.WriteString("\n" + single + "\n")
	b.WriteString(styles.Heading.Render(title) + "\n")
	for _, imp := range r.Improvements {
		b.WriteString("  • " + imp + "\n")
	}

	if len(r.TechniquesApplied) > 0 && (long || opts.ShowTechniques) {
		b.WriteString("\n" + single + "\n")
		b.WriteString(styles.Heading.Render(TitleTechniques) + "\n")
		b.WriteString("  " + strings.Join(r.TechniquesApplied, ", ") + "\n")
	}

	if long && r.ProTip != "" {
		b.WriteString("\n" + single + "\n")
		b.WriteString(styles.Heading.Render(TitleProTip) + "\n")
		b.WriteString("  " + styles.Tip.Render(r.ProTip) + "\n")
	}
	b.WriteString(double + "\n")

	if len(opts.Questions) > 0 {
		b.WriteString("\n" + single + "\n")
		b.WriteString(styles.Heading.Render(TitleClarifications) + "\n")
		b.WriteString(styles.Subtitle.Render(clarificationsNote) + "\n")
		for i, q := range opts.Questions {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, styles.Question.Render(q))
		}
		b.WriteString(single + "\n")
	}

	return b.String()
}

// Fprint writes Render's output to w.
func Fprint(w io.Writer, r *pipeline.Result, a *analysis.Analysis, opts Options) error {
	_, err := io.WriteString(w, Render(r, a, opts))
	return err
}

// RenderAnalysis formats the deconstruct and diagnose stages without
// rewriting the prompt.
func RenderAnalysis(a *analysis.Analysis, d pipeline.Diagnosis) string {
	var b strings.Builder
	rule := styles.Rule.Render(strings.Repeat("-", width))

	b.WriteString(styles.Heading.Render("ANALYSIS:") + "\n")
	fmt.Fprintf(&b, "  Task Type: %s\n", a.TaskType)
	fmt.Fprintf(&b, "  Complexity: %d/10\n", a.ComplexityScore)
	fmt.Fprintf(&b, "  Context Level: %s\n", a.ContextLevel)
	fmt.Fprintf(&b, "  Core Intent: %s\n", a.CoreIntent)
	fmt.Fprintf(&b, "  Key Entities: %s\n", joinOrNone(a.KeyEntities))
	writeList(&b, "Requirements", a.OutputRequirements)
	writeList(&b, "Constraints", a.Constraints)
	writeList(&b, "Issues", a.ClarityIssues)

	b.WriteString(rule + "\n")
	b.WriteString(styles.Heading.Render("DIAGNOSIS:") + "\n")
	writeList(&b, "Improvements Needed", d.ImprovementsNeeded)
	writeList(&b, "Strengths", d.Strengths)

	return b.String()
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s:\n", label)
	for _, it := range items {
		b.WriteString("    - " + it + "\n")
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
