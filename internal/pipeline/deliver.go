package pipeline

import (
	"fmt"
	"strings"

	"github.com/sant0-9/lyra/internal/analysis"
	"github.com/sant0-9/lyra/internal/config"
	"github.com/sant0-9/lyra/internal/prompts"
	"github.com/sant0-9/lyra/internal/writer"
)

// Result is the optimized prompt plus what was done to it.
type Result struct {
	OptimizedPrompt   string   `json:"optimized_prompt"`
	Improvements      []string `json:"improvements"`
	TechniquesApplied []string `json:"techniques_applied"`
	ProTip            string   `json:"pro_tip,omitempty"`
}

// Deliver packages an optimized prompt with its improvement notes and tip.
// mode is accepted for symmetry with the other stages; it does not change
// the result today.
func Deliver(optimized string, a *analysis.Analysis, d Diagnosis, techniques []writer.Technique, mode config.Mode) *Result {
	var improvements []string

	if len(d.CriticalIssues) > 0 {
		improvements = append(improvements, fmt.Sprintf("Fixed %d clarity issues", len(d.CriticalIssues)))
	}

	needed := strings.Join(d.ImprovementsNeeded, " ")
	if strings.Contains(needed, "Add more specific details") {
		improvements = append(improvements, "Enhanced specificity and detail")
	}
	if strings.Contains(needed, "Specify desired output format") {
		improvements = append(improvements, "Added clear output specifications")
	}
	if strings.Contains(needed, "Provide more context") {
		improvements = append(improvements, "Layered additional context")
	}

	improvements = append(improvements, fmt.Sprintf("Optimized for %s tasks", a.TaskType))

	return &Result{
		OptimizedPrompt:   optimized,
		Improvements:      improvements,
		TechniquesApplied: writer.Names(techniques),
		ProTip:            proTip(a),
	}
}

func proTip(a *analysis.Analysis) string {
	if a.IsComplex() {
		return prompts.IterationTip
	}
	return prompts.Tip(a.TaskType)
}
