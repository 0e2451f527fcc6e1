package writer

import (
	"github.com/sant0-9/lyra/internal/analysis"
	"github.com/sant0-9/lyra/internal/config"
)

// Technique names a rewrite strategy applied to a prompt.
type Technique string

const (
	RoleAssignment    Technique = "role_assignment"
	TaskDecomposition Technique = "task_decomposition"
	ContextLayering   Technique = "context_layering"
	OutputSpecs       Technique = "output_specs"
	ChainOfThought    Technique = "chain_of_thought"
	MultiPerspective  Technique = "multi_perspective"
	ConstraintBased   Technique = "constraint_based"
	FewShot           Technique = "few_shot"
)

// SelectTechniques picks the techniques for an analysed prompt. The order is
// fixed: the two base techniques, the detail-mode pair, then the
// complexity and task-type specific ones.
func SelectTechniques(a *analysis.Analysis, mode config.Mode) []Technique {
	techniques := []Technique{RoleAssignment, TaskDecomposition}

	if mode == config.ModeDetail {
		techniques = append(techniques, ContextLayering, OutputSpecs)
	}
	if a.IsComplex() {
		techniques = append(techniques, ChainOfThought)
	}

	switch a.TaskType {
	case analysis.TaskCreative:
		techniques = append(techniques, MultiPerspective)
	case analysis.TaskTechnical:
		techniques = append(techniques, ConstraintBased)
	case analysis.TaskEducational:
		techniques = append(techniques, FewShot)
	}

	return techniques
}

// Names returns the technique identifiers as plain strings.
func Names(techniques []Technique) []string {
	names := make([]string, len(techniques))
	for i, t := range techniques {
		names[i] = string(t)
	}
	return names
}

func has(techniques []Technique, want Technique) bool {
	for _, t := range techniques {
		if t == want {
			return true
		}
	}
	return false
}
