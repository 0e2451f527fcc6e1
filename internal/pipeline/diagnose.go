package pipeline

import "github.com/sant0-9/lyra/internal/analysis"

// Improvement and strength findings.
const (
	NeedSpecifics   = "Add more specific details and context"
	NeedFormat      = "Specify desired output format"
	NeedContext     = "Provide more context and background"
	NeedBreakdown   = "Break down into steps or add constraints"
	StrengthContext = "Good context provided"
	StrengthLimits  = "Clear constraints specified"
	StrengthOutput  = "Output requirements defined"
)

// Diagnosis sorts an analysis into issues, needed improvements and strengths.
type Diagnosis struct {
	CriticalIssues     []string `json:"critical_issues"`
	ImprovementsNeeded []string `json:"improvements_needed"`
	Strengths          []string `json:"strengths"`
}

// Diagnose derives a Diagnosis from a. It adds no information of its own.
func Diagnose(a *analysis.Analysis) Diagnosis {
	var d Diagnosis

	d.CriticalIssues = append(d.CriticalIssues, a.ClarityIssues...)

	if len(a.KeyEntities) < 2 {
		d.ImprovementsNeeded = append(d.ImprovementsNeeded, NeedSpecifics)
	}
	if len(a.OutputRequirements) == 0 {
		d.ImprovementsNeeded = append(d.ImprovementsNeeded, NeedFormat)
	}
	if a.ContextLevel == analysis.ContextLow {
		d.ImprovementsNeeded = append(d.ImprovementsNeeded, NeedContext)
	}
	if a.IsComplex() && len(a.Constraints) == 0 {
		d.ImprovementsNeeded = append(d.ImprovementsNeeded, NeedBreakdown)
	}

	if a.ContextLevel == analysis.ContextHigh {
		d.Strengths = append(d.Strengths, StrengthContext)
	}
	if len(a.Constraints) > 0 {
		d.Strengths = append(d.Strengths, StrengthLimits)
	}
	if len(a.OutputRequirements) > 0 {
		d.Strengths = append(d.Strengths, StrengthOutput)
	}

	return d
}
