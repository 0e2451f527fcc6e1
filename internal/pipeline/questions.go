package pipeline

import (
	"strings"

	"github.com/sant0-9/lyra/internal/analysis"
	"github.com/sant0-9/lyra/internal/prompts"
)

const maxQuestions = 3

// ClarifyingQuestions suggests up to three questions whose answers would
// improve the prompt further.
func ClarifyingQuestions(a *analysis.Analysis) []string {
	var questions []string

	if len(a.OutputRequirements) == 0 {
		questions = append(questions, prompts.QuestionFormat)
	}

	if a.TaskType == analysis.TaskCreative || a.TaskType == analysis.TaskEducational {
		if !anyRequirement(a, func(r string) bool { return strings.Contains(strings.ToLower(r), "audience") }) {
			questions = append(questions, prompts.QuestionAudience)
		}
	}

	if a.IsComplex() && len(a.Constraints) == 0 {
		questions = append(questions, prompts.QuestionConstraints)
	}

	hasLength := anyRequirement(a, func(r string) bool { return strings.HasPrefix(r, "Length:") })
	if !hasLength && a.TaskType != analysis.TaskTechnical {
		questions = append(questions, prompts.QuestionLength)
	}

	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}

func anyRequirement(a *analysis.Analysis, match func(string) bool) bool {
	for _, r := range a.OutputRequirements {
		if match(r) {
			return true
		}
	}
	return false
}
