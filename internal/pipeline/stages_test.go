package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sant0-9/lyra/internal/analysis"
	"github.com/sant0-9/lyra/internal/config"
	"github.com/sant0-9/lyra/internal/prompts"
	"github.com/sant0-9/lyra/internal/writer"
)

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name     string
		analysis *analysis.Analysis
		want     Diagnosis
	}{
		{
			name:     "write email",
			analysis: analysis.Deconstruct("Write email"),
			want: Diagnosis{
				CriticalIssues:     []string{analysis.IssueBrief, analysis.IssueNoFormat},
				ImprovementsNeeded: []string{NeedFormat, NeedContext},
			},
		},
		{
			name:     "bare",
			analysis: &analysis.Analysis{ContextLevel: analysis.ContextMedium, ComplexityScore: 8},
			want: Diagnosis{
				ImprovementsNeeded: []string{NeedSpecifics, NeedFormat, NeedBreakdown},
			},
		},
		{
			name: "well specified",
			analysis: &analysis.Analysis{
				KeyEntities:        []string{"Go", "blog"},
				ContextLevel:       analysis.ContextHigh,
				OutputRequirements: []string{"Length: 500 words"},
				Constraints:        []string{"Avoid jargon"},
				ComplexityScore:    9,
			},
			want: Diagnosis{
				Strengths: []string{StrengthContext, StrengthLimits, StrengthOutput},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Diagnose(tt.analysis))
		})
	}
}

func TestDiagnoseCopiesIssues(t *testing.T) {
	a := &analysis.Analysis{ClarityIssues: []string{analysis.IssueVague}}
	d := Diagnose(a)
	d.CriticalIssues[0] = "changed"
	assert.Equal(t, analysis.IssueVague, a.ClarityIssues[0])
}

func TestDeliver(t *testing.T) {
	a := &analysis.Analysis{TaskType: analysis.TaskEducational, ComplexityScore: 4}
	d := Diagnosis{
		CriticalIssues:     []string{"x", "y", "z"},
		ImprovementsNeeded: []string{NeedSpecifics, NeedFormat, NeedContext},
	}
	techniques := []writer.Technique{writer.RoleAssignment, writer.FewShot}

	got := Deliver("optimized", a, d, techniques, config.ModeBasic)

	assert.Equal(t, "optimized", got.OptimizedPrompt)
	assert.Equal(t, []string{
		"Fixed 3 clarity issues",
		"Enhanced specificity and detail",
		"Added clear output specifications",
		"Layered additional context",
		"Optimized for educational tasks",
	}, got.Improvements)
	assert.Equal(t, []string{"role_assignment", "few_shot"}, got.TechniquesApplied)
	assert.Equal(t, prompts.Tip(analysis.TaskEducational), got.ProTip)
}

func TestDeliverMinimal(t *testing.T) {
	got := Deliver("", &analysis.Analysis{TaskType: analysis.TaskAnalytical}, Diagnosis{}, nil, config.ModeDetail)
	assert.Equal(t, []string{"Optimized for analytical tasks"}, got.Improvements)
	assert.Equal(t, prompts.Tip(analysis.TaskAnalytical), got.ProTip)
}

func TestProTip(t *testing.T) {
	assert.Equal(t, prompts.IterationTip, proTip(&analysis.Analysis{TaskType: analysis.TaskCreative, ComplexityScore: 8}))
	assert.Equal(t, prompts.GenericTip, proTip(&analysis.Analysis{TaskType: analysis.TaskSimple, ComplexityScore: 1}))
	assert.Equal(t, prompts.Tip(analysis.TaskComplex), proTip(&analysis.Analysis{TaskType: analysis.TaskComplex, ComplexityScore: 7}))
}

func TestClarifyingQuestions(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   []string
	}{
		{
			name:   "truncated to three",
			prompt: "Write a story " + strings.Repeat("and then it went on with something ", 10),
			want:   []string{prompts.QuestionFormat, prompts.QuestionAudience, prompts.QuestionConstraints},
		},
		{
			name:   "technical skips length",
			prompt: "Fix this code somehow",
			want:   []string{prompts.QuestionFormat, prompts.QuestionConstraints},
		},
		{
			name:   "audience already given",
			prompt: "Write a story for kids",
			want:   []string{prompts.QuestionLength},
		},
		{
			name:   "length already given",
			prompt: "Summarize this in 100 words",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClarifyingQuestions(analysis.Deconstruct(tt.prompt)))
		})
	}
}

func TestClarifyingQuestionsAtMostThree(t *testing.T) {
	inputs := []string{
		"",
		"Help",
		"Write email",
		"Imagine something about it",
		"Teach me whatever they know",
		strings.Repeat("Tell a story about stuff. ", 20),
	}
	for _, p := range inputs {
		assert.LessOrEqual(t, len(ClarifyingQuestions(analysis.Deconstruct(p))), 3, p)
	}
}
