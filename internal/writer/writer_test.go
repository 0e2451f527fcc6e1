package writer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sant0-9/lyra/internal/analysis"
	"github.com/sant0-9/lyra/internal/config"
	"github.com/sant0-9/lyra/internal/prompts"
)

func TestSelectTechniques(t *testing.T) {
	tests := []struct {
		name     string
		analysis *analysis.Analysis
		mode     config.Mode
		want     []Technique
	}{
		{
			name:     "basic simple",
			analysis: &analysis.Analysis{TaskType: analysis.TaskSimple, ComplexityScore: 3},
			mode:     config.ModeBasic,
			want:     []Technique{RoleAssignment, TaskDecomposition},
		},
		{
			name:     "detail adds context and output specs",
			analysis: &analysis.Analysis{TaskType: analysis.TaskAnalytical, ComplexityScore: 5},
			mode:     config.ModeDetail,
			want:     []Technique{RoleAssignment, TaskDecomposition, ContextLayering, OutputSpecs},
		},
		{
			name:     "complex creative",
			analysis: &analysis.Analysis{TaskType: analysis.TaskCreative, ComplexityScore: 8},
			mode:     config.ModeBasic,
			want:     []Technique{RoleAssignment, TaskDecomposition, ChainOfThought, MultiPerspective},
		},
		{
			name:     "technical",
			analysis: &analysis.Analysis{TaskType: analysis.TaskTechnical, ComplexityScore: 7},
			mode:     config.ModeBasic,
			want:     []Technique{RoleAssignment, TaskDecomposition, ConstraintBased},
		},
		{
			name:     "educational detail",
			analysis: &analysis.Analysis{TaskType: analysis.TaskEducational, ComplexityScore: 2},
			mode:     config.ModeDetail,
			want:     []Technique{RoleAssignment, TaskDecomposition, ContextLayering, OutputSpecs, FewShot},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectTechniques(tt.analysis, tt.mode))
		})
	}
}

func TestDevelopWriteEmail(t *testing.T) {
	a := analysis.Deconstruct("Write email")
	got := Develop("Write email", a, config.PlatformOther, config.ModeBasic)

	want := "You are a helpful assistant focused on providing clear, concise responses." +
		"\n\n**Task:** write email" +
		"\n**Focus areas:** Write, email"
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "**Constraints:**")
	assert.NotContains(t, got, "**Output Requirements:**")
}

func TestDevelopTechnicalDetail(t *testing.T) {
	p := "Help me fix my Python code that's not working"
	got := Develop(p, analysis.Deconstruct(p), config.PlatformChatGPT, config.ModeDetail)

	want := strings.Join([]string{
		"You are an experienced technical specialist with deep expertise in software development and problem-solving.",
		"\n**Context:** This task involves Help, Python, code. ",
		"**Task:** help me fix my python code that's not working\n**Focus areas:** Help, Python, code",
		"\n**Output Requirements:**\n- Clear, well-commented code\n- Explanation of approach",
		prompts.TechnicalRequirements,
	}, "\n\n")
	assert.Equal(t, want, got)
}

func TestDevelopConstraintsOnlyInDetail(t *testing.T) {
	p := "Write a blog post. It must be under 500 words. Avoid jargon."
	a := analysis.Deconstruct(p)

	detail := Develop(p, a, config.PlatformOther, config.ModeDetail)
	assert.Contains(t, detail, "\n**Constraints:**\n- It must be under 500 words\n- Avoid jargon")
	assert.Contains(t, detail, "\n**Output Requirements:**\n- Length: 500 words")
	assert.True(t, strings.HasSuffix(detail, "- Avoid jargon"))

	basic := Develop(p, a, config.PlatformOther, config.ModeBasic)
	assert.NotContains(t, basic, "**Constraints:**")
}

func TestDevelopHighContextSkipsContextBlock(t *testing.T) {
	a := &analysis.Analysis{
		CoreIntent:   "write a report",
		KeyEntities:  []string{"report"},
		ContextLevel: analysis.ContextHigh,
		TaskType:     analysis.TaskSimple,
	}
	got := Develop("", a, config.PlatformOther, config.ModeDetail)
	assert.NotContains(t, got, "**Context:**")
}

func TestDevelopEntitiesTruncated(t *testing.T) {
	a := &analysis.Analysis{
		CoreIntent:  "plan",
		KeyEntities: []string{"A", "B", "C", "D", "E", "F"},
		TaskType:    analysis.TaskSimple,
	}
	got := Develop("", a, config.PlatformOther, config.ModeDetail)
	assert.Contains(t, got, "This task involves A, B, C. ")
	assert.Contains(t, got, "**Focus areas:** A, B, C, D, E\n")
}

func TestStructureBlockPriority(t *testing.T) {
	// A complex creative prompt gets the creative sentence, not chain of thought.
	a := &analysis.Analysis{TaskType: analysis.TaskCreative, ComplexityScore: 9}
	got := Develop("", a, config.PlatformOther, config.ModeBasic)
	assert.Contains(t, got, prompts.MultiPerspective)
	assert.NotContains(t, got, prompts.ChainOfThought)

	a = &analysis.Analysis{TaskType: analysis.TaskComplex, ComplexityScore: 9}
	got = Develop("", a, config.PlatformOther, config.ModeBasic)
	assert.Contains(t, got, prompts.ChainOfThought)

	a = &analysis.Analysis{TaskType: analysis.TaskEducational, ComplexityScore: 3}
	got = Develop("", a, config.PlatformOther, config.ModeBasic)
	assert.Contains(t, got, prompts.FewShot)

	a = &analysis.Analysis{TaskType: analysis.TaskAnalytical, ComplexityScore: 5}
	got = Develop("", a, config.PlatformOther, config.ModeBasic)
	assert.NotContains(t, got, prompts.ChainOfThought)
}

func TestPlatformFormatting(t *testing.T) {
	complexTech := analysis.Deconstruct("Fix this code somehow")

	claude := Develop("Fix this code somehow", complexTech, config.PlatformClaude, config.ModeBasic)
	assert.True(t, strings.HasSuffix(claude, prompts.ClaudeApproach))

	chatgpt := Develop("Fix this code somehow", complexTech, config.PlatformChatGPT, config.ModeBasic)
	other := Develop("Fix this code somehow", complexTech, config.PlatformOther, config.ModeBasic)
	assert.Equal(t, other, chatgpt)
	assert.NotContains(t, other, "**Approach:**")

	poem := analysis.Deconstruct("Write a poem about the ocean")
	gemini := Develop("Write a poem about the ocean", poem, config.PlatformGemini, config.ModeBasic)
	assert.True(t, strings.HasSuffix(gemini, prompts.GeminiExploration))

	simple := analysis.Deconstruct("Write email")
	assert.NotContains(t, Develop("Write email", simple, config.PlatformGemini, config.ModeBasic), "Feel free")
}

func TestWriteUsesGivenTechniques(t *testing.T) {
	a := analysis.Deconstruct("Write email")
	got := Write(&Request{
		Analysis:   a,
		Platform:   config.PlatformOther,
		Mode:       config.ModeBasic,
		Techniques: []Technique{TaskDecomposition},
	})
	assert.Equal(t, "**Task:** write email\n**Focus areas:** Write, email", got)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"role_assignment", "few_shot"}, Names([]Technique{RoleAssignment, FewShot}))
	assert.Empty(t, Names(nil))
}
