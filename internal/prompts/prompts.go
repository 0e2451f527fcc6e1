// Package prompts holds every fixed text fragment the optimizer assembles
// into rewritten prompts, tips and clarifying questions.
package prompts

import (
	_ "embed"
	"strings"

	"github.com/sant0-9/lyra/internal/analysis"
)

//go:embed welcome.md
var welcome string

// Welcome returns the greeting shown before the first prompt.
func Welcome() string {
	return strings.TrimSpace(welcome)
}

var roles = map[analysis.TaskType]string{
	analysis.TaskCreative:    "You are a creative expert with a talent for innovative thinking and storytelling.",
	analysis.TaskTechnical:   "You are an experienced technical specialist with deep expertise in software development and problem-solving.",
	analysis.TaskAnalytical:  "You are a data analyst and critical thinker skilled at breaking down complex information.",
	analysis.TaskEducational: "You are an expert educator who excels at explaining concepts clearly and effectively.",
	analysis.TaskComplex:     "You are a strategic thinker capable of handling multifaceted challenges systematically.",
	analysis.TaskSimple:      "You are a helpful assistant focused on providing clear, concise responses.",
}

// Role returns the persona sentence for a task type.
func Role(t analysis.TaskType) string {
	if r, ok := roles[t]; ok {
		return r
	}
	return roles[analysis.TaskSimple]
}

// Section headers and fixed blocks.
const (
	ContextHeader     = "\n**Context:** "
	ContextInvolves   = "This task involves %s. "
	TaskHeader        = "**Task:** "
	FocusAreasHeader  = "\n**Focus areas:** "
	OutputHeader      = "\n**Output Requirements:**"
	ConstraintsHeader = "\n**Constraints:**"
	Bullet            = "\n- "

	MultiPerspective = "\nConsider multiple perspectives and creative angles."
	FewShot          = "\nProvide clear examples and step-by-step explanations."
	ChainOfThought   = "\nThink through this step-by-step, showing your reasoning."

	ClaudeApproach    = "\n\n**Approach:** Break this down systematically and explain your reasoning."
	GeminiExploration = "\n\nFeel free to explore creative angles and multiple possibilities."
)

// TechnicalRequirements is appended for technical tasks.
var TechnicalRequirements = "\n**Technical Requirements:**" +
	"\n- Follow best practices and coding standards" +
	"\n- Consider edge cases and error handling" +
	"\n- Optimize for performance and maintainability"

// DefaultOutputSpecs returns the two fallback output bullets for a task type
// when the prompt states no requirements of its own.
func DefaultOutputSpecs(t analysis.TaskType) []string {
	switch t {
	case analysis.TaskTechnical:
		return []string{"Clear, well-commented code", "Explanation of approach"}
	case analysis.TaskCreative:
		return []string{"Original and engaging content", "Appropriate tone and style"}
	default:
		return []string{"Clear and well-structured response", "Specific and actionable information"}
	}
}

const (
	IterationTip = "For complex requests, consider iterating: start with a draft and refine based on the output."
	GenericTip   = "Be specific about what success looks like for your request."
)

var tips = map[analysis.TaskType]string{
	analysis.TaskCreative:    "For creative tasks, consider asking for multiple variations to find the best fit.",
	analysis.TaskTechnical:   "When asking for code, specify your programming language, version, and any frameworks upfront.",
	analysis.TaskAnalytical:  "For analysis tasks, provide sample data or clear criteria for evaluation.",
	analysis.TaskEducational: "Learning works best when you ask follow-up questions and request examples.",
	analysis.TaskComplex:     "Break complex tasks into smaller subtasks for better results.",
}

// Tip returns the task-specific tip, or GenericTip when none is mapped.
func Tip(t analysis.TaskType) string {
	if tip, ok := tips[t]; ok {
		return tip
	}
	return GenericTip
}

// Clarifying questions, asked in this order.
const (
	QuestionFormat      = "What format would you like the output in? (e.g., bullet points, paragraph, code)"
	QuestionAudience    = "Who is the target audience?"
	QuestionConstraints = "Are there any specific constraints or requirements I should know about?"
	QuestionLength      = "What length are you aiming for?"
)
