// Package writer assembles the optimized prompt from fixed fragments chosen
// by an analysis, a target platform and a mode.
package writer

import (
	"fmt"
	"strings"

	"github.com/sant0-9/lyra/internal/analysis"
	"github.com/sant0-9/lyra/internal/config"
	"github.com/sant0-9/lyra/internal/prompts"
)

const (
	partSeparator  = "\n\n"
	contextEntries = 3
	focusEntries   = 5
)

// Request contains everything needed to develop a prompt
type Request struct {
	Prompt     string
	Analysis   *analysis.Analysis
	Platform   config.Platform
	Mode       config.Mode
	Techniques []Technique // selected with SelectTechniques when nil
}

// Develop builds the optimized prompt for prompt.
func Develop(prompt string, a *analysis.Analysis, platform config.Platform, mode config.Mode) string {
	return Write(&Request{
		Prompt:   prompt,
		Analysis: a,
		Platform: platform,
		Mode:     mode,
	})
}

// Write builds the optimized prompt described by req.
func Write(req *Request) string {
	a := req.Analysis
	techniques := req.Techniques
	if techniques == nil {
		techniques = SelectTechniques(a, req.Mode)
	}

	var parts []string
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}

	if has(techniques, RoleAssignment) {
		add(prompts.Role(a.TaskType))
	}
	if has(techniques, ContextLayering) {
		add(contextBlock(a))
	}
	add(taskBlock(a))
	if has(techniques, OutputSpecs) {
		add(outputBlock(a))
	}
	add(structureBlock(a, techniques))
	if req.Mode == config.ModeDetail {
		add(constraintsBlock(a))
	}

	return formatForPlatform(strings.Join(parts, partSeparator), req.Platform, a)
}

func contextBlock(a *analysis.Analysis) string {
	if a.ContextLevel == analysis.ContextHigh {
		return ""
	}

	var b strings.Builder
	b.WriteString(prompts.ContextHeader)
	if len(a.KeyEntities) > 0 {
		b.WriteString(fmt.Sprintf(prompts.ContextInvolves, strings.Join(firstN(a.KeyEntities, contextEntries), ", ")))
	}
	return b.String()
}

func taskBlock(a *analysis.Analysis) string {
	task := prompts.TaskHeader + a.CoreIntent
	if len(a.KeyEntities) > 0 {
		task += prompts.FocusAreasHeader + strings.Join(firstN(a.KeyEntities, focusEntries), ", ")
	}
	return task
}

func outputBlock(a *analysis.Analysis) string {
	reqs := a.OutputRequirements
	if len(reqs) == 0 {
		reqs = prompts.DefaultOutputSpecs(a.TaskType)
	}

	var b strings.Builder
	b.WriteString(prompts.OutputHeader)
	for _, r := range reqs {
		b.WriteString(prompts.Bullet + r)
	}
	return b.String()
}

// structureBlock emits at most one block, in priority order.
func structureBlock(a *analysis.Analysis, techniques []Technique) string {
	switch {
	case a.TaskType == analysis.TaskCreative && has(techniques, MultiPerspective):
		return prompts.MultiPerspective
	case a.TaskType == analysis.TaskTechnical && has(techniques, ConstraintBased):
		return prompts.TechnicalRequirements
	case a.TaskType == analysis.TaskEducational && has(techniques, FewShot):
		return prompts.FewShot
	case a.IsComplex() && has(techniques, ChainOfThought):
		return prompts.ChainOfThought
	}
	return ""
}

func constraintsBlock(a *analysis.Analysis) string {
	if len(a.Constraints) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(prompts.ConstraintsHeader)
	for _, c := range a.Constraints {
		b.WriteString(prompts.Bullet + c)
	}
	return b.String()
}

func formatForPlatform(prompt string, platform config.Platform, a *analysis.Analysis) string {
	switch platform {
	case config.PlatformClaude:
		if a.IsComplex() {
			prompt += prompts.ClaudeApproach
		}
	case config.PlatformGemini:
		if a.TaskType == analysis.TaskCreative {
			prompt += prompts.GeminiExploration
		}
	}
	return prompt
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
