// Package pipeline runs the four optimization stages, deconstruct,
// diagnose, develop and deliver, over a single prompt.
package pipeline

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sant0-9/lyra/internal/analysis"
	"github.com/sant0-9/lyra/internal/config"
	"github.com/sant0-9/lyra/internal/prompts"
	"github.com/sant0-9/lyra/internal/writer"
)

// Defaults used when the caller has no preference.
const (
	DefaultPlatform = "other"
	DefaultMode     = "basic"
)

// ErrInvalidPrompt is returned when a prompt is not valid UTF-8 text.
var ErrInvalidPrompt = errors.New("invalid prompt: not valid UTF-8 text")

// Stage represents a pipeline stage
type Stage int

const (
	StageDeconstruct Stage = iota
	StageDiagnose
	StageDevelop
	StageDeliver
	StageDone
)

const totalStages = 4

func (s Stage) String() string {
	switch s {
	case StageDeconstruct:
		return "Deconstruct"
	case StageDiagnose:
		return "Diagnose"
	case StageDevelop:
		return "Develop"
	case StageDeliver:
		return "Deliver"
	case StageDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Progress represents pipeline progress
type Progress struct {
	Stage       Stage
	StageIndex  int
	TotalStages int
	Message     string
}

// Optimizer rewrites prompts. It holds configuration only, so one value can
// serve concurrent callers as long as the progress callback is safe to call
// concurrently.
type Optimizer struct {
	logger     *zap.Logger
	onProgress func(Progress)
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithLogger sets the logger used for per-run diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *Optimizer) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithProgress sets a callback invoked at each stage boundary.
func WithProgress(fn func(Progress)) Option {
	return func(o *Optimizer) {
		o.onProgress = fn
	}
}

// New creates an Optimizer.
func New(opts ...Option) *Optimizer {
	o := &Optimizer{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Optimizer) progress(stage Stage, msg string) {
	o.logger.Debug("stage", zap.Stringer("stage", stage), zap.String("message", msg))
	if o.onProgress != nil {
		o.onProgress(Progress{
			Stage:       stage,
			StageIndex:  int(stage),
			TotalStages: totalStages,
			Message:     msg,
		})
	}
}

// Optimize rewrites prompt for the named platform and mode. Unrecognised
// platform or mode names fall back to other and basic; mode "auto" picks a
// mode from the prompt itself. The only error is ErrInvalidPrompt.
func (o *Optimizer) Optimize(prompt, platform, mode string) (*Result, error) {
	if !utf8.ValidString(prompt) {
		return nil, fmt.Errorf("optimize: %w", ErrInvalidPrompt)
	}

	target := config.ParsePlatform(platform)
	m := ResolveMode(prompt, mode)

	log := o.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.Stringer("platform", target),
		zap.Stringer("mode", m),
	)

	o.progress(StageDeconstruct, "Extracting intent and requirements...")
	a := analysis.Deconstruct(prompt)

	o.progress(StageDiagnose, "Auditing clarity and completeness...")
	d := Diagnose(a)

	o.progress(StageDevelop, "Applying optimization techniques...")
	techniques := writer.SelectTechniques(a, m)
	optimized := writer.Write(&writer.Request{
		Prompt:     prompt,
		Analysis:   a,
		Platform:   target,
		Mode:       m,
		Techniques: techniques,
	})

	o.progress(StageDeliver, "Packaging result...")
	result := Deliver(optimized, a, d, techniques, m)

	o.progress(StageDone, "Optimization complete")

	log.Info("prompt optimized",
		zap.Stringer("task_type", a.TaskType),
		zap.Int("complexity", a.ComplexityScore),
		zap.Int("clarity_issues", len(a.ClarityIssues)),
		zap.Int("techniques", len(techniques)),
	)

	return result, nil
}

// Deconstruct analyses prompt without rewriting it.
func (o *Optimizer) Deconstruct(prompt string) *analysis.Analysis {
	return analysis.Deconstruct(prompt)
}

// ResolveMode parses a mode name, resolving "auto" against the prompt.
func ResolveMode(prompt, mode string) config.Mode {
	if config.IsAutoMode(mode) {
		return AutoDetectMode(prompt)
	}
	return config.ParseMode(mode)
}

// WelcomeMessage returns the static greeting.
func WelcomeMessage() string {
	return prompts.Welcome()
}
