package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sant0-9/lyra/internal/config"
	"github.com/sant0-9/lyra/internal/pipeline"
	"github.com/sant0-9/lyra/internal/report"
)

// run executes the CLI with args against a temporary config directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigDir, t.TempDir())

	c := &cli{runTUI: func(*config.Config, *zap.Logger) error {
		t.Fatal("interactive shell started")
		return nil
	}}
	cmd := newRootCmd(c)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOptimizeText(t *testing.T) {
	out, err := run(t, "Write", "email")
	require.NoError(t, err)
	assert.Contains(t, out, report.TitlePrompt)
	assert.Contains(t, out, "**Task:** write email")
	assert.Contains(t, out, report.TitleChanged)
	assert.NotContains(t, out, report.TitleClarifications)
}

func TestOptimizeJSON(t *testing.T) {
	out, err := run(t, "--json", "-p", "claude", "-m", "detail", "Write email")
	require.NoError(t, err)

	var got struct {
		OptimizedPrompt     string   `json:"optimized_prompt"`
		TechniquesApplied   []string `json:"techniques_applied"`
		Platform            string   `json:"platform"`
		Mode                string   `json:"mode"`
		ClarifyingQuestions []string `json:"clarifying_questions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	want, err := pipeline.New().Optimize("Write email", "claude", "detail")
	require.NoError(t, err)
	assert.Equal(t, want.OptimizedPrompt, got.OptimizedPrompt)
	assert.Equal(t, want.TechniquesApplied, got.TechniquesApplied)
	assert.Equal(t, "claude", got.Platform)
	assert.Equal(t, "detail", got.Mode)
	assert.NotEmpty(t, got.ClarifyingQuestions)
}

func TestOptimizeAutoMode(t *testing.T) {
	out, err := run(t, "--json", "-m", "auto", "Draft a professional summary")
	require.NoError(t, err)
	assert.Contains(t, out, `"mode": "detail"`)
}

func TestQuestionsFlag(t *testing.T) {
	out, err := run(t, "--questions", "Write email")
	require.NoError(t, err)
	assert.Contains(t, out, report.TitleClarifications)
}

func TestConfigDefaultsFromEnv(t *testing.T) {
	t.Setenv(config.EnvPlatform, "gemini")
	out, err := run(t, "--json", "Write email")
	require.NoError(t, err)
	assert.Contains(t, out, `"platform": "gemini"`)
	assert.Contains(t, out, `"mode": "basic"`)
}

func TestInvalidFlags(t *testing.T) {
	_, err := run(t, "-p", "llama", "Write email")
	assert.ErrorContains(t, err, "invalid platform")

	_, err = run(t, "-m", "verbose", "Write email")
	assert.ErrorContains(t, err, "invalid mode")
}

func TestInvalidUTF8(t *testing.T) {
	_, err := run(t, "bad \xff input")
	assert.ErrorIs(t, err, pipeline.ErrInvalidPrompt)
}

func TestAnalyze(t *testing.T) {
	out, err := run(t, "analyze", "Write email")
	require.NoError(t, err)
	assert.Contains(t, out, "Task Type: simple")
	assert.Contains(t, out, "Complexity: 3/10")
	assert.Contains(t, out, "Clarifying questions:")
}

func TestAnalyzeJSON(t *testing.T) {
	out, err := run(t, "analyze", "--json", "Write email")
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got, "analysis")
	assert.Contains(t, got, "diagnosis")
	assert.Contains(t, string(got["analysis"]), `"task_type": "simple"`)
}

func TestAnalyzeNeedsPrompt(t *testing.T) {
	_, err := run(t, "analyze")
	assert.Error(t, err)
}

func TestWelcome(t *testing.T) {
	out, err := run(t, "welcome")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Hello! I'm Lyra"))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "Lyra "+version+"\n", out)
}

func TestNoArgsStartsShell(t *testing.T) {
	t.Setenv(config.EnvConfigDir, t.TempDir())
	started := false
	c := &cli{runTUI: func(cfg *config.Config, logger *zap.Logger) error {
		started = true
		assert.NotNil(t, cfg)
		assert.NotNil(t, logger)
		return nil
	}}
	cmd := newRootCmd(c)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.True(t, started)
}
