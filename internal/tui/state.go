package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"github.com/sant0-9/lyra/internal/analysis"
	"github.com/sant0-9/lyra/internal/config"
	"github.com/sant0-9/lyra/internal/intent"
	"github.com/sant0-9/lyra/internal/pipeline"
)

// modeChoices are the values offered for the default mode.
var modeChoices = []string{config.ModeBasic.String(), config.ModeDetail.String(), config.ModeAuto}

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup wizard and settings
	setupStep        int
	selectedPlatform int
	selectedMode     int
	settingsRow      int
	settingsSaved    bool

	// Current run
	currentIntent *intent.Intent
	platform      config.Platform
	mode          config.Mode
	result        *pipeline.Result
	analysis      *analysis.Analysis
	questions     []string
	stages        []pipeline.Progress
	processing    bool

	// Errors shown in the error view
	err error

	// Input
	input textinput.Model

	// Result display
	viewport      viewport.Model
	renderer      *glamour.TermRenderer
	rendererWidth int
}

func newState(cfg *config.Config) *state {
	input := textinput.New()
	input.Placeholder = "DETAIL using Claude - your prompt, or /help"
	input.CharLimit = 4000
	input.Width = 60

	s := &state{
		config: cfg,
		input:  input,
	}
	s.syncSelection()
	return s
}

// syncSelection points the settings cursors at the configured values.
func (s *state) syncSelection() {
	s.selectedPlatform = len(config.Platforms) - 1
	for i, p := range config.Platforms {
		if p.Platform == s.config.TargetPlatform() {
			s.selectedPlatform = i
		}
	}
	s.selectedMode = 0
	for i, m := range modeChoices {
		if m == s.config.DefaultModeName() {
			s.selectedMode = i
		}
	}
}

// applySelection copies the settings cursors back into the config.
func (s *state) applySelection() {
	s.config.Platform = config.Platforms[s.selectedPlatform].ID
	s.config.Mode = modeChoices[s.selectedMode]
}
