package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sant0-9/lyra/internal/analysis"
	"github.com/sant0-9/lyra/internal/config"
	"github.com/sant0-9/lyra/internal/intent"
	"github.com/sant0-9/lyra/internal/pipeline"
)

type view int

const (
	viewWelcome view = iota
	viewSetup
	viewResult
	viewSettings
	viewHelp
	viewError
)

var (
	errNoPrompt       = errors.New("could not parse prompt, please try again")
	errUnknownCommand = errors.New("unknown command")
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	logger   *zap.Logger
	quitting bool
}

// NewApp creates the interactive shell. cfg supplies the default platform and
// mode for lines that don't name them; a first-run wizard is shown when no
// config file has been saved yet.
func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := newState(cfg)
	s.needsSetup = !config.Exists()

	a := &App{
		view:   viewWelcome,
		state:  s,
		logger: logger,
	}
	if s.needsSetup {
		a.view = viewSetup
	} else {
		s.input.Focus()
	}
	return a
}

// Run starts the shell and blocks until the user quits.
func Run(cfg *config.Config, logger *zap.Logger) error {
	p := tea.NewProgram(
		NewApp(cfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := a.handleKey(msg); handled {
			return a, cmd
		}
		if a.view == viewResult && isScrollKey(msg) {
			var cmd tea.Cmd
			a.state.viewport, cmd = a.state.viewport.Update(msg)
			return a, cmd
		}

	case tea.MouseMsg:
		if a.view == viewResult {
			var cmd tea.Cmd
			a.state.viewport, cmd = a.state.viewport.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeViewport()

	case optimizedMsg:
		a.state.processing = false
		a.state.currentIntent = msg.intent
		a.state.platform = msg.platform
		a.state.mode = msg.mode
		a.state.result = msg.result
		a.state.analysis = msg.analysis
		a.state.questions = msg.questions
		a.state.stages = msg.stages
		a.view = viewResult
		a.refreshResult()
		return a, nil

	case optimizeErrorMsg:
		a.state.processing = false
		a.state.err = msg.error
		a.view = viewError
		return a, nil

	case settingsSavedMsg:
		a.state.settingsSaved = true
		if a.state.needsSetup {
			a.state.needsSetup = false
			a.view = viewWelcome
			a.state.input.Focus()
			return a, textinput.Blink
		}
		return a, nil

	case settingsErrorMsg:
		a.state.err = msg.error
		a.view = viewError
		return a, nil
	}

	if a.view == viewWelcome || a.view == viewResult {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// handleKey consumes keys that drive navigation. The second return is false
// when the key should fall through to the text input.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		switch a.view {
		case viewSettings:
			a.state.syncSelection()
			a.view = viewWelcome
			return nil, true
		case viewHelp, viewError, viewResult:
			a.view = viewWelcome
			a.state.input.Focus()
			return textinput.Blink, true
		case viewSetup:
			if a.state.setupStep == 1 {
				a.state.setupStep = 0
				return nil, true
			}
			// Skip the wizard and run on defaults without saving
			a.state.needsSetup = false
			a.view = viewWelcome
			a.state.input.Focus()
			return textinput.Blink, true
		}
		a.quitting = true
		return tea.Quit, true

	case key.Matches(msg, keys.Enter):
		if (a.view == viewWelcome || a.view == viewResult) && !a.state.processing {
			return a.handleInput(), true
		}

	case key.Matches(msg, keys.Help):
		if a.state.input.Value() == "" && (a.view == viewWelcome || a.view == viewResult) {
			a.view = viewHelp
			return nil, true
		}
	}

	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg), true
	case viewSettings:
		return a.handleSettingsKey(msg), true
	case viewHelp, viewError:
		return nil, true
	}

	return nil, false
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}
	a.state.input.Reset()

	// Handle slash commands
	if strings.HasPrefix(input, "/") {
		cmd := strings.ToLower(input)
		switch {
		case cmd == "/help" || cmd == "/h":
			a.view = viewHelp
			return nil
		case cmd == "/settings" || cmd == "/s":
			a.state.syncSelection()
			a.state.settingsRow = 0
			a.state.settingsSaved = false
			a.view = viewSettings
			return nil
		case cmd == "/quit" || cmd == "/q":
			a.quitting = true
			return tea.Quit
		default:
			a.state.err = fmt.Errorf("%w: %s", errUnknownCommand, input)
			a.view = viewError
			return nil
		}
	}

	if intent.IsQuit(input) {
		a.quitting = true
		return tea.Quit
	}

	in := intent.Parse(input)
	if in.Prompt == "" {
		a.state.err = errNoPrompt
		a.view = viewError
		return nil
	}

	a.state.processing = true
	return a.optimize(in)
}

// optimize runs the pipeline for one parsed line. Values missing from the
// line come from the saved defaults.
func (a *App) optimize(in *intent.Intent) tea.Cmd {
	platform := in.PlatformOr(a.state.config.Platform)
	mode := in.ModeOr(a.state.config.DefaultModeName())
	logger := a.logger

	return func() tea.Msg {
		var stages []pipeline.Progress
		opt := pipeline.New(
			pipeline.WithLogger(logger),
			pipeline.WithProgress(func(p pipeline.Progress) {
				stages = append(stages, p)
			}),
		)

		result, err := opt.Optimize(in.Prompt, platform, mode)
		if err != nil {
			return optimizeErrorMsg{err}
		}

		an := opt.Deconstruct(in.Prompt)
		return optimizedMsg{
			intent:    in,
			platform:  config.ParsePlatform(platform),
			mode:      pipeline.ResolveMode(in.Prompt, mode),
			result:    result,
			analysis:  an,
			questions: pipeline.ClarifyingQuestions(an),
			stages:    stages,
		}
	}
}

func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state.setupStep {
	case 0: // Platform selection
		switch {
		case key.Matches(msg, keys.Up):
			if a.state.selectedPlatform > 0 {
				a.state.selectedPlatform--
			}
		case key.Matches(msg, keys.Down):
			if a.state.selectedPlatform < len(config.Platforms)-1 {
				a.state.selectedPlatform++
			}
		case key.Matches(msg, keys.Enter):
			a.state.setupStep = 1
		}

	case 1: // Mode selection
		switch {
		case key.Matches(msg, keys.Up):
			if a.state.selectedMode > 0 {
				a.state.selectedMode--
			}
		case key.Matches(msg, keys.Down):
			if a.state.selectedMode < len(modeChoices)-1 {
				a.state.selectedMode++
			}
		case key.Matches(msg, keys.Enter):
			return a.saveSettings()
		}
	}

	return nil
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up), key.Matches(msg, keys.Down), key.Matches(msg, keys.Tab):
		a.state.settingsRow = 1 - a.state.settingsRow
	case key.Matches(msg, keys.Left):
		a.cycleSetting(-1)
	case key.Matches(msg, keys.Right):
		a.cycleSetting(1)
	case key.Matches(msg, keys.Enter):
		return a.saveSettings()
	}
	return nil
}

func (a *App) cycleSetting(step int) {
	a.state.settingsSaved = false
	if a.state.settingsRow == 0 {
		n := len(config.Platforms)
		a.state.selectedPlatform = (a.state.selectedPlatform + step + n) % n
		return
	}
	n := len(modeChoices)
	a.state.selectedMode = (a.state.selectedMode + step + n) % n
}

func (a *App) saveSettings() tea.Cmd {
	a.state.applySelection()
	cfg := *a.state.config
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return settingsErrorMsg{err}
		}
		return settingsSavedMsg{}
	}
}

func (a *App) resizeViewport() {
	w, h := a.resultSize()
	if a.state.viewport.Width == 0 && a.state.viewport.Height == 0 {
		a.state.viewport = viewport.New(w, h)
	} else {
		a.state.viewport.Width = w
		a.state.viewport.Height = h
	}
	a.state.input.Width = max(20, min(66, a.width-8))
	if a.state.result != nil {
		a.refreshResult()
	}
}

func (a *App) resultSize() (int, int) {
	return max(20, min(76, a.width-4)), max(5, a.height-11)
}

// isScrollKey reports keys the result viewport handles. Letter keys stay
// with the text input.
func isScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown, tea.KeyHome, tea.KeyEnd:
		return true
	}
	return false
}

type optimizedMsg struct {
	intent    *intent.Intent
	platform  config.Platform
	mode      config.Mode
	result    *pipeline.Result
	analysis  *analysis.Analysis
	questions []string
	stages    []pipeline.Progress
}

type optimizeErrorMsg struct{ error }
type settingsSavedMsg struct{}
type settingsErrorMsg struct{ error }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewWelcome:
		return a.renderWelcome()
	case viewSetup:
		return a.renderSetup()
	case viewResult:
		return a.renderResult()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	case viewError:
		return a.renderError()
	default:
		return a.renderWelcome()
	}
}
