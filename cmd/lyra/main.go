package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sant0-9/lyra/internal/config"
	"github.com/sant0-9/lyra/internal/logging"
	"github.com/sant0-9/lyra/internal/pipeline"
	"github.com/sant0-9/lyra/internal/report"
	"github.com/sant0-9/lyra/internal/tui"
)

var version = "1.0.0"

var (
	platformChoices = []string{"chatgpt", "claude", "gemini", "other"}
	modeChoices     = []string{"basic", "detail", config.ModeAuto}
)

// cli holds flag values and the state set up before each command runs.
type cli struct {
	platform  string
	mode      string
	verbose   bool
	jsonOut   bool
	questions bool

	cfg    *config.Config
	logger *zap.Logger

	// runTUI starts the interactive shell; tests replace it.
	runTUI func(*config.Config, *zap.Logger) error
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "lyra [prompt]",
		Short: "Lyra - AI Prompt Optimization Specialist",
		Long: `Lyra rewrites a rough prompt into a structured one through four stages:
deconstruct, diagnose, develop and deliver.

Run without arguments to start the interactive shell.`,
		Example: `  lyra "Write a marketing email"
  lyra --mode detail --platform chatgpt "Write a marketing email"
  lyra -m detail -p claude "Help me debug my Python code"
  lyra analyze "Fix this code somehow"`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE:         c.runOptimize,
	}
	root.PersistentPreRunE = c.setup
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if c.logger != nil {
			_ = c.logger.Sync()
		}
	}
	root.SetVersionTemplate("Lyra {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVarP(&c.platform, "platform", "p", "", "target AI platform: "+strings.Join(platformChoices, ", ")+" (default from config)")
	flags.StringVarP(&c.mode, "mode", "m", "", "optimization mode: "+strings.Join(modeChoices, ", ")+" (default from config)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "show techniques applied and debug logging")
	flags.BoolVar(&c.jsonOut, "json", false, "print JSON instead of formatted text")
	root.Flags().BoolVar(&c.questions, "questions", false, "print clarifying questions in any mode")

	root.AddCommand(c.analyzeCmd(), welcomeCmd())
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg

	if c.platform != "" && !oneOf(c.platform, platformChoices) {
		return fmt.Errorf("invalid platform %q (choose from %s)", c.platform, strings.Join(platformChoices, ", "))
	}
	if c.mode != "" && !oneOf(c.mode, modeChoices) {
		return fmt.Errorf("invalid mode %q (choose from %s)", c.mode, strings.Join(modeChoices, ", "))
	}

	c.logger = logging.NewOrNop(cfg.LogLevel, c.verbose || cfg.Verbose)
	return nil
}

// target returns the platform and mode names, flags first, then config.
func (c *cli) target() (string, string) {
	platform, mode := c.platform, c.mode
	if platform == "" {
		platform = c.cfg.TargetPlatform().String()
	}
	if mode == "" {
		mode = c.cfg.DefaultModeName()
	}
	return platform, mode
}

type optimizeOutput struct {
	*pipeline.Result
	Platform            string   `json:"platform"`
	Mode                string   `json:"mode"`
	ClarifyingQuestions []string `json:"clarifying_questions,omitempty"`
}

func (c *cli) runOptimize(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return c.runTUI(c.cfg, c.logger)
	}

	prompt := strings.Join(args, " ")
	platform, mode := c.target()
	resolved := pipeline.ResolveMode(prompt, mode)
	out := cmd.OutOrStdout()

	if c.verbose && !c.jsonOut {
		fmt.Fprintf(cmd.ErrOrStderr(), "Analyzing your prompt... (Mode: %s, Platform: %s)\n",
			strings.ToUpper(resolved.String()), strings.ToUpper(config.ParsePlatform(platform).String()))
	}

	opt := pipeline.New(pipeline.WithLogger(c.logger))
	result, err := opt.Optimize(prompt, platform, mode)
	if err != nil {
		return err
	}

	a := opt.Deconstruct(prompt)
	var questions []string
	if c.questions || resolved == config.ModeDetail {
		questions = pipeline.ClarifyingQuestions(a)
	}

	if c.jsonOut {
		return writeJSON(out, optimizeOutput{
			Result:              result,
			Platform:            config.ParsePlatform(platform).String(),
			Mode:                resolved.String(),
			ClarifyingQuestions: questions,
		})
	}

	return report.Fprint(out, result, a, report.Options{
		Mode:           resolved,
		ShowTechniques: c.verbose || c.cfg.ShowTechniques,
		Questions:      questions,
	})
}

func (c *cli) analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [prompt]",
		Short: "Show the analysis and diagnosis of a prompt without rewriting it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			a := pipeline.New(pipeline.WithLogger(c.logger)).Deconstruct(prompt)
			d := pipeline.Diagnose(a)
			questions := pipeline.ClarifyingQuestions(a)

			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), struct {
					Analysis            any      `json:"analysis"`
					Diagnosis           any      `json:"diagnosis"`
					ClarifyingQuestions []string `json:"clarifying_questions"`
				}{a, d, questions})
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, report.RenderAnalysis(a, d))
			if len(questions) > 0 {
				fmt.Fprintln(out, "Clarifying questions:")
				for i, q := range questions {
					fmt.Fprintf(out, "  %d. %s\n", i+1, q)
				}
			}
			return nil
		},
	}
}

func welcomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "welcome",
		Short: "Print the welcome message",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), pipeline.WelcomeMessage())
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func oneOf(s string, choices []string) bool {
	for _, c := range choices {
		if strings.EqualFold(s, c) {
			return true
		}
	}
	return false
}

func main() {
	if err := newRootCmd(&cli{runTUI: tui.Run}).Execute(); err != nil {
		os.Exit(1)
	}
}
