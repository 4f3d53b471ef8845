package commands

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"modthree/internal/app"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

var (
	cfgFile   string
	home      string
	logLevel  string
	logFormat string
	appCtx    *app.App
)

// Main runs the CLI and returns the process exit code.
func Main() int {
	if err := Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}
	return 0
}

// Execute builds the command tree and runs it.
func Execute() error {
	return fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "modthree",
		Short: "Deterministic finite automata and binary remainders mod 3",
		Long: TitleStyle.Render("modthree") + SubtitleStyle.Render(" - finite automata from the command line") + `

Computes the remainder of a binary number divided by 3 by walking a
three-state automaton, one bit at a time. Arbitrary automata can be
described in JSON, stored, run and drawn.

` + SubtitleStyle.Render("Examples:") + `
  modthree rem 1101 1110 1111     Remainders of 13, 14 and 15
  modthree def add ends01.json    Store a definition
  modthree run ends-with-01 10101 Run a stored definition
  modthree dot | dot -Tsvg        Draw the mod-3 automaton`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("home") {
				cfg.Home = home
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = logFormat
			}

			appCtx, err = app.New(cfg, cmd.ErrOrStderr())
			return err
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/modthree/config.toml)")
	root.PersistentFlags().StringVar(&home, "home", "", "data dir for stored definitions (default ~/.modthree)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json, logfmt")

	root.AddCommand(remCmd(), demoCmd(), defCmd(), runCmd(), dotCmd())
	return root
}
