// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/abstat/abstat/abtest"
	"github.com/abstat/abstat/abtest/report"
	"github.com/abstat/abstat/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var version = "dev"

// newRunID is replaced in tests.
var newRunID = uuid.NewString

// globalOptions are the flags and settings shared by all commands.
type globalOptions struct {
	format  string
	color   string
	debug   bool
	envFile string

	runID    string
	defaults config.Defaults
	logger   *slog.Logger
}

func newRootCommand() *cobra.Command {
	g := new(globalOptions)
	cmd := &cobra.Command{
		Use:   "abstat",
		Short: "Abstat - hypothesis tests for A/B experiments",
		Long: `Abstat compares a control and a treatment group.

It picks a hypothesis test suited to the data, runs it, and reports
whether the groups differ at significance level alpha.`,
		Version:       version,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&g.format, "format", "text", "output `format`: text, json, csv or html")
	flags.StringVar(&g.color, "color", "auto", "color text output: auto, always or never")
	flags.BoolVar(&g.debug, "debug", false, "enable debug logging")
	flags.StringVar(&g.envFile, "env-file", "", "read defaults from `file` instead of .env")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return g.setup(cmd)
	}

	cmd.AddCommand(newNumericalCommand(g))
	cmd.AddCommand(newCategoricalCommand(g))
	cmd.AddCommand(newRunCommand(g))
	return cmd
}

// setup resolves the environment defaults and builds the logger.
func (g *globalOptions) setup(cmd *cobra.Command) error {
	defs, err := config.LoadDefaults(g.envFile)
	if err != nil {
		return err
	}
	g.defaults = defs
	if !cmd.Flags().Changed("format") && defs.Format != "" {
		g.format = defs.Format
	}
	if !slices.Contains(report.Formats, g.format) {
		return usageErrorf("unknown format %q", g.format)
	}
	if !slices.Contains([]string{"auto", "always", "never"}, g.color) {
		return usageErrorf("unknown color mode %q", g.color)
	}

	level := slog.LevelWarn
	if g.debug {
		level = slog.LevelDebug
	}
	g.runID = newRunID()
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	g.logger = slog.New(h).With("run", g.runID)
	g.logger.Debug("starting", "command", cmd.Name(), "version", version)
	return nil
}

// options returns the comparison options for significance level
// alpha. If alpha is zero, the environment default is used.
func (g *globalOptions) options(alpha float64) *abtest.Options {
	if alpha == 0 {
		alpha = g.defaults.Alpha
	}
	return &abtest.Options{Alpha: alpha, Logger: g.logger}
}

// useColor reports whether text output to w should be colored.
func (g *globalOptions) useColor(w io.Writer) bool {
	switch g.color {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// write renders rep to w in the selected format.
func (g *globalOptions) write(w io.Writer, rep *report.Report) error {
	color := g.format == "text" && g.useColor(w)
	if color {
		// lipgloss picks its profile from stdout, not w.
		lipgloss.SetColorProfile(termenv.ANSI)
	}
	return report.Write(w, rep, g.format, color)
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &usageError{err}
		}
		return nil
	}
}

// alphaFlag registers the --alpha flag on fs.
func alphaFlag(fs *pflag.FlagSet, alpha *float64) {
	fs.Float64Var(alpha, "alpha", 0, "significance level (default $ABSTAT_ALPHA or 0.05)")
}

// checkAlpha reports a usage error if --alpha was set on fs to a value
// outside (0, 1). An unset flag leaves alpha zero, selecting the default.
func checkAlpha(fs *pflag.FlagSet, alpha float64) error {
	if fs.Changed("alpha") && (alpha <= 0 || alpha >= 1) {
		return usageErrorf("alpha %v is outside (0, 1)", alpha)
	}
	return nil
}

// abstat runs the command line args, writing results to stdout and
// diagnostics to stderr.
func abstat(stdout, stderr io.Writer, args []string) error {
	cmd := newRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}
