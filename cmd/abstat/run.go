// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/abstat/abstat/abtest"
	"github.com/abstat/abstat/abtest/report"
	"github.com/abstat/abstat/config"
	"github.com/abstat/abstat/dataset"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newRunCommand(g *globalOptions) *cobra.Command {
	var parallel int
	cmd := &cobra.Command{
		Use:   "run experiment.yaml",
		Short: "Run every comparison listed in an experiment file",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if parallel < 1 {
				return usageErrorf("--parallel must be at least 1")
			}
			exp, err := config.Load(args[0], g.defaults)
			if err != nil {
				return err
			}
			g.logger.Info("loaded experiment", "name", exp.Name, "comparisons", len(exp.Comparisons))

			control, treatment, err := openArms(g.logger, exp.Control, exp.Treatment)
			if err != nil {
				return err
			}
			results, err := runComparisons(cmd.Context(), g, exp, control, treatment, parallel)
			if err != nil {
				return err
			}
			rep := &report.Report{RunID: g.runID}
			for _, res := range results {
				rep.Add(res)
			}
			return g.write(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", runtime.GOMAXPROCS(0), "run at most `n` comparisons at once")
	return cmd
}

// runComparisons runs the comparisons of exp concurrently and returns
// their results in file order. The first failure cancels the rest.
func runComparisons(ctx context.Context, g *globalOptions, exp *config.Experiment, control, treatment *dataset.Table, parallel int) ([]any, error) {
	results := make([]any, len(exp.Comparisons))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallel)
	for i, c := range exp.Comparisons {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			opts := &abtest.Options{Alpha: c.AlphaOr(exp.Alpha), Logger: g.logger.With("comparison", i)}
			var (
				res any
				err error
			)
			switch c.Kind {
			case config.Numerical:
				res, err = compareNumerical(c.Target, control, treatment, opts)
			case config.Categorical:
				res, err = compareCategorical(c.Target, c.Success, control, treatment, c.Tests(), opts)
			default:
				err = fmt.Errorf("unknown kind %q", c.Kind)
			}
			if err != nil {
				return fmt.Errorf("comparison %d (%s %s): %w", i+1, c.Kind, c.Target, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
