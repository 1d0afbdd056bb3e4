// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/abstat/abstat/abtest"
	"github.com/abstat/abstat/abtest/report"
	"github.com/abstat/abstat/dataset"
	"github.com/spf13/cobra"
)

func newCategoricalCommand(g *globalOptions) *cobra.Command {
	var (
		target, success string
		tests           = abtest.AllCategoricalTests
		alpha           float64
		arms            armFlags
	)
	cmd := &cobra.Command{
		Use:   "categorical -t column --success value [flags] control treatment",
		Short: "Compare the success rate of a categorical column between two arms",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if target == "" {
				return usageErrorf("missing --target")
			}
			if !cmd.Flags().Changed("success") {
				return usageErrorf("missing --success")
			}
			if err := checkAlpha(cmd.Flags(), alpha); err != nil {
				return err
			}
			ca, ta := arms.arms(args)
			control, treatment, err := openArms(g.logger, ca, ta)
			if err != nil {
				return err
			}
			res, err := compareCategorical(target, success, control, treatment, tests, g.options(alpha))
			if err != nil {
				return err
			}
			rep := new(report.Report)
			rep.Add(res)
			return g.write(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "`column` to compare")
	cmd.Flags().StringVar(&success, "success", "", "`value` of the column counted as a success")
	cmd.Flags().BoolVar(&tests.Proportions, "ztest", true, "run the two-proportion z-test")
	cmd.Flags().BoolVar(&tests.ChiSquare, "chisquare", true, "run the chi-square test of independence")
	alphaFlag(cmd.Flags(), &alpha)
	arms.register(cmd.Flags())
	return cmd
}

func compareCategorical(target, success string, control, treatment *dataset.Table, tests abtest.CategoricalTests, opts *abtest.Options) (*abtest.CategoricalResult, error) {
	xs, err := control.Strings(target)
	if err != nil {
		return nil, err
	}
	ys, err := treatment.Strings(target)
	if err != nil {
		return nil, err
	}
	return abtest.Categorical(target, xs, ys, success, tests, opts)
}
