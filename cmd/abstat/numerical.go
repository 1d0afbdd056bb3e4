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

func newNumericalCommand(g *globalOptions) *cobra.Command {
	var (
		target string
		alpha  float64
		arms   armFlags
	)
	cmd := &cobra.Command{
		Use:   "numerical -t column [flags] control treatment",
		Short: "Compare a continuous column between two arms",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if target == "" {
				return usageErrorf("missing --target")
			}
			if err := checkAlpha(cmd.Flags(), alpha); err != nil {
				return err
			}
			ca, ta := arms.arms(args)
			control, treatment, err := openArms(g.logger, ca, ta)
			if err != nil {
				return err
			}
			res, err := compareNumerical(target, control, treatment, g.options(alpha))
			if err != nil {
				return err
			}
			rep := new(report.Report)
			rep.Add(res)
			return g.write(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "`column` to compare")
	alphaFlag(cmd.Flags(), &alpha)
	arms.register(cmd.Flags())
	return cmd
}

func compareNumerical(target string, control, treatment *dataset.Table, opts *abtest.Options) (*abtest.NumericalResult, error) {
	xs, err := control.Float64s(target)
	if err != nil {
		return nil, err
	}
	ys, err := treatment.Float64s(target)
	if err != nil {
		return nil, err
	}
	return abtest.Numerical(target, xs, ys, opts)
}
