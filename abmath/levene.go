// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// LeveneTest performs Levene's test of the null hypothesis that
// samples x1 and x2 have equal variances. Deviations are taken from
// each group's median (the Brown-Forsythe variant), which is robust
// to non-normal data. It returns the W statistic and its p-value
// under F(1, n1+n2-2).
//
// If every deviation equals its group's mean deviation, W is undefined
// and both w and p are NaN. A NaN p never exceeds alpha, so callers
// treat such samples as having unequal variances.
func LeveneTest(x1, x2 []float64) (w, p float64, err error) {
	if len(x1) < 2 || len(x2) < 2 {
		return 0, 0, ErrSampleSize
	}
	z1, err := absDeviations(x1)
	if err != nil {
		return 0, 0, err
	}
	z2, err := absDeviations(x2)
	if err != nil {
		return 0, 0, err
	}

	n1, n2 := float64(len(z1)), float64(len(z2))
	n := n1 + n2
	m1, m2 := mean(z1), mean(z2)
	m := (n1*m1 + n2*m2) / n

	between := n1*(m1-m)*(m1-m) + n2*(m2-m)*(m2-m)
	within := sumSquares(z1, m1) + sumSquares(z2, m2)
	if within == 0 {
		return math.NaN(), math.NaN(), nil
	}

	// With k = 2 groups, W = (N-k)/(k-1) * between/within.
	w = (n - 2) * between / within
	p = distuv.F{D1: 1, D2: n - 2}.Survival(w)
	return w, p, nil
}

// absDeviations returns |x - median(x)| for each value of xs.
func absDeviations(xs []float64) ([]float64, error) {
	med, err := stats.Median(xs)
	if err != nil {
		return nil, err
	}
	z := make([]float64, len(xs))
	for i, x := range xs {
		z[i] = math.Abs(x - med)
	}
	return z, nil
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func sumSquares(xs []float64, mean float64) float64 {
	var ss float64
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	return ss
}
