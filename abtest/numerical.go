// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abtest

import (
	"fmt"

	"github.com/abstat/abstat/abmath"
	"github.com/montanaflynn/stats"
)

// A Path identifies which location test a numerical comparison chose.
type Path int

const (
	// PathEqualVariance is Student's t-test: both arms passed
	// the normality check and the homogeneity check.
	PathEqualVariance Path = iota
	// PathUnequalVariance is Welch's t-test: both arms passed the
	// normality check but not the homogeneity check.
	PathUnequalVariance
	// PathRank is the Mann-Whitney U-test: at least one arm
	// failed the normality check.
	PathRank
)

func (p Path) String() string {
	switch p {
	case PathEqualVariance:
		return "equal-variance"
	case PathUnequalVariance:
		return "unequal-variance"
	case PathRank:
		return "rank"
	}
	return fmt.Sprintf("Path(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Parametric reports whether p compares means.
func (p Path) Parametric() bool {
	return p != PathRank
}

// A Summary describes one arm of a numerical comparison.
type Summary struct {
	N      int
	Mean   float64
	Median float64
	StdDev float64
}

func summarize(s *abmath.Sample) Summary {
	// Empty samples are reported by the tests themselves.
	mean, _ := stats.Mean(s.Values)
	median, _ := stats.Median(s.Values)
	sd, _ := stats.StandardDeviationSample(s.Values)
	return Summary{N: s.N(), Mean: mean, Median: median, StdDev: sd}
}

// A NumericalResult is the verdict of a numerical comparison, with
// every intermediate test that led to it.
type NumericalResult struct {
	// Target names the compared attribute.
	Target string

	// Alpha is the significance level all tests were judged at.
	Alpha float64

	// Control and Treatment describe the two arms.
	Control, Treatment Summary

	// Normality holds the normality test of each arm, indexed by
	// Arm.
	Normality [2]abmath.Result

	// Homogeneity is the equal-variance test. It is nil if either
	// arm failed the normality check.
	Homogeneity *abmath.Result

	// Path is the location test that was chosen.
	Path Path

	// Final is the result of the location test.
	Final abmath.Result
}

// Normal reports whether both arms are plausibly normal, that is,
// whether both normality p-values exceed Alpha.
func (r *NumericalResult) Normal() bool {
	return r.Normality[Control].P > r.Alpha && r.Normality[Treatment].P > r.Alpha
}

// EqualVariance reports whether the arms were treated as having equal
// variances.
func (r *NumericalResult) EqualVariance() bool {
	return r.Homogeneity != nil && r.Homogeneity.P > r.Alpha
}

// Reject reports whether the final test rejects the null hypothesis
// that the arms' central tendencies are equal.
func (r *NumericalResult) Reject() bool {
	return r.Final.Reject()
}

// Numerical compares the central tendency of two samples of
// continuous values.
//
// Each arm is tested for normality. If both are plausibly normal,
// their variances are tested for equality and the means are compared
// with Student's t-test (equal variances) or Welch's t-test (unequal
// variances). Otherwise the arms are compared with the Mann-Whitney
// U-test. Errors from the underlying tests are returned unchanged.
//
// The inputs are not modified.
func Numerical(target string, control, treatment []float64, opts *Options) (*NumericalResult, error) {
	alpha, prims := opts.alpha(), opts.primitives()
	log := opts.logger().With("target", target)

	samples := [2]*abmath.Sample{abmath.NewSample(control), abmath.NewSample(treatment)}
	res := &NumericalResult{
		Target:    target,
		Alpha:     alpha,
		Control:   summarize(samples[Control]),
		Treatment: summarize(samples[Treatment]),
	}

	for arm, s := range samples {
		r, err := prims.Normality(s)
		if err != nil {
			return nil, err
		}
		r.Alpha = alpha
		res.Normality[arm] = r
		logResult(log, "normality", r, "arm", Arm(arm))
	}

	var err error
	if res.Normal() {
		var h abmath.Result
		h, err = prims.Variance(samples[Control], samples[Treatment])
		if err != nil {
			return nil, err
		}
		h.Alpha = alpha
		res.Homogeneity = &h
		logResult(log, "homogeneity", h)

		res.Path = PathUnequalVariance
		if res.EqualVariance() {
			res.Path = PathEqualVariance
		}
		res.Final, err = prims.MeanTest(samples[Control], samples[Treatment], res.EqualVariance())
		if err != nil {
			return nil, err
		}
	} else {
		res.Path = PathRank
		res.Final, err = prims.RankTest(samples[Control], samples[Treatment])
		if err != nil {
			return nil, err
		}
	}
	res.Final.Alpha = alpha
	if res.Path == PathRank && !res.Final.Reject() {
		res.Final.Warnings = append(res.Final.Warnings,
			abmath.RankTestWarnings(samples[Control].N(), samples[Treatment].N(), alpha)...)
	}
	logResult(log, "location", res.Final, "path", res.Path)
	return res, nil
}
