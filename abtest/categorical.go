// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abtest

import (
	"fmt"

	"github.com/abstat/abstat/abmath"
)

// CategoricalTests selects which tests Categorical runs.
type CategoricalTests struct {
	// Proportions runs the two-proportion z-test.
	Proportions bool
	// ChiSquare runs the chi-square test of independence.
	ChiSquare bool
}

// AllCategoricalTests runs both tests.
var AllCategoricalTests = CategoricalTests{Proportions: true, ChiSquare: true}

// A CategoricalResult is the verdict of a categorical comparison.
type CategoricalResult struct {
	// Target names the compared attribute.
	Target string

	// Success is the outcome counted as a success, as formatted by
	// fmt.Sprint.
	Success string

	// Alpha is the significance level all tests were judged at.
	Alpha float64

	// Control and Treatment count each arm's observations and
	// successes.
	Control, Treatment abmath.Counts

	// Table is the 2×2 contingency table of arm by outcome.
	Table abmath.Contingency

	// Proportions is the z-test result, or nil if it wasn't
	// requested.
	Proportions *abmath.Result

	// ChiSquare is the chi-square test result, or nil if it
	// wasn't requested.
	ChiSquare *abmath.Result
}

// Results returns the results of the tests that ran, in the order
// they ran.
func (r *CategoricalResult) Results() []abmath.Result {
	var out []abmath.Result
	for _, x := range []*abmath.Result{r.Proportions, r.ChiSquare} {
		if x != nil {
			out = append(out, *x)
		}
	}
	return out
}

// CountSuccesses counts the observations in xs equal to success.
func CountSuccesses[T comparable](xs []T, success T) abmath.Counts {
	c := abmath.Counts{N: len(xs)}
	for _, x := range xs {
		if x == success {
			c.Successes++
		}
	}
	return c
}

// Categorical compares the proportion of observations equal to
// success between two samples of labels, running each of the tests
// selected by tests independently. If no test is selected, the result
// only carries the counts.
//
// Errors from the underlying tests are returned unchanged.
func Categorical[T comparable](target string, control, treatment []T, success T, tests CategoricalTests, opts *Options) (*CategoricalResult, error) {
	return CategoricalCounts(target, fmt.Sprint(success),
		CountSuccesses(control, success), CountSuccesses(treatment, success), tests, opts)
}

// CategoricalCounts is like Categorical, but starts from each arm's
// counts rather than its observations.
func CategoricalCounts(target, success string, control, treatment abmath.Counts, tests CategoricalTests, opts *Options) (*CategoricalResult, error) {
	alpha, prims := opts.alpha(), opts.primitives()
	log := opts.logger().With("target", target)

	res := &CategoricalResult{
		Target:    target,
		Success:   success,
		Alpha:     alpha,
		Control:   control,
		Treatment: treatment,
		Table:     abmath.NewContingency(control, treatment),
	}
	log.Debug("counts",
		"control", fmt.Sprintf("%d/%d", control.Successes, control.N),
		"treatment", fmt.Sprintf("%d/%d", treatment.Successes, treatment.N))

	if tests.Proportions {
		r, err := prims.ProportionsTest(control, treatment)
		if err != nil {
			return nil, err
		}
		r.Alpha = alpha
		res.Proportions = &r
		logResult(log, "proportions", r)
	}
	if tests.ChiSquare {
		r, err := prims.ChiSquareTest(res.Table)
		if err != nil {
			return nil, err
		}
		r.Alpha = alpha
		res.ChiSquare = &r
		logResult(log, "independence", r)
	}
	return res, nil
}
