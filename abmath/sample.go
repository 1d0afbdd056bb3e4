// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abmath provides the statistical primitives used to compare
// the control and treatment arms of an A/B test.
//
// Every primitive reports a Result carrying a p-value. Deciding what
// that p-value means is left to the caller, which compares it against
// its own alpha level.
//
// Results contain a list of warnings, captured as an []error value.
// These aren't errors that prevent analysis, but should be presented
// to the user along with the result.
package abmath

import (
	"fmt"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of numeric observations from one arm of a test.
type Sample struct {
	// Values are the observed values, in ascending order.
	Values []float64
}

// NewSample constructs a Sample from a set of observations. The
// caller's slice is not modified.
func NewSample(values []float64) *Sample {
	xs := append([]float64(nil), values...)
	// Sort values for fast order statistics.
	sort.Float64s(xs)
	return &Sample{xs}
}

// N returns the number of observations in s.
func (s *Sample) N() int {
	return len(s.Values)
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values, Sorted: true}
}

// Mean returns the arithmetic mean of s.
func (s *Sample) Mean() float64 {
	return s.sample().Mean()
}

// Counts are the observation and success counts of one arm of a
// categorical test.
type Counts struct {
	Successes int
	N         int
}

// Failures returns the number of observations that are not successes.
func (c Counts) Failures() int {
	return c.N - c.Successes
}

// Proportion returns the success rate of c. It is NaN if c has no
// observations.
func (c Counts) Proportion() float64 {
	return float64(c.Successes) / float64(c.N)
}

// A Decision is the outcome of comparing a p-value against alpha.
type Decision int

const (
	// FailToReject means there was not enough evidence to reject
	// the null hypothesis.
	FailToReject Decision = iota
	// Reject means the null hypothesis is rejected.
	Reject
)

func (d Decision) String() string {
	switch d {
	case FailToReject:
		return "fail to reject"
	case Reject:
		return "reject"
	}
	return fmt.Sprintf("Decision(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// A Result is the outcome of a single statistical test.
type Result struct {
	// Test names the test that produced this result, for example
	// ShapiroWilk or MannWhitneyU.
	Test string

	// Statistic is the test statistic (W, t, U, z or χ²).
	Statistic float64

	// P is the p-value of the test's null hypothesis.
	P float64

	// N1 and N2 are the sizes of the samples. For a one-sample
	// test, N2 is 0.
	N1, N2 int

	// Alpha is the threshold this result is judged against. If
	// P < Alpha, the null hypothesis is rejected. Primitives leave
	// Alpha zero; callers fill it in.
	Alpha float64

	// Warnings is a list of warnings about this result.
	Warnings []error
}

// Reject reports whether r rejects its null hypothesis. A p-value
// exactly equal to Alpha does not reject.
func (r Result) Reject() bool {
	return r.P < r.Alpha
}

// Decision returns the Decision for r.
func (r Result) Decision() Decision {
	if r.Reject() {
		return Reject
	}
	return FailToReject
}

// String summarizes the result. The general form of this string is
// "p=0.PPP n=N1+N2" but can be shortened.
func (r Result) String() string {
	s := fmt.Sprintf("p=%0.3f ", r.P)
	if r.N2 == 0 || r.N1 == r.N2 {
		// Slightly shorter form for a common case.
		return s + fmt.Sprintf("n=%d", r.N1)
	}
	return s + fmt.Sprintf("n=%d+%d", r.N1, r.N2)
}
