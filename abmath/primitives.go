// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"errors"

	"github.com/aclements/go-moremath/stats"
)

// Names of the tests reported in Result.Test.
const (
	ShapiroWilk  = "Shapiro-Wilk"
	Levene       = "Levene"
	StudentT     = "Student's t-test"
	WelchT       = "Welch's t-test"
	MannWhitneyU = "Mann-Whitney U"
	ProportionsZ = "two-proportion z-test"
	ChiSquare    = "chi-square"
)

var (
	// ErrSampleSize is returned when a sample is too small (or, for
	// proportions, empty) for the requested test.
	ErrSampleSize = stats.ErrSampleSize

	// ErrZeroVariance is returned when a test's statistic is
	// undefined because the data has no spread.
	ErrZeroVariance = stats.ErrZeroVariance

	// ErrSamplesEqual is returned by the rank test when every
	// observation in both samples is the same.
	ErrSamplesEqual = stats.ErrSamplesEqual

	// ErrZeroRange is returned by the normality test when all
	// values in a sample are identical.
	ErrZeroRange = errors.New("all values are identical")

	// ErrDegenerateTable is returned by the chi-square test when a
	// contingency table has an expected frequency of zero.
	ErrDegenerateTable = errors.New("contingency table has a zero expected frequency")
)

// Primitives is the set of statistical tests a comparison is built
// from. Each method runs one test and returns its Result, with
// Alpha left zero.
//
// All location tests are two-sided.
type Primitives interface {
	// Normality tests the null hypothesis that s was drawn from a
	// normal distribution.
	Normality(s *Sample) (Result, error)

	// Variance tests the null hypothesis that s1 and s2 have
	// equal variances.
	Variance(s1, s2 *Sample) (Result, error)

	// MeanTest tests the null hypothesis that s1 and s2 have equal
	// means. If equalVar is set, the samples are assumed to share a
	// variance.
	MeanTest(s1, s2 *Sample, equalVar bool) (Result, error)

	// RankTest tests the null hypothesis that s1 and s2 come from
	// the same distribution, making no normality assumption.
	RankTest(s1, s2 *Sample) (Result, error)

	// ProportionsTest tests the null hypothesis that c1 and c2
	// have equal success proportions.
	ProportionsTest(c1, c2 Counts) (Result, error)

	// ChiSquareTest tests the null hypothesis that arm and outcome
	// in t are independent.
	ChiSquareTest(t Contingency) (Result, error)
}

// Default implements Primitives with Shapiro-Wilk, Levene
// (median-centered), Student's and Welch's t-tests, the Mann-Whitney
// U-test, a pooled two-proportion z-test, and Pearson's chi-square
// test with Yates' continuity correction.
var Default Primitives = defaultPrimitives{}

type defaultPrimitives struct{}

func (defaultPrimitives) Normality(s *Sample) (Result, error) {
	w, p, warn, err := shapiroWilk(s.Values)
	if err != nil {
		return Result{}, err
	}
	return Result{Test: ShapiroWilk, Statistic: w, P: p, N1: s.N(), Warnings: warn}, nil
}

func (defaultPrimitives) Variance(s1, s2 *Sample) (Result, error) {
	w, p, err := LeveneTest(s1.Values, s2.Values)
	if err != nil {
		return Result{}, err
	}
	return Result{Test: Levene, Statistic: w, P: p, N1: s1.N(), N2: s2.N()}, nil
}

func (defaultPrimitives) MeanTest(s1, s2 *Sample, equalVar bool) (Result, error) {
	return meanTest(s1, s2, equalVar)
}

func (defaultPrimitives) RankTest(s1, s2 *Sample) (Result, error) {
	return rankTest(s1, s2)
}

func (defaultPrimitives) ProportionsTest(c1, c2 Counts) (Result, error) {
	z, p, err := ProportionsZTest(c1, c2)
	if err != nil {
		return Result{}, err
	}
	return Result{Test: ProportionsZ, Statistic: z, P: p, N1: c1.N, N2: c2.N}, nil
}

func (defaultPrimitives) ChiSquareTest(t Contingency) (Result, error) {
	chi2, p, err := t.Independence()
	if err != nil {
		return Result{}, err
	}
	rows := t.RowSums()
	return Result{Test: ChiSquare, Statistic: chi2, P: p, N1: rows[0], N2: rows[1]}, nil
}
