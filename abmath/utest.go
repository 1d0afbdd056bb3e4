// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"fmt"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"
)

// rankTest compares s1 and s2 with the two-sided Mann-Whitney U-test.
func rankTest(s1, s2 *Sample) (Result, error) {
	res, err := stats.MannWhitneyUTest(s1.Values, s2.Values, stats.LocationDiffers)
	if err != nil {
		return Result{}, err
	}
	return Result{Test: MannWhitneyU, Statistic: res.U, P: res.P, N1: s1.N(), N2: s2.N()}, nil
}

// RankTestWarnings returns a warning if samples of sizes n1 and n2
// are too small for the U-test to ever reach alpha, even if the two
// samples were maximally separated.
func RankTestWarnings(n1, n2 int, alpha float64) []error {
	op, need := uTestSamples(alpha)
	small := n1 < need || n2 < need
	if op == ">" {
		small = n1 <= need || n2 <= need
	}
	if !small {
		return nil
	}
	return []error{fmt.Errorf("need %s %d samples to detect a difference at alpha level %v", op, need, alpha)}
}

// uTestSamples returns the number of samples per arm needed for the
// U-test to be able to report a p-value at or below alpha.
func uTestSamples(alpha float64) (op string, n int) {
	for n := 1; n <= uTestMaxN; n++ {
		if uTestMinP(n) <= alpha {
			return ">=", n
		}
	}
	return ">", uTestMaxN
}

// uTestMaxN bounds the search in uTestSamples.
const uTestMaxN = 50

// uTestMinP returns the minimum two-sided p-value of the exact U-test
// with n samples in each arm, reached when the samples don't overlap.
func uTestMinP(n int) float64 {
	return 2 / mathx.Choose(2*n, n)
}
