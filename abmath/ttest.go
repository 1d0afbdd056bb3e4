// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import "github.com/aclements/go-moremath/stats"

// meanTest compares the means of s1 and s2 using Student's two-sample
// t-test if equalVar is set, or Welch's t-test otherwise.
func meanTest(s1, s2 *Sample, equalVar bool) (Result, error) {
	test, name := stats.TwoSampleWelchTTest, WelchT
	if equalVar {
		test, name = stats.TwoSampleTTest, StudentT
	}
	t, err := test(s1.sample(), s2.sample(), stats.LocationDiffers)
	if err != nil {
		return Result{}, err
	}
	return Result{Test: name, Statistic: t.T, P: t.P, N1: s1.N(), N2: s2.N()}, nil
}
