// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ProportionsZTest performs a two-sided z-test of the null hypothesis
// that c1 and c2 have the same success proportion. The standard error
// uses the pooled proportion of both arms. It returns the z statistic
// and its p-value.
//
// Both arms must have at least one observation, and the pooled
// proportion must lie strictly between 0 and 1.
func ProportionsZTest(c1, c2 Counts) (z, p float64, err error) {
	if c1.N <= 0 || c2.N <= 0 {
		return 0, 0, ErrSampleSize
	}
	n1, n2 := float64(c1.N), float64(c2.N)
	pooled := float64(c1.Successes+c2.Successes) / (n1 + n2)
	se := math.Sqrt(pooled * (1 - pooled) * (1/n1 + 1/n2))
	if se == 0 || math.IsNaN(se) {
		return 0, 0, ErrZeroVariance
	}
	z = (c1.Proportion() - c2.Proportion()) / se
	p = 2 * distuv.UnitNormal.Survival(math.Abs(z))
	return z, p, nil
}
