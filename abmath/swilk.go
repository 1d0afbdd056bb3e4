// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Polynomial approximations from Royston, "Remark AS R94: A Remark on
// Algorithm AS 181: The W-test for Normality", Applied Statistics
// 44(4), 1995.
var (
	swC1 = []float64{0, 0.221157, -0.147981, -2.07119, 4.434685, -2.706056}
	swC2 = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.544, -0.39978, 0.025054, -6.714e-4}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swC6 = []float64{-0.4803, -0.082676, 0.0030302}
	swG  = []float64{-2.273, 0.459}
)

// swMaxN is the largest sample for which the p-value approximation
// was validated.
const swMaxN = 5000

// ShapiroWilkTest performs a Shapiro-Wilk test of the null hypothesis
// that xs was drawn from a normal distribution. It returns the W
// statistic and its p-value.
//
// xs must have at least 3 values, not all equal. The p-value is exact
// for n = 3.
func ShapiroWilkTest(xs []float64) (w, p float64, err error) {
	w, p, _, err = shapiroWilk(xs)
	return
}

func shapiroWilk(xs []float64) (w, p float64, warnings []error, err error) {
	n := len(xs)
	if n < 3 {
		return 0, 0, nil, ErrSampleSize
	}
	if n > swMaxN {
		warnings = append(warnings, fmt.Errorf("p-value may be inaccurate for n > %d", swMaxN))
	}
	x := xs
	if !sort.Float64sAreSorted(x) {
		x = append([]float64(nil), xs...)
		sort.Float64s(x)
	}
	rng := x[n-1] - x[0]
	if rng < 1e-19 {
		return 0, 0, nil, ErrZeroRange
	}

	a := swCoefficients(n)

	// W is the squared correlation between the ordered data and
	// the coefficients. Scale by the range to keep the sums small.
	var mean float64
	for _, v := range x {
		mean += v / rng
	}
	mean /= float64(n)
	var ssa, ssx, sax float64
	for i, v := range x {
		xsx := v/rng - mean
		ssa += a[i] * a[i]
		ssx += xsx * xsx
		sax += a[i] * xsx
	}
	ssassx := math.Sqrt(ssa * ssx)
	w1 := (ssassx - sax) * (ssassx + sax) / (ssa * ssx)
	if w1 < 0 {
		// Rounding on perfectly linear data.
		w1 = 0
	}
	w = 1 - w1

	if n == 3 {
		const (
			pi6  = 6 / math.Pi
			stqr = math.Pi / 3 // asin(sqrt(3/4))
		)
		p = pi6 * (math.Asin(math.Sqrt(w)) - stqr)
		return w, math.Max(p, 0), warnings, nil
	}

	an := float64(n)
	y := math.Log(w1)
	var m, s float64
	if n <= 11 {
		gamma := poly(swG, an)
		if y >= gamma {
			return w, 1e-99, warnings, nil
		}
		y = -math.Log(gamma - y)
		m = poly(swC3, an)
		s = math.Exp(poly(swC4, an))
	} else {
		xx := math.Log(an)
		m = poly(swC5, xx)
		s = math.Exp(poly(swC6, xx))
	}
	p = distuv.Normal{Mu: m, Sigma: s}.Survival(y)
	return w, p, warnings, nil
}

// swCoefficients returns the n antisymmetric Shapiro-Wilk weights, in
// the order of the sorted sample. The weights have unit norm.
func swCoefficients(n int) []float64 {
	nn2 := n / 2
	half := make([]float64, nn2) // weights for the upper half, largest first
	if n == 3 {
		half[0] = math.Sqrt(0.5)
	} else {
		an25 := float64(n) + 0.25
		m := make([]float64, nn2)
		var summ2 float64
		for i := range m {
			m[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / an25)
			summ2 += m[i] * m[i]
		}
		summ2 *= 2
		ssumm2 := math.Sqrt(summ2)
		rsn := 1 / math.Sqrt(float64(n))
		a1 := poly(swC1, rsn) - m[0]/ssumm2

		var i1 int
		var fac float64
		if n > 5 {
			i1 = 2
			a2 := -m[1]/ssumm2 + poly(swC2, rsn)
			fac = math.Sqrt((summ2 - 2*m[0]*m[0] - 2*m[1]*m[1]) /
				(1 - 2*a1*a1 - 2*a2*a2))
			half[1] = a2
		} else {
			i1 = 1
			fac = math.Sqrt((summ2 - 2*m[0]*m[0]) / (1 - 2*a1*a1))
		}
		half[0] = a1
		for i := i1; i < nn2; i++ {
			half[i] = -m[i] / fac
		}
	}

	a := make([]float64, n)
	for i, v := range half {
		a[i] = -v
		a[n-1-i] = v
	}
	return a
}

// poly evaluates the polynomial with coefficients cc (constant term
// first) at x.
func poly(cc []float64, x float64) float64 {
	res := cc[0]
	if len(cc) == 1 {
		return res
	}
	p := x * cc[len(cc)-1]
	for j := len(cc) - 2; j > 0; j-- {
		p = (p + cc[j]) * x
	}
	return res + p
}
