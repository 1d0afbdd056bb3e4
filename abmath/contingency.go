// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// A Contingency is a 2×2 table of observed counts. Rows are arms
// (control, treatment) and columns are outcomes (success, failure).
// Cells may be zero.
type Contingency [2][2]int

// NewContingency builds the table for two arms.
func NewContingency(control, treatment Counts) Contingency {
	return Contingency{
		{control.Successes, control.Failures()},
		{treatment.Successes, treatment.Failures()},
	}
}

// RowSums returns the number of observations in each arm.
func (t Contingency) RowSums() [2]int {
	return [2]int{t[0][0] + t[0][1], t[1][0] + t[1][1]}
}

// ColSums returns the total successes and total failures.
func (t Contingency) ColSums() [2]int {
	return [2]int{t[0][0] + t[1][0], t[0][1] + t[1][1]}
}

// Total returns the number of observations in t.
func (t Contingency) Total() int {
	r := t.RowSums()
	return r[0] + r[1]
}

// Expected returns the expected frequencies of t under independence.
func (t Contingency) Expected() [2][2]float64 {
	rows, cols := t.RowSums(), t.ColSums()
	total := float64(t.Total())
	var e [2][2]float64
	for i := range e {
		for j := range e[i] {
			e[i][j] = float64(rows[i]) * float64(cols[j]) / total
		}
	}
	return e
}

// Independence performs Pearson's chi-square test of independence on
// t with Yates' continuity correction. Each observed count is moved
// toward its expected count by 0.5, or less if it is already closer.
// It returns the χ² statistic and its p-value with one degree of
// freedom.
func (t Contingency) Independence() (chi2, p float64, err error) {
	e := t.Expected()
	for i := range e {
		for j := range e[i] {
			if !(e[i][j] > 0) {
				return 0, 0, ErrDegenerateTable
			}
		}
	}
	for i := range e {
		for j := range e[i] {
			o := float64(t[i][j])
			diff := e[i][j] - o
			o += math.Copysign(math.Min(0.5, math.Abs(diff)), diff)
			chi2 += (o - e[i][j]) * (o - e[i][j]) / e[i][j]
		}
	}
	p = distuv.ChiSquared{K: 1}.Survival(chi2)
	return chi2, p, nil
}
