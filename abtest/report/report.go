// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders the verdicts of A/B comparisons.
//
// The text format narrates each step of a comparison: the result of
// every intermediate test, how it was interpreted, and the final
// verdict. The JSON, CSV and HTML formats carry the same results in
// machine-readable or tabular form.
package report

import (
	"fmt"
	"io"

	"github.com/abstat/abstat/abmath"
	"github.com/abstat/abstat/abtest"
)

// A Report is the set of comparisons from one run.
type Report struct {
	// RunID identifies the run that produced the report. It may be
	// empty.
	RunID string

	Entries []Entry
}

// An Entry is one comparison. Exactly one of its fields is set.
type Entry struct {
	Numerical   *abtest.NumericalResult
	Categorical *abtest.CategoricalResult
}

// Add appends a comparison result to r.
func (r *Report) Add(res any) {
	switch res := res.(type) {
	case *abtest.NumericalResult:
		r.Entries = append(r.Entries, Entry{Numerical: res})
	case *abtest.CategoricalResult:
		r.Entries = append(r.Entries, Entry{Categorical: res})
	default:
		panic(fmt.Sprintf("report: unknown result type %T", res))
	}
}

// Kind returns "numerical" or "categorical".
func (e Entry) Kind() string {
	if e.Numerical != nil {
		return "numerical"
	}
	return "categorical"
}

// Target returns the compared attribute.
func (e Entry) Target() string {
	if e.Numerical != nil {
		return e.Numerical.Target
	}
	return e.Categorical.Target
}

// Roles of the tests within a comparison.
const (
	RoleNormalityControl   = "normality/control"
	RoleNormalityTreatment = "normality/treatment"
	RoleHomogeneity        = "homogeneity"
	RoleLocation           = "location"
	RoleProportions        = "proportions"
	RoleIndependence       = "independence"
)

// A Step is one test of a comparison and the role it played.
type Step struct {
	Role string
	abmath.Result
}

// Steps returns every test e ran, in the order it ran them.
func (e Entry) Steps() []Step {
	var steps []Step
	if n := e.Numerical; n != nil {
		steps = append(steps,
			Step{RoleNormalityControl, n.Normality[abtest.Control]},
			Step{RoleNormalityTreatment, n.Normality[abtest.Treatment]})
		if n.Homogeneity != nil {
			steps = append(steps, Step{RoleHomogeneity, *n.Homogeneity})
		}
		return append(steps, Step{RoleLocation, n.Final})
	}
	c := e.Categorical
	if c.Proportions != nil {
		steps = append(steps, Step{RoleProportions, *c.Proportions})
	}
	if c.ChiSquare != nil {
		steps = append(steps, Step{RoleIndependence, *c.ChiSquare})
	}
	return steps
}

// Formats lists the output formats accepted by Write.
var Formats = []string{"text", "json", "csv", "html"}

// Write renders r to w in the named format. Color only affects the
// text format.
func Write(w io.Writer, r *Report, format string, color bool) error {
	switch format {
	case "text", "":
		return FormatText(w, r, color)
	case "json":
		return FormatJSON(w, r)
	case "csv":
		return FormatCSV(w, r)
	case "html":
		return FormatHTML(w, r)
	}
	return fmt.Errorf("unknown format %q", format)
}

// symbol returns the conventional name of a test's statistic.
func symbol(test string) string {
	switch test {
	case abmath.ShapiroWilk, abmath.Levene:
		return "W"
	case abmath.StudentT, abmath.WelchT:
		return "t"
	case abmath.MannWhitneyU:
		return "U"
	case abmath.ProportionsZ:
		return "z"
	case abmath.ChiSquare:
		return "χ²"
	}
	return "stat"
}

// formatP formats a p-value, switching to exponent form for tiny
// values so they don't print as zero.
func formatP(p float64) string {
	if p != 0 && p < 1e-4 {
		return fmt.Sprintf("%.2e", p)
	}
	return fmt.Sprintf("%.4f", p)
}

func warningStrings(ws []error) []string {
	var out []string
	for _, w := range ws {
		out = append(out, w.Error())
	}
	return out
}

func formatFloat(x float64) string {
	return fmt.Sprintf("%.4f", x)
}
