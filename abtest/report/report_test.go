// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/abstat/abstat/abmath"
	"github.com/abstat/abstat/abtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numericalFixture() *abtest.NumericalResult {
	h := abmath.Result{Test: abmath.Levene, Statistic: 0.25, P: 0.6, N1: 6, N2: 6, Alpha: 0.05}
	return &abtest.NumericalResult{
		Target:    "revenue",
		Alpha:     0.05,
		Control:   abtest.Summary{N: 6, Mean: 5.2, Median: 5.15, StdDev: 0.15},
		Treatment: abtest.Summary{N: 6, Mean: 6.1, Median: 6.05, StdDev: 0.15},
		Normality: [2]abmath.Result{
			{Test: abmath.ShapiroWilk, Statistic: 0.95, P: 0.8, N1: 6, Alpha: 0.05},
			{Test: abmath.ShapiroWilk, Statistic: 0.96, P: 0.7, N1: 6, Alpha: 0.05},
		},
		Homogeneity: &h,
		Path:        abtest.PathEqualVariance,
		Final:       abmath.Result{Test: abmath.StudentT, Statistic: -10.59, P: 9.37e-7, N1: 6, N2: 6, Alpha: 0.05},
	}
}

func rankFixture() *abtest.NumericalResult {
	return &abtest.NumericalResult{
		Target:    "latency",
		Alpha:     0.05,
		Control:   abtest.Summary{N: 4, Mean: 2, Median: 1.5, StdDev: 1.4},
		Treatment: abtest.Summary{N: 4, Mean: 3, Median: 2.5, StdDev: 1.4},
		Normality: [2]abmath.Result{
			{Test: abmath.ShapiroWilk, Statistic: 0.7, P: 0.01, N1: 4, Alpha: 0.05},
			{Test: abmath.ShapiroWilk, Statistic: 0.9, P: 0.5, N1: 4, Alpha: 0.05},
		},
		Path: abtest.PathRank,
		Final: abmath.Result{
			Test: abmath.MannWhitneyU, Statistic: 5, P: 0.4, N1: 4, N2: 4, Alpha: 0.05,
			Warnings: []error{errors.New("need >= 5 samples to detect a difference at alpha level 0.05")},
		},
	}
}

func categoricalFixture() *abtest.CategoricalResult {
	control := abmath.Counts{Successes: 20, N: 100}
	treatment := abmath.Counts{Successes: 35, N: 100}
	return &abtest.CategoricalResult{
		Target:      "clicked",
		Success:     "yes",
		Alpha:       0.05,
		Control:     control,
		Treatment:   treatment,
		Table:       abmath.NewContingency(control, treatment),
		Proportions: &abmath.Result{Test: abmath.ProportionsZ, Statistic: -2.3754, P: 0.0175, N1: 100, N2: 100, Alpha: 0.05},
	}
}

func TestFormatText(t *testing.T) {
	r := &Report{RunID: "run-1"}
	r.Add(numericalFixture())
	r.Add(categoricalFixture())

	var buf bytes.Buffer
	require.NoError(t, FormatText(&buf, r, false))

	want := `run run-1

revenue: numerical comparison at alpha=0.05

Normality (Shapiro-Wilk)
  arm        n  mean  median  stddev       W       p
  control    6   5.2    5.15    0.15  0.9500  0.8000
  treatment  6   6.1    6.05    0.15  0.9600  0.7000
  Both arms are plausibly normal (p > 0.05).

Equal variances (Levene)
  W=0.2500 p=0.6000
  Variances are plausibly equal (p > 0.05); using Student's t-test.

Student's t-test
  t=-10.5900 p=9.37e-07
  Reject H0 (p < 0.05): the means of revenue differ between control and treatment.

clicked: categorical comparison at alpha=0.05, success is "yes"

  arm        success  failure    n    rate
  control         20       80  100  20.00%
  treatment       35       65  100  35.00%

two-proportion z-test
  z=-2.3754 p=0.0175
  Reject H0 (p < 0.05): the proportion of "yes" in clicked differs between control and treatment.
`
	assert.Equal(t, want, buf.String())
}

func TestFormatTextRank(t *testing.T) {
	r := &Report{}
	r.Add(rankFixture())

	var buf bytes.Buffer
	require.NoError(t, FormatText(&buf, r, false))
	got := buf.String()

	assert.Contains(t, got, "  control is not normal (p <= 0.05).\n  Using a rank test.\n")
	assert.NotContains(t, got, "treatment is not normal")
	assert.NotContains(t, got, "Equal variances")
	assert.Contains(t, got, "Cannot reject H0 (p >= 0.05): no evidence that the distributions of latency differ.\n")
	assert.Contains(t, got, "  warning: need >= 5 samples")
}

func TestFormatTextCategorical(t *testing.T) {
	check := func(name string, res *abtest.CategoricalResult, want ...string) {
		t.Helper()
		r := &Report{}
		r.Add(res)
		var buf bytes.Buffer
		require.NoError(t, FormatText(&buf, r, false), name)
		for _, w := range want {
			assert.Contains(t, buf.String(), w, name)
		}
	}

	none := categoricalFixture()
	none.Proportions = nil
	check("none", none, "No tests requested.")

	chi := categoricalFixture()
	chi.Proportions = nil
	chi.ChiSquare = &abmath.Result{Test: abmath.ChiSquare, Statistic: 0.5, P: 0.05, N1: 100, N2: 100, Alpha: 0.05}
	// p == alpha does not reject.
	check("chi-square at alpha", chi,
		"chi-square\n  χ²=0.5000 p=0.0500\n",
		"Cannot reject H0 (p >= 0.05): clicked is plausibly independent of the arm.")
}

func TestFormatTextColor(t *testing.T) {
	r := &Report{}
	r.Add(numericalFixture())
	var buf bytes.Buffer
	require.NoError(t, FormatText(&buf, r, true))
	assert.Contains(t, buf.String(), "Reject H0")
}

func TestSteps(t *testing.T) {
	roles := func(e Entry) []string {
		var out []string
		for _, s := range e.Steps() {
			out = append(out, s.Role)
		}
		return out
	}
	assert.Equal(t,
		[]string{RoleNormalityControl, RoleNormalityTreatment, RoleHomogeneity, RoleLocation},
		roles(Entry{Numerical: numericalFixture()}))
	assert.Equal(t,
		[]string{RoleNormalityControl, RoleNormalityTreatment, RoleLocation},
		roles(Entry{Numerical: rankFixture()}))
	assert.Equal(t, []string{RoleProportions}, roles(Entry{Categorical: categoricalFixture()}))
	assert.Empty(t, roles(Entry{Categorical: &abtest.CategoricalResult{}}))
}

func TestFormatJSON(t *testing.T) {
	r := &Report{RunID: "run-2"}
	r.Add(numericalFixture())
	r.Add(categoricalFixture())

	var buf bytes.Buffer
	require.NoError(t, FormatJSON(&buf, r))

	var got struct {
		RunID       string `json:"run_id"`
		Comparisons []struct {
			Kind     string
			Target   string
			Path     string
			Decision string
			Success  string
			Arms     []map[string]any
			Tests    []struct {
				Role     string
				Test     string
				P        float64
				Decision string
			}
		}
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "run-2", got.RunID)
	require.Len(t, got.Comparisons, 2)

	num := got.Comparisons[0]
	assert.Equal(t, "numerical", num.Kind)
	assert.Equal(t, "equal-variance", num.Path)
	assert.Equal(t, "reject", num.Decision)
	require.Len(t, num.Tests, 4)
	assert.Equal(t, RoleLocation, num.Tests[3].Role)
	assert.Equal(t, abmath.StudentT, num.Tests[3].Test)
	assert.Equal(t, "fail to reject", num.Tests[0].Decision)
	assert.Contains(t, num.Arms[0], "mean")
	assert.NotContains(t, num.Arms[0], "successes")

	cat := got.Comparisons[1]
	assert.Equal(t, "categorical", cat.Kind)
	assert.Equal(t, "yes", cat.Success)
	assert.Empty(t, cat.Path)
	assert.Empty(t, cat.Decision)
	assert.EqualValues(t, 35, cat.Arms[1]["successes"])
	require.Len(t, cat.Tests, 1)
	assert.Equal(t, "reject", cat.Tests[0].Decision)
}

func TestUndefinedHomogeneity(t *testing.T) {
	res := numericalFixture()
	res.Homogeneity.Statistic, res.Homogeneity.P = math.NaN(), math.NaN()
	res.Path = abtest.PathUnequalVariance
	res.Final.Test = abmath.WelchT
	r := &Report{}
	r.Add(res)

	var buf bytes.Buffer
	require.NoError(t, FormatText(&buf, r, false))
	assert.Contains(t, buf.String(), "  W=NaN p=NaN\n  Equal variances cannot be assessed; using Welch's t-test.\n")

	buf.Reset()
	require.NoError(t, FormatJSON(&buf, r))
	var got struct {
		Comparisons []struct {
			Tests []struct {
				Role      string
				Statistic *float64
				P         *float64
			}
		}
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Comparisons, 1)
	tests := got.Comparisons[0].Tests
	require.Len(t, tests, 4)
	assert.Equal(t, RoleHomogeneity, tests[2].Role)
	assert.Nil(t, tests[2].Statistic)
	assert.Nil(t, tests[2].P)
	require.NotNil(t, tests[3].P)
	assert.InDelta(t, 9.37e-7, *tests[3].P, 1e-12)
}

func TestFormatJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(&buf, &Report{}))
	assert.JSONEq(t, `{"comparisons": []}`, buf.String())
}

func TestFormatCSV(t *testing.T) {
	r := &Report{}
	r.Add(rankFixture())
	r.Add(categoricalFixture())

	var buf bytes.Buffer
	require.NoError(t, FormatCSV(&buf, r))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 1+3+1)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"latency", "numerical", RoleNormalityControl, abmath.ShapiroWilk,
		"0.7", "0.01", "0.05", "reject", "4", "0", ""}, rows[1])
	assert.Equal(t, RoleLocation, rows[3][2])
	assert.Equal(t, "need >= 5 samples to detect a difference at alpha level 0.05", rows[3][10])
	assert.Equal(t, []string{"clicked", "categorical", RoleProportions, abmath.ProportionsZ,
		"-2.3754", "0.0175", "0.05", "reject", "100", "100", ""}, rows[4])
}

func TestFormatHTML(t *testing.T) {
	res := categoricalFixture()
	res.Target = "<script>"
	r := &Report{}
	r.Add(numericalFixture())
	r.Add(res)

	var buf bytes.Buffer
	require.NoError(t, FormatHTML(&buf, r))
	got := buf.String()

	assert.Equal(t, 2, strings.Count(got, "<table"))
	assert.Contains(t, got, `<table class="abstat numerical">`)
	assert.Contains(t, got, "<caption>revenue</caption>")
	assert.Contains(t, got, "&lt;script&gt; (success: yes)")
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "<td>9.37e-07<td>")
	assert.Equal(t, 2, strings.Count(got, `<tr class="reject">`))
}

func TestWrite(t *testing.T) {
	r := &Report{}
	r.Add(categoricalFixture())
	for _, f := range Formats {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, r, f, false), f)
		assert.NotZero(t, buf.Len(), f)
	}
	err := Write(&bytes.Buffer{}, r, "yaml", false)
	assert.EqualError(t, err, `unknown format "yaml"`)
}
