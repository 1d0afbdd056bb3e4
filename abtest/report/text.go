// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"math"

	"github.com/abstat/abstat/abmath"
	"github.com/abstat/abstat/abtest"
	"github.com/abstat/abstat/internal/texttab"
	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	rejectStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	acceptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// textWriter accumulates the first write error so the narration
// doesn't have to check every line.
type textWriter struct {
	w     io.Writer
	color bool
	err   error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) style(s lipgloss.Style, str string) string {
	if !t.color {
		return str
	}
	return s.Render(str)
}

func (t *textWriter) table(tab *texttab.Table) {
	if t.err != nil {
		return
	}
	t.err = tab.Format(t.w)
}

// FormatText narrates every comparison in r. If color is set, headings
// and verdicts are styled with ANSI escapes.
func FormatText(w io.Writer, r *Report, color bool) error {
	t := &textWriter{w: w, color: color}
	if r.RunID != "" {
		t.printf("run %s\n\n", r.RunID)
	}
	for i, e := range r.Entries {
		if i > 0 {
			t.printf("\n")
		}
		if e.Numerical != nil {
			t.numerical(e.Numerical)
		} else {
			t.categorical(e.Categorical)
		}
	}
	return t.err
}

func (t *textWriter) heading(format string, args ...any) {
	t.printf("%s\n", t.style(headingStyle, fmt.Sprintf(format, args...)))
}

// statLine prints a result's statistic and p-value.
func (t *textWriter) statLine(r abmath.Result) {
	t.printf("  %s=%.4f p=%s\n", symbol(r.Test), r.Statistic, formatP(r.P))
}

func (t *textWriter) warnings(r abmath.Result) {
	for _, w := range r.Warnings {
		t.printf("  %s\n", t.style(warnStyle, "warning: "+w.Error()))
	}
}

// verdict prints the conclusion of a test. reject and accept complete
// the sentences "Reject H0: ..." and "Cannot reject H0: ...".
func (t *textWriter) verdict(r abmath.Result, reject, accept string) {
	if r.Reject() {
		t.printf("  %s\n", t.style(rejectStyle, fmt.Sprintf("Reject H0 (p < %v): %s.", r.Alpha, reject)))
	} else {
		t.printf("  %s\n", t.style(acceptStyle, fmt.Sprintf("Cannot reject H0 (p >= %v): %s.", r.Alpha, accept)))
	}
	t.warnings(r)
}

func (t *textWriter) numerical(r *abtest.NumericalResult) {
	t.heading("%s: numerical comparison at alpha=%v", r.Target, r.Alpha)
	t.printf("\n")

	t.heading("Normality (%s)", abmath.ShapiroWilk)
	tab := &texttab.Table{Indent: "  "}
	tab.Row().Cell("arm")
	for _, h := range []string{"n", "mean", "median", "stddev", "W", "p"} {
		tab.Cell(h, texttab.Right)
	}
	for _, arm := range []abtest.Arm{abtest.Control, abtest.Treatment} {
		sum, nr := r.Control, r.Normality[arm]
		if arm == abtest.Treatment {
			sum = r.Treatment
		}
		tab.Row().Cell(arm.String()).
			Cell(fmt.Sprint(sum.N), texttab.Right).
			Cell(fmt.Sprintf("%.4g", sum.Mean), texttab.Right).
			Cell(fmt.Sprintf("%.4g", sum.Median), texttab.Right).
			Cell(fmt.Sprintf("%.4g", sum.StdDev), texttab.Right).
			Cell(fmt.Sprintf("%.4f", nr.Statistic), texttab.Right).
			Cell(formatP(nr.P), texttab.Right)
	}
	t.table(tab)
	for _, arm := range []abtest.Arm{abtest.Control, abtest.Treatment} {
		t.warnings(r.Normality[arm])
	}
	if r.Normal() {
		t.printf("  Both arms are plausibly normal (p > %v).\n", r.Alpha)
	} else {
		for _, arm := range []abtest.Arm{abtest.Control, abtest.Treatment} {
			if r.Normality[arm].P <= r.Alpha {
				t.printf("  %s is not normal (p <= %v).\n", arm, r.Alpha)
			}
		}
		t.printf("  Using a rank test.\n")
	}
	t.printf("\n")

	if h := r.Homogeneity; h != nil {
		t.heading("Equal variances (%s)", h.Test)
		t.statLine(*h)
		switch {
		case math.IsNaN(h.P):
			t.printf("  Equal variances cannot be assessed; using %s.\n", r.Final.Test)
		case r.EqualVariance():
			t.printf("  Variances are plausibly equal (p > %v); using %s.\n", r.Alpha, r.Final.Test)
		default:
			t.printf("  Variances differ (p <= %v); using %s.\n", r.Alpha, r.Final.Test)
		}
		t.warnings(*h)
		t.printf("\n")
	}

	what := "means"
	if !r.Path.Parametric() {
		what = "distributions"
	}
	t.heading("%s", r.Final.Test)
	t.statLine(r.Final)
	t.verdict(r.Final,
		fmt.Sprintf("the %s of %s differ between control and treatment", what, r.Target),
		fmt.Sprintf("no evidence that the %s of %s differ", what, r.Target))
}

func (t *textWriter) categorical(r *abtest.CategoricalResult) {
	t.heading("%s: categorical comparison at alpha=%v, success is %q", r.Target, r.Alpha, r.Success)
	t.printf("\n")

	tab := &texttab.Table{Indent: "  "}
	tab.Row().Cell("arm")
	for _, h := range []string{"success", "failure", "n", "rate"} {
		tab.Cell(h, texttab.Right)
	}
	for _, arm := range []abtest.Arm{abtest.Control, abtest.Treatment} {
		c := r.Control
		if arm == abtest.Treatment {
			c = r.Treatment
		}
		tab.Row().Cell(arm.String()).
			Cell(fmt.Sprint(c.Successes), texttab.Right).
			Cell(fmt.Sprint(c.Failures()), texttab.Right).
			Cell(fmt.Sprint(c.N), texttab.Right).
			Cell(fmt.Sprintf("%.2f%%", 100*c.Proportion()), texttab.Right)
	}
	t.table(tab)

	if r.Proportions == nil && r.ChiSquare == nil {
		t.printf("\n  No tests requested.\n")
		return
	}
	if p := r.Proportions; p != nil {
		t.printf("\n")
		t.heading("%s", p.Test)
		t.statLine(*p)
		t.verdict(*p,
			fmt.Sprintf("the proportion of %q in %s differs between control and treatment", r.Success, r.Target),
			fmt.Sprintf("no evidence that the proportion of %q in %s differs", r.Success, r.Target))
	}
	if c := r.ChiSquare; c != nil {
		t.printf("\n")
		t.heading("%s", c.Test)
		t.statLine(*c)
		t.verdict(*c,
			fmt.Sprintf("%s depends on the arm", r.Target),
			fmt.Sprintf("%s is plausibly independent of the arm", r.Target))
	}
}
