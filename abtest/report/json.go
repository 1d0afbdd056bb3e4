// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/json"
	"io"
	"math"

	"github.com/abstat/abstat/abmath"
	"github.com/abstat/abstat/abtest"
)

type jsonReport struct {
	RunID       string      `json:"run_id,omitempty"`
	Comparisons []jsonEntry `json:"comparisons"`
}

type jsonEntry struct {
	Kind     string           `json:"kind"`
	Target   string           `json:"target"`
	Alpha    float64          `json:"alpha"`
	Success  string           `json:"success,omitempty"`
	Path     *abtest.Path     `json:"path,omitempty"`
	Decision *abmath.Decision `json:"decision,omitempty"`
	Arms     []jsonArm        `json:"arms"`
	Tests    []jsonTest       `json:"tests"`
}

type jsonArm struct {
	Arm       string   `json:"arm"`
	N         int      `json:"n"`
	Mean      *float64 `json:"mean,omitempty"`
	Median    *float64 `json:"median,omitempty"`
	StdDev    *float64 `json:"stddev,omitempty"`
	Successes *int     `json:"successes,omitempty"`
}

type jsonTest struct {
	Role      string          `json:"role"`
	Test      string          `json:"test"`
	Statistic jsonFloat       `json:"statistic"`
	P         jsonFloat       `json:"p"`
	Alpha     float64         `json:"alpha"`
	Decision  abmath.Decision `json:"decision"`
	N1        int             `json:"n1"`
	N2        int             `json:"n2,omitempty"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// jsonFloat encodes NaN and infinities, which JSON cannot represent,
// as null.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(f))
}

// FormatJSON writes r as an indented JSON document.
func FormatJSON(w io.Writer, r *Report) error {
	out := jsonReport{RunID: r.RunID, Comparisons: []jsonEntry{}}
	for _, e := range r.Entries {
		je := jsonEntry{Kind: e.Kind(), Target: e.Target(), Tests: []jsonTest{}}
		if n := e.Numerical; n != nil {
			path, d := n.Path, n.Final.Decision()
			je.Alpha, je.Path, je.Decision = n.Alpha, &path, &d
			je.Arms = []jsonArm{summaryArm(abtest.Control, n.Control), summaryArm(abtest.Treatment, n.Treatment)}
		} else {
			c := e.Categorical
			je.Alpha, je.Success = c.Alpha, c.Success
			je.Arms = []jsonArm{countsArm(abtest.Control, c.Control), countsArm(abtest.Treatment, c.Treatment)}
		}
		for _, s := range e.Steps() {
			je.Tests = append(je.Tests, jsonTest{
				Role:      s.Role,
				Test:      s.Test,
				Statistic: jsonFloat(s.Statistic),
				P:         jsonFloat(s.P),
				Alpha:     s.Alpha,
				Decision:  s.Decision(),
				N1:        s.N1,
				N2:        s.N2,
				Warnings:  warningStrings(s.Warnings),
			})
		}
		out.Comparisons = append(out.Comparisons, je)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func summaryArm(arm abtest.Arm, s abtest.Summary) jsonArm {
	return jsonArm{Arm: arm.String(), N: s.N, Mean: &s.Mean, Median: &s.Median, StdDev: &s.StdDev}
}

func countsArm(arm abtest.Arm, c abmath.Counts) jsonArm {
	return jsonArm{Arm: arm.String(), N: c.N, Successes: &c.Successes}
}
