// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

var csvHeader = []string{"target", "kind", "role", "test", "statistic", "p", "alpha", "decision", "n1", "n2", "warnings"}

// FormatCSV writes one row for every test of every comparison in r.
func FormatCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	ftoa := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	for _, e := range r.Entries {
		for _, s := range e.Steps() {
			row := []string{
				e.Target(), e.Kind(), s.Role, s.Test,
				ftoa(s.Statistic), ftoa(s.P), ftoa(s.Alpha),
				s.Decision().String(),
				strconv.Itoa(s.N1), strconv.Itoa(s.N2),
				strings.Join(warningStrings(s.Warnings), "; "),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
