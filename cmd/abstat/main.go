// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Abstat tests whether a treatment group differs from a control group.
//
// Usage:
//
//	abstat numerical -t column [--alpha a] control.csv treatment.csv
//	abstat categorical -t column --success value [--ztest=false] [--chisquare=false] control.csv treatment.csv
//	abstat run experiment.yaml
//
// Each arm is read from a CSV file or an XLSX workbook with a header
// row naming the columns. The --control-sheet and --treatment-sheet
// flags select worksheets, so both arms may live in one workbook.
//
// The numerical command compares a continuous column. Each arm is
// first tested for normality with the Shapiro-Wilk test. If both arms
// are plausibly normal, Levene's test decides between Student's t-test
// (equal variances) and Welch's t-test; otherwise the arms are compared
// with the Mann-Whitney U-test.
//
// The categorical command counts the observations equal to the
// success value in each arm and compares the proportions with a
// two-proportion z-test and a chi-square test of independence with
// Yates' continuity correction. Either test may be turned off.
//
// The run command reads an experiment file listing several comparisons
// of the same two arms and runs them concurrently. Results are reported
// in file order.
//
// Every test rejects its null hypothesis if its p-value is below the
// significance level alpha, 0.05 by default. The default alpha and
// output format may be set with the ABSTAT_ALPHA and ABSTAT_FORMAT
// environment variables or in a .env file.
//
// The --format flag selects text (the default), json, csv or html
// output. Text output narrates each step of a comparison. The --color
// flag controls whether verdicts are colored: auto (when writing to a
// terminal), always or never.
//
// Abstat exits with status 0 when all comparisons ran, whatever their
// verdicts, 1 if a file could not be read or a test could not be
// computed, and 2 on a usage error.
//
// # Example
//
// Given control.csv
//
//	user,revenue,clicked
//	u01,5.1,click
//	...
//
// and a treatment.csv with the same columns,
//
//	$ abstat numerical -t revenue control.csv treatment.csv
//	revenue: numerical comparison at alpha=0.05
//
//	Normality (Shapiro-Wilk)
//	  arm        n   mean  median  stddev       W       p
//	  control    6  5.183    5.15  0.1472  0.9580  0.8043
//	  treatment  6  6.083    6.05  0.1472  0.9580  0.8043
//	  Both arms are plausibly normal (p > 0.05).
//	...
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit statuses.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// A usageError is an error in how abstat was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{fmt.Errorf(format, args...)}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var uerr *usageError
	if errors.As(err, &uerr) {
		return exitUsage
	}
	return exitError
}

func main() {
	if err := abstat(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "abstat: %s\n", err)
		if exitCode(err) == exitUsage {
			fmt.Fprintf(os.Stderr, "Run 'abstat --help' for usage.\n")
		}
		os.Exit(exitCode(err))
	}
}
