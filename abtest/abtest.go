// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abtest compares the control and treatment arms of an A/B
// test.
//
// Numerical checks the distributional assumptions of its samples and
// chooses a parametric or rank-based test accordingly. Categorical
// compares the success proportions of binary outcomes. Both return a
// structured verdict; package report renders verdicts for people.
//
// Every decision is made by comparing a p-value against alpha. A
// p-value exactly equal to alpha does not reject.
package abtest

import (
	"log/slog"

	"github.com/abstat/abstat/abmath"
)

//go:generate mockgen -destination=mock_primitives_test.go -package=abtest github.com/abstat/abstat/abmath Primitives

// DefaultAlpha is the significance level used when Options.Alpha is
// zero.
const DefaultAlpha = 0.05

// Options configure a comparison. A nil *Options is valid and uses
// the defaults.
type Options struct {
	// Alpha is the significance level. If zero, DefaultAlpha is
	// used. It is not validated.
	Alpha float64

	// Primitives runs the underlying tests. If nil,
	// abmath.Default is used.
	Primitives abmath.Primitives

	// Logger receives a Debug record for every test run. If nil,
	// slog.Default() is used.
	Logger *slog.Logger
}

func (o *Options) alpha() float64 {
	if o == nil || o.Alpha == 0 {
		return DefaultAlpha
	}
	return o.Alpha
}

func (o *Options) primitives() abmath.Primitives {
	if o == nil || o.Primitives == nil {
		return abmath.Default
	}
	return o.Primitives
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// An Arm is one of the two groups of an A/B test.
type Arm int

const (
	Control Arm = iota
	Treatment
)

func (a Arm) String() string {
	if a == Control {
		return "control"
	}
	return "treatment"
}

// logResult records r at Debug level.
func logResult(log *slog.Logger, msg string, r abmath.Result, args ...any) {
	args = append(args,
		"test", r.Test,
		"statistic", r.Statistic,
		"p", r.P,
		"alpha", r.Alpha,
		"decision", r.Decision())
	log.Debug(msg, args...)
}
