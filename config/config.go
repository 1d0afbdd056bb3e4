// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads experiment files and environment defaults.
//
// An experiment file is a YAML document naming the two arm files and
// the comparisons to run between them:
//
//	alpha: 0.05
//	control: control.csv
//	treatment:
//	  path: arms.xlsx
//	  sheet: treatment
//	comparisons:
//	  - kind: numerical
//	    target: revenue
//	  - kind: categorical
//	    target: clicked
//	    success: "yes"
//	    chisquare: false
//
// Relative arm paths are resolved against the experiment file's
// directory.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/abstat/abstat/abtest"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Kinds of comparison.
const (
	Numerical   = "numerical"
	Categorical = "categorical"
)

// An Experiment is a parsed experiment file.
type Experiment struct {
	// Name labels the experiment in reports. It defaults to the
	// file name.
	Name string `yaml:"name"`

	// Alpha is the significance level of every comparison that
	// doesn't set its own.
	Alpha float64 `yaml:"alpha" validate:"gt=0,lt=1"`

	Control   Arm `yaml:"control"`
	Treatment Arm `yaml:"treatment"`

	Comparisons []Comparison `yaml:"comparisons" validate:"required,min=1,dive"`
}

// An Arm locates the observations of one arm. In YAML it is either a
// path or a mapping with path and sheet keys.
type Arm struct {
	Path string `yaml:"path" validate:"required"`

	// Sheet selects a worksheet of an XLSX workbook.
	Sheet string `yaml:"sheet"`
}

// UnmarshalYAML accepts the scalar shorthand for an Arm.
func (a *Arm) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		a.Path = n.Value
		return nil
	}
	type plain Arm
	return n.Decode((*plain)(a))
}

// A Comparison is one test between the arms.
type Comparison struct {
	Kind   string `yaml:"kind" validate:"required,oneof=numerical categorical"`
	Target string `yaml:"target" validate:"required"`

	// Success is the outcome counted as a success. It is required
	// for categorical comparisons.
	Success string `yaml:"success" validate:"required_if=Kind categorical"`

	// ZTest and ChiSquare select the categorical tests. Both
	// default to true.
	ZTest     *bool `yaml:"ztest"`
	ChiSquare *bool `yaml:"chisquare"`

	// Alpha overrides the experiment's significance level.
	Alpha float64 `yaml:"alpha" validate:"omitempty,gt=0,lt=1"`
}

// Tests returns the categorical tests c selects.
func (c Comparison) Tests() abtest.CategoricalTests {
	enabled := func(b *bool) bool { return b == nil || *b }
	return abtest.CategoricalTests{Proportions: enabled(c.ZTest), ChiSquare: enabled(c.ChiSquare)}
}

// AlphaOr returns c's significance level, or def if c doesn't set one.
func (c Comparison) AlphaOr(def float64) float64 {
	if c.Alpha != 0 {
		return c.Alpha
	}
	return def
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their YAML names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		return name
	})
	return v
}

// Load reads and validates the experiment file at path. An alpha
// missing from the file is taken from defs.
func Load(path string, defs Defaults) (*Experiment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	e, err := Parse(f, defs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if e.Name == "" {
		e.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	dir := filepath.Dir(path)
	for _, arm := range []*Arm{&e.Control, &e.Treatment} {
		if !filepath.IsAbs(arm.Path) {
			arm.Path = filepath.Join(dir, arm.Path)
		}
	}
	return e, nil
}

// Parse decodes and validates an experiment from r. Unknown keys are
// an error.
func Parse(r io.Reader, defs Defaults) (*Experiment, error) {
	var e Experiment
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&e); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty experiment")
		}
		return nil, err
	}
	if e.Alpha == 0 {
		e.Alpha = defs.alpha()
	}
	if err := validate.Struct(&e); err != nil {
		return nil, validationError(err)
	}
	return &e, nil
}

// validationError rewrites validator errors as "field: reason" lines.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var msgs []string
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Experiment.")
		var reason string
		switch fe.Tag() {
		case "required", "required_if":
			reason = "missing"
		case "oneof":
			reason = fmt.Sprintf("%q is not one of %s", fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
		case "gt", "lt":
			reason = fmt.Sprintf("%v is outside (0, 1)", fe.Value())
		case "min":
			reason = "must not be empty"
		default:
			reason = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		msgs = append(msgs, field+": "+reason)
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Environment variables read by LoadDefaults.
const (
	EnvAlpha  = "ABSTAT_ALPHA"
	EnvFormat = "ABSTAT_FORMAT"
)

// Defaults holds settings taken from the environment. Zero fields
// mean the setting was not given.
type Defaults struct {
	Alpha  float64
	Format string `validate:"omitempty,oneof=text json csv html"`
}

func (d Defaults) alpha() float64 {
	if d.Alpha != 0 {
		return d.Alpha
	}
	return abtest.DefaultAlpha
}

// LoadDefaults reads settings from the process environment and from
// envFile, a dotenv file. The process environment takes precedence.
// If envFile is empty, ".env" is read if it exists.
func LoadDefaults(envFile string) (Defaults, error) {
	var d Defaults
	file, err := readEnvFile(envFile)
	if err != nil {
		return d, err
	}
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return file[key]
	}

	if v := lookup(EnvAlpha); v != "" {
		d.Alpha, err = strconv.ParseFloat(v, 64)
		if err != nil || d.Alpha <= 0 || d.Alpha >= 1 {
			return d, fmt.Errorf("%s=%s: alpha must be a number in (0, 1)", EnvAlpha, v)
		}
	}
	d.Format = lookup(EnvFormat)
	if err := validate.Struct(d); err != nil {
		return d, fmt.Errorf("%s=%s: unknown format", EnvFormat, d.Format)
	}
	return d, nil
}

func readEnvFile(name string) (map[string]string, error) {
	optional := name == ""
	if optional {
		name = ".env"
	}
	env, err := godotenv.Read(name)
	if optional && errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return env, err
}
