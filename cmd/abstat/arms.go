// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"github.com/abstat/abstat/config"
	"github.com/abstat/abstat/dataset"
	"github.com/spf13/pflag"
)

// armFlags are the flags locating the two arms.
type armFlags struct {
	controlSheet, treatmentSheet string
}

func (a *armFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&a.controlSheet, "control-sheet", "", "read the control arm from XLSX `sheet`")
	fs.StringVar(&a.treatmentSheet, "treatment-sheet", "", "read the treatment arm from XLSX `sheet`")
}

func (a *armFlags) arms(args []string) (control, treatment config.Arm) {
	return config.Arm{Path: args[0], Sheet: a.controlSheet}, config.Arm{Path: args[1], Sheet: a.treatmentSheet}
}

// openArms reads the tables of both arms.
func openArms(log *slog.Logger, control, treatment config.Arm) (c, t *dataset.Table, err error) {
	c, err = dataset.Open(control.Path, control.Sheet)
	if err != nil {
		return nil, nil, err
	}
	t, err = dataset.Open(treatment.Path, treatment.Sheet)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("read arms", "control", c.Name, "control_rows", len(c.Rows), "treatment", t.Name, "treatment_rows", len(t.Rows))
	return c, t, nil
}
