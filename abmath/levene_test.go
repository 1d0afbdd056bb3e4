// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"errors"
	"math"
	"testing"
)

func TestLevene(t *testing.T) {
	check := func(x1, x2 []float64, wantW, wantP float64) {
		t.Helper()
		w, p, err := LeveneTest(x1, x2)
		if err != nil {
			t.Errorf("%v vs %v: %v", x1, x2, err)
			return
		}
		if !near(w, wantW, 1e-9) || !near(p, wantP, 1e-4) {
			t.Errorf("%v vs %v: got W=%v p=%v, want W=%v p=%v", x1, x2, w, p, wantW, wantP)
		}
	}
	check([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 6, 8, 10}, 2.0571428571428574, 0.189404)

	// Identical spreads around different centers.
	check([]float64{5.1, 5.3, 5.0, 5.2, 5.4, 5.1}, []float64{6.0, 6.2, 5.9, 6.1, 6.3, 6.0}, 0, 1)

	// Order doesn't matter.
	check([]float64{5, 1, 3, 2, 4}, []float64{10, 8, 6, 4, 2}, 2.0571428571428574, 0.189404)
}

func TestLeveneErrors(t *testing.T) {
	if _, _, err := LeveneTest([]float64{1}, []float64{1, 2, 3}); !errors.Is(err, ErrSampleSize) {
		t.Errorf("got %v, want ErrSampleSize", err)
	}
}

func TestLeveneUndefined(t *testing.T) {
	// All deviations from the median are equal within each group.
	check := func(x1, x2 []float64) {
		t.Helper()
		w, p, err := LeveneTest(x1, x2)
		if err != nil {
			t.Fatalf("LeveneTest(%v, %v): %v", x1, x2, err)
		}
		if !math.IsNaN(w) || !math.IsNaN(p) {
			t.Errorf("LeveneTest(%v, %v) = %v, %v, want NaN, NaN", x1, x2, w, p)
		}
	}
	check([]float64{2, 2, 2}, []float64{7, 7})
	check([]float64{1, 1, 3, 3}, []float64{5, 5, 7, 7})
}
