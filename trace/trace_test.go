// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"math"
	"testing"

	"github.com/emer/etable/v2/etensor"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-10

func TestRobustStats(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	if md := Median(x); math.Abs(md-3) > difTol {
		t.Errorf("Median err: %v != 3", md)
	}
	if md := Median([]float64{1, 2, 3, 4}); math.Abs(md-2.5) > difTol {
		t.Errorf("Median even err: %v != 2.5", md)
	}
	if rs := RobustStd(x); math.Abs(rs-1.4826) > difTol {
		t.Errorf("RobustStd err: %v != 1.4826", rs)
	}
	if !math.IsNaN(Median(nil)) || !math.IsNaN(RobustStd(nil)) || !math.IsNaN(Percentile(nil, 50)) {
		t.Errorf("empty input should yield NaN")
	}
	// constant data has zero spread
	c := []float64{2, 2, 2, 2}
	if rs := RobustStd(c); rs != 0 {
		t.Errorf("RobustStd const err: %v != 0", rs)
	}
}

func TestNewTable(t *testing.T) {
	dt := NewTable([]string{"a", "b"}, 4)
	if dt.Rows != 4 {
		t.Errorf("rows: %d != 4", dt.Rows)
	}
	nms := NeuronNames(dt)
	if len(nms) != 2 || nms[0] != "a" || nms[1] != "b" {
		t.Errorf("neuron names: %v", nms)
	}
	if err := SetCol(dt, "a", []float64{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	mm, err := Range(dt, "a")
	if err != nil {
		t.Fatal(err)
	}
	if mm.Min != 1 || mm.Max != 4 {
		t.Errorf("range: %v", mm)
	}
	if _, err := Col(dt, "nope"); err == nil {
		t.Errorf("missing column should be an error")
	}
	if err := SetCol(dt, "b", []float64{1}); err == nil {
		t.Errorf("length mismatch should be an error")
	}
}

func TestTablize(t *testing.T) {
	// 2 neurons, 7 frames at 3 Hz: 1 leading frame dropped, 2 whole seconds
	raw := etensor.NewFloat64([]int{2, 7}, nil, []string{"Neuron", "Frame"})
	copy(raw.Values, []float64{
		99, 1, 2, 3, 4, 5, 6,
		99, 10, 20, 30, 40, 50, 60,
	})
	tp := TablizeParams{}
	tp.Defaults()
	tp.Hz = 3
	dt, err := tp.Tablize(raw)
	if err != nil {
		t.Fatal(err)
	}
	if dt.Rows != 2 {
		t.Fatalf("rows: %d != 2", dt.Rows)
	}
	c0, _ := Col(dt, "neuron0")
	c1, _ := Col(dt, "neuron1")
	want0 := []float64{2, 5}
	want1 := []float64{20, 50}
	for i := range want0 {
		if math.Abs(c0[i]-want0[i]) > difTol || math.Abs(c1[i]-want1[i]) > difTol {
			t.Errorf("tablize row %d: got %v, %v want %v, %v", i, c0[i], c1[i], want0[i], want1[i])
		}
	}
	tm, _ := Times(dt)
	if tm[0] != 0 || tm[1] != 1 {
		t.Errorf("times: %v", tm)
	}

	if _, err := tp.Tablize(etensor.NewFloat64([]int{2}, nil, nil)); err == nil {
		t.Errorf("1D tensor should be an error")
	}
	tp.Hz = 0
	if _, err := tp.Tablize(raw); err == nil {
		t.Errorf("zero Hz should be an error")
	}
}
