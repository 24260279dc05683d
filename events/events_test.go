// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"math"
	"testing"

	"github.com/johnsonc/neuroglia/trace"
)

const difTol = 1.0e-10

func TestRescale(t *testing.T) {
	dt := trace.NewTable([]string{"a"}, 3)
	if err := trace.SetCol(dt, "a", []float64{0, 1, 0.2}); err != nil {
		t.Fatal(err)
	}
	rp := RescaleParams{}
	rp.Defaults()
	out, err := rp.Transform(dt)
	if err != nil {
		t.Fatal(err)
	}
	cv, _ := trace.Col(out, "a")
	want := []float64{0, math.Log1p(5), math.Log1p(1)}
	for i := range want {
		if math.Abs(cv[i]-want[i]) > difTol {
			t.Errorf("rescale at %d: %v != %v", i, cv[i], want[i])
		}
	}

	rp.LogTransform = false
	out, err = rp.Transform(dt)
	if err != nil {
		t.Fatal(err)
	}
	cv, _ = trace.Col(out, "a")
	if cv[1] != 5 {
		t.Errorf("linear rescale: %v != 5", cv[1])
	}

	rp.LogTransform = true
	if err := trace.SetCol(dt, "a", []float64{-1, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if _, err := rp.Transform(dt); err == nil {
		t.Errorf("log of nonpositive argument should be an error")
	}
}

func TestDetect(t *testing.T) {
	dt := trace.NewTable([]string{"a", "b"}, 4)
	tm, _ := trace.Times(dt)
	for i := range tm {
		tm[i] = float64(i) * 0.5
	}
	trace.SetCol(dt, "a", []float64{0, 0.5, 0, 0.7})
	trace.SetCol(dt, "b", []float64{0.9, 0, 0, 0})
	dp := DetectParams{}
	dp.Defaults()
	evts, err := dp.Detect(dt)
	if err != nil {
		t.Fatal(err)
	}
	if evts.Rows != 3 {
		t.Fatalf("event rows: %d != 3", evts.Rows)
	}
	// time-sorted: b@0, a@0.5, a@1.5
	wantTimes := []float64{0, 0.5, 1.5}
	wantNeurons := []string{"b", "a", "a"}
	wantMags := []float64{0.9, 0.5, 0.7}
	for i := range wantTimes {
		if evts.CellFloat(trace.TimeCol, i) != wantTimes[i] {
			t.Errorf("event %d time: %v != %v", i, evts.CellFloat(trace.TimeCol, i), wantTimes[i])
		}
		if evts.CellString(NeuronCol, i) != wantNeurons[i] {
			t.Errorf("event %d neuron: %v != %v", i, evts.CellString(NeuronCol, i), wantNeurons[i])
		}
		if evts.CellFloat(MagnitudeCol, i) != wantMags[i] {
			t.Errorf("event %d magnitude: %v != %v", i, evts.CellFloat(MagnitudeCol, i), wantMags[i])
		}
	}

	sum, err := Summarize(evts)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Rows != 2 {
		t.Fatalf("summary rows: %d != 2", sum.Rows)
	}
	for i := 0; i < sum.Rows; i++ {
		nm := sum.CellString(NeuronCol, i)
		cnt := sum.CellFloat(MagnitudeCol+":Count", i)
		mean := sum.CellFloat(MagnitudeCol+":Mean", i)
		switch nm {
		case "a":
			if cnt != 2 || math.Abs(mean-0.6) > difTol {
				t.Errorf("summary a: count %v mean %v", cnt, mean)
			}
		case "b":
			if cnt != 1 || math.Abs(mean-0.9) > difTol {
				t.Errorf("summary b: count %v mean %v", cnt, mean)
			}
		default:
			t.Errorf("unexpected summary neuron %q", nm)
		}
	}
}

func TestSummarizeErrors(t *testing.T) {
	dt := trace.NewTable([]string{"a"}, 1)
	if _, err := Summarize(dt); err == nil {
		t.Errorf("non-event table should be an error")
	}
}
