// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"math"
	"testing"

	"github.com/johnsonc/neuroglia/trace"
)

func TestGenerate(t *testing.T) {
	sp := Params{}
	sp.Defaults()
	sp.Baseline = 2
	obs, calcium, spikes, err := sp.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if obs.Rows != sp.Frames || calcium.Rows != sp.Frames || spikes.Rows != sp.Frames {
		t.Fatalf("rows: %d, %d, %d != %d", obs.Rows, calcium.Rows, spikes.Rows, sp.Frames)
	}
	nms := trace.NeuronNames(obs)
	if len(nms) != sp.NNeurons {
		t.Fatalf("neurons: %d != %d", len(nms), sp.NNeurons)
	}

	tm, _ := trace.Times(obs)
	if math.Abs(tm[1]-tm[0]-1.0/sp.Hz) > 1.0e-10 {
		t.Errorf("time spacing: %v", tm[1]-tm[0])
	}

	dur := float64(sp.Frames) / sp.Hz
	for _, nm := range nms {
		yv, _ := trace.Col(obs, nm)
		cv, _ := trace.Col(calcium, nm)
		sv, _ := trace.Col(spikes, nm)

		mean := 0.0
		nspk := 0.0
		for i := range yv {
			mean += yv[i]
			nspk += sv[i]
			if cv[i] < 0 {
				t.Fatalf("negative calcium in %s at %d", nm, i)
			}
			if sv[i] != 0 && sv[i] != 1 {
				t.Fatalf("non-binary spike in %s at %d: %v", nm, i, sv[i])
			}
		}
		mean /= float64(len(yv))
		// baseline 2 plus mean calcium keeps the trace well above 2
		if mean < 2 {
			t.Errorf("mean of %s: %v < 2", nm, mean)
		}
		// about FireRate * duration spikes, very loosely
		if nspk < 0.3*sp.FireRate*dur || nspk > 3*sp.FireRate*dur {
			t.Errorf("spike count of %s: %v, expected near %v", nm, nspk, sp.FireRate*dur)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	sp := Params{}
	sp.Defaults()
	sp.NNeurons = 0
	if _, _, _, err := sp.Generate(); err == nil {
		t.Errorf("zero neurons should be an error")
	}
	sp.Defaults()
	sp.Hz = 0
	if _, _, _, err := sp.Generate(); err == nil {
		t.Errorf("zero Hz should be an error")
	}
}
