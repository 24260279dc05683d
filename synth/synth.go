// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package synth generates synthetic calcium fluorescence traces with known
ground-truth spike trains, for testing the processing stages and for
producing demo data from the command line.

Each neuron fires as a Bernoulli process at FireRate, the calcium trace is
an AR(1) process driven by the spikes, and the observed fluorescence adds a
baseline and gaussian noise.
*/
package synth

import (
	"fmt"
	"math/rand"

	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/etable"
	"github.com/johnsonc/neuroglia/trace"
)

// Params are the synthetic trace generation parameters.
type Params struct {
	NNeurons int     `def:"3" min:"1" desc:"number of neurons (table columns) to generate"`
	Frames   int     `def:"3000" min:"1" desc:"number of frames (table rows) to generate"`
	Hz       float64 `def:"30" min:"0" desc:"frame rate in frames per second -- sets the Time column spacing"`
	G        float64 `def:"0.95" min:"0" desc:"AR(1) calcium decay coefficient per frame"`
	FireRate float64 `def:"0.5" min:"0" desc:"mean firing rate in spikes per second"`
	Baseline float64 `def:"0" desc:"constant fluorescence baseline added to every sample"`
	Seed     int64   `def:"1" desc:"random seed -- the global source is seeded at the start of Generate"`

	Noise erand.RndParams `view:"inline" desc:"observation noise added per sample -- Var is the sigma of the gaussian"`
}

func (sp *Params) Defaults() {
	sp.NNeurons = 3
	sp.Frames = 3000
	sp.Hz = 30
	sp.G = 0.95
	sp.FireRate = 0.5
	sp.Baseline = 0
	sp.Seed = 1
	sp.Noise.Mean = 0
	sp.Noise.Var = 0.3
	sp.Noise.Dist = erand.Gaussian
}

func (sp *Params) Update() {
}

// Generate returns the observed fluorescence table along with the
// ground-truth calcium and spike tables, all with the same Time base and
// neuron columns (neuron0 .. neuronN-1).
func (sp *Params) Generate() (obs, calcium, spikes *etable.Table, err error) {
	if sp.NNeurons <= 0 || sp.Frames <= 0 {
		return nil, nil, nil, fmt.Errorf("synth: NNeurons and Frames must be positive, got %d, %d", sp.NNeurons, sp.Frames)
	}
	if sp.Hz <= 0 {
		return nil, nil, nil, fmt.Errorf("synth: Hz must be positive, got %v", sp.Hz)
	}
	rand.Seed(sp.Seed)

	nms := make([]string, sp.NNeurons)
	for i := range nms {
		nms[i] = fmt.Sprintf("neuron%d", i)
	}
	obs = trace.NewTable(nms, sp.Frames)
	calcium = trace.NewTable(nms, sp.Frames)
	spikes = trace.NewTable(nms, sp.Frames)
	for _, dt := range []*etable.Table{obs, calcium, spikes} {
		tm, _ := trace.Times(dt)
		for t := range tm {
			tm[t] = float64(t) / sp.Hz
		}
	}

	pSpike := sp.FireRate / sp.Hz
	for _, nm := range nms {
		yv, _ := trace.Col(obs, nm)
		cv, _ := trace.Col(calcium, nm)
		sv, _ := trace.Col(spikes, nm)
		c := 0.0
		for t := 0; t < sp.Frames; t++ {
			s := 0.0
			if rand.Float64() < pSpike {
				s = 1
			}
			c = sp.G*c + s
			sv[t] = s
			cv[t] = c
			yv[t] = sp.Baseline + c + sp.Noise.Gen(-1)
		}
	}
	return obs, calcium, spikes, nil
}
