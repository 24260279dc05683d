// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package events rescales detected event magnitudes, extracts threshold
crossings from trace tables into event tables (Time, Neuron, Magnitude),
and summarizes events per neuron.
*/
package events

import (
	"fmt"
	"math"

	"github.com/emer/etable/v2/etable"
	"github.com/johnsonc/neuroglia/trace"
)

// RescaleParams compresses event magnitudes: each sample is multiplied by
// Scale and then optionally log(1+x) transformed.
type RescaleParams struct {
	Scale        float64 `def:"5" desc:"multiplier applied to every sample before the log transform"`
	LogTransform bool    `def:"true" desc:"apply log(1+x) after scaling, compressing large magnitudes"`
}

func (rp *RescaleParams) Defaults() {
	rp.Scale = 5
	rp.LogTransform = true
}

func (rp *RescaleParams) Update() {
}

// Transform returns a copy of dt with every neuron column rescaled.
// The input table is not modified.
func (rp *RescaleParams) Transform(dt *etable.Table) (*etable.Table, error) {
	out := dt.Clone()
	for _, nm := range trace.NeuronNames(out) {
		x, err := trace.Col(out, nm)
		if err != nil {
			return nil, err
		}
		for i := range x {
			v := x[i] * rp.Scale
			if rp.LogTransform {
				if v <= -1 {
					return nil, fmt.Errorf("events: log transform of %v in column %s at row %d", v, nm, i)
				}
				v = math.Log1p(v)
			}
			x[i] = v
		}
	}
	return out, nil
}
