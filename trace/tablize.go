// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"fmt"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
)

// TablizeParams converts a raw acquisition tensor of fluorescence traces,
// shaped neurons x frames and sampled at Hz frames per second, into a
// per-second trace table: leading frames that do not fill a whole second
// are dropped, and each second's frames are averaged into one sample.
type TablizeParams struct {
	Hz int `def:"30" min:"1" desc:"acquisition frame rate in frames per second -- each Hz consecutive frames are averaged into one per-second sample"`
}

func (tp *TablizeParams) Defaults() {
	tp.Hz = 30
}

func (tp *TablizeParams) Update() {
}

// Tablize converts the raw neurons x frames tensor into a per-second trace
// table with a Time column (whole seconds) and one column per neuron, named
// neuron0 .. neuronN-1.
func (tp *TablizeParams) Tablize(raw *etensor.Float64) (*etable.Table, error) {
	if tp.Hz <= 0 {
		return nil, fmt.Errorf("trace: Hz must be positive, got %d", tp.Hz)
	}
	if raw.NumDims() != 2 {
		return nil, fmt.Errorf("trace: raw tensor must be 2D (neurons x frames), got %d dims", raw.NumDims())
	}
	nn := raw.Dim(0)
	nf := raw.Dim(1)
	secs := nf / tp.Hz
	if secs == 0 {
		return nil, fmt.Errorf("trace: %d frames is less than one second at %d Hz", nf, tp.Hz)
	}
	dif := nf - secs*tp.Hz // leading partial second is dropped

	nms := make([]string, nn)
	for i := range nms {
		nms[i] = fmt.Sprintf("neuron%d", i)
	}
	dt := NewTable(nms, secs)
	tm, _ := Times(dt)
	for s := 0; s < secs; s++ {
		tm[s] = float64(s)
	}
	for i := 0; i < nn; i++ {
		row := raw.Values[i*nf+dif : (i+1)*nf]
		cv, err := Col(dt, nms[i])
		if err != nil {
			return nil, err
		}
		for s := 0; s < secs; s++ {
			sum := 0.0
			for f := 0; f < tp.Hz; f++ {
				sum += row[s*tp.Hz+f]
			}
			cv[s] = sum / float64(tp.Hz)
		}
	}
	return dt, nil
}
