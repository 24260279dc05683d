// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package dff computes delta-F-over-F normalization of fluorescence trace
tables: the baseline F is estimated per neuron as a centered rolling
percentile, and each sample becomes (F(t) - baseline(t)) / baseline(t).
*/
package dff

import (
	"fmt"

	"github.com/emer/etable/v2/etable"
	"github.com/johnsonc/neuroglia/trace"
)

// Params are the delta-F-over-F normalization parameters.
// The literature suggests an 8th-percentile baseline; the median (50) is
// more robust when transients are dense.
type Params struct {
	Window     int     `def:"180" min:"1" desc:"width of the centered rolling window, in samples, over which the baseline percentile is taken"`
	Percentile float64 `def:"8" min:"0" max:"100" desc:"percentile of the window used as the baseline estimate"`

	Baselines map[string][]float64 `view:"-" json:"-" xml:"-" desc:"per-column baseline from the last Transform"`
}

func (np *Params) Defaults() {
	np.Window = 180
	np.Percentile = 8
}

func (np *Params) Update() {
}

// Transform returns a copy of dt with every neuron column replaced by its
// delta-F-over-F normalization.  The input table is not modified.
func (np *Params) Transform(dt *etable.Table) (*etable.Table, error) {
	if np.Window <= 0 {
		return nil, fmt.Errorf("dff: window must be positive, got %d", np.Window)
	}
	if np.Percentile < 0 || np.Percentile > 100 {
		return nil, fmt.Errorf("dff: percentile must be in [0, 100], got %v", np.Percentile)
	}
	out := dt.Clone()
	np.Baselines = make(map[string][]float64)
	for _, nm := range trace.NeuronNames(out) {
		x, err := trace.Col(out, nm)
		if err != nil {
			return nil, err
		}
		bl := Baseline(x, np.Window, np.Percentile)
		np.Baselines[nm] = bl
		for i := range x {
			if bl[i] == 0 {
				return nil, fmt.Errorf("dff: zero baseline in column %s at row %d", nm, i)
			}
			x[i] = (x[i] - bl[i]) / bl[i]
		}
	}
	return out, nil
}

// Baseline returns the centered rolling-percentile baseline of x.  Windows
// are only taken where they fit entirely within x; the ends are filled by
// extending the first and last complete-window values outward.
func Baseline(x []float64, window int, pct float64) []float64 {
	n := len(x)
	bl := make([]float64, n)
	if n == 0 {
		return bl
	}
	if window > n {
		window = n
	}
	lo := (window - 1) / 2
	hi := n - (window - lo) // last index with a full window
	for i := lo; i <= hi; i++ {
		bl[i] = trace.Percentile(x[i-lo:i-lo+window], pct)
	}
	for i := 0; i < lo; i++ { // backfill
		bl[i] = bl[lo]
	}
	for i := hi + 1; i < n; i++ { // forward fill
		bl[i] = bl[hi]
	}
	return bl
}
