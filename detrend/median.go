// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package detrend removes slow drift from fluorescence trace tables, using
either a running median filter or Savitzky-Golay smoothing to estimate the
baseline, which is then subtracted from each neuron column.
*/
package detrend

import (
	"fmt"
	"sort"

	"github.com/emer/etable/v2/etable"
	"github.com/johnsonc/neuroglia/trace"
)

// MedianParams detrends traces by subtracting a running-median baseline.
// The baseline is clipped above at PeakStdThreshold robust standard
// deviations so that dense transients do not inflate it.
type MedianParams struct {
	Window           int     `def:"101" desc:"width of the running median window in samples -- must be odd -- should be much longer than a single calcium transient"`
	PeakStdThreshold float64 `def:"4" min:"0" desc:"clip the baseline at this many robust (MAD-based) standard deviations of itself -- keeps runs of large transients from being absorbed into the baseline"`

	Baselines map[string][]float64 `view:"-" json:"-" xml:"-" desc:"per-column baseline from the last Transform"`
}

func (mp *MedianParams) Defaults() {
	mp.Window = 101
	mp.PeakStdThreshold = 4
}

func (mp *MedianParams) Update() {
}

// Transform returns a copy of dt with the running-median baseline subtracted
// from every neuron column.  The input table is not modified.
func (mp *MedianParams) Transform(dt *etable.Table) (*etable.Table, error) {
	if mp.Window <= 0 || mp.Window%2 == 0 {
		return nil, fmt.Errorf("detrend: median window must be positive and odd, got %d", mp.Window)
	}
	out := dt.Clone()
	mp.Baselines = make(map[string][]float64)
	for _, nm := range trace.NeuronNames(out) {
		x, err := trace.Col(out, nm)
		if err != nil {
			return nil, err
		}
		mf := MedianFilter(x, mp.Window)
		clip := mp.PeakStdThreshold * trace.RobustStd(mf)
		for i, v := range mf {
			if v > clip {
				mf[i] = clip
			}
		}
		mp.Baselines[nm] = mf
		for i := range x {
			x[i] -= mf[i]
		}
	}
	return out, nil
}

// MedianFilter returns the running median of x with the given odd window
// width.  Samples beyond the ends are treated as zero.
func MedianFilter(x []float64, window int) []float64 {
	k := window / 2
	out := make([]float64, len(x))
	buf := make([]float64, window)
	for i := range x {
		buf = buf[:0]
		for j := i - k; j <= i+k; j++ {
			if j < 0 || j >= len(x) {
				buf = append(buf, 0)
			} else {
				buf = append(buf, x[j])
			}
		}
		sort.Float64s(buf)
		out[i] = buf[k]
	}
	return out
}
