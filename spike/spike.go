// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spike turns spike-time tables (Time, Neuron) into trace tables:
binning spike times into per-bin counts, and gaussian-smoothing count
traces into firing-rate estimates.
*/
package spike

import (
	"fmt"
	"math"

	"github.com/emer/etable/v2/etable"
	"github.com/johnsonc/neuroglia/trace"
)

// NeuronCol is the neuron name column of a spike-time table.
const NeuronCol = "Neuron"

// BinParams bins a spike-time table into a count trace table: one row per
// bin of BinSize seconds spanning [Start, Stop), one column per neuron.
// The Time column holds the left edge of each bin.
type BinParams struct {
	BinSize float64 `def:"1" min:"0" desc:"bin width in seconds"`
	Start   float64 `desc:"left edge of the first bin, in seconds"`
	Stop    float64 `desc:"right edge of the last bin, in seconds -- must be greater than Start"`
}

func (bp *BinParams) Defaults() {
	bp.BinSize = 1
}

func (bp *BinParams) Update() {
}

// Bin returns the binned count trace table for the given spike-time table.
// Neuron columns appear in order of first appearance.  Spikes outside
// [Start, Stop) are ignored.
func (bp *BinParams) Bin(st *etable.Table) (*etable.Table, error) {
	if bp.BinSize <= 0 {
		return nil, fmt.Errorf("spike: bin size must be positive, got %v", bp.BinSize)
	}
	if bp.Stop <= bp.Start {
		return nil, fmt.Errorf("spike: stop %v must be greater than start %v", bp.Stop, bp.Start)
	}
	if _, err := st.ColByNameTry(trace.TimeCol); err != nil {
		return nil, fmt.Errorf("spike: not a spike-time table: %w", err)
	}
	if _, err := st.ColByNameTry(NeuronCol); err != nil {
		return nil, fmt.Errorf("spike: not a spike-time table: %w", err)
	}
	nbins := int(math.Ceil((bp.Stop - bp.Start) / bp.BinSize))

	var nms []string
	seen := map[string]bool{}
	for r := 0; r < st.Rows; r++ {
		nm := st.CellString(NeuronCol, r)
		if !seen[nm] {
			seen[nm] = true
			nms = append(nms, nm)
		}
	}
	dt := trace.NewTable(nms, nbins)
	tm, _ := trace.Times(dt)
	for b := range tm {
		tm[b] = bp.Start + float64(b)*bp.BinSize
	}
	for r := 0; r < st.Rows; r++ {
		tv := st.CellFloat(trace.TimeCol, r)
		if tv < bp.Start || tv >= bp.Stop {
			continue
		}
		b := int((tv - bp.Start) / bp.BinSize)
		if b >= nbins {
			continue
		}
		cv, err := trace.Col(dt, st.CellString(NeuronCol, r))
		if err != nil {
			return nil, err
		}
		cv[b]++
	}
	return dt, nil
}

// SmoothParams gaussian-smooths a binned count trace into a firing-rate
// estimate in spikes per second.
type SmoothParams struct {
	Sigma   float64 `def:"0.25" min:"0" desc:"gaussian kernel standard deviation in seconds"`
	BinSize float64 `def:"1" min:"0" desc:"bin width of the input table in seconds -- converts counts to rates and sets the kernel width in bins"`
}

func (sp *SmoothParams) Defaults() {
	sp.Sigma = 0.25
	sp.BinSize = 1
}

func (sp *SmoothParams) Update() {
}

// Transform returns a copy of dt with every neuron column smoothed by a
// normalized gaussian kernel (truncated at 4 sigma) and scaled from counts
// per bin to spikes per second.  The input table is not modified.
func (sp *SmoothParams) Transform(dt *etable.Table) (*etable.Table, error) {
	if sp.Sigma <= 0 || sp.BinSize <= 0 {
		return nil, fmt.Errorf("spike: sigma and bin size must be positive, got %v, %v", sp.Sigma, sp.BinSize)
	}
	kern := Kernel(sp.Sigma / sp.BinSize)
	out := dt.Clone()
	for _, nm := range trace.NeuronNames(out) {
		x, err := trace.Col(out, nm)
		if err != nil {
			return nil, err
		}
		sm := convolve(x, kern)
		for i := range x {
			x[i] = sm[i] / sp.BinSize
		}
	}
	return out, nil
}

// Kernel returns a normalized gaussian kernel with the given standard
// deviation in bins, truncated at 4 sigma (always at least 1 bin wide).
func Kernel(sigmaBins float64) []float64 {
	k := int(math.Ceil(4 * sigmaBins))
	kern := make([]float64, 2*k+1)
	sum := 0.0
	for i := range kern {
		d := float64(i - k)
		kern[i] = math.Exp(-d * d / (2 * sigmaBins * sigmaBins))
		sum += kern[i]
	}
	for i := range kern {
		kern[i] /= sum
	}
	return kern
}

// convolve convolves x with the odd-length kernel, truncating (and
// renormalizing) the kernel at the array ends so mass is conserved.
func convolve(x, kern []float64) []float64 {
	k := len(kern) / 2
	out := make([]float64, len(x))
	for i := range x {
		sum, wsum := 0.0, 0.0
		for j, kv := range kern {
			m := i + j - k
			if m < 0 || m >= len(x) {
				continue
			}
			sum += kv * x[m]
			wsum += kv
		}
		if wsum > 0 {
			out[i] = sum / wsum
		}
	}
	return out
}
