// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package deconv infers spike trains from delta-F-over-F calcium traces by
OASIS-style constrained AR(1) deconvolution: the denoised calcium trace is
the closest trace to the observation that decays geometrically between
spikes, found by monotone pool merging, with the sparsity penalty tuned to
the estimated noise level.

The AR coefficient, noise level and baseline are estimated per neuron when
not given, so the default parameters work directly on normalized traces.
*/
package deconv

import (
	"fmt"

	"github.com/emer/etable/v2/etable"
	"github.com/goki/ki/kit"
	"github.com/johnsonc/neuroglia/trace"
)

// Outputs are the available deconvolution output signals.
type Outputs int

//go:generate stringer -type=Outputs

var KiT_Outputs = kit.Enums.AddEnum(OutputsN, kit.NotBitFlag, nil)

func (ev Outputs) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Outputs) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Spikes writes the inferred spike signal s[t] = c[t] - g c[t-1], clamped at 0
	Spikes Outputs = iota

	// Denoised writes the denoised, baseline-subtracted calcium trace c
	Denoised

	OutputsN
)

// Fit holds the per-column parameters resolved during a Transform.
type Fit struct {
	G   float64 `desc:"AR(1) coefficient used"`
	Sn  float64 `desc:"noise standard deviation used"`
	B   float64 `desc:"baseline subtracted before solving"`
	Lam float64 `desc:"L1 penalty at the noise-constrained solution"`
}

// Params are the deconvolution parameters.  Zero values for G and Sn mean
// estimate-per-column; the baseline is estimated as a low percentile of the
// trace unless OptimizeB is off.
type Params struct {
	Output    Outputs `desc:"which signal Transform writes: inferred spikes or the denoised calcium trace"`
	G         float64 `min:"0" max:"1" desc:"AR(1) decay coefficient per sample -- 0 means estimate from the lag-2 / lag-1 autocovariance ratio"`
	Sn        float64 `min:"0" desc:"observation noise standard deviation -- 0 means estimate from the high-frequency power spectrum"`
	Lam       float64 `min:"0" desc:"explicit L1 penalty -- 0 means tune the penalty so the residual matches the noise level"`
	OptimizeB bool    `def:"true" desc:"estimate and subtract a baseline (BPct percentile of the trace) before solving"`
	BNonNeg   bool    `def:"true" desc:"constrain the estimated baseline to be non-negative"`
	BPct      float64 `def:"15" min:"0" max:"100" desc:"percentile of the trace used as the baseline estimate"`
	MinSpike  float64 `min:"0" desc:"inferred spikes below this floor are zeroed in Spikes output -- 0 disables"`
	Threshold float64 `def:"0.5" min:"0" desc:"spike level above which Predict calls a binary event"`

	Fits map[string]Fit `view:"-" json:"-" xml:"-" desc:"per-column fit parameters from the last Transform"`
}

func (dp *Params) Defaults() {
	dp.Output = Spikes
	dp.G = 0
	dp.Sn = 0
	dp.Lam = 0
	dp.OptimizeB = true
	dp.BNonNeg = true
	dp.BPct = 15
	dp.MinSpike = 0
	dp.Threshold = 0.5
}

func (dp *Params) Update() {
}

// Transform returns a copy of dt with every neuron column replaced by the
// selected deconvolution output.  The input table is not modified.
func (dp *Params) Transform(dt *etable.Table) (*etable.Table, error) {
	if dp.Output < 0 || dp.Output >= OutputsN {
		return nil, fmt.Errorf("deconv: unknown output %d", dp.Output)
	}
	out := dt.Clone()
	dp.Fits = make(map[string]Fit)
	if out.Rows == 0 {
		return out, nil
	}
	for _, nm := range trace.NeuronNames(out) {
		x, err := trace.Col(out, nm)
		if err != nil {
			return nil, err
		}
		c, s, fit := dp.solveCol(x)
		dp.Fits[nm] = fit
		switch dp.Output {
		case Denoised:
			copy(x, c)
		case Spikes:
			if dp.MinSpike > 0 {
				for i, v := range s {
					if v < dp.MinSpike {
						s[i] = 0
					}
				}
			}
			copy(x, s)
		}
	}
	return out, nil
}

// solveCol deconvolves a single trace, resolving any unset parameters.
func (dp *Params) solveCol(x []float64) (c, s []float64, fit Fit) {
	y := make([]float64, len(x))
	copy(y, x)
	if dp.OptimizeB {
		fit.B = trace.Percentile(y, dp.BPct)
		if dp.BNonNeg && fit.B < 0 {
			fit.B = 0
		}
		for i := range y {
			y[i] -= fit.B
		}
	}
	fit.G = dp.G
	if fit.G == 0 {
		fit.G = EstimateAR(y)
	}
	fit.Sn = dp.Sn
	if fit.Sn == 0 {
		fit.Sn = EstimateNoise(y)
	}
	if dp.Lam > 0 {
		fit.Lam = dp.Lam
		c, s = SolveAR1(y, fit.G, fit.Lam)
	} else {
		fit.Lam, c, s = TuneLam(y, fit.G, fit.Sn)
	}
	return c, s, fit
}

// Predict deconvolves dt and thresholds the spike signal into binary event
// calls (0 or 1 per sample).
func (dp *Params) Predict(dt *etable.Table) (*etable.Table, error) {
	save := dp.Output
	dp.Output = Spikes
	out, err := dp.Transform(dt)
	dp.Output = save
	if err != nil {
		return nil, err
	}
	for _, nm := range trace.NeuronNames(out) {
		x, err := trace.Col(out, nm)
		if err != nil {
			return nil, err
		}
		for i, v := range x {
			if v > dp.Threshold {
				x[i] = 1
			} else {
				x[i] = 0
			}
		}
	}
	return out, nil
}

// Score returns the accuracy of Predict against a label table with the same
// neuron columns and rows, where any label value > 0.5 counts as an event.
func (dp *Params) Score(dt, labels *etable.Table) (float64, error) {
	pred, err := dp.Predict(dt)
	if err != nil {
		return 0, err
	}
	hits, total := 0, 0
	for _, nm := range trace.NeuronNames(pred) {
		pv, err := trace.Col(pred, nm)
		if err != nil {
			return 0, err
		}
		lv, err := trace.Col(labels, nm)
		if err != nil {
			return 0, err
		}
		if len(lv) != len(pv) {
			return 0, fmt.Errorf("deconv: label column %s has %d rows, not %d", nm, len(lv), len(pv))
		}
		for i := range pv {
			if (pv[i] > 0.5) == (lv[i] > 0.5) {
				hits++
			}
			total++
		}
	}
	if total == 0 {
		return 0, fmt.Errorf("deconv: no samples to score")
	}
	return float64(hits) / float64(total), nil
}
