// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package detrend

import (
	"fmt"

	"github.com/emer/etable/v2/etable"
	"github.com/johnsonc/neuroglia/trace"
	"gonum.org/v1/gonum/mat"
)

// SavGolParams detrends traces by subtracting a Savitzky-Golay smoothed
// baseline: a least-squares polynomial fit of the given order over a
// sliding window, evaluated at the window center.
type SavGolParams struct {
	Window int `def:"201" desc:"width of the smoothing window in samples -- must be odd and larger than Order"`
	Order  int `def:"3" min:"0" desc:"order of the polynomial fit within each window"`

	Baselines map[string][]float64 `view:"-" json:"-" xml:"-" desc:"per-column baseline from the last Transform"`
}

func (sp *SavGolParams) Defaults() {
	sp.Window = 201
	sp.Order = 3
}

func (sp *SavGolParams) Update() {
}

// Transform returns a copy of dt with the Savitzky-Golay baseline subtracted
// from every neuron column.  The input table is not modified.
func (sp *SavGolParams) Transform(dt *etable.Table) (*etable.Table, error) {
	coefs, err := Coefficients(sp.Window, sp.Order)
	if err != nil {
		return nil, err
	}
	out := dt.Clone()
	sp.Baselines = make(map[string][]float64)
	for _, nm := range trace.NeuronNames(out) {
		x, err := trace.Col(out, nm)
		if err != nil {
			return nil, err
		}
		sgf := Smooth(x, coefs)
		sp.Baselines[nm] = sgf
		for i := range x {
			x[i] -= sgf[i]
		}
	}
	return out, nil
}

// Coefficients returns the Savitzky-Golay convolution coefficients for the
// given odd window width and polynomial order.  The smoothed value at t is
// the dot product of the coefficients with the window centered on t.
func Coefficients(window, order int) ([]float64, error) {
	if window <= 0 || window%2 == 0 {
		return nil, fmt.Errorf("detrend: savgol window must be positive and odd, got %d", window)
	}
	if order < 0 || order >= window {
		return nil, fmt.Errorf("detrend: savgol order %d invalid for window %d", order, window)
	}
	k := window / 2
	a := mat.NewDense(window, order+1, nil)
	for i := 0; i < window; i++ {
		t := float64(i - k)
		p := 1.0
		for j := 0; j <= order; j++ {
			a.Set(i, j, p)
			p *= t
		}
	}
	// center value of the fit is the constant term: c = A (A^T A)^-1 e0
	var ata mat.Dense
	ata.Mul(a.T(), a)
	e0 := mat.NewVecDense(order+1, nil)
	e0.SetVec(0, 1)
	var z mat.VecDense
	if err := z.SolveVec(&ata, e0); err != nil {
		return nil, fmt.Errorf("detrend: savgol solve: %w", err)
	}
	var c mat.VecDense
	c.MulVec(a, &z)
	coefs := make([]float64, window)
	for i := range coefs {
		coefs[i] = c.AtVec(i)
	}
	return coefs, nil
}

// Smooth convolves x with the given (odd-length) coefficient kernel,
// mirror-padding at the ends.
func Smooth(x []float64, coefs []float64) []float64 {
	k := len(coefs) / 2
	out := make([]float64, len(x))
	for i := range x {
		sum := 0.0
		for j, c := range coefs {
			sum += c * x[mirror(i+j-k, len(x))]
		}
		out[i] = sum
	}
	return out
}

// mirror reflects index i into [0, n) about the end samples,
// without repeating them.
func mirror(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i = ((i % period) + period) % period
	if i >= n {
		i = period - i
	}
	return i
}
