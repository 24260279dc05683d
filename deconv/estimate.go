// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deconv

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// EstimateAR estimates the AR(1) decay coefficient of a calcium trace from
// the ratio of its lag-2 to lag-1 autocovariance.  Observation noise is
// uncorrelated across samples, so it cancels in the ratio.  The result is
// clamped to [0, 0.999].
func EstimateAR(y []float64) float64 {
	n := len(y)
	if n < 3 {
		return 0
	}
	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(n)
	acov := func(lag int) float64 {
		sum := 0.0
		for t := 0; t+lag < n; t++ {
			sum += (y[t] - mean) * (y[t+lag] - mean)
		}
		return sum / float64(n)
	}
	a1 := acov(1)
	if a1 == 0 {
		return 0
	}
	g := acov(2) / a1
	if g < 0 {
		g = 0
	}
	if g > 0.999 {
		g = 0.999
	}
	return g
}

// EstimateNoise estimates the observation noise standard deviation from the
// mean power spectral density over the upper half of the frequency range
// [0.25, 0.5] cycles/sample, where the slow calcium dynamics contribute
// little and the spectrum is dominated by the white observation noise.
// A Hann-windowed periodogram is used.
func EstimateNoise(y []float64) float64 {
	n := len(y)
	if n < 8 {
		return 0
	}
	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(n)

	wy := make([]float64, n)
	sumw2 := 0.0
	for i := range y {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		wy[i] = w * (y[i] - mean)
		sumw2 += w * w
	}
	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, wy)

	lo := n / 4 // frequency k/n = 0.25
	psum := 0.0
	cnt := 0
	for k := lo; k < len(coeff); k++ {
		a := cmplx.Abs(coeff[k])
		psum += 2 * a * a / sumw2 // one-sided density at fs = 1
		cnt++
	}
	if cnt == 0 {
		return 0
	}
	return math.Sqrt(psum / float64(cnt) / 2)
}
