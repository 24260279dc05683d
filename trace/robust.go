// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// madScale converts the median absolute deviation into a consistent
// estimate of the standard deviation for gaussian data.
const madScale = 1.4826

// Percentile returns the pct (0-100) percentile of x, linearly
// interpolated.  Returns NaN for empty x.
func Percentile(x []float64, pct float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	sx := make([]float64, len(x))
	copy(sx, x)
	sort.Float64s(sx)
	return stat.Quantile(pct/100, stat.LinInterp, sx, nil)
}

// Median returns the median of x: the middle value for odd lengths, the
// mean of the two middle values for even lengths.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	sx := make([]float64, n)
	copy(sx, x)
	sort.Float64s(sx)
	if n%2 == 1 {
		return sx[n/2]
	}
	return 0.5 * (sx[n/2-1] + sx[n/2])
}

// RobustStd returns a robust estimate of the standard deviation of x,
// as 1.4826 * median(|x - median(x)|).
func RobustStd(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	med := Median(x)
	dev := make([]float64, len(x))
	for i, v := range x {
		dev[i] = math.Abs(v - med)
	}
	return madScale * Median(dev)
}
