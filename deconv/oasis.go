// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deconv

import "math"

// pool is a run of samples over which the denoised trace is a single
// geometric decay: c[t+k] = v * g^k for k in [0, l).
type pool struct {
	v float64 // pool height at its first sample
	w float64 // accumulated weight
	t int     // first sample index
	l int     // run length
}

// SolveAR1 solves the L1-penalized AR(1) deconvolution problem
//
//	min 0.5 ||c - y||^2 + lam sum(s)   s.t.  s[t] = c[t] - g c[t-1] >= 0
//
// by monotone pool merging, returning the denoised trace c and the spike
// signal s (s[0] is defined as c[0]).  Pools are created one per sample and
// merged backward whenever the decay constraint between adjacent pools is
// violated, which is the exact solution of the isotonic subproblem.
func SolveAR1(y []float64, g, lam float64) (c, s []float64) {
	n := len(y)
	c = make([]float64, n)
	s = make([]float64, n)
	if n == 0 {
		return c, s
	}
	pools := make([]pool, 0, n)
	for i, yv := range y {
		v := yv - lam*(1-g)
		if i == n-1 { // no successor to absorb the penalty's decay term
			v = yv - lam
		}
		pools = append(pools, pool{v: v, w: 1, t: i, l: 1})
		for len(pools) > 1 {
			q := pools[len(pools)-1]
			p := pools[len(pools)-2]
			if q.v >= math.Pow(g, float64(p.l))*p.v {
				break
			}
			gl := math.Pow(g, float64(p.l))
			p.v = (p.w*p.v + gl*q.w*q.v) / (p.w + gl*gl*q.w)
			p.w += gl * gl * q.w
			p.l += q.l
			pools[len(pools)-2] = p
			pools = pools[:len(pools)-1]
		}
	}
	for _, p := range pools {
		v := math.Max(p.v, 0)
		for k := 0; k < p.l; k++ {
			c[p.t+k] = v * math.Pow(g, float64(k))
		}
	}
	s[0] = c[0]
	for t := 1; t < n; t++ {
		s[t] = c[t] - g*c[t-1]
		if s[t] < 0 { // numerical residue at pool boundaries
			s[t] = 0
		}
	}
	return c, s
}

// rss returns the residual sum of squares between c and y.
func rss(c, y []float64) float64 {
	sum := 0.0
	for i := range y {
		d := c[i] - y[i]
		sum += d * d
	}
	return sum
}

// TuneLam finds the L1 penalty for which the residual of the SolveAR1
// solution matches the noise level: ||c - y||^2 = sn^2 len(y).  This is the
// noise-constrained form of the problem; lam is located by bisection, which
// is monotone in the residual.
func TuneLam(y []float64, g, sn float64) (lam float64, c, s []float64) {
	target := sn * sn * float64(len(y))
	c, s = SolveAR1(y, g, 0)
	if rss(c, y) >= target {
		return 0, c, s
	}
	hi := 1.0
	for i := 0; i < 40; i++ {
		c, s = SolveAR1(y, g, hi)
		if rss(c, y) >= target {
			break
		}
		hi *= 2
	}
	lo := 0.0
	for i := 0; i < 40; i++ {
		lam = 0.5 * (lo + hi)
		c, s = SolveAR1(y, g, lam)
		if rss(c, y) > target {
			hi = lam
		} else {
			lo = lam
		}
	}
	c, s = SolveAR1(y, g, lam)
	return lam, c, s
}
