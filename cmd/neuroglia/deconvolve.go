// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnsonc/neuroglia/deconv"
)

var (
	flagDeconvOutput string
	flagG            float64
	flagSn           float64
	flagLam          float64
	flagMinSpike     float64
	flagNoBaseline   bool
)

var deconvolveCmd = &cobra.Command{
	Use:   "deconvolve <table>",
	Short: "Infer spikes from delta-F-over-F traces",
	Long:  "Deconvolve runs OASIS-style constrained AR(1) deconvolution on every neuron column, writing either the inferred spike signal or the denoised calcium trace.  The AR coefficient, noise level and baseline are estimated per neuron when not given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeconvolve,
}

func init() {
	deconvolveCmd.Flags().StringVar(&flagDeconvOutput, "output", "spikes", "output signal: spikes|denoised")
	deconvolveCmd.Flags().Float64Var(&flagG, "g", 0, "AR(1) decay coefficient per sample (0 = estimate)")
	deconvolveCmd.Flags().Float64Var(&flagSn, "sn", 0, "noise standard deviation (0 = estimate)")
	deconvolveCmd.Flags().Float64Var(&flagLam, "lam", 0, "explicit L1 penalty (0 = tune to the noise level)")
	deconvolveCmd.Flags().Float64Var(&flagMinSpike, "min-spike", 0, "zero inferred spikes below this floor (0 = off)")
	deconvolveCmd.Flags().BoolVar(&flagNoBaseline, "no-baseline", false, "skip baseline estimation and subtraction")
}

func runDeconvolve(cmd *cobra.Command, args []string) error {
	dp := &deconv.Params{}
	dp.Defaults()
	switch flagDeconvOutput {
	case "spikes":
		dp.Output = deconv.Spikes
	case "denoised":
		dp.Output = deconv.Denoised
	default:
		return fmt.Errorf("unknown output %q: must be spikes or denoised", flagDeconvOutput)
	}
	dp.G = flagG
	dp.Sn = flagSn
	dp.Lam = flagLam
	dp.MinSpike = flagMinSpike
	dp.OptimizeB = !flagNoBaseline
	return processFile(args[0], dp)
}
