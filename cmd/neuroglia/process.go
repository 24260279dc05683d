// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnsonc/neuroglia/detrend"
	"github.com/johnsonc/neuroglia/dff"
	"github.com/johnsonc/neuroglia/events"
	"github.com/johnsonc/neuroglia/pipeline"
)

var (
	flagDetrendMethod string
	flagDetrendWindow int
	flagDetrendOrder  int
	flagPeakStd       float64
)

var detrendCmd = &cobra.Command{
	Use:   "detrend <table>",
	Short: "Subtract a slow baseline from every neuron column",
	Long:  "Detrend estimates a slow per-neuron baseline with a running median filter (or Savitzky-Golay smoothing) and subtracts it, removing drift from fluorescence traces.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetrend,
}

func init() {
	detrendCmd.Flags().StringVar(&flagDetrendMethod, "method", "median", "baseline estimator: median|savgol")
	detrendCmd.Flags().IntVar(&flagDetrendWindow, "window", 0, "filter window in samples (odd; default 101 median, 201 savgol)")
	detrendCmd.Flags().IntVar(&flagDetrendOrder, "order", 3, "polynomial order (savgol only)")
	detrendCmd.Flags().Float64Var(&flagPeakStd, "peak-std", 4, "baseline clip in robust standard deviations (median only)")
}

func runDetrend(cmd *cobra.Command, args []string) error {
	var xf pipeline.Transformer
	switch flagDetrendMethod {
	case "median":
		mp := &detrend.MedianParams{}
		mp.Defaults()
		mp.PeakStdThreshold = flagPeakStd
		if flagDetrendWindow > 0 {
			mp.Window = flagDetrendWindow
		}
		xf = mp
	case "savgol":
		sp := &detrend.SavGolParams{}
		sp.Defaults()
		sp.Order = flagDetrendOrder
		if flagDetrendWindow > 0 {
			sp.Window = flagDetrendWindow
		}
		xf = sp
	default:
		return fmt.Errorf("unknown detrend method %q: must be median or savgol", flagDetrendMethod)
	}
	return processFile(args[0], xf)
}

var (
	flagDffWindow int
	flagDffPct    float64
)

var dffCmd = &cobra.Command{
	Use:   "dff <table>",
	Short: "Delta-F-over-F normalize every neuron column",
	Long:  "Dff estimates a per-neuron baseline as a centered rolling percentile and rewrites each sample as (F - baseline) / baseline.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDff,
}

func init() {
	dffCmd.Flags().IntVar(&flagDffWindow, "window", 180, "rolling baseline window in samples")
	dffCmd.Flags().Float64Var(&flagDffPct, "percentile", 8, "baseline percentile of the window")
}

func runDff(cmd *cobra.Command, args []string) error {
	np := &dff.Params{}
	np.Defaults()
	np.Window = flagDffWindow
	np.Percentile = flagDffPct
	return processFile(args[0], np)
}

var (
	flagScale float64
	flagNoLog bool
)

var rescaleCmd = &cobra.Command{
	Use:   "rescale <table>",
	Short: "Rescale event magnitudes",
	Long:  "Rescale multiplies every sample by a scale factor and (by default) applies a log(1+x) transform, compressing large event magnitudes.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRescale,
}

func init() {
	rescaleCmd.Flags().Float64Var(&flagScale, "scale", 5, "multiplier applied before the log transform")
	rescaleCmd.Flags().BoolVar(&flagNoLog, "no-log", false, "skip the log(1+x) transform")
}

func runRescale(cmd *cobra.Command, args []string) error {
	rp := &events.RescaleParams{}
	rp.Defaults()
	rp.Scale = flagScale
	rp.LogTransform = !flagNoLog
	return processFile(args[0], rp)
}

// processFile loads a trace table, applies the transform and saves the
// result to --out.
func processFile(path string, xf pipeline.Transformer) error {
	dt, err := loadTable(path)
	if err != nil {
		return err
	}
	out, err := xf.Transform(dt)
	if err != nil {
		return err
	}
	return saveTable(out)
}
