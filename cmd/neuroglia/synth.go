// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/johnsonc/neuroglia/synth"
)

var (
	flagNeurons  int
	flagFrames   int
	flagHz       float64
	flagSynthG   float64
	flagRate     float64
	flagBaseline float64
	flagNoise    float64
	flagSeed     int64
	flagCalcium  string
	flagSpikes   string
)

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Generate synthetic calcium traces",
	Long:  "Synth writes a synthetic fluorescence trace table with known ground truth: AR(1) calcium dynamics driven by Bernoulli spiking, plus baseline and gaussian noise.  Ground-truth calcium and spike tables can be written alongside.",
	Args:  cobra.NoArgs,
	RunE:  runSynth,
}

func init() {
	synthCmd.Flags().IntVar(&flagNeurons, "neurons", 3, "number of neurons")
	synthCmd.Flags().IntVar(&flagFrames, "frames", 3000, "number of frames")
	synthCmd.Flags().Float64Var(&flagHz, "hz", 30, "frame rate in frames per second")
	synthCmd.Flags().Float64Var(&flagSynthG, "g", 0.95, "AR(1) calcium decay coefficient per frame")
	synthCmd.Flags().Float64Var(&flagRate, "rate", 0.5, "mean firing rate in spikes per second")
	synthCmd.Flags().Float64Var(&flagBaseline, "baseline", 0, "constant fluorescence baseline")
	synthCmd.Flags().Float64Var(&flagNoise, "noise", 0.3, "observation noise sigma")
	synthCmd.Flags().Int64Var(&flagSeed, "seed", 1, "random seed")
	synthCmd.Flags().StringVar(&flagCalcium, "calcium", "", "also write the ground-truth calcium table here")
	synthCmd.Flags().StringVar(&flagSpikes, "spikes", "", "also write the ground-truth spike table here")
}

func runSynth(cmd *cobra.Command, args []string) error {
	sp := &synth.Params{}
	sp.Defaults()
	sp.NNeurons = flagNeurons
	sp.Frames = flagFrames
	sp.Hz = flagHz
	sp.G = flagSynthG
	sp.FireRate = flagRate
	sp.Baseline = flagBaseline
	sp.Noise.Var = flagNoise
	sp.Seed = flagSeed
	obs, calcium, spikes, err := sp.Generate()
	if err != nil {
		return err
	}
	if err := saveTable(obs); err != nil {
		return err
	}
	if flagCalcium != "" {
		if err := saveTableTo(calcium, flagCalcium); err != nil {
			return err
		}
	}
	if flagSpikes != "" {
		if err := saveTableTo(spikes, flagSpikes); err != nil {
			return err
		}
	}
	return nil
}
