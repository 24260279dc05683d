// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnsonc/neuroglia/synth"
	"github.com/johnsonc/neuroglia/trace"
)

func writeSynth(t *testing.T, dir string) string {
	t.Helper()
	sp := &synth.Params{}
	sp.Defaults()
	sp.Frames = 600
	sp.Baseline = 2
	obs, _, _, err := sp.Generate()
	require.NoError(t, err)
	path := filepath.Join(dir, "obs.tsv")
	require.NoError(t, saveTableTo(obs, path))
	return path
}

func TestTableRoundTrip(t *testing.T) {
	flagDelim = "tab"
	dir := t.TempDir()
	path := writeSynth(t, dir)

	dt, err := loadTable(path)
	require.NoError(t, err)
	require.Equal(t, 600, dt.Rows)
	require.Equal(t, []string{"neuron0", "neuron1", "neuron2"}, trace.NeuronNames(dt))
	tm, err := trace.Times(dt)
	require.NoError(t, err)
	require.InDelta(t, 1.0/30, tm[1]-tm[0], 1e-6)
}

func TestDelimFlag(t *testing.T) {
	flagDelim = "comma"
	dir := t.TempDir()
	path := writeSynth(t, dir)
	dt, err := loadTable(path)
	require.NoError(t, err)
	require.Equal(t, 600, dt.Rows)

	flagDelim = "semicolon"
	_, err = loadTable(path)
	require.Error(t, err)
	flagDelim = "tab"
}

func TestRunDetrend(t *testing.T) {
	flagDelim = "tab"
	dir := t.TempDir()
	path := writeSynth(t, dir)
	flagOut = filepath.Join(dir, "detrended.tsv")
	defer func() { flagOut = "" }()

	flagDetrendMethod = "median"
	flagDetrendWindow = 0
	require.NoError(t, runDetrend(detrendCmd, []string{path}))

	dt, err := loadTable(flagOut)
	require.NoError(t, err)
	cv, err := trace.Col(dt, "neuron0")
	require.NoError(t, err)
	mean := 0.0
	for _, v := range cv {
		mean += v
	}
	mean /= float64(len(cv))
	require.InDelta(t, 0, mean, 0.25)

	flagDetrendMethod = "bogus"
	require.Error(t, runDetrend(detrendCmd, []string{path}))
	flagDetrendMethod = "median"
}

func TestRunDeconvolve(t *testing.T) {
	flagDelim = "tab"
	dir := t.TempDir()
	path := writeSynth(t, dir)
	flagOut = filepath.Join(dir, "spikes.tsv")
	defer func() { flagOut = "" }()

	flagDeconvOutput = "spikes"
	require.NoError(t, runDeconvolve(deconvolveCmd, []string{path}))

	dt, err := loadTable(flagOut)
	require.NoError(t, err)
	require.Equal(t, 600, dt.Rows)
	cv, err := trace.Col(dt, "neuron0")
	require.NoError(t, err)
	for _, v := range cv {
		require.GreaterOrEqual(t, v, 0.0)
	}

	flagDeconvOutput = "bogus"
	require.Error(t, runDeconvolve(deconvolveCmd, []string{path}))
	flagDeconvOutput = "spikes"
}

func TestRunEvents(t *testing.T) {
	flagDelim = "tab"
	dir := t.TempDir()
	path := writeSynth(t, dir)
	flagOut = filepath.Join(dir, "events.tsv")
	defer func() { flagOut = "" }()

	// baseline 2 plus calcium transients crosses this regularly
	flagEventThreshold = 2.5
	flagEventSummary = false
	require.NoError(t, runEvents(eventsCmd, []string{path}))
	evts, err := loadTable(flagOut)
	require.NoError(t, err)
	require.Greater(t, evts.Rows, 0)

	flagEventSummary = true
	require.NoError(t, runEvents(eventsCmd, []string{path}))
	sum, err := loadTable(flagOut)
	require.NoError(t, err)
	require.Greater(t, sum.Rows, 0)
	require.LessOrEqual(t, sum.Rows, 3)
	flagEventSummary = false
}

func TestSaveRequiresOut(t *testing.T) {
	flagOut = ""
	dt := trace.NewTable([]string{"a"}, 1)
	require.Error(t, saveTable(dt))
}
