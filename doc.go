// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neuroglia is the overall repository for the neuroglia calcium-imaging
and spike-train analysis toolkit, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* trace: the shared trace-table representation (a Time column plus one
float64 column per neuron) along with tablizing of raw acquisition tensors
into per-second trace tables, and robust statistics (median, percentile,
MAD-based std) used throughout.

* detrend: median-filter and Savitzky-Golay detrending of fluorescence
traces, removing slow drift in the baseline before normalization.

* dff: delta-F-over-F normalization using a centered rolling-percentile
baseline estimate.

* events: magnitude rescaling of detected events, threshold-based event
detection into event tables, and per-neuron event summaries.

* deconv: OASIS-style constrained AR(1) deconvolution of delta-F-over-F
traces into denoised calcium or inferred spike trains, with automatic
estimation of the AR coefficient and noise level.

* spike: binning of spike-time tables into count traces and gaussian
smoothing into firing-rate estimates.

* synth: synthetic calcium-trace generation with known ground-truth spikes,
used by the tests and the command line.

* pipeline: the Transformer interface implemented by all processing stages,
and a named-step Pipeline for composing them.

* cmd/neuroglia: the command-line interface, operating on trace tables
stored as TSV / CSV files.
*/
package neuroglia
