// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// neuroglia is the command-line interface to the neuroglia calcium-imaging
// toolkit: it generates, detrends, normalizes and deconvolves fluorescence
// trace tables stored as TSV / CSV files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagDelim string
	flagOut   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "neuroglia",
	Short:         "Calcium imaging trace analysis",
	Long:          "Neuroglia processes fluorescence trace tables (one column per neuron, shared Time column): detrending, delta-F-over-F normalization, event rescaling and detection, and OASIS spike deconvolution.",
	SilenceErrors: true,
	SilenceUsage:  true,
	// No Run -- prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDelim, "delim", "tab", "table delimiter: tab|comma")
	rootCmd.PersistentFlags().StringVarP(&flagOut, "out", "o", "", "output table file (required)")

	rootCmd.AddCommand(synthCmd)
	rootCmd.AddCommand(detrendCmd)
	rootCmd.AddCommand(dffCmd)
	rootCmd.AddCommand(rescaleCmd)
	rootCmd.AddCommand(deconvolveCmd)
	rootCmd.AddCommand(eventsCmd)
}
