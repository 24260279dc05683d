// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/johnsonc/neuroglia/events"
)

var (
	flagEventThreshold float64
	flagEventSummary   bool
)

var eventsCmd = &cobra.Command{
	Use:   "events <table>",
	Short: "Detect threshold crossings as an event table",
	Long:  "Events extracts samples above a threshold from a trace table into an event table (Time, Neuron, Magnitude), or with --summary a per-neuron event count and mean magnitude table.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvents,
}

func init() {
	eventsCmd.Flags().Float64Var(&flagEventThreshold, "threshold", 0.1, "samples strictly above this value are events")
	eventsCmd.Flags().BoolVar(&flagEventSummary, "summary", false, "write the per-neuron summary instead of the event table")
}

func runEvents(cmd *cobra.Command, args []string) error {
	dt, err := loadTable(args[0])
	if err != nil {
		return err
	}
	dp := &events.DetectParams{}
	dp.Defaults()
	dp.Threshold = flagEventThreshold
	evts, err := dp.Detect(dt)
	if err != nil {
		return err
	}
	if flagEventSummary {
		sum, err := events.Summarize(evts)
		if err != nil {
			return err
		}
		return saveTable(sum)
	}
	return saveTable(evts)
}
