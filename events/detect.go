// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/emer/etable/v2/agg"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/split"
	"github.com/johnsonc/neuroglia/trace"
)

// Event table column names.
const (
	NeuronCol    = "Neuron"
	MagnitudeCol = "Magnitude"
)

// DetectParams extracts samples above Threshold from a trace table into an
// event table with Time, Neuron and Magnitude columns, sorted by time.
type DetectParams struct {
	Threshold float64 `def:"0.1" desc:"samples strictly above this value are emitted as events"`
}

func (dp *DetectParams) Defaults() {
	dp.Threshold = 0.1
}

func (dp *DetectParams) Update() {
}

// Detect returns the event table for the given trace table.
func (dp *DetectParams) Detect(dt *etable.Table) (*etable.Table, error) {
	tm, err := trace.Times(dt)
	if err != nil {
		return nil, err
	}
	nms := trace.NeuronNames(dt)
	cols := make([][]float64, len(nms))
	for i, nm := range nms {
		cols[i], err = trace.Col(dt, nm)
		if err != nil {
			return nil, err
		}
	}
	n := 0
	for _, cv := range cols {
		for _, v := range cv {
			if v > dp.Threshold {
				n++
			}
		}
	}
	sch := etable.Schema{
		{Name: trace.TimeCol, Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: NeuronCol, Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: MagnitudeCol, Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	evts := &etable.Table{}
	evts.SetFromSchema(sch, n)
	row := 0
	for ti := range tm { // row-major iteration keeps the output time-sorted
		for ci, cv := range cols {
			if cv[ti] > dp.Threshold {
				evts.SetCellFloat(trace.TimeCol, row, tm[ti])
				evts.SetCellString(NeuronCol, row, nms[ci])
				evts.SetCellFloat(MagnitudeCol, row, cv[ti])
				row++
			}
		}
	}
	return evts, nil
}

// Summarize returns a per-neuron summary of an event table, with event
// count and mean magnitude columns (Magnitude:Count, Magnitude:Mean).
func Summarize(evts *etable.Table) (*etable.Table, error) {
	if _, err := evts.ColByNameTry(NeuronCol); err != nil {
		return nil, fmt.Errorf("events: not an event table: %w", err)
	}
	ix := etable.NewIdxView(evts)
	spl := split.GroupBy(ix, []string{NeuronCol})
	split.Agg(spl, MagnitudeCol, agg.AggCount)
	split.Agg(spl, MagnitudeCol, agg.AggMean)
	return spl.AggsToTable(etable.AddAggName), nil
}
