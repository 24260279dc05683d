// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package trace defines the trace-table representation shared by all of the
neuroglia processing stages: an etable.Table with a Time column holding the
shared time base in seconds, plus one float64 column per neuron holding that
neuron's fluorescence (or rate, count, etc) samples.

It also provides tablizing of raw acquisition tensors into per-second trace
tables, and the robust statistics (median, percentile, MAD-based std) used
by the detrending and deconvolution stages.
*/
package trace

import (
	"fmt"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

// TimeCol is the name of the time column present in every trace table.
const TimeCol = "Time"

// NewTable returns a new trace table with the given neuron column names and
// number of rows.  All columns are float64; the Time column is first.
func NewTable(neurons []string, rows int) *etable.Table {
	sch := etable.Schema{
		{Name: TimeCol, Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	for _, nm := range neurons {
		sch = append(sch, etable.Column{Name: nm, Type: etensor.FLOAT64})
	}
	dt := &etable.Table{}
	dt.SetFromSchema(sch, rows)
	return dt
}

// NeuronNames returns the names of the neuron columns in the table,
// i.e., all column names except Time, in table order.
func NeuronNames(dt *etable.Table) []string {
	nms := make([]string, 0, len(dt.ColNames))
	for _, nm := range dt.ColNames {
		if nm == TimeCol {
			continue
		}
		nms = append(nms, nm)
	}
	return nms
}

// Col returns the raw float64 values of the given column.
// Returns an error if the column does not exist or is not float64.
func Col(dt *etable.Table, name string) ([]float64, error) {
	cl, err := dt.ColByNameTry(name)
	if err != nil {
		return nil, err
	}
	f64, ok := cl.(*etensor.Float64)
	if !ok {
		return nil, fmt.Errorf("trace: column %s is %v, not float64", name, cl.DataType())
	}
	return f64.Values, nil
}

// Times returns the Time column values.
func Times(dt *etable.Table) ([]float64, error) {
	return Col(dt, TimeCol)
}

// SetCol copies vals into the given column, which must already exist and
// have the same length.
func SetCol(dt *etable.Table, name string, vals []float64) error {
	cv, err := Col(dt, name)
	if err != nil {
		return err
	}
	if len(cv) != len(vals) {
		return fmt.Errorf("trace: column %s has %d rows, not %d", name, len(cv), len(vals))
	}
	copy(cv, vals)
	return nil
}

// Range returns the min / max over the given column, for diagnostics.
func Range(dt *etable.Table, name string) (minmax.F64, error) {
	var mm minmax.F64
	vals, err := Col(dt, name)
	if err != nil {
		return mm, err
	}
	mm.SetInfinity()
	for _, v := range vals {
		mm.FitValInRange(v)
	}
	return mm, nil
}
