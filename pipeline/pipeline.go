// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pipeline composes trace-table processing stages.  Every stage in
neuroglia (detrend, dff, events, deconv, spike smoothing) implements the
Transformer interface, so analyses are expressed as an ordered list of
named steps applied to a table.
*/
package pipeline

import (
	"fmt"

	"github.com/emer/etable/v2/etable"
)

// Transformer is a processing stage: it returns a new table derived from
// its input, leaving the input unmodified.
type Transformer interface {
	Transform(dt *etable.Table) (*etable.Table, error)
}

// Step is a named pipeline stage.
type Step struct {
	Name  string      `desc:"name of the step, used in error reporting"`
	Xform Transformer `desc:"the transform to apply"`
}

// Pipeline applies an ordered list of steps to a trace table.
type Pipeline struct {
	Steps []Step `desc:"steps applied in order"`
}

// Add appends a named step and returns the pipeline, for chaining.
func (pl *Pipeline) Add(name string, xf Transformer) *Pipeline {
	pl.Steps = append(pl.Steps, Step{Name: name, Xform: xf})
	return pl
}

// Run applies each step in order, returning the final table.  A step error
// aborts the run and is wrapped with the step name.
func (pl *Pipeline) Run(dt *etable.Table) (*etable.Table, error) {
	cur := dt
	for _, st := range pl.Steps {
		nxt, err := st.Xform.Transform(cur)
		if err != nil {
			return nil, fmt.Errorf("pipeline: step %s: %w", st.Name, err)
		}
		cur = nxt
	}
	return cur, nil
}
