// Copyright (c) 2024, The Neuroglia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/emer/etable/v2/etable"
	"cogentcore.org/core/gi"
)

// delim maps the --delim flag onto an etable delimiter.
func delim() (etable.Delims, error) {
	switch flagDelim {
	case "tab":
		return etable.Tab, nil
	case "comma":
		return etable.Comma, nil
	}
	return etable.Tab, fmt.Errorf("unknown delimiter %q: must be tab or comma", flagDelim)
}

// loadTable reads a table (with etable headers) from path.
func loadTable(path string) (*etable.Table, error) {
	dl, err := delim()
	if err != nil {
		return nil, err
	}
	dt := &etable.Table{}
	if err := dt.OpenCSV(gi.Filename(path), dl); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return dt, nil
}

// saveTable writes a table (with etable headers) to the --out path.
func saveTable(dt *etable.Table) error {
	if flagOut == "" {
		return fmt.Errorf("no output file: use --out")
	}
	return saveTableTo(dt, flagOut)
}

// saveTableTo writes a table (with etable headers) to the given path.
func saveTableTo(dt *etable.Table, path string) error {
	dl, err := delim()
	if err != nil {
		return err
	}
	if err := dt.SaveCSV(gi.Filename(path), dl, etable.Headers); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
