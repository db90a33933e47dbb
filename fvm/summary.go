// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/blattms/ewoms/out"
)

// Summary collects per-step data of one run, for inspection after the
// run and for tests
type Summary struct {
	OutTimes   []float64 // times at which output was written
	StepSizes  []float64 // size of every committed time step
	Divisions  []int     // number of step-size divisions every step needed
	Iterations []int     // Newton iterations every step needed
}

// SummaryFilename returns the path of the summary file of a run
func SummaryFilename(dirout, key, enctype string) string {
	return filepath.Join(dirout, io.Sf("%s_sum.%s", key, enctype))
}

// Save writes the summary of a run
func (o *Summary) Save(dirout, key, enctype string) (err error) {
	fn := SummaryFilename(dirout, key, enctype)
	f, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create summary file %q: %v", fn, err)
	}
	defer f.Close()
	enc := out.NewEncoder(f, enctype)
	if err = enc.Encode(o); err != nil {
		return chk.Err("cannot encode summary into %q: %v", fn, err)
	}
	return
}

// ReadSummary loads the summary of a previous run
func ReadSummary(dirout, key, enctype string) (o *Summary, err error) {
	fn := SummaryFilename(dirout, key, enctype)
	f, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open summary file %q: %v", fn, err)
	}
	defer f.Close()
	o = new(Summary)
	dec := out.NewDecoder(f, enctype)
	if err = dec.Decode(o); err != nil {
		return nil, chk.Err("cannot decode summary from %q: %v", fn, err)
	}
	return
}
