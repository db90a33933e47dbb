// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements simulation output: restart files, VTK snapshots
// and profile plots
package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// State is the content of a restart file: everything needed to resume a
// run at the beginning of a time step
type State struct {
	Time          float64   // simulated time
	Dt            float64   // tentative step size at the moment of writing
	StepIndex     int       // index of the next time step
	EpisodeIndex  int       // index of the current episode
	EpisodeStart  float64   // start time of the current episode
	EpisodeLength float64   // length of the current episode
	Y             []float64 // converged solution
}

// RestartFilename returns the path of the restart file for a given step
func RestartFilename(dirout, key, enctype string, stepIdx int) string {
	return filepath.Join(dirout, io.Sf("%s_rst_%010d.%s", key, stepIdx, enctype))
}

// SaveRestart writes a restart file and returns its path
func SaveRestart(dirout, key, enctype string, st *State) (fn string, err error) {
	fn = RestartFilename(dirout, key, enctype, st.StepIndex)
	f, err := os.Create(fn)
	if err != nil {
		return "", chk.Err("cannot create restart file %q: %v", fn, err)
	}
	defer f.Close()
	enc := NewEncoder(f, enctype)
	if err = enc.Encode(st); err != nil {
		return "", chk.Err("cannot encode restart state into %q: %v", fn, err)
	}
	return
}

// LoadRestart reads a restart file
func LoadRestart(fn, enctype string) (st *State, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open restart file %q: %v", fn, err)
	}
	defer f.Close()
	st = new(State)
	dec := NewDecoder(f, enctype)
	if err = dec.Decode(st); err != nil {
		return nil, chk.Err("cannot decode restart state from %q: %v", fn, err)
	}
	return
}
