// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/ewoms
	Encoder string `json:"encoder"` // encoder name for restart files; "gob" or "json"
}

// GridData holds grid construction data
type GridData struct {
	Lx     float64 `json:"lx"`     // domain size along x
	Ly     float64 `json:"ly"`     // extrusion along y
	Lz     float64 `json:"lz"`     // extrusion along z
	Ncells int     `json:"ncells"` // number of cells
}

// TimeData holds data controlling the simulation time stepping
//  DtMax, DtMin and MaxDivisions are immutable for the lifetime of the run
type TimeData struct {
	Tf           float64 `json:"tf"`           // final time
	Dt           float64 `json:"dt"`           // initial time step size
	DtMax        float64 `json:"dtmax"`        // maximum size to which all time steps are limited
	DtMin        float64 `json:"dtmin"`        // minimum size to which all time steps are limited
	MaxDivisions int     `json:"maxdivisions"` // maximum number of divisions by two of the step size before the run bails out
	DtOut        float64 `json:"dtout"`        // time step size for output; 0 means output every step
}

// NewtonData holds data for the Newton-Raphson nonlinear solver
type NewtonData struct {
	NmaxIt   int     `json:"nmaxit"`   // number of max iterations
	Atol     float64 `json:"atol"`     // absolute tolerance on residual norm
	Rtol     float64 `json:"rtol"`     // relative tolerance on residual norm
	TargetIt int     `json:"targetit"` // target number of iterations for step-size suggestion
	DvgCtrl  bool    `json:"dvgctrl"`  // use divergence control
	NdvgMax  int     `json:"ndvgmax"`  // max number of continued divergence
	ShowR    bool    `json:"showr"`    // show residual
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name string `json:"name"` // "umfpack" or "mumps"
}

// OutputData holds data controlling VTK/plot output
type OutputData struct {
	Vtk  bool `json:"vtk"`  // write VTK snapshots
	Plot bool `json:"plot"` // write profile plots (PNG)
}

// ProblemData selects and parameterises the scenario
type ProblemData struct {
	Name   string `json:"name"`   // registered problem name; e.g. "powerinjection"
	LiqMat string `json:"liq"`    // name of liquid material
	GasMat string `json:"gas"`    // name of gas material
	PorMat string `json:"porous"` // name of porous material
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // stores global simulation data
	Grid      GridData    `json:"grid"`      // grid construction data
	Time      TimeData    `json:"time"`      // time stepping control
	Newton    NewtonData  `json:"newton"`    // nonlinear solver data
	LinSol    LinSolData  `json:"linsol"`    // linear solver data
	Output    OutputData  `json:"output"`    // output control
	Problem   ProblemData `json:"problem"`   // scenario selection
	Functions FuncsData   `json:"functions"` // named time functions
	Episodes  string      `json:"episodes"`  // path of YAML episode schedule; "" means a single unbounded episode

	// derived
	DirOut   string    // directory to save results
	Key      string    // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType  string    // encoder type
	MatDb    *MatDb    // materials database
	Schedule []Episode // episode schedule; empty means a single episode spanning the run
}

// ReadSim reads all simulation data from a .sim JSON file
//  Note: returns nil on errors
func ReadSim(simfilepath, alias string, erasePrev bool) *Simulation {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// validate against schema before decoding
	if err = Validate(b); err != nil {
		chk.Panic("ReadSim: simulation file %q is invalid:\n%v", simfilepath, err)
	}

	// new sim with default values
	var o Simulation
	o.Time.SetDefault()
	o.Newton.SetDefault()
	o.LinSol.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// check time stepping data
	if err = o.Time.Check(); err != nil {
		chk.Panic("ReadSim: %v", err)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	o.Key = io.FnKey(fn)
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/ewoms/" + o.Key
	}
	err = os.MkdirAll(o.DirOut, 0777)
	if err != nil {
		chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// read materials database
	if o.Data.Matfile != "" {
		o.MatDb, err = ReadMat(dir, o.Data.Matfile)
		if err != nil {
			chk.Panic("loading materials failed:\n%v", err)
		}
	}

	// read episode schedule
	if o.Episodes != "" {
		o.Schedule, err = ReadEpisodes(filepath.Join(dir, o.Episodes))
		if err != nil {
			chk.Panic("loading episode schedule failed:\n%v", err)
		}
	}
	return &o
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault sets default values
func (o *TimeData) SetDefault() {
	o.Tf = 1
	o.Dt = 1
	o.DtMax = 1
	o.DtMin = 1e-8
	o.MaxDivisions = 10
}

// Check verifies the time stepping data
func (o *TimeData) Check() (err error) {
	if o.MaxDivisions < 0 {
		return chk.Err("maxdivisions=%d is invalid: must be non-negative", o.MaxDivisions)
	}
	if o.DtMin <= 0 || o.DtMax < o.DtMin {
		return chk.Err("step size bounds are invalid: dtmin=%g dtmax=%g", o.DtMin, o.DtMax)
	}
	if o.Tf < 1e-14 {
		return chk.Err("final time tf=%g is invalid", o.Tf)
	}
	if o.Dt < 1e-14 {
		return chk.Err("initial time step dt=%g is invalid", o.Dt)
	}
	return
}

// SetDefault sets default values
func (o *NewtonData) SetDefault() {
	o.NmaxIt = 20
	o.Atol = 1e-8
	o.Rtol = 1e-6
	o.TargetIt = 8
	o.NdvgMax = 5
}

// SetDefault sets default values
func (o *LinSolData) SetDefault() {
	o.Name = "umfpack"
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo() (string, error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
