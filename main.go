// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"runtime/pprof"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/blattms/ewoms/fvm"
	"github.com/blattms/ewoms/inp"
	_ "github.com/blattms/ewoms/prb"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	restart := io.ArgToString(3, "")
	doprof := io.ArgToInt(4, 0)

	// never erase the results we are about to resume from
	if restart != "" {
		erasePrev = false
	}

	// message
	if verbose {
		io.PfWhite("\nEwoms -- finite volume simulator for flow in porous media\n")
		io.Pf("Copyright 2016 The Ewoms Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"restart file to resume from", "restart", restart,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer startProf(doprof)()
	}

	// simulation data
	sim := inp.ReadSim(fnamepath, "", erasePrev)

	// build and run
	s, err := fvm.NewSimulator(sim, verbose)
	if err != nil {
		chk.Panic("cannot build simulator:\n%v", err)
	}
	if restart != "" {
		if err = s.Resume(restart); err != nil {
			chk.Panic("cannot resume from %q:\n%v", restart, err)
		}
	}
	if err = s.Run(); err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	if verbose {
		io.PfGreen("success\n")
	}
}

// startProf starts CPU (kind=1) or memory (kind=2) profiling; the
// returned function finishes the profile and writes it to disk
func startProf(kind int) func() {
	if kind == 1 {
		f, err := os.Create("cpu.pprof")
		if err != nil {
			chk.Panic("cannot create CPU profile: %v", err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			chk.Panic("cannot start CPU profile: %v", err)
		}
		return func() {
			pprof.StopCPUProfile()
			f.Close()
		}
	}
	return func() {
		f, err := os.Create("mem.pprof")
		if err != nil {
			chk.Panic("cannot create memory profile: %v", err)
		}
		if err = pprof.WriteHeapProfile(f); err != nil {
			chk.Panic("cannot write memory profile: %v", err)
		}
		f.Close()
	}
}
