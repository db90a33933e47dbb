// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/blattms/ewoms/inp"
)

// quadSys is a tiny nonlinear system with solution y = (1, 2):
//   f0 = y0 + y1 - 3
//   f1 = y0*y1 - 2
type quadSys struct {
	y la.Vector
}

func (o *quadSys) Ndofs() int { return 2 }

func (o *quadSys) Assemble(F la.Vector, K *la.Triplet, dt float64) {
	F[0] = o.y[0] + o.y[1] - 3.0
	F[1] = o.y[0]*o.y[1] - 2.0
	K.Start()
	K.Put(0, 0, 1.0)
	K.Put(0, 1, 1.0)
	K.Put(1, 0, o.y[1])
	K.Put(1, 1, o.y[0])
}

func (o *quadSys) UpdateTrial(dY la.Vector) {
	o.y[0] += dY[0]
	o.y[1] += dY[1]
}

func newtonConf() inp.NewtonData {
	var nd inp.NewtonData
	nd.SetDefault()
	return nd
}

func Test_newton01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton01. small nonlinear system")

	nl := NewNewton(newtonConf(), inp.LinSolData{Name: "umfpack"})
	defer nl.Free()

	sys := &quadSys{y: la.Vector{0.5, 1.5}}
	if !nl.Solve(sys, 1.0) {
		tst.Errorf("Newton must converge on the quadratic system\n")
		return
	}
	io.Pforan("it=%d y=%v\n", nl.It(), sys.y)
	chk.Float64(tst, "y0", 1e-8, sys.y[0], 1.0)
	chk.Float64(tst, "y1", 1e-8, sys.y[1], 2.0)

	// phase timings are valid after Solve
	if nl.AssembleTime() < 0 || nl.SolveTime() < 0 || nl.UpdateTime() < 0 {
		tst.Errorf("phase timings must be non-negative\n")
	}

	// an easy solve suggests growing the step, limited growth
	sug := nl.SuggestTimeStepSize(10.0)
	if sug <= 10.0 {
		tst.Errorf("easy solve must suggest a larger step: %g\n", sug)
	}
	if sug > 10.0*(1.0+1.0/1.2)+1e-12 {
		tst.Errorf("suggestion grows too fast: %g\n", sug)
	}
}

func Test_newton02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton02. iteration budget")

	conf := newtonConf()
	conf.NmaxIt = 1
	nl := NewNewton(conf, inp.LinSolData{Name: "umfpack"})
	defer nl.Free()

	sys := &quadSys{y: la.Vector{10.0, -5.0}}
	if nl.Solve(sys, 1.0) {
		tst.Errorf("one iteration cannot solve the quadratic system from far away\n")
	}
}
