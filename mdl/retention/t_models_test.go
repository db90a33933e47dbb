// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_vg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vg01")

	mdl, err := New("vg")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	prm := mdl.GetPrms(true)
	slmax := prm.Find("slmax")
	slmax.V = 0.95
	err = mdl.Init(prm)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// limits
	chk.Float64(tst, "slmax", 1e-15, mdl.SlMax(), 0.95)
	chk.Float64(tst, "slmin", 1e-15, mdl.SlMin(), 0.01)

	// saturation is monotonically decreasing with pc
	nr := mdl.(Nonrate)
	Pc := utl.LinSpace(0, 30, 31)
	for i := 1; i < len(Pc); i++ {
		if nr.Sl(Pc[i]) > nr.Sl(Pc[i-1])+1e-15 {
			tst.Errorf("sl(pc) must not increase: sl(%g)=%g > sl(%g)=%g\n", Pc[i], nr.Sl(Pc[i]), Pc[i-1], nr.Sl(Pc[i-1]))
			return
		}
	}
	chk.Float64(tst, "sl(0)    ", 1e-15, nr.Sl(0), mdl.SlMax())
	chk.Float64(tst, "sl(large)", 1e-3, nr.Sl(1e6), mdl.SlMin())

	// Cc versus numerical dsl/dpc
	for _, pc := range []float64{1, 2, 5, 10, 20} {
		sl := nr.Sl(pc)
		cc, err := mdl.Cc(pc, sl, false)
		if err != nil {
			tst.Errorf("Cc failed: %v\n", err)
			return
		}
		h := 1e-6
		num := (nr.Sl(pc+h) - nr.Sl(pc-h)) / (2 * h)
		io.Pforan("pc=%g sl=%g Cc=%v num=%v\n", pc, sl, cc, num)
		chk.Float64(tst, io.Sf("Cc(%g)", pc), 1e-6, cc, num)
	}
}

func Test_lin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lin01")

	mdl, err := New("lin")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	nr := mdl.(Nonrate)
	chk.Float64(tst, "sl(pc<pcae)", 1e-15, nr.Sl(0.1), 1.0)
	chk.Float64(tst, "sl(1.0)    ", 1e-15, nr.Sl(1.0), 1.0-0.5*(1.0-0.2))
	chk.Float64(tst, "sl(large)  ", 1e-15, nr.Sl(100.0), 0.1)

	cc, _ := mdl.Cc(1.0, nr.Sl(1.0), false)
	chk.Float64(tst, "Cc", 1e-15, cc, -0.5)
}

func Test_update01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("update01")

	mdl, err := New("vg")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// drying path: Update must track the direct sl(pc) curve for a
	// non-rate model
	nr := mdl.(Nonrate)
	pc, sl := 0.0, mdl.SlMax()
	for i := 0; i < 10; i++ {
		Δpc := 2.0
		sl, err = Update(mdl, pc, sl, Δpc)
		if err != nil {
			tst.Errorf("Update failed: %v\n", err)
			return
		}
		pc += Δpc
		chk.Float64(tst, io.Sf("sl(pc=%g)", pc), 1e-10, sl, nr.Sl(pc))
	}
}

// rateOnly hides the direct sl(pc) method so Update integrates the
// retention curve instead
type rateOnly struct {
	Model
}

func Test_update02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("update02. integrated update")

	mdl, err := New("vg")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// integrating dsl/dpc must land on the direct curve
	nr := mdl.(Nonrate)
	pc, sl := 0.0, mdl.SlMax()
	for i := 0; i < 5; i++ {
		Δpc := 3.0
		sl, err = Update(rateOnly{mdl}, pc, sl, Δpc)
		if err != nil {
			tst.Errorf("Update failed: %v\n", err)
			return
		}
		pc += Δpc
		chk.Float64(tst, io.Sf("sl(pc=%g)", pc), 1e-6, sl, nr.Sl(pc))
	}
}
