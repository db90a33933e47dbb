// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_m1a(tst *testing.T) {

	//verbose()
	chk.PrintTitle("m1a")

	mdl, err := New("m1")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// endpoints
	chk.Float64(tst, "klr(0)", 1e-15, mdl.Klr(0), 0.0)
	chk.Float64(tst, "klr(1)", 1e-15, mdl.Klr(1), 1.0)
	chk.Float64(tst, "kgr(0)", 1e-15, mdl.Kgr(0), 0.0)
	chk.Float64(tst, "kgr(1)", 1e-15, mdl.Kgr(1), 1.0)

	// power law with βl = 3
	chk.Float64(tst, "klr(0.5)", 1e-15, mdl.Klr(0.5), 0.125)

	// derivatives versus numerical values
	h := 1e-6
	for _, s := range []float64{0.2, 0.5, 0.8} {
		num := (mdl.Klr(s+h) - mdl.Klr(s-h)) / (2 * h)
		io.Pforan("s=%g dklr=%v num=%v\n", s, mdl.DklrDsl(s), num)
		chk.Float64(tst, io.Sf("dklr/dsl(%g)", s), 1e-7, mdl.DklrDsl(s), num)
		num = (mdl.Kgr(s+h) - mdl.Kgr(s-h)) / (2 * h)
		chk.Float64(tst, io.Sf("dkgr/dsg(%g)", s), 1e-7, mdl.DkgrDsg(s), num)
	}
}

func Test_m1b(tst *testing.T) {

	//verbose()
	chk.PrintTitle("m1b")

	// with residual saturations
	mdl := new(M1)
	prms := mdl.GetPrms(true)
	prms.Find("slr").V = 0.1
	prms.Find("sgr").V = 0.05
	err := mdl.Init(prms)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "klr(slr)   ", 1e-15, mdl.Klr(0.1), 0.0)
	chk.Float64(tst, "klr(1-sgr) ", 1e-15, mdl.Klr(0.95), 1.0)
	chk.Float64(tst, "kgr(sgr)   ", 1e-15, mdl.Kgr(0.05), 0.0)

	// invalid residuals
	bad := new(M1)
	prms = bad.GetPrms(true)
	prms.Find("slr").V = 0.6
	prms.Find("sgr").V = 0.5
	if err := bad.Init(prms); err == nil {
		tst.Errorf("Init must fail when slr+sgr >= 1\n")
	}
}
