// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"testing"

	"github.com/blattms/ewoms/mdl/conduct"
	"github.com/blattms/ewoms/mdl/fluid"
	"github.com/blattms/ewoms/mdl/retention"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_porous01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("porous01")

	cnd, err := conduct.New("m1")
	if err != nil {
		tst.Errorf("conduct.New failed: %v\n", err)
		return
	}
	if err = cnd.Init(cnd.GetPrms(true)); err != nil {
		tst.Errorf("cnd.Init failed: %v\n", err)
		return
	}

	lrm, err := retention.New("vg")
	if err != nil {
		tst.Errorf("retention.New failed: %v\n", err)
		return
	}
	if err = lrm.Init(lrm.GetPrms(true)); err != nil {
		tst.Errorf("lrm.Init failed: %v\n", err)
		return
	}

	liq := new(fluid.Model)
	liq.Init(liq.GetPrms(true), 10, 10)
	gas := new(fluid.Model)
	gas.Gas = true
	gas.Init(gas.GetPrms(true), 10, 10)

	var mdl Model
	err = mdl.Init(utl.Params{
		&utl.P{N: "nf0", V: 0.3},
		&utl.P{N: "kappa", V: 1e-10},
		&utl.P{N: "RhoS0", V: 2.7},
	}, cnd, lrm, liq, gas)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	chk.Float64(tst, "nf0  ", 1e-15, mdl.Nf0, 0.3)
	chk.Float64(tst, "kappa", 1e-25, mdl.Kappa, 1e-10)
	chk.Float64(tst, "Temp ", 1e-15, mdl.Temp, 293.15)

	// saturation from retention model
	chk.Float64(tst, "sl(0)", 1e-15, mdl.Sl(0), lrm.SlMax())

	// mobilities
	chk.Float64(tst, "mobl(1)", 1e-10, mdl.Mobl(1.0), cnd.Klr(1.0)/liq.Mu)
	chk.Float64(tst, "mobg(1)", 1e-10, mdl.Mobg(1.0), cnd.Kgr(1.0)/gas.Mu)

	// missing sub-models must be rejected
	var bad Model
	if err := bad.Init(nil, nil, lrm, liq, gas); err == nil {
		tst.Errorf("Init must fail without a conductivity model\n")
	}
}
