// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_fld01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld01")

	H := 10.0
	g := 10.0

	var water Model
	water.Init(water.GetPrms(true), H, g)

	var dryair Model
	dryair.Gas = true
	dryair.Init(dryair.GetPrms(true), H, g)

	// density at reference pressure
	chk.Float64(tst, "R(p0) water", 1e-15, water.Rho(water.P0), water.R0)
	chk.Float64(tst, "R(p0) air  ", 1e-15, dryair.Rho(dryair.P0), dryair.R0)

	// compressibility
	dp := 100.0
	chk.Float64(tst, "dR/dp water", 1e-15, water.Rho(water.P0+dp)-water.R0, water.C*dp)
	chk.Float64(tst, "dR/dp air  ", 1e-15, dryair.DrhoDp(), dryair.C)

	// hydrostatic column: pressure at the reference elevation is p0
	pH, RH := water.Calc(H)
	chk.Float64(tst, "p(H)", 1e-13, pH, water.P0)
	chk.Float64(tst, "R(H)", 1e-13, RH, water.R0)

	// pressure at the bottom is close to R0*g*H for a nearly incompressible liquid
	p0, _ := water.Calc(0)
	chk.Float64(tst, "p(0)", 1e-2, p0, water.R0*g*H)

	// viscosity must be set for mobility computations
	if water.Mu <= 0 || dryair.Mu <= 0 {
		tst.Errorf("viscosities must be positive\n")
	}
}
