// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package porous implements the porous medium bundle: porosity, intrinsic
// permeability and the auxiliary fluid, retention and conductivity models
package porous

import (
	"github.com/blattms/ewoms/mdl/conduct"
	"github.com/blattms/ewoms/mdl/fluid"
	"github.com/blattms/ewoms/mdl/retention"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Model holds material parameters for a porous medium
type Model struct {

	// parameters
	Nf0   float64 // nf0: initial volume fraction of all fluids ~ porosity
	Kappa float64 // intrinsic permeability (isotropic)
	RhoS0 float64 // real (intrinsic) density of solids
	Temp  float64 // temperature within the medium

	// auxiliary models
	Cnd conduct.Model   // liquid-gas conductivity models
	Lrm retention.Model // retention model
	Liq *fluid.Model    // liquid properties
	Gas *fluid.Model    // gas properties

	// derived
	nonrateLrm retention.Nonrate // LRM is of non-rate type
}

// Init initialises this structure
func (o *Model) Init(prms utl.Params, Cnd conduct.Model, Lrm retention.Model, Liq, Gas *fluid.Model) (err error) {

	// check
	if Cnd == nil || Lrm == nil || Liq == nil || Gas == nil {
		return chk.Err("porous model requires conductivity, retention, liquid and gas models")
	}
	o.Cnd, o.Lrm, o.Liq, o.Gas = Cnd, Lrm, Liq, Gas
	o.nonrateLrm, _ = Lrm.(retention.Nonrate)

	// parameters
	o.Temp = 293.15
	for _, p := range prms {
		switch p.N {
		case "nf0":
			o.Nf0 = p.V
		case "kappa":
			o.Kappa = p.V
		case "RhoS0":
			o.RhoS0 = p.V
		case "Temp":
			o.Temp = p.V
		default:
			return chk.Err("porous: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Nf0 < 1e-14 || o.Nf0 > 1 {
		return chk.Err("porous: porosity nf0=%g is invalid", o.Nf0)
	}
	if o.Kappa < 1e-30 {
		return chk.Err("porous: intrinsic permeability kappa=%g is invalid", o.Kappa)
	}
	return
}

// Sl computes the liquid saturation for a given capillary pressure
func (o *Model) Sl(pc float64) float64 {
	if o.nonrateLrm != nil {
		return o.nonrateLrm.Sl(pc)
	}
	sl, err := retention.Update(o.Lrm, 0, o.Lrm.SlMax(), pc)
	if err != nil {
		chk.Panic("cannot update retention model for pc=%g:\n%v", pc, err)
	}
	return sl
}

// Mobl computes the liquid mobility klr/μl for a given saturation
func (o *Model) Mobl(sl float64) float64 {
	return o.Cnd.Klr(sl) / o.Liq.Mu
}

// Mobg computes the gas mobility kgr/μg for a given saturation
func (o *Model) Mobg(sg float64) float64 {
	return o.Cnd.Kgr(sg) / o.Gas.Mu
}
