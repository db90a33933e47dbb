// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements models for the density and viscosity of pore fluids
package fluid

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Model implements a slightly-compressible fluid phase. Pressure (p) and
// intrinsic density (R) along a column with gravity (g) follow from:
//   R(p) = R0 + C・(p - p0)   thus   dR/dp = C
type Model struct {

	// material data
	R0  float64 // intrinsic density corresponding to p0
	P0  float64 // pressure corresponding to R0
	C   float64 // compressibility coefficient; e.g. R0/Kbulk or M/(R・θ)
	Mu  float64 // dynamic viscosity
	Gas bool    // is gas instead of liquid?

	// additional data
	H    float64 // elevation where (R0,p0) is known
	Grav float64 // gravity acceleration (positive constant)
}

// Init initialises this structure
func (o *Model) Init(prms utl.Params, H, grav float64) {
	for _, p := range prms {
		switch p.N {
		case "R0":
			o.R0 = p.V
		case "P0":
			o.P0 = p.V
		case "C":
			o.C = p.V
		case "Mu":
			o.Mu = p.V
		case "gas", "Gas":
			o.Gas = p.V > 0
		}
	}
	o.H = H
	o.Grav = grav
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters; othewise returns current parameters
//  Note:
//   Gas variable is used to return dry air properties instead of water
func (o Model) GetPrms(example bool) utl.Params {
	if example {
		if o.Gas {
			return utl.Params{ // dry air
				&utl.P{N: "R0", V: 0.0012},  // [Mg/m³]
				&utl.P{N: "P0", V: 0.0},     // [kPa]
				&utl.P{N: "C", V: 1.17e-5},  // [Mg/(m³・kPa)]
				&utl.P{N: "Mu", V: 1.8e-11}, // [kPa・s]
				&utl.P{N: "Gas", V: 1},      // [-]
			}
		}
		return utl.Params{ // water
			&utl.P{N: "R0", V: 1.0},    // [Mg/m³]
			&utl.P{N: "P0", V: 0.0},    // [kPa]
			&utl.P{N: "C", V: 4.53e-7}, // [Mg/(m³・kPa)]
			&utl.P{N: "Mu", V: 1e-6},   // [kPa・s]
			&utl.P{N: "Gas", V: 0},     // [-]
		}
	}
	var gas float64
	if o.Gas {
		gas = 1
	}
	return utl.Params{
		&utl.P{N: "R0", V: o.R0},
		&utl.P{N: "P0", V: o.P0},
		&utl.P{N: "C", V: o.C},
		&utl.P{N: "Mu", V: o.Mu},
		&utl.P{N: "Gas", V: gas},
	}
}

// Rho computes the intrinsic density for a given pressure
func (o Model) Rho(p float64) float64 {
	return o.R0 + o.C*(p-o.P0)
}

// DrhoDp returns the derivative of density w.r.t. pressure
func (o Model) DrhoDp() float64 {
	return o.C
}

// Calc computes hydrostatic pressure and density at elevation z
func (o Model) Calc(z float64) (p, R float64) {
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}
