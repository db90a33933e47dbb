// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements models for liquid retention curves
// (capillary pressure versus saturation)
package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/utl"
)

// Model implements a liquid retention model (LRM)
//  Derivs computes:
//    L  = ∂Cc/∂pc
//    Lx = ∂²Cc/∂pc²
//    J  = ∂Cc/∂sl
//    Jx == ∂²Cc/(∂pc ∂sl)
//    Jy == ∂²Cc/∂sl²
type Model interface {
	Init(prms utl.Params) error                                            // initialises retention model
	GetPrms(example bool) utl.Params                                       // gets (an example) of parameters
	SlMin() float64                                                        // returns sl_min
	SlMax() float64                                                        // returns sl_max
	Cc(pc, sl float64, wet bool) (float64, error)                          // computes Cc = f = ∂sl/∂pc
	L(pc, sl float64, wet bool) (float64, error)                           // computes L = ∂Cc/∂pc
	J(pc, sl float64, wet bool) (float64, error)                           // computes J = ∂Cc/∂sl
	Derivs(pc, sl float64, wet bool) (L, Lx, J, Jx, Jy float64, err error) // computes all derivatives
}

// Nonrate is a subset of LRM that directly computes saturation from capillary pressure
type Nonrate interface {
	Sl(pc float64) float64 // compute sl directly from pc
}

// Update updates pc and sl for given Δpc. An implicit ODE solver is used
// for rate-type models; non-rate models are evaluated directly.
func Update(mdl Model, pc0, sl0, Δpc float64) (slNew float64, err error) {

	// fast path for models that directly compute sl(pc)
	if nr, ok := mdl.(Nonrate); ok {
		return nr.Sl(pc0 + Δpc), nil
	}

	// model errors inside the ode callbacks surface as panics
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("retention update failed for pc0=%g Δpc=%g:\n%v", pc0, Δpc, r)
		}
	}()

	// wetting flag
	wet := Δpc < 0

	// callback functions
	//   x      = [0.0, 1.0]
	//   pc     = pc0 + x * Δpc
	//   y[0]   = sl
	//   f(x,y) = dy/dx = dsl/dpc * dpc/dx = Cc * Δpc
	//   J(x,y) = df/dy = DCcDsl * Δpc
	fcn := func(f la.Vector, dx, x float64, y la.Vector) {
		res, e := mdl.Cc(pc0+x*Δpc, y[0], wet)
		if e != nil {
			chk.Panic("%v", e)
		}
		f[0] = res * Δpc
	}
	jac := func(dfdy *la.Triplet, dx, x float64, y la.Vector) {
		if dfdy.Max() == 0 {
			dfdy.Init(1, 1, 1)
		}
		J, e := mdl.J(pc0+x*Δpc, y[0], wet)
		if e != nil {
			chk.Panic("%v", e)
		}
		dfdy.Start()
		dfdy.Put(0, 0, J*Δpc)
	}

	// ode solver
	conf := ode.NewConfig("radau5", "")
	conf.SetTols(1e-10, 1e-7)
	sol := ode.NewSolver(1, conf, fcn, jac, nil)
	defer sol.Free()

	// solve
	y := la.NewVector(1)
	y[0] = sl0
	sol.Solve(y, 0, 1)
	slNew = y[0]
	return
}

// New returns new liquid retention model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
