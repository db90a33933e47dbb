// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// TimeFunc is a scalar function of time, used for boundary-condition
// magnitudes and other time-dependent input quantities
type TimeFunc interface {
	F(t float64) float64 // evaluates the function at time t
}

// Cte implements a constant function: F(t) = C
type Cte struct {
	C float64 // the constant
}

// F evaluates the function at time t
func (o Cte) F(t float64) float64 { return o.C }

// Rmp implements a linear ramp between (Ta,Ca) and (Tb,Cb), clamped to
// the end values outside [Ta,Tb]
type Rmp struct {
	Ca, Cb float64 // values at Ta and Tb
	Ta, Tb float64 // ramp time window
}

// F evaluates the function at time t
func (o Rmp) F(t float64) float64 {
	if t <= o.Ta {
		return o.Ca
	}
	if t >= o.Tb {
		return o.Cb
	}
	return o.Ca + (o.Cb-o.Ca)*(t-o.Ta)/(o.Tb-o.Ta)
}

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: zero, injrate, myfunction1, etc.
	Type string     `json:"type"` // type of function. ex: cte, rmp
	Prms utl.Params `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn TimeFunc, err error) {
	if name == "zero" || name == "none" {
		return Cte{}, nil
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = newTimeFunc(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// newTimeFunc allocates a time function by type name
func newTimeFunc(typ string, prms utl.Params) (TimeFunc, error) {
	switch typ {
	case "cte":
		var f Cte
		for _, p := range prms {
			switch p.N {
			case "c":
				f.C = p.V
			default:
				return nil, chk.Err("cte: parameter named %q is incorrect\n", p.N)
			}
		}
		return f, nil
	case "rmp":
		var f Rmp
		for _, p := range prms {
			switch p.N {
			case "ca":
				f.Ca = p.V
			case "cb":
				f.Cb = p.V
			case "ta":
				f.Ta = p.V
			case "tb":
				f.Tb = p.V
			default:
				return nil, chk.Err("rmp: parameter named %q is incorrect\n", p.N)
			}
		}
		if f.Tb <= f.Ta {
			return nil, chk.Err("rmp: time window is invalid: ta=%g tb=%g", f.Ta, f.Tb)
		}
		return f, nil
	}
	return nil, chk.Err("function type %q is not available", typ)
}
