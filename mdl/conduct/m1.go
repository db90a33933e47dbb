// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// M1 implements power-law relative permeability curves:
//
//   klr(sl) = klmax * sel^βl      sel = (sl - slr) / (1 - slr - sgr)
//   kgr(sg) = kgmax * seg^βg      seg = (sg - sgr) / (1 - slr - sgr)
//
// effective saturations are clipped to [0,1]
type M1 struct {
	βl, βg float64 // exponents
	slr    float64 // residual liquid saturation
	sgr    float64 // residual gas saturation
	klmax  float64 // maximum klr
	kgmax  float64 // maximum kgr
}

// add model to factory
func init() {
	allocators["m1"] = func() Model { return new(M1) }
}

// Init initialises this structure
func (o *M1) Init(prms utl.Params) (err error) {
	o.βl, o.βg = 3, 3
	o.klmax, o.kgmax = 1, 1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "betl":
			o.βl = p.V
		case "betg":
			o.βg = p.V
		case "slr":
			o.slr = p.V
		case "sgr":
			o.sgr = p.V
		case "klmax":
			o.klmax = p.V
		case "kgmax":
			o.kgmax = p.V
		default:
			return chk.Err("m1: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.slr+o.sgr >= 1 {
		return chk.Err("m1: residual saturations are invalid: slr=%g sgr=%g", o.slr, o.sgr)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o M1) GetPrms(example bool) utl.Params {
	return utl.Params{
		&utl.P{N: "betl", V: 3},
		&utl.P{N: "betg", V: 3},
		&utl.P{N: "slr", V: 0.0},
		&utl.P{N: "sgr", V: 0.0},
		&utl.P{N: "klmax", V: 1.0},
		&utl.P{N: "kgmax", V: 1.0},
	}
}

// Klr returns klr
func (o M1) Klr(sl float64) float64 {
	se := o.sel(sl)
	return o.klmax * math.Pow(se, o.βl)
}

// Kgr returns kgr
func (o M1) Kgr(sg float64) float64 {
	se := o.seg(sg)
	return o.kgmax * math.Pow(se, o.βg)
}

// DklrDsl returns ∂klr/∂sl
func (o M1) DklrDsl(sl float64) float64 {
	se := o.sel(sl)
	if se <= 0 || se >= 1 {
		return 0
	}
	return o.klmax * o.βl * math.Pow(se, o.βl-1.0) / (1.0 - o.slr - o.sgr)
}

// DkgrDsg returns ∂kgr/∂sg
func (o M1) DkgrDsg(sg float64) float64 {
	se := o.seg(sg)
	if se <= 0 || se >= 1 {
		return 0
	}
	return o.kgmax * o.βg * math.Pow(se, o.βg-1.0) / (1.0 - o.slr - o.sgr)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func (o M1) sel(sl float64) float64 {
	return clip01((sl - o.slr) / (1.0 - o.slr - o.sgr))
}

func (o M1) seg(sg float64) float64 {
	return clip01((sg - o.sgr) / (1.0 - o.slr - o.sgr))
}

func clip01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
