// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prb

import (
	"github.com/cpmech/gosl/chk"

	"github.com/blattms/ewoms/fvm"
	"github.com/blattms/ewoms/grid"
	"github.com/blattms/ewoms/inp"
	"github.com/blattms/ewoms/mdl/porous"
)

// Column is pressure-driven drainage of a water-saturated column: the gas
// pressure on the left boundary is raised above the initial pressure so
// gas displaces the liquid towards the free-flow boundary on the right.
// The total fluid mass in place is recorded after every time step.
type Column struct {
	fvm.Hooks

	// configuration
	por *porous.Model // material bundle
	p0  float64       // initial pressure
	pgb float64       // gas pressure on the left boundary

	// state
	Masses []float64 // total fluid mass in place after each step
}

func init() {
	fvm.RegisterProblem("column", func(sim *inp.Simulation, g *grid.Grid) (fvm.Problem, error) {
		if sim.MatDb == nil {
			return nil, chk.Err("column requires a materials database")
		}
		por, err := sim.MatDb.GetPorous(sim.Problem.PorMat)
		if err != nil {
			return nil, err
		}
		return &Column{por: por, p0: 1e5, pgb: 1.5e5}, nil
	})
}

// Name returns the registered scenario name
func (o *Column) Name() string { return "column" }

// Porous returns the material bundle
func (o *Column) Porous() *porous.Model { return o.por }

// Initial returns the initial pressures: both phases at p0
func (o *Column) Initial(x float64) (pl, pg float64) {
	return o.p0, o.p0
}

// Boundary raises the gas pressure on the left and keeps the initial
// state on the right
func (o *Column) Boundary(tag int, t float64) fvm.BC {
	if tag == grid.TagLeft {
		return fvm.BC{Kind: fvm.DirichletBC, Pl: o.p0, Pg: o.pgb}
	}
	return fvm.BC{Kind: fvm.DirichletBC, Pl: o.p0, Pg: o.p0}
}

// Source returns no volumetric sources
func (o *Column) Source(x, t float64) (ql, qg float64) {
	return 0, 0
}

// Constraints pins no cells
func (o *Column) Constraints(i int, t float64) (pl, pg float64, ok bool) {
	return 0, 0, false
}

// PostTimeStep records the total fluid mass in place
func (o *Column) PostTimeStep(m *fvm.TwoPhase, c *fvm.Clock) {
	ml, mg := m.Storage()
	o.Masses = append(o.Masses, ml+mg)
}
