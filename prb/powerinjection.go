// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prb implements the built-in scenarios. Importing this package
// registers them with the simulator.
package prb

import (
	"github.com/cpmech/gosl/chk"

	"github.com/blattms/ewoms/fvm"
	"github.com/blattms/ewoms/grid"
	"github.com/blattms/ewoms/inp"
	"github.com/blattms/ewoms/mdl/porous"
)

// PowerInjection is 1D forced injection of gas into fully water-saturated
// rock: a fixed mass rate of gas enters on the left while the right
// boundary keeps the initial fluid state. With an episode schedule the
// injection runs during the first episode only and is shut in afterwards.
type PowerInjection struct {
	fvm.Hooks

	// configuration
	g   *grid.Grid    // the grid, for locating boundaries
	eps float64       // tolerance for the boundary position predicates
	por *porous.Model // material bundle
	inj inp.TimeFunc  // injection mass rate [kg/(m²·s)], negative into the domain
	p0  float64       // initial pressure

	// state
	shutIn bool // injection stopped after the first episode
}

func init() {
	fvm.RegisterProblem("powerinjection", func(sim *inp.Simulation, g *grid.Grid) (fvm.Problem, error) {
		if sim.MatDb == nil {
			return nil, chk.Err("powerinjection requires a materials database")
		}
		por, err := sim.MatDb.GetPorous(sim.Problem.PorMat)
		if err != nil {
			return nil, err
		}
		inj, err := sim.Functions.Get("injrate")
		if err != nil {
			return nil, err
		}
		eps := g.Lx / float64(g.Ncells) // near-boundary cell centroids pass the predicates
		return &PowerInjection{g: g, eps: eps, por: por, inj: inj, p0: 1e5}, nil
	})
}

// Name returns the registered scenario name
func (o *PowerInjection) Name() string { return "powerinjection" }

// Porous returns the material bundle
func (o *PowerInjection) Porous() *porous.Model { return o.por }

// Initial returns the initial pressures: both phases at p0, hence zero
// capillary pressure and full liquid saturation
func (o *PowerInjection) Initial(x float64) (pl, pg float64) {
	return o.p0, o.p0
}

// Boundary imposes the gas mass rate on the left and the initial fluid
// state on the right; the sides are located by position, not by tag
func (o *PowerInjection) Boundary(tag int, t float64) fvm.BC {
	f := o.g.Boundary(tag)
	if f == nil {
		return fvm.BC{Kind: fvm.NeumannBC}
	}
	x := o.g.Cent[f.Owner]
	switch {
	case o.g.OnLeft(x, o.eps):
		qg := 0.0
		if !o.shutIn {
			qg = o.inj.F(t)
		}
		return fvm.BC{Kind: fvm.NeumannBC, Qg: qg}
	case o.g.OnRight(x, o.eps):
		return fvm.BC{Kind: fvm.DirichletBC, Pl: o.p0, Pg: o.p0}
	}
	return fvm.BC{Kind: fvm.NeumannBC} // no-flow elsewhere
}

// Source returns no volumetric sources
func (o *PowerInjection) Source(x, t float64) (ql, qg float64) {
	return 0, 0
}

// Constraints pins no cells
func (o *PowerInjection) Constraints(i int, t float64) (pl, pg float64, ok bool) {
	return 0, 0, false
}

// BeginEpisode shuts the injection in from the second episode on
func (o *PowerInjection) BeginEpisode(c *fvm.Clock) {
	o.shutIn = c.EpisodeIndex() > 0
}
