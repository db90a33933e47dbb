// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/blattms/ewoms/grid"
	"github.com/blattms/ewoms/mdl/porous"
)

// perturbation size for the finite-difference Jacobian, relative to the
// magnitude of the perturbed unknown
const fdEps = 1e-7

// TwoPhase discretizes immiscible two-phase flow (liquid-gas) with a
// cell-centred finite-volume scheme. Unknowns are the two pressures pl
// and pg per cell; saturations follow from the retention model via
// pc = pg - pl. Fluxes use two-point approximation with upwinded
// mobilities and densities.
type TwoPhase struct {

	// essential
	g    *grid.Grid // the grid
	prob Problem    // scenario: materials, initial/boundary conditions, sources
	c    *Clock     // simulation clock

	// state; layout is [pl0, pg0, pl1, pg1, ...]
	y     la.Vector // trial solution
	yprev la.Vector // converged solution of the previous time level

	// workspace
	ftmp la.Vector // perturbed residual for the finite-difference Jacobian
}

// NewTwoPhase creates the discretization and sets the initial condition
func NewTwoPhase(g *grid.Grid, prob Problem, c *Clock) (o *TwoPhase) {
	o = &TwoPhase{g: g, prob: prob, c: c}
	nds := 2 * g.Ncells
	o.y = la.NewVector(nds)
	o.yprev = la.NewVector(nds)
	o.ftmp = la.NewVector(nds)
	for i := 0; i < g.Ncells; i++ {
		pl, pg := prob.Initial(g.Cent[i])
		o.y[2*i], o.y[2*i+1] = pl, pg
	}
	copy(o.yprev, o.y)
	return
}

// Ndofs returns the number of degrees of freedom (two per cell)
func (o *TwoPhase) Ndofs() int { return 2 * o.g.Ncells }

// Update attempts to solve one time step at the clock's current step
// size. On failure the trial solution is restored to the previous time
// level so that a retry with a smaller step starts clean.
func (o *TwoPhase) Update(nl Nonlinear) (converged bool) {
	converged = nl.Solve(o, o.c.TimeStepSize())
	if !converged {
		copy(o.y, o.yprev)
	}
	return
}

// AdvanceTimeLevel commits the trial solution as the new previous time
// level. Must only be called after a converged Update.
func (o *TwoPhase) AdvanceTimeLevel() {
	copy(o.yprev, o.y)
}

// UpdateTrial applies an iterative update to the trial solution
func (o *TwoPhase) UpdateTrial(dY la.Vector) {
	for i := range o.y {
		o.y[i] += dY[i]
	}
}

// Assemble computes the residual F and the Jacobian K at the trial
// solution for a step of size dt. The Jacobian is computed by finite
// differences over the three-cell stencil of the scheme.
func (o *TwoPhase) Assemble(F la.Vector, K *la.Triplet, dt float64) {
	o.residual(F, o.y, dt)

	nds := o.Ndofs()
	K.Start()
	for k := 0; k < nds; k++ {
		h := fdEps * (1.0 + math.Abs(o.y[k]))
		tmp := o.y[k]
		o.y[k] = tmp + h
		o.residual(o.ftmp, o.y, dt)
		o.y[k] = tmp

		// only the rows of the perturbed cell and its neighbours change
		cell := k / 2
		for c := cell - 1; c <= cell+1; c++ {
			if c < 0 || c >= o.g.Ncells {
				continue
			}
			for d := 0; d < 2; d++ {
				r := 2*c + d
				K.Put(r, k, (o.ftmp[r]-F[r])/h)
			}
		}
	}
}

// residual evaluates the mass balance residuals of both phases at
// solution y: accumulation against the previous time level, upwinded
// Darcy fluxes over all faces, sources, and boundary conditions
// evaluated at the end-of-step time.
func (o *TwoPhase) residual(F, y la.Vector, dt float64) {

	por := o.prob.Porous()
	t := o.c.Time() + dt

	// accumulation and sources
	for i := 0; i < o.g.Ncells; i++ {
		pl, pg := y[2*i], y[2*i+1]
		sl := por.Sl(pg - pl)
		rhol, rhog := por.Liq.Rho(pl), por.Gas.Rho(pg)

		plp, pgp := o.yprev[2*i], o.yprev[2*i+1]
		slp := por.Sl(pgp - plp)
		rholp, rhogp := por.Liq.Rho(plp), por.Gas.Rho(pgp)

		V := o.g.Vol[i]
		F[2*i] = V * por.Nf0 * (rhol*sl - rholp*slp) / dt
		F[2*i+1] = V * por.Nf0 * (rhog*(1.0-sl) - rhogp*(1.0-slp)) / dt

		ql, qg := o.prob.Source(o.g.Cent[i], t)
		F[2*i] -= ql * V
		F[2*i+1] -= qg * V
	}

	// fluxes
	for _, f := range o.g.Faces {
		if f.Neigh != grid.Exterior {
			o.internalFlux(F, y, por, f)
			continue
		}
		bc := o.prob.Boundary(f.Tag, t)
		switch bc.Kind {
		case NeumannBC:
			i := f.Owner
			F[2*i] += bc.Ql * f.Area
			F[2*i+1] += bc.Qg * f.Area
		case DirichletBC:
			o.boundaryFlux(F, y, por, f, bc)
		}
	}

	// constrained cells replace their mass balances with pinning equations
	for i := 0; i < o.g.Ncells; i++ {
		if plc, pgc, ok := o.prob.Constraints(i, t); ok {
			F[2*i] = y[2*i] - plc
			F[2*i+1] = y[2*i+1] - pgc
		}
	}
}

// internalFlux adds the upwinded two-point mass fluxes across an internal
// face to the residuals of both adjacent cells. Positive flux leaves the
// owner cell.
func (o *TwoPhase) internalFlux(F, y la.Vector, por *porous.Model, f *grid.Face) {
	i, j := f.Owner, f.Neigh
	pli, pgi := y[2*i], y[2*i+1]
	plj, pgj := y[2*j], y[2*j+1]
	sli, slj := por.Sl(pgi-pli), por.Sl(pgj-plj)
	tran := por.Kappa * f.Area / f.Dist

	// liquid
	dpl := pli - plj
	mobl, rhol := por.Mobl(sli), por.Liq.Rho(pli)
	if dpl < 0 {
		mobl, rhol = por.Mobl(slj), por.Liq.Rho(plj)
	}
	ql := tran * mobl * rhol * dpl
	F[2*i] += ql
	F[2*j] -= ql

	// gas
	dpg := pgi - pgj
	mobg, rhog := por.Mobg(1.0-sli), por.Gas.Rho(pgi)
	if dpg < 0 {
		mobg, rhog = por.Mobg(1.0-slj), por.Gas.Rho(pgj)
	}
	qg := tran * mobg * rhog * dpg
	F[2*i+1] += qg
	F[2*j+1] -= qg
}

// boundaryFlux adds the upwinded two-point mass fluxes across a boundary
// face with a prescribed fluid state on the outside
func (o *TwoPhase) boundaryFlux(F, y la.Vector, por *porous.Model, f *grid.Face, bc BC) {
	i := f.Owner
	pli, pgi := y[2*i], y[2*i+1]
	sli := por.Sl(pgi - pli)
	slb := por.Sl(bc.Pg - bc.Pl)
	tran := por.Kappa * f.Area / f.Dist

	// liquid
	dpl := pli - bc.Pl
	mobl, rhol := por.Mobl(sli), por.Liq.Rho(pli)
	if dpl < 0 {
		mobl, rhol = por.Mobl(slb), por.Liq.Rho(bc.Pl)
	}
	F[2*i] += tran * mobl * rhol * dpl

	// gas
	dpg := pgi - bc.Pg
	mobg, rhog := por.Mobg(1.0-sli), por.Gas.Rho(pgi)
	if dpg < 0 {
		mobg, rhog = por.Mobg(1.0-slb), por.Gas.Rho(bc.Pg)
	}
	F[2*i+1] += tran * mobg * rhog * dpg
}

// queries ///////////////////////////////////////////////////////////////////////////////////////

// Pl returns the liquid pressure of cell i at the trial solution
func (o *TwoPhase) Pl(i int) float64 { return o.y[2*i] }

// Pg returns the gas pressure of cell i at the trial solution
func (o *TwoPhase) Pg(i int) float64 { return o.y[2*i+1] }

// Sl returns the liquid saturation of cell i at the trial solution
func (o *TwoPhase) Sl(i int) float64 {
	return o.prob.Porous().Sl(o.y[2*i+1] - o.y[2*i])
}

// Storage returns the total liquid and gas mass currently in place
func (o *TwoPhase) Storage() (ml, mg float64) {
	por := o.prob.Porous()
	for i := 0; i < o.g.Ncells; i++ {
		pl, pg := o.y[2*i], o.y[2*i+1]
		sl := por.Sl(pg - pl)
		V := o.g.Vol[i]
		ml += V * por.Nf0 * sl * por.Liq.Rho(pl)
		mg += V * por.Nf0 * (1.0 - sl) * por.Gas.Rho(pg)
	}
	return
}

// Grid returns the grid
func (o *TwoPhase) Grid() *grid.Grid { return o.g }

// Problem returns the scenario
func (o *TwoPhase) Problem() Problem { return o.prob }

// DofValues returns a copy of the trial solution, for restart files
func (o *TwoPhase) DofValues() []float64 { return o.y.GetCopy() }

// SetDofValues overwrites both time levels with the given solution, when
// resuming from a restart file
func (o *TwoPhase) SetDofValues(y []float64) {
	copy(o.y, y)
	copy(o.yprev, y)
}
