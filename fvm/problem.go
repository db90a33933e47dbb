// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/blattms/ewoms/grid"
	"github.com/blattms/ewoms/inp"
	"github.com/blattms/ewoms/mdl/porous"
)

// boundary condition kinds
const (
	NeumannBC   = iota // prescribed mass flux
	DirichletBC        // prescribed fluid state
)

// BC describes the condition applied on one boundary face at one instant
type BC struct {
	Kind   int     // NeumannBC or DirichletBC
	Pl, Pg float64 // boundary pressures [Pa]; Dirichlet only
	Ql, Qg float64 // boundary mass fluxes [kg/(m²·s)], positive out of the domain; Neumann only
}

// Problem defines a scenario: the material bundle, initial and boundary
// conditions, sources, and the hooks called by the simulator around each
// episode and time step.
type Problem interface {

	// essential
	Name() string                         // registered scenario name
	Porous() *porous.Model                // material bundle
	Initial(x float64) (pl, pg float64)   // initial pressures at position x
	Boundary(tag int, t float64) BC       // condition on the boundary face with given tag
	Source(x, t float64) (ql, qg float64) // volumetric mass sources [kg/(m³·s)]

	// Constraints pins both pressures of a cell to fixed values; ok
	// reports whether cell i is constrained at time t
	Constraints(i int, t float64) (pl, pg float64, ok bool)

	// hooks; Hooks provides no-op defaults
	BeginEpisode(c *Clock)
	EndEpisode(c *Clock)
	BeginTimeStep(c *Clock)
	EndTimeStep(c *Clock)
	PostTimeStep(m *TwoPhase, c *Clock)
	ShouldWriteOutput(c *Clock, dflt bool) bool
	ShouldWriteRestartFile(c *Clock, dflt bool) bool
}

// Hooks is a base providing no-op implementations of the optional Problem
// hooks. Scenarios embed it and override what they need.
type Hooks struct{}

func (o *Hooks) BeginEpisode(c *Clock)                           {}
func (o *Hooks) EndEpisode(c *Clock)                             {}
func (o *Hooks) BeginTimeStep(c *Clock)                          {}
func (o *Hooks) EndTimeStep(c *Clock)                            {}
func (o *Hooks) PostTimeStep(m *TwoPhase, c *Clock)              {}
func (o *Hooks) ShouldWriteOutput(c *Clock, dflt bool) bool      { return dflt }
func (o *Hooks) ShouldWriteRestartFile(c *Clock, dflt bool) bool { return dflt }

// problem allocators ///////////////////////////////////////////////////////////////////////////////

// Allocator creates a scenario from the simulation input and the grid
type Allocator func(sim *inp.Simulation, g *grid.Grid) (Problem, error)

// allocators maps scenario names to allocators
var allocators = map[string]Allocator{}

// RegisterProblem records a scenario allocator under the given name
func RegisterProblem(name string, alloc Allocator) {
	if _, ok := allocators[name]; ok {
		chk.Panic("problem %q is already registered", name)
	}
	allocators[name] = alloc
}

// NewProblem allocates the scenario selected in the simulation input
func NewProblem(sim *inp.Simulation, g *grid.Grid) (Problem, error) {
	alloc, ok := allocators[sim.Problem.Name]
	if !ok {
		return nil, chk.Err("problem named %q is not available", sim.Problem.Name)
	}
	return alloc(sim, g)
}
