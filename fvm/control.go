// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// restartCadence is the default number of time steps between restart files
const restartCadence = 10

// Budget bounds the retries of a single time step. It is read from the
// input at startup and never changes during the run.
type Budget struct {
	DtMax        float64 // ceiling on any proposed step size
	DtMin        float64 // floor below which no further halving is attempted
	MaxDivisions int     // bound on halving attempts; 0 means exactly one attempt
}

// Timing holds running totals of the Newton phases across all steps of the
// run. Totals increase monotonically and are never reset mid-run.
type Timing struct {
	Assemble time.Duration // total wall time spent linearizing the system
	Solve    time.Duration // total wall time spent in the linear solver
	Update   time.Duration // total wall time spent applying iterative updates
}

// Model is the view of the spatial discretization seen by the controller:
// one full nonlinear solve attempt at the clock's current step size, plus
// the commit of a converged solution as the new "previous" state.
type Model interface {
	Update(nl Nonlinear) (converged bool)
	AdvanceTimeLevel()
}

// Nonlinear is the view of the Newton method seen by the controller and
// the model. Phase timings are valid after Solve returns regardless of
// the outcome.
type Nonlinear interface {
	Solve(sys System, dt float64) (converged bool)
	AssembleTime() time.Duration
	SolveTime() time.Duration
	UpdateTime() time.Duration
	SuggestTimeStepSize(dt float64) float64
}

// Control drives exactly one simulated time step to convergence, adapting
// the step size downward on failure and failing loudly when the budget is
// exhausted
type Control struct {

	// input
	clock   *Clock // the simulation clock; step size is overwritten during bisection
	budget  Budget // immutable retry budget
	verbose bool   // print a notice when an attempt fails

	// accumulated
	cum      Timing // cumulative phase timings, including failed attempts
	lastDivs int    // divisions the last successful TimeIntegration needed
}

// NewControl creates a controller. The budget is validated here: an
// invalid budget is a misconfiguration, not a runtime condition.
func NewControl(clock *Clock, budget Budget, verbose bool) (o *Control) {
	if clock == nil {
		chk.Panic("controller requires a clock")
	}
	if budget.DtMin <= 0 || budget.DtMax < budget.DtMin {
		chk.Panic("step size bounds are invalid: DtMin=%g DtMax=%g", budget.DtMin, budget.DtMax)
	}
	if budget.MaxDivisions < 0 {
		chk.Panic("MaxDivisions=%d is invalid: must be non-negative", budget.MaxDivisions)
	}
	return &Control{clock: clock, budget: budget, verbose: verbose}
}

// TimeIntegration drives one time step to convergence. On failure the
// step size is halved and the attempt repeated, up to MaxDivisions
// halvings. Phase timings of every attempt are accumulated, converged or
// not. The returned error is fatal for the run: there is no further
// retry, checkpoint or salvage at this level.
func (o *Control) TimeIntegration(m Model, nl Nonlinear) (err error) {

	// if the tentative step size is smaller than the specified minimum
	// and we are not about to finish the simulation or an episode, try
	// with the minimum size
	if o.clock.TimeStepSize() < o.budget.DtMin &&
		!o.clock.EpisodeWillBeOver() &&
		!o.clock.WillBeFinished() {
		o.clock.SetTimeStepSize(o.budget.DtMin)
	}

	// retry loop: MaxDivisions halvings allow MaxDivisions+1 attempts
	for i := 0; i <= o.budget.MaxDivisions; i++ {

		// one full nonlinear solve attempt at the current step size
		converged := m.Update(nl)

		// failed attempts still cost wall time and must be accounted for
		o.cum.Assemble += nl.AssembleTime()
		o.cum.Solve += nl.SolveTime()
		o.cum.Update += nl.UpdateTime()

		if converged {
			o.lastDivs = i
			return nil
		}

		// budget exhausted; the step size must keep the value of the
		// last attempt for the error report
		if i == o.budget.MaxDivisions {
			break
		}

		// give up if we cannot make the time step smaller anymore
		dt := o.clock.TimeStepSize()
		nextDt := dt / 2.0
		if nextDt < o.budget.DtMin {
			break
		}
		o.clock.SetTimeStepSize(nextDt)

		if o.verbose {
			io.Pf("Newton solver did not converge with dt=%g. Retrying with time step of %g\n", dt, nextDt)
		}
	}

	return chk.Err("Newton solver didn't converge after %d time-step divisions. dt=%g",
		o.budget.MaxDivisions, o.clock.TimeStepSize())
}

// NextTimeStepSize returns the size to tentatively offer for the next
// step: the solver's suggestion based on the step that just converged,
// limited by the configured ceiling. Pure query: nothing is mutated.
func (o *Control) NextTimeStepSize(nl Nonlinear) float64 {
	return utl.Min(o.budget.DtMax, nl.SuggestTimeStepSize(o.clock.TimeStepSize()))
}

// ShouldWriteRestartFile tells whether a restart file should be written
// after the current step. The default cadence is one file every 10 steps.
func (o *Control) ShouldWriteRestartFile() bool {
	idx := o.clock.TimeStepIndex()
	return idx > 0 && idx%restartCadence == 0
}

// ShouldWriteOutput tells whether the current solution should be written
// to disk. The default is to write every converged step.
func (o *Control) ShouldWriteOutput() bool {
	return true
}

// CumTiming returns the cumulative phase timings accumulated so far
func (o *Control) CumTiming() Timing {
	return o.cum
}

// LastDivisions returns how many divisions the last successful
// TimeIntegration needed
func (o *Control) LastDivisions() int {
	return o.lastDivs
}
