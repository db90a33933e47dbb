// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fvm implements the finite-volume simulator core: the simulation
// clock, the Newton-Raphson solver, the time-integration controller and
// the two-phase flow discretization
package fvm

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Clock owns the simulated time, the current (tentative) step size, the
// step index and the episode boundaries. The step size is the only field
// also mutated by the time-integration controller (during bisection).
type Clock struct {

	// state
	time    float64 // current simulated time
	dt      float64 // current tentative time step size
	stepIdx int     // index of the step about to be computed
	epIdx   int     // index of the current episode
	epStart float64 // start time of the current episode
	epLen   float64 // length of the current episode; +inf if unbounded

	// constants
	tf  float64 // final time of the whole simulation
	tol float64 // tolerance when comparing times
}

// NewClock creates a clock for a run ending at tf, starting with step size dt0.
// The first episode is unbounded until StartNextEpisode is called.
func NewClock(tf, dt0 float64) (o *Clock) {
	if tf < 1e-14 {
		chk.Panic("final time tf=%g is invalid", tf)
	}
	if dt0 < 0 {
		chk.Panic("initial time step dt0=%g is invalid", dt0)
	}
	o = new(Clock)
	o.tf = tf
	o.dt = dt0
	o.epIdx = -1
	o.epLen = math.Inf(1)
	o.tol = 1e-10 * tf
	return
}

// Time returns the current simulated time
func (o *Clock) Time() float64 { return o.time }

// FinalTime returns the final time of the whole simulation
func (o *Clock) FinalTime() float64 { return o.tf }

// TimeStepSize returns the current tentative step size
func (o *Clock) TimeStepSize() float64 { return o.dt }

// SetTimeStepSize overwrites the current tentative step size
func (o *Clock) SetTimeStepSize(dt float64) {
	if dt < 0 {
		chk.Panic("time step size dt=%g is invalid", dt)
	}
	o.dt = dt
}

// TimeStepIndex returns the index of the time step about to be computed
func (o *Clock) TimeStepIndex() int { return o.stepIdx }

// EpisodeIndex returns the index of the current episode
func (o *Clock) EpisodeIndex() int { return o.epIdx }

// EpisodeStart returns the start time of the current episode
func (o *Clock) EpisodeStart() float64 { return o.epStart }

// EpisodeEnd returns the end time of the current episode; +inf if unbounded
func (o *Clock) EpisodeEnd() float64 { return o.epStart + o.epLen }

// StartNextEpisode begins a new episode of length tlen at the current time
func (o *Clock) StartNextEpisode(tlen float64) {
	if tlen < 1e-14 {
		chk.Panic("episode length tlen=%g is invalid", tlen)
	}
	o.epIdx++
	o.epStart = o.time
	o.epLen = tlen
}

// EpisodeWillBeOver tells whether the current episode ends within the
// step about to be computed
func (o *Clock) EpisodeWillBeOver() bool {
	return o.time+o.dt >= o.EpisodeEnd()-o.tol
}

// EpisodeIsOver tells whether the current episode has already ended
func (o *Clock) EpisodeIsOver() bool {
	return o.time >= o.EpisodeEnd()-o.tol
}

// WillBeFinished tells whether the whole simulation ends within the step
// about to be computed
func (o *Clock) WillBeFinished() bool {
	return o.time+o.dt >= o.tf-o.tol
}

// Finished tells whether the whole simulation has ended
func (o *Clock) Finished() bool {
	return o.time >= o.tf-o.tol
}

// Restore overwrites the whole clock state, when resuming a run from a
// restart file
func (o *Clock) Restore(t, dt float64, stepIdx, epIdx int, epStart, epLen float64) {
	o.time = t
	o.dt = dt
	o.stepIdx = stepIdx
	o.epIdx = epIdx
	o.epStart = epStart
	o.epLen = epLen
}

// Advance commits the current step: moves time forward by dt and
// increments the step index
func (o *Clock) Advance() {
	o.time += o.dt
	o.stepIdx++
}
