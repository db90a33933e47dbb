// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"testing"
	"time"

	"github.com/cpmech/gosl/chk"
)

// scriptedModel pretends to be a discretization: attempt k converges iff
// script[k] is true; attempts beyond the script fail
type scriptedModel struct {
	c        *Clock
	script   []bool
	attempts int       // number of Update calls
	dts      []float64 // step size seen by each attempt
	advanced int       // number of AdvanceTimeLevel calls
}

func (o *scriptedModel) Update(nl Nonlinear) bool {
	o.dts = append(o.dts, o.c.TimeStepSize())
	k := o.attempts
	o.attempts++
	if k < len(o.script) {
		return o.script[k]
	}
	return false
}

func (o *scriptedModel) AdvanceTimeLevel() { o.advanced++ }

// scriptedSolver reports fixed per-attempt phase timings and a fixed
// step-size suggestion
type scriptedSolver struct {
	ta, ts, tu time.Duration
	suggestion float64
}

func (o *scriptedSolver) Solve(sys System, dt float64) bool      { return false }
func (o *scriptedSolver) AssembleTime() time.Duration            { return o.ta }
func (o *scriptedSolver) SolveTime() time.Duration               { return o.ts }
func (o *scriptedSolver) UpdateTime() time.Duration              { return o.tu }
func (o *scriptedSolver) SuggestTimeStepSize(dt float64) float64 { return o.suggestion }

func Test_control01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("control01. bisection down to success")

	c := NewClock(1000.0, 8.0)
	ctl := NewControl(c, Budget{DtMax: 250.0, DtMin: 1.0, MaxDivisions: 3}, false)
	m := &scriptedModel{c: c, script: []bool{false, false, false, true}}

	err := ctl.TimeIntegration(m, &scriptedSolver{})
	if err != nil {
		tst.Errorf("TimeIntegration must succeed: %v\n", err)
		return
	}
	chk.IntAssert(m.attempts, 4)
	chk.Array(tst, "dts", 1e-15, m.dts, []float64{8.0, 4.0, 2.0, 1.0})
	chk.Float64(tst, "dt", 1e-15, c.TimeStepSize(), 1.0)
	chk.IntAssert(ctl.LastDivisions(), 3)
}

func Test_control02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("control02. budget exhaustion")

	c := NewClock(1000.0, 8.0)
	ctl := NewControl(c, Budget{DtMax: 250.0, DtMin: 1.0, MaxDivisions: 3}, false)
	m := &scriptedModel{c: c} // empty script: every attempt fails

	err := ctl.TimeIntegration(m, &scriptedSolver{})
	if err == nil {
		tst.Errorf("TimeIntegration must fail when the budget is exhausted\n")
		return
	}
	chk.IntAssert(m.attempts, 4)
	chk.Array(tst, "dts", 1e-15, m.dts, []float64{8.0, 4.0, 2.0, 1.0})

	// the error reports the size of the last attempt, not a halved one
	chk.StrAssert(err.Error(), "Newton solver didn't converge after 3 time-step divisions. dt=1")
	chk.Float64(tst, "dt", 1e-15, c.TimeStepSize(), 1.0)

	// the floor aborts bisection even when the budget would allow more:
	// no attempt ever runs below the floor
	c = NewClock(1000.0, 8.0)
	ctl = NewControl(c, Budget{DtMax: 250.0, DtMin: 3.0, MaxDivisions: 10}, false)
	m = &scriptedModel{c: c}
	err = ctl.TimeIntegration(m, &scriptedSolver{})
	if err == nil {
		tst.Errorf("TimeIntegration must fail when bisection hits the floor\n")
		return
	}
	chk.IntAssert(m.attempts, 2)
	chk.Array(tst, "dts", 1e-15, m.dts, []float64{8.0, 4.0})
}

func Test_control03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("control03. zero divisions allowed")

	c := NewClock(1000.0, 5.0)
	ctl := NewControl(c, Budget{DtMax: 250.0, DtMin: 1.0, MaxDivisions: 0}, false)
	m := &scriptedModel{c: c}

	err := ctl.TimeIntegration(m, &scriptedSolver{})
	if err == nil {
		tst.Errorf("TimeIntegration must fail immediately with maxdivisions=0\n")
		return
	}
	chk.IntAssert(m.attempts, 1)
	chk.StrAssert(err.Error(), "Newton solver didn't converge after 0 time-step divisions. dt=5")
	chk.Float64(tst, "dt", 1e-15, c.TimeStepSize(), 5.0)
}

func Test_control04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("control04. pre-step clamp to the floor")

	// far from any boundary: the tentative size is raised to the floor
	c := NewClock(1000.0, 0.3)
	ctl := NewControl(c, Budget{DtMax: 20.0, DtMin: 1.0, MaxDivisions: 3}, false)
	m := &scriptedModel{c: c, script: []bool{true}}
	err := ctl.TimeIntegration(m, &scriptedSolver{})
	if err != nil {
		tst.Errorf("TimeIntegration must succeed: %v\n", err)
		return
	}
	chk.Array(tst, "dts", 1e-15, m.dts, []float64{1.0})

	// run about to finish: no clamp
	c = NewClock(0.25, 0.3)
	ctl = NewControl(c, Budget{DtMax: 20.0, DtMin: 1.0, MaxDivisions: 3}, false)
	m = &scriptedModel{c: c, script: []bool{true}}
	err = ctl.TimeIntegration(m, &scriptedSolver{})
	if err != nil {
		tst.Errorf("TimeIntegration must succeed: %v\n", err)
		return
	}
	chk.Array(tst, "dts", 1e-15, m.dts, []float64{0.3})

	// episode about to end: no clamp either
	c = NewClock(1000.0, 0.3)
	c.StartNextEpisode(0.2)
	ctl = NewControl(c, Budget{DtMax: 20.0, DtMin: 1.0, MaxDivisions: 3}, false)
	m = &scriptedModel{c: c, script: []bool{true}}
	err = ctl.TimeIntegration(m, &scriptedSolver{})
	if err != nil {
		tst.Errorf("TimeIntegration must succeed: %v\n", err)
		return
	}
	chk.Array(tst, "dts", 1e-15, m.dts, []float64{0.3})
}

func Test_control05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("control05. timing accumulation over attempts")

	c := NewClock(1000.0, 8.0)
	ctl := NewControl(c, Budget{DtMax: 250.0, DtMin: 1.0, MaxDivisions: 3}, false)
	nl := &scriptedSolver{ta: 3 * time.Millisecond, ts: 2 * time.Millisecond, tu: time.Millisecond}

	// two attempts (one failed), then one attempt
	m := &scriptedModel{c: c, script: []bool{false, true}}
	if err := ctl.TimeIntegration(m, nl); err != nil {
		tst.Errorf("TimeIntegration must succeed: %v\n", err)
		return
	}
	m = &scriptedModel{c: c, script: []bool{true}}
	if err := ctl.TimeIntegration(m, nl); err != nil {
		tst.Errorf("TimeIntegration must succeed: %v\n", err)
		return
	}

	// three attempts in total, failed one included
	cum := ctl.CumTiming()
	if cum.Assemble != 9*time.Millisecond {
		tst.Errorf("wrong cumulative assemble time: %v\n", cum.Assemble)
	}
	if cum.Solve != 6*time.Millisecond {
		tst.Errorf("wrong cumulative solve time: %v\n", cum.Solve)
	}
	if cum.Update != 3*time.Millisecond {
		tst.Errorf("wrong cumulative update time: %v\n", cum.Update)
	}
}

func Test_control06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("control06. next step size and restart cadence")

	c := NewClock(1000.0, 10.0)
	ctl := NewControl(c, Budget{DtMax: 20.0, DtMin: 1.0, MaxDivisions: 3}, false)

	// the ceiling wins over a large suggestion
	chk.Float64(tst, "next(50)", 1e-15, ctl.NextTimeStepSize(&scriptedSolver{suggestion: 50.0}), 20.0)
	chk.Float64(tst, "next(15)", 1e-15, ctl.NextTimeStepSize(&scriptedSolver{suggestion: 15.0}), 15.0)

	// restart files every 10 steps, but not at the very beginning
	if ctl.ShouldWriteRestartFile() {
		tst.Errorf("no restart file at step 0\n")
	}
	for i := 0; i < 10; i++ {
		c.Advance()
	}
	if !ctl.ShouldWriteRestartFile() {
		tst.Errorf("restart file expected at step 10\n")
	}
	c.Advance()
	if ctl.ShouldWriteRestartFile() {
		tst.Errorf("no restart file at step 11\n")
	}
	if !ctl.ShouldWriteOutput() {
		tst.Errorf("output expected after every step by default\n")
	}
}
