// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/blattms/ewoms/grid"
	"github.com/blattms/ewoms/inp"
	"github.com/blattms/ewoms/out"
)

// Simulator owns a whole run: grid, scenario, discretization, nonlinear
// solver, controller and clock, plus the output machinery
type Simulator struct {

	// essential
	Sim  *inp.Simulation // input data
	G    *grid.Grid      // the grid
	C    *Clock          // simulation clock
	Prob Problem         // scenario
	M    *TwoPhase       // discretization
	NL   *Newton         // nonlinear solver
	Ctl  *Control        // time-integration controller
	Sum  *Summary        // per-step data of the run

	// control
	Verbose bool // print per-step progress

	// output bookkeeping
	outIdx  int     // index of the next output snapshot
	lastOut float64 // time of the last output
}

// NewSimulator builds a run from the input data
func NewSimulator(sim *inp.Simulation, verbose bool) (o *Simulator, err error) {

	// extrusions default to unit length
	ly, lz := sim.Grid.Ly, sim.Grid.Lz
	if ly == 0 {
		ly = 1.0
	}
	if lz == 0 {
		lz = 1.0
	}

	o = &Simulator{Sim: sim, Verbose: verbose}
	o.G = grid.New(sim.Grid.Lx, ly, lz, sim.Grid.Ncells)
	o.C = NewClock(sim.Time.Tf, sim.Time.Dt)
	o.Prob, err = NewProblem(sim, o.G)
	if err != nil {
		return nil, err
	}
	o.M = NewTwoPhase(o.G, o.Prob, o.C)
	o.NL = NewNewton(sim.Newton, sim.LinSol)
	budget := Budget{
		DtMax:        sim.Time.DtMax,
		DtMin:        sim.Time.DtMin,
		MaxDivisions: sim.Time.MaxDivisions,
	}
	o.Ctl = NewControl(o.C, budget, verbose)
	o.Sum = new(Summary)
	return
}

// Resume restores a previous run from a restart file. Must be called
// before Run.
func (o *Simulator) Resume(fn string) (err error) {
	st, err := out.LoadRestart(fn, o.Sim.EncType)
	if err != nil {
		return
	}
	o.M.SetDofValues(st.Y)
	o.C.Restore(st.Time, st.Dt, st.StepIndex, st.EpisodeIndex, st.EpisodeStart, st.EpisodeLength)
	o.lastOut = st.Time
	o.Prob.BeginEpisode(o.C)
	return
}

// Run executes the whole simulation: episodes, time steps, output and
// restart files, and the final timing receipt
func (o *Simulator) Run() (err error) {

	defer o.NL.Free()
	startTime := time.Now()

	// first episode; without a schedule one episode spans the whole run
	if o.C.EpisodeIndex() < 0 {
		o.C.StartNextEpisode(o.episodeLength(0))
		o.Prob.BeginEpisode(o.C)

		// initial condition snapshot
		o.writeOutput()
	}

	// time loop
	for !o.C.Finished() {

		// never step past the end of the episode or the run
		dt := o.C.TimeStepSize()
		dt = utl.Min(dt, o.C.EpisodeEnd()-o.C.Time())
		dt = utl.Min(dt, o.C.FinalTime()-o.C.Time())
		o.C.SetTimeStepSize(dt)

		// one time step
		o.Prob.BeginTimeStep(o.C)
		if err = o.Ctl.TimeIntegration(o.M, o.NL); err != nil {
			return
		}
		o.M.AdvanceTimeLevel()
		o.C.Advance()
		o.Prob.EndTimeStep(o.C)
		o.Prob.PostTimeStep(o.M, o.C)

		if o.Verbose {
			io.Pf("step %4d: t=%12.6g dt=%12.6g it=%2d\n",
				o.C.TimeStepIndex(), o.C.Time(), o.C.TimeStepSize(), o.NL.It())
		}
		o.Sum.StepSizes = append(o.Sum.StepSizes, o.C.TimeStepSize())
		o.Sum.Divisions = append(o.Sum.Divisions, o.Ctl.LastDivisions())
		o.Sum.Iterations = append(o.Sum.Iterations, o.NL.It())

		// output and restart files
		if o.Prob.ShouldWriteOutput(o.C, o.Ctl.ShouldWriteOutput() && o.dueForOutput()) {
			o.writeOutput()
		}
		if o.Prob.ShouldWriteRestartFile(o.C, o.Ctl.ShouldWriteRestartFile()) {
			if err = o.writeRestart(); err != nil {
				return
			}
		}

		// size of the next step
		o.C.SetTimeStepSize(o.Ctl.NextTimeStepSize(o.NL))

		// episode rollover
		if o.C.EpisodeIsOver() && !o.C.Finished() {
			o.Prob.EndEpisode(o.C)
			o.C.StartNextEpisode(o.episodeLength(o.C.EpisodeIndex() + 1))
			o.Prob.BeginEpisode(o.C)
		}
	}

	// summary and timing receipt
	if err = o.Sum.Save(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType); err != nil {
		return
	}
	o.receipt(time.Since(startTime))
	return
}

// episodeLength returns the length of episode idx from the schedule;
// episodes beyond the schedule extend to the end of the run
func (o *Simulator) episodeLength(idx int) float64 {
	if idx < len(o.Sim.Schedule) {
		return o.Sim.Schedule[idx].Tlen
	}
	rest := o.C.FinalTime() - o.C.Time()
	if rest < 1e-14 {
		rest = o.C.FinalTime()
	}
	return rest
}

// dueForOutput applies the output cadence from the input; dtout == 0
// means output every step
func (o *Simulator) dueForOutput() bool {
	if o.Sim.Time.DtOut <= 0 {
		return true
	}
	return o.C.Time() >= o.lastOut+o.Sim.Time.DtOut-1e-10*o.C.FinalTime()
}

// writeOutput writes one snapshot of the current solution
func (o *Simulator) writeOutput() {
	o.Sum.OutTimes = append(o.Sum.OutTimes, o.C.Time())
	o.lastOut = o.C.Time()
	if !o.Sim.Output.Vtk && !o.Sim.Output.Plot {
		o.outIdx++
		return
	}
	fields := map[string][]float64{
		"pl": make([]float64, o.G.Ncells),
		"pg": make([]float64, o.G.Ncells),
		"sl": make([]float64, o.G.Ncells),
	}
	for i := 0; i < o.G.Ncells; i++ {
		fields["pl"][i] = o.M.Pl(i)
		fields["pg"][i] = o.M.Pg(i)
		fields["sl"][i] = o.M.Sl(i)
	}
	if o.Sim.Output.Vtk {
		out.WriteVTK(o.Sim.DirOut, o.Sim.Key, o.outIdx, o.C.Time(), o.G, fields)
	}
	if o.Sim.Output.Plot {
		if _, err := out.PlotProfiles(o.Sim.DirOut, o.Sim.Key, o.outIdx, o.C.Time(), o.G, fields); err != nil {
			io.PfRed("cannot plot profiles: %v\n", err)
		}
	}
	o.outIdx++
}

// writeRestart writes a restart file at the current step
func (o *Simulator) writeRestart() (err error) {
	st := &out.State{
		Time:          o.C.Time(),
		Dt:            o.C.TimeStepSize(),
		StepIndex:     o.C.TimeStepIndex(),
		EpisodeIndex:  o.C.EpisodeIndex(),
		EpisodeStart:  o.C.EpisodeStart(),
		EpisodeLength: o.C.EpisodeEnd() - o.C.EpisodeStart(),
		Y:             o.M.DofValues(),
	}
	_, err = out.SaveRestart(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, st)
	return
}

// receipt prints how the wall time of the run was spent
func (o *Simulator) receipt(elapsed time.Duration) {
	cum := o.Ctl.CumTiming()
	io.Pf("\nSimulation of %q finished\n", o.Sim.Key)
	io.Pf("  wall time              = %v\n", elapsed)
	io.Pf("  linearization time     = %v\n", cum.Assemble)
	io.Pf("  linear solve time      = %v\n", cum.Solve)
	io.Pf("  iterative update time  = %v\n", cum.Update)
	io.Pf("  time steps             = %d\n", o.C.TimeStepIndex())
}
