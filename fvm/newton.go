// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/blattms/ewoms/inp"
)

// System is the view of the spatial discretization seen by the Newton
// solver: residual and Jacobian at the current trial solution, and the
// application of an iterative update to the trial solution.
type System interface {
	Ndofs() int                                      // number of degrees of freedom
	Assemble(F la.Vector, K *la.Triplet, dt float64) // residual and Jacobian at the trial solution
	UpdateTrial(dY la.Vector)                        // apply iterative update to the trial solution
}

// Newton implements the Newton-Raphson method with residual-based
// convergence checks and optional divergence control. One value is reused
// across all steps of a run; workspaces grow on first use.
type Newton struct {

	// constants
	conf   inp.NewtonData // iteration limits and tolerances
	lsname string         // linear solver name

	// workspace
	fb  la.Vector       // residual vector
	dy  la.Vector       // iterative update
	rhs la.Vector       // negated residual handed to the linear solver
	kb  *la.Triplet     // Jacobian
	lis la.SparseSolver // linear solver
	nds int             // number of dofs the workspace is sized for

	// results of the last Solve
	it        int           // iterations spent
	tassemble time.Duration // wall time spent in Assemble
	tsolve    time.Duration // wall time spent in the linear solver
	tupdate   time.Duration // wall time spent in UpdateTrial
}

// NewNewton creates a Newton-Raphson solver
func NewNewton(conf inp.NewtonData, lin inp.LinSolData) (o *Newton) {
	return &Newton{conf: conf, lsname: lin.Name}
}

// Solve attempts to solve one time step of size dt. It returns whether
// the iterations converged; it never panics on non-convergence since the
// caller may retry with a smaller step. Phase timings are reset at entry
// and are valid after return regardless of the outcome.
func (o *Newton) Solve(sys System, dt float64) (converged bool) {

	// reset per-attempt results
	o.it = 0
	o.tassemble = 0
	o.tsolve = 0
	o.tupdate = 0

	// allocate workspace
	nds := sys.Ndofs()
	if nds != o.nds {
		o.fb = la.NewVector(nds)
		o.dy = la.NewVector(nds)
		o.rhs = la.NewVector(nds)
		o.kb = new(la.Triplet)
		o.kb.Init(nds, nds, 6*nds) // three-cell stencil, two dofs per cell
		if o.lis != nil {
			o.lis.Free()
		}
		o.lis = nil
		o.nds = nds
	}

	// iterations
	var fnorm, fnorm0, largFb float64
	ndvg := 0
	for o.it = 0; o.it < o.conf.NmaxIt; o.it++ {

		// assemble residual and Jacobian
		t0 := time.Now()
		sys.Assemble(o.fb, o.kb, dt)
		o.tassemble += time.Since(t0)

		// check convergence on the residual norm
		fnorm = o.fbNorm()
		if o.it == 0 {
			fnorm0 = fnorm
			largFb = fnorm
		}
		if o.conf.ShowR {
			io.Pf("    it=%2d  ‖fb‖=%13.6e\n", o.it, fnorm)
		}
		if fnorm < o.conf.Atol+o.conf.Rtol*fnorm0 {
			return true
		}

		// divergence control: growing residuals are tolerated only a
		// few times in a row
		if o.conf.DvgCtrl {
			if fnorm > largFb {
				ndvg++
				if ndvg > o.conf.NdvgMax {
					return false
				}
			} else {
				largFb = fnorm
				ndvg = 0
			}
		}

		// solve linear system: Kb * dy = -fb
		t0 = time.Now()
		for i := 0; i < nds; i++ {
			o.rhs[i] = -o.fb[i]
		}
		if o.lis == nil {
			o.lis = la.NewSparseSolver(o.lsname)
			o.lis.Init(o.kb, nil)
		}
		o.lis.Fact()
		o.lis.Solve(o.dy, o.rhs)
		o.tsolve += time.Since(t0)

		// reject non-finite updates immediately
		for i := 0; i < nds; i++ {
			if math.IsNaN(o.dy[i]) || math.IsInf(o.dy[i], 0) {
				return false
			}
		}

		// update trial solution
		t0 = time.Now()
		sys.UpdateTrial(o.dy)
		o.tupdate += time.Since(t0)
	}
	return false
}

// It returns the number of iterations spent by the last Solve
func (o *Newton) It() int { return o.it }

// AssembleTime returns the wall time the last Solve spent linearizing
func (o *Newton) AssembleTime() time.Duration { return o.tassemble }

// SolveTime returns the wall time the last Solve spent in the linear solver
func (o *Newton) SolveTime() time.Duration { return o.tsolve }

// UpdateTime returns the wall time the last Solve spent applying updates
func (o *Newton) UpdateTime() time.Duration { return o.tupdate }

// SuggestTimeStepSize proposes a size for the next time step based on how
// hard the last converged step was: above the target iteration count the
// step shrinks proportionally, below it the step grows, damped by 1.2 so
// growth is slower than shrinkage.
func (o *Newton) SuggestTimeStepSize(dt float64) float64 {
	n := float64(o.it)
	target := float64(o.conf.TargetIt)
	if n > target {
		return dt / (1.0 + (n-target)/target)
	}
	return dt * (1.0 + (target-n)/target/1.2)
}

// Free releases the linear solver memory
func (o *Newton) Free() {
	if o.lis != nil {
		o.lis.Free()
	}
}

// fbNorm returns the Euclidean norm of the residual vector
func (o *Newton) fbNorm() (nrm float64) {
	for _, v := range o.fb {
		nrm += v * v
	}
	return math.Sqrt(nrm)
}
