// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gofvm/frac"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"
)

// Solver is the implicit driver: backward-Euler time stepping with Newton
// iterations, convergence on the largest residual component and on the
// normalized RMS of the increment, and divergence control by time-step
// halving. The domain itself never retries; rejection by the validator is
// handled here.
type Solver struct {
	Dom *Domain

	// scratch for the dense solve
	dense *mat.Dense
}

// NewSolver returns a solver operating on dom
func NewSolver(dom *Domain) *Solver {
	return &Solver{Dom: dom}
}

// Run advances the solution up to tf using (at most) time steps of size Δt
func (o *Solver) Run(tf, Δt float64) (err error) {
	d := o.Dom
	sv := &d.Sim.Solver
	md := 1.0
	ndiverg := 0
	for d.T < tf-1e-14 {

		// current (possibly reduced) time step
		dt := Δt * md
		if dt > tf-d.T {
			dt = tf - d.T
		}
		if dt < sv.DtMin {
			return chk.Err("time step %g fell below minimum %g at t=%g", dt, sv.DtMin, d.T)
		}

		// step setup: ghosts refreshed, views re-resolved, old fields
		// snapshot, tip regime decided
		d.ResetDeltas()
		d.BindViews()
		d.Peers.SyncGhosts(d.Sto)
		d.UpdateState()
		d.BackupFields()
		d.SetTipOverride(o.tipData(d.T + dt))

		// nonlinear iterations
		diverging, ok := o.runIterations(d.T+dt, dt)
		if !ok {
			return chk.Err("nonlinear iterations failed at t=%g", d.T+dt)
		}
		if sv.DvgCtrl && diverging {
			if d.Sim.Data.ShowR {
				io.Pfred(". . . iterations diverging (%2d) . . .\n", ndiverg+1)
			}
			md *= 0.5
			ndiverg++
			if ndiverg > sv.NdvgMax {
				return chk.Err("max number of continued divergences reached at t=%g", d.T)
			}
			continue
		}
		md = 1.0
		ndiverg = 0

		// accept step
		d.CommitStep()
		d.T += dt
	}
	return
}

// tipData builds this step's tip-override data; nil when the propagation
// regime does not call for the asymptote
func (o *Solver) tipData(t float64) *TipOverride {
	d := o.Dom
	if d.Frk == nil {
		return nil
	}
	tip := &d.Sim.Flow.Tip
	injPhase := 0
	if len(d.Sim.Sources) > 0 {
		injPhase = d.Sim.Sources[0].Phase
	}
	visc := d.Flu.Phases[injPhase].Mu0
	if d.Frk.TipLoc <= tip.TipDistFactor*d.Frk.MeshSize || visc < tip.ViscMin {
		return nil
	}
	return &TipOverride{
		Elems: d.Frk.TipElements(d.Msh),
		St:    d.Frk,
		Asym:  frac.NewAsym(d.Sld.Bulk, d.Sld.Shear, visc, d.Sim.InjRate(), tip.RateFactor, tip.RateScale, tip.GammaM0),
		T:     t,
	}
}

// runIterations solves the nonlinear problem of one time step
func (o *Solver) runIterations(t, dt float64) (diverging, ok bool) {
	d := o.Dom
	sv := &d.Sim.Solver
	var it int
	var largFb, largFb0, Lδu float64
	var prevFb, prevLδu float64

	// message
	if d.Sim.Data.ShowR {
		io.Pf("\n%13s%4s%23s%23s\n", "t", "it", "largFb", "Lδu")
		defer func() {
			io.Pf("%13.6e%4d%23.15e%23.15e\n", t, it, largFb, Lδu)
		}()
	}

	// iterations
	for it = 0; it < sv.NmaxIt; it++ {

		// assemble fb (negative of residual) and Jacobian
		d.AssembleSystem(dt)

		// debug dump
		if d.Sim.Data.WriteSmat {
			d.WriteSystem()
			chk.Panic("simulation stopped after writing debug matrix files to %q", d.Sim.DirOut)
		}

		// check convergence on fb
		largFb = la.VecLargest(d.Fb, 1)
		if it == 0 {
			largFb0 = largFb
		} else {
			if largFb < sv.FbTol*largFb0 { // converged on fb
				break
			}
			if largFb < sv.FbMin { // converged with smallest value of fb
				break
			}
		}

		// check divergence on fb
		if it > 1 && sv.DvgCtrl && largFb > prevFb {
			diverging = true
			break
		}
		prevFb = largFb

		// solve for wb := δy
		if err := o.solve(); err != nil {
			io.Pfred("linear solve failed: %v\n", err)
			return
		}

		// validate against physical bounds; a rejection is reported
		// upward as a diverging step so the driver reduces Δt
		if !d.CheckSolution(d.Wb, 1.0) {
			diverging = true
			break
		}

		// update primary unknowns and state
		d.ApplyIncrement(d.Wb)
		d.UpdateState()

		// compute RMS norm of δy and check convergence on δy
		for n := 0; n < d.Sto.Ncells(); n++ {
			base := n * NumDof
			d.ys[base+ColDpres] = d.F.Pres[n] + d.F.Dpres[n]
			d.ys[base+ColDsat] = d.F.Sat[n][0] + d.F.Dsat[n][0]
		}
		Lδu = la.VecRmsErr(d.Wb, sv.Atol, sv.Rtol, d.ys)

		// message
		if d.Sim.Data.ShowR {
			io.Pf("%13.6e%4d%23.15e%23.15e\n", t, it, largFb, Lδu)
		}

		// stop if converged on δy
		if Lδu < 1.0 {
			break
		}

		// check divergence on Lδu
		if it > 1 && sv.DvgCtrl && Lδu > prevLδu {
			diverging = true
			break
		}
		prevLδu = Lδu
	}

	// check if iterations diverged
	if it == sv.NmaxIt {
		io.Pfred("max number of iterations reached: it = %d\n", it)
		return
	}

	// success
	ok = true
	return
}

// solve factorizes the assembled Jacobian and solves Kb・δy = fb
func (o *Solver) solve() (err error) {
	d := o.Dom
	KK := d.Kb.ToMatrix(nil).ToDense()
	n := d.Ny
	if o.dense == nil {
		o.dense = mat.NewDense(n, n, nil)
	} else if r, _ := o.dense.Dims(); r != n {
		o.dense = mat.NewDense(n, n, nil)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			o.dense.Set(i, j, KK[i][j])
		}
	}
	var x mat.VecDense
	err = x.SolveVec(o.dense, mat.NewVecDense(n, d.Fb))
	if err != nil {
		return
	}
	copy(d.Wb, x.RawVector().Data)
	return
}
