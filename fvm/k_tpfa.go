// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

// TpfaKernel computes the upwinded two-point Darcy flux of ordinary
// (matrix) connections. The first two legs of a stencil are the connected
// rows; every leg contributes a column through its transmissibility weight.
type TpfaKernel struct {

	// collaborators
	f    *Fields   // bound field views
	grav []float64 // per-cell gravity-depth coefficients

	// results, overwritten by each call to Compute
	Flux []float64   // [phase] flux; + into leg 0's residual, - into leg 1's
	JacP [][]float64 // [phase][leg] ∂flux/∂pressure of each leg
	JacS [][]float64 // [phase][leg] ∂flux/∂saturation unknown of each leg
	Kup  []int       // [phase] upwind leg

	// scratch
	dDensMean []float64
}

// NewTpfaKernel returns a two-point flux kernel
func NewTpfaKernel(f *Fields, grav []float64) (o *TpfaKernel) {
	o = new(TpfaKernel)
	o.f = f
	o.grav = grav
	o.Flux = make([]float64, NumPhases)
	o.JacP = make([][]float64, NumPhases)
	o.JacS = make([][]float64, NumPhases)
	o.Kup = make([]int, NumPhases)
	return
}

// resize adjusts the per-leg result slices to the stencil size
func (o *TpfaKernel) resize(ns int) {
	if len(o.dDensMean) >= ns {
		for p := 0; p < NumPhases; p++ {
			o.JacP[p] = o.JacP[p][:ns]
			o.JacS[p] = o.JacS[p][:ns]
		}
		o.dDensMean = o.dDensMean[:ns]
		return
	}
	for p := 0; p < NumPhases; p++ {
		o.JacP[p] = make([]float64, ns)
		o.JacS[p] = make([]float64, ns)
	}
	o.dDensMean = make([]float64, ns)
}

// Compute evaluates the flux of one connection. cells and weights define
// the stencil; dt is folded into flux and Jacobian so the results add
// directly into the backward-Euler residual.
func (o *TpfaKernel) Compute(cells []int, weights []float64, dt float64) {
	ns := len(cells)
	o.resize(ns)
	f := o.f
	for p := 0; p < NumPhases; p++ {

		// arithmetic density mean over the two connected elements
		densMean := 0.0
		for k := 0; k < 2; k++ {
			densMean += 0.5 * f.Dens[cells[k]][p]
		}
		for k := 0; k < ns; k++ {
			if k < 2 {
				o.dDensMean[k] = 0.5 * f.DdensDp[cells[k]][p]
			} else {
				o.dDensMean[k] = 0
			}
		}

		// potential difference accumulated over all legs
		potDif, sumWeightGrav := 0.0, 0.0
		for k, n := range cells {
			potDif += weights[k] * (f.Pres[n] + f.Dpres[n] - densMean*o.grav[n])
			sumWeightGrav += weights[k] * o.grav[n]
		}

		// hard upwind switch; potDif == 0 selects leg 0
		kup := 0
		if potDif < 0 {
			kup = 1
		}
		o.Kup[p] = kup
		up := cells[kup]
		mob, dMobDp, dMobDs := f.Mob[up][p], f.DmobDp[up][p], f.DmobDs[up][p]

		// flux and Jacobian
		o.Flux[p] = dt * mob * potDif
		for k := 0; k < ns; k++ {
			o.JacP[p][k] = dt * mob * (weights[k] - o.dDensMean[k]*sumWeightGrav)
			o.JacS[p][k] = 0
		}
		o.JacP[p][kup] += dt * dMobDp * potDif
		o.JacS[p][kup] = dt * dMobDs * potDif
	}
}
