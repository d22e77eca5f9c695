// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

// AccumCompute computes the backward-Euler mass accumulation term of one
// cell and its Jacobian block. Pure function: the caller owns the decision
// of adding the block into the global system (owned cells only).
//
// For each phase p:
//   accum[p] = vol・(poroNew・dens[p]・satNew[p] - poroOld・densOld[p]・satOld[p])
// with poroNew = poroRef・pvMult and satNew = sat + dSat. The saturation
// column carries the sum-to-one closure: phase 0 holds the independent
// unknown, phase 1 receives the -1 chain factor.
//
// Output: accum [NumPhases] and jac [NumPhases][NumDof].
func AccumCompute(vol, poroOld, poroRef, pvMult, dPvMultDp float64,
	dens, dDensDp, densOld, sat, dSat []float64,
	accum []float64, jac [][]float64) {

	poroNew := poroRef * pvMult
	for p := 0; p < NumPhases; p++ {
		satNew := sat[p] + dSat[p]
		accum[p] = vol * (poroNew*dens[p]*satNew - poroOld*densOld[p]*sat[p])
		jac[p][ColDpres] = vol * (poroRef*dPvMultDp*dens[p]*satNew + poroNew*dDensDp[p]*satNew)
		if p == 0 {
			jac[p][ColDsat] = vol * poroNew * dens[p]
		} else {
			jac[p][ColDsat] = -vol * poroNew * dens[p]
		}
	}
}
