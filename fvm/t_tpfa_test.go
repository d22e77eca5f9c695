// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// analytic state laws used by the flux tests; synthetic units keeping all
// magnitudes O(1)
var (
	tstR0  = []float64{1.0, 0.5}  // reference densities
	tstC   = []float64{0.1, 0.05} // compressibilities
	tstMu  = []float64{1.0, 2.0}  // viscosities
	tstKr0 = []float64{1.0, -1.0} // dkr/ds0: kr0 = s0, kr1 = 1 - s0
)

// fillState evaluates densities and mobilities from the analytic laws
func fillState(f *Fields, pres, s0 []float64) {
	for n := range pres {
		f.Pres[n] = pres[n]
		f.Dpres[n] = 0
		f.Sat[n][0] = s0[n]
		f.Sat[n][1] = 1.0 - s0[n]
		f.Dsat[n][0], f.Dsat[n][1] = 0, 0
		kr := []float64{s0[n], 1.0 - s0[n]}
		for ip := 0; ip < NumPhases; ip++ {
			ρ := tstR0[ip] + tstC[ip]*pres[n]
			f.Dens[n][ip] = ρ
			f.DdensDp[n][ip] = tstC[ip]
			f.Visc[n][ip] = tstMu[ip]
			f.DviscDp[n][ip] = 0
			f.Mob[n][ip] = ρ * kr[ip] / tstMu[ip]
			f.DmobDp[n][ip] = tstC[ip] * kr[ip] / tstMu[ip]
			f.DmobDs[n][ip] = ρ * tstKr0[ip] / tstMu[ip]
		}
	}
}

func newFields(ncells int) *Fields {
	sto := NewStore(ncells)
	RegisterFields(sto)
	f := new(Fields)
	f.Bind(sto)
	return f
}

func Test_tpfa01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tpfa01. flux and upwind selection")

	f := newFields(2)
	grav := []float64{0, 0}
	kn := NewTpfaKernel(f, grav)
	cells := []int{0, 1}
	weights := []float64{2.0, -2.0}
	dt := 0.5

	// downhill from cell 0 to cell 1
	fillState(f, []float64{1.2, 0.7}, []float64{0.8, 0.6})
	kn.Compute(cells, weights, dt)
	potDif := 2.0 * (1.2 - 0.7)
	for p := 0; p < NumPhases; p++ {
		if kn.Kup[p] != 0 {
			tst.Errorf("upwind leg is incorrect: %d != 0\n", kn.Kup[p])
			return
		}
		chk.Float64(tst, "flux", 1e-14, kn.Flux[p], dt*f.Mob[0][p]*potDif)
	}

	// potDif == 0 must select leg 0 deterministically
	fillState(f, []float64{1.0, 1.0}, []float64{0.8, 0.6})
	kn.Compute(cells, weights, dt)
	for p := 0; p < NumPhases; p++ {
		if kn.Kup[p] != 0 {
			tst.Errorf("tie must resolve toward leg 0: kup=%d\n", kn.Kup[p])
			return
		}
		chk.Float64(tst, "flux(tie)", 1e-17, kn.Flux[p], 0)
		// with zero potential difference the pressure Jacobian still
		// carries the weight term with leg-0 mobility
		chk.Float64(tst, "jacP0(tie)", 1e-14, kn.JacP[p][0], dt*f.Mob[0][p]*weights[0])
	}

	// reversed gradient upwinds from leg 1
	fillState(f, []float64{0.7, 1.2}, []float64{0.8, 0.6})
	kn.Compute(cells, weights, dt)
	for p := 0; p < NumPhases; p++ {
		if kn.Kup[p] != 1 {
			tst.Errorf("upwind leg is incorrect: %d != 1\n", kn.Kup[p])
			return
		}
	}
}

func Test_tpfa02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tpfa02. Jacobian vs finite differences")

	f := newFields(2)
	grav := []float64{0.3, 0.5}
	kn := NewTpfaKernel(f, grav)
	cells := []int{0, 1}
	weights := []float64{2.0, -2.0}
	dt := 0.5
	pres := []float64{1.2, 0.7}
	s0 := []float64{0.8, 0.6}

	fillState(f, pres, s0)
	kn.Compute(cells, weights, dt)

	for p := 0; p < NumPhases; p++ {
		ip := p
		for k := 0; k < 2; k++ {
			kk := k
			dana := kn.JacP[ip][kk]
			chk.DerivScaSca(tst, "dflux/dpres", 1e-8, dana, pres[kk], 1e-5, chk.Verbose, func(x float64) float64 {
				pp := []float64{pres[0], pres[1]}
				pp[kk] = x
				fillState(f, pp, s0)
				kn.Compute(cells, weights, dt)
				return kn.Flux[ip]
			})
			fillState(f, pres, s0)
			kn.Compute(cells, weights, dt)

			dana = kn.JacS[ip][kk]
			chk.DerivScaSca(tst, "dflux/dsat", 1e-8, dana, s0[kk], 1e-5, chk.Verbose, func(x float64) float64 {
				ss := []float64{s0[0], s0[1]}
				ss[kk] = x
				fillState(f, pres, ss)
				kn.Compute(cells, weights, dt)
				return kn.Flux[ip]
			})
			fillState(f, pres, s0)
			kn.Compute(cells, weights, dt)
		}
	}
}
