// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gofvm/frac"
	"github.com/cpmech/gofvm/msh"
	"github.com/cpmech/gosl/chk"
)

// AperRule selects how the cubic aperture term is integrated over the step
type AperRule int

// available rules
const (
	AperRuleFE    AperRule = iota // forward Euler: previous aperture only
	AperRuleExact                 // exact integration of the cubic over the step
	AperRuleBE                    // backward Euler: current aperture only
)

// AperRuleByName parses an aperture-rule name from the input file
func AperRuleByName(name string) AperRule {
	switch name {
	case "fe":
		return AperRuleFE
	case "exact":
		return AperRuleExact
	case "be":
		return AperRuleBE
	}
	chk.Panic("unknown aperture integration rule %q; options are \"fe\", \"exact\" and \"be\"", name)
	return AperRuleFE
}

// aperTerms computes the aperture term α and its derivative w.r.t. the
// current aperture for each rule
var aperTerms = []func(a0, a float64) (alp, dalp float64){
	AperRuleFE: func(a0, a float64) (float64, float64) {
		return a0 * a0 * a0, 0
	},
	AperRuleExact: func(a0, a float64) (float64, float64) {
		alp := 0.25 * (a0*a0*a0 + a0*a0*a + a0*a*a + a*a*a)
		dalp := 0.25 * (a0*a0 + 2.0*a0*a + 3.0*a*a)
		return alp, dalp
	},
	AperRuleBE: func(a0, a float64) (float64, float64) {
		return a * a * a, 3.0 * a * a
	},
}

// TipOverride carries the cross-subsystem data needed by the tip-region
// asymptote: the tip-element set derived from the trailing faces, the
// propagation state, the asymptote parameters and the total elapsed time
type TipOverride struct {
	Elems map[int]bool // tip-element set
	St    *frac.State  // fracture-propagation state
	Asym  *frac.Asym   // KGD asymptote parameters
	T     float64      // total elapsed time
}

// JunctionKernel computes fluxes across fracture-connector stencils using
// aperture-cubed permeability and a blended harmonic/arithmetic pair
// weight. Every unordered leg pair produces one flux with pressure,
// saturation and aperture Jacobians; the pair touching the fracture tip is
// overridden by the asymptotic solution when the propagation regime calls
// for it.
type JunctionKernel struct {

	// collaborators
	f    *Fields
	grav []float64
	m    *msh.Mesh

	// configuration
	Rule AperRule // aperture integration rule
	C    float64  // harmonic/arithmetic blending coefficient ∈ [0,1]

	// tip override; nil means inactive this step
	tip *TipOverride

	// per-pair results, overwritten for each emitted pair. Row r ∈ {0,1}
	// is the residual row of pair leg r; columns run over stencil legs.
	K0, K1  int  // stencil leg indices of the current pair
	TipPair bool // whether the override replaced the standard flux
	Flux    [NumPhases][2]float64
	JacP    [NumPhases][2][]float64
	JacS    [NumPhases][2][]float64
	JacA    [NumPhases][2][]float64

	// scratch per junction
	alp  []float64
	dalp []float64
	sumW float64
}

// NewJunctionKernel returns a fracture-junction flux kernel
func NewJunctionKernel(f *Fields, grav []float64, m *msh.Mesh, rule AperRule, c float64) (o *JunctionKernel) {
	if c < 0 || c > 1 {
		chk.Panic("mean permeability coefficient must be in [0,1]. c=%g is invalid", c)
	}
	o = new(JunctionKernel)
	o.f = f
	o.grav = grav
	o.m = m
	o.Rule = rule
	o.C = c
	return
}

// SetTipOverride activates (or, with nil, deactivates) the tip override
func (o *JunctionKernel) SetTipOverride(tip *TipOverride) { o.tip = tip }

// resize adjusts per-leg slices to the stencil size
func (o *JunctionKernel) resize(ns int) {
	if len(o.alp) < ns {
		o.alp = make([]float64, ns)
		o.dalp = make([]float64, ns)
		for p := 0; p < NumPhases; p++ {
			for r := 0; r < 2; r++ {
				o.JacP[p][r] = make([]float64, ns)
				o.JacS[p][r] = make([]float64, ns)
				o.JacA[p][r] = make([]float64, ns)
			}
		}
		return
	}
	o.alp = o.alp[:ns]
	o.dalp = o.dalp[:ns]
	for p := 0; p < NumPhases; p++ {
		for r := 0; r < 2; r++ {
			o.JacP[p][r] = o.JacP[p][r][:ns]
			o.JacS[p][r] = o.JacS[p][r][:ns]
			o.JacA[p][r] = o.JacA[p][r][:ns]
		}
	}
}

// Compute evaluates one junction. emit is called once per unordered leg
// pair with the kernel's result fields holding that pair's contributions.
func (o *JunctionKernel) Compute(jct *msh.Junction, dt float64, emit func()) {
	ns := len(jct.Cells)
	o.resize(ns)

	// aperture terms and junction-wide sum of weights
	o.sumW = 0
	for k, n := range jct.Cells {
		o.alp[k], o.dalp[k] = aperTerms[o.Rule](o.f.Aper0[n], o.f.Aper[n])
		o.sumW += o.alp[k] * jct.Weights[k]
	}

	// all unordered pairs
	for k0 := 0; k0 < ns-1; k0++ {
		for k1 := k0 + 1; k1 < ns; k1++ {
			o.pair(jct, k0, k1, dt)
			emit()
		}
	}
}

// pair computes the flux and Jacobians of pair (k0,k1)
func (o *JunctionKernel) pair(jct *msh.Junction, k0, k1 int, dt float64) {
	f := o.f
	n0, n1 := jct.Cells[k0], jct.Cells[k1]
	o.K0, o.K1 = k0, k1
	ns := len(jct.Cells)

	// zero results
	for p := 0; p < NumPhases; p++ {
		for r := 0; r < 2; r++ {
			o.Flux[p][r] = 0
			for k := 0; k < ns; k++ {
				o.JacP[p][r][k] = 0
				o.JacS[p][r][k] = 0
				o.JacA[p][r][k] = 0
			}
		}
	}

	// blended harmonic/arithmetic weight and its aperture derivatives
	w0a0 := jct.Weights[k0] * o.alp[k0]
	w1a1 := jct.Weights[k1] * o.alp[k1]
	harm := w0a0 * w1a1 / o.sumW
	weight := o.C*harm + (1.0-o.C)*0.25*(w0a0+w1a1)
	dHarm0 := (1.0/o.alp[k0] - jct.Weights[k0]/o.sumW) * harm * o.dalp[k0]
	dHarm1 := (1.0/o.alp[k1] - jct.Weights[k1]/o.sumW) * harm * o.dalp[k1]
	dW0 := o.C*dHarm0 + 0.25*(1.0-o.C)*jct.Weights[k0]*o.dalp[k0]
	dW1 := o.C*dHarm1 + 0.25*(1.0-o.C)*jct.Weights[k1]*o.dalp[k1]

	// tip detection: exactly one pair leg inside the tip-element set
	o.TipPair = false
	tipLeg := -1
	if o.tip != nil {
		t0, t1 := o.tip.Elems[n0], o.tip.Elems[n1]
		if t0 != t1 {
			o.TipPair = true
			if t0 {
				tipLeg = 0
			} else {
				tipLeg = 1
			}
		}
	}

	if o.TipPair {
		o.tipFlux(jct, k0, k1, tipLeg, dt)
		return
	}

	gdif := o.grav[n0] - o.grav[n1]
	for p := 0; p < NumPhases; p++ {

		// density mean and potential difference of the pair
		densMean := 0.5 * (f.Dens[n0][p] + f.Dens[n1][p])
		dDM0 := 0.5 * f.DdensDp[n0][p]
		dDM1 := 0.5 * f.DdensDp[n1][p]
		potDif := (f.Pres[n0] + f.Dpres[n0]) - (f.Pres[n1] + f.Dpres[n1]) - densMean*gdif

		// upwind mobility; potDif == 0 selects leg 0
		kup := k0
		if potDif < 0 {
			kup = k1
		}
		up := jct.Cells[kup]
		mob, dMobDp, dMobDs := f.Mob[up][p], f.DmobDp[up][p], f.DmobDs[up][p]

		// antisymmetric flux
		fl := dt * mob * weight * potDif
		o.Flux[p][0] = fl
		o.Flux[p][1] = -fl

		// pressure Jacobian
		d0 := dt * mob * weight * (1.0 - dDM0*gdif)
		d1 := dt * mob * weight * (-1.0 - dDM1*gdif)
		if kup == k0 {
			d0 += dt * dMobDp * weight * potDif
		} else {
			d1 += dt * dMobDp * weight * potDif
		}
		o.JacP[p][0][k0], o.JacP[p][0][k1] = d0, d1
		o.JacP[p][1][k0], o.JacP[p][1][k1] = -d0, -d1

		// saturation Jacobian on the upwind leg
		s := dt * dMobDs * weight * potDif
		o.JacS[p][0][kup] = s
		o.JacS[p][1][kup] = -s

		// aperture Jacobian through the blended weight
		a0 := dt * mob * dW0 * potDif
		a1 := dt * mob * dW1 * potDif
		o.JacA[p][0][k0], o.JacA[p][0][k1] = a0, a1
		o.JacA[p][1][k0], o.JacA[p][1][k1] = -a0, -a1
	}
}

// tipFlux replaces the standard pair flux by the asymptotic tip solution:
// a directional flux into the channel element with a Jacobian through the
// mobility's pressure dependence only. The mobility is taken from the
// upwind leg of the standard potential difference and the Jacobian entry
// lands in the upwind pressure column. The dropped aperture and weight
// paths are a deliberate simplification of the coupling in this regime.
func (o *JunctionKernel) tipFlux(jct *msh.Junction, k0, k1, tipLeg int, dt float64) {
	f := o.f
	legs := [2]int{k0, k1}
	n0, n1 := jct.Cells[k0], jct.Cells[k1]
	tipCell := jct.Cells[legs[tipLeg]]
	chanRow := 1 - tipLeg
	gdif := o.grav[n0] - o.grav[n1]

	gap := o.tip.St.AverageGap(o.m, tipCell)
	gradP := o.tip.Asym.GradP(o.tip.T, gap)
	geom := (jct.EdgeLen / 12.0) * gap * gap * gap * gradP

	for p := 0; p < NumPhases; p++ {
		densMean := 0.5 * (f.Dens[n0][p] + f.Dens[n1][p])
		potDif := (f.Pres[n0] + f.Dpres[n0]) - (f.Pres[n1] + f.Dpres[n1]) - densMean*gdif
		kup := k0
		if potDif < 0 {
			kup = k1
		}
		up := jct.Cells[kup]
		mob, dMobDp := f.Mob[up][p], f.DmobDp[up][p]
		o.Flux[p][chanRow] = dt * mob * geom
		o.JacP[p][chanRow][kup] = dt * dMobDp * geom
	}
}
