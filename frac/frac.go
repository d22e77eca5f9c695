// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package frac holds the fracture-propagation state seen by the flow
// assembly: converged tip location, tip topology sets and the
// viscosity-dominated (KGD) tip asymptote
package frac

import (
	"math"

	"github.com/cpmech/gofvm/msh"
	"github.com/cpmech/gosl/chk"
)

// State holds converged fracture-propagation data for the current time step.
// It is refreshed by the (external) propagation solver after each converged
// mechanics solve and is read-only during flow assembly.
type State struct {
	TipLoc        float64 // converged tip location past the reference point
	MeshSize      float64 // characteristic mesh length
	TrailingFaces []int   // faces immediately behind the current tip
	TipNodes      []int   // nodes on the tip edge
}

// TipElements returns the set of fracture cells adjacent to the current tip.
// A fracture cell is a tip element if one of its two bounding faces belongs
// to the trailing-face set.
func (o State) TipElements(m *msh.Mesh) map[int]bool {
	trailing := make(map[int]bool)
	for _, f := range o.TrailingFaces {
		trailing[f] = true
	}
	tips := make(map[int]bool)
	for _, n := range m.FracCells {
		for _, f := range m.Elem2Faces[n] {
			if trailing[f] {
				tips[n] = true
			}
		}
	}
	return tips
}

// AverageGap computes the average opening of the tip element from the
// displacements of its two bounding faces, excluding the pinched tip nodes.
// The opening direction is the normalized difference of the face normals.
func (o State) AverageGap(m *msh.Mesh, tipElem int) (gap float64) {
	faces := m.Elem2Faces[tipElem]
	nbar := make([]float64, m.Ndim)
	nrm := 0.0
	for i := 0; i < m.Ndim; i++ {
		nbar[i] = m.FaceNorms[faces[0]][i] - m.FaceNorms[faces[1]][i]
		nrm += nbar[i] * nbar[i]
	}
	nrm = math.Sqrt(nrm)
	if nrm < 1e-14 {
		chk.Panic("bounding faces of tip element %d have parallel normals", tipElem)
	}
	for i := 0; i < m.Ndim; i++ {
		nbar[i] /= nrm
	}
	istip := make(map[int]bool)
	for _, n := range o.TipNodes {
		istip[n] = true
	}
	for kf := 0; kf < 2; kf++ {
		sgn := -math.Pow(-1.0, float64(kf))
		for _, n := range m.Face2Nodes[faces[kf]] {
			if istip[n] {
				continue
			}
			dot := 0.0
			for i := 0; i < m.Ndim; i++ {
				dot += m.NodeDisp[n][i] * nbar[i]
			}
			gap += sgn * dot / 2.0
		}
	}
	return
}

// Asym implements the self-similar viscosity-dominated plane-strain (KGD)
// fracture asymptote used to override the discrete flux near the tip
type Asym struct {
	Eprime  float64 // plane-strain modulus E/(1-ν²)
	Mup     float64 // modified viscosity 12・μ
	Q0      float64 // effective injection rate after symmetry/unit scaling
	GammaM0 float64 // similarity constant
}

// NewAsym builds the asymptote parameters from elastic moduli, fluid
// viscosity and the injection rate. rateFactor and rateScale carry the
// problem-specific symmetry and unit conversions applied to the rate.
func NewAsym(bulk, shear, visc, injRate, rateFactor, rateScale, gamma float64) (o *Asym) {
	if bulk <= 0 || shear <= 0 {
		chk.Panic("tip asymptote requires positive elastic moduli. K=%g, G=%g", bulk, shear)
	}
	if visc <= 0 {
		chk.Panic("tip asymptote requires positive viscosity. μ=%g", visc)
	}
	E := 9.0 * bulk * shear / (3.0*bulk + shear)
	ν := (3.0*bulk - 2.0*shear) / (2.0 * (3.0*bulk + shear))
	o = new(Asym)
	o.Eprime = E / (1.0 - ν*ν)
	o.Mup = 12.0 * visc
	o.Q0 = rateFactor * math.Abs(injRate) / rateScale
	o.GammaM0 = gamma
	return
}

// Lm returns the similarity length scale at total elapsed time t
func (o Asym) Lm(t float64) float64 {
	return math.Pow(o.Eprime*math.Pow(o.Q0, 3.0)*math.Pow(t, 4.0)/o.Mup, 1.0/6.0)
}

// Velocity returns the tip propagation velocity at total elapsed time t
func (o Asym) Velocity(t float64) float64 {
	return (2.0 / 3.0) * o.Lm(t) * o.GammaM0 / t
}

// GradP returns the asymptotic pressure gradient at the tip for a given
// average gap and total elapsed time t
func (o Asym) GradP(t, gap float64) float64 {
	v := o.Velocity(t)
	betam := math.Pow(2.0, 1.0/3.0) * math.Pow(3.0, 5.0/6.0)
	coeff := -math.Pow(6.0, -2.0/3.0) * math.Pow(o.Eprime*o.Eprime*o.Mup*v, 1.0/3.0)
	return -(1.0 / 3.0) * coeff * betam * betam * math.Pow(o.Eprime/(o.Mup*v), -2.0/3.0) / (gap * gap)
}
