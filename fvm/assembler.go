// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gosl/la"
)

// rowSkipped tells whether an equation must not receive contributions:
// ghost-owned rows never exist locally and constrained rows are replaced
func (o *Domain) rowSkipped(row int) bool {
	if o.constrained[row] {
		return true
	}
	return !o.Msh.Cells[row/NumDof].Owned()
}

// addFb adds a residual contribution R into Fb, which stores -R
func (o *Domain) addFb(row int, r float64) {
	if o.rowSkipped(row) {
		return
	}
	o.Fb[row] -= r
}

// putK adds a Jacobian contribution. Ghost cells are readable columns but
// never rows.
func (o *Domain) putK(row, col int, v float64) {
	if o.rowSkipped(row) {
		return
	}
	o.Kb.Put(row, col, v)
}

// putKA adds an aperture-coupling contribution; columns are cell ids
func (o *Domain) putKA(row, cell int, v float64) {
	if o.rowSkipped(row) {
		return
	}
	o.KbA.Put(row, cell, v)
}

// AssembleSystem builds the residual and Jacobian of the current trial
// state: open for writes, accumulation over owned cells, two-point fluxes
// over matrix stencils, junction fluxes over fracture connectors, source
// terms, constraint rows, close
func (o *Domain) AssembleSystem(dt float64) {
	f := o.F
	la.VecFill(o.Fb, 0)
	o.Kb.Start()
	o.KbA.Start()

	// accumulation over owned cells
	for _, c := range o.Msh.Cells {
		if !c.Owned() {
			continue
		}
		n := c.Id
		base := n * NumDof
		AccumCompute(c.Vol, f.PoroOld[n], o.poroRef, f.PvMult[n], f.DpvMultDp[n],
			f.Dens[n], f.DdensDp[n], f.DensOld[n], f.Sat[n], f.Dsat[n],
			o.accum, o.ajac)
		for p := 0; p < NumPhases; p++ {
			row := base + o.Dm.Rows[p]
			o.addFb(row, o.accum[p])
			o.putK(row, base+ColDpres, o.ajac[p][ColDpres])
			o.putK(row, base+ColDsat, o.ajac[p][ColDsat])
		}
	}

	// two-point fluxes over matrix stencils
	for _, s := range o.Msh.Stencils {
		o.tpfa.Compute(s.Cells, s.Weights, dt)
		for p := 0; p < NumPhases; p++ {
			row0 := s.Cells[0]*NumDof + o.Dm.Rows[p]
			row1 := s.Cells[1]*NumDof + o.Dm.Rows[p]
			o.addFb(row0, o.tpfa.Flux[p])
			o.addFb(row1, -o.tpfa.Flux[p])
			for k, n := range s.Cells {
				colP := n*NumDof + ColDpres
				colS := n*NumDof + ColDsat
				o.putK(row0, colP, o.tpfa.JacP[p][k])
				o.putK(row0, colS, o.tpfa.JacS[p][k])
				o.putK(row1, colP, -o.tpfa.JacP[p][k])
				o.putK(row1, colS, -o.tpfa.JacS[p][k])
			}
		}
	}

	// junction fluxes over fracture connectors
	for _, j := range o.Msh.Junctions {
		jct := j
		o.jk.Compute(jct, dt, func() {
			legs := [2]int{o.jk.K0, o.jk.K1}
			for p := 0; p < NumPhases; p++ {
				for r := 0; r < 2; r++ {
					row := jct.Cells[legs[r]]*NumDof + o.Dm.Rows[p]
					o.addFb(row, o.jk.Flux[p][r])
					for k, n := range jct.Cells {
						o.putK(row, n*NumDof+ColDpres, o.jk.JacP[p][r][k])
						o.putK(row, n*NumDof+ColDsat, o.jk.JacS[p][r][k])
						o.putKA(row, n, o.jk.JacA[p][r][k])
					}
				}
			}
		})
	}

	// source terms
	for _, src := range o.Sim.Sources {
		for _, n := range src.Cells {
			row := n*NumDof + o.Dm.Rows[src.Phase]
			o.addFb(row, src.Value*dt)
		}
	}

	// constraint rows: unit diagonal, driving the unknown to its value
	for n, val := range o.fixedP {
		row := n*NumDof + ColDpres
		o.Kb.Put(row, row, 1.0)
		o.Fb[row] = -(f.Pres[n] + f.Dpres[n] - val)
	}
	for n, val := range o.fixedS {
		row := n*NumDof + ColDsat
		o.Kb.Put(row, row, 1.0)
		o.Fb[row] = -(f.Sat[n][0] + f.Dsat[n][0] - val)
	}
}

// SetTipOverride passes this step's tip data to the junction kernel
func (o *Domain) SetTipOverride(tip *TipOverride) {
	o.jk.SetTipOverride(tip)
}
