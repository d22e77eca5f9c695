// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gofvm/frac"
	"github.com/cpmech/gofvm/inp"
	"github.com/cpmech/gofvm/mdl/cnd"
	"github.com/cpmech/gofvm/mdl/fld"
	"github.com/cpmech/gofvm/mdl/sld"
	"github.com/cpmech/gofvm/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Domain holds the flow system of one mesh region: the field storage, the
// kernels, the global sparse residual/Jacobian and the essential
// constraints. The constitutive models, fracture state and communication
// layer are injected at construction and never looked up again.
type Domain struct {

	// collaborators
	Sim   *inp.Simulation // input data
	Msh   *msh.Mesh       // mesh/topology provider
	Flu   *fld.Model      // fluid model
	Cnd   cnd.Model       // relative permeability model
	Sld   *sld.Model      // rock model
	Frk   *frac.State     // fracture-propagation state; nil when static
	Peers Peers           // communication layer

	// dof map and numbering
	Dm *DofMap // row/column offsets
	Ny int     // total number of equations

	// storage and views
	Sto     *Store    // per-cell arrays
	F       *Fields   // views bound for the current step
	grav    []float64 // per-cell gravity coefficients
	poroRef float64   // reference porosity

	// kernels
	tpfa *TpfaKernel
	jk   *JunctionKernel

	// global system
	Kb  *la.Triplet // flow Jacobian (dR/dy)
	KbA *la.Triplet // ∂R/∂aperture coupling block
	Fb  []float64   // negative of residual
	Wb  []float64   // workspace; receives δy

	// constraints
	fixedP      map[int]float64 // cell => prescribed pressure
	fixedS      map[int]float64 // cell => prescribed phase-0 saturation
	constrained map[int]bool    // equation => replaced by a constraint row

	// scratch
	accum []float64
	ajac  [][]float64
	ys    []float64

	// time
	T float64 // current time
}

// NewDomain builds a domain with all collaborators resolved. Configuration
// problems are fatal.
func NewDomain(sim *inp.Simulation, fs *frac.State, peers Peers) (o *Domain) {
	o = new(Domain)
	o.Sim = sim
	o.Msh = sim.Msh
	o.Flu = sim.Flu
	o.Cnd = sim.Cnd
	o.Sld = sim.Sld
	o.Frk = fs
	o.Peers = peers

	// offsets map; panics on fluid/relperm phase mismatch
	o.Dm = NewDofMap(o.Flu.PhaseNames(), sim.CndPhs)

	// storage
	o.Sto = NewStore(len(o.Msh.Cells))
	RegisterFields(o.Sto)
	o.F = new(Fields)
	o.F.Bind(o.Sto)
	o.poroRef = o.Sld.PoroRef

	// kernels and global system
	o.allocSystem()

	// constraints
	o.fixedP = make(map[int]float64)
	o.fixedS = make(map[int]float64)
	o.constrained = make(map[int]bool)
	for _, fx := range sim.FixPres {
		o.FixPres(fx.Cell, fx.Value)
	}
	for _, fx := range sim.FixSat {
		o.FixSat(fx.Cell, fx.Value)
	}

	// scratch
	o.accum = make([]float64, NumPhases)
	o.ajac = la.MatAlloc(NumPhases, NumDof)
	return
}

// allocSystem sizes everything that depends on the region: gravity
// coefficients, kernels, equation count, sparse triplets and work vectors.
// Called at construction and again whenever fracture growth resizes the
// region.
func (o *Domain) allocSystem() {
	ncells := len(o.Msh.Cells)
	o.grav = make([]float64, ncells)
	for i, c := range o.Msh.Cells {
		o.grav[i] = c.GravCoef
	}
	o.tpfa = NewTpfaKernel(o.F, o.grav)
	o.jk = NewJunctionKernel(o.F, o.grav, o.Msh, AperRuleByName(o.Sim.Flow.AperRule), o.Sim.Flow.MeanPermCoeff)
	o.Ny = ncells * NumDof
	nnz := ncells * NumPhases * NumDof
	for _, s := range o.Msh.Stencils {
		nnz += 2 * NumPhases * NumDof * len(s.Cells)
	}
	for _, j := range o.Msh.Junctions {
		np := len(j.Cells) * (len(j.Cells) - 1) / 2
		nnz += 2 * np * NumPhases * NumDof * len(j.Cells)
	}
	o.Kb = new(la.Triplet)
	o.Kb.Init(o.Ny, o.Ny, nnz)
	o.KbA = new(la.Triplet)
	o.KbA.Init(o.Ny, ncells, nnz)
	o.Fb = make([]float64, o.Ny)
	o.Wb = make([]float64, o.Ny)
	o.ys = make([]float64, o.Ny)
}

// FixPres prescribes the pressure of one cell via row replacement
func (o *Domain) FixPres(cell int, value float64) {
	if cell < 0 || cell >= len(o.Msh.Cells) {
		chk.Panic("cannot fix pressure of inexistent cell %d", cell)
	}
	o.fixedP[cell] = value
	o.constrained[cell*NumDof+ColDpres] = true
}

// FixSat prescribes the phase-0 saturation of one cell via row replacement
func (o *Domain) FixSat(cell int, value float64) {
	if cell < 0 || cell >= len(o.Msh.Cells) {
		chk.Panic("cannot fix saturation of inexistent cell %d", cell)
	}
	if value < 0 || value > 1 {
		chk.Panic("prescribed saturation must be in [0,1]. %g is invalid", value)
	}
	o.fixedS[cell] = value
	o.constrained[cell*NumDof+ColDsat] = true
}

// BindViews re-resolves the field views; must be called at the beginning of
// every time step since fracture growth may have resized the region. A
// resize also rebuilds the gravity coefficients, kernels and global system
// to the new cell count, preserving existing cell values.
func (o *Domain) BindViews() {
	if len(o.Msh.Cells) != o.Sto.Ncells() {
		o.Sto.Resize(len(o.Msh.Cells))
		o.allocSystem()
	}
	o.F.Bind(o.Sto)
}

// SetIniVals sets initial pressure, saturations and apertures
func (o *Domain) SetIniVals() {
	ini := o.Sim.Ini
	wp := o.Dm.Wetting
	for _, c := range o.Msh.Cells {
		n := c.Id
		o.F.Pres[n] = ini.Pres
		o.F.Sat[n][wp] = ini.Satw
		o.F.Sat[n][1-wp] = 1.0 - ini.Satw
		if c.Frac {
			o.F.Aper[n] = ini.Aper
			o.F.Aper0[n] = ini.Aper
		}
	}
	o.UpdateState()
	o.BackupFields()
}

// UpdateState evaluates the constitutive chain at the current trial state:
// densities, viscosities, relative permeabilities, mobilities and the pore
// volume multiplier, with all derivatives
func (o *Domain) UpdateState() {
	f := o.F
	for n := 0; n < o.Sto.Ncells(); n++ {
		p := f.Pres[n] + f.Dpres[n]
		f.PvMult[n], f.DpvMultDp[n] = o.Sld.PvMult(p)
		s0 := f.Sat[n][0] + f.Dsat[n][0]
		s1 := f.Sat[n][1] + f.Dsat[n][1]
		for ip := 0; ip < NumPhases; ip++ {
			ρ, dρdp, μ, dμdp := o.Flu.Calc(ip, p)
			f.Dens[n][ip] = ρ
			f.DdensDp[n][ip] = dρdp
			f.Visc[n][ip] = μ
			f.DviscDp[n][ip] = dμdp

			// relative permeability; the phase-1 saturation carries the
			// -1 chain factor of the sum-to-one closure
			var kr, dkrds float64
			if ip == 0 {
				kr = o.Cnd.Klr(s0)
				dkrds = o.Cnd.DklrDsl(s0)
			} else {
				kr = o.Cnd.Kgr(s1)
				dkrds = -o.Cnd.DkgrDsg(s1)
			}

			// mobility = density・relperm/viscosity
			f.Mob[n][ip] = ρ * kr / μ
			f.DmobDp[n][ip] = kr * (dρdp/μ - ρ*dμdp/(μ*μ))
			f.DmobDs[n][ip] = ρ * dkrds / μ
		}
	}
}
