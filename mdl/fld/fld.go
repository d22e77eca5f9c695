// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fld implements pressure-volume-temperature models for two-phase fluids
package fld

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Phase holds the material data of one fluid phase. Density and viscosity
// follow linear laws in pressure:
//   ρ(p) = R0 + C・(p - P0)     thus  dρ/dp = C
//   μ(p) = Mu0・(1 + Cv・(p - P0))  thus  dμ/dp = Mu0・Cv
type Phase struct {
	Name string  // phase name: "water", "oil" or "gas"
	R0   float64 // intrinsic density corresponding to P0
	P0   float64 // reference pressure
	C    float64 // compressibility coefficient
	Mu0  float64 // viscosity at P0
	Cv   float64 // viscosibility coefficient
}

// Init initialises this phase
func (o *Phase) Init(name string, prms dbf.Params) {
	o.Name = name
	for _, p := range prms {
		switch p.N {
		case "R0":
			o.R0 = p.V
		case "P0":
			o.P0 = p.V
		case "C":
			o.C = p.V
		case "Mu0":
			o.Mu0 = p.V
		case "Cv":
			o.Cv = p.V
		}
	}
	if o.R0 <= 0 || o.Mu0 <= 0 {
		chk.Panic("phase %q must have positive R0 and Mu0. R0=%g, Mu0=%g", name, o.R0, o.Mu0)
	}
}

// GetPrms gets (an example of) parameters
func (o Phase) GetPrms(example bool) dbf.Params {
	if example {
		if o.Name == "gas" {
			return dbf.Params{
				&dbf.P{N: "R0", V: 1.2},     // [kg/m³]
				&dbf.P{N: "P0", V: 0.0},     // [Pa]
				&dbf.P{N: "C", V: 1.17e-5},  // [kg/(m³・Pa)]
				&dbf.P{N: "Mu0", V: 1.8e-5}, // [Pa・s]
				&dbf.P{N: "Cv", V: 0.0},     // [1/Pa]
			}
		}
		return dbf.Params{ // water
			&dbf.P{N: "R0", V: 1000.0},  // [kg/m³]
			&dbf.P{N: "P0", V: 0.0},     // [Pa]
			&dbf.P{N: "C", V: 4.53e-7},  // [kg/(m³・Pa)]
			&dbf.P{N: "Mu0", V: 1.0e-3}, // [Pa・s]
			&dbf.P{N: "Cv", V: 0.0},     // [1/Pa]
		}
	}
	return dbf.Params{
		&dbf.P{N: "R0", V: o.R0},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "Mu0", V: o.Mu0},
		&dbf.P{N: "Cv", V: o.Cv},
	}
}

// Model implements a two-phase compressible fluid. The phase ordering given
// at initialisation is the ordering used everywhere else: phase 0 carries
// the primary saturation unknown.
type Model struct {
	Phases []*Phase // [nphases] phase data
}

// Init initialises the fluid model with nphases == len(names) phases
func (o *Model) Init(names []string, prms []dbf.Params) {
	if len(names) != len(prms) {
		chk.Panic("number of phase names (%d) must equal number of parameter sets (%d)", len(names), len(prms))
	}
	o.Phases = make([]*Phase, len(names))
	for i, name := range names {
		o.Phases[i] = new(Phase)
		o.Phases[i].Init(name, prms[i])
	}
}

// Nphases returns the number of phases
func (o Model) Nphases() int { return len(o.Phases) }

// PhaseNames returns the ordered list of phase names
func (o Model) PhaseNames() (names []string) {
	names = make([]string, len(o.Phases))
	for i, ph := range o.Phases {
		names[i] = ph.Name
	}
	return
}

// Calc computes density, viscosity and their pressure derivatives for phase
// ip at pressure p
func (o Model) Calc(ip int, p float64) (ρ, dρdp, μ, dμdp float64) {
	ph := o.Phases[ip]
	ρ = ph.R0 + ph.C*(p-ph.P0)
	dρdp = ph.C
	μ = ph.Mu0 * (1.0 + ph.Cv*(p-ph.P0))
	dμdp = ph.Mu0 * ph.Cv
	return
}
