// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sld implements the rock (solid skeleton) model for compressible
// porous media
package sld

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model holds the rock data. The pore volume multiplier follows a linear
// compressibility law:
//   pvMult(p) = 1 + Cs・(p - P0)     thus  dPvMult/dp = Cs
// Bulk and Shear define the elastic moduli used by the fracture tip
// asymptote.
type Model struct {
	PoroRef float64 // reference porosity
	Cs      float64 // pore volume compressibility
	P0      float64 // reference pressure
	Bulk    float64 // bulk modulus
	Shear   float64 // shear modulus
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) {
	for _, p := range prms {
		switch p.N {
		case "poroRef":
			o.PoroRef = p.V
		case "Cs":
			o.Cs = p.V
		case "P0":
			o.P0 = p.V
		case "K":
			o.Bulk = p.V
		case "G":
			o.Shear = p.V
		}
	}
	if o.PoroRef <= 0 || o.PoroRef > 1 {
		chk.Panic("reference porosity must be in (0,1]. poroRef=%g is invalid", o.PoroRef)
	}
	if o.Bulk < 0 || o.Shear < 0 {
		chk.Panic("elastic moduli cannot be negative. K=%g, G=%g", o.Bulk, o.Shear)
	}
}

// GetPrms gets (an example of) parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "poroRef", V: 0.2},
			&dbf.P{N: "Cs", V: 1.0e-9},  // [1/Pa]
			&dbf.P{N: "P0", V: 0.0},     // [Pa]
			&dbf.P{N: "K", V: 20.0e9},   // [Pa]
			&dbf.P{N: "G", V: 12.0e9},   // [Pa]
		}
	}
	return dbf.Params{
		&dbf.P{N: "poroRef", V: o.PoroRef},
		&dbf.P{N: "Cs", V: o.Cs},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "K", V: o.Bulk},
		&dbf.P{N: "G", V: o.Shear},
	}
}

// PvMult computes the pore volume multiplier and its pressure derivative
func (o Model) PvMult(p float64) (pv, dpvdp float64) {
	pv = 1.0 + o.Cs*(p-o.P0)
	dpvdp = o.Cs
	return
}

// Young computes Young's modulus and Poisson's ratio from Bulk and Shear
func (o Model) Young() (E, ν float64) {
	E = 9.0 * o.Bulk * o.Shear / (3.0*o.Bulk + o.Shear)
	ν = (3.0*o.Bulk - 2.0*o.Shear) / (2.0 * (3.0*o.Bulk + o.Shear))
	return
}
