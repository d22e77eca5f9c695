// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fvm implements the nonlinear finite-volume assembly of two-phase
// flow through a deformable and possibly fracturing porous medium: the
// accumulation and flux kernels, the global residual/Jacobian assembler,
// the solution validator/updater and an implicit Newton driver
package fvm

import (
	"github.com/cpmech/gosl/chk"
)

// sizes of a cell's equation/unknown block
const (
	NumPhases = 2 // number of fluid phases
	NumDof    = 2 // unknowns per cell: pressure and one saturation
)

// column offsets within a cell's DOF block
const (
	ColDpres = 0 // pressure unknown
	ColDsat  = 1 // saturation unknown (phase 0)
)

// DofMap is the fixed mapping from phase index to equation-row offset
// within a cell's block. It is established once at setup from the ordered
// phase names reported by the fluid and relative permeability models and
// never changes during a solve. The wetting-phase equation comes first.
type DofMap struct {
	Rows    [NumPhases]int // phase index => equation row offset
	Wetting int            // index of the wetting phase
}

// wetness ranks phase names; water beats oil beats gas
func wetness(name string) int {
	switch name {
	case "water":
		return 2
	case "oil":
		return 1
	case "gas":
		return 0
	}
	chk.Panic("unknown phase name %q; options are \"water\", \"oil\" and \"gas\"", name)
	return -1
}

// NewDofMap builds the row/column offset map. A phase-name mismatch between
// the fluid and relative permeability models is a fatal configuration error.
func NewDofMap(fluidNames, relpermNames []string) (o *DofMap) {
	if len(fluidNames) != NumPhases {
		chk.Panic("fluid model must have %d phases. %d is invalid", NumPhases, len(fluidNames))
	}
	if len(relpermNames) != len(fluidNames) {
		chk.Panic("fluid model (%d phases) and relative permeability model (%d phases) do not match", len(fluidNames), len(relpermNames))
	}
	for i, name := range fluidNames {
		if name != relpermNames[i] {
			chk.Panic("phase %d differs between fluid (%q) and relative permeability (%q) models", i, name, relpermNames[i])
		}
	}
	if fluidNames[0] == fluidNames[1] {
		chk.Panic("phase names must be distinct. both are %q", fluidNames[0])
	}
	o = new(DofMap)
	if wetness(fluidNames[0]) > wetness(fluidNames[1]) {
		o.Wetting = 0
	} else {
		o.Wetting = 1
	}
	o.Rows[o.Wetting] = 0
	o.Rows[1-o.Wetting] = 1
	return
}
