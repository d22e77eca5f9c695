// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cnd

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// Lin implements a linear relative permeability model:
//   klr = Klmax・sl    kgr = Kgmax・sg
type Lin struct {
	Klmax float64 // maximum liquid relative permeability
	Kgmax float64 // maximum gas relative permeability
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises this structure
func (o *Lin) Init(prms dbf.Params) (err error) {
	o.Klmax, o.Kgmax = 1.0, 1.0
	for _, p := range prms {
		switch p.N {
		case "Klmax":
			o.Klmax = p.V
		case "Kgmax":
			o.Kgmax = p.V
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Klmax", V: 1.0},
			&dbf.P{N: "Kgmax", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "Klmax", V: o.Klmax},
		&dbf.P{N: "Kgmax", V: o.Kgmax},
	}
}

// Klr returns klr
func (o Lin) Klr(sl float64) float64 { return o.Klmax * sl }

// Kgr returns kgr
func (o Lin) Kgr(sg float64) float64 { return o.Kgmax * sg }

// DklrDsl returns ∂klr/∂sl
func (o Lin) DklrDsl(sl float64) float64 { return o.Klmax }

// DkgrDsg returns ∂kgr/∂sg
func (o Lin) DkgrDsg(sg float64) float64 { return o.Kgmax }
