// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cnd

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Pow implements a Brooks-Corey type power-law relative permeability model
// with residual saturations:
//   se  = (sl - Slr) / (1 - Slr - Sgr)
//   klr = Klmax・se^Nl    kgr = Kgmax・(1-se)^Ng
type Pow struct {
	Slr   float64 // residual liquid saturation
	Sgr   float64 // residual gas saturation
	Nl    float64 // liquid exponent
	Ng    float64 // gas exponent
	Klmax float64 // maximum liquid relative permeability
	Kgmax float64 // maximum gas relative permeability
}

// add model to factory
func init() {
	allocators["pow"] = func() Model { return new(Pow) }
}

// Init initialises this structure
func (o *Pow) Init(prms dbf.Params) (err error) {
	o.Nl, o.Ng = 2.0, 2.0
	o.Klmax, o.Kgmax = 1.0, 1.0
	for _, p := range prms {
		switch p.N {
		case "Slr":
			o.Slr = p.V
		case "Sgr":
			o.Sgr = p.V
		case "Nl":
			o.Nl = p.V
		case "Ng":
			o.Ng = p.V
		case "Klmax":
			o.Klmax = p.V
		case "Kgmax":
			o.Kgmax = p.V
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Pow) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Slr", V: 0.1},
			&dbf.P{N: "Sgr", V: 0.05},
			&dbf.P{N: "Nl", V: 2.0},
			&dbf.P{N: "Ng", V: 2.0},
			&dbf.P{N: "Klmax", V: 1.0},
			&dbf.P{N: "Kgmax", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "Slr", V: o.Slr},
		&dbf.P{N: "Sgr", V: o.Sgr},
		&dbf.P{N: "Nl", V: o.Nl},
		&dbf.P{N: "Ng", V: o.Ng},
		&dbf.P{N: "Klmax", V: o.Klmax},
		&dbf.P{N: "Kgmax", V: o.Kgmax},
	}
}

// se returns the effective saturation and its derivative w.r.t sl
func (o Pow) se(sl float64) (se, dsedsl float64) {
	dsedsl = 1.0 / (1.0 - o.Slr - o.Sgr)
	se = (sl - o.Slr) * dsedsl
	if se < 0 {
		se, dsedsl = 0, 0
	}
	if se > 1 {
		se, dsedsl = 1, 0
	}
	return
}

// Klr returns klr
func (o Pow) Klr(sl float64) float64 {
	se, _ := o.se(sl)
	return o.Klmax * math.Pow(se, o.Nl)
}

// Kgr returns kgr
func (o Pow) Kgr(sg float64) float64 {
	se, _ := o.se(1.0 - sg)
	return o.Kgmax * math.Pow(1.0-se, o.Ng)
}

// DklrDsl returns ∂klr/∂sl
func (o Pow) DklrDsl(sl float64) float64 {
	se, dsedsl := o.se(sl)
	if se == 0 {
		return 0
	}
	return o.Klmax * o.Nl * math.Pow(se, o.Nl-1.0) * dsedsl
}

// DkgrDsg returns ∂kgr/∂sg
func (o Pow) DkgrDsg(sg float64) float64 {
	se, dsedsl := o.se(1.0 - sg)
	if se == 1 {
		return 0
	}
	return o.Kgmax * o.Ng * math.Pow(1.0-se, o.Ng-1.0) * dsedsl
}
