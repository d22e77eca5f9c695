// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_sld01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sld01. pore volume multiplier")

	var mdl Model
	mdl.Init(mdl.GetPrms(true))
	chk.Float64(tst, "poroRef", 1e-15, mdl.PoroRef, 0.2)

	pv, dpvdp := mdl.PvMult(0.0)
	chk.Float64(tst, "pvMult(P0)", 1e-15, pv, 1.0)
	chk.Float64(tst, "dPvMult", 1e-17, dpvdp, 1.0e-9)

	pv, _ = mdl.PvMult(10.0e6)
	chk.Float64(tst, "pvMult(10MPa)", 1e-15, pv, 1.0+1.0e-9*10.0e6)

	P := utl.LinSpace(0, 50.0e6, 5)
	for _, p := range P {
		_, dana := mdl.PvMult(p)
		chk.DerivScaSca(tst, "dPvMult", 1e-7, dana, p, 1e-1, chk.Verbose, func(x float64) float64 {
			v, _ := mdl.PvMult(x)
			return v
		})
	}

	E, ν := mdl.Young()
	chk.Float64(tst, "E", 1e-6, E, 9.0*20.0e9*12.0e9/(3.0*20.0e9+12.0e9))
	chk.Float64(tst, "ν", 1e-15, ν, (3.0*20.0e9-2.0*12.0e9)/(2.0*(3.0*20.0e9+12.0e9)))
}
