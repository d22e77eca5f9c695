// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. reading mesh")

	m, err := ReadMsh("data", "frac2d.msh")
	if err != nil {
		tst.Errorf("ReadMsh failed: %v\n", err)
		return
	}

	if m.Ndim != 2 {
		tst.Errorf("ndim is incorrect: %d != 2\n", m.Ndim)
		return
	}
	if len(m.Cells) != 4 || len(m.Stencils) != 1 || len(m.Junctions) != 1 {
		tst.Errorf("wrong number of cells/stencils/junctions: %d/%d/%d\n", len(m.Cells), len(m.Stencils), len(m.Junctions))
		return
	}
	chk.Ints(tst, "fraccells", m.FracCells, []int{2, 3})

	for _, c := range m.Cells {
		if !c.Owned() {
			tst.Errorf("cell %d should be owned\n", c.Id)
			return
		}
	}
	chk.Float64(tst, "edgelen", 1e-15, m.Junctions[0].EdgeLen, 0.5)
	chk.Ints(tst, "jcells", m.Junctions[0].Cells, []int{2, 3})
	chk.Array(tst, "jweights", 1e-15, m.Junctions[0].Weights, []float64{1, 1})
	chk.Ints(tst, "faces(2)", m.Elem2Faces[2], []int{0, 1})
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. consistency checks")

	m := &Mesh{
		Ndim: 2,
		Cells: []*Cell{
			{Id: 0, Vol: 1, GhostRank: -1},
			{Id: 1, Vol: 1, GhostRank: -1},
		},
		Stencils: []*Stencil{{Cells: []int{0, 1}, Weights: []float64{1}}},
	}
	if err := m.CalcDerived(); err == nil {
		tst.Errorf("CalcDerived should have failed with mismatched weights\n")
		return
	}

	m.Stencils[0].Weights = []float64{1, -1}
	if err := m.CalcDerived(); err != nil {
		tst.Errorf("CalcDerived failed: %v\n", err)
		return
	}

	m.Junctions = []*Junction{{Cells: []int{0, 1}, Weights: []float64{1, 1}, EdgeLen: 1}}
	if err := m.CalcDerived(); err == nil {
		tst.Errorf("CalcDerived should have failed with junction on non-fracture cells\n")
		return
	}
}
