// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import (
	"math"
	"testing"

	"github.com/cpmech/gofvm/msh"
	"github.com/cpmech/gosl/chk"
)

// small fracture mesh: cells 2 and 3 are fracture elements; faces 2,3 bound
// element 3 which touches the tip
func fracmesh() *msh.Mesh {
	m := &msh.Mesh{
		Ndim: 2,
		Cells: []*msh.Cell{
			{Id: 0, Vol: 1, GhostRank: -1},
			{Id: 1, Vol: 1, GhostRank: -1},
			{Id: 2, Vol: 0.01, GhostRank: -1, Frac: true},
			{Id: 3, Vol: 0.01, GhostRank: -1, Frac: true},
		},
		Junctions:  []*msh.Junction{{Cells: []int{2, 3}, Weights: []float64{1, 1}, EdgeLen: 0.5}},
		Elem2Faces: [][]int{{}, {}, {0, 1}, {2, 3}},
		FaceNorms:  [][]float64{{0, 1}, {0, -1}, {0, 1}, {0, -1}},
		Face2Nodes: [][]int{{0, 1}, {2, 3}, {1, 4}, {3, 5}},
		NodeDisp:   [][]float64{{0, -0.001}, {0, -0.001}, {0, 0.001}, {0, 0.001}, {0, -0.0005}, {0, 0.0005}},
	}
	if err := m.CalcDerived(); err != nil {
		chk.Panic("cannot build test mesh: %v", err)
	}
	return m
}

func Test_tipelems01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tipelems01")

	m := fracmesh()
	st := State{TrailingFaces: []int{2}, TipNodes: []int{4, 5}}

	tips := st.TipElements(m)
	if len(tips) != 1 || !tips[3] {
		tst.Errorf("tip-element set is incorrect: %v\n", tips)
		return
	}

	st.TrailingFaces = nil
	tips = st.TipElements(m)
	if len(tips) != 0 {
		tst.Errorf("tip-element set should be empty: %v\n", tips)
	}
}

func Test_avgap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("avgap01. average gap of tip element")

	m := fracmesh()
	st := State{TrailingFaces: []int{2}, TipNodes: []int{4, 5}}

	// faces 2,3 bound element 3; normals (0,1) and (0,-1) give nbar=(0,1);
	// tip nodes 4,5 are excluded leaving node 1 on face 2 (uy=-0.001, sign -1)
	// and node 3 on face 3 (uy=+0.001, sign +1)
	gap := st.AverageGap(m, 3)
	chk.Float64(tst, "gap", 1e-15, gap, (0.001+0.001)/2.0)
}

func Test_asym01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asym01. KGD tip asymptote")

	bulk, shear := 20.0e9, 12.0e9
	visc := 2.0e-3
	inj := -0.5
	a := NewAsym(bulk, shear, visc, inj, 2.0, 1.0e3, 0.616)

	E := 9.0 * bulk * shear / (3.0*bulk + shear)
	ν := (3.0*bulk - 2.0*shear) / (2.0 * (3.0*bulk + shear))
	chk.Float64(tst, "Eprime", 1e-6, a.Eprime, E/(1.0-ν*ν))
	chk.Float64(tst, "Mup", 1e-17, a.Mup, 12.0*visc)
	chk.Float64(tst, "Q0", 1e-17, a.Q0, 2.0*0.5/1.0e3)

	t := 10.0
	lm := math.Pow(a.Eprime*a.Q0*a.Q0*a.Q0*t*t*t*t/a.Mup, 1.0/6.0)
	chk.Float64(tst, "Lm", 1e-8, a.Lm(t), lm)
	chk.Float64(tst, "velocity", 1e-10, a.Velocity(t), 2.0/3.0*lm*0.616/t)

	// the asymptotic gradient must be positive and scale with gap⁻²
	gap := 1.0e-4
	g1 := a.GradP(t, gap)
	g2 := a.GradP(t, 2.0*gap)
	if g1 <= 0 {
		tst.Errorf("gradP must be positive: %g\n", g1)
		return
	}
	chk.Float64(tst, "gradP scaling", 1e-8, g1/g2, 4.0)

	// closed form with terms regrouped
	v := a.Velocity(t)
	betam2 := math.Pow(2.0, 2.0/3.0) * math.Pow(3.0, 5.0/3.0)
	want := (1.0 / 3.0) * math.Pow(6.0, -2.0/3.0) * math.Pow(a.Eprime*a.Eprime*a.Mup*v, 1.0/3.0) *
		betam2 * math.Pow(a.Mup*v/a.Eprime, 2.0/3.0) / (gap * gap)
	chk.Float64(tst, "gradP", 1e-8, g1, want)
}
