// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"bytes"
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// WriteSystem serializes the assembled Jacobian and right-hand side for
// debugging: a .smat text file, a MatrixMarket coordinate file and a plain
// fb listing, all in the output directory. Not part of the numerical
// contract.
func (o *Domain) WriteSystem() {
	KK := o.Kb.ToMatrix(nil).ToDense()

	// MatrixMarket coordinate format
	nnz := 0
	for i := 0; i < o.Ny; i++ {
		for j := 0; j < o.Ny; j++ {
			if math.Abs(KK[i][j]) > 1e-17 {
				nnz++
			}
		}
	}
	var bm bytes.Buffer
	io.Ff(&bm, "%%%%MatrixMarket matrix coordinate real general\n")
	io.Ff(&bm, "%d %d %d\n", o.Ny, o.Ny, nnz)
	for i := 0; i < o.Ny; i++ {
		for j := 0; j < o.Ny; j++ {
			if math.Abs(KK[i][j]) > 1e-17 {
				io.Ff(&bm, "%d %d %23.15e\n", i+1, j+1, KK[i][j])
			}
		}
	}
	io.WriteFileD(o.Sim.DirOut, o.Sim.Key+"_Kb.mtx", &bm)

	// right-hand side
	var bf bytes.Buffer
	for _, v := range o.Fb {
		io.Ff(&bf, "%23.15e\n", v)
	}
	io.WriteFileD(o.Sim.DirOut, o.Sim.Key+"_fb.txt", &bf)

	// smat format; last so the output directory exists already
	la.WriteSmat(filepath.Join(o.Sim.DirOut, o.Sim.Key+"_Kb"), KK, 1e-17)
}
