// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gofvm/inp"
	"github.com/cpmech/gofvm/msh"
	"github.com/cpmech/gosl/chk"
)

func Test_assemble01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemble01. ghost cells contribute columns, never rows")

	sim := inp.ReadSim("data/twocells.sim", false)
	sim.FixPres = nil
	sim.Msh.Cells[0].GhostRank = 1
	dom := NewDomain(sim, nil, SerialPeers{})
	dom.SetIniVals()

	dt := 1.0
	dom.AssembleSystem(dt)

	// the source targets the ghost cell, so no residual row receives it
	for i := 0; i < dom.Ny; i++ {
		chk.Float64(tst, "fb", 1e-15, dom.Fb[i], 0)
	}

	// ghost rows stay empty in the Jacobian
	KK := dom.Kb.ToMatrix(nil).ToDense()
	for r := 0; r < NumDof; r++ {
		for j := 0; j < dom.Ny; j++ {
			chk.Float64(tst, "K(ghost row)", 1e-17, KK[r][j], 0)
		}
	}

	// the owned cell's flux row still reads the ghost pressure column
	mob := 1000.0 * 1.0 / 1.0e-3
	row := 1*NumDof + dom.Dm.Rows[0]
	chk.Float64(tst, "K(owned,ghost col)", 1e-9, KK[row][0*NumDof+ColDpres], -dt*mob)
}

func Test_assemble02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemble02. region growth rebuilds the global system")

	sim := inp.ReadSim("data/twocells.sim", false)
	dom := NewDomain(sim, nil, SerialPeers{})
	dom.SetIniVals()

	// fracture growth appends a cell to the region between steps
	sim.Msh.Cells = append(sim.Msh.Cells, &msh.Cell{Id: 2, Vol: 1, GhostRank: -1})
	dom.ResetDeltas()
	dom.BindViews()

	if dom.Sto.Ncells() != 3 || dom.Ny != 3*NumDof {
		tst.Errorf("system was not resized: ncells=%d ny=%d\n", dom.Sto.Ncells(), dom.Ny)
		return
	}
	if len(dom.Fb) != dom.Ny || len(dom.Wb) != dom.Ny {
		tst.Errorf("work vectors were not resized: %d/%d\n", len(dom.Fb), len(dom.Wb))
		return
	}

	// existing cells keep their values; the new cell starts from scratch
	f := dom.F
	chk.Float64(tst, "pres(kept)", 1e-15, f.Pres[0], 1000.0)
	chk.Float64(tst, "pres(new)", 1e-17, f.Pres[2], 0)

	// a full step setup and assembly over the grown region
	f.Pres[2] = 1000.0
	f.Sat[2][0], f.Sat[2][1] = 1.0, 0
	dom.UpdateState()
	dom.BackupFields()
	dt := 1.0
	dom.AssembleSystem(dt)
	srcRow := 0*NumDof + dom.Dm.Rows[0]
	for i := 0; i < dom.Ny; i++ {
		if i == srcRow {
			chk.Float64(tst, "fb(source)", 1e-15, dom.Fb[i], 0.5*dt)
			continue
		}
		chk.Float64(tst, "fb(other)", 1e-15, dom.Fb[i], 0)
	}
}

func Test_output01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("output01. debug dumps land in the output directory")

	sim := inp.ReadSim("data/twocells.sim", false)
	sim.DirOut = "/tmp/gofvm/twocells"
	dom := NewDomain(sim, nil, SerialPeers{})
	dom.SetIniVals()
	dom.AssembleSystem(1.0)
	dom.WriteSystem()

	for _, fn := range []string{"twocells_Kb.mtx", "twocells_fb.txt", "twocells_Kb.smat"} {
		if _, err := os.Stat(filepath.Join(sim.DirOut, fn)); err != nil {
			tst.Errorf("missing dump file %q: %v\n", fn, err)
			return
		}
	}
}
