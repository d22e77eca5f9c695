// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gofvm/fvm"
	"github.com/cpmech/gofvm/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				io.PfRed("\nERROR: %v", err)
				io.Pf("See location of error below:\n")
				chk.Verbose = true
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)

	// message
	if mpi.Rank() == 0 && verbose {
		io.PfWhite("\nGofvm -- Finite Volume Two-Phase Flow in Fractured Porous Media\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
		))
	}

	// simulation data
	sim := inp.ReadSim(fnamepath, erasePrev)

	// communication layer
	var peers fvm.Peers = fvm.SerialPeers{}
	if mpi.IsOn() {
		peers = fvm.NewMpiPeers()
	}

	// domain and solver
	dom := fvm.NewDomain(sim, nil, peers)
	dom.SetIniVals()
	sol := fvm.NewSolver(dom)

	// run simulation
	err := sol.Run(sim.Control.Tf, sim.Control.Dt)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	if mpi.Rank() == 0 && verbose {
		io.PfGreen("\nsimulation finished at t = %g\n", dom.T)
	}
}
