// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

// CheckSolution applies the scaled increment to every owned cell and
// rejects the whole step when any pressure turns negative or any
// saturation leaves [0,1]. The decision is reduced with a global AND so
// all ranks agree. No value is clamped; violations are always surfaced.
func (o *Domain) CheckSolution(δ []float64, scale float64) bool {
	f := o.F
	ok := true
	for _, c := range o.Msh.Cells {
		if !c.Owned() {
			continue
		}
		n := c.Id
		base := n * NumDof
		newP := f.Pres[n] + f.Dpres[n] + scale*δ[base+ColDpres]
		newS := f.Sat[n][0] + f.Dsat[n][0] + scale*δ[base+ColDsat]
		if newP < 0 || newS < 0 || newS > 1 {
			ok = false
			break
		}
	}
	return o.Peers.ReduceAnd(ok)
}

// ApplyIncrement folds an accepted increment into the within-step deltas.
// The phase-1 saturation delta keeps the sum-to-one closure.
func (o *Domain) ApplyIncrement(δ []float64) {
	f := o.F
	for n := 0; n < o.Sto.Ncells(); n++ {
		base := n * NumDof
		f.Dpres[n] += δ[base+ColDpres]
		f.Dsat[n][0] += δ[base+ColDsat]
		f.Dsat[n][1] -= δ[base+ColDsat]
	}
}

// ResetDeltas zeroes the within-step deltas at the beginning of a step
func (o *Domain) ResetDeltas() {
	f := o.F
	for n := 0; n < o.Sto.Ncells(); n++ {
		f.Dpres[n] = 0
		for p := 0; p < NumPhases; p++ {
			f.Dsat[n][p] = 0
		}
	}
}

// CommitStep folds the accumulated deltas into the persistent fields on
// step completion
func (o *Domain) CommitStep() {
	f := o.F
	for n := 0; n < o.Sto.Ncells(); n++ {
		f.Pres[n] += f.Dpres[n]
		f.Dpres[n] = 0
		for p := 0; p < NumPhases; p++ {
			f.Sat[n][p] += f.Dsat[n][p]
			f.Dsat[n][p] = 0
		}
	}
}

// BackupFields snapshots the porosity and phase densities of owned cells
// into the "old" fields used by the next accumulation term
func (o *Domain) BackupFields() {
	f := o.F
	for _, c := range o.Msh.Cells {
		if !c.Owned() {
			continue
		}
		n := c.Id
		f.PoroOld[n] = o.poroRef * f.PvMult[n]
		for p := 0; p < NumPhases; p++ {
			f.DensOld[n][p] = f.Dens[n][p]
		}
	}
}
