// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Store holds the named per-cell arrays of one mesh region. Scalar fields
// have one value per cell; array fields have ncomp values per cell (e.g.
// one per phase). Fracture growth may resize the region between steps;
// Resize preserves the values of existing cells.
type Store struct {
	ncells int
	nsca   map[string][]float64
	narr   map[string][][]float64
	ncomp  map[string]int
}

// NewStore creates a store for ncells cells
func NewStore(ncells int) (o *Store) {
	o = new(Store)
	o.ncells = ncells
	o.nsca = make(map[string][]float64)
	o.narr = make(map[string][][]float64)
	o.ncomp = make(map[string]int)
	return
}

// Ncells returns the current number of cells
func (o *Store) Ncells() int { return o.ncells }

// RegSca registers a scalar field
func (o *Store) RegSca(name string) {
	if _, ok := o.nsca[name]; ok {
		chk.Panic("scalar field %q is already registered", name)
	}
	o.nsca[name] = make([]float64, o.ncells)
}

// RegArr registers an array field with ncomp components per cell
func (o *Store) RegArr(name string, ncomp int) {
	if _, ok := o.narr[name]; ok {
		chk.Panic("array field %q is already registered", name)
	}
	o.narr[name] = la.MatAlloc(o.ncells, ncomp)
	o.ncomp[name] = ncomp
}

// Sca returns a scalar field. Missing fields indicate a setup error and
// cause a panic.
func (o *Store) Sca(name string) []float64 {
	v, ok := o.nsca[name]
	if !ok {
		chk.Panic("scalar field %q is not registered", name)
	}
	return v
}

// Arr returns an array field. Missing fields indicate a setup error and
// cause a panic.
func (o *Store) Arr(name string) [][]float64 {
	v, ok := o.narr[name]
	if !ok {
		chk.Panic("array field %q is not registered", name)
	}
	return v
}

// Resize grows (or shrinks) all fields to ncells cells, preserving the
// values of cells that remain
func (o *Store) Resize(ncells int) {
	if ncells == o.ncells {
		return
	}
	n := o.ncells
	if ncells < n {
		n = ncells
	}
	for name, v := range o.nsca {
		w := make([]float64, ncells)
		copy(w, v[:n])
		o.nsca[name] = w
	}
	for name, v := range o.narr {
		w := la.MatAlloc(ncells, o.ncomp[name])
		for i := 0; i < n; i++ {
			copy(w[i], v[i])
		}
		o.narr[name] = w
	}
	o.ncells = ncells
}
