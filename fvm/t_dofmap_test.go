// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

func Test_dofmap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofmap01. wetting phase resolution")

	dm := NewDofMap([]string{"water", "gas"}, []string{"water", "gas"})
	if dm.Wetting != 0 {
		tst.Errorf("wetting index is incorrect: %d != 0\n", dm.Wetting)
		return
	}
	chk.Ints(tst, "rows", dm.Rows[:], []int{0, 1})

	dm = NewDofMap([]string{"gas", "water"}, []string{"gas", "water"})
	if dm.Wetting != 1 {
		tst.Errorf("wetting index is incorrect: %d != 1\n", dm.Wetting)
		return
	}
	chk.Ints(tst, "rows", dm.Rows[:], []int{1, 0})

	dm = NewDofMap([]string{"oil", "gas"}, []string{"oil", "gas"})
	if dm.Wetting != 0 {
		tst.Errorf("water beats oil beats gas: wetting=%d\n", dm.Wetting)
		return
	}
}

func Test_dofmap02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofmap02. configuration errors are fatal")

	require.Panics(tst, func() {
		NewDofMap([]string{"water", "gas"}, []string{"gas", "water"})
	})
	require.Panics(tst, func() {
		NewDofMap([]string{"water", "brine"}, []string{"water", "brine"})
	})
	require.Panics(tst, func() {
		NewDofMap([]string{"water"}, []string{"water"})
	})
	require.Panics(tst, func() {
		NewDofMap([]string{"water", "water"}, []string{"water", "water"})
	})
}
