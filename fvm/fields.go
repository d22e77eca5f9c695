// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

// Fields holds the borrowed per-cell views used by the kernels during one
// time step. Bind resolves every view from the store exactly once per step;
// nothing here survives a region resize, so Bind must be called again after
// fracture growth.
type Fields struct {

	// primary unknowns and within-step deltas
	Pres  []float64   // pressure at step start
	Dpres []float64   // accumulated pressure delta within the step
	Sat   [][]float64 // [cell][phase] saturation at step start
	Dsat  [][]float64 // [cell][phase] accumulated saturation delta

	// fluid properties
	Dens    [][]float64 // [cell][phase] density
	DdensDp [][]float64 // [cell][phase] ∂density/∂pressure
	Visc    [][]float64 // [cell][phase] viscosity
	DviscDp [][]float64 // [cell][phase] ∂viscosity/∂pressure
	Mob     [][]float64 // [cell][phase] mobility = density・relperm/viscosity
	DmobDp  [][]float64 // [cell][phase] ∂mobility/∂pressure
	DmobDs  [][]float64 // [cell][phase] ∂mobility/∂(phase-0 saturation)

	// rock
	PvMult    []float64 // pore volume multiplier
	DpvMultDp []float64 // ∂pvMult/∂pressure

	// backup ("old") snapshots for the accumulation term
	PoroOld []float64   // old porosity
	DensOld [][]float64 // [cell][phase] old density

	// fracture
	Aper  []float64 // current aperture
	Aper0 []float64 // previous-step aperture
}

// RegisterFields registers every field needed by the flow kernels
func RegisterFields(sto *Store) {
	for _, name := range []string{"pres", "dpres", "pvmult", "dpvmultdp", "poroold", "aper", "aper0"} {
		sto.RegSca(name)
	}
	for _, name := range []string{"sat", "dsat", "dens", "ddensdp", "visc", "dviscdp", "mob", "dmobdp", "dmobds", "densold"} {
		sto.RegArr(name, NumPhases)
	}
}

// Bind resolves all views from the store
func (o *Fields) Bind(sto *Store) {
	o.Pres = sto.Sca("pres")
	o.Dpres = sto.Sca("dpres")
	o.Sat = sto.Arr("sat")
	o.Dsat = sto.Arr("dsat")
	o.Dens = sto.Arr("dens")
	o.DdensDp = sto.Arr("ddensdp")
	o.Visc = sto.Arr("visc")
	o.DviscDp = sto.Arr("dviscdp")
	o.Mob = sto.Arr("mob")
	o.DmobDp = sto.Arr("dmobdp")
	o.DmobDs = sto.Arr("dmobds")
	o.PvMult = sto.Sca("pvmult")
	o.DpvMultDp = sto.Sca("dpvmultdp")
	o.PoroOld = sto.Sca("poroold")
	o.DensOld = sto.Arr("densold")
	o.Aper = sto.Sca("aper")
	o.Aper0 = sto.Sca("aper0")
}
