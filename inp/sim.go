// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gofvm/mdl/cnd"
	"github.com/cpmech/gofvm/mdl/fld"
	"github.com/cpmech/gofvm/mdl/sld"
	"github.com/cpmech/gofvm/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc      string `json:"desc"`      // description of simulation
	Matfile   string `json:"matfile"`   // materials file path
	Mshfile   string `json:"mshfile"`   // mesh file path
	DirOut    string `json:"dirout"`    // directory for output; e.g. /tmp/gofvm
	LiqMat    string `json:"liq"`       // name of liquid (wetting phase candidate) material
	GasMat    string `json:"gas"`       // name of gas (non-wetting phase candidate) material
	CndMat    string `json:"cnd"`       // name of relative permeability material
	SldMat    string `json:"sld"`       // name of rock material
	ShowR     bool   `json:"showr"`     // show residuals
	WriteSmat bool   `json:"writesmat"` // writes Kb and fb files for debugging the global system
}

// SolverData holds nonlinear solver data
type SolverData struct {
	NmaxIt  int     `json:"nmaxit"`  // number of max iterations
	Atol    float64 `json:"atol"`    // absolute tolerance on δy
	Rtol    float64 `json:"rtol"`    // relative tolerance on δy
	FbTol   float64 `json:"fbtol"`   // tolerance for convergence on fb
	FbMin   float64 `json:"fbmin"`   // minimum value of fb
	DvgCtrl bool    `json:"dvgctrl"` // use divergence control
	NdvgMax int     `json:"ndvgmax"` // max number of continued divergence
	DtMin   float64 `json:"dtmin"`   // minimum time step after divergence control halving
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.NmaxIt = 20
	o.Atol = 1e-6
	o.Rtol = 1e-6
	o.FbTol = 1e-8
	o.FbMin = 1e-14
	o.DvgCtrl = true
	o.NdvgMax = 20
	o.DtMin = 1e-8
}

// TipData holds the regime thresholds and unit/symmetry factors of the
// fracture-tip asymptote. The rate factor and scale encode the 2-D symmetry
// and unit-system assumptions of the injection rate and are deliberately
// configuration, not constants.
type TipData struct {
	ViscMin       float64 `json:"viscmin"`       // viscosity threshold for the viscosity-dominated regime
	TipDistFactor float64 `json:"tipdistfactor"` // multiples of the mesh size the tip must travel before overriding
	RateFactor    float64 `json:"ratefactor"`    // symmetry multiplier on the injection rate
	RateScale     float64 `json:"ratescale"`     // unit-conversion divisor on the injection rate
	GammaM0       float64 `json:"gammam0"`       // similarity constant of the asymptote
}

// SetDefault sets default values
func (o *TipData) SetDefault() {
	o.ViscMin = 2.0e-3
	o.TipDistFactor = 1.0
	o.RateFactor = 2.0
	o.RateScale = 1.0e3
	o.GammaM0 = 0.616
}

// FlowData holds finite-volume flow options
type FlowData struct {
	MeanPermCoeff float64 `json:"meanpermcoeff"` // harmonic/arithmetic blending coefficient c ∈ [0,1]
	AperRule      string  `json:"aperrule"`      // aperture integration rule: "fe", "exact" or "be"
	Tip           TipData `json:"tip"`           // tip-override configuration
}

// SetDefault sets default values
func (o *FlowData) SetDefault() {
	o.MeanPermCoeff = 1.0
	o.AperRule = "exact"
	o.Tip.SetDefault()
}

// SourceFlux holds an injection (or production) source term
type SourceFlux struct {
	Cells []int   `json:"cells"` // target cell ids
	Phase int     `json:"phase"` // phase receiving the source
	Value float64 `json:"value"` // rate; negative means injection
}

// FixedBc holds a fixed-value essential condition on one cell
type FixedBc struct {
	Cell  int     `json:"cell"`  // cell id
	Value float64 `json:"value"` // prescribed value
}

// IniData holds initial values
type IniData struct {
	Pres float64 `json:"pres"` // initial pressure
	Satw float64 `json:"satw"` // initial wetting-phase saturation
	Aper float64 `json:"aper"` // initial fracture aperture
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf float64 `json:"tf"` // final time
	Dt float64 `json:"dt"` // time step size
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data    Data          `json:"data"`
	Solver  SolverData    `json:"solver"`
	Flow    FlowData      `json:"flow"`
	Sources []*SourceFlux `json:"sources"`
	FixPres []*FixedBc    `json:"fixpres"`
	FixSat  []*FixedBc    `json:"fixsat"`
	Ini     IniData       `json:"ini"`
	Control TimeControl   `json:"control"`

	// derived
	Key    string     // simulation key; e.g. mysim01.sim => mysim01
	DirOut string     // directory to save results
	Mdb    *MatDb     // materials database
	Msh    *msh.Mesh  // the finite-volume mesh
	Flu    *fld.Model // two-phase fluid model, ordered (liq, gas)
	Cnd    cnd.Model  // relative permeability model
	Sld    *sld.Model // rock model
	CndPhs []string   // ordered phase names reported by the relperm material
}

// ReadSim reads all simulation data from a .sim JSON file
//  Note: this function panics on invalid input since a broken problem
//  definition cannot be recovered from
func ReadSim(simfilepath string, createDirOut bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b := io.ReadFile(simfilepath)

	// set default values
	o.Solver.SetDefault()
	o.Flow.SetDefault()

	// decode
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	o.Key = io.FnKey(fn)

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gofvm/" + o.Key
	}
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// materials
	o.Mdb, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		chk.Panic("ReadSim: cannot read materials file:\n%v", err)
	}

	// mesh
	o.Msh, err = msh.ReadMsh(dir, o.Data.Mshfile)
	if err != nil {
		chk.Panic("ReadSim: cannot read mesh file:\n%v", err)
	}

	// fluid model
	liq, gas := o.Mdb.Get(o.Data.LiqMat), o.Mdb.Get(o.Data.GasMat)
	if liq == nil || gas == nil {
		chk.Panic("ReadSim: materials %q and %q must exist in %q", o.Data.LiqMat, o.Data.GasMat, o.Data.Matfile)
	}
	if liq.Fld == nil || gas.Fld == nil {
		chk.Panic("ReadSim: materials %q and %q must be fluids", o.Data.LiqMat, o.Data.GasMat)
	}
	o.Flu = new(fld.Model)
	o.Flu.Init(
		[]string{liq.Fld.Name, gas.Fld.Name},
		[]dbf.Params{liq.Fld.GetPrms(false), gas.Fld.GetPrms(false)},
	)

	// relative permeability model
	cm := o.Mdb.Get(o.Data.CndMat)
	if cm == nil || cm.Cnd == nil {
		chk.Panic("ReadSim: relative permeability material %q must exist in %q", o.Data.CndMat, o.Data.Matfile)
	}
	o.Cnd = cm.Cnd
	o.CndPhs = cm.Phases

	// rock model
	sm := o.Mdb.Get(o.Data.SldMat)
	if sm == nil || sm.Sld == nil {
		chk.Panic("ReadSim: rock material %q must exist in %q", o.Data.SldMat, o.Data.Matfile)
	}
	o.Sld = sm.Sld

	// flow options
	if o.Flow.MeanPermCoeff < 0 || o.Flow.MeanPermCoeff > 1 {
		chk.Panic("ReadSim: mean permeability coefficient must be in [0,1]. c=%g is invalid", o.Flow.MeanPermCoeff)
	}

	// time control
	if o.Control.Tf < 1e-14 {
		o.Control.Tf = 1
	}
	if o.Control.Dt < 1e-14 {
		o.Control.Dt = o.Control.Tf
	}
	return &o
}

// InjRate returns the injection rate magnitude used by the tip asymptote;
// zero when no source is present
func (o *Simulation) InjRate() float64 {
	for _, src := range o.Sources {
		if src.Value != 0 {
			return src.Value
		}
	}
	return 0
}
