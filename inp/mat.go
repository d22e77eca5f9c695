// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gofvm/mdl/cnd"
	"github.com/cpmech/gofvm/mdl/fld"
	"github.com/cpmech/gofvm/mdl/sld"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Name   string     `json:"name"`   // name of material
	Type   string     `json:"type"`   // type of material: "fld", "cnd" or "sld"
	Model  string     `json:"model"`  // fld: canonical phase name; cnd: model name
	Phases []string   `json:"phases"` // cnd: ordered phase names covered by the model
	Prms   dbf.Params `json:"prms"`   // model parameters

	// derived
	Fld *fld.Phase // pointer to fluid phase data
	Cnd cnd.Model  // pointer to relative permeability model
	Sld *sld.Model // pointer to rock model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Flds map[string]*Material // subset with fluid phases
	Cnds map[string]*Material // subset with relative permeability models
	Slds map[string]*Material // subset with rock models
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// subsets
	mdb.Flds = make(map[string]*Material)
	mdb.Cnds = make(map[string]*Material)
	mdb.Slds = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "fld":
			mdb.Flds[m.Name] = m
		case "cnd":
			mdb.Cnds[m.Name] = m
		case "sld":
			mdb.Slds[m.Name] = m
		default:
			err = chk.Err("material type %q is incorrect; options are \"fld\", \"cnd\" and \"sld\"", m.Type)
			return
		}
	}

	// alloc/init: fluids
	for _, m := range mdb.Flds {
		m.Fld = new(fld.Phase)
		m.Fld.Init(m.Model, m.Prms)
	}

	// alloc/init: relative permeability models
	for _, m := range mdb.Cnds {
		m.Cnd, err = cnd.New(m.Model)
		if err != nil {
			return
		}
		err = m.Cnd.Init(m.Prms)
		if err != nil {
			return
		}
		if len(m.Phases) == 0 {
			err = chk.Err("relative permeability material %q must list its ordered phase names", m.Name)
			return
		}
	}

	// alloc/init: rocks
	for _, m := range mdb.Slds {
		m.Sld = new(sld.Model)
		m.Sld.Init(m.Prms)
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}
