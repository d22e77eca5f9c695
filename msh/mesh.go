// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the finite-volume mesh: cells, two-point stencils,
// fracture junctions and the face/node geometry needed near the fracture tip
package msh

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Cell holds finite-volume cell data
type Cell struct {
	Id        int     `json:"id"`        // cell id
	Vol       float64 `json:"vol"`       // volume
	GravCoef  float64 `json:"gravcoef"`  // gravity-depth coefficient
	Part      int     `json:"part"`      // partition (processor) id
	GhostRank int     `json:"ghostrank"` // rank owning this ghost; -1 means owned locally
	Frac      bool    `json:"frac"`      // cell belongs to the fracture element region
}

// Owned tells whether this cell is owned by the local process
func (o Cell) Owned() bool { return o.GhostRank < 0 }

// Stencil is an ordinary (matrix) connection between cells with geometric
// transmissibility weights. Immutable within a time step.
type Stencil struct {
	Cells   []int     `json:"cells"`   // connected cell ids
	Weights []float64 `json:"weights"` // geometric transmissibility weights
}

// Junction is a fracture connector where cells meet at an edge
type Junction struct {
	Cells   []int     `json:"cells"`   // connected fracture cell ids
	Weights []float64 `json:"weights"` // geometric weights
	EdgeLen float64   `json:"edgelen"` // length of the connecting edge
}

// Mesh holds the finite-volume mesh
type Mesh struct {

	// input
	Ndim      int         `json:"ndim"`      // space dimension
	Cells     []*Cell     `json:"cells"`     // all cells
	Stencils  []*Stencil  `json:"stencils"`  // matrix connections
	Junctions []*Junction `json:"junctions"` // fracture connectors

	// input: fracture geometry
	Elem2Faces [][]int     `json:"elem2faces"` // fracture cell id => the two bounding face ids
	FaceNorms  [][]float64 `json:"facenorms"`  // face id => unit normal
	Face2Nodes [][]int     `json:"face2nodes"` // face id => node ids
	NodeDisp   [][]float64 `json:"nodedisp"`   // node id => displacement vector

	// derived
	FnamePath string // complete filename path of mesh file
	FracCells []int  // ids of fracture cells
}

// CalcDerived computes derived quantities and checks consistency
func (o *Mesh) CalcDerived() (err error) {
	o.FracCells = nil
	for i, c := range o.Cells {
		if c.Id != i {
			return chk.Err("cell ids must be sequential. %d != %d", c.Id, i)
		}
		if c.Vol <= 0 {
			return chk.Err("cell %d has non-positive volume = %g", c.Id, c.Vol)
		}
		if c.Frac {
			o.FracCells = append(o.FracCells, c.Id)
		}
	}
	for i, s := range o.Stencils {
		if len(s.Cells) < 2 {
			return chk.Err("stencil %d must connect at least two cells", i)
		}
		if len(s.Cells) != len(s.Weights) {
			return chk.Err("stencil %d: number of weights (%d) must equal number of cells (%d)", i, len(s.Weights), len(s.Cells))
		}
		for _, n := range s.Cells {
			if n < 0 || n >= len(o.Cells) {
				return chk.Err("stencil %d references inexistent cell %d", i, n)
			}
		}
	}
	for i, j := range o.Junctions {
		if len(j.Cells) < 2 {
			return chk.Err("junction %d must connect at least two cells", i)
		}
		if len(j.Cells) != len(j.Weights) {
			return chk.Err("junction %d: number of weights (%d) must equal number of cells (%d)", i, len(j.Weights), len(j.Cells))
		}
		for _, n := range j.Cells {
			if n < 0 || n >= len(o.Cells) {
				return chk.Err("junction %d references inexistent cell %d", i, n)
			}
			if !o.Cells[n].Frac {
				return chk.Err("junction %d references cell %d which is not in the fracture region", i, n)
			}
		}
	}
	for _, n := range o.FracCells {
		if o.Elem2Faces != nil {
			if n >= len(o.Elem2Faces) || len(o.Elem2Faces[n]) != 2 {
				return chk.Err("fracture cell %d must map to exactly two bounding faces", n)
			}
		}
	}
	return
}

// ReadMsh reads a mesh from a .msh JSON file
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// read file
	o = new(Mesh)
	o.FnamePath = filepath.Join(dir, fn)
	b := io.ReadFile(o.FnamePath)

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, err
	}

	// derived
	err = o.CalcDerived()
	if err != nil {
		return nil, err
	}
	return
}
