// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem implements the deformable-contact engine: global stiffness
// assembly, boundary conditions and the static equilibrium solver
package fem

import (
	"github.com/cpmech/gosl/utl"

	"github.com/gelsense/gelfem/mdl"
	"github.com/gelsense/gelfem/msh"
	"github.com/gelsense/gelfem/shp"
	"github.com/gelsense/gelfem/spm"
)

// Domain holds the data of one static equilibrium solve: the (shared,
// read-only) mesh, the material model, and the assembled stiffness matrix.
// A Domain is solve-local; concurrent solves each allocate their own.
type Domain struct {

	// input
	Msh *msh.Mesh // shared mesh
	Mdl mdl.Model // material model

	// dimensions
	Ny int // total number of dofs = 3 * nverts

	// assembled system
	Kb spm.Triplet    // assembly buffer
	K  *spm.RowMatrix // global stiffness matrix (compressed-row)

	// scratchpad
	shapes map[string]*shp.Shape // shape structures per cell type
	dmat   [][]float64           // [6][6] constitutive matrix
}

// NewDomain returns a new domain for one solve against the given mesh
func NewDomain(m *msh.Mesh, model mdl.Model) (o *Domain) {
	o = new(Domain)
	o.Msh = m
	o.Mdl = model
	o.Ny = 3 * len(m.Verts)
	o.shapes = make(map[string]*shp.Shape)
	o.dmat = utl.Alloc(6, 6)
	return
}

// AssembleK builds the global stiffness matrix from the linear-elasticity
// constitutive relation. For each cell, the local stiffness Ke = Σip Bᵀ D B
// detJ w is scattered into the triplet at the cell's equation numbers.
// Degenerate cells raise a MeshError.
func (o *Domain) AssembleK() (err error) {

	// constitutive matrix (constant across cells for linear elasticity)
	if err = o.Mdl.CalcD(o.dmat); err != nil {
		return
	}

	// estimate non-zeros: 24x24 block per hex8 cell
	o.Kb.Init(o.Ny, o.Ny, len(o.Msh.Cells)*24*24)

	// local arrays sized for the largest cell type
	var (
		x  = utl.Alloc(3, 8)  // nodal coordinates [3][nverts]
		b  = utl.Alloc(6, 24) // strain-displacement matrix
		db = utl.Alloc(6, 24) // D times B
		ke = utl.Alloc(24, 24)
		eq = make([]int, 24) // assembly map
	)

	// element loop
	for _, cell := range o.Msh.Cells {

		// shape structure
		sha, ok := o.shapes[cell.Type]
		if !ok {
			sha, err = shp.Get(cell.Type)
			if err != nil {
				return &MeshError{cell.Id, err.Error()}
			}
			o.shapes[cell.Type] = sha
		}
		nv := sha.Nverts
		nu := 3 * nv

		// gather coordinates and equation numbers
		for m, v := range cell.Verts {
			for i := 0; i < 3; i++ {
				x[i][m] = o.Msh.Verts[v].C[i]
				eq[i+m*3] = i + v*3
			}
		}

		// clear local stiffness
		for r := 0; r < nu; r++ {
			for c := 0; c < nu; c++ {
				ke[r][c] = 0
			}
		}

		// integration loop
		for _, ip := range shp.Ipoints(cell.Type) {
			if err = sha.CalcAtIp(x, ip); err != nil {
				return &MeshError{cell.Id, err.Error()}
			}
			coef := sha.DetJ * ip.W
			calcB(b, sha.G, nv)

			// db = D * b
			for r := 0; r < 6; r++ {
				for c := 0; c < nu; c++ {
					db[r][c] = 0
					for k := 0; k < 6; k++ {
						db[r][c] += o.dmat[r][k] * b[k][c]
					}
				}
			}

			// ke += coef * bᵀ * db
			for r := 0; r < nu; r++ {
				for c := 0; c < nu; c++ {
					s := 0.0
					for k := 0; k < 6; k++ {
						s += b[k][r] * db[k][c]
					}
					ke[r][c] += coef * s
				}
			}
		}

		// scatter-add into global triplet
		for r := 0; r < nu; r++ {
			for c := 0; c < nu; c++ {
				o.Kb.Put(eq[r], eq[c], ke[r][c])
			}
		}
	}

	// compress
	o.K = o.Kb.ToMatrix()
	return
}

// calcB fills the strain-displacement matrix for engineering strains
// {εxx, εyy, εzz, γxy, γyz, γzx} from the real gradients G [nverts][3]
func calcB(b [][]float64, g [][]float64, nverts int) {
	nu := 3 * nverts
	for r := 0; r < 6; r++ {
		for c := 0; c < nu; c++ {
			b[r][c] = 0
		}
	}
	for m := 0; m < nverts; m++ {
		c := 3 * m
		b[0][c] = g[m][0]
		b[1][c+1] = g[m][1]
		b[2][c+2] = g[m][2]
		b[3][c], b[3][c+1] = g[m][1], g[m][0]
		b[4][c+1], b[4][c+2] = g[m][2], g[m][1]
		b[5][c], b[5][c+2] = g[m][2], g[m][0]
	}
}
