// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// GenGrid generates a structured hex8 mesh of the gel pad block
// [0,lx] x [0,ly] x [0,lz] with nx, ny, nz divisions. The top surface
// (z = lz) is the contactable sensing face; the bottom is the glued face.
func GenGrid(lx, ly, lz float64, nx, ny, nz int) (o *Mesh, err error) {

	// check
	if lx <= 0 || ly <= 0 || lz <= 0 {
		return nil, chk.Err("pad dimensions must be positive; got lx=%g ly=%g lz=%g", lx, ly, lz)
	}
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, chk.Err("number of divisions must be at least 1; got nx=%d ny=%d nz=%d", nx, ny, nz)
	}

	// vertices
	xx := utl.LinSpace(0, lx, nx+1)
	yy := utl.LinSpace(0, ly, ny+1)
	zz := utl.LinSpace(0, lz, nz+1)
	o = new(Mesh)
	o.Ndiv = []int{nx, ny, nz}
	o.Verts = make([]*Vert, (nx+1)*(ny+1)*(nz+1))
	id := func(ix, iy, iz int) int { return ix + iy*(nx+1) + iz*(nx+1)*(ny+1) }
	for iz := 0; iz <= nz; iz++ {
		for iy := 0; iy <= ny; iy++ {
			for ix := 0; ix <= nx; ix++ {
				v := id(ix, iy, iz)
				o.Verts[v] = &Vert{Id: v, C: []float64{xx[ix], yy[iy], zz[iz]}}
			}
		}
	}

	// cells
	o.Cells = make([]*Cell, 0, nx*ny*nz)
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				c := &Cell{
					Id:   len(o.Cells),
					Type: "hex8",
					Verts: []int{
						id(ix, iy, iz), id(ix+1, iy, iz), id(ix+1, iy+1, iz), id(ix, iy+1, iz),
						id(ix, iy, iz+1), id(ix+1, iy, iz+1), id(ix+1, iy+1, iz+1), id(ix, iy+1, iz+1),
					},
				}
				o.Cells = append(o.Cells, c)
			}
		}
	}

	// derived data
	err = o.Build()
	return
}
