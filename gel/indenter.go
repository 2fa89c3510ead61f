// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gel

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/gelsense/gelfem/msh"
)

// Indenter holds the contact footprint data of one rigid object, derived
// once from its surface mesh: which top-surface nodes lie under the object
// and the per-node penetration offset of a non-flat underside. An Indenter
// is immutable and shared across solves.
type Indenter struct {
	Name string // stable identity; cache key component

	// derived footprint, indexed like the sensor's top node grid
	hit [][]bool    // node is covered by the object
	off [][]float64 // underside height above the lowest point [mm]
}

// LoadIndenter reads an object's surface mesh from an STL file and derives
// its footprint over this sensor
func (o *Sensor) LoadIndenter(name, stlPath string) (obj *Indenter, err error) {
	srf, err := msh.ReadSTL(stlPath)
	if err != nil {
		return nil, err
	}
	return o.NewIndenter(name, srf)
}

// NewIndenter derives the footprint of an already-loaded surface. The
// object is positioned by its xy coordinates; its underside is projected
// onto the pad's top node grid along -z.
func (o *Sensor) NewIndenter(name string, srf *msh.Surface) (obj *Indenter, err error) {
	nr, nc := len(o.grid), len(o.grid[0])
	obj = &Indenter{Name: name}
	obj.hit = make([][]bool, nr)
	obj.off = make([][]float64, nr)
	hmin := math.Inf(1)
	any := false
	for i := 0; i < nr; i++ {
		obj.hit[i] = make([]bool, nc)
		obj.off[i] = make([]float64, nc)
		for j := 0; j < nc; j++ {
			v := o.Msh.Verts[o.grid[i][j]]
			h, in := srf.HeightAt(v.C[0], v.C[1])
			if !in {
				continue
			}
			obj.hit[i][j] = true
			obj.off[i][j] = h
			hmin = math.Min(hmin, h)
			any = true
		}
	}
	if !any {
		return nil, chk.Err("object %q does not cover any sensor node; check its xy placement", name)
	}
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if obj.hit[i][j] {
				obj.off[i][j] -= hmin
			}
		}
	}
	return
}

// footprint prescribes the indentation of all covered nodes whose local
// penetration depth - offset is positive
func (obj *Indenter) footprint(grid [][]int, depth float64, set func(vert int, uz float64)) (n int) {
	for i := range obj.hit {
		for j := range obj.hit[i] {
			if !obj.hit[i][j] {
				continue
			}
			d := depth - obj.off[i][j]
			if d > 0 {
				set(grid[i][j], -d)
				n++
			}
		}
	}
	return
}
