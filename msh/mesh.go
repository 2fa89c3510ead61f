// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msh implements the mesh model of the gel pad: vertices, cells,
// derived adjacency, and readers for mesh and indenter geometry files
package msh

import (
	"encoding/json"
	"math"
	"os"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"i"` // id
	Tag int       `json:"t"` // tag
	C   []float64 `json:"c"` // coordinates [3]
}

// Cell holds cell data
type Cell struct {
	Id    int    `json:"i"` // id
	Tag   int    `json:"t"` // tag
	Type  string `json:"y"` // type; e.g. "hex8", "tet4"
	Verts []int  `json:"v"` // vertex ids
}

// Mesh holds the gel pad mesh. After Build, the mesh is immutable and safe
// for concurrent read access; all solves against it share this structure.
type Mesh struct {

	// input
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells
	Ndiv  []int   `json:"ndiv"`  // [3] divisions along x,y,z for structured grids; empty otherwise

	// derived
	Xmin, Xmax float64 // limits
	Ymin, Ymax float64
	Zmin, Zmax float64
	adj        [][]int // [nverts] sorted neighbour ids
}

// coincidentTol is the distance below which two vertices are considered
// duplicates of each other
const coincidentTol = 1e-8

// Read reads a mesh from a JSON file and builds the derived data.
// Missing or malformed files yield an AssetError.
func Read(fn string) (o *Mesh, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, &AssetError{fn, "cannot read mesh file", err}
	}
	o = new(Mesh)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, &AssetError{fn, "cannot decode mesh file", err}
	}
	if err = o.Build(); err != nil {
		return nil, &AssetError{fn, "mesh is invalid", err}
	}
	return
}

// Build computes the derived data: limits and adjacency. It checks vertex
// references and rejects coincident vertices.
func (o *Mesh) Build() (err error) {

	// check
	nv := len(o.Verts)
	if nv < 1 || len(o.Cells) < 1 {
		return chk.Err("mesh must have at least one vertex and one cell; got %d and %d", nv, len(o.Cells))
	}
	for _, c := range o.Cells {
		for _, v := range c.Verts {
			if v < 0 || v >= nv {
				return chk.Err("cell %d references invalid vertex %d (nverts=%d)", c.Id, v, nv)
			}
		}
	}

	// limits
	o.Xmin, o.Ymin, o.Zmin = math.Inf(1), math.Inf(1), math.Inf(1)
	o.Xmax, o.Ymax, o.Zmax = math.Inf(-1), math.Inf(-1), math.Inf(-1)
	for _, v := range o.Verts {
		if len(v.C) != 3 {
			return chk.Err("vertex %d must have 3 coordinates; got %d", v.Id, len(v.C))
		}
		o.Xmin, o.Xmax = math.Min(o.Xmin, v.C[0]), math.Max(o.Xmax, v.C[0])
		o.Ymin, o.Ymax = math.Min(o.Ymin, v.C[1]), math.Max(o.Ymax, v.C[1])
		o.Zmin, o.Zmax = math.Min(o.Zmin, v.C[2]), math.Max(o.Zmax, v.C[2])
	}

	// coincident vertices (grid hashing keeps this O(nverts))
	buckets := make(map[[3]int64][]int)
	for i, v := range o.Verts {
		key := [3]int64{
			int64(math.Floor(v.C[0] / coincidentTol)),
			int64(math.Floor(v.C[1] / coincidentTol)),
			int64(math.Floor(v.C[2] / coincidentTol)),
		}
		for _, j := range buckets[key] {
			w := o.Verts[j]
			d := math.Abs(v.C[0]-w.C[0]) + math.Abs(v.C[1]-w.C[1]) + math.Abs(v.C[2]-w.C[2])
			if d < coincidentTol {
				return chk.Err("vertices %d and %d are coincident", w.Id, v.Id)
			}
		}
		buckets[key] = append(buckets[key], i)
	}

	// adjacency: each pairwise edge within a cell
	sets := make([]map[int]bool, nv)
	for i := range sets {
		sets[i] = make(map[int]bool)
	}
	for _, c := range o.Cells {
		for _, a := range c.Verts {
			for _, b := range c.Verts {
				if a != b {
					sets[a][b] = true
				}
			}
		}
	}
	o.adj = make([][]int, nv)
	for i, set := range sets {
		o.adj[i] = make([]int, 0, len(set))
		for j := range set {
			o.adj[i] = append(o.adj[i], j)
		}
		sort.Ints(o.adj[i])
	}
	return
}

// Neighbors returns the sorted ids of vertices sharing a cell with vertex v.
// The slice is owned by the mesh and must not be modified.
func (o *Mesh) Neighbors(v int) []int {
	return o.adj[v]
}

// SurfGrid returns the ids of the top-surface vertices arranged as a
// structured grid [nx+1][ny+1], where row index follows x and column index
// follows y. The mesh must carry Ndiv (structured grids only).
func (o *Mesh) SurfGrid() (ids [][]int, err error) {
	if len(o.Ndiv) != 3 {
		return nil, chk.Err("mesh is not a structured grid (ndiv missing)")
	}
	tol := coincidentTol + (o.Zmax-o.Zmin)*1e-10
	var top []int
	for i, v := range o.Verts {
		if math.Abs(v.C[2]-o.Zmax) < tol {
			top = append(top, i)
		}
	}
	nxn, nyn := o.Ndiv[0]+1, o.Ndiv[1]+1
	if len(top) != nxn*nyn {
		return nil, chk.Err("top surface has %d vertices; expected %d x %d", len(top), nxn, nyn)
	}
	sort.Slice(top, func(a, b int) bool {
		va, vb := o.Verts[top[a]], o.Verts[top[b]]
		if math.Abs(va.C[0]-vb.C[0]) > coincidentTol {
			return va.C[0] < vb.C[0]
		}
		return va.C[1] < vb.C[1]
	})
	ids = make([][]int, nxn)
	for i := 0; i < nxn; i++ {
		ids[i] = top[i*nyn : (i+1)*nyn]
	}
	return
}

// BaseVerts returns the ids of the bottom-surface vertices (the glued face
// of the pad; fully constrained during solves)
func (o *Mesh) BaseVerts() (ids []int) {
	tol := coincidentTol + (o.Zmax-o.Zmin)*1e-10
	for i, v := range o.Verts {
		if math.Abs(v.C[2]-o.Zmin) < tol {
			ids = append(ids, i)
		}
	}
	return
}
