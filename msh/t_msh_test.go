// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_msh01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("msh01. structured grid generation")

	m, err := GenGrid(2.0, 1.0, 0.5, 2, 2, 1)
	if err != nil {
		tst.Errorf("GenGrid failed: %v\n", err)
		return
	}
	chk.IntAssert(len(m.Verts), 3*3*2)
	chk.IntAssert(len(m.Cells), 2*2*1)
	chk.Float64(tst, "xmax", 1e-15, m.Xmax, 2.0)
	chk.Float64(tst, "ymax", 1e-15, m.Ymax, 1.0)
	chk.Float64(tst, "zmax", 1e-15, m.Zmax, 0.5)

	// adjacency is symmetric
	for i := range m.Verts {
		for _, j := range m.Neighbors(i) {
			back := m.Neighbors(j)
			k := sort.SearchInts(back, i)
			if k == len(back) || back[k] != i {
				tst.Errorf("adjacency is not symmetric: %d->%d\n", i, j)
				return
			}
		}
	}

	// corner vertex: the 7 other vertices of its single cell
	chk.IntAssert(len(m.Neighbors(0)), 7)
}

func Test_msh02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("msh02. top surface grid")

	m, err := GenGrid(3.0, 2.0, 1.0, 3, 2, 2)
	if err != nil {
		tst.Errorf("GenGrid failed: %v\n", err)
		return
	}
	grid, err := m.SurfGrid()
	if err != nil {
		tst.Errorf("SurfGrid failed: %v\n", err)
		return
	}
	chk.IntAssert(len(grid), 4)
	chk.IntAssert(len(grid[0]), 3)
	for i := range grid {
		for j := range grid[i] {
			v := m.Verts[grid[i][j]]
			chk.Float64(tst, "z", 1e-15, v.C[2], 1.0)
			chk.Float64(tst, "x", 1e-15, v.C[0], float64(i))
			chk.Float64(tst, "y", 1e-15, v.C[1], float64(j))
		}
	}
	chk.IntAssert(len(m.BaseVerts()), 4*3)
}

func Test_msh03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("msh03. JSON mesh reading and asset errors")

	// write and read a valid mesh
	dir := tst.TempDir()
	good := filepath.Join(dir, "pad.json")
	data := `{
		"ndiv": [1, 1, 1],
		"verts": [
			{"i":0, "c":[0,0,0]}, {"i":1, "c":[1,0,0]}, {"i":2, "c":[1,1,0]}, {"i":3, "c":[0,1,0]},
			{"i":4, "c":[0,0,1]}, {"i":5, "c":[1,0,1]}, {"i":6, "c":[1,1,1]}, {"i":7, "c":[0,1,1]}
		],
		"cells": [{"i":0, "y":"hex8", "v":[0,1,2,3,4,5,6,7]}]
	}`
	if err := os.WriteFile(good, []byte(data), 0o644); err != nil {
		tst.Fatalf("cannot write mesh file: %v\n", err)
	}
	m, err := Read(good)
	if err != nil {
		tst.Errorf("Read failed: %v\n", err)
		return
	}
	chk.IntAssert(len(m.Verts), 8)
	chk.IntAssert(len(m.Neighbors(0)), 7)

	// missing file
	_, err = Read(filepath.Join(dir, "nope.json"))
	var aerr *AssetError
	if !errors.As(err, &aerr) {
		tst.Errorf("missing file must give AssetError; got %v\n", err)
		return
	}

	// malformed JSON
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{not json"), 0o644)
	if _, err = Read(bad); !errors.As(err, &aerr) {
		tst.Errorf("malformed file must give AssetError; got %v\n", err)
		return
	}

	// invalid vertex reference
	var m2 Mesh
	m2.Verts = []*Vert{{Id: 0, C: []float64{0, 0, 0}}}
	m2.Cells = []*Cell{{Id: 0, Type: "hex8", Verts: []int{0, 1, 2, 3, 4, 5, 6, 7}}}
	if err = m2.Build(); err == nil {
		tst.Errorf("invalid vertex reference must be rejected\n")
		return
	}

	// coincident vertices
	var m3 Mesh
	m3.Verts = []*Vert{
		{Id: 0, C: []float64{0, 0, 0}},
		{Id: 1, C: []float64{1, 0, 0}},
		{Id: 2, C: []float64{1, 0, 1e-12}},
	}
	m3.Cells = []*Cell{{Id: 0, Type: "tet4", Verts: []int{0, 1, 2}}}
	if err = m3.Build(); err == nil {
		tst.Errorf("coincident vertices must be rejected\n")
	}
}

func Test_msh04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("msh04. ASCII STL reading and height queries")

	dir := tst.TempDir()
	fn := filepath.Join(dir, "wedge.stl")
	data := `solid wedge
  facet normal 0 0 -1
    outer loop
      vertex 0 0 2
      vertex 4 0 2
      vertex 0 4 2
    endloop
  endfacet
  facet normal 0 0 -1
    outer loop
      vertex 4 0 2
      vertex 4 4 3
      vertex 0 4 2
    endloop
  endfacet
endsolid wedge
`
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		tst.Fatalf("cannot write STL file: %v\n", err)
	}
	srf, err := ReadSTL(fn)
	if err != nil {
		tst.Errorf("ReadSTL failed: %v\n", err)
		return
	}
	chk.IntAssert(len(srf.Tris), 2)

	z, hit := srf.HeightAt(1, 1)
	if !hit {
		tst.Errorf("point (1,1) must be covered\n")
		return
	}
	chk.Float64(tst, "z@(1,1)", 1e-15, z, 2.0)

	if _, hit = srf.HeightAt(10, 10); hit {
		tst.Errorf("point (10,10) must not be covered\n")
		return
	}

	// missing file
	var aerr *AssetError
	if _, err = ReadSTL(filepath.Join(dir, "nope.stl")); !errors.As(err, &aerr) {
		tst.Errorf("missing STL must give AssetError; got %v\n", err)
	}

	// truncated binary file
	bad := filepath.Join(dir, "trunc.stl")
	os.WriteFile(bad, make([]byte, 100), 0o644)
	if _, err = ReadSTL(bad); !errors.As(err, &aerr) {
		tst.Errorf("truncated STL must give AssetError; got %v\n", err)
	}
}
