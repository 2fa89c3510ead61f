// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_spm01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("spm01. triplet to CSR with duplicates")

	//      [ 2  0  1 ]
	//  a = [ 0  3  0 ]   with a[0][2] and a[1][1] assembled in two parts
	//      [ 4  0  5 ]
	var t Triplet
	t.Init(3, 3, 8)
	t.Put(0, 0, 2)
	t.Put(2, 2, 5)
	t.Put(0, 2, 0.5)
	t.Put(1, 1, 1)
	t.Put(2, 0, 4)
	t.Put(1, 1, 2)
	t.Put(0, 2, 0.5)
	a := t.ToMatrix()

	m, n := a.Size()
	chk.IntAssert(m, 3)
	chk.IntAssert(n, 3)
	chk.IntAssert(a.Nnz(), 5)
	chk.Ints(tst, "row pointers", a.p, []int{0, 2, 3, 5})
	chk.Ints(tst, "column indices", a.j, []int{0, 2, 1, 0, 2})
	chk.Array(tst, "values", 1e-17, a.x, []float64{2, 1, 3, 4, 5})

	chk.Float64(tst, "a00", 1e-17, a.Get(0, 0), 2)
	chk.Float64(tst, "a01", 1e-17, a.Get(0, 1), 0)
	chk.Float64(tst, "a02", 1e-17, a.Get(0, 2), 1)
	chk.Float64(tst, "a11", 1e-17, a.Get(1, 1), 3)
	chk.Float64(tst, "a20", 1e-17, a.Get(2, 0), 4)

	// matrix-vector product
	x := []float64{1, 2, 3}
	y := make([]float64, 3)
	MatVecMul(y, 1, a, x)
	chk.Array(tst, "a*x", 1e-15, y, []float64{5, 6, 19})
	MatVecMulAdd(y, 2, a, x)
	chk.Array(tst, "y + 2*a*x", 1e-15, y, []float64{15, 18, 57})
}

func Test_spm02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("spm02. assembly is order-independent")

	type triple struct {
		i, j int
		x    float64
	}
	triples := []triple{
		{0, 0, 0.1}, {0, 0, 0.3}, {0, 0, 1e-17}, {1, 2, -2.5},
		{2, 1, 4}, {1, 2, 0.7}, {3, 3, 1.0 / 3.0}, {3, 0, 1e8},
		{3, 0, -1e8}, {0, 3, 5}, {2, 2, 0.2}, {1, 2, 1e-3},
	}
	perms := [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		{5, 0, 11, 7, 2, 9, 4, 1, 10, 6, 3, 8},
	}

	var ref *RowMatrix
	for ip, perm := range perms {
		var t Triplet
		t.Init(4, 4, len(triples))
		for _, k := range perm {
			t.Put(triples[k].i, triples[k].j, triples[k].x)
		}
		a := t.ToMatrix()
		if ip == 0 {
			ref = a
			continue
		}
		chk.Ints(tst, "row pointers", a.p, ref.p)
		chk.Ints(tst, "column indices", a.j, ref.j)
		for k := range a.x {
			if a.x[k] != ref.x[k] {
				tst.Errorf("value %d is not bit-identical: %v != %v\n", k, a.x[k], ref.x[k])
				return
			}
		}
	}
}

func Test_spm03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("spm03. triplet restart")

	var t Triplet
	t.Init(2, 2, 4)
	t.Put(0, 0, 1)
	t.Put(1, 1, 2)
	chk.IntAssert(t.Len(), 2)
	t.Start()
	chk.IntAssert(t.Len(), 0)
	t.Put(0, 1, 3)
	a := t.ToMatrix()
	chk.IntAssert(a.Nnz(), 1)
	chk.Float64(tst, "a01", 1e-17, a.Get(0, 1), 3)
}
