// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spm implements a sparse matrix store with a triplet assembly
// buffer and a compressed-row (CSR) representation
package spm

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Triplet holds (i,j,x) triples collected during the scatter-add phase of
// a finite element assembly. Repeated (i,j) pairs accumulate on compaction.
type Triplet struct {
	m, n int       // matrix dimensions
	i, j []int     // row and column indices
	x    []float64 // values
}

// Init initialises the triplet with given dimensions and an estimate of the
// number of non-zeros
func (o *Triplet) Init(m, n, guess int) {
	o.m, o.n = m, n
	o.i = make([]int, 0, guess)
	o.j = make([]int, 0, guess)
	o.x = make([]float64, 0, guess)
}

// Put inserts a component into the triplet
func (o *Triplet) Put(i, j int, x float64) {
	if i < 0 || i >= o.m || j < 0 || j >= o.n {
		chk.Panic("cannot put component (%d,%d) in %d x %d triplet", i, j, o.m, o.n)
	}
	o.i = append(o.i, i)
	o.j = append(o.j, j)
	o.x = append(o.x, x)
}

// Start resets the triplet for a new assembly, keeping allocated space
func (o *Triplet) Start() {
	o.i = o.i[:0]
	o.j = o.j[:0]
	o.x = o.x[:0]
}

// Len returns the number of components recorded so far
func (o *Triplet) Len() int { return len(o.x) }

// Size returns the matrix dimensions
func (o *Triplet) Size() (m, n int) { return o.m, o.n }

// ToMatrix compacts the triplet into a compressed-row matrix. Duplicate
// (i,j) entries are accumulated. The contributions to each entry are sorted
// by value before summation, hence the result does not depend on the order
// in which components were Put (e.g. on the element traversal order).
func (o *Triplet) ToMatrix() (a *RowMatrix) {

	// group values per (row, col)
	rows := make([]map[int][]float64, o.m)
	for k, i := range o.i {
		if rows[i] == nil {
			rows[i] = make(map[int][]float64)
		}
		rows[i][o.j[k]] = append(rows[i][o.j[k]], o.x[k])
	}

	// count non-zeros
	nnz := 0
	for _, r := range rows {
		nnz += len(r)
	}

	// compact with sorted column indices
	a = new(RowMatrix)
	a.m, a.n = o.m, o.n
	a.p = make([]int, o.m+1)
	a.j = make([]int, 0, nnz)
	a.x = make([]float64, 0, nnz)
	for i, r := range rows {
		a.p[i] = len(a.x)
		cols := make([]int, 0, len(r))
		for j := range r {
			cols = append(cols, j)
		}
		sort.Ints(cols)
		for _, j := range cols {
			vals := r[j]
			sort.Float64s(vals)
			sum := 0.0
			for _, v := range vals {
				sum += v
			}
			a.j = append(a.j, j)
			a.x = append(a.x, sum)
		}
	}
	a.p[o.m] = len(a.x)
	return
}
