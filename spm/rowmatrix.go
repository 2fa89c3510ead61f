// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spm

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RowMatrix holds a sparse matrix in compressed-row (CSR) form. Within each
// row, column indices are unique and sorted ascending.
type RowMatrix struct {
	m, n int       // dimensions
	p    []int     // row pointers [m+1]
	j    []int     // column indices [nnz]
	x    []float64 // values [nnz]
}

// Size returns the matrix dimensions
func (o *RowMatrix) Size() (m, n int) { return o.m, o.n }

// Nnz returns the number of stored non-zeros
func (o *RowMatrix) Nnz() int { return len(o.x) }

// Get returns the (i,j) component, or zero if it is not stored. Lookup is a
// binary search within row i.
func (o *RowMatrix) Get(i, j int) float64 {
	if i < 0 || i >= o.m || j < 0 || j >= o.n {
		chk.Panic("cannot get component (%d,%d) of %d x %d matrix", i, j, o.m, o.n)
	}
	lo, hi := o.p[i], o.p[i+1]
	k := lo + sort.SearchInts(o.j[lo:hi], j)
	if k < hi && o.j[k] == j {
		return o.x[k]
	}
	return 0
}

// Row returns the column indices and values of row i, without copying
func (o *RowMatrix) Row(i int) (cols []int, vals []float64) {
	return o.j[o.p[i]:o.p[i+1]], o.x[o.p[i]:o.p[i+1]]
}

// GetDiag collects the diagonal into d. d must have length min(m,n).
func (o *RowMatrix) GetDiag(d []float64) {
	for i := range d {
		d[i] = o.Get(i, i)
	}
}

// Str returns a string representation of the matrix (small matrices only)
func (o *RowMatrix) Str() (l string) {
	for i := 0; i < o.m; i++ {
		for j := 0; j < o.n; j++ {
			l += io.Sf("%13g ", o.Get(i, j))
		}
		l += "\n"
	}
	return
}

// MatVecMul returns y := α * a * x
func MatVecMul(y []float64, α float64, a *RowMatrix, x []float64) {
	for i := range y {
		y[i] = 0
	}
	MatVecMulAdd(y, α, a, x)
}

// MatVecMulAdd returns y += α * a * x  (len(y)==m, len(x)==n)
func MatVecMulAdd(y []float64, α float64, a *RowMatrix, x []float64) {
	if len(y) != a.m || len(x) != a.n {
		chk.Panic("matrix-vector multiplication needs len(y)=%d and len(x)=%d; got %d and %d", a.m, a.n, len(y), len(x))
	}
	for i := 0; i < a.m; i++ {
		s := 0.0
		for k := a.p[i]; k < a.p[i+1]; k++ {
			s += a.x[k] * x[a.j[k]]
		}
		y[i] += α * s
	}
}
