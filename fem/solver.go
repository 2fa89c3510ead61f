// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/gelsense/gelfem/spm"
)

// Solver computes equilibrium nodal displacements for a given stiffness
// matrix and boundary condition set. The reduced (free-free) system is
// solved with a Jacobi-preconditioned conjugate gradient method.
type Solver struct {
	Tol   float64 // relative residual tolerance
	MaxIt int     // iteration cap
}

// NewSolver returns a solver with default convergence control
func NewSolver() *Solver {
	return &Solver{Tol: 1e-8, MaxIt: 4000}
}

// Solve partitions the dofs into constrained and free sets, statically
// condenses the prescribed displacements
//
//	K_ff u_f = -K_fc u_c
//
// and returns the full displacement vector (one 3D displacement per
// vertex). Same inputs produce the same result within the solver
// tolerance.
func (o *Solver) Solve(k *spm.RowMatrix, ebc *EssentialBcs) (u []float64, err error) {

	// partition
	ny, _ := k.Size()
	con := bitset.New(uint(ny))
	for _, eq := range ebc.Eqs() {
		con.Set(uint(eq))
	}
	nf := ny - ebc.Count()
	full2free := make([]int, ny)
	free := make([]int, 0, nf)
	for eq := 0; eq < ny; eq++ {
		if con.Test(uint(eq)) {
			full2free[eq] = -1
			continue
		}
		full2free[eq] = len(free)
		free = append(free, eq)
	}

	// reduce: Kff and condensed rhs
	var kft spm.Triplet
	kft.Init(nf, nf, k.Nnz())
	bf := make([]float64, nf)
	for i, eq := range free {
		cols, vals := k.Row(eq)
		for idx, j := range cols {
			if con.Test(uint(j)) {
				if ubar, _ := ebc.Prescribed(j); ubar != 0 {
					bf[i] -= vals[idx] * ubar
				}
				continue
			}
			kft.Put(i, full2free[j], vals[idx])
		}
	}
	kff := kft.ToMatrix()

	// Jacobi preconditioner; a non-positive pivot means the reduced matrix
	// cannot be positive definite
	diag := make([]float64, nf)
	kff.GetDiag(diag)
	for i, d := range diag {
		if d <= 0 {
			return nil, &IllConditionedError{free[i], d, "non-positive diagonal entry in reduced stiffness matrix"}
		}
	}

	// solve with conjugate gradients
	uf := make([]float64, nf)
	if err = o.cg(kff, bf, diag, uf); err != nil {
		return nil, err
	}

	// scatter back
	u = make([]float64, ny)
	for eq := 0; eq < ny; eq++ {
		if con.Test(uint(eq)) {
			u[eq], _ = ebc.Prescribed(eq)
		} else {
			u[eq] = uf[full2free[eq]]
		}
	}
	return
}

// cg runs the preconditioned conjugate gradient iteration, overwriting x
// with the solution of a x = b
func (o *Solver) cg(a *spm.RowMatrix, b, diag, x []float64) (err error) {

	// trivial system: no load, no deformation
	bnorm := vecNorm(b)
	if bnorm == 0 {
		return
	}

	// x0 = 0  =>  r0 = b
	n := len(b)
	r := make([]float64, n)
	z := make([]float64, n)
	p := make([]float64, n)
	ap := make([]float64, n)
	copy(r, b)
	for i := 0; i < n; i++ {
		z[i] = r[i] / diag[i]
	}
	copy(p, z)
	rz := vecDot(r, z)

	res := 1.0
	for it := 0; it < o.MaxIt; it++ {
		spm.MatVecMul(ap, 1, a, p)
		pap := vecDot(p, ap)
		if pap <= 0 {
			return &IllConditionedError{-1, pap, "conjugate gradient found a non-positive curvature direction"}
		}
		α := rz / pap
		for i := 0; i < n; i++ {
			x[i] += α * p[i]
			r[i] -= α * ap[i]
		}
		res = vecNorm(r) / bnorm
		if res <= o.Tol {
			return
		}
		for i := 0; i < n; i++ {
			z[i] = r[i] / diag[i]
		}
		rznew := vecDot(r, z)
		β := rznew / rz
		for i := 0; i < n; i++ {
			p[i] = z[i] + β*p[i]
		}
		rz = rznew
	}
	return &ConvergenceError{o.MaxIt, res, o.Tol}
}

func vecDot(u, v []float64) (res float64) {
	for i := range u {
		res += u[i] * v[i]
	}
	return
}

func vecNorm(u []float64) float64 {
	return math.Sqrt(vecDot(u, u))
}
