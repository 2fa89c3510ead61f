// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shp implements shape functions, derivatives and quadrature data
// for the element types used in the gel pad discretisation
package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Ipoint holds the natural coordinates and weight of an integration point
type Ipoint struct {
	R, S, T float64 // natural coordinates
	W       float64 // weight
}

// Shape holds the shape function values and derivatives computed at one
// integration point of one element. Instances are solve-local scratchpads;
// they must not be shared across goroutines.
type Shape struct {

	// constants
	Type   string // "hex8" or "tet4"
	Nverts int    // number of vertices
	Gndim  int    // geometry dimension

	// computed by CalcAtIp
	S    []float64   // [nverts] interpolation functions
	G    [][]float64 // [nverts][3] gradients dS/dx
	DetJ float64     // determinant of Jacobian

	// scratchpad
	dSdR [][]float64 // [nverts][3] derivatives w.r.t natural coordinates
	jac  [][]float64 // [3][3] Jacobian dx/dr
	jinv [][]float64 // [3][3] inverse of Jacobian

	fcn func(S []float64, dSdR [][]float64, r, s, t float64) // shape function evaluator
}

// shapes maps type keys to evaluators and vertex counts
var shapes = map[string]struct {
	nverts int
	fcn    func(S []float64, dSdR [][]float64, r, s, t float64)
	ips    []Ipoint
}{
	"hex8": {8, hex8Fcn, hex8Ips},
	"tet4": {4, tet4Fcn, tet4Ips},
}

// Get returns a new Shape structure for the given cell type
func Get(cellType string) (o *Shape, err error) {
	data, ok := shapes[cellType]
	if !ok {
		return nil, chk.Err("cell type %q is not available in 'shp' database", cellType)
	}
	o = new(Shape)
	o.Type = cellType
	o.Nverts = data.nverts
	o.Gndim = 3
	o.S = make([]float64, o.Nverts)
	o.G = utl.Alloc(o.Nverts, 3)
	o.dSdR = utl.Alloc(o.Nverts, 3)
	o.jac = utl.Alloc(3, 3)
	o.jinv = utl.Alloc(3, 3)
	o.fcn = data.fcn
	return
}

// Ipoints returns the quadrature rule of the given cell type
func Ipoints(cellType string) []Ipoint {
	return shapes[cellType].ips
}

// CalcAtIp computes S, G and DetJ at the given integration point. x is the
// matrix of nodal coordinates [3][nverts]. An error is returned if the
// element is degenerate (DetJ <= 0).
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint) (err error) {

	// interpolation functions and natural derivatives
	o.fcn(o.S, o.dSdR, ip.R, ip.S, ip.T)

	// Jacobian: jac[i][j] = Σ_m x[i][m] * dSdR[m][j]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.jac[i][j] = 0
			for m := 0; m < o.Nverts; m++ {
				o.jac[i][j] += x[i][m] * o.dSdR[m][j]
			}
		}
	}

	// determinant and inverse
	o.DetJ = det33(o.jac)
	if o.DetJ < detTol {
		return chk.Err("%s element is degenerate: det(J) = %g", o.Type, o.DetJ)
	}
	inv33(o.jinv, o.jac, o.DetJ)

	// real gradients: G[m][i] = Σ_j dSdR[m][j] * jinv[j][i]
	for m := 0; m < o.Nverts; m++ {
		for i := 0; i < 3; i++ {
			o.G[m][i] = 0
			for j := 0; j < 3; j++ {
				o.G[m][i] += o.dSdR[m][j] * o.jinv[j][i]
			}
		}
	}
	return
}

// detTol is the smallest acceptable Jacobian determinant
const detTol = 1e-14

func det33(a [][]float64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

func inv33(ai, a [][]float64, det float64) {
	ai[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det
	ai[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det
	ai[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
	ai[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) / det
	ai[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
	ai[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det
	ai[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det
	ai[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det
	ai[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det
}
