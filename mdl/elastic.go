// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// LinElast implements the isotropic linear-elastic model in full 3D.
// Parameters are the Young modulus E and the Poisson ratio ν.
type LinElast struct {

	// parameters
	E  float64 // Young modulus
	Nu float64 // Poisson ratio

	// derived
	lam float64 // Lamé λ
	mu  float64 // Lamé μ (shear modulus G)
}

// add model to database
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises and validates the model parameters. Non-physical values
// (E <= 0, ν <= 0 or ν >= 0.5) are rejected here, before any assembly, with
// a ParamsError so that the calibration layer can treat the sample as an
// infeasible point.
func (o *LinElast) Init(prms []*dbf.P) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		}
	}
	if o.E <= 0 {
		return &ParamsError{o.E, o.Nu, "E must be positive"}
	}
	if o.Nu <= 0 || o.Nu >= 0.5 {
		return &ParamsError{o.E, o.Nu, "nu must be within (0, 0.5)"}
	}
	o.lam = o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	o.mu = o.E / (2.0 * (1.0 + o.Nu))
	return
}

// GetPrms gets (an example of) parameters
func (o *LinElast) GetPrms() []*dbf.P {
	return []*dbf.P{
		{N: "E", V: 0.2},
		{N: "nu", V: 0.45},
	}
}

// CalcD computes the 6x6 constitutive matrix relating engineering strains
// {εxx, εyy, εzz, γxy, γyz, γzx} to stresses
func (o *LinElast) CalcD(D [][]float64) (err error) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			D[i][j] = 0
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			D[i][j] = o.lam
		}
		D[i][i] = o.lam + 2.0*o.mu
		D[3+i][3+i] = o.mu
	}
	return
}
