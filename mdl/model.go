// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdl implements material models for the gel pad based on
// continuum mechanics
package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for material models. A model turns material
// parameters into the constitutive matrix used to build the local stiffness
// block of each element; the element geometry part (B matrices) lives in the
// assembler, keeping the constitutive relation pluggable.
type Model interface {
	Init(prms []*dbf.P) error  // initialises model and validates parameters
	GetPrms() []*dbf.P         // gets (an example of) parameters
	CalcD(D [][]float64) error // computes the constitutive matrix D [6][6]
}

// New returns a new material model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mdl' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}
