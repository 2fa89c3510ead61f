// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gel drives the simulation pipeline of one tactile sensor: pad
// mesh, stiffness assembly, contact solves, field extraction and result
// caching
package gel

import (
	"encoding/json"
	"os"
)

// Config holds the sensor model constants. Output grid shapes are fixed
// configuration, never derived from input data, so simulated fields are
// directly comparable across runs and against captured sensor data.
type Config struct {

	// pad identity and geometry [mm]
	PadName string  `json:"padname"` // stable identity; cache key component
	Lx      float64 `json:"lx"`      // pad size along x
	Ly      float64 `json:"ly"`      // pad size along y
	Lz      float64 `json:"lz"`      // pad thickness
	Nx      int     `json:"nx"`      // divisions along x
	Ny      int     `json:"ny"`      // divisions along y
	Nz      int     `json:"nz"`      // divisions along z

	// optional precomputed mesh asset; overrides the generated grid
	MeshFile string `json:"meshfile"`

	// output shapes
	FieldNrow  int `json:"fieldnrow"`  // depth field rows
	FieldNcol  int `json:"fieldncol"`  // depth field columns
	MarkerNrow int `json:"markernrow"` // marker grid rows
	MarkerNcol int `json:"markerncol"` // marker grid columns

	// post-processing
	SmoothWeight float64 `json:"smoothweight"` // nodal Laplacian smoothing weight
	BlurPasses   int     `json:"blurpasses"`   // pixel-domain blur passes

	// solver convergence control
	CgTol   float64 `json:"cgtol"`   // relative residual tolerance
	CgMaxIt int     `json:"cgmaxit"` // iteration cap

	// caching; empty directory disables the cache
	CacheDir string `json:"cachedir"`
}

// SetDefaults fills zero values with the reference sensor constants
func (o *Config) SetDefaults() {
	if o.PadName == "" {
		o.PadName = "g1-ws"
	}
	if o.Lx <= 0 {
		o.Lx = 19.0
	}
	if o.Ly <= 0 {
		o.Ly = 10.0
	}
	if o.Lz <= 0 {
		o.Lz = 4.0
	}
	if o.Nx < 1 {
		o.Nx = 19
	}
	if o.Ny < 1 {
		o.Ny = 10
	}
	if o.Nz < 1 {
		o.Nz = 4
	}
	if o.FieldNrow < 2 {
		o.FieldNrow = 700
	}
	if o.FieldNcol < 2 {
		o.FieldNcol = 400
	}
	if o.MarkerNrow < 2 {
		o.MarkerNrow = 20
	}
	if o.MarkerNcol < 2 {
		o.MarkerNcol = 11
	}
	if o.SmoothWeight <= 0 {
		o.SmoothWeight = 0.15
	}
	if o.BlurPasses == 0 {
		o.BlurPasses = 2 // set negative to disable blurring
	}
	if o.CgTol <= 0 {
		o.CgTol = 1e-8
	}
	if o.CgMaxIt < 1 {
		o.CgMaxIt = 4000
	}
}

// ReadConfig reads a sensor configuration from a JSON file
func ReadConfig(fn string) (o *Config, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return
	}
	o = new(Config)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, err
	}
	o.SetDefaults()
	return
}
