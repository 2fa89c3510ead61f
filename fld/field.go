// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fld projects nodal solve results onto the fixed-shape output
// grids of the sensor model: the dense penetration-depth field and the
// sparse marker-displacement field
package fld

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DepthField is the dense per-pixel penetration-depth readout of the
// sensor. Values are in length units (mm), non-negative (positive =
// pressed in). The shape is a fixed constant of the sensor model.
type DepthField struct {
	Nrow, Ncol int
	Z          *mat.Dense // [Nrow][Ncol]
}

// MarkerField is the sparse grid of in-plane marker displacements (mm)
type MarkerField struct {
	Nrow, Ncol int
	U, V       *mat.Dense // [Nrow][Ncol] tangential displacement components
}

// SurfaceGrid carries the top-surface nodal values of one solve, arranged
// as the structured node grid of the pad (row index follows x, column
// index follows y; node spacing is uniform).
type SurfaceGrid struct {
	Nrow, Ncol int
	W          *mat.Dense // normal penetration, clamped non-negative
	U, V       *mat.Dense // tangential displacement
}

// NewSurfaceGrid allocates a zeroed surface grid
func NewSurfaceGrid(nrow, ncol int) *SurfaceGrid {
	return &SurfaceGrid{
		Nrow: nrow, Ncol: ncol,
		W: mat.NewDense(nrow, ncol, nil),
		U: mat.NewDense(nrow, ncol, nil),
		V: mat.NewDense(nrow, ncol, nil),
	}
}

// ExtractDepth resamples the penetration values of the node grid onto the
// dense pixel grid with bilinear interpolation, then applies blurPasses of
// a 3x3 box blur, the pixel-domain counterpart of the nodal smoothing
// operator, matching the resolution characteristics of the sensor.
func ExtractDepth(g *SurfaceGrid, nrow, ncol, blurPasses int) (f *DepthField, err error) {
	if nrow < 2 || ncol < 2 {
		return nil, chk.Err("depth field shape must be at least 2x2; got %dx%d", nrow, ncol)
	}
	f = &DepthField{Nrow: nrow, Ncol: ncol, Z: mat.NewDense(nrow, ncol, nil)}
	for r := 0; r < nrow; r++ {
		// fractional node-grid index; the node grid is uniform so this is
		// equivalent to interpolating in physical coordinates
		u := float64(r) / float64(nrow-1) * float64(g.Nrow-1)
		for c := 0; c < ncol; c++ {
			v := float64(c) / float64(ncol-1) * float64(g.Ncol-1)
			f.Z.Set(r, c, math.Max(0, bilinear(g.W, u, v)))
		}
	}
	for i := 0; i < blurPasses; i++ {
		boxBlur(f.Z)
	}
	return
}

// ExtractMarkers samples the tangential displacement at the fixed marker
// locations, a regular sub-sampling of the node grid
func ExtractMarkers(g *SurfaceGrid, nrow, ncol int) (f *MarkerField, err error) {
	if nrow < 2 || ncol < 2 || nrow > g.Nrow || ncol > g.Ncol {
		return nil, chk.Err("marker grid shape %dx%d is not a sub-sampling of the %dx%d node grid", nrow, ncol, g.Nrow, g.Ncol)
	}
	f = &MarkerField{
		Nrow: nrow, Ncol: ncol,
		U: mat.NewDense(nrow, ncol, nil),
		V: mat.NewDense(nrow, ncol, nil),
	}
	for r := 0; r < nrow; r++ {
		i := int(math.Round(float64(r) / float64(nrow-1) * float64(g.Nrow-1)))
		for c := 0; c < ncol; c++ {
			j := int(math.Round(float64(c) / float64(ncol-1) * float64(g.Ncol-1)))
			f.U.Set(r, c, g.U.At(i, j))
			f.V.Set(r, c, g.V.At(i, j))
		}
	}
	return
}

// MSD returns the mean squared difference between two grids of equal shape
func MSD(a, b *mat.Dense) float64 {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != rb || ca != cb {
		chk.Panic("grids have different shapes: %dx%d and %dx%d", ra, ca, rb, cb)
	}
	d := mat.NewDense(ra, ca, nil)
	d.Sub(a, b)
	v := d.RawMatrix().Data
	return floats.Dot(v, v) / float64(len(v))
}

// bilinear interpolates grid z at fractional index (u, v)
func bilinear(z *mat.Dense, u, v float64) float64 {
	nr, nc := z.Dims()
	i0 := int(math.Floor(u))
	j0 := int(math.Floor(v))
	if i0 > nr-2 {
		i0 = nr - 2
	}
	if j0 > nc-2 {
		j0 = nc - 2
	}
	fu := u - float64(i0)
	fv := v - float64(j0)
	return z.At(i0, j0)*(1-fu)*(1-fv) +
		z.At(i0+1, j0)*fu*(1-fv) +
		z.At(i0, j0+1)*(1-fu)*fv +
		z.At(i0+1, j0+1)*fu*fv
}

// boxBlur applies one 3x3 box blur pass in place (edge-clamped)
func boxBlur(z *mat.Dense) {
	nr, nc := z.Dims()
	src := mat.DenseCopyOf(z)
	at := func(i, j int) float64 {
		if i < 0 {
			i = 0
		}
		if i > nr-1 {
			i = nr - 1
		}
		if j < 0 {
			j = 0
		}
		if j > nc-1 {
			j = nc - 1
		}
		return src.At(i, j)
	}
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			s := 0.0
			for di := -1; di <= 1; di++ {
				for dj := -1; dj <= 1; dj++ {
					s += at(i+di, j+dj)
				}
			}
			z.Set(i, j, s/9.0)
		}
	}
}
