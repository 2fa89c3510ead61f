// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestExtractDepthConstant(t *testing.T) {
	g := NewSurfaceGrid(4, 3)
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			g.W.Set(i, j, 0.25)
		}
	}

	f, err := ExtractDepth(g, 10, 8, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, f.Nrow)
	assert.Equal(t, 8, f.Ncol)

	// a constant field survives resampling and blurring unchanged
	for i := 0; i < f.Nrow; i++ {
		for j := 0; j < f.Ncol; j++ {
			assert.InDelta(t, 0.25, f.Z.At(i, j), 1e-14)
		}
	}
}

func TestExtractDepthInterpolation(t *testing.T) {
	// linear ramp in the row direction
	g := NewSurfaceGrid(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			g.W.Set(i, j, float64(i))
		}
	}

	f, err := ExtractDepth(g, 5, 5, 0)
	require.NoError(t, err)

	// node values appear at the matching pixels, midpoints are averaged
	assert.InDelta(t, 0.0, f.Z.At(0, 0), 1e-14)
	assert.InDelta(t, 1.0, f.Z.At(2, 2), 1e-14)
	assert.InDelta(t, 2.0, f.Z.At(4, 4), 1e-14)
	assert.InDelta(t, 0.5, f.Z.At(1, 0), 1e-14)
}

func TestExtractDepthClampsNegative(t *testing.T) {
	g := NewSurfaceGrid(2, 2)
	g.W.Set(0, 0, -0.5)
	g.W.Set(1, 1, 1.0)

	f, err := ExtractDepth(g, 6, 6, 0)
	require.NoError(t, err)
	for i := 0; i < f.Nrow; i++ {
		for j := 0; j < f.Ncol; j++ {
			assert.GreaterOrEqual(t, f.Z.At(i, j), 0.0)
		}
	}
	assert.Equal(t, 0.0, f.Z.At(0, 0))
	assert.InDelta(t, 1.0, f.Z.At(5, 5), 1e-14)
}

func TestExtractDepthBadShape(t *testing.T) {
	g := NewSurfaceGrid(3, 3)
	_, err := ExtractDepth(g, 1, 8, 0)
	assert.Error(t, err)
	_, err = ExtractDepth(g, 8, 0, 0)
	assert.Error(t, err)
}

func TestExtractMarkers(t *testing.T) {
	g := NewSurfaceGrid(5, 5)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			g.U.Set(i, j, float64(10*i+j))
			g.V.Set(i, j, -float64(10*i+j))
		}
	}

	// 3x3 markers over a 5x5 node grid: every other node
	f, err := ExtractMarkers(g, 3, 3)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := float64(10*(2*r) + 2*c)
			assert.Equal(t, want, f.U.At(r, c))
			assert.Equal(t, -want, f.V.At(r, c))
		}
	}

	// identity sub-sampling
	f, err = ExtractMarkers(g, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, g.U.At(3, 4), f.U.At(3, 4))

	// marker grid denser than the node grid
	_, err = ExtractMarkers(g, 6, 5)
	assert.Error(t, err)
}

func TestMSD(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	assert.Equal(t, 0.0, MSD(a, b))

	c := mat.NewDense(2, 2, []float64{2, 2, 3, 2})
	// differences: {1, 0, 0, -2} => (1+4)/4
	assert.InDelta(t, 1.25, MSD(a, c), 1e-14)

	d := mat.NewDense(2, 3, nil)
	assert.Panics(t, func() { MSD(a, d) })
}
