// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// tet4Fcn computes the linear tetrahedron interpolation functions and
// (constant) derivatives
func tet4Fcn(S []float64, dSdR [][]float64, r, s, t float64) {
	S[0] = 1.0 - r - s - t
	S[1] = r
	S[2] = s
	S[3] = t
	dSdR[0][0], dSdR[0][1], dSdR[0][2] = -1, -1, -1
	dSdR[1][0], dSdR[1][1], dSdR[1][2] = 1, 0, 0
	dSdR[2][0], dSdR[2][1], dSdR[2][2] = 0, 1, 0
	dSdR[3][0], dSdR[3][1], dSdR[3][2] = 0, 0, 1
}

// tet4Ips is the single-point rule; exact for the constant-strain element
var tet4Ips = []Ipoint{{0.25, 0.25, 0.25, 1.0 / 6.0}}
