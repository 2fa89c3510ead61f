// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// hex8 natural coordinates of vertices
//
//	        4________________7
//	      ,'|              ,'|
//	    ,'  |            ,'  |
//	  ,'    |          ,'    |
//	5'______________6'       |
//	|       |       |        |
//	|       |       |        |
//	|       0_______|________3
//	|     ,'        |      ,'
//	|   ,'          |    ,'
//	| ,'            |  ,'
//	1'______________2'
var hex8rst = [8][3]float64{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// hex8Fcn computes the trilinear interpolation functions and derivatives
func hex8Fcn(S []float64, dSdR [][]float64, r, s, t float64) {
	for m := 0; m < 8; m++ {
		rm, sm, tm := hex8rst[m][0], hex8rst[m][1], hex8rst[m][2]
		S[m] = (1.0 + r*rm) * (1.0 + s*sm) * (1.0 + t*tm) / 8.0
		dSdR[m][0] = rm * (1.0 + s*sm) * (1.0 + t*tm) / 8.0
		dSdR[m][1] = sm * (1.0 + r*rm) * (1.0 + t*tm) / 8.0
		dSdR[m][2] = tm * (1.0 + r*rm) * (1.0 + s*sm) / 8.0
	}
}

// hex8Ips is the 2x2x2 Gauss rule
var hex8Ips = func() []Ipoint {
	g := 1.0 / math.Sqrt(3.0)
	ips := make([]Ipoint, 0, 8)
	for _, t := range []float64{-g, g} {
		for _, s := range []float64{-g, g} {
			for _, r := range []float64{-g, g} {
				ips = append(ips, Ipoint{r, s, t, 1.0})
			}
		}
	}
	return ips
}()
