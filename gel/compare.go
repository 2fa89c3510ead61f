// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gel

import (
	"github.com/gelsense/gelfem/fld"
)

// Compare returns the mean squared error between a simulated sweep and
// captured sensor data over all matching (object, depth) pairs. External
// optimizers use this as the calibration objective; pairs present in only
// one of the two sets are skipped.
func Compare(sim, captured Result) float64 {
	total, count := 0.0, 0
	for name, simDepths := range sim {
		capDepths, ok := captured[name]
		if !ok {
			continue
		}
		for dkey, s := range simDepths {
			c, ok := capDepths[dkey]
			if !ok {
				continue
			}
			total += fld.MSD(s.Depth.Z, c.Depth.Z)
			total += (fld.MSD(s.Markers.U, c.Markers.U) + fld.MSD(s.Markers.V, c.Markers.V)) / 2.0
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
