// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import "github.com/cpmech/gosl/io"

// ParamsError indicates non-physical material parameters. It is raised
// before assembly so invalid samples never reach the solver.
type ParamsError struct {
	E, Nu  float64
	Reason string
}

func (e *ParamsError) Error() string {
	return io.Sf("invalid material parameters (E=%g, nu=%g): %s", e.E, e.Nu, e.Reason)
}
