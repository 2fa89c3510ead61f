// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/io"

// MeshError indicates degenerate topology detected during assembly
// (e.g. a zero-volume cell). It is unrecoverable: the input geometry is bad.
type MeshError struct {
	Cell   int
	Reason string
}

func (e *MeshError) Error() string {
	return io.Sf("cell %d: %s", e.Cell, e.Reason)
}

// IllConditionedError indicates that the reduced system is not positive
// definite, typically because of non-physical material parameters. The
// calibration layer may reject the parameter sample and continue.
type IllConditionedError struct {
	Eq     int     // offending equation, or -1 if found during iteration
	Pivot  float64 // offending pivot/curvature value
	Reason string
}

func (e *IllConditionedError) Error() string {
	if e.Eq >= 0 {
		return io.Sf("ill-conditioned system at equation %d (pivot=%g): %s", e.Eq, e.Pivot, e.Reason)
	}
	return io.Sf("ill-conditioned system (value=%g): %s", e.Pivot, e.Reason)
}

// ConvergenceError indicates that the iterative solve hit its iteration cap
// before reaching the tolerance. A non-converged result never leaves the
// solver.
type ConvergenceError struct {
	MaxIt int
	Res   float64 // last relative residual
	Tol   float64
}

func (e *ConvergenceError) Error() string {
	return io.Sf("conjugate gradient did not converge within %d iterations: residual=%g > tol=%g", e.MaxIt, e.Res, e.Tol)
}
