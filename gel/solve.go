// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gel

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/gelsense/gelfem/cache"
	"github.com/gelsense/gelfem/fem"
	"github.com/gelsense/gelfem/fld"
	"github.com/gelsense/gelfem/mdl"
	"github.com/gelsense/gelfem/spm"
)

// Solve computes the sensor readouts for one object pressed to the given
// nominal depth [mm] with material parameters (E, nu). Results are
// memoised in the cache when one is configured; a cache failure degrades
// to recompute-without-caching. Errors carry the object, parameters and
// depth needed to reproduce the solve.
func (o *Sensor) Solve(obj *Indenter, E, nu, depth float64) (df *fld.DepthField, mf *fld.MarkerField, err error) {

	if depth < 0 {
		return nil, nil, chk.Err("indentation depth must be non-negative; got %g", depth)
	}

	// cache lookup
	key := cache.Key(o.Cfg.PadName+"/"+obj.Name, E, nu, depth)
	if o.cch != nil {
		ent, ok, cerr := o.cch.Get(key)
		if cerr != nil {
			o.log.Warn().Err(cerr).Msg("cache lookup failed; recomputing")
		} else if ok {
			return ent.Depth, ent.Markers, nil
		}
	}

	fail := func(cause error) error {
		return fmt.Errorf("cannot solve object %q at depth %gmm (E=%g, nu=%g): %w", obj.Name, depth, E, nu, cause)
	}

	// material model (validates parameters before assembly)
	model, err := mdl.New("lin-elast")
	if err != nil {
		return nil, nil, fail(err)
	}
	if err = model.Init([]*dbf.P{{N: "E", V: E}, {N: "nu", V: nu}}); err != nil {
		return nil, nil, fail(err)
	}

	// assembly (solve-local; the mesh is the only shared state)
	dom := fem.NewDomain(o.Msh, model)
	if err = dom.AssembleK(); err != nil {
		return nil, nil, fail(err)
	}

	// boundary conditions: glued base + indenter footprint
	ebc := fem.NewEssentialBcs()
	ebc.SetFixed(o.base)
	nfoot := obj.footprint(o.grid, depth, ebc.SetUz)

	// equilibrium solve
	sol := fem.NewSolver()
	sol.Tol, sol.MaxIt = o.Cfg.CgTol, o.Cfg.CgMaxIt
	u, err := sol.Solve(dom.K, ebc)
	if err != nil {
		return nil, nil, fail(err)
	}

	// regularise the normal field with the nodal smoothing operator
	nv := len(o.Msh.Verts)
	uz := make([]float64, nv)
	uzs := make([]float64, nv)
	for v := 0; v < nv; v++ {
		uz[v] = u[v*3+2]
	}
	spm.MatVecMul(uzs, 1, o.smop, uz)

	// project onto the output grids
	g := fld.NewSurfaceGrid(len(o.grid), len(o.grid[0]))
	for i := range o.grid {
		for j, v := range o.grid[i] {
			g.W.Set(i, j, math.Max(0, -uzs[v]))
			g.U.Set(i, j, u[v*3])
			g.V.Set(i, j, u[v*3+1])
		}
	}
	if df, err = fld.ExtractDepth(g, o.Cfg.FieldNrow, o.Cfg.FieldNcol, o.Cfg.BlurPasses); err != nil {
		return nil, nil, fail(err)
	}
	if mf, err = fld.ExtractMarkers(g, o.Cfg.MarkerNrow, o.Cfg.MarkerNcol); err != nil {
		return nil, nil, fail(err)
	}

	o.log.Debug().
		Str("object", obj.Name).
		Float64("depth", depth).
		Float64("E", E).
		Float64("nu", nu).
		Int("footprint", nfoot).
		Msg("solved")

	// store; only converged solves reach this point
	if o.cch != nil {
		if cerr := o.cch.Put(key, &cache.Entry{Depth: df, Markers: mf}); cerr != nil {
			o.log.Warn().Err(cerr).Msg("cache store failed")
		}
	}
	return
}
