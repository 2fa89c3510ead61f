// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gel

import (
	"github.com/cpmech/gosl/chk"
	"github.com/rs/zerolog"

	"github.com/gelsense/gelfem/cache"
	"github.com/gelsense/gelfem/fem"
	"github.com/gelsense/gelfem/logger"
	"github.com/gelsense/gelfem/msh"
	"github.com/gelsense/gelfem/spm"
)

// Sensor holds the shared, immutable state of one simulated tactile
// sensor: the pad mesh, the topology-only smoothing operator and the
// result cache. Once built, a Sensor is safe for concurrent solves.
type Sensor struct {
	Cfg *Config
	Msh *msh.Mesh

	// derived, immutable after NewSensor
	grid [][]int        // top-surface node ids [nx+1][ny+1]
	base []int          // bottom-surface node ids (fully constrained)
	smop *spm.RowMatrix // smoothing operator (parameter independent)

	cch *cache.Cache // nil when caching is disabled
	log zerolog.Logger
}

// NewSensor builds a sensor from its configuration. The pad mesh is read
// from Cfg.MeshFile when set, otherwise generated as a structured grid.
// A cache failure only disables caching; it never fails the sensor.
func NewSensor(cfg *Config) (o *Sensor, err error) {
	cfg.SetDefaults()
	o = new(Sensor)
	o.Cfg = cfg
	o.log = logger.Logger().With().Str("pad", cfg.PadName).Logger()

	// mesh
	if cfg.MeshFile != "" {
		o.Msh, err = msh.Read(cfg.MeshFile)
	} else {
		o.Msh, err = msh.GenGrid(cfg.Lx, cfg.Ly, cfg.Lz, cfg.Nx, cfg.Ny, cfg.Nz)
	}
	if err != nil {
		return nil, err
	}

	// surface grids
	o.grid, err = o.Msh.SurfGrid()
	if err != nil {
		return nil, err
	}
	o.base = o.Msh.BaseVerts()
	if len(o.grid) < cfg.MarkerNrow || len(o.grid[0]) < cfg.MarkerNcol {
		return nil, chk.Err("top node grid %dx%d cannot host the %dx%d marker grid",
			len(o.grid), len(o.grid[0]), cfg.MarkerNrow, cfg.MarkerNcol)
	}

	// smoothing operator: topology only, shared across parameter sweeps
	o.smop, err = fem.AssembleSmoothing(o.Msh, cfg.SmoothWeight)
	if err != nil {
		return nil, err
	}

	// cache
	if cfg.CacheDir != "" {
		o.cch, err = cache.New(cfg.CacheDir)
		if err != nil {
			o.log.Warn().Err(err).Msg("caching disabled")
			o.cch, err = nil, nil
		}
	}

	o.log.Info().
		Int("nverts", len(o.Msh.Verts)).
		Int("ncells", len(o.Msh.Cells)).
		Bool("cache", o.cch != nil).
		Msg("sensor ready")
	return
}
