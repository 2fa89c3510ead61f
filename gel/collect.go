// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gel

import (
	"runtime"
	"sync"

	"github.com/cpmech/gosl/io"
	"golang.org/x/sync/errgroup"

	"github.com/gelsense/gelfem/cache"
)

// Result maps object name => depth key (e.g. "0.2mm") => simulated fields
type Result map[string]map[string]*cache.Entry

// DepthKey formats a depth [mm] the way calibration data sets label it
func DepthKey(depth float64) string {
	return io.Sf("%gmm", depth)
}

// CollectAll runs the (object, depth) sweep that a calibration pass
// consumes. Solves for distinct pairs are independent (the mesh and the
// smoothing operator are read-only and the cache is append-only), so they
// run in parallel, bounded by the number of CPUs.
func (o *Sensor) CollectAll(objs []*Indenter, E, nu float64, depths []float64) (res Result, err error) {
	res = make(Result, len(objs))
	for _, obj := range objs {
		res[obj.Name] = make(map[string]*cache.Entry, len(depths))
	}
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, obj := range objs {
		for _, depth := range depths {
			obj, depth := obj, depth
			g.Go(func() error {
				df, mf, err := o.Solve(obj, E, nu, depth)
				if err != nil {
					return err
				}
				mu.Lock()
				res[obj.Name][DepthKey(depth)] = &cache.Entry{Depth: df, Markers: mf}
				mu.Unlock()
				return nil
			})
		}
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return
}
