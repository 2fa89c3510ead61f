// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/gelsense/gelfem/gel"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	cfgPath, _ := io.ArgToFilename(0, "", ".json", false)
	objPath, _ := io.ArgToFilename(1, "", ".stl", true)
	young := io.ArgToFloat(2, 0.20)
	poisson := io.ArgToFloat(3, 0.45)
	dmax := io.ArgToFloat(4, 0.5)
	ndepths := io.ArgToInt(5, 5)

	// message
	io.PfWhite("\nGelfem -- FEM contact engine for soft tactile sensors\n\n")
	io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"sensor configuration file", "cfgPath", cfgPath,
		"indenter STL file", "objPath", objPath,
		"Young modulus", "young", young,
		"Poisson ratio", "poisson", poisson,
		"maximum indentation depth [mm]", "dmax", dmax,
		"number of depths", "ndepths", ndepths,
	))

	// sensor
	cfg := new(gel.Config)
	if cfgPath != "" {
		var err error
		cfg, err = gel.ReadConfig(cfgPath)
		if err != nil {
			chk.Panic("cannot read configuration:\n%v", err)
		}
	}
	sensor, err := gel.NewSensor(cfg)
	if err != nil {
		chk.Panic("cannot build sensor:\n%v", err)
	}

	// indenter
	name := strings.TrimSuffix(filepath.Base(objPath), filepath.Ext(objPath))
	obj, err := sensor.LoadIndenter(name, objPath)
	if err != nil {
		chk.Panic("cannot load indenter:\n%v", err)
	}

	// depth sweep
	depths := utl.LinSpace(dmax/float64(ndepths), dmax, ndepths)
	res, err := sensor.CollectAll([]*gel.Indenter{obj}, young, poisson, depths)
	if err != nil {
		chk.Panic("sweep failed:\n%v", err)
	}

	// summary
	io.Pf("\ncollected data:\n")
	for _, depth := range depths {
		ent := res[obj.Name][gel.DepthKey(depth)]
		peak := 0.0
		for i := 0; i < ent.Depth.Nrow; i++ {
			for j := 0; j < ent.Depth.Ncol; j++ {
				if v := ent.Depth.Z.At(i, j); v > peak {
					peak = v
				}
			}
		}
		io.Pf("  %8s: depth field %dx%d (peak %.4f mm), markers %dx%dx2\n",
			gel.DepthKey(depth), ent.Depth.Nrow, ent.Depth.Ncol, peak,
			ent.Markers.Nrow, ent.Markers.Ncol)
	}
}
