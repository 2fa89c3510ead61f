// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

func Test_mdl01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("mdl01. linear elastic constitutive matrix")

	model, err := New("lin-elast")
	if err != nil {
		tst.Errorf("cannot allocate model: %v\n", err)
		return
	}
	E, nu := 0.2, 0.45
	err = model.Init([]*dbf.P{{N: "E", V: E}, {N: "nu", V: nu}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	lam := E * nu / ((1.0 + nu) * (1.0 - 2.0*nu))
	mu := E / (2.0 * (1.0 + nu))
	D := utl.Alloc(6, 6)
	if err = model.CalcD(D); err != nil {
		tst.Errorf("CalcD failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "D", 1e-15, D, [][]float64{
		{lam + 2*mu, lam, lam, 0, 0, 0},
		{lam, lam + 2*mu, lam, 0, 0, 0},
		{lam, lam, lam + 2*mu, 0, 0, 0},
		{0, 0, 0, mu, 0, 0},
		{0, 0, 0, 0, mu, 0},
		{0, 0, 0, 0, 0, mu},
	})
}

func Test_mdl02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("mdl02. non-physical parameters are rejected")

	for _, prms := range [][]*dbf.P{
		{{N: "E", V: 0}, {N: "nu", V: 0.45}},
		{{N: "E", V: -1}, {N: "nu", V: 0.45}},
		{{N: "E", V: 0.2}, {N: "nu", V: 0.5}},
		{{N: "E", V: 0.2}, {N: "nu", V: 0.75}},
		{{N: "E", V: 0.2}, {N: "nu", V: 0}},
		{{N: "E", V: 0.2}, {N: "nu", V: -0.1}},
	} {
		model, _ := New("lin-elast")
		err := model.Init(prms)
		if err == nil {
			tst.Errorf("parameters %v must be rejected\n", prms)
			return
		}
		var perr *ParamsError
		if !errors.As(err, &perr) {
			tst.Errorf("error must be a ParamsError; got %T\n", err)
			return
		}
	}
}

func Test_mdl03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("mdl03. unknown model name")

	if _, err := New("hyper-elast"); err == nil {
		tst.Errorf("unknown model must be rejected\n")
	}
}
