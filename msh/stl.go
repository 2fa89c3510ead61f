// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Surface holds the triangulated surface of a contact object (indenter)
type Surface struct {
	Tris [][3][3]float64 // triangles [ntri][vertex][xyz]
}

// ReadSTL reads a triangulated surface from an STL file, accepting both the
// binary and the ASCII encodings. Missing or malformed files yield an
// AssetError.
func ReadSTL(fn string) (o *Surface, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, &AssetError{fn, "cannot read geometry file", err}
	}
	if isAsciiStl(b) {
		o, err = parseAsciiStl(b)
	} else {
		o, err = parseBinaryStl(b)
	}
	if err != nil {
		return nil, &AssetError{fn, "cannot decode STL data", err}
	}
	if len(o.Tris) == 0 {
		return nil, &AssetError{fn, "STL file has no triangles", nil}
	}
	return
}

// HeightAt returns the lowest z of the surface above the sensor-plane point
// (x, y), i.e. the height of the object's underside over that point. hit is
// false when no triangle covers (x, y).
func (o *Surface) HeightAt(x, y float64) (z float64, hit bool) {
	z = math.Inf(1)
	for _, t := range o.Tris {
		zi, in := triHeight(&t, x, y)
		if in && zi < z {
			z, hit = zi, true
		}
	}
	return
}

// Limits returns the bounding box of the surface
func (o *Surface) Limits() (min, max [3]float64) {
	for i := 0; i < 3; i++ {
		min[i], max[i] = math.Inf(1), math.Inf(-1)
	}
	for _, t := range o.Tris {
		for _, v := range t {
			for i := 0; i < 3; i++ {
				min[i] = math.Min(min[i], v[i])
				max[i] = math.Max(max[i], v[i])
			}
		}
	}
	return
}

// triHeight interpolates the z of triangle t over (x, y) using barycentric
// coordinates in the xy-projection
func triHeight(t *[3][3]float64, x, y float64) (z float64, in bool) {
	x1, y1 := t[0][0], t[0][1]
	x2, y2 := t[1][0], t[1][1]
	x3, y3 := t[2][0], t[2][1]
	den := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
	if math.Abs(den) < 1e-20 {
		return // triangle is vertical in the xy-projection
	}
	w1 := ((y2-y3)*(x-x3) + (x3-x2)*(y-y3)) / den
	w2 := ((y3-y1)*(x-x3) + (x1-x3)*(y-y3)) / den
	w3 := 1.0 - w1 - w2
	const eps = -1e-12
	if w1 < eps || w2 < eps || w3 < eps {
		return
	}
	return w1*t[0][2] + w2*t[1][2] + w3*t[2][2], true
}

func isAsciiStl(b []byte) bool {
	head := strings.ToLower(string(b[:minInt(len(b), 512)]))
	return strings.HasPrefix(strings.TrimSpace(head), "solid") && strings.Contains(head, "facet")
}

func parseBinaryStl(b []byte) (o *Surface, err error) {
	if len(b) < 84 {
		return nil, chk.Err("binary STL is too short (%d bytes)", len(b))
	}
	n := binary.LittleEndian.Uint32(b[80:84])
	if int64(len(b)) < 84+int64(n)*50 {
		return nil, chk.Err("binary STL is truncated: %d triangles declared, %d bytes available", n, len(b))
	}
	o = new(Surface)
	o.Tris = make([][3][3]float64, n)
	for i := 0; i < int(n); i++ {
		rec := b[84+i*50 : 84+(i+1)*50]
		for v := 0; v < 3; v++ {
			for k := 0; k < 3; k++ {
				bits := binary.LittleEndian.Uint32(rec[12+v*12+k*4:])
				o.Tris[i][v][k] = float64(math.Float32frombits(bits))
			}
		}
	}
	return
}

func parseAsciiStl(b []byte) (o *Surface, err error) {
	o = new(Surface)
	var tri [3][3]float64
	iv := 0
	for _, line := range bytes.Split(b, []byte("\n")) {
		f := strings.Fields(string(line))
		if len(f) == 4 && f[0] == "vertex" {
			if iv > 2 {
				return nil, chk.Err("ASCII STL facet has more than 3 vertices")
			}
			for k := 0; k < 3; k++ {
				tri[iv][k], err = strconv.ParseFloat(f[1+k], 64)
				if err != nil {
					return nil, chk.Err("ASCII STL has invalid vertex coordinate %q", f[1+k])
				}
			}
			iv++
			continue
		}
		if len(f) > 0 && f[0] == "endfacet" {
			if iv != 3 {
				return nil, chk.Err("ASCII STL facet has %d vertices; expected 3", iv)
			}
			o.Tris = append(o.Tris, tri)
			iv = 0
		}
	}
	return
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
