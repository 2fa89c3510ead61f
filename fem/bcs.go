// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "sort"

// EssentialBcs records prescribed-displacement (Dirichlet) boundary
// conditions: the glued base of the pad and the indenter footprint. All
// other dofs are free with zero external force.
type EssentialBcs struct {
	ubar map[int]float64 // equation number => prescribed displacement
}

// NewEssentialBcs returns an empty boundary condition set
func NewEssentialBcs() *EssentialBcs {
	return &EssentialBcs{ubar: make(map[int]float64)}
}

// SetFixed prescribes zero displacement on all three dofs of the given
// vertices (e.g. the base of the pad)
func (o *EssentialBcs) SetFixed(verts []int) {
	for _, v := range verts {
		o.ubar[v*3] = 0
		o.ubar[v*3+1] = 0
		o.ubar[v*3+2] = 0
	}
}

// SetUz prescribes the normal (z) displacement of one vertex. Indentation
// by depth d corresponds to value = -d.
func (o *EssentialBcs) SetUz(vert int, value float64) {
	o.ubar[vert*3+2] = value
}

// Prescribed returns the prescribed value of an equation, if any
func (o *EssentialBcs) Prescribed(eq int) (value float64, ok bool) {
	value, ok = o.ubar[eq]
	return
}

// Count returns the number of constrained equations
func (o *EssentialBcs) Count() int { return len(o.ubar) }

// Eqs returns the sorted list of constrained equations
func (o *EssentialBcs) Eqs() (eqs []int) {
	eqs = make([]int, 0, len(o.ubar))
	for eq := range o.ubar {
		eqs = append(eqs, eq)
	}
	sort.Ints(eqs)
	return
}
