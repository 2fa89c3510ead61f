// Copyright 2025 The Gelfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/gelsense/gelfem/msh"
	"github.com/gelsense/gelfem/spm"
)

// AssembleSmoothing builds the graph-Laplacian smoothing operator
//
//	S = (1-w) I + w A
//
// where A is the row-normalised adjacency of the mesh. Applying S to a
// nodal field blends each value with the average of its neighbours,
// suppressing per-node discretisation noise. The operator depends on the
// mesh topology only, so it is built once per mesh and reused across all
// material-parameter sweeps.
func AssembleSmoothing(m *msh.Mesh, w float64) (s *spm.RowMatrix, err error) {
	if w < 0 || w > 1 {
		return nil, chk.Err("smoothing weight must be within [0,1]; got %g", w)
	}
	nv := len(m.Verts)
	var t spm.Triplet
	t.Init(nv, nv, nv*9)
	for i := 0; i < nv; i++ {
		nbs := m.Neighbors(i)
		if len(nbs) == 0 || w == 0 {
			t.Put(i, i, 1.0)
			continue
		}
		t.Put(i, i, 1.0-w)
		c := w / float64(len(nbs))
		for _, j := range nbs {
			t.Put(i, j, c)
		}
	}
	return t.ToMatrix(), nil
}
