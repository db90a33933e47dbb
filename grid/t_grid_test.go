// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01")

	g := New(100.0, 1.0, 1.0, 10)
	chk.IntAssert(g.Ncells, 10)
	chk.IntAssert(len(g.Faces), 11)

	// centroids and volumes
	chk.Float64(tst, "cent[0]", 1e-15, g.Cent[0], 5.0)
	chk.Float64(tst, "cent[9]", 1e-13, g.Cent[9], 95.0)
	for i := 0; i < g.Ncells; i++ {
		chk.Float64(tst, "vol", 1e-14, g.Vol[i], 10.0)
	}

	// internal faces
	for i := 0; i < g.Ncells-1; i++ {
		f := g.Faces[i]
		chk.IntAssert(f.Owner, i)
		chk.IntAssert(f.Neigh, i+1)
		chk.IntAssert(f.Tag, 0)
		chk.Float64(tst, "dist", 1e-14, f.Dist, 10.0)
	}

	// boundary faces
	left := g.Boundary(TagLeft)
	right := g.Boundary(TagRight)
	if left == nil || right == nil {
		tst.Errorf("boundary faces not found\n")
		return
	}
	chk.IntAssert(left.Owner, 0)
	chk.IntAssert(left.Neigh, Exterior)
	chk.IntAssert(right.Owner, 9)
	chk.Float64(tst, "bdist", 1e-14, left.Dist, 5.0)

	// bounding box
	chk.Float64(tst, "xmin", 1e-15, g.Xmin[0], 0.0)
	chk.Float64(tst, "xmax", 1e-15, g.Xmax[0], 100.0)
	if !g.OnLeft(g.Xmin[0], 1e-6) {
		tst.Errorf("OnLeft failed\n")
	}
	if !g.OnRight(g.Xmax[0], 1e-6) {
		tst.Errorf("OnRight failed\n")
	}
	if g.OnLeft(g.Cent[5], 1e-6) || g.OnRight(g.Cent[5], 1e-6) {
		tst.Errorf("interior centroid reported on boundary\n")
	}
}
