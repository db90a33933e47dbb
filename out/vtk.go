// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/blattms/ewoms/grid"
)

// WriteVTK writes one snapshot of cell fields as a legacy ASCII VTK
// rectilinear grid file and returns the filename. Fields are written in
// alphabetical order so files are reproducible.
func WriteVTK(dirout, key string, idx int, t float64, g *grid.Grid, fields map[string][]float64) string {

	var b bytes.Buffer
	io.Ff(&b, "# vtk DataFile Version 3.0\n")
	io.Ff(&b, "%s t=%g\n", key, t)
	io.Ff(&b, "ASCII\n")
	io.Ff(&b, "DATASET RECTILINEAR_GRID\n")
	io.Ff(&b, "DIMENSIONS %d 2 2\n", g.Ncells+1)

	// vertex coordinates
	dx := g.Lx / float64(g.Ncells)
	io.Ff(&b, "X_COORDINATES %d float\n", g.Ncells+1)
	for i := 0; i <= g.Ncells; i++ {
		io.Ff(&b, "%g ", float64(i)*dx)
	}
	io.Ff(&b, "\nY_COORDINATES 2 float\n0 %g\n", g.Ly)
	io.Ff(&b, "Z_COORDINATES 2 float\n0 %g\n", g.Lz)

	// cell fields
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	io.Ff(&b, "CELL_DATA %d\n", g.Ncells)
	for _, name := range names {
		io.Ff(&b, "SCALARS %s float 1\n", name)
		io.Ff(&b, "LOOKUP_TABLE default\n")
		for _, v := range fields[name] {
			io.Ff(&b, "%g\n", v)
		}
	}

	fn := io.Sf("%s_%06d.vtk", key, idx)
	io.WriteFileD(dirout, fn, &b)
	return fn
}
