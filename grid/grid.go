// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements a structured finite-volume grid of cells and faces
package grid

import (
	"github.com/cpmech/gosl/chk"
)

// Face connects two cells. Boundary faces have Neigh == Exterior and are
// tagged so that problems can locate them (left/right end of the domain).
type Face struct {
	Owner int     // owner cell id
	Neigh int     // neighbour cell id; Exterior on boundaries
	Area  float64 // face area
	Dist  float64 // distance between centroids (or centroid-to-face on boundaries)
	Tag   int     // boundary tag; 0 for internal faces
}

// boundary tags and sentinel values
const (
	Exterior = -1 // cell id of the outside
	TagLeft  = -10
	TagRight = -11
)

// Grid holds a 1D grid of cells extruded by Ly x Lz; cells are numbered
// from the left (x=0) to the right (x=Lx)
type Grid struct {

	// essential
	Ncells int     // number of cells
	Lx     float64 // domain size along x
	Ly     float64 // extrusion along y
	Lz     float64 // extrusion along z

	// derived
	Cent  []float64 // [Ncells] cell centroids (x-coordinate)
	Vol   []float64 // [Ncells] cell volumes
	Faces []*Face   // internal faces followed by the two boundary faces
	Xmin  []float64 // bounding box minimum
	Xmax  []float64 // bounding box maximum
}

// New creates a grid with ncells cells over a Lx x Ly x Lz cuboid
func New(lx, ly, lz float64, ncells int) (o *Grid) {
	if ncells < 1 {
		chk.Panic("grid must have at least one cell. ncells=%d is invalid", ncells)
	}
	if lx < 1e-14 || ly < 1e-14 || lz < 1e-14 {
		chk.Panic("domain sizes must be positive. lx=%g ly=%g lz=%g", lx, ly, lz)
	}

	o = new(Grid)
	o.Ncells = ncells
	o.Lx, o.Ly, o.Lz = lx, ly, lz

	// cells
	dx := lx / float64(ncells)
	area := ly * lz
	o.Cent = make([]float64, ncells)
	o.Vol = make([]float64, ncells)
	for i := 0; i < ncells; i++ {
		o.Cent[i] = (0.5 + float64(i)) * dx
		o.Vol[i] = dx * area
	}

	// internal faces
	for i := 0; i < ncells-1; i++ {
		o.Faces = append(o.Faces, &Face{Owner: i, Neigh: i + 1, Area: area, Dist: dx})
	}

	// boundary faces; centroid-to-face distance is dx/2
	o.Faces = append(o.Faces, &Face{Owner: 0, Neigh: Exterior, Area: area, Dist: dx / 2.0, Tag: TagLeft})
	o.Faces = append(o.Faces, &Face{Owner: ncells - 1, Neigh: Exterior, Area: area, Dist: dx / 2.0, Tag: TagRight})

	// bounding box
	o.Xmin = []float64{0, 0, 0}
	o.Xmax = []float64{lx, ly, lz}
	return
}

// Boundary returns the boundary face with given tag
//  Note: returns nil if not found
func (o *Grid) Boundary(tag int) *Face {
	for _, f := range o.Faces {
		if f.Tag == tag {
			return f
		}
	}
	return nil
}

// OnLeft tells whether position x is on the left boundary (within eps)
func (o *Grid) OnLeft(x, eps float64) bool {
	return x < o.Xmin[0]+eps
}

// OnRight tells whether position x is on the right boundary (within eps)
func (o *Grid) OnRight(x, eps float64) bool {
	return x > o.Xmax[0]-eps
}
