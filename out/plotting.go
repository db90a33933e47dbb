// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/blattms/ewoms/grid"
)

// PlotProfiles draws the given cell fields against the cell centroids and
// saves one PNG per snapshot. Returns the filename.
func PlotProfiles(dirout, key string, idx int, t float64, g *grid.Grid, fields map[string][]float64) (fn string, err error) {

	p := plot.New()
	p.Title.Text = io.Sf("%s t=%g", key, t)
	p.X.Label.Text = "x"
	p.Legend.Top = true

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for k, name := range names {
		vals := fields[name]
		if len(vals) != g.Ncells {
			return "", chk.Err("field %q has %d values but the grid has %d cells", name, len(vals), g.Ncells)
		}
		pts := make(plotter.XYs, g.Ncells)
		for i := 0; i < g.Ncells; i++ {
			pts[i].X = g.Cent[i]
			pts[i].Y = vals[i]
		}
		line, e := plotter.NewLine(pts)
		if e != nil {
			return "", chk.Err("cannot create line for field %q: %v", name, e)
		}
		line.Color = plotutil.Color(k)
		line.Dashes = plotutil.Dashes(k)
		p.Add(line)
		p.Legend.Add(name, line)
	}

	fn = filepath.Join(dirout, io.Sf("%s_%06d.png", key, idx))
	if err = p.Save(6*vg.Inch, 4*vg.Inch, fn); err != nil {
		return "", chk.Err("cannot save plot %q: %v", fn, err)
	}
	return
}
