// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/blattms/ewoms/mdl/conduct"
	"github.com/blattms/ewoms/mdl/fluid"
	"github.com/blattms/ewoms/mdl/porous"
	"github.com/blattms/ewoms/mdl/retention"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// MatDeps names the materials a porous material depends on
type MatDeps struct {
	Liq string `json:"liq"` // liquid material name
	Gas string `json:"gas"` // gas material name
	Cnd string `json:"cnd"` // conductivity material name
	Lrm string `json:"lrm"` // retention material name
}

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material: "fluid", "conduct", "reten" or "porous"
	Model string     `json:"model"` // name of model; e.g. "vg", "m1"
	Deps  *MatDeps   `json:"deps"`  // dependencies (porous materials only)
	Prms  utl.Params `json:"prms"`  // all model parameters for this material

	// derived
	Fluid   *fluid.Model    // allocated fluid model
	Conduct conduct.Model   // allocated conductivity model
	Reten   retention.Model // allocated retention model
	Porous  *porous.Model   // allocated porous model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Fluids   map[string]*Material // subset: fluids
	Conducts map[string]*Material // subset: conductivities
	Retens   map[string]*Material // subset: retention models
	Porous   map[string]*Material // subset: porous materials
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// subsets
	mdb.Fluids = make(map[string]*Material)
	mdb.Conducts = make(map[string]*Material)
	mdb.Retens = make(map[string]*Material)
	mdb.Porous = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "fluid":
			mdb.Fluids[m.Name] = m
		case "conduct":
			mdb.Conducts[m.Name] = m
		case "reten":
			mdb.Retens[m.Name] = m
		case "porous":
			mdb.Porous[m.Name] = m
		default:
			return nil, chk.Err("material type %q is incorrect (material %q)", m.Type, m.Name)
		}
	}

	// allocate leaf models first, then porous bundles
	for _, m := range mdb.Fluids {
		m.Fluid = new(fluid.Model)
		m.Fluid.Init(m.Prms, 0, 0)
	}
	for _, m := range mdb.Conducts {
		m.Conduct, err = conduct.New(m.Model)
		if err != nil {
			return nil, err
		}
		if err = m.Conduct.Init(m.Prms); err != nil {
			return nil, err
		}
	}
	for _, m := range mdb.Retens {
		m.Reten, err = retention.New(m.Model)
		if err != nil {
			return nil, err
		}
		if err = m.Reten.Init(m.Prms); err != nil {
			return nil, err
		}
	}
	for _, m := range mdb.Porous {
		if m.Deps == nil {
			return nil, chk.Err("porous material %q must list its dependencies", m.Name)
		}
		liq, ok := mdb.Fluids[m.Deps.Liq]
		if !ok {
			return nil, chk.Err("porous material %q: cannot find liquid material %q", m.Name, m.Deps.Liq)
		}
		gas, ok := mdb.Fluids[m.Deps.Gas]
		if !ok {
			return nil, chk.Err("porous material %q: cannot find gas material %q", m.Name, m.Deps.Gas)
		}
		cnd, ok := mdb.Conducts[m.Deps.Cnd]
		if !ok {
			return nil, chk.Err("porous material %q: cannot find conductivity material %q", m.Name, m.Deps.Cnd)
		}
		lrm, ok := mdb.Retens[m.Deps.Lrm]
		if !ok {
			return nil, chk.Err("porous material %q: cannot find retention material %q", m.Name, m.Deps.Lrm)
		}
		m.Porous = new(porous.Model)
		if err = m.Porous.Init(m.Prms, cnd.Conduct, lrm.Reten, liq.Fluid, gas.Fluid); err != nil {
			return nil, err
		}
	}
	return
}

// Get returns a material by name
//  Note: returns nil if not found
func (o *MatDb) Get(name string) *Material {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// GetPorous returns an initialised porous bundle by material name
func (o *MatDb) GetPorous(name string) (*porous.Model, error) {
	m, ok := o.Porous[name]
	if !ok {
		return nil, chk.Err("cannot find porous material named %q", name)
	}
	return m.Porous, nil
}
