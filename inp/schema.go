// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// simSchema constrains the .sim input file. The time-stepping bounds are
// required: a run without dtmax/dtmin/maxdivisions has no convergence budget.
const simSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["data", "grid", "time", "problem"],
  "properties": {
    "data": {
      "type": "object",
      "properties": {
        "desc":    {"type": "string"},
        "matfile": {"type": "string"},
        "dirout":  {"type": "string"},
        "encoder": {"enum": ["", "gob", "json"]}
      }
    },
    "grid": {
      "type": "object",
      "required": ["lx", "ncells"],
      "properties": {
        "lx":     {"type": "number", "exclusiveMinimum": 0},
        "ly":     {"type": "number", "exclusiveMinimum": 0},
        "lz":     {"type": "number", "exclusiveMinimum": 0},
        "ncells": {"type": "integer", "minimum": 1}
      }
    },
    "time": {
      "type": "object",
      "required": ["tf", "dt", "dtmax", "dtmin", "maxdivisions"],
      "properties": {
        "tf":           {"type": "number", "exclusiveMinimum": 0},
        "dt":           {"type": "number", "exclusiveMinimum": 0},
        "dtmax":        {"type": "number", "exclusiveMinimum": 0},
        "dtmin":        {"type": "number", "exclusiveMinimum": 0},
        "maxdivisions": {"type": "integer", "minimum": 0},
        "dtout":        {"type": "number", "minimum": 0}
      }
    },
    "newton": {
      "type": "object",
      "properties": {
        "nmaxit":   {"type": "integer", "minimum": 1},
        "atol":     {"type": "number", "exclusiveMinimum": 0},
        "rtol":     {"type": "number", "minimum": 0},
        "targetit": {"type": "integer", "minimum": 1},
        "dvgctrl":  {"type": "boolean"},
        "ndvgmax":  {"type": "integer", "minimum": 1}
      }
    },
    "linsol": {
      "type": "object",
      "properties": {
        "name": {"enum": ["", "umfpack", "mumps"]}
      }
    },
    "problem": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name":   {"type": "string", "minLength": 1},
        "liq":    {"type": "string"},
        "gas":    {"type": "string"},
        "porous": {"type": "string"}
      }
    }
  }
}`

// compiled lazily; the schema text is a constant, so failure to compile is
// a programming error
var compiledSchema *jsonschema.Schema

// Validate checks raw .sim file contents against the input schema
func Validate(b []byte) (err error) {
	if compiledSchema == nil {
		compiledSchema, err = jsonschema.CompileString("sim.schema.json", simSchema)
		if err != nil {
			chk.Panic("cannot compile input schema: %v", err)
		}
	}
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err = dec.Decode(&doc); err != nil {
		return chk.Err("input is not valid JSON: %v", err)
	}
	if err = compiledSchema.Validate(doc); err != nil {
		return chk.Err("input does not match schema:\n%v", err)
	}
	return
}
