// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Episode defines one user-defined phase of the simulation with its own
// boundary in simulated time
type Episode struct {
	Name string  `yaml:"name"` // episode name; e.g. "injection"
	Tlen float64 `yaml:"tlen"` // length of this episode in simulated time
}

// episodeFile is the root of the YAML schedule file
type episodeFile struct {
	Episodes []Episode `yaml:"episodes"`
}

// ReadEpisodes reads an episode schedule from a YAML file
func ReadEpisodes(path string) (schedule []Episode, err error) {

	// read file
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read episode schedule %q", path)
	}

	// decode
	var f episodeFile
	if err = yaml.Unmarshal(b, &f); err != nil {
		return nil, chk.Err("cannot parse episode schedule %q:\n%v", path, err)
	}

	// validate
	if len(f.Episodes) < 1 {
		return nil, chk.Err("episode schedule %q has no episodes", path)
	}
	for i, e := range f.Episodes {
		if e.Tlen < 1e-14 {
			return nil, chk.Err("episode #%d (%q) has invalid length tlen=%g", i, e.Name, e.Tlen)
		}
		if e.Name == "" {
			return nil, chk.Err("episode #%d has no name", i)
		}
	}
	return f.Episodes, nil
}
