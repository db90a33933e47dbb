// Copyright 2016 The Ewoms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/gob"
	"encoding/json"
	"io"
)

// Encoder serializes objects into a stream
type Encoder interface {
	Encode(v interface{}) error
}

// Decoder deserializes objects from a stream
type Decoder interface {
	Decode(v interface{}) error
}

// NewEncoder returns a new encoder over w; enctype is "gob" or "json"
func NewEncoder(w io.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// NewDecoder returns a new decoder over r; enctype is "gob" or "json"
func NewDecoder(r io.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}
