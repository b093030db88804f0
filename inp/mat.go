// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// Prm holds one material parameter
type Prm struct {
	N string  `json:"n"` // name
	V float64 `json:"v"` // value
}

// Material holds material and section data of a group of rods
//  Parameters:
//   E -- Young's modulus
//   A -- cross-sectional area
type Material struct {
	Name string `json:"name"` // name of material
	Desc string `json:"desc"` // description
	Prms []*Prm `json:"prms"` // parameters
}

// Get returns parameter value
func (o *Material) Get(name string) (val float64, found bool) {
	for _, p := range o.Prms {
		if p.N == name {
			return p.V, true
		}
	}
	return
}

// check checks whether all required parameters are available
func (o *Material) check() (err error) {
	if o.Name == "" {
		return chk.Err("material name must not be empty")
	}
	for _, key := range []string{"E", "A"} {
		val, found := o.Get(key)
		if !found {
			return chk.Err("material %q: parameter %q is missing", o.Name, key)
		}
		if val <= 0 {
			return chk.Err("material %q: parameter %q must be positive; %g is invalid", o.Name, key, val)
		}
	}
	return
}
