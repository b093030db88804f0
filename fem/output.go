// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gotruss/inp"
)

// Strains computes the strain of each rod from the displacements u [ndof]
//  Input:
//   u       -- displacements [ndof]
//   measure -- inp.StrainAxial or inp.StrainChord. Empty means inp.StrainAxial
func (o *Truss) Strains(u []float64, measure string) (eps []float64, err error) {
	if len(u) != o.Ndof() {
		return nil, invalidInput("displacement vector must have %d components; %d given", o.Ndof(), len(u))
	}
	eps = make([]float64, len(o.Elems))
	switch measure {
	case "", inp.StrainAxial:
		for i, e := range o.Elems {
			eps[i] = e.Strain(u)
		}
	case inp.StrainChord:
		for i, e := range o.Elems {
			eps[i] = e.ChordStrain(u)
		}
	default:
		return nil, invalidInput("strain measure %q is invalid", measure)
	}
	return
}

// Stresses computes the axial stress of each rod from its strain
func (o *Truss) Stresses(eps []float64) (sig []float64, err error) {
	if len(eps) != len(o.Elems) {
		return nil, invalidInput("strain vector must have %d components; %d given", len(o.Elems), len(eps))
	}
	sig = make([]float64, len(o.Elems))
	for i, e := range o.Elems {
		sig[i] = e.Stress(eps[i])
	}
	return
}

// Forces computes the axial force of each rod from its stress
func (o *Truss) Forces(sig []float64) (N []float64, err error) {
	if len(sig) != len(o.Elems) {
		return nil, invalidInput("stress vector must have %d components; %d given", len(o.Elems), len(sig))
	}
	N = make([]float64, len(o.Elems))
	for i, e := range o.Elems {
		N[i] = e.Force(sig[i])
	}
	return
}
