// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gotruss/inp"
)

// AxialBar implements the solution of a bar fixed at one end and loaded axially at the other
//
//   |
//   |o=========================o → P
//   |
//   |<----------- L ---------->|
//
type AxialBar struct {
	L float64 // length
	A float64 // cross-sectional area
	E float64 // Young's modulus
	P float64 // axial load (positive in tension)
}

// Init initialises this structure
func (o *AxialBar) Init(prms []*inp.Prm) {

	// default values
	o.L = 1.0
	o.A = 1.0
	o.E = 1000.0
	o.P = 10.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "L":
			o.L = p.V
		case "A":
			o.A = p.V
		case "E":
			o.E = p.V
		case "P":
			o.P = p.V
		}
	}
}

// Disp returns the displacement of the loaded end
func (o AxialBar) Disp() float64 { return o.P * o.L / (o.E * o.A) }

// Strain returns the axial strain
func (o AxialBar) Strain() float64 { return o.P / (o.E * o.A) }

// Stress returns the axial stress
func (o AxialBar) Stress() float64 { return o.P / o.A }

// TwoBarTruss implements the solution of a symmetric two-bar truss loaded at the apex
//
//                  ↓ P
//                  o (0,H)
//                ,' ',
//              ,'     ',        θ = atan(H/B)
//            ,'         ',
//    (-B,0) o             o (B,0)
//          ///           ///
//
type TwoBarTruss struct {
	B float64 // half span
	H float64 // height
	A float64 // cross-sectional area
	E float64 // Young's modulus
	P float64 // downward load at apex

	// derived
	L    float64 // length of each bar
	Sinθ float64 // sine of angle between bars and horizontal
}

// Init initialises this structure
func (o *TwoBarTruss) Init(prms []*inp.Prm) {

	// default values
	o.B = 1.0
	o.H = 1.0
	o.A = 1.0
	o.E = 1000.0
	o.P = 10.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "B":
			o.B = p.V
		case "H":
			o.H = p.V
		case "A":
			o.A = p.V
		case "E":
			o.E = p.V
		case "P":
			o.P = p.V
		}
	}

	// derived
	o.L = math.Sqrt(o.B*o.B + o.H*o.H)
	o.Sinθ = o.H / o.L
}

// Force returns the axial force in each bar (negative == compression)
func (o TwoBarTruss) Force() float64 { return -o.P / (2.0 * o.Sinθ) }

// Stress returns the axial stress in each bar
func (o TwoBarTruss) Stress() float64 { return o.Force() / o.A }

// Strain returns the axial strain in each bar
func (o TwoBarTruss) Strain() float64 { return o.Stress() / o.E }

// Disp returns the vertical displacement of the apex (the horizontal one is zero)
func (o TwoBarTruss) Disp() float64 {
	return -o.P * o.L / (2.0 * o.E * o.A * o.Sinθ * o.Sinθ)
}

// Reaction returns the vertical reaction at each support
func (o TwoBarTruss) Reaction() float64 { return o.P / 2.0 }
