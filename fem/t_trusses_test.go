// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gotruss/ana"
	"github.com/cpmech/gotruss/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_triangle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("triangle01. three-node truss")

	// analysis
	analysis := NewAnalysis(newTriangle(tst))
	analysis.Verbose = chk.Verbose
	f := []float64{0, -10000, 0, 0, 0, 0}
	res, err := analysis.Run(f, []int{0, 1, 4, 5})
	require.NoError(tst, err)
	io.Pforan("u = %v\n", res.U)
	io.Pforan("ε = %v\n", res.Strains)
	io.Pforan("σ = %v\n", res.Stresses)

	// load at a constrained DOF goes straight to the support
	chk.Array(tst, "u", 1e-17, res.U, make([]float64, 6))
	chk.Array(tst, "r", 1e-17, res.Reactions, []float64{0, 10000, 0, 0, 0, 0})

	// load at node 1's y-DOF
	f = []float64{0, 0, 0, -10000, 0, 0}
	res, err = analysis.Run(f, []int{0, 1, 4, 5})
	require.NoError(tst, err)
	for i, v := range res.U {
		assert.False(tst, math.IsNaN(v) || math.IsInf(v, 0), "u[%d]=%v", i, v)
	}
	chk.Array(tst, "u", 1e-15, res.U, []float64{0, 0, -2e-5, -2e-5 - 2*math.Sqrt2*1e-5, 0, 0})
	for _, eq := range []int{0, 1, 4, 5} {
		if res.U[eq] != 0.0 {
			tst.Errorf("u[%d] must be exactly zero. %v is incorrect", eq, res.U[eq])
		}
	}
	chk.Array(tst, "ε", 1e-15, res.Strains, []float64{-1e-5, math.Sqrt2 * 1e-5, 0})
	chk.Array(tst, "σ", 1e-6, res.Stresses, []float64{-1e4, math.Sqrt2 * 1e4, 0})
	chk.Array(tst, "N", 1e-6, res.Forces, []float64{-1e4, math.Sqrt2 * 1e4, 0})
	chk.Array(tst, "r", 1e-6, res.Reactions, []float64{1e4, 0, 0, 0, -1e4, 1e4})
}

func Test_triangle02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("triangle02. triangle from .sim file")

	sim, err := inp.ReadSim("data/triangle01.sim")
	require.NoError(tst, err)
	chk.String(tst, sim.Key, "triangle01")

	analysis, f, constrained, err := NewAnalysisFromSim(sim)
	require.NoError(tst, err)
	chk.Ints(tst, "constrained", constrained, []int{0, 1, 4, 5})
	chk.Array(tst, "f", 1e-17, f, []float64{0, 0, 0, -10000, 0, 0})

	res, err := analysis.Run(f, constrained)
	require.NoError(tst, err)
	chk.Array(tst, "u", 1e-15, res.U, []float64{0, 0, -2e-5, -2e-5 - 2*math.Sqrt2*1e-5, 0, 0})
	chk.Array(tst, "σ", 1e-6, res.Stresses, []float64{-1e4, math.Sqrt2 * 1e4, 0})
}

func Test_twobar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("twobar01. comparison with analytical solution")

	sim, err := inp.ReadSim("data/twobar01.sim")
	require.NoError(tst, err)
	analysis, f, constrained, err := NewAnalysisFromSim(sim)
	require.NoError(tst, err)
	chk.Float64(tst, "condmax", 1e-17, analysis.Solver.CondMax, 1e12)
	res, err := analysis.Run(f, constrained)
	require.NoError(tst, err)

	// analytical solution
	var sol ana.TwoBarTruss
	sol.Init([]*inp.Prm{
		&inp.Prm{N: "B", V: 3},
		&inp.Prm{N: "H", V: 4},
		&inp.Prm{N: "A", V: 0.002},
		&inp.Prm{N: "E", V: 2e8},
		&inp.Prm{N: "P", V: 80},
	})

	// check
	chk.Float64(tst, "ux", 1e-17, res.U[4], 0)
	chk.Float64(tst, "uy", 1e-15, res.U[5], sol.Disp())
	chk.Array(tst, "ε", 1e-15, res.Strains, []float64{sol.Strain(), sol.Strain()})
	chk.Array(tst, "σ", 1e-9, res.Stresses, []float64{sol.Stress(), sol.Stress()})
	chk.Array(tst, "N", 1e-10, res.Forces, []float64{sol.Force(), sol.Force()})
	chk.Float64(tst, "Ry0", 1e-10, res.Reactions[1], sol.Reaction())
	chk.Float64(tst, "Ry1", 1e-10, res.Reactions[3], sol.Reaction())
	chk.Float64(tst, "Rx0+Rx1", 1e-10, res.Reactions[0]+res.Reactions[2], 0)
}

func Test_axialbar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("axialbar01. chain of rods with different moduli")

	// analytical solution of one bar
	var sol ana.AxialBar
	sol.Init([]*inp.Prm{
		&inp.Prm{N: "L", V: 1},
		&inp.Prm{N: "A", V: 0.5},
		&inp.Prm{N: "E", V: 1000},
		&inp.Prm{N: "P", V: 20},
	})

	// three rods in series along x; the second one is twice as stiff
	t := NewTruss()
	for i := 0; i < 4; i++ {
		_, err := t.AddNode(float64(i), 0)
		require.NoError(tst, err)
	}
	for i, E := range []float64{1000, 2000, 1000} {
		_, err := t.AddElement(i, i+1, 0.5, E)
		require.NoError(tst, err)
	}
	f := make([]float64, t.Ndof())
	f[6] = sol.P
	eqs, err := t.NodeDofs(0)
	require.NoError(tst, err)
	constrained := append(eqs, 3, 5, 7) // y-DOFs of other nodes

	res, err := NewAnalysis(t).Run(f, constrained)
	require.NoError(tst, err)

	// same force in all rods; strain depends on each modulus
	chk.Array(tst, "N", 1e-12, res.Forces, []float64{sol.P, sol.P, sol.P})
	chk.Array(tst, "σ", 1e-12, res.Stresses, []float64{sol.Stress(), sol.Stress(), sol.Stress()})
	chk.Array(tst, "ε", 1e-15, res.Strains, []float64{sol.Strain(), sol.Strain() / 2, sol.Strain()})
	chk.Float64(tst, "tip", 1e-15, res.U[6], 2.5*sol.Disp())
	chk.Float64(tst, "Rx", 1e-12, res.Reactions[0], -sol.P)
}

func Test_chord01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("chord01. chord strain vs axial strain")

	sim, err := inp.ParseSim([]byte(`{
		"data"      : { "strain":"chord" },
		"materials" : [ { "name":"m", "prms":[ {"n":"E","v":1000}, {"n":"A","v":1} ] } ],
		"nodes"     : [ {"id":0, "x":[0,0]}, {"id":1, "x":[1,0]}, {"id":2, "x":[1,1]} ],
		"elems"     : [ {"id":0, "verts":[0,1], "mat":"m"}, {"id":1, "verts":[1,2], "mat":"m"} ],
		"supports"  : [ {"node":0, "keys":["ux","uy"]}, {"node":2, "keys":["ux","uy"]} ],
		"loads"     : [ {"node":1, "key":"fx", "v":1}, {"node":1, "key":"fy", "v":-1} ]
	}`))
	require.NoError(tst, err)
	analysis, f, constrained, err := NewAnalysisFromSim(sim)
	require.NoError(tst, err)
	chk.String(tst, analysis.Strain, inp.StrainChord)

	chord, err := analysis.Run(f, constrained)
	require.NoError(tst, err)
	analysis.Strain = inp.StrainAxial
	axial, err := analysis.Run(f, constrained)
	require.NoError(tst, err)

	// u1 = (1e-3, -1e-3)
	chk.Array(tst, "u", 1e-17, axial.U, chord.U)
	chk.Array(tst, "u", 1e-15, axial.U, []float64{0, 0, 1e-3, -1e-3, 0, 0})
	chk.Array(tst, "εaxial", 1e-15, axial.Strains, []float64{1e-3, 1e-3})
	chk.Array(tst, "εchord", 1e-6, chord.Strains, axial.Strains)
	for i := range chord.Strains {
		if chord.Strains[i] == axial.Strains[i] {
			tst.Errorf("chord strain must include second order terms")
		}
	}
	chk.Float64(tst, "εchord0", 1e-15, chord.Strains[0], math.Sqrt(1.002001+1e-6)-1)

	// invalid measure
	analysis.Strain = "large"
	_, err = analysis.Run(f, constrained)
	var inperr *InvalidInputError
	require.ErrorAs(tst, err, &inperr)
}

func Test_mechanism01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mechanism01. unstable truss")

	sim, err := inp.ReadSim("data/mechanism01.sim")
	require.NoError(tst, err)
	analysis, f, constrained, err := NewAnalysisFromSim(sim)
	require.NoError(tst, err)
	res, err := analysis.Run(f, constrained)
	var singerr *SingularSystemError
	require.ErrorAs(tst, err, &singerr)
	require.Nil(tst, res)
}

func Test_postproc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("postproc01. invalid sizes")

	var inperr *InvalidInputError
	t := newTriangle(tst)
	_, err := t.Strains(make([]float64, 5), inp.StrainAxial)
	require.ErrorAs(tst, err, &inperr)
	_, err = t.Stresses(make([]float64, 2))
	require.ErrorAs(tst, err, &inperr)
	_, err = t.Forces(make([]float64, 4))
	require.ErrorAs(tst, err, &inperr)

	// each rod uses its own modulus
	t.Elems[1].E = 5
	σ, err := t.Stresses([]float64{1, 1, 1})
	require.NoError(tst, err)
	chk.Array(tst, "σ", 1e-17, σ, []float64{1e9, 5, 1e9})

	// empty measure means axial
	u := []float64{0, 0, 2e-3, 0, 0, 0}
	ε, err := t.Strains(u, "")
	require.NoError(tst, err)
	chk.Array(tst, "ε", 1e-15, ε, []float64{1e-3, 1e-3, 0})
}
