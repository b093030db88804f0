// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite element method for the linear static analysis of 2D
// pin-jointed trusses
package fem

import (
	"time"

	"github.com/cpmech/gotruss/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Results holds the output of one analysis
type Results struct {
	U         []float64 // [ndof] displacements
	Strains   []float64 // [nelems] axial strains
	Stresses  []float64 // [nelems] axial stresses
	Forces    []float64 // [nelems] axial forces (positive in tension)
	Reactions []float64 // [ndof] support reactions; zero at free DOFs
}

// Analysis runs the complete static analysis of a truss:
// assembly => reduction and solution => strains, stresses, forces and reactions
type Analysis struct {
	Truss   *Truss  // the structure
	Solver  *Solver // linear solver
	Strain  string  // strain measure: inp.StrainAxial or inp.StrainChord
	Verbose bool    // show messages
}

// NewAnalysis returns a new analysis with default solver and axial strain measure
func NewAnalysis(t *Truss) *Analysis {
	return &Analysis{Truss: t, Solver: NewSolver(), Strain: inp.StrainAxial}
}

// NewAnalysisFromSim builds a truss from simulation data and returns the analysis structure
// with the force vector and constrained DOFs defined by the loads and supports in sim
func NewAnalysisFromSim(sim *inp.Simulation) (o *Analysis, f []float64, constrained []int, err error) {

	// truss
	t := NewTruss()
	t.Verbose = sim.Data.Verbose
	for _, n := range sim.Nodes {
		_, err = t.AddNode(n.X[0], n.X[1])
		if err != nil {
			return
		}
	}
	for _, e := range sim.Elems {
		mat := sim.GetMat(e.Mat)
		if mat == nil {
			err = chk.Err("cannot find material %q for element %d", e.Mat, e.Id)
			return
		}
		E, _ := mat.Get("E")
		A, _ := mat.Get("A")
		_, err = t.AddElement(e.Verts[0], e.Verts[1], A, E)
		if err != nil {
			return
		}
	}

	// loads
	loads := make(map[int]float64)
	for _, l := range sim.Loads {
		eq, e := Dof(l.Node, l.Key)
		if e != nil {
			err = e
			return
		}
		loads[eq] += l.V
	}
	f, err = t.LoadVector(loads)
	if err != nil {
		return
	}

	// supports
	for _, s := range sim.Supports {
		for _, key := range s.Keys {
			eq, e := Dof(s.Node, key)
			if e != nil {
				err = e
				return
			}
			constrained = append(constrained, eq)
		}
	}

	// analysis
	o = NewAnalysis(t)
	o.Solver.CondMax = sim.Solver.CondMax
	o.Solver.Verbose = sim.Data.Verbose
	o.Strain = sim.Data.Strain
	o.Verbose = sim.Data.Verbose
	return
}

// Run runs the analysis
//  Input:
//   f           -- external forces [ndof]
//   constrained -- DOFs with zero displacement
func (o *Analysis) Run(f []float64, constrained []int) (res *Results, err error) {

	// check
	if o.Truss == nil {
		return nil, invalidInput("analysis requires a truss")
	}
	if o.Solver == nil {
		o.Solver = NewSolver()
	}

	// message
	cputime := time.Now()
	if o.Verbose {
		io.Pf("\nstatic analysis: %d nodes, %d elements, %d constrained DOFs\n", len(o.Truss.Nodes), len(o.Truss.Elems), len(constrained))
	}

	// assemble
	K, err := o.Truss.AssembleK()
	if err != nil {
		return
	}

	// solve
	res = new(Results)
	res.U, err = o.Solver.Solve(K, f, constrained)
	if err != nil {
		return nil, err
	}

	// post-process
	res.Strains, err = o.Truss.Strains(res.U, o.Strain)
	if err != nil {
		return nil, err
	}
	res.Stresses, err = o.Truss.Stresses(res.Strains)
	if err != nil {
		return nil, err
	}
	res.Forces, err = o.Truss.Forces(res.Stresses)
	if err != nil {
		return nil, err
	}
	res.Reactions, err = Reactions(K, res.U, f, constrained)
	if err != nil {
		return nil, err
	}

	// message
	if o.Verbose {
		io.Pfyel("cpu time = %v\n", time.Now().Sub(cputime))
	}
	return
}
