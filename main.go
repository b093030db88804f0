// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gotruss/fem"
	"github.com/cpmech/gotruss/inp"
	"github.com/cpmech/gotruss/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", false)
	verbose := io.ArgToBool(1, false)

	// message
	io.PfWhite("\nGotruss -- static analysis of 2D trusses\n\n")

	// analysis data
	var analysis *fem.Analysis
	var f []float64
	var constrained []int
	var err error
	if fnamepath == "" || fnamepath == ".sim" {
		analysis, f, constrained, err = example()
	} else {
		var sim *inp.Simulation
		sim, err = inp.ReadSim(fnamepath)
		if err == nil {
			sim.Data.Verbose = sim.Data.Verbose || verbose
			analysis, f, constrained, err = fem.NewAnalysisFromSim(sim)
		}
	}
	if err != nil {
		chk.Panic("cannot set analysis up:\n%v", err)
	}
	if verbose {
		analysis.Verbose = true
		analysis.Solver.Verbose = true
		analysis.Truss.Verbose = true
	}

	// run
	res, err := analysis.Run(f, constrained)
	if err != nil {
		chk.Panic("analysis failed:\n%v", err)
	}

	// output
	err = out.Print(analysis.Truss, res)
	if err != nil {
		chk.Panic("cannot print results:\n%v", err)
	}
}

// example returns the three-node truss with node 0 and node 2 fixed and a vertical load at node 1
func example() (analysis *fem.Analysis, f []float64, constrained []int, err error) {
	t := fem.NewTruss()
	for _, x := range [][]float64{{0, 0}, {2, 0}, {1, 1}} {
		if _, err = t.AddNode(x[0], x[1]); err != nil {
			return
		}
	}
	for _, c := range [][]int{{0, 1}, {1, 2}, {0, 2}} {
		if _, err = t.AddElement(c[0], c[1], 1, 1e9); err != nil {
			return
		}
	}
	f, err = t.LoadVector(map[int]float64{3: -10000})
	if err != nil {
		return
	}
	constrained, err = t.NodeDofs(0, 2)
	if err != nil {
		return
	}
	return fem.NewAnalysis(t), f, constrained, nil
}
