// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// DefaultCondMax is the default maximum condition number of the reduced stiffness matrix
const DefaultCondMax = 1e13

// symtol is the relative tolerance used to check the symmetry of K
const symtol = 1e-12

// Solver solves the linear static problem K⋅u = f with zero displacements prescribed at a
// set of constrained DOFs. The system is reduced to the free DOFs
//
//   ┌         ┐ ┌    ┐   ┌    ┐
//   │ Kff Kfc │ │ uf │   │ ff │
//   │         │ │    │ = │    │    with uc = 0  =>  Kff⋅uf = ff
//   │ Kcf Kcc │ │ uc │   │ fc │
//   └         ┘ └    ┘   └    ┘
//
type Solver struct {
	CondMax float64 // max condition number of Kff; larger values mean the structure is a mechanism
	Verbose bool    // show messages
}

// NewSolver returns a new solver with default values
func NewSolver() *Solver {
	return &Solver{CondMax: DefaultCondMax}
}

// Solve computes the displacements
//  Input:
//   K           -- global stiffness matrix [ndof][ndof]. Only read
//   f           -- external forces [ndof]
//   constrained -- DOFs with zero displacement. Repeated entries are allowed
//  Output:
//   u -- displacements [ndof]; zero at constrained DOFs
func (o *Solver) Solve(K mat.Matrix, f []float64, constrained []int) (u []float64, err error) {

	// check dimensions
	ny, nc := K.Dims()
	if ny != nc {
		return nil, invalidInput("stiffness matrix must be square; %d x %d is invalid", ny, nc)
	}
	if len(f) != ny {
		return nil, invalidInput("force vector must have %d components; %d given", ny, len(f))
	}
	for i, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, invalidInput("force vector has invalid component f[%d]=%g", i, v)
		}
	}
	err = checkSymmetric(K)
	if err != nil {
		return
	}

	// partition DOFs
	fixed := make([]bool, ny)
	for _, eq := range constrained {
		if eq < 0 || eq >= ny {
			return nil, invalidInput("constrained DOF %d is out of range [0,%d)", eq, ny)
		}
		fixed[eq] = true
	}
	free := make([]int, 0, ny)
	for eq := 0; eq < ny; eq++ {
		if !fixed[eq] {
			free = append(free, eq)
		}
	}

	// all DOFs are constrained
	u = make([]float64, ny)
	nf := len(free)
	if nf == 0 {
		return
	}

	// reduced system
	Kff := mat.NewSymDense(nf, nil)
	ff := mat.NewVecDense(nf, nil)
	for a, I := range free {
		ff.SetVec(a, f[I])
		for b := a; b < nf; b++ {
			Kff.SetSym(a, b, K.At(I, free[b]))
		}
	}

	// factorisation
	condmax := o.CondMax
	if condmax <= 0 {
		condmax = DefaultCondMax
	}
	var chol mat.Cholesky
	if !chol.Factorize(Kff) {
		return nil, singular(math.Inf(1), "reduced stiffness matrix (%d free DOFs) is not positive definite; check supports and connectivity", nf)
	}
	cond := chol.Cond()
	if cond > condmax {
		return nil, singular(cond, "reduced stiffness matrix (%d free DOFs) is ill-conditioned (max=%g); check supports and connectivity", nf, condmax)
	}

	// solve
	uf := mat.NewVecDense(nf, nil)
	err = chol.SolveVecTo(uf, ff)
	if err != nil {
		return nil, singular(cond, "solution of reduced system failed: %v", err)
	}
	for a, I := range free {
		u[I] = uf.AtVec(a)
	}

	// message
	if o.Verbose {
		io.Pforan("solved: %d free DOFs, %d constrained DOFs, cond(Kff)=%g\n", nf, ny-nf, cond)
	}
	return
}

// Reactions computes the support reactions r = K⋅u - f at constrained DOFs. Other
// components of r are zero
func Reactions(K mat.Matrix, u, f []float64, constrained []int) (r []float64, err error) {
	ny, nc := K.Dims()
	if ny != nc || len(u) != ny || len(f) != ny {
		return nil, invalidInput("incompatible dimensions: K is %d x %d, len(u)=%d, len(f)=%d", ny, nc, len(u), len(f))
	}
	r = make([]float64, ny)
	done := make([]bool, ny)
	for _, I := range constrained {
		if I < 0 || I >= ny {
			return nil, invalidInput("constrained DOF %d is out of range [0,%d)", I, ny)
		}
		if done[I] {
			continue
		}
		done[I] = true
		r[I] = -f[I]
		for J := 0; J < ny; J++ {
			r[I] += K.At(I, J) * u[J]
		}
	}
	return
}

// checkSymmetric returns an error if K is not symmetric
func checkSymmetric(K mat.Matrix) error {
	n, _ := K.Dims()
	var kmax float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			kmax = math.Max(kmax, math.Abs(K.At(i, j)))
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(K.At(i, j)-K.At(j, i)) > symtol*kmax {
				return invalidInput("stiffness matrix must be symmetric; K[%d][%d]=%g != K[%d][%d]=%g", i, j, K.At(i, j), j, i, K.At(j, i))
			}
		}
	}
	return nil
}
