// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// ElasticRod represents a structural rod element (for axial loads only) with 2 nodes only and
// simply implemented with constant stiffness matrix; i.e. no numerical integration is needed
type ElasticRod struct {

	// basic data
	Id    int         // index in Truss.Elems
	Verts [2]int      // node ids; recorded at creation and never derived from coordinates
	X     [][]float64 // matrix of nodal coordinates [ndim][nnode]
	Nu    int         // total number of unknowns == 2 * ndim

	// parameters and properties
	E float64 // Young's modulus
	A float64 // cross-sectional area
	L float64 // length of rod
	C float64 // cosine of angle between rod axis and x-axis
	S float64 // sine of angle between rod axis and x-axis

	// vectors and matrices
	T [][]float64 // [2][nu] transformation matrix: element system => system aligned to rod
	K [][]float64 // [nu][nu] element K matrix

	// problem variables
	Umap []int // assembly map (location array/element equations)
}

// RodStiffness computes the stiffness matrix of a 2D rod in global coordinates
//
//                  ┌                          ┐
//                  │  c²   c⋅s  -c²   -c⋅s    │
//        E⋅A       │  c⋅s  s²   -c⋅s  -s²     │
//   K = ─────  ⋅   │ -c²  -c⋅s   c²    c⋅s    │     DOFs = [ xi, yi, xj, yj ]
//         L        │ -c⋅s -s²    c⋅s   s²     │
//                  └                          ┘
//
//  Input:
//   xi, xj -- coordinates of first and second nodes
//   A      -- cross-sectional area
//   E      -- Young's modulus
//  Output:
//   K    -- [4][4] stiffness matrix
//   L    -- length of rod
//   c, s -- direction cosine and sine
func RodStiffness(xi, xj []float64, A, E float64) (K [][]float64, L, c, s float64, err error) {

	// check
	if len(xi) != Ndim || len(xj) != Ndim {
		err = invalidInput("rod nodes must have %d coordinates; len(xi)=%d, len(xj)=%d", Ndim, len(xi), len(xj))
		return
	}
	if !(A > 0) || math.IsInf(A, 0) {
		err = invalidInput("cross-sectional area must be positive; A=%g is invalid", A)
		return
	}
	if !(E > 0) || math.IsInf(E, 0) {
		err = invalidInput("Young's modulus must be positive; E=%g is invalid", E)
		return
	}

	// geometry
	dx := xj[0] - xi[0]
	dy := xj[1] - xi[1]
	L = math.Sqrt(dx*dx + dy*dy)
	if !(L > 0) || math.IsInf(L, 0) {
		err = degenerate(-1, "rod from (%g,%g) to (%g,%g) has length L=%g", xi[0], xi[1], xj[0], xj[1], L)
		return
	}
	c = dx / L
	s = dy / L

	// K matrix
	α := E * A / L
	K = [][]float64{
		{+α * c * c, +α * c * s, -α * c * c, -α * c * s},
		{+α * c * s, +α * s * s, -α * c * s, -α * s * s},
		{-α * c * c, -α * c * s, +α * c * c, +α * c * s},
		{-α * c * s, -α * s * s, +α * c * s, +α * s * s},
	}
	return
}

// NewElasticRod returns a new rod element
//  Input:
//   id    -- element id
//   verts -- ids of the two nodes
//   x     -- matrix of nodal coordinates [ndim][nnode]
//   A     -- cross-sectional area
//   E     -- Young's modulus
func NewElasticRod(id int, verts [2]int, x [][]float64, A, E float64) (o *ElasticRod, err error) {

	// check
	if len(x) != Ndim || len(x[0]) != 2 || len(x[1]) != 2 {
		return nil, invalidInput("coordinates matrix of element %d must be %d x 2", id, Ndim)
	}

	// basic data
	o = new(ElasticRod)
	o.Id = id
	o.Verts = verts
	o.X = x
	o.Nu = Ndim * 2
	o.E = E
	o.A = A

	// K matrix
	xi := []float64{x[0][0], x[1][0]}
	xj := []float64{x[0][1], x[1][1]}
	o.K, o.L, o.C, o.S, err = RodStiffness(xi, xj, A, E)
	if err != nil {
		if e, ok := err.(*DegenerateGeometryError); ok {
			e.Eid = id
		}
		return nil, err
	}

	// global-to-local transformation matrix
	o.T = utl.Alloc(2, o.Nu)
	o.T[0][0], o.T[0][1] = o.C, o.S
	o.T[1][2], o.T[1][3] = o.C, o.S

	// assembly map
	o.Umap = make([]int, o.Nu)
	for m := 0; m < 2; m++ {
		for i := 0; i < Ndim; i++ {
			o.Umap[i+m*Ndim] = Ndim*verts[m] + i
		}
	}
	return
}

// AddToKb adds element K to global stiffness matrix Kb
func (o *ElasticRod) AddToKb(Kb *mat.Dense) {
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Set(I, J, Kb.At(I, J)+o.K[i][j])
		}
	}
}

// Strain returns the axial strain: the difference between the displacements of the nodes
// along the undeformed rod axis divided by the length of rod
//  Input:
//   u -- global displacements vector [ndof]
func (o *ElasticRod) Strain(u []float64) float64 {
	ua := []float64{0, 0} // axial displacements
	for i := 0; i < 2; i++ {
		for j, J := range o.Umap {
			ua[i] += o.T[i][j] * u[J]
		}
	}
	return (ua[1] - ua[0]) / o.L
}

// ChordStrain returns the relative change of the distance between the two nodes; i.e.
// (|xj + uj - xi - ui| - L) / L. Equals Strain for small displacements
//  Input:
//   u -- global displacements vector [ndof]
func (o *ElasticRod) ChordStrain(u []float64) float64 {
	ue := make([]float64, o.Nu)
	for i, I := range o.Umap {
		ue[i] = u[I]
	}
	dx := o.X[0][1] + ue[2] - o.X[0][0] - ue[0]
	dy := o.X[1][1] + ue[3] - o.X[1][0] - ue[1]
	return (math.Sqrt(dx*dx+dy*dy) - o.L) / o.L
}

// Stress returns the axial stress (Hooke's law) using this rod's modulus
func (o *ElasticRod) Stress(strain float64) float64 {
	return o.E * strain
}

// Force returns the axial force (positive in tension)
func (o *ElasticRod) Force(stress float64) float64 {
	return o.A * stress
}
