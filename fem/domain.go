// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Truss holds all nodes and rods of a 2D pin-jointed structure. Nodes and elements are only
// appended; their ids are their positions in Nodes and Elems
type Truss struct {
	Nodes   []*Node       // all nodes
	Elems   []*ElasticRod // all rods
	Verbose bool          // show messages
}

// NewTruss returns a new empty truss
func NewTruss() *Truss {
	return new(Truss)
}

// Ndof returns the total number of degrees of freedom == ndim * nnodes
func (o *Truss) Ndof() int {
	return Ndim * len(o.Nodes)
}

// AddNode appends a new node and returns its id. Coordinates must be finite and distinct
// from the ones of all existent nodes
func (o *Truss) AddNode(x, y float64) (id int, err error) {
	for _, v := range []float64{x, y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return -1, invalidInput("node coordinates must be finite; (%g,%g) is invalid", x, y)
		}
	}
	for _, n := range o.Nodes {
		if n.X[0] == x && n.X[1] == y {
			return -1, invalidInput("node at (%g,%g) already exists with id %d", x, y, n.Id)
		}
	}
	id = len(o.Nodes)
	o.Nodes = append(o.Nodes, &Node{Id: id, X: []float64{x, y}})
	return
}

// AddElement appends a new rod connecting nodes i and j and returns its id
//  Input:
//   i, j -- ids of existent nodes
//   A    -- cross-sectional area
//   E    -- Young's modulus
func (o *Truss) AddElement(i, j int, A, E float64) (id int, err error) {
	id = len(o.Elems)
	for _, v := range []int{i, j} {
		if v < 0 || v >= len(o.Nodes) {
			return -1, invalidInput("element %d references node %d but there are %d nodes", id, v, len(o.Nodes))
		}
	}
	x := utl.Alloc(Ndim, 2)
	for k := 0; k < Ndim; k++ {
		x[k][0] = o.Nodes[i].X[k]
		x[k][1] = o.Nodes[j].X[k]
	}
	e, err := NewElasticRod(id, [2]int{i, j}, x, A, E)
	if err != nil {
		return -1, err
	}
	o.Elems = append(o.Elems, e)
	return
}

// AssembleK assembles the global stiffness matrix [ndof][ndof]. A new (zeroed) matrix is
// allocated on each call
func (o *Truss) AssembleK() (K *mat.Dense, err error) {

	// check
	ny := o.Ndof()
	if ny == 0 {
		return nil, invalidInput("cannot assemble stiffness matrix of truss without nodes")
	}
	for _, e := range o.Elems {
		for _, v := range e.Verts {
			if v < 0 || v >= len(o.Nodes) {
				return nil, invalidInput("element %d references node %d but there are %d nodes", e.Id, v, len(o.Nodes))
			}
		}
	}

	// assemble element matrices
	K = mat.NewDense(ny, ny, nil)
	for _, e := range o.Elems {
		e.AddToKb(K)
	}

	// message
	if o.Verbose {
		io.Pforan("assembled K: %d nodes, %d elements, %d DOFs\n", len(o.Nodes), len(o.Elems), ny)
	}
	return
}

// LoadVector returns a force vector [ndof] with the given point loads added
//  Input:
//   loads -- maps DOF index to load value
func (o *Truss) LoadVector(loads map[int]float64) (f []float64, err error) {
	f = make([]float64, o.Ndof())
	for eq, val := range loads {
		if eq < 0 || eq >= len(f) {
			return nil, invalidInput("load at DOF %d is out of range [0,%d)", eq, len(f))
		}
		f[eq] += val
	}
	return
}

// NodeDofs returns the DOF indices of the given nodes; e.g. for fully fixed supports
func (o *Truss) NodeDofs(nids ...int) (eqs []int, err error) {
	for _, nid := range nids {
		if nid < 0 || nid >= len(o.Nodes) {
			return nil, invalidInput("node %d does not exist; there are %d nodes", nid, len(o.Nodes))
		}
		eqs = append(eqs, o.Nodes[nid].Eqs()...)
	}
	return
}
