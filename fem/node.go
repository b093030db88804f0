// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// Ndim is the space dimension. Each node has Ndim degrees of freedom
const Ndim = 2

// ykeys maps displacement keys to local DOF number
var ykeys = map[string]int{"ux": 0, "uy": 1}

// fkeys maps force keys to local DOF number
var fkeys = map[string]int{"fx": 0, "fy": 1}

// Node holds node data. Id is the position of the node in Truss.Nodes
type Node struct {
	Id int       // index in the ordered collection of nodes
	X  []float64 // coordinates [ndim]
}

// GetEq returns the equation number (DOF index) of "ux" or "uy"; or -1 if key is invalid
func (o *Node) GetEq(ykey string) int {
	if i, ok := ykeys[ykey]; ok {
		return Ndim*o.Id + i
	}
	return -1
}

// Eqs returns the equation numbers of all DOFs of this node
func (o *Node) Eqs() []int {
	return []int{Ndim * o.Id, Ndim*o.Id + 1}
}

// Dof returns the DOF index corresponding to node id and a displacement ("ux", "uy") or
// force ("fx", "fy") key
func Dof(nid int, key string) (eq int, err error) {
	if nid < 0 {
		return -1, invalidInput("node id must be non-negative; %d is invalid", nid)
	}
	i, ok := ykeys[key]
	if !ok {
		i, ok = fkeys[key]
	}
	if !ok {
		return -1, invalidInput("DOF key %q is invalid", key)
	}
	return Ndim*nid + i, nil
}
