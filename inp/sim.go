// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// strain measures accepted in Data.Strain
const (
	StrainAxial = "axial" // projection of relative displacement onto the undeformed axis
	StrainChord = "chord" // change of the deformed chord length
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Strain  string `json:"strain"`  // strain measure: "axial" (default) or "chord"
	Verbose bool   `json:"verbose"` // show messages
}

// SolverData holds linear solver data
type SolverData struct {
	CondMax float64 `json:"condmax"` // max condition number of reduced stiffness before it's taken as singular
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.CondMax = 1e13
}

// NodeData holds node data
type NodeData struct {
	Id int       `json:"id"` // id == position in Nodes
	X  []float64 `json:"x"`  // coordinates (size==2)
}

// ElemData holds element data
type ElemData struct {
	Id    int    `json:"id"`    // id == position in Elems
	Verts []int  `json:"verts"` // the two node ids
	Mat   string `json:"mat"`   // material name
}

// SupportData holds fixed degrees of freedom of one node
type SupportData struct {
	Node int      `json:"node"` // node id
	Keys []string `json:"keys"` // "ux" and/or "uy"
}

// LoadData holds a concentrated load
type LoadData struct {
	Node int     `json:"node"` // node id
	Key  string  `json:"key"`  // "fx" or "fy"
	V    float64 `json:"v"`    // value
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data           `json:"data"`      // global simulation data
	Solver    SolverData     `json:"solver"`    // linear solver data
	Materials []*Material    `json:"materials"` // materials and sections
	Nodes     []*NodeData    `json:"nodes"`     // nodes
	Elems     []*ElemData    `json:"elems"`     // elements
	Supports  []*SupportData `json:"supports"`  // essential boundary conditions (zero displacements)
	Loads     []*LoadData    `json:"loads"`     // point loads

	// derived
	Key  string               // simulation key; e.g. mysim01.sim => mysim01
	mats map[string]*Material // name => material
}

// Simulation //////////////////////////////////////////////////////////////////////////////////////

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string) (o *Simulation, err error) {
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}
	o, err = ParseSim(b)
	if err != nil {
		return nil, chk.Err("cannot load simulation file %q:\n%v", simfilepath, err)
	}
	o.Key = io.FnKey(filepath.Base(simfilepath))
	return
}

// ParseSim decodes and checks simulation data given in JSON format
func ParseSim(b []byte) (o *Simulation, err error) {

	// new sim with default values
	o = new(Simulation)
	o.Solver.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation data:\n%v", err)
	}

	// global data
	if o.Data.Strain == "" {
		o.Data.Strain = StrainAxial
	}
	if o.Data.Strain != StrainAxial && o.Data.Strain != StrainChord {
		return nil, chk.Err("strain measure %q is invalid; use %q or %q", o.Data.Strain, StrainAxial, StrainChord)
	}
	if o.Solver.CondMax <= 1 {
		return nil, chk.Err("max condition number must be greater than 1; condmax=%g is invalid", o.Solver.CondMax)
	}

	// materials
	o.mats = make(map[string]*Material)
	for _, m := range o.Materials {
		if _, ok := o.mats[m.Name]; ok {
			return nil, chk.Err("material %q is defined more than once", m.Name)
		}
		err = m.check()
		if err != nil {
			return nil, err
		}
		o.mats[m.Name] = m
	}

	// nodes
	if len(o.Nodes) < 2 {
		return nil, chk.Err("at least 2 nodes are required; %d given", len(o.Nodes))
	}
	for i, n := range o.Nodes {
		if n.Id != i {
			return nil, chk.Err("node ids must be sequential: node at position %d has id=%d", i, n.Id)
		}
		if len(n.X) != 2 {
			return nil, chk.Err("node %d must have 2 coordinates; %d given", n.Id, len(n.X))
		}
		for _, x := range n.X {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, chk.Err("node %d has invalid coordinates %v", n.Id, n.X)
			}
		}
	}

	// elements
	if len(o.Elems) < 1 {
		return nil, chk.Err("at least 1 element is required")
	}
	for i, e := range o.Elems {
		if e.Id != i {
			return nil, chk.Err("element ids must be sequential: element at position %d has id=%d", i, e.Id)
		}
		if len(e.Verts) != 2 {
			return nil, chk.Err("element %d must have 2 nodes; %d given", e.Id, len(e.Verts))
		}
		for _, v := range e.Verts {
			if !o.hasNode(v) {
				return nil, chk.Err("element %d references node %d which does not exist", e.Id, v)
			}
		}
		if o.GetMat(e.Mat) == nil {
			return nil, chk.Err("cannot find material %q for element %d", e.Mat, e.Id)
		}
	}

	// conditions
	for _, s := range o.Supports {
		if !o.hasNode(s.Node) {
			return nil, chk.Err("support references node %d which does not exist", s.Node)
		}
		for _, key := range s.Keys {
			if key != "ux" && key != "uy" {
				return nil, chk.Err("support key %q at node %d is invalid; use \"ux\" or \"uy\"", key, s.Node)
			}
		}
	}
	for _, l := range o.Loads {
		if !o.hasNode(l.Node) {
			return nil, chk.Err("load references node %d which does not exist", l.Node)
		}
		if l.Key != "fx" && l.Key != "fy" {
			return nil, chk.Err("load key %q at node %d is invalid; use \"fx\" or \"fy\"", l.Key, l.Node)
		}
	}
	return
}

// GetMat returns material by name; or nil if not found
func (o *Simulation) GetMat(name string) *Material {
	return o.mats[name]
}

// hasNode tells whether node id exists
func (o *Simulation) hasNode(id int) bool {
	return id >= 0 && id < len(o.Nodes)
}
