// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of truss analyses
package out

import (
	"bytes"
	"math"

	"github.com/cpmech/gotruss/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// node keys and element keys accepted by GetRes
var (
	nodeKeys = []string{"ux", "uy", "rx", "ry"}
	elemKeys = []string{"eps", "sig", "N"}
)

// GetRes returns results corresponding to key
//  Input:
//   key -- "ux", "uy", "rx", "ry" => [nnodes] values; "eps", "sig", "N" => [nelems] values
func GetRes(t *fem.Truss, r *fem.Results, key string) (res []float64, err error) {
	nnod := len(t.Nodes)
	if len(r.U) != fem.Ndim*nnod || len(r.Reactions) != fem.Ndim*nnod {
		return nil, chk.Err("results do not match truss with %d nodes", nnod)
	}
	switch key {
	case "ux", "uy", "rx", "ry":
		vals := r.U
		if key[0] == 'r' {
			vals = r.Reactions
		}
		res = make([]float64, nnod)
		for i, n := range t.Nodes {
			res[i] = vals[n.GetEq("u"+key[1:])]
		}
	case "eps", "sig", "N":
		res = map[string][]float64{"eps": r.Strains, "sig": r.Stresses, "N": r.Forces}[key]
		if len(res) != len(t.Elems) {
			return nil, chk.Err("results %q do not match truss with %d elements", key, len(t.Elems))
		}
	default:
		return nil, chk.Err("cannot find results with key %q", key)
	}
	return
}

// MaxAbs returns the index and value of the result with largest absolute value
func MaxAbs(t *fem.Truss, r *fem.Results, key string) (idx int, val float64, err error) {
	res, err := GetRes(t, r, key)
	if err != nil {
		return
	}
	idx = -1
	for i, v := range res {
		if idx < 0 || math.Abs(v) > math.Abs(val) {
			idx, val = i, v
		}
	}
	return
}

// Table returns a table with nodal and element results
func Table(t *fem.Truss, r *fem.Results) (l string, err error) {

	// results
	vals := make(map[string][]float64)
	keys := make([]string, 0, len(nodeKeys)+len(elemKeys))
	keys = append(append(keys, nodeKeys...), elemKeys...)
	for _, key := range keys {
		vals[key], err = GetRes(t, r, key)
		if err != nil {
			return
		}
	}

	// nodes
	var b bytes.Buffer
	io.Ff(&b, "%5s%13s%13s%15s%15s%15s%15s\n", "node", "x", "y", "ux", "uy", "rx", "ry")
	for i, n := range t.Nodes {
		io.Ff(&b, "%5d%13g%13g%15.6e%15.6e%15.6e%15.6e\n", n.Id, n.X[0], n.X[1], vals["ux"][i], vals["uy"][i], vals["rx"][i], vals["ry"][i])
	}

	// elements
	io.Ff(&b, "\n%5s%6s%6s%13s%15s%15s%15s\n", "elem", "i", "j", "L", "strain", "stress", "force")
	for i, e := range t.Elems {
		io.Ff(&b, "%5d%6d%6d%13g%15.6e%15.6e%15.6e\n", e.Id, e.Verts[0], e.Verts[1], e.L, vals["eps"][i], vals["sig"][i], vals["N"][i])
	}
	return b.String(), nil
}

// Print prints results table
func Print(t *fem.Truss, r *fem.Results) (err error) {
	l, err := Table(t, r)
	if err != nil {
		return
	}
	io.Pf("%s", l)
	return
}
