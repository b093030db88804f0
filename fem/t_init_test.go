// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newTruss builds a truss from coordinates and connectivity; all rods have the same A and E
func newTruss(tst *testing.T, X [][]float64, conn [][]int, A, E float64) *Truss {
	t := NewTruss()
	t.Verbose = chk.Verbose
	for _, x := range X {
		if _, err := t.AddNode(x[0], x[1]); err != nil {
			tst.Fatalf("AddNode failed:\n%v", err)
		}
	}
	for _, c := range conn {
		if _, err := t.AddElement(c[0], c[1], A, E); err != nil {
			tst.Fatalf("AddElement failed:\n%v", err)
		}
	}
	return t
}

// newTriangle returns the three-node truss (0,0), (2,0), (1,1) with A=1 and E=1e9
func newTriangle(tst *testing.T) *Truss {
	return newTruss(tst,
		[][]float64{{0, 0}, {2, 0}, {1, 1}},
		[][]int{{0, 1}, {1, 2}, {0, 2}},
		1, 1e9)
}

// denseToSlice converts a gonum matrix to [][]float64
func denseToSlice(K mat.Matrix) (res [][]float64) {
	m, n := K.Dims()
	res = make([][]float64, m)
	for i := 0; i < m; i++ {
		res[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			res[i][j] = K.At(i, j)
		}
	}
	return
}
