// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"
)

// InvalidInputError is returned for bad node or DOF indices, vectors with wrong sizes and
// non-positive (or non-finite) section/material properties
type InvalidInputError struct {
	Msg string
}

func (o *InvalidInputError) Error() string { return "invalid input: " + o.Msg }

// DegenerateGeometryError is returned for rods whose nodes coincide (zero length)
type DegenerateGeometryError struct {
	Eid int // id of element; -1 if not known yet
	Msg string
}

func (o *DegenerateGeometryError) Error() string {
	if o.Eid < 0 {
		return "degenerate geometry: " + o.Msg
	}
	return io.Sf("degenerate geometry in element %d: %s", o.Eid, o.Msg)
}

// SingularSystemError is returned when the reduced stiffness matrix cannot be inverted;
// e.g. the truss is a mechanism or it lacks supports
type SingularSystemError struct {
	Cond float64 // estimated condition number (+Inf if factorisation failed)
	Msg  string
}

func (o *SingularSystemError) Error() string {
	return io.Sf("singular system (cond=%g): %s", o.Cond, o.Msg)
}

// JobError wraps the error of one job in a batch run
type JobError struct {
	Index int   // index of job
	Err   error // error returned by the analysis
}

func (o *JobError) Error() string { return io.Sf("job %d failed:\n%v", o.Index, o.Err) }

func (o *JobError) Unwrap() error { return o.Err }

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func invalidInput(msg string, prm ...interface{}) error {
	return &InvalidInputError{io.Sf(msg, prm...)}
}

func degenerate(eid int, msg string, prm ...interface{}) error {
	return &DegenerateGeometryError{eid, io.Sf(msg, prm...)}
}

func singular(cond float64, msg string, prm ...interface{}) error {
	return &SingularSystemError{cond, io.Sf(msg, prm...)}
}
