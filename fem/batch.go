// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job holds one independent analysis to be run by RunBatch
type Job struct {
	Analysis    *Analysis // analysis; must not be shared with other jobs
	F           []float64 // external forces [ndof]
	Constrained []int     // DOFs with zero displacement
}

// RunBatch runs independent analyses concurrently
//  Input:
//   jobs     -- analyses to run
//   nworkers -- max number of concurrent analyses; <= 0 means no limit
//  Output:
//   res -- [njobs] results in the same order as jobs
//  Note: the first failure cancels the jobs not started yet and is returned as *JobError
func RunBatch(ctx context.Context, jobs []*Job, nworkers int) (res []*Results, err error) {
	res = make([]*Results, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if nworkers > 0 {
		g.SetLimit(nworkers)
	}
	for i, job := range jobs {
		i, job := i, job // per-iteration copies (go 1.21 loop semantics)
		g.Go(func() error {
			if e := ctx.Err(); e != nil {
				return &JobError{i, e}
			}
			if job == nil || job.Analysis == nil {
				return &JobError{i, invalidInput("job has no analysis")}
			}
			r, e := job.Analysis.Run(job.F, job.Constrained)
			if e != nil {
				return &JobError{i, e}
			}
			res[i] = r
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return
}
