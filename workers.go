// Copyright 2018 Fabian Wenzelmann
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mosaic

import (
	"context"
	"runtime"
)

// DefaultNumRoutines is the number of go routines used if a NumRoutines
// value is ≤ 0.
func DefaultNumRoutines() int {
	// seems reasonable
	res := runtime.NumCPU() * 2
	if res <= 0 {
		res = 4
	}
	return res
}

// runJobs runs work(0), ..., work(n - 1) on numRoutines concurrent workers.
// Each finished job adds units(i) to progress; this happens in the calling
// goroutine, so progress is reported in order.
//
// If jobs fail the error of the job with the smallest index is returned, thus
// the result doesn't depend on scheduling. A cancelled context stops all
// outstanding jobs and returns ctx.Err().
func runJobs(ctx context.Context, n, numRoutines int,
	work func(i int) error, units func(i int) int, progress *progressCounter) error {
	if numRoutines <= 0 {
		numRoutines = DefaultNumRoutines()
	}
	numRoutines = IntMax(IntMin(numRoutines, n), 1)

	type result struct {
		i   int
		err error
	}

	jobs := make(chan int, BufferSize)
	results := make(chan result, BufferSize)

	for w := 0; w < numRoutines; w++ {
		go func() {
			for next := range jobs {
				if ctxErr := ctx.Err(); ctxErr != nil {
					results <- result{next, ctxErr}
					continue
				}
				results <- result{next, work(next)}
			}
		}()
	}

	// start jobs
	go func() {
		for i := 0; i < n; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	// wait until done
	var err error
	errIndex := n
	for received := 0; received < n; received++ {
		next := <-results
		if next.err != nil {
			if next.i < errIndex {
				errIndex = next.i
				err = next.err
			}
			continue
		}
		if units != nil {
			progress.add(units(next.i))
		} else {
			progress.add(1)
		}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
