// Package sweep trains many independent perceptrons in parallel, one
// per set of parameters, e.g. to compare learning rates or seeds.
package sweep

import (
	"sync"

	"github.com/google/uuid"
	. "github.com/stevegt/goadapt"
	"github.com/stevegt/mlintro"
)

// WorkRequest is a struct that contains the work to be done
type WorkRequest struct {
	Work func()
}

// StartWorker starts a worker. The work channel is used to send work
// to the worker.  The worker will quit when the work channel is
// closed.
func StartWorker(work chan *WorkRequest, wg *sync.WaitGroup) {
	go func() {
		for {
			workRequest, ok := <-work
			if !ok {
				// Channel closed
				return
			}
			workRequest.Work()
			wg.Done()
		}
	}()
}

// Run is one training run of a sweep.
type Run struct {
	ID     uuid.UUID
	Params mlintro.Params
	Result *mlintro.Result
	Err    error
}

// Sweep trains one model per entry in params on its own copy of
// samples, using up to workers goroutines.  Runs are returned in the
// order of params.  The outcome of each run is the same as calling
// mlintro.Train with its params; params sharing a Source would share
// random state, so Source must be nil in every entry.
func Sweep(samples []mlintro.Sample, params []mlintro.Params, workers int) (runs []*Run) {
	if workers < 1 {
		workers = 1
	}
	runs = make([]*Run, len(params))
	for i, p := range params {
		Assert(p.Source == nil, "run %d: Source must be nil in a sweep", i)
		runs[i] = &Run{ID: uuid.New(), Params: p}
	}

	work := make(chan *WorkRequest, len(params))
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		StartWorker(work, &wg)
	}
	for _, run := range runs {
		run := run
		own := mlintro.CloneSamples(samples)
		wg.Add(1)
		work <- &WorkRequest{Work: func() {
			Debug("run %s: start %+v\n", run.ID, run.Params)
			run.Result, run.Err = mlintro.Train(own, run.Params)
			Debug("run %s: done, err %v\n", run.ID, run.Err)
		}}
	}
	close(work)
	wg.Wait()
	return
}

// Best returns the successful run whose last epoch misclassified the
// fewest samples, breaking ties by lower loss and then by position.
// It returns nil if no run succeeded with at least one epoch.
func Best(runs []*Run) (best *Run) {
	for _, run := range runs {
		if run.Err != nil || len(run.Result.Stats) == 0 {
			continue
		}
		if best == nil {
			best = run
			continue
		}
		a := run.Result.Stats[len(run.Result.Stats)-1]
		b := best.Result.Stats[len(best.Result.Stats)-1]
		if a.Errors < b.Errors || (a.Errors == b.Errors && a.Loss < b.Loss) {
			best = run
		}
	}
	return
}
