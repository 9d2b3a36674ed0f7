// Copyright 2026 Buildstock Contributors
// This file is part of Panelsampler, an electrical panel sampler for building stock models
//
// Panelsampler is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Panelsampler is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Panelsampler. If not, see <http://www.gnu.org/licenses/>.

package batch

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/buildstock/panelsampler/config"
	"github.com/buildstock/panelsampler/logger"
	"github.com/buildstock/panelsampler/panel"
	"github.com/buildstock/panelsampler/store"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gopkg.in/cheggaaa/pb.v1"
)

// Result summarizes a finished run.
type Result struct {
	RunID       string
	Assignments []panel.Assignment // ordered by building id
	Failed      []int64            // ids of buildings without an assignment
}

// Runner samples a population of buildings with a pool of workers and
// records the assignments in a store.
type Runner struct {
	cfg     *config.Config
	sampler *panel.Sampler
	store   store.Store
	log     logger.Logger
}

func NewRunner(cfg *config.Config, sampler *panel.Sampler, s store.Store, log logger.Logger) *Runner {
	return &Runner{
		cfg:     cfg,
		sampler: sampler,
		store:   s,
		log:     log,
	}
}

type outcome struct {
	building   *panel.Building
	assignment panel.Assignment
	err        error
}

// Run assigns panels to all buildings. Every assignment only depends on its
// building, so the result does not depend on the number of workers. A failed
// building aborts the run unless failures are tolerated by the config.
// With a non-zero MaxNumErrors the run stops at that many failures.
func (r *Runner) Run(ctx context.Context, buildings []*panel.Building) (Result, error) {
	runID := r.cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	res := Result{RunID: runID}

	err := r.store.BeginRun(store.Run{
		ID:            runID,
		CreatedAt:     time.Now().UTC(),
		CapacityTable: r.cfg.CapacityTable,
		HeadroomTable: r.cfg.HeadroomTable,
		Buildings:     len(buildings),
	})
	if err != nil {
		return res, errors.Wrapf(err, "cannot begin run %s", runID)
	}

	workers := r.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	r.log.Noticef("Run %s: sampling %d buildings with %d workers", runID, len(buildings), workers)
	start := time.Now()

	bar := pb.New(len(buildings))
	bar.ShowTimeLeft = false
	bar.NotPrint = !r.cfg.TrackProgress
	bar.Start()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan *panel.Building, workers)
	results := make(chan outcome, workers)

	go func() {
		defer close(jobs)
		for _, b := range buildings {
			select {
			case jobs <- b:
			case <-runCtx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for b := range jobs {
				a, err := r.sampler.Assign(b)
				select {
				case results <- outcome{building: b, assignment: a, err: err}:
				case <-runCtx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var abort error
	for o := range results {
		bar.Increment()
		if abort != nil {
			continue
		}
		if o.err != nil {
			res.Failed = append(res.Failed, o.building.ID)
			if !r.cfg.ContinueOnFailure {
				abort = errors.Wrapf(o.err, "cannot sample %v", o.building)
			} else if r.cfg.MaxNumErrors > 0 && len(res.Failed) >= r.cfg.MaxNumErrors {
				abort = errors.Newf("too many failed buildings: the run stops after %d failures", r.cfg.MaxNumErrors)
			}
		} else if err := r.store.Put(store.FromPanel(runID, o.assignment)); err != nil {
			abort = errors.Wrapf(err, "cannot store assignment of %v", o.building)
		} else {
			res.Assignments = append(res.Assignments, o.assignment)
		}
		if abort != nil {
			cancel()
		}
	}
	bar.Finish()

	if abort == nil {
		abort = ctx.Err()
	}
	if err := r.store.Flush(); err != nil {
		abort = errors.CombineErrors(abort, errors.Wrap(err, "cannot flush assignments"))
	}

	sort.Slice(res.Assignments, func(i, j int) bool {
		return res.Assignments[i].BuildingID < res.Assignments[j].BuildingID
	})
	sort.Slice(res.Failed, func(i, j int) bool {
		return res.Failed[i] < res.Failed[j]
	})

	if abort != nil {
		return res, errors.Wrapf(abort, "run %s aborted", runID)
	}

	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	r.log.Noticef("Run %s: sampled %d buildings, %d failed; took %vh %vm %vs", runID, len(res.Assignments), len(res.Failed), hours, minutes, seconds)
	if len(res.Failed) > 0 {
		r.log.Warningf("Run %s: %d buildings have no assignment", runID, len(res.Failed))
	}
	return res, nil
}
