// SPDX-License-Identifier: MIT
// Package: sx/internal/demo
//
// pi.go - Monte-Carlo pi over concurrent workers.
//
// Each worker owns one rnd.Stream. With a fixed seed, worker i uses seed+i,
// so the estimate does not depend on goroutine scheduling.

package demo

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sx/gen"
	"github.com/katalvlaran/sx/logging"
	"github.com/katalvlaran/sx/observe"
	"github.com/katalvlaran/sx/rnd"
)

// DiskGeneratorName labels the point-in-disk generator for observers.
const DiskGeneratorName = "pi_disk_point"

// ctxCheckEvery is how many samples a worker takes between context checks.
const ctxCheckEvery = 1024

var logger = logging.GetLogger("demo")

// Point is a point in the plane.
type Point struct {
	X, Y float64
}

// PiParams configures EstimatePi.
type PiParams struct {
	// Samples is the total number of trials across all workers.
	Samples int
	// Workers is the number of goroutines sharing the trials.
	Workers int
	// Budget is the attempt budget per trial. Budget 1 makes each trial a
	// single accept/reject test, which is what the estimate assumes.
	Budget int
	// Seed pins the worker streams when non-zero.
	Seed uint64
}

// PiResult is the outcome of EstimatePi.
type PiResult struct {
	Estimate float64
	Hits     int
	Samples  int
}

// Validate reports whether p can be run.
func (p PiParams) Validate() error {
	switch {
	case p.Samples < 1:
		return fmt.Errorf("%w: samples=%d", ErrInvalidParams, p.Samples)
	case p.Workers < 1:
		return fmt.Errorf("%w: workers=%d", ErrInvalidParams, p.Workers)
	case p.Budget < 1:
		return fmt.Errorf("%w: budget=%d", ErrInvalidParams, p.Budget)
	}

	return nil
}

// DiskPoint returns a generator of points uniform over the unit disk,
// obtained by rejection from the square [-1, 1) x [-1, 1).
func DiskPoint() gen.Generator[Point] {
	coord := gen.FloatRange(-1, 1)
	square := gen.BindWith(coord,
		func(float64) gen.Generator[float64] { return coord },
		func(x, y float64) Point { return Point{X: x, Y: y} })

	return gen.Filter(square, func(p Point) bool { return p.X*p.X+p.Y*p.Y <= 1 })
}

// EstimatePi counts how many single-budget draws of DiskPoint succeed and
// scales the hit rate by four. obs may be nil.
func EstimatePi(ctx context.Context, p PiParams, obs observe.Observer) (PiResult, error) {
	if err := p.Validate(); err != nil {
		return PiResult{}, err
	}
	if obs == nil {
		obs = observe.NoopObserver{}
	}

	disk := gen.Observed(DiskGeneratorName, DiskPoint(), obs)
	streams := workerStreams(p.Workers, p.Seed)
	hits := make([]int, p.Workers)

	g, gctx := errgroup.WithContext(ctx)
	for i := range p.Workers {
		n := share(p.Samples, p.Workers, i)
		s := streams[i]
		g.Go(func() error {
			for j := 0; j < n; j++ {
				if j%ctxCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				if disk.Produce(s, p.Budget).Ok() {
					hits[i]++
				}
			}
			logger.Debug("worker done", "worker", i, "seed", s.Seed(), "samples", n, "hits", hits[i])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return PiResult{}, fmt.Errorf("demo.EstimatePi: %w", err)
	}

	res := PiResult{Samples: p.Samples}
	for _, h := range hits {
		res.Hits += h
	}
	res.Estimate = 4 * float64(res.Hits) / float64(res.Samples)

	return res, nil
}

// workerStreams returns one stream per worker, pinned to seed+i when seed
// is set and drawn from the global counter otherwise.
func workerStreams(workers int, seed uint64) []*rnd.Stream {
	if seed == 0 {
		return rnd.Streams(workers)
	}
	streams := make([]*rnd.Stream, workers)
	for i := range streams {
		streams[i] = rnd.New(seed + uint64(i))
	}

	return streams
}

// share splits total across workers; the first total%workers get one extra.
func share(total, workers, i int) int {
	n := total / workers
	if i < total%workers {
		n++
	}

	return n
}
