// Package batch runs many independent merge operations concurrently.
// Each merge is a pure in-memory computation, so a bounded worker pool is a
// plain throughput optimization: results carry no cross-job ordering
// requirement beyond matching input positions.
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/sebieire/csscade/css"
	"github.com/sebieire/csscade/merge"
)

// Job is one merge operation: a source set, an override set and an optional
// per-job importance strategy (empty uses the engine default).
type Job struct {
	Source   *css.PropertySet
	Override *css.PropertySet
	Strategy merge.ImportantStrategy
}

// Stats accumulates batch counters across Process calls.
type Stats struct {
	Batches    int
	Operations int
	Elapsed    time.Duration
}

// Processor executes batches of merge jobs on a bounded worker pool.
type Processor struct {
	engine  *merge.Engine
	workers int
	log     *zap.Logger

	mu    sync.Mutex
	stats Stats
}

// NewProcessor creates a batch processor. workers caps concurrent merges;
// values below 1 fall back to 4.
func NewProcessor(engine *merge.Engine, workers int, log *zap.Logger) *Processor {
	if workers < 1 {
		workers = 4
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{engine: engine, workers: workers, log: log.Named("batch")}
}

// Process merges every job and returns results in job order. Individual
// jobs cannot fail (merging is total); the returned error aggregates only
// context cancellation, reported once per unprocessed job slot.
func (p *Processor) Process(ctx context.Context, jobs []Job) ([]merge.Result, error) {
	start := time.Now()
	results := make([]merge.Result, len(jobs))
	var errs error
	var errMu sync.Mutex

	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			errMu.Lock()
			errs = multierr.Append(errs, fmt.Errorf("job %d not processed: %w", i, err))
			errMu.Unlock()
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, job Job) {
			defer wg.Done()
			defer func() { <-sem }()

			if job.Strategy != "" {
				results[i] = p.engine.MergeWith(job.Source, job.Override, job.Strategy)
			} else {
				results[i] = p.engine.Merge(job.Source, job.Override)
			}
		}(i, job)
	}
	wg.Wait()

	elapsed := time.Since(start)
	p.mu.Lock()
	p.stats.Batches++
	p.stats.Operations += len(jobs)
	p.stats.Elapsed += elapsed
	p.mu.Unlock()

	p.log.Debug("processed batch",
		zap.Int("jobs", len(jobs)),
		zap.Int("workers", p.workers),
		zap.Duration("elapsed", elapsed))

	return results, errs
}

// Stats returns a snapshot of the accumulated counters.
func (p *Processor) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}
