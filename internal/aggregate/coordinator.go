// Package aggregate fans a search request out to every enabled source,
// merges the normalized results, and pads with synthetic fixtures when live
// data runs short.
package aggregate

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/devhire/devhire/internal/model"
	"github.com/devhire/devhire/internal/rank"
)

const (
	// minLiveResults is the pre-dedup count below which synthetic fixtures
	// are added.
	minLiveResults = 20

	// targetFloor is the result size the supplement tops up to.
	targetFloor = 50

	// defaultTimeout bounds each individual source call.
	defaultTimeout = 15 * time.Second
)

// SourceReport records one source's contribution for observability.
type SourceReport struct {
	Source string
	Count  int
	Err    error
}

// Result is the outcome of one aggregate call. Token identifies the request;
// a caller racing multiple searches keeps only the result whose token is
// still the latest.
type Result struct {
	Jobs    []model.Job
	Count   int
	Token   uint64
	Reports []SourceReport
}

// Supplemented reports whether synthetic fixtures were added.
func (r *Result) Supplemented() bool {
	for _, j := range r.Jobs {
		if j.Synthetic() {
			return true
		}
	}
	return false
}

// Coordinator issues all source queries concurrently and assembles the final
// ordered job list. A single source's outage never fails the whole call.
type Coordinator struct {
	sources  []model.Source
	fixtures []model.Job
	timeout  time.Duration
	logger   *slog.Logger
	seq      atomic.Uint64
}

// New creates a coordinator over the given sources, in priority order.
// fixtures is the synthetic supplement pool; timeout bounds each source call
// (zero means the default).
func New(sources []model.Source, fixtures []model.Job, timeout time.Duration, logger *slog.Logger) *Coordinator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Coordinator{
		sources:  sources,
		fixtures: fixtures,
		timeout:  timeout,
		logger:   logger,
	}
}

// Aggregate runs the full pipeline: concurrent fan-out, priority-order
// concatenation, synthetic supplement, dedup, and ranking. It always
// returns a result; source failures degrade to empty contributions.
func (c *Coordinator) Aggregate(ctx context.Context, req model.SearchRequest) *Result {
	token := c.seq.Add(1)

	// Fixed result slots keep concatenation in source priority order even
	// though completion order is nondeterministic.
	perSource := make([][]model.Job, len(c.sources))
	reports := make([]SourceReport, len(c.sources))

	var wg sync.WaitGroup
	for i, src := range c.sources {
		wg.Add(1)
		go func(i int, src model.Source) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()

			jobs, err := src.Search(callCtx, req)
			if err != nil {
				c.logger.Warn("source failed, contributing zero results",
					"source", src.Name(),
					"error", err,
				)
				reports[i] = SourceReport{Source: src.Name(), Err: err}
				return
			}
			perSource[i] = jobs
			reports[i] = SourceReport{Source: src.Name(), Count: len(jobs)}
		}(i, src)
	}
	wg.Wait()

	var merged []model.Job
	for _, jobs := range perSource {
		merged = append(merged, jobs...)
	}
	liveCount := len(merged)

	if liveCount < minLiveResults {
		supplement := c.fixtures
		if need := targetFloor - liveCount; need < len(supplement) {
			supplement = supplement[:need]
		}
		merged = append(merged, supplement...)
		c.logger.Info("live results below threshold, adding synthetic jobs",
			"live", liveCount,
			"added", len(supplement),
		)
	}

	final := rank.Finalize(merged)

	c.logger.Info("aggregation complete",
		"live", liveCount,
		"pre_dedup", len(merged),
		"final", len(final),
		"token", token,
	)

	return &Result{
		Jobs:    final,
		Count:   len(final),
		Token:   token,
		Reports: reports,
	}
}

// Latest returns the token of the most recently issued aggregate call.
func (c *Coordinator) Latest() uint64 {
	return c.seq.Load()
}

// IsLatest reports whether r belongs to the most recently issued call.
// Callers use it to discard stale responses that resolve late.
func (c *Coordinator) IsLatest(r *Result) bool {
	return r.Token == c.seq.Load()
}
