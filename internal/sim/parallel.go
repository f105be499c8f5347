package sim

import (
	"context"
	"log/slog"
	"sync"

	"github.com/san-kum/bgcircles/internal/scene"
)

// Ensemble repeats a run over consecutive seeds in parallel. Metrics hold
// state, so each run gets a fresh set from newMetrics.
type Ensemble struct {
	opts       scene.Options
	logger     *slog.Logger
	newMetrics func() []Metric
	numRuns    int
	seedStart  int64
}

func NewEnsemble(opts scene.Options, logger *slog.Logger, numRuns int, seedStart int64, newMetrics func() []Metric) *Ensemble {
	return &Ensemble{
		opts:       opts,
		logger:     logger,
		newMetrics: newMetrics,
		numRuns:    numRuns,
		seedStart:  seedStart,
	}
}

// Run returns one result per seed, in seed order.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)

			s := New(e.opts, e.logger)
			if e.newMetrics != nil {
				for _, m := range e.newMetrics() {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx, cfgCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
