package prober

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	consts "github.com/veriscan-io/veriscan-cli/internal/shared/constants"
)

// Runner executes independent probe tasks with bounded concurrency and a
// global rate limit. Probes are idempotent and share no state, so the only
// ordering requirement is the join: Run returns after every task finished.
type Runner struct {
	Concurrency int // maximum in-flight probes
	RateLimit   int // probes per second, global
}

func (r *Runner) concurrency() int {
	if r.Concurrency > 0 {
		return r.Concurrency
	}
	return consts.DefaultProbeConcurrency
}

func (r *Runner) rateLimit() int {
	if r.RateLimit > 0 {
		return r.RateLimit
	}
	return consts.DefaultProbeRateLimit
}

// Run dispatches work(i) for i in [0,n) across the pool and blocks until all
// tasks complete. A task's failure is its own business: work must not panic
// through (callers recover internally) and must not cancel siblings.
func (r *Runner) Run(ctx context.Context, n int, work func(ctx context.Context, i int)) {
	limiter := rate.NewLimiter(rate.Limit(r.rateLimit()), r.rateLimit())
	sem := make(chan struct{}, r.concurrency())
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			_ = limiter.Wait(ctx)

			work(ctx, i)
		}(i)
	}

	wg.Wait()
}
