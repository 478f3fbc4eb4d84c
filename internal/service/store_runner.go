package service

import (
	"context"
	"time"
)

// storeRunner bounds each record store call with a timeout and times it.
type storeRunner struct {
	timeout time.Duration
	metrics *MetricsService
}

func (r storeRunner) run(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	var cancel context.CancelFunc
	if r.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	start := time.Now()
	err := fn(ctx)
	r.metrics.ObserveStoreOperation(operation, err, time.Since(start))
	return err
}
