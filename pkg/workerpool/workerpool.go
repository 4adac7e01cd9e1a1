// Package workerpool runs bounded fan-out over a slice of work items.
package workerpool

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Process calls process for every item with at most workerCount calls in flight.
// The first error cancels the remaining work, triggers onCancel once and is
// returned. A canceled parent context is reported even when no item failed.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if workerCount <= 0 {
		workerCount = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount)

	var once sync.Once
	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		item := item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := process(gctx, item); err != nil {
				if onCancel != nil {
					once.Do(onCancel)
				}
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
