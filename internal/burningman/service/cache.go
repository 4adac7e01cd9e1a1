package service

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// snapshotCache memoizes the view of the current chain height. Readers see either no
// view or a complete one. Concurrent misses for the same height share one build.
type snapshotCache struct {
	build   func(ctx context.Context, height int) (*View, error)
	metrics CacheMetrics

	mu         sync.RWMutex
	view       *View
	generation uint64

	group singleflight.Group
}

func newSnapshotCache(build func(ctx context.Context, height int) (*View, error), metrics CacheMetrics) *snapshotCache {
	return &snapshotCache{build: build, metrics: metrics}
}

// Get returns the cached view for height, building it on a miss.
func (c *snapshotCache) Get(ctx context.Context, height int) (*View, error) {
	c.mu.RLock()
	view, generation := c.view, c.generation
	c.mu.RUnlock()

	if view != nil && view.Height == height {
		if c.metrics != nil {
			c.metrics.ObserveHit()
		}
		return view, nil
	}
	if c.metrics != nil {
		c.metrics.ObserveMiss()
	}

	key := strconv.FormatUint(generation, 10) + "/" + strconv.Itoa(height)
	// The build outlives any single waiter; each waiter gives up on its own context.
	buildCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		built, err := c.build(buildCtx, height)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		// An invalidation during the build makes the result stale for the cache.
		if c.generation == generation {
			c.view = built
		}
		c.mu.Unlock()
		return built, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*View), nil
	}
}

// Invalidate drops the cached view.
func (c *snapshotCache) Invalidate() {
	c.mu.Lock()
	c.view = nil
	c.generation++
	c.mu.Unlock()
	if c.metrics != nil {
		c.metrics.ObserveInvalidate()
	}
}
