// Package batcher groups items into rate limited bulk writes.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher has been stopped.
var ErrStopped = errors.New("batcher stopped")

// Config controls when a batch is written.
type Config struct {
	// FlushSize is the number of items that triggers a write.
	FlushSize int
	// FlushInterval bounds how long a partial batch waits.
	FlushInterval time.Duration
	// FlushesPerSecond limits write calls. Zero means unlimited.
	FlushesPerSecond int
}

// Batcher buffers items and hands them to a flush function in batches.
// The first failed flush stops the batcher: later Add calls return that error
// and buffered items are dropped.
type Batcher[T any] struct {
	flush  func(context.Context, []T) error
	cfg    Config
	items  chan T
	rl     ratelimit.Limiter
	logger *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
	failed   chan struct{}
	errMu    sync.Mutex
	err      error
}

// New constructs a Batcher. Start must be called before items are added.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, cfg Config) *Batcher[T] {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 1
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	rl := ratelimit.NewUnlimited()
	if cfg.FlushesPerSecond > 0 {
		rl = ratelimit.New(cfg.FlushesPerSecond)
	}
	return &Batcher[T]{
		flush:  flush,
		cfg:    cfg,
		items:  make(chan T, cfg.FlushSize*2),
		rl:     rl,
		logger: logger,
		stop:   make(chan struct{}),
		failed: make(chan struct{}),
	}
}

// Start launches the flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop writes what is still queued and returns the first flush error.
// It is safe to call more than once.
func (b *Batcher[T]) Stop() error {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
	return b.Err()
}

// Err reports the error that stopped the batcher, if any.
func (b *Batcher[T]) Err() error {
	b.errMu.Lock()
	defer b.errMu.Unlock()
	return b.err
}

// Add queues an item. It blocks while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.failed:
		return b.Err()
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.failed:
		return b.Err()
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) fail(err error) {
	b.errMu.Lock()
	defer b.errMu.Unlock()
	if b.err != nil {
		return
	}
	b.err = err
	close(b.failed)
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)

	write := func() {
		if len(buf) == 0 || b.Err() != nil {
			buf = buf[:0]
			return
		}
		batch := buf
		buf = make([]T, 0, b.cfg.FlushSize)

		b.rl.Take()
		if err := b.flush(ctx, batch); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
			b.fail(err)
			return
		}
		b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
	}

	for {
		select {
		case <-ctx.Done():
			b.fail(ctx.Err())
			return

		case <-b.stop:
			if err := ctx.Err(); err != nil {
				b.fail(err)
				return
			}
			for {
				select {
				case item := <-b.items:
					buf = append(buf, item)
					if len(buf) >= b.cfg.FlushSize {
						write()
					}
				default:
					write()
					return
				}
			}

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				write()
			}

		case <-ticker.C:
			write()
		}
	}
}
