package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/burningman/internal/clock"
	"go.uber.org/zap"
)

// BlockWatcher polls the ledger tip and notifies listeners about completed blocks.
type BlockWatcher struct {
	ledger        LedgerRepository
	listeners     []BlockListener
	logger        *zap.Logger
	sleep         func(context.Context, time.Duration) error
	sleepDuration time.Duration
	maxBackoff    time.Duration
	failures      int
	lastHeight    int
}

// NewBlockWatcher builds a BlockWatcher notifying the given listeners in order.
func NewBlockWatcher(ledger LedgerRepository, logger *zap.Logger, listeners ...BlockListener) (*BlockWatcher, error) {
	if len(listeners) == 0 {
		return nil, errors.New("block watcher needs at least one listener")
	}
	return &BlockWatcher{
		ledger:        ledger,
		listeners:     listeners,
		logger:        logger,
		sleep:         clock.SleepWithContext,
		sleepDuration: blockPollInterval,
		maxBackoff:    blockPollMaxBackoff,
	}, nil
}

// SetPollInterval overrides the delay between chain height polls.
func (w *BlockWatcher) SetPollInterval(d time.Duration) {
	if d > 0 {
		w.sleepDuration = d
	}
}

// Run polls until the context is canceled.
func (w *BlockWatcher) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		delay := w.sleepDuration
		if err := w.poll(ctx); err != nil {
			delay = clock.Backoff(w.sleepDuration, w.maxBackoff, w.failures)
			w.failures++
			w.logger.Warn("poll chain height failed, backing off",
				zap.Error(err),
				zap.Int("failures", w.failures),
				zap.Duration("sleep", delay),
			)
		} else {
			w.failures = 0
		}
		if err := w.sleep(ctx, delay); err != nil {
			return err
		}
	}
}

func (w *BlockWatcher) poll(ctx context.Context) error {
	height, err := w.ledger.ChainHeight(ctx)
	if err != nil {
		return fmt.Errorf("query chain height: %w", err)
	}
	if height <= w.lastHeight {
		return nil
	}
	w.logger.Debug("new block completed", zap.Int("height", height), zap.Int("previous", w.lastHeight))
	w.lastHeight = height
	for _, l := range w.listeners {
		l.OnBlockComplete(height)
	}
	return nil
}
