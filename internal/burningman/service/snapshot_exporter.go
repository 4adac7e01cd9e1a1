package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/goodnatureofminers/burningman/pkg/batcher"
	"github.com/goodnatureofminers/burningman/pkg/workerpool"
	"go.uber.org/zap"
)

// SnapshotExporter builds views for every checkpoint height of a range and stores one
// row per candidate and height.
type SnapshotExporter struct {
	views         ViewSource
	repo          SnapshotRepository
	metrics       ExporterMetrics
	network       model.Network
	logger        *zap.Logger
	now           func() time.Time
	workerCount   int
	batchSize     int
	flushInterval time.Duration
	cancel        func()
}

// NewSnapshotExporter builds a SnapshotExporter.
func NewSnapshotExporter(
	views ViewSource,
	repo SnapshotRepository,
	metrics ExporterMetrics,
	network model.Network,
	logger *zap.Logger,
) (*SnapshotExporter, error) {
	if metrics == nil {
		return nil, errors.New("snapshot exporter metrics is required")
	}
	return &SnapshotExporter{
		views:         views,
		repo:          repo,
		metrics:       metrics,
		network:       network,
		logger:        logger.With(zap.String("network", string(network))),
		now:           time.Now,
		workerCount:   exporterWorkerCount,
		batchSize:     exporterBatchSize,
		flushInterval: exporterFlushInterval,
	}, nil
}

// SetCancel registers a callback invoked when a height fails.
func (e *SnapshotExporter) SetCancel(cancel func()) {
	e.cancel = cancel
}

// SetWorkerCount overrides the number of heights built concurrently.
func (e *SnapshotExporter) SetWorkerCount(n int) {
	if n > 0 {
		e.workerCount = n
	}
}

// Export stores snapshots of all checkpoint heights in [from, to].
func (e *SnapshotExporter) Export(ctx context.Context, from, to int) error {
	heights := CheckpointHeights(from, to, snapshotGrid)
	if len(heights) == 0 {
		e.logger.Info("no checkpoint heights in range", zap.Int("from", from), zap.Int("to", to))
		return nil
	}

	b := batcher.New[model.CandidateSnapshot](
		e.logger.Named("snapshotBatcher"),
		func(ctx context.Context, rows []model.CandidateSnapshot) error {
			err := e.repo.InsertCandidateSnapshots(ctx, rows)
			e.metrics.ObserveFlush(err, len(rows))
			return err
		},
		batcher.Config{
			FlushSize:        e.batchSize,
			FlushInterval:    e.flushInterval,
			FlushesPerSecond: exporterFlushesPerSecond,
		},
	)
	b.Start(ctx)
	defer func() {
		_ = b.Stop()
	}()

	e.logger.Info("exporting burning man snapshots",
		zap.Int("from", from),
		zap.Int("to", to),
		zap.Int("heights", len(heights)),
	)

	processHeight := func(ctx context.Context, height int) (err error) {
		started := time.Now()
		defer func() {
			e.metrics.ObserveHeight(err, height, started)
		}()

		view, err := e.views.View(ctx, height)
		if err != nil {
			return fmt.Errorf("build view at %d: %w", height, err)
		}
		for _, row := range e.snapshotRows(view) {
			if err := b.Add(ctx, row); err != nil {
				return fmt.Errorf("queue snapshot %s at %d: %w", row.Name, height, err)
			}
		}
		return nil
	}

	processErr := workerpool.Process(ctx, e.workerCount, heights, processHeight, e.cancel)
	if err := b.Stop(); err != nil {
		return fmt.Errorf("insert candidate snapshots: %w", err)
	}
	return processErr
}

func (e *SnapshotExporter) snapshotRows(view *View) []model.CandidateSnapshot {
	createdAt := e.now().UTC()
	rows := make([]model.CandidateSnapshot, 0, len(view.Candidates))
	for _, c := range view.Candidates.Ordered() {
		address, _ := c.MostRecentAddress()
		rows = append(rows, model.CandidateSnapshot{
			Network:                              e.network,
			Height:                               view.Height,
			Name:                                 c.Name,
			ReceiverAddress:                      address,
			AccumulatedCompensationAmount:        c.AccumulatedCompensationAmount,
			AccumulatedDecayedCompensationAmount: c.AccumulatedDecayedCompensationAmount,
			AccumulatedBurnAmount:                c.AccumulatedBurnAmount,
			AccumulatedDecayedBurnAmount:         c.AccumulatedDecayedBurnAmount,
			CompensationShare:                    c.CompensationShare.InexactFloat64(),
			BurnAmountShare:                      c.BurnAmountShare.InexactFloat64(),
			EffectiveBurnOutputShare:             c.EffectiveBurnOutputShare.InexactFloat64(),
			BurnTarget:                           view.BurnTarget,
			CreatedAt:                            createdAt,
		})
	}
	return rows
}

// CheckpointHeights lists the multiples of grid within [from, to].
func CheckpointHeights(from, to, grid int) []int {
	if grid <= 0 || to < from {
		return nil
	}
	start := (from + grid - 1) / grid * grid
	if from < 0 {
		start = 0
	}
	var heights []int
	for h := start; h <= to; h += grid {
		heights = append(heights, h)
	}
	return heights
}
