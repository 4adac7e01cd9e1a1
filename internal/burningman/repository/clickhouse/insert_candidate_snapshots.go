package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/goodnatureofminers/burningman/pkg/safe"
)

// InsertCandidateSnapshots stores candidate snapshot rows.
func (r *Repository) InsertCandidateSnapshots(ctx context.Context, rows []model.CandidateSnapshot) error {
	start := time.Now()
	var err error
	defer func() {
		r.observe("insert_candidate_snapshots", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	const query = `
INSERT INTO burningman_candidate_snapshots (
	network,
	height,
	name,
	receiver_address,
	accumulated_compensation_amount,
	accumulated_decayed_compensation_amount,
	accumulated_burn_amount,
	accumulated_decayed_burn_amount,
	compensation_share,
	burn_amount_share,
	effective_burn_output_share,
	burn_target,
	created_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare candidate snapshots batch: %w", err)
	}

	for _, row := range rows {
		var height uint32
		height, err = safe.Uint32(row.Height)
		if err != nil {
			_ = batch.Abort()
			return fmt.Errorf("convert snapshot height: %w", err)
		}
		if err = batch.Append(
			string(row.Network),
			height,
			row.Name,
			row.ReceiverAddress,
			row.AccumulatedCompensationAmount,
			row.AccumulatedDecayedCompensationAmount,
			row.AccumulatedBurnAmount,
			row.AccumulatedDecayedBurnAmount,
			row.CompensationShare,
			row.BurnAmountShare,
			row.EffectiveBurnOutputShare,
			row.BurnTarget,
			row.CreatedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append candidate snapshot: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert candidate snapshots: %w", err)
	}
	return nil
}
