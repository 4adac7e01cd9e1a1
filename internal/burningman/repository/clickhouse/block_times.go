package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/burningman/pkg/safe"
)

// BlockTimes returns the block time of every known height.
func (r *Repository) BlockTimes(ctx context.Context, heights []int) (map[int]time.Time, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("block_times", err, start)
	}()

	result := make(map[int]time.Time, len(heights))
	if len(heights) == 0 {
		return result, nil
	}

	args, err := safe.Uint32Slice(heights)
	if err != nil {
		return nil, fmt.Errorf("convert heights: %w", err)
	}

	const query = `
SELECT height, time
FROM dao_blocks FINAL
WHERE network = ? AND height IN ?`

	rows, err := r.conn.Query(ctx, query, string(r.opts.Network), args)
	if err != nil {
		return nil, fmt.Errorf("query block times: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			height uint32
			ts     time.Time
		)
		if err = rows.Scan(&height, &ts); err != nil {
			return nil, fmt.Errorf("scan block time: %w", err)
		}
		result[int(height)] = ts.UTC()
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block times: %w", err)
	}

	return result, nil
}
