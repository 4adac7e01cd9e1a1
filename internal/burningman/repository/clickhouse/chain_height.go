package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// ChainHeight returns the highest fully parsed block.
func (r *Repository) ChainHeight(ctx context.Context) (int, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("chain_height", err, start)
	}()

	const query = `
SELECT coalesce(max(height), toUInt32(0)) AS max_height
FROM dao_blocks
WHERE network = ?`

	rows, err := r.conn.Query(ctx, query, string(r.opts.Network))
	if err != nil {
		return 0, fmt.Errorf("query chain height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var height uint32
	if !rows.Next() {
		err = fmt.Errorf("chain height not found")
		return 0, err
	}
	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan chain height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate chain height: %w", err)
	}

	return int(height), nil
}
