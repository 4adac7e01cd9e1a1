package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
)

// Cycles returns all governance cycles ordered by their first block.
func (r *Repository) Cycles(ctx context.Context) (model.Cycles, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("cycles", err, start)
	}()

	const query = `
SELECT first_block_height, last_block_height
FROM dao_cycles FINAL
WHERE network = ?
ORDER BY first_block_height ASC`

	rows, err := r.conn.Query(ctx, query, string(r.opts.Network))
	if err != nil {
		return nil, fmt.Errorf("query cycles: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var cycles model.Cycles
	for rows.Next() {
		var first, last uint32
		if err = rows.Scan(&first, &last); err != nil {
			return nil, fmt.Errorf("scan cycle: %w", err)
		}
		cycles = append(cycles, model.Cycle{FirstBlockHeight: int(first), LastBlockHeight: int(last)})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cycles: %w", err)
	}

	return cycles, nil
}
