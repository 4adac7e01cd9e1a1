package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
)

// IssuancesByType returns all issuances of a type.
func (r *Repository) IssuancesByType(ctx context.Context, issuanceType model.IssuanceType) ([]model.Issuance, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("issuances_by_type", err, start)
	}()

	const query = `
SELECT txid, chain_height, amount
FROM dao_issuances FINAL
WHERE network = ? AND issuance_type = ?
ORDER BY chain_height ASC, txid ASC`

	rows, err := r.conn.Query(ctx, query, string(r.opts.Network), string(issuanceType))
	if err != nil {
		return nil, fmt.Errorf("query issuances: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var issuances []model.Issuance
	for rows.Next() {
		var (
			issuance model.Issuance
			height   uint32
		)
		if err = rows.Scan(&issuance.TxID, &height, &issuance.Amount); err != nil {
			return nil, fmt.Errorf("scan issuance: %w", err)
		}
		issuance.Type = issuanceType
		issuance.ChainHeight = int(height)
		issuances = append(issuances, issuance)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate issuances: %w", err)
	}

	return issuances, nil
}
