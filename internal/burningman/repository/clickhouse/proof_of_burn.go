package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/goodnatureofminers/burningman/pkg/safe"
)

const proofOfBurnTxType = "PROOF_OF_BURN"

// ProofOfBurnOutputs returns the OP_RETURN outputs of proof of burn transactions up to maxHeight.
func (r *Repository) ProofOfBurnOutputs(ctx context.Context, maxHeight int) ([]model.TxOutput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("proof_of_burn_outputs", err, start)
	}()

	h, err := safe.Uint32(maxHeight)
	if err != nil {
		return nil, fmt.Errorf("convert height: %w", err)
	}

	const query = `
SELECT o.txid, o.output_index, o.block_height, o.address, o.value, o.op_return_data
FROM dao_tx_outputs AS o FINAL
INNER JOIN (
	SELECT txid
	FROM dao_txs FINAL
	WHERE network = ? AND tx_type = ? AND block_height <= ?
) AS t ON o.txid = t.txid
WHERE o.network = ? AND o.op_return_data != ''
ORDER BY o.block_height ASC, o.txid ASC, o.output_index ASC`

	rows, err := r.conn.Query(ctx, query, string(r.opts.Network), proofOfBurnTxType, h, string(r.opts.Network))
	if err != nil {
		return nil, fmt.Errorf("query proof of burn outputs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var outputs []model.TxOutput
	for rows.Next() {
		out, scanErr := scanTxOutput(rows)
		if scanErr != nil {
			err = scanErr
			return nil, err
		}
		outputs = append(outputs, out)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate proof of burn outputs: %w", err)
	}
	return outputs, nil
}

// ProofOfBurnTxs returns proof of burn transactions with outputs in [minHeight, maxHeight].
func (r *Repository) ProofOfBurnTxs(ctx context.Context, minHeight, maxHeight int) ([]model.Tx, error) {
	start := time.Now()
	var err error
	defer func() {
		r.observe("proof_of_burn_txs", err, start)
	}()

	if minHeight < 0 {
		minHeight = 0
	}
	if maxHeight < minHeight {
		return nil, nil
	}
	lo, err := safe.Uint32(minHeight)
	if err != nil {
		return nil, fmt.Errorf("convert min height: %w", err)
	}
	hi, err := safe.Uint32(maxHeight)
	if err != nil {
		return nil, fmt.Errorf("convert max height: %w", err)
	}

	txIDs, err := r.proofOfBurnTxIDs(ctx, lo, hi)
	if err != nil {
		return nil, err
	}
	byID, err := r.txs(ctx, txIDs)
	if err != nil {
		return nil, err
	}

	txs := make([]model.Tx, 0, len(txIDs))
	for _, id := range txIDs {
		if tx, ok := byID[id]; ok {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

func (r *Repository) proofOfBurnTxIDs(ctx context.Context, minHeight, maxHeight uint32) (txIDs []string, err error) {
	const query = `
SELECT txid
FROM dao_txs FINAL
WHERE network = ? AND tx_type = ? AND block_height >= ? AND block_height <= ?
ORDER BY block_height ASC, txid ASC`

	rows, err := r.conn.Query(ctx, query, string(r.opts.Network), proofOfBurnTxType, minHeight, maxHeight)
	if err != nil {
		return nil, fmt.Errorf("query proof of burn txs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan proof of burn txid: %w", err)
		}
		txIDs = append(txIDs, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate proof of burn txs: %w", err)
	}
	return txIDs, nil
}
